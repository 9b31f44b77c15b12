// seehuhn.de/go/plot - a 2D plotting library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package pdfdev implements a plotting device which writes a single-page
// PDF file.
//
// Importing this package registers the driver under the name "pdf".
package pdfdev

import (
	"errors"
	"log/slog"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/plot/device"
)

// Name is the driver name of the PDF device.
const Name = "pdf"

var (
	errNoOutput  = errors.New("pdfdev: no output file name")
	errMultiPage = errors.New("pdfdev: only one page per file")
)

func init() {
	device.Register(Name, func(cfg device.Config) (device.Device, error) {
		return Open(cfg)
	})
}

// Device writes vector graphics to a PDF file.
type Device struct {
	cfg    device.Config
	page   *document.Page
	logger *slog.Logger

	pageDone bool // BeginPage has been called
	inPage   bool
	pending  bool // a path has been started but not yet stroked
	closed   bool
}

// Open creates the output file given in cfg.Output and returns a device
// which draws onto its single page.
func Open(cfg device.Config) (*Device, error) {
	if cfg.Output == "" {
		return nil, errNoOutput
	}
	if err := cfg.Check(); err != nil {
		return nil, err
	}

	// page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: cfg.Width,
		URy: cfg.Height,
	}
	page, err := document.CreateSinglePage(cfg.Output, paper, pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}

	d := &Device{
		cfg:    cfg,
		page:   page,
		logger: slog.New(slog.DiscardHandler),
	}
	return d, nil
}

// SetLogger sets the logger used for diagnostics.
// The canvas in the parent package calls this automatically.
func (d *Device) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	d.logger = l
}

// Name implements the [device.Device] interface.
func (d *Device) Name() string { return Name }

// PageSize implements the [device.Device] interface.
func (d *Device) PageSize() (width, height float64) {
	return d.cfg.Width, d.cfg.Height
}

// Resolution implements the [device.Device] interface.
func (d *Device) Resolution() float64 { return d.cfg.Resolution }

// BeginPage implements the [device.Device] interface.
// A PDF device has exactly one page.
func (d *Device) BeginPage() error {
	switch {
	case d.closed:
		return device.ErrClosed
	case d.inPage:
		return device.ErrPageOpen
	case d.pageDone:
		return errMultiPage
	}

	d.page.SetStrokeColor(color.DeviceGray(0))
	if d.cfg.LineWidth > 0 {
		d.page.SetLineWidth(d.cfg.LineWidth)
	}
	d.inPage = true
	d.pageDone = true
	d.logger.Debug("pdf page started", "file", d.cfg.Output,
		"width", d.cfg.Width, "height", d.cfg.Height)
	return nil
}

// EndPage implements the [device.Device] interface.
func (d *Device) EndPage() error {
	if err := d.check(); err != nil {
		return err
	}
	if err := d.Stroke(); err != nil {
		return err
	}
	d.inPage = false
	return nil
}

// SetLineWidth implements the [device.Device] interface.
func (d *Device) SetLineWidth(width float64) error {
	if err := d.check(); err != nil {
		return err
	}
	// PDF requires the graphics state to be set outside of path construction
	if err := d.Stroke(); err != nil {
		return err
	}
	d.page.SetLineWidth(width)
	return nil
}

// SetLineStyle implements the [device.Device] interface.
func (d *Device) SetLineStyle(style device.LineStyle) error {
	if err := d.check(); err != nil {
		return err
	}
	if err := d.Stroke(); err != nil {
		return err
	}
	d.page.SetLineCap(style.Cap)
	d.page.SetLineJoin(style.Join)
	if len(style.Dash) > 0 {
		d.page.SetLineDash(style.Dash, style.DashPhase)
	} else {
		d.page.SetLineDash(nil, 0)
	}
	return nil
}

// MoveTo implements the [device.Device] interface.
func (d *Device) MoveTo(x, y float64) error {
	if err := d.check(); err != nil {
		return err
	}
	d.page.MoveTo(x, y)
	d.pending = true
	return nil
}

// LineTo implements the [device.Device] interface.
func (d *Device) LineTo(x, y float64) error {
	if err := d.check(); err != nil {
		return err
	}
	d.page.LineTo(x, y)
	return nil
}

// Stroke implements the [device.Device] interface.
func (d *Device) Stroke() error {
	if err := d.check(); err != nil {
		return err
	}
	if d.pending {
		d.page.Stroke()
		d.pending = false
	}
	return nil
}

// Close implements the [device.Device] interface.
// Any pending path is stroked, and the PDF file is written.
func (d *Device) Close() error {
	if d.closed {
		return device.ErrClosed
	}
	if d.inPage {
		if err := d.EndPage(); err != nil {
			return err
		}
	}
	d.closed = true
	err := d.page.Close()
	d.logger.Debug("pdf file closed", "file", d.cfg.Output, "err", err)
	return err
}

func (d *Device) check() error {
	if d.closed {
		return device.ErrClosed
	}
	if !d.inPage {
		return device.ErrNoPage
	}
	return nil
}
