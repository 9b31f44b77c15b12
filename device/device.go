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

// Package device defines the interface between the plotting code and the
// output backends.
//
// A backend registers a [Factory] under a driver name, usually from an
// init function.  [Open] looks up the driver and returns a [Device].
// Devices receive geometry which has already been mapped to device
// coordinates and clipped to the page.
package device

import (
	"errors"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"
)

// Common device errors.
var (
	// ErrUnknownDriver is returned by Open when no driver of the requested
	// name is registered.
	ErrUnknownDriver = errors.New("device: unknown driver")

	// ErrClosed is returned when a device is used after Close.
	ErrClosed = errors.New("device: closed")

	// ErrNoPage is returned by drawing operations outside of a page.
	ErrNoPage = errors.New("device: no page")

	// ErrPageOpen is returned by BeginPage if the previous page has not
	// been ended.
	ErrPageOpen = errors.New("device: page already open")

	// ErrBadSettings is returned when a [Config] has an invalid page size,
	// resolution or line width.
	ErrBadSettings = errors.New("device: bad settings")
)

// Device is an output backend.
//
// Coordinates are given in points (1/72 inch), with the origin at the
// lower left corner of the page.  Drawing operations are only valid
// between BeginPage and EndPage.  A Device is not safe for concurrent use.
type Device interface {
	// Name returns the driver name of the device.
	Name() string

	// PageSize returns the page width and height in points.
	PageSize() (width, height float64)

	// Resolution returns the device resolution in dots per inch.
	Resolution() float64

	// BeginPage starts a new page.
	BeginPage() error

	// EndPage strokes any pending path and finishes the current page.
	EndPage() error

	// SetLineWidth sets the line width in points for subsequent strokes.
	SetLineWidth(width float64) error

	// SetLineStyle sets cap, join and dash pattern for subsequent strokes.
	SetLineStyle(style LineStyle) error

	// MoveTo starts a new subpath at (x, y).
	MoveTo(x, y float64) error

	// LineTo appends a straight line to (x, y) to the current subpath.
	LineTo(x, y float64) error

	// Stroke paints the current path and clears it.
	Stroke() error

	// Close ends any open page and releases the device.
	Close() error
}

// LineStyle describes how lines are drawn.
type LineStyle struct {
	Cap       graphics.LineCapStyle
	Join      graphics.LineJoinStyle
	Dash      []float64 // dash pattern in points (nil for solid)
	DashPhase float64
}

// DefaultLineStyle is the style used by a newly opened device.
var DefaultLineStyle = LineStyle{
	Cap:  graphics.LineCapButt,
	Join: graphics.LineJoinMiter,
}

// Config holds the parameters for opening a device.
type Config struct {
	// Width and Height give the page size in points.
	Width, Height float64

	// Resolution is the device resolution in dots per inch.  Vector
	// devices use this only to report it back to the caller.
	Resolution float64

	// Output is the file name for devices which write a file.
	Output string

	// LineWidth is the initial line width in points.
	LineWidth float64
}

// DefaultConfig returns a configuration for an A4 page at 72 dpi.
func DefaultConfig() Config {
	return Config{
		Width:      595,
		Height:     842,
		Resolution: 72,
		LineWidth:  1,
	}
}

// Check returns [ErrBadSettings] unless the page size is finite and
// positive, the resolution is finite and non-zero, and the line width is
// finite and non-negative.
func (c *Config) Check() error {
	if !(c.Width > 0 && c.Height > 0) ||
		math.IsInf(c.Width, 0) || math.IsInf(c.Height, 0) ||
		c.Resolution == 0 || math.IsNaN(c.Resolution) || math.IsInf(c.Resolution, 0) ||
		!(c.LineWidth >= 0) || math.IsInf(c.LineWidth, 0) {
		return ErrBadSettings
	}
	return nil
}

// Samples returns the page size of d in device pixels, rounded to the
// nearest integer.
func Samples(d Device) (nx, ny int) {
	w, h := d.PageSize()
	res := math.Abs(d.Resolution())
	return int(math.Round(w * res / 72)), int(math.Round(h * res / 72))
}

// PageBox returns the page area of a device as a rectangle.
// This is the natural clip rectangle for the device.
func PageBox(d Device) rect.Rect {
	w, h := d.PageSize()
	return rect.Rect{LLx: 0, LLy: 0, URx: w, URy: h}
}
