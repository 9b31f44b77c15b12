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

// Package plot draws line plots onto output devices.
//
// A [Canvas] maps a rectangle of data coordinates onto the page of a
// [device.Device], clips all lines to the visible area, and sends the
// visible parts to the device.  The coordinate mapping is implemented in
// the geom sub-package, the clipping in the clip sub-package.
package plot

import (
	"errors"
	"fmt"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/plot/clip"
	"seehuhn.de/go/plot/device"
	"seehuhn.de/go/plot/geom"
)

var (
	// ErrCurve is returned by StrokePath for paths which contain curves.
	ErrCurve = errors.New("plot: curves are not supported")

	// ErrLength is returned when the x and y coordinate slices have
	// different lengths.
	ErrLength = errors.New("plot: coordinate slices differ in length")
)

// Canvas draws data onto a device.
//
// The exported fields may be changed between drawing calls; the new values
// are used for all subsequent drawing.  A Canvas is not safe for
// concurrent use.
type Canvas struct {
	// Data is the range of data coordinates shown in the viewport.
	// The limits may be given in either order.
	Data geom.Box[float64]

	// Viewport is the device area, in points, onto which Data is mapped.
	// The default is the whole page.
	Viewport rect.Rect

	// Clip is the device area, in points, outside of which nothing is
	// drawn.  The default is the whole page.
	Clip rect.Rect

	// Flip reverses the direction of the selected axes.
	Flip geom.Flip

	// Pre is applied to data coordinates before they are mapped into the
	// viewport.  The zero matrix is treated as the identity.
	Pre matrix.Matrix

	// LineWidth is the line width in points.
	LineWidth float64

	// Style gives cap, join and dash pattern for lines.
	Style device.LineStyle

	dev    device.Device
	inPage bool
	closed bool

	// transformed coordinates, reused across calls
	bufX []float64
	bufY []float64
}

// NewCanvas returns a canvas which shows the given data range on the full
// page of dev.
func NewCanvas(dev device.Device, data geom.Box[float64]) *Canvas {
	page := device.PageBox(dev)
	if ls, ok := dev.(loggerSetter); ok {
		ls.SetLogger(Logger())
	}
	return &Canvas{
		Data:      data,
		Viewport:  page,
		Clip:      page,
		Pre:       matrix.Identity,
		LineWidth: 1,
		Style:     device.DefaultLineStyle,
		dev:       dev,
	}
}

// Device returns the device the canvas draws on.
func (c *Canvas) Device() device.Device {
	return c.dev
}

// Transform returns the transformation from data coordinates to device
// coordinates.
func (c *Canvas) Transform() (geom.Transform[float64], error) {
	var m geom.Mapping[float64]
	view := geom.BoxFromRect[float64](c.Viewport)
	if err := defineMapping(&m, &c.Data, &view, c.Flip); err != nil {
		return geom.Transform[float64]{}, err
	}

	t := m.Transform()
	if c.Pre == matrix.Identity || c.Pre == (matrix.Matrix{}) {
		return t, nil
	}

	pre := geom.TransformFromMatrix[float64](c.Pre)
	var full geom.Transform[float64]
	if err := geom.ComposeTransforms(&full, &t, &pre); err != nil {
		return geom.Transform[float64]{}, fmt.Errorf("plot: data transform: %w", err)
	}
	return full, nil
}

// defineMapping computes the mapping from the data box to the viewport box,
// with error messages which name the offending box.
func defineMapping(dst *geom.Mapping[float64], data, view *geom.Box[float64], flip geom.Flip) error {
	if err := data.Check(); err != nil {
		return fmt.Errorf("plot: data range %v: %w", *data, err)
	}
	if err := view.Check(); err != nil {
		return fmt.Errorf("plot: viewport %v: %w", *view, err)
	}
	if err := geom.DefineMapping(dst, data, view, flip); err != nil {
		return fmt.Errorf("plot: mapping %v to %v: %w", *data, *view, err)
	}
	Logger().Debug("mapping defined",
		"xx", dst.XX, "x", dst.X, "yy", dst.YY, "y", dst.Y)
	return nil
}

// Polyline draws the line through the points (xs[i], ys[i]).
func (c *Canvas) Polyline(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return ErrLength
	}
	if err := c.load(xs, ys); err != nil {
		return err
	}
	if err := c.drawPolyline(c.bufX, c.bufY); err != nil {
		return err
	}
	return c.dev.Stroke()
}

// Segments draws unconnected line segments.  Segment i runs from
// (xs[2i], ys[2i]) to (xs[2i+1], ys[2i+1]).
func (c *Canvas) Segments(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return ErrLength
	}
	if err := c.load(xs, ys); err != nil {
		return err
	}
	box := geom.BoxFromRect[float64](c.Clip)
	if err := clip.DrawSegments(&box, c.bufX, c.bufY, c.dev); err != nil {
		return err
	}
	return c.dev.Stroke()
}

// StrokePath draws a path given in data coordinates.  Each subpath is
// drawn as a polyline.  If the path begins with a LineTo, the first
// subpath starts at that point.  The path must consist of straight lines
// only; if it contains curves, ErrCurve is returned and nothing is drawn.
func (c *Canvas) StrokePath(p path.Path) error {
	var xs, ys []float64
	var starts []int // start index of each subpath in xs/ys
	var startX, startY float64
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			starts = append(starts, len(xs))
			startX, startY = pts[0].X, pts[0].Y
			xs = append(xs, startX)
			ys = append(ys, startY)
		case path.CmdLineTo:
			if len(starts) == 0 {
				// a path without MoveTo starts at its first point
				starts = append(starts, 0)
				startX, startY = pts[0].X, pts[0].Y
			}
			xs = append(xs, pts[0].X)
			ys = append(ys, pts[0].Y)
		case path.CmdClose:
			if len(starts) == 0 {
				continue
			}
			xs = append(xs, startX)
			ys = append(ys, startY)
		default:
			return ErrCurve
		}
	}
	if len(xs) == 0 {
		return nil
	}

	if err := c.load(xs, ys); err != nil {
		return err
	}
	starts = append(starts, len(xs))
	for i := range len(starts) - 1 {
		a, b := starts[i], starts[i+1]
		if err := c.drawPolyline(c.bufX[a:b], c.bufY[a:b]); err != nil {
			return err
		}
	}
	return c.dev.Stroke()
}

// Close ends the current page and closes the device.
func (c *Canvas) Close() error {
	if c.closed {
		return device.ErrClosed
	}
	c.closed = true
	c.inPage = false

	err := c.dev.Close()
	if err != nil {
		Logger().Warn("closing device failed", "device", c.dev.Name(), "err", err)
		return err
	}
	Logger().Info("device closed", "device", c.dev.Name())
	return nil
}

// load transforms the given data points into device coordinates, storing
// the result in c.bufX and c.bufY, and makes sure that a page is open.
func (c *Canvas) load(xs, ys []float64) error {
	if c.closed {
		return device.ErrClosed
	}
	t, err := c.Transform()
	if err != nil {
		return err
	}

	n := len(xs)
	c.bufX = slices.Grow(c.bufX[:0], n)[:n]
	c.bufY = slices.Grow(c.bufY[:0], n)[:n]
	for i := range n {
		c.bufX[i], c.bufY[i] = t.Apply(xs[i], ys[i])
	}

	return c.beginPage()
}

// drawPolyline clips and draws a polyline given in device coordinates.
func (c *Canvas) drawPolyline(xs, ys []float64) error {
	box := geom.BoxFromRect[float64](c.Clip)
	if err := clip.DrawPolyline(&box, xs, ys, c.dev); err != nil {
		return err
	}
	Logger().Debug("polyline drawn", "points", len(xs))
	return nil
}

// beginPage starts a page on the device, if needed, and sets the line
// parameters.
func (c *Canvas) beginPage() error {
	if !c.inPage {
		if err := c.dev.BeginPage(); err != nil {
			return err
		}
		c.inPage = true
		Logger().Info("page started", "device", c.dev.Name())
	}
	if err := c.dev.SetLineWidth(c.LineWidth); err != nil {
		return err
	}
	return c.dev.SetLineStyle(c.Style)
}
