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

package clip

import (
	"golang.org/x/exp/constraints"

	"seehuhn.de/go/plot/geom"
)

// Pen receives the visible parts of clipped segments.
//
// Each visible segment is emitted as a call to MoveTo for the start point,
// followed by a call to LineTo for the end point.  If either method returns
// an error, drawing stops and the error is returned to the caller
// unchanged.
type Pen[T constraints.Float] interface {
	MoveTo(x, y T) error
	LineTo(x, y T) error
}

// DrawSegment clips the segment from (x1, y1) to (x2, y2) against the box
// and draws the visible part, if any.
func DrawSegment[T constraints.Float](box *geom.Box[T], x1, y1, x2, y2 T, pen Pen[T]) error {
	cx1, cy1, cx2, cy2, r := Segment(box, x1, y1, x2, y2)
	if r == Rejected {
		return nil
	}
	if err := pen.MoveTo(cx1, cy1); err != nil {
		return err
	}
	return pen.LineTo(cx2, cy2)
}

// DrawPolyline clips the polyline with vertices (xs[i], ys[i]) against the
// box and draws the visible parts.
//
// If a visible segment starts exactly where the previously drawn segment
// ended, the pen is not lifted: only LineTo is called.
func DrawPolyline[T constraints.Float](box *geom.Box[T], xs, ys []T, pen Pen[T]) error {
	n := len(xs)
	if n < 2 {
		return nil
	}
	_ = ys[n-1]

	var s State[T]
	s.Init(box, xs[0], ys[0])

	var lastX, lastY T
	drawn := false
	for i := 1; i < n; i++ {
		if s.Next(xs[i], ys[i]) == Rejected {
			continue
		}
		x1, y1, x2, y2 := s.Clipped()
		if !drawn || x1 != lastX || y1 != lastY {
			if err := pen.MoveTo(x1, y1); err != nil {
				return err
			}
		}
		if err := pen.LineTo(x2, y2); err != nil {
			return err
		}
		lastX, lastY = x2, y2
		drawn = true
	}
	return nil
}

// DrawSegments clips a batch of unrelated segments against the box and
// draws the visible parts.  The layout of xs and ys is the same as for
// [Segments].  Every visible segment starts with a call to MoveTo.
func DrawSegments[T constraints.Float](box *geom.Box[T], xs, ys []T, pen Pen[T]) error {
	n := len(xs) / 2
	if n == 0 {
		return nil
	}
	_ = ys[2*n-1]

	var s State[T]
	s.Init(box, 0, 0)
	for i := range n {
		s.Restart(xs[2*i], ys[2*i])
		if s.Next(xs[2*i+1], ys[2*i+1]) == Rejected {
			continue
		}
		x1, y1, x2, y2 := s.Clipped()
		if err := pen.MoveTo(x1, y1); err != nil {
			return err
		}
		if err := pen.LineTo(x2, y2); err != nil {
			return err
		}
	}
	return nil
}

// PenFuncs adapts a pair of functions to the [Pen] interface.
type PenFuncs[T constraints.Float] struct {
	Move func(x, y T) error
	Line func(x, y T) error
}

// MoveTo calls p.Move.
func (p PenFuncs[T]) MoveTo(x, y T) error { return p.Move(x, y) }

// LineTo calls p.Line.
func (p PenFuncs[T]) LineTo(x, y T) error { return p.Line(x, y) }
