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

// Package clip clips line segments and polylines against a rectangle.
//
// The algorithm is the Cohen-Sutherland outcode method.  Segments which lie
// completely inside the box are passed on unchanged, without any
// floating-point rounding.  Segments which share an outside region are
// rejected without further computation.  All other segments are clamped to
// the box edges, or rejected if the clamped segment misses the box.
//
// Clipping functions accept boxes with limits in either order; they never
// report a bad box.  Use [geom.Box.Check] to validate a box first.
package clip

import (
	"golang.org/x/exp/constraints"

	"seehuhn.de/go/plot/geom"
)

// Code is a region code which classifies a point relative to a box.
type Code uint8

// These are the bits of a region code.  Left and Right are mutually
// exclusive, as are Bottom and Top.
const (
	Left   Code = 1 << 0 // x < xmin
	Right  Code = 1 << 1 // x > xmax
	Bottom Code = 1 << 2 // y < ymin
	Top    Code = 1 << 3 // y > ymax
)

// Inside is the region code of points inside the box.
const Inside Code = 0

// Result classifies a clipped segment.
type Result uint8

// These are the possible outcomes of clipping a segment.
const (
	// Rejected means that no part of the segment is visible.
	Rejected Result = 0

	// Accepted means that the segment lies inside the box and was not
	// modified.
	Accepted Result = 1

	// Clipped means that at least one endpoint was moved onto the
	// boundary of the box.
	Clipped Result = 2
)

func (r Result) String() string {
	switch r {
	case Rejected:
		return "rejected"
	case Accepted:
		return "accepted"
	case Clipped:
		return "clipped"
	default:
		return "invalid"
	}
}

// Outcode returns the region code of (x, y) relative to the box.  The box
// must be ordered.
func Outcode[T constraints.Float](box *geom.Box[T], x, y T) Code {
	return outcode(box.XMin, box.XMax, box.YMin, box.YMax, x, y)
}

func outcode[T constraints.Float](xMin, xMax, yMin, yMax, x, y T) Code {
	var c Code
	if x < xMin {
		c |= Left
	} else if x > xMax {
		c |= Right
	}
	if y < yMin {
		c |= Bottom
	} else if y > yMax {
		c |= Top
	}
	return c
}

// State clips the segments of a polyline one vertex at a time.
//
// Consecutive segments share their endpoints: the second point of one
// segment is the first point of the next.  After each call to
// [State.Next], [State.Clipped] returns the visible part of the most
// recent segment.
//
// The zero State is not usable; call [State.Init] or use [NewState].
type State[T constraints.Float] struct {
	// ordered clip box
	xMin, xMax T
	yMin, yMax T

	// raw endpoints of the current segment, and their region codes
	x1, y1 T
	x2, y2 T
	c1, c2 Code

	// clipped endpoints of the current segment
	cx1, cy1 T
	cx2, cy2 T
}

// NewState returns a State for the given box, starting at (x0, y0).
func NewState[T constraints.Float](box *geom.Box[T], x0, y0 T) *State[T] {
	s := &State[T]{}
	s.Init(box, x0, y0)
	return s
}

// Init sets the clip box and the first vertex of a polyline.
// The box limits may be given in either order.
func (s *State[T]) Init(box *geom.Box[T], x0, y0 T) {
	s.xMin = min(box.XMin, box.XMax)
	s.xMax = max(box.XMin, box.XMax)
	s.yMin = min(box.YMin, box.YMax)
	s.yMax = max(box.YMin, box.YMax)
	s.Restart(x0, y0)
}

// Restart starts a new polyline at (x0, y0), keeping the clip box.
func (s *State[T]) Restart(x0, y0 T) {
	s.x2, s.y2 = x0, y0
	s.c2 = outcode(s.xMin, s.xMax, s.yMin, s.yMax, x0, y0)
}

// Next adds the vertex (x, y) to the polyline and clips the segment from
// the previous vertex to (x, y).
func (s *State[T]) Next(x, y T) Result {
	s.x1, s.y1, s.c1 = s.x2, s.y2, s.c2
	s.x2, s.y2 = x, y
	s.c2 = outcode(s.xMin, s.xMax, s.yMin, s.yMax, x, y)
	return s.classify()
}

// Clipped returns the endpoints of the most recent segment.  For accepted
// segments these are the raw vertices, for clipped segments the points on
// the box boundary.  For rejected segments the raw vertices are returned.
func (s *State[T]) Clipped() (x1, y1, x2, y2 T) {
	return s.cx1, s.cy1, s.cx2, s.cy2
}

// Box returns the ordered clip box.
func (s *State[T]) Box() geom.Box[T] {
	return geom.Box[T]{XMin: s.xMin, XMax: s.xMax, YMin: s.yMin, YMax: s.yMax}
}

// classify decides whether the current segment is inside, outside, or
// crossing the box, and computes the clipped endpoints.
func (s *State[T]) classify() Result {
	s.cx1, s.cy1 = s.x1, s.y1
	s.cx2, s.cy2 = s.x2, s.y2

	if s.c1 == Inside && s.c2 == Inside {
		return Accepted
	}
	if s.c1&s.c2 != 0 {
		return Rejected
	}

	if s.c1 != Inside {
		x, y, ok := s.clamp(s.x1, s.y1, s.x2, s.y2)
		if !ok {
			s.cx1, s.cy1 = s.x1, s.y1
			return Rejected
		}
		s.cx1, s.cy1 = x, y
	}
	if s.c2 != Inside {
		x, y, ok := s.clamp(s.x2, s.y2, s.x1, s.y1)
		if !ok {
			s.cx1, s.cy1 = s.x1, s.y1
			return Rejected
		}
		s.cx2, s.cy2 = x, y
	}
	return Clipped
}

// clamp moves the point p=(px, py) along the line towards q=(qx, qy)
// until it lies on the boundary of the box.  The new coordinates are
// computed starting from q, which has not been moved.
//
// The y limits are applied first, then the x limits.  If the resulting
// point is still outside the box, the line misses the box and ok is false.
func (s *State[T]) clamp(px, py, qx, qy T) (x, y T, ok bool) {
	dx := px - qx
	dy := py - qy
	x, y = px, py

	if y > s.yMax {
		x = qx + dx*(s.yMax-qy)/dy
		y = s.yMax
	} else if y < s.yMin {
		x = qx + dx*(s.yMin-qy)/dy
		y = s.yMin
	}

	if x > s.xMax {
		y = qy + dy*(s.xMax-qx)/dx
		x = s.xMax
	} else if x < s.xMin {
		y = qy + dy*(s.xMin-qx)/dx
		x = s.xMin
	}

	ok = y >= s.yMin && y <= s.yMax && x >= s.xMin && x <= s.xMax
	return x, y, ok
}
