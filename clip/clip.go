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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/plot/geom"
)

// Segment clips the segment from (x1, y1) to (x2, y2) against the box.
//
// If the result is [Rejected], the returned coordinates are the unmodified
// input.
func Segment[T constraints.Float](box *geom.Box[T], x1, y1, x2, y2 T) (cx1, cy1, cx2, cy2 T, r Result) {
	var s State[T]
	s.Init(box, x1, y1)
	r = s.Next(x2, y2)
	cx1, cy1, cx2, cy2 = s.Clipped()
	return cx1, cy1, cx2, cy2, r
}

// Clip clips the segment from p to q against the box.
func Clip(box *geom.Box[float64], p, q vec.Vec2) (vec.Vec2, vec.Vec2, Result) {
	x1, y1, x2, y2, r := Segment(box, p.X, p.Y, q.X, q.Y)
	return vec.Vec2{X: x1, Y: y1}, vec.Vec2{X: x2, Y: y2}, r
}

// Polyline clips the polyline with vertices (xs[i], ys[i]) against the box.
//
// Each visible segment is stored as two consecutive points in outX and
// outY, so that the shared vertex of two visible segments appears twice.
// The return value is the number of visible segments.  The output slices
// must have room for 2*(len(xs)-1) points and must not overlap xs or ys.
func Polyline[T constraints.Float](box *geom.Box[T], xs, ys, outX, outY []T) int {
	n := len(xs)
	if n < 2 {
		return 0
	}
	_ = ys[n-1]

	var s State[T]
	s.Init(box, xs[0], ys[0])
	k := 0
	for i := 1; i < n; i++ {
		if s.Next(xs[i], ys[i]) == Rejected {
			continue
		}
		outX[k], outY[k], outX[k+1], outY[k+1] = s.Clipped()
		k += 2
	}
	return k / 2
}

// Segments clips a batch of unrelated segments against the box.
//
// Segment i runs from (xs[2i], ys[2i]) to (xs[2i+1], ys[2i+1]).  The
// visible segments are stored, in order, at the start of outX and outY
// using the same layout, and their number is returned.
//
// The output slices may be the same as the input slices, in which case
// the visible segments are compacted in place.
func Segments[T constraints.Float](box *geom.Box[T], xs, ys, outX, outY []T) int {
	n := len(xs) / 2
	if n == 0 {
		return 0
	}
	_ = ys[2*n-1]

	var s State[T]
	s.Init(box, 0, 0)
	k := 0
	for i := range n {
		// k <= i, so the input points are read before they can be overwritten
		s.Restart(xs[2*i], ys[2*i])
		if s.Next(xs[2*i+1], ys[2*i+1]) == Rejected {
			continue
		}
		outX[2*k], outY[2*k], outX[2*k+1], outY[2*k+1] = s.Clipped()
		k++
	}
	return k
}
