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

// Package testcases contains polyline clipping scenarios with known
// results.  The cases are shared by the tests of several packages.
package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/plot/geom"
)

// TestCase defines a single clipping test.
type TestCase struct {
	Name string            // lowercase a-z and _ only
	Box  geom.Box[float64] // the clip box
	Path []vec.Vec2        // polyline vertices

	// Want lists the visible segments as (x1, y1, x2, y2), in order.
	// All coordinates are exactly representable.
	Want [][4]float64

	// Moves is the number of pen lifts needed to draw Want, when a segment
	// starting at the end of the previous one continues the line.
	Moves int
}

// XY returns the vertex coordinates as separate slices.
func (tc *TestCase) XY() (xs, ys []float64) {
	xs = make([]float64, len(tc.Path))
	ys = make([]float64, len(tc.Path))
	for i, p := range tc.Path {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return xs, ys
}

// Polyline returns the vertices as an open path.
func (tc *TestCase) Polyline() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for i, p := range tc.Path {
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			if !yield(cmd, []vec.Vec2{p}) {
				return
			}
		}
	}
}

// unit is the clip box used by most test cases.
var unit = geom.Box[float64]{XMin: 0, XMax: 10, YMin: 0, YMax: 10}

// unitReversed is the same box as unit, with the limits swapped.
var unitReversed = geom.Box[float64]{XMin: 10, XMax: 0, YMin: 10, YMax: 0}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
