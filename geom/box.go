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

// Package geom maps user data coordinates onto device coordinates.
//
// The package provides axis-aligned boxes, simple (axis-independent)
// mappings between boxes, and general 2D affine transforms.  All types are
// generic over the floating-point type, so that float32 and float64 share
// one implementation.
//
// Operations which write a result take the destination as their first
// argument.  Where documented, the destination may be the same object as
// one of the operands.
package geom

import (
	"errors"
	"math"

	"golang.org/x/exp/constraints"
	"seehuhn.de/go/geom/rect"
)

// ErrSingular is returned when a box, mapping or transform is degenerate:
// a zero-width box, a zero or NaN scale factor, a zero determinant, or a
// non-finite coefficient.
var ErrSingular = errors.New("geom: singular")

// Box is an axis-aligned rectangle.
//
// Most consumers require an ordered box, i.e. XMin <= XMax and
// YMin <= YMax.  Use [ReorderBoxLimits] to normalize a box whose limits
// are given in arbitrary order.
type Box[T constraints.Float] struct {
	XMin, XMax T
	YMin, YMax T
}

// Check returns nil if all four bounds are finite, and [ErrSingular]
// otherwise.  Check does not require the box to be ordered.
func (b *Box[T]) Check() error {
	if !isFinite(b.XMin) || !isFinite(b.XMax) || !isFinite(b.YMin) || !isFinite(b.YMax) {
		return ErrSingular
	}
	return nil
}

// IsEmpty reports whether XMin > XMax or YMin > YMax.
//
// The test is applied to the box as given, before any reordering.
// Callers decide whether an unordered box counts as empty or whether it
// should be reordered first.
func (b *Box[T]) IsEmpty() bool {
	return b.XMin > b.XMax || b.YMin > b.YMax
}

// Width returns XMax - XMin.
func (b *Box[T]) Width() T {
	return b.XMax - b.XMin
}

// Height returns YMax - YMin.
func (b *Box[T]) Height() T {
	return b.YMax - b.YMin
}

// Contains reports whether the point (x, y) lies in the closed box.
// The box must be ordered.
func (b *Box[T]) Contains(x, y T) bool {
	return x >= b.XMin && x <= b.XMax && y >= b.YMin && y <= b.YMax
}

// ReorderBoxLimits stores an ordered version of src in dst.
//
// If src has non-finite bounds, [ErrSingular] is returned and dst is not
// modified.  If dst and src are the same box, the limits are swapped in
// place where necessary.  Otherwise dst is always overwritten, even if src
// is already ordered.
func ReorderBoxLimits[T constraints.Float](dst, src *Box[T]) error {
	if err := src.Check(); err != nil {
		return err
	}

	if dst == src {
		if dst.XMin > dst.XMax {
			dst.XMin, dst.XMax = dst.XMax, dst.XMin
		}
		if dst.YMin > dst.YMax {
			dst.YMin, dst.YMax = dst.YMax, dst.YMin
		}
		return nil
	}

	dst.XMin = min(src.XMin, src.XMax)
	dst.XMax = max(src.XMin, src.XMax)
	dst.YMin = min(src.YMin, src.YMax)
	dst.YMax = max(src.YMin, src.YMax)
	return nil
}

// BoxFromRect converts a rectangle to a box.
func BoxFromRect[T constraints.Float](r rect.Rect) Box[T] {
	return Box[T]{
		XMin: T(r.LLx),
		XMax: T(r.URx),
		YMin: T(r.LLy),
		YMax: T(r.URy),
	}
}

// Rect converts the box to a rectangle.
func (b *Box[T]) Rect() rect.Rect {
	return rect.Rect{
		LLx: float64(b.XMin),
		LLy: float64(b.YMin),
		URx: float64(b.XMax),
		URy: float64(b.YMax),
	}
}

// isFinite reports whether v is neither infinite nor NaN.
func isFinite[T constraints.Float](v T) bool {
	f := float64(v)
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
