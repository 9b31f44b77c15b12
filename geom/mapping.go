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

package geom

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Mapping is a simple, axis-independent mapping
//
//	x' = XX*x + X
//	y' = YY*y + Y
//
// A usable mapping has four finite coefficients, see [Mapping.Check].
type Mapping[T constraints.Float] struct {
	XX, X T
	YY, Y T
}

// IdentityMapping returns the mapping which leaves all points unchanged.
func IdentityMapping[T constraints.Float]() Mapping[T] {
	return Mapping[T]{XX: 1, YY: 1}
}

// Flip selects axes which are reversed by [DefineMapping].
type Flip uint8

// These are the valid flip bits.
const (
	FlipNone Flip = 0
	FlipX    Flip = 1 << 0
	FlipY    Flip = 1 << 1
)

// Check returns nil if all four coefficients are finite, and
// [ErrSingular] otherwise.
func (m *Mapping[T]) Check() error {
	if !isFinite(m.XX) || !isFinite(m.X) || !isFinite(m.YY) || !isFinite(m.Y) {
		return ErrSingular
	}
	return nil
}

// Apply maps the point (x, y).
func (m *Mapping[T]) Apply(x, y T) (T, T) {
	return m.XX*x + m.X, m.YY*y + m.Y
}

// DefineMapping stores in dst the mapping which takes the box in onto the
// box out.  The corner (in.XMin, in.YMin) is mapped to (out.XMin, out.YMin)
// and so on.  If FlipX is set in flip, in.XMin is mapped to out.XMax
// instead, and similarly for FlipY.
//
// The boxes need not be ordered, but in must have non-zero width and
// height.  [ErrSingular] is returned if this is not the case or if the
// resulting coefficients are not finite.  In case of error, dst is left
// unchanged.
func DefineMapping[T constraints.Float](dst *Mapping[T], in, out *Box[T], flip Flip) error {
	dx := in.XMax - in.XMin
	dy := in.YMax - in.YMin
	if dx == 0 || dy == 0 {
		return ErrSingular
	}

	outXMin, outXMax := out.XMin, out.XMax
	if flip&FlipX != 0 {
		outXMin, outXMax = outXMax, outXMin
	}
	outYMin, outYMax := out.YMin, out.YMax
	if flip&FlipY != 0 {
		outYMin, outYMax = outYMax, outYMin
	}

	m := Mapping[T]{
		XX: (outXMax - outXMin) / dx,
		X:  (in.XMax*outXMin - in.XMin*outXMax) / dx,
		YY: (outYMax - outYMin) / dy,
		Y:  (in.YMax*outYMin - in.YMin*outYMax) / dy,
	}
	if err := m.Check(); err != nil {
		return err
	}
	*dst = m
	return nil
}

// ComposeMappings stores in dst the mapping which first applies b and then
// a.  The destination may be the same object as a or b.
func ComposeMappings[T constraints.Float](dst, a, b *Mapping[T]) error {
	// The translation terms are computed before the scale terms, so that
	// the scale factors of a are still intact when dst aliases a.
	x := a.XX*b.X + a.X
	xx := a.XX * b.XX
	y := a.YY*b.Y + a.Y
	yy := a.YY * b.YY

	m := Mapping[T]{XX: xx, X: x, YY: yy, Y: y}
	if err := m.Check(); err != nil {
		return err
	}
	*dst = m
	return nil
}

// InvertMapping stores the inverse of a in dst.  The destination may be
// the same object as a.
//
// If either scale factor of a is zero or NaN, [ErrSingular] is returned
// and dst is left unchanged.
func InvertMapping[T constraints.Float](dst, a *Mapping[T]) error {
	if a.XX == 0 || a.YY == 0 || math.IsNaN(float64(a.XX)) || math.IsNaN(float64(a.YY)) {
		return ErrSingular
	}

	// translation before scale, see ComposeMappings
	x := -a.X / a.XX
	xx := 1 / a.XX
	y := -a.Y / a.YY
	yy := 1 / a.YY

	m := Mapping[T]{XX: xx, X: x, YY: yy, Y: y}
	if err := m.Check(); err != nil {
		return err
	}
	*dst = m
	return nil
}

// ApplyBox maps the corners of src and stores the result in dst.  The
// result is not reordered, so a mapping with a negative scale factor
// produces an unordered box.  The destination may be the same object as
// src.
func (m *Mapping[T]) ApplyBox(dst, src *Box[T]) {
	xMin, yMin := m.Apply(src.XMin, src.YMin)
	xMax, yMax := m.Apply(src.XMax, src.YMax)
	*dst = Box[T]{XMin: xMin, XMax: xMax, YMin: yMin, YMax: yMax}
}

// Transform returns m as a general affine transform.
func (m *Mapping[T]) Transform() Transform[T] {
	return Transform[T]{XX: m.XX, X: m.X, YY: m.YY, Y: m.Y}
}
