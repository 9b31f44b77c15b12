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
	"seehuhn.de/go/geom/matrix"
)

// Transform is a general 2D affine transform
//
//	x' = XX*x + XY*y + X
//	y' = YX*x + YY*y + Y
type Transform[T constraints.Float] struct {
	XX, XY, X T
	YX, YY, Y T
}

// IdentityTransform returns the transform which leaves all points
// unchanged.
func IdentityTransform[T constraints.Float]() Transform[T] {
	return Transform[T]{XX: 1, YY: 1}
}

// TransformFromMatrix converts a PDF-style transformation matrix
// [a b c d e f] to a transform.
func TransformFromMatrix[T constraints.Float](m matrix.Matrix) Transform[T] {
	return Transform[T]{
		XX: T(m[0]), XY: T(m[2]), X: T(m[4]),
		YX: T(m[1]), YY: T(m[3]), Y: T(m[5]),
	}
}

// Matrix converts the transform to a PDF-style transformation matrix.
func (t *Transform[T]) Matrix() matrix.Matrix {
	return matrix.Matrix{
		float64(t.XX), float64(t.YX),
		float64(t.XY), float64(t.YY),
		float64(t.X), float64(t.Y),
	}
}

// Check returns nil if all six coefficients are finite, and
// [ErrSingular] otherwise.
func (t *Transform[T]) Check() error {
	if !isFinite(t.XX) || !isFinite(t.XY) || !isFinite(t.X) ||
		!isFinite(t.YX) || !isFinite(t.YY) || !isFinite(t.Y) {
		return ErrSingular
	}
	return nil
}

// Apply transforms the point (x, y).
func (t *Transform[T]) Apply(x, y T) (T, T) {
	return t.XX*x + t.XY*y + t.X, t.YX*x + t.YY*y + t.Y
}

// Det returns the determinant of the linear part of t.
func (t *Transform[T]) Det() T {
	return t.XX*t.YY - t.XY*t.YX
}

// ComposeTransforms stores in dst the transform which first applies b and
// then a.  If the result is not finite, [ErrSingular] is returned and dst
// is left unchanged.
//
// The destination must be different from both a and b.  ComposeTransforms
// panics if this is not the case.
func ComposeTransforms[T constraints.Float](dst, a, b *Transform[T]) error {
	if dst == a || dst == b {
		panic("geom: ComposeTransforms destination aliases an operand")
	}

	return store(dst, Transform[T]{
		XX: a.XX*b.XX + a.XY*b.YX,
		XY: a.XX*b.XY + a.XY*b.YY,
		X:  a.XX*b.X + a.XY*b.Y + a.X,
		YX: a.YX*b.XX + a.YY*b.YX,
		YY: a.YX*b.XY + a.YY*b.YY,
		Y:  a.YX*b.X + a.YY*b.Y + a.Y,
	})
}

// ScalePre stores in dst the transform which first scales by (sx, sy) and
// then applies a.  The destination may be the same object as a.
func ScalePre[T constraints.Float](dst, a *Transform[T], sx, sy T) error {
	return store(dst, Transform[T]{
		XX: a.XX * sx, XY: a.XY * sy, X: a.X,
		YX: a.YX * sx, YY: a.YY * sy, Y: a.Y,
	})
}

// ScalePost stores in dst the transform which first applies a and then
// scales by (sx, sy).  The destination may be the same object as a.
func ScalePost[T constraints.Float](dst, a *Transform[T], sx, sy T) error {
	return store(dst, Transform[T]{
		XX: a.XX * sx, XY: a.XY * sx, X: a.X * sx,
		YX: a.YX * sy, YY: a.YY * sy, Y: a.Y * sy,
	})
}

// TranslatePre stores in dst the transform which first translates by
// (tx, ty) and then applies a.  The destination may be the same object as
// a.
func TranslatePre[T constraints.Float](dst, a *Transform[T], tx, ty T) error {
	return store(dst, Transform[T]{
		XX: a.XX, XY: a.XY, X: a.XX*tx + a.XY*ty + a.X,
		YX: a.YX, YY: a.YY, Y: a.YX*tx + a.YY*ty + a.Y,
	})
}

// TranslatePost stores in dst the transform which first applies a and
// then translates by (tx, ty).  The destination may be the same object as
// a.
func TranslatePost[T constraints.Float](dst, a *Transform[T], tx, ty T) error {
	return store(dst, Transform[T]{
		XX: a.XX, XY: a.XY, X: a.X + tx,
		YX: a.YX, YY: a.YY, Y: a.Y + ty,
	})
}

// RotatePre stores in dst the transform which first rotates
// counter-clockwise by phi radians and then applies a.  The destination
// may be the same object as a.
func RotatePre[T constraints.Float](dst, a *Transform[T], phi float64) error {
	c := T(math.Cos(phi))
	s := T(math.Sin(phi))
	return store(dst, Transform[T]{
		XX: a.XX*c + a.XY*s, XY: a.XY*c - a.XX*s, X: a.X,
		YX: a.YX*c + a.YY*s, YY: a.YY*c - a.YX*s, Y: a.Y,
	})
}

// RotatePost stores in dst the transform which first applies a and then
// rotates counter-clockwise by phi radians.  The destination may be the
// same object as a.
func RotatePost[T constraints.Float](dst, a *Transform[T], phi float64) error {
	c := T(math.Cos(phi))
	s := T(math.Sin(phi))
	return store(dst, Transform[T]{
		XX: c*a.XX - s*a.YX, XY: c*a.XY - s*a.YY, X: c*a.X - s*a.Y,
		YX: s*a.XX + c*a.YX, YY: s*a.XY + c*a.YY, Y: s*a.X + c*a.Y,
	})
}

// store writes res to dst if all coefficients of res are finite.
// Otherwise dst is left unchanged and [ErrSingular] is returned.
func store[T constraints.Float](dst *Transform[T], res Transform[T]) error {
	if err := res.Check(); err != nil {
		return err
	}
	*dst = res
	return nil
}

// InvertTransform stores the inverse of a in dst.  The destination may be
// the same object as a.
//
// If a has determinant zero, [ErrSingular] is returned and dst is left
// unchanged.
func InvertTransform[T constraints.Float](dst, a *Transform[T]) error {
	det := a.Det()
	if det == 0 {
		return ErrSingular
	}

	inv := Transform[T]{
		XX: a.YY / det,
		XY: -a.XY / det,
		X:  (a.XY*a.Y - a.YY*a.X) / det,
		YX: -a.YX / det,
		YY: a.XX / det,
		Y:  (a.YX*a.X - a.XX*a.Y) / det,
	}
	if err := inv.Check(); err != nil {
		return err
	}
	*dst = inv
	return nil
}

// LeftDivide stores in dst the transform X which solves a∘X = b, i.e. the
// transform which first applies b and then the inverse of a.  The
// destination may be the same object as a or b.
func LeftDivide[T constraints.Float](dst, a, b *Transform[T]) error {
	var inv, res Transform[T]
	if err := InvertTransform(&inv, a); err != nil {
		return err
	}
	if err := ComposeTransforms(&res, &inv, b); err != nil {
		return err
	}
	*dst = res
	return nil
}

// RightDivide stores in dst the transform X which solves X∘b = a, i.e. the
// transform which first applies the inverse of b and then a.  The
// destination may be the same object as a or b.
func RightDivide[T constraints.Float](dst, a, b *Transform[T]) error {
	var inv, res Transform[T]
	if err := InvertTransform(&inv, b); err != nil {
		return err
	}
	if err := ComposeTransforms(&res, a, &inv); err != nil {
		return err
	}
	*dst = res
	return nil
}

// Intercept returns the point which t maps to the origin.
// If t is singular, [ErrSingular] is returned.
func Intercept[T constraints.Float](t *Transform[T]) (x, y T, err error) {
	det := t.Det()
	if det == 0 {
		return 0, 0, ErrSingular
	}
	x = (t.XY*t.Y - t.YY*t.X) / det
	y = (t.YX*t.X - t.XX*t.Y) / det
	if !isFinite(x) || !isFinite(y) {
		return 0, 0, ErrSingular
	}
	return x, y, nil
}
