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
	"errors"
	"math"
	"testing"

	"seehuhn.de/go/geom/rect"
)

func near(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*max(1, math.Abs(a), math.Abs(b))
}

func TestBoxCheck(t *testing.T) {
	good := Box[float64]{XMin: 10, XMax: -3, YMin: 0, YMax: 1}
	if err := good.Check(); err != nil {
		t.Errorf("unordered finite box: %v", err)
	}

	bad := []Box[float64]{
		{XMin: math.NaN(), XMax: 1, YMin: 0, YMax: 1},
		{XMin: 0, XMax: math.Inf(1), YMin: 0, YMax: 1},
		{XMin: 0, XMax: 1, YMin: math.Inf(-1), YMax: 1},
		{XMin: 0, XMax: 1, YMin: 0, YMax: math.NaN()},
	}
	for i, b := range bad {
		if err := b.Check(); !errors.Is(err, ErrSingular) {
			t.Errorf("%d: got %v, want ErrSingular", i, err)
		}
	}
}

func TestBoxIsEmpty(t *testing.T) {
	cases := []struct {
		box  Box[float32]
		want bool
	}{
		{Box[float32]{XMin: 0, XMax: 1, YMin: 0, YMax: 1}, false},
		{Box[float32]{XMin: 1, XMax: 1, YMin: 2, YMax: 2}, false},
		{Box[float32]{XMin: 2, XMax: 1, YMin: 0, YMax: 1}, true},
		{Box[float32]{XMin: 0, XMax: 1, YMin: 3, YMax: 1}, true},
	}
	for _, c := range cases {
		if got := c.box.IsEmpty(); got != c.want {
			t.Errorf("%v: IsEmpty() = %t, want %t", c.box, got, c.want)
		}
	}
}

func TestReorderBoxLimits(t *testing.T) {
	want := Box[float64]{XMin: -3, XMax: 10, YMin: 1, YMax: 5}

	// in place
	b := Box[float64]{XMin: 10, XMax: -3, YMin: 5, YMax: 1}
	if err := ReorderBoxLimits(&b, &b); err != nil {
		t.Fatal(err)
	}
	if b != want {
		t.Errorf("in place: got %v, want %v", b, want)
	}

	// separate destination, already ordered source is still copied
	var dst Box[float64]
	if err := ReorderBoxLimits(&dst, &want); err != nil {
		t.Fatal(err)
	}
	if dst != want {
		t.Errorf("copy: got %v, want %v", dst, want)
	}

	// failure leaves dst untouched
	dst = Box[float64]{XMin: 7, XMax: 8, YMin: 9, YMax: 10}
	orig := dst
	src := Box[float64]{XMin: math.NaN(), XMax: 1, YMin: 0, YMax: 1}
	if err := ReorderBoxLimits(&dst, &src); !errors.Is(err, ErrSingular) {
		t.Errorf("got %v, want ErrSingular", err)
	}
	if dst != orig {
		t.Errorf("dst modified on error: %v", dst)
	}
}

func TestBoxRect(t *testing.T) {
	r := rect.Rect{LLx: 1, LLy: 2, URx: 3, URy: 4}
	b := BoxFromRect[float64](r)
	if b != (Box[float64]{XMin: 1, XMax: 3, YMin: 2, YMax: 4}) {
		t.Errorf("BoxFromRect: got %v", b)
	}
	if b.Rect() != r {
		t.Errorf("Rect: got %v, want %v", b.Rect(), r)
	}
	if b.Width() != 2 || b.Height() != 2 {
		t.Errorf("size: got %gx%g", b.Width(), b.Height())
	}
	if !b.Contains(1, 4) || b.Contains(0.5, 3) {
		t.Error("Contains gives wrong answer")
	}
}

func TestDefineMappingCorners(t *testing.T) {
	in := Box[float64]{XMin: -1, XMax: 3, YMin: 10, YMax: 20}
	out := Box[float64]{XMin: 0, XMax: 595, YMin: 0, YMax: 842}

	for _, flip := range []Flip{FlipNone, FlipX, FlipY, FlipX | FlipY} {
		var m Mapping[float64]
		if err := DefineMapping(&m, &in, &out, flip); err != nil {
			t.Fatal(err)
		}

		wantXMin, wantXMax := out.XMin, out.XMax
		if flip&FlipX != 0 {
			wantXMin, wantXMax = wantXMax, wantXMin
		}
		wantYMin, wantYMax := out.YMin, out.YMax
		if flip&FlipY != 0 {
			wantYMin, wantYMax = wantYMax, wantYMin
		}

		corners := []struct{ x, y, wx, wy float64 }{
			{in.XMin, in.YMin, wantXMin, wantYMin},
			{in.XMax, in.YMin, wantXMax, wantYMin},
			{in.XMin, in.YMax, wantXMin, wantYMax},
			{in.XMax, in.YMax, wantXMax, wantYMax},
		}
		for _, c := range corners {
			x, y := m.Apply(c.x, c.y)
			if !near(x, c.wx) || !near(y, c.wy) {
				t.Errorf("flip=%d: (%g,%g) -> (%g,%g), want (%g,%g)",
					flip, c.x, c.y, x, y, c.wx, c.wy)
			}
		}
	}
}

func TestDefineMappingSingular(t *testing.T) {
	out := Box[float64]{XMin: 0, XMax: 1, YMin: 0, YMax: 1}
	m := Mapping[float64]{XX: 7, X: 7, YY: 7, Y: 7}
	orig := m

	flat := []Box[float64]{
		{XMin: 2, XMax: 2, YMin: 0, YMax: 1},
		{XMin: 0, XMax: 1, YMin: 5, YMax: 5},
	}
	for _, in := range flat {
		if err := DefineMapping(&m, &in, &out, FlipNone); !errors.Is(err, ErrSingular) {
			t.Errorf("%v: got %v, want ErrSingular", in, err)
		}
	}

	// non-finite result
	in := Box[float64]{XMin: 0, XMax: 1, YMin: 0, YMax: 1}
	huge := Box[float64]{XMin: -math.MaxFloat64, XMax: math.MaxFloat64, YMin: 0, YMax: 1}
	if err := DefineMapping(&m, &in, &huge, FlipNone); !errors.Is(err, ErrSingular) {
		t.Errorf("overflow: got %v, want ErrSingular", err)
	}

	if m != orig {
		t.Errorf("dst modified on error: %v", m)
	}
}

func TestComposeMappings(t *testing.T) {
	a := Mapping[float64]{XX: 2, X: 1, YY: -3, Y: 4}
	b := Mapping[float64]{XX: 5, X: -2, YY: 0.5, Y: 6}

	var ab Mapping[float64]
	if err := ComposeMappings(&ab, &a, &b); err != nil {
		t.Fatal(err)
	}
	for _, p := range [][2]float64{{0, 0}, {1, 2}, {-7, 3.5}} {
		bx, by := b.Apply(p[0], p[1])
		wx, wy := a.Apply(bx, by)
		x, y := ab.Apply(p[0], p[1])
		if !near(x, wx) || !near(y, wy) {
			t.Errorf("%v: got (%g,%g), want (%g,%g)", p, x, y, wx, wy)
		}
	}

	// destination aliases the left operand
	aa := a
	if err := ComposeMappings(&aa, &aa, &b); err != nil {
		t.Fatal(err)
	}
	if aa != ab {
		t.Errorf("aliased left: got %v, want %v", aa, ab)
	}

	// destination aliases the right operand
	bb := b
	if err := ComposeMappings(&bb, &a, &bb); err != nil {
		t.Fatal(err)
	}
	if bb != ab {
		t.Errorf("aliased right: got %v, want %v", bb, ab)
	}
}

func TestInvertMapping(t *testing.T) {
	ms := []Mapping[float64]{
		{XX: 2, X: 1, YY: -3, Y: 4},
		{XX: 1e-3, X: 1e3, YY: 1e3, Y: -1e-3},
		IdentityMapping[float64](),
	}
	id := IdentityMapping[float64]()
	for _, m := range ms {
		var inv, prod Mapping[float64]
		if err := InvertMapping(&inv, &m); err != nil {
			t.Fatal(err)
		}
		if err := ComposeMappings(&prod, &inv, &m); err != nil {
			t.Fatal(err)
		}
		if !near(prod.XX, id.XX) || !near(prod.X, id.X) || !near(prod.YY, id.YY) || !near(prod.Y, id.Y) {
			t.Errorf("%v: inv∘m = %v", m, prod)
		}

		// in place
		mm := m
		if err := InvertMapping(&mm, &mm); err != nil {
			t.Fatal(err)
		}
		if mm != inv {
			t.Errorf("aliased: got %v, want %v", mm, inv)
		}
	}
}

func TestInvertMappingSingular(t *testing.T) {
	bad := []Mapping[float32]{
		{XX: 0, X: 1, YY: 1, Y: 0},
		{XX: 1, X: 1, YY: 0, Y: 0},
		{XX: float32(math.NaN()), YY: 1},
		{XX: 1, YY: float32(math.NaN())},
	}
	for _, m := range bad {
		dst := Mapping[float32]{XX: 9}
		if err := InvertMapping(&dst, &m); !errors.Is(err, ErrSingular) {
			t.Errorf("%v: got %v, want ErrSingular", m, err)
		}
		if dst != (Mapping[float32]{XX: 9}) {
			t.Errorf("%v: dst modified", m)
		}
	}
}

func TestMappingFloat32(t *testing.T) {
	in := Box[float32]{XMin: 0, XMax: 4, YMin: 0, YMax: 2}
	out := Box[float32]{XMin: 0, XMax: 8, YMin: 0, YMax: 8}
	var m Mapping[float32]
	if err := DefineMapping(&m, &in, &out, FlipNone); err != nil {
		t.Fatal(err)
	}
	if m != (Mapping[float32]{XX: 2, X: 0, YY: 4, Y: 0}) {
		t.Errorf("got %v", m)
	}

	var b Box[float32]
	m.ApplyBox(&b, &in)
	if b != out {
		t.Errorf("ApplyBox: got %v, want %v", b, out)
	}
}
