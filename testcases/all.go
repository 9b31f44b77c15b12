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

package testcases

import "seehuhn.de/go/geom/vec"

// All contains all test cases, grouped by category.
var All = map[string][]TestCase{
	"inside":   insideCases,
	"crossing": crossingCases,
	"outside":  outsideCases,
}

var insideCases = []TestCase{
	{
		Name: "square",
		Box:  unit,
		Path: []vec.Vec2{pt(1, 1), pt(9, 1), pt(9, 9), pt(1, 9), pt(1, 1)},
		Want: [][4]float64{
			{1, 1, 9, 1},
			{9, 1, 9, 9},
			{9, 9, 1, 9},
			{1, 9, 1, 1},
		},
		Moves: 1,
	},
	{
		Name: "on_boundary",
		Box:  unit,
		Path: []vec.Vec2{pt(0, 0), pt(10, 0), pt(10, 10)},
		Want: [][4]float64{
			{0, 0, 10, 0},
			{10, 0, 10, 10},
		},
		Moves: 1,
	},
	{
		Name: "unordered_box",
		Box:  unitReversed,
		Path: []vec.Vec2{pt(2, 3), pt(7, 8)},
		Want: [][4]float64{
			{2, 3, 7, 8},
		},
		Moves: 1,
	},
}

var crossingCases = []TestCase{
	{
		Name:  "enter_left",
		Box:   unit,
		Path:  []vec.Vec2{pt(-5, 5), pt(5, 5)},
		Want:  [][4]float64{{0, 5, 5, 5}},
		Moves: 1,
	},
	{
		Name:  "through_horizontal",
		Box:   unit,
		Path:  []vec.Vec2{pt(-5, 5), pt(15, 5)},
		Want:  [][4]float64{{0, 5, 10, 5}},
		Moves: 1,
	},
	{
		Name:  "through_vertical",
		Box:   unit,
		Path:  []vec.Vec2{pt(5, -5), pt(5, 15)},
		Want:  [][4]float64{{5, 0, 5, 10}},
		Moves: 1,
	},
	{
		Name:  "through_diagonal",
		Box:   unit,
		Path:  []vec.Vec2{pt(-5, -5), pt(15, 15)},
		Want:  [][4]float64{{0, 0, 10, 10}},
		Moves: 1,
	},
	{
		Name: "out_and_back",
		Box:  unit,
		Path: []vec.Vec2{pt(5, 5), pt(15, 5), pt(5, 8)},
		Want: [][4]float64{
			{5, 5, 10, 5},
			{10, 6.5, 5, 8},
		},
		Moves: 2,
	},
	{
		Name: "leave_top",
		Box:  unit,
		Path: []vec.Vec2{pt(-5, 5), pt(5, 5), pt(5, 15)},
		Want: [][4]float64{
			{0, 5, 5, 5},
			{5, 5, 5, 10},
		},
		Moves: 1,
	},
	{
		Name: "peak_cut",
		Box:  unit,
		Path: []vec.Vec2{pt(2, 6), pt(6, 14), pt(10, 6)},
		Want: [][4]float64{
			{2, 6, 4, 10},
			{8, 10, 10, 6},
		},
		Moves: 2,
	},
	{
		Name:  "corner_touch",
		Box:   unit,
		Path:  []vec.Vec2{pt(-5, 5), pt(5, -5)},
		Want:  [][4]float64{{0, 0, 0, 0}},
		Moves: 1,
	},
}

var outsideCases = []TestCase{
	{
		Name:  "shared_region",
		Box:   unit,
		Path:  []vec.Vec2{pt(-5, -5), pt(-1, -1)},
		Moves: 0,
	},
	{
		Name:  "corner_miss",
		Box:   unit,
		Path:  []vec.Vec2{pt(-6, 5), pt(5, -6)},
		Moves: 0,
	},
	{
		Name:  "far_right",
		Box:   unit,
		Path:  []vec.Vec2{pt(11, 0), pt(20, 20)},
		Moves: 0,
	},
	{
		Name:  "around_the_box",
		Box:   unit,
		Path:  []vec.Vec2{pt(-1, -1), pt(11, -1), pt(11, 11), pt(-1, 11), pt(-1, -1)},
		Moves: 0,
	},
}
