// seehuhn.de/go/cellgrid - checkerboard cell images
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

// Package testcases contains cell grids used for testing and for
// generating reference images.
package testcases

import "seehuhn.de/go/cellgrid"

// TestCase defines a single rendering test.
type TestCase struct {
	Name     string        // lowercase a-z, 0-9 and _ only
	Grid     cellgrid.Grid // the cells to render
	Scale    int           // cell size in pixels
	TileSize int           // checkerboard tile size in pixels
}

// Options returns the rendering options for the test case.
func (tc TestCase) Options() *cellgrid.Options {
	return &cellgrid.Options{
		Scale:    tc.Scale,
		TileSize: tc.TileSize,
	}
}

// Commonly used cells.
var (
	red   = show(255, 0, 0, 255)
	green = show(0, 255, 0, 255)
	blue  = show(0, 0, 255, 255)
	white = show(255, 255, 255, 255)
	none  = show(0, 0, 0, 0)
)

// show returns a visible cell.
func show(r, g, b, a uint8) cellgrid.Cell {
	return cellgrid.Cell{R: r, G: g, B: b, A: a, Visible: true}
}

// hide returns a cell which removes the checkerboard underneath.
func hide(r, g, b, a uint8) cellgrid.Cell {
	return cellgrid.Cell{R: r, G: g, B: b, A: a}
}
