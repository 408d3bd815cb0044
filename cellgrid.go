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

// Package cellgrid renders a grid of coloured cells over a checkerboard
// background.
//
// Each cell is drawn as a square of Scale×Scale pixels. Cells which are
// not visible cut a transparent hole into the checkerboard, so that only
// the cell's own colour remains at that position.
package cellgrid

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"seehuhn.de/go/geom/rect"
)

// Cell is a single grid entry.
// The colour uses straight (non-premultiplied) alpha.
type Cell struct {
	R, G, B, A uint8

	// Visible controls whether the checkerboard is kept underneath the
	// cell.  If Visible is false, the checkerboard is removed there.
	Visible bool
}

// NRGBA returns the colour of the cell.
func (c Cell) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Grid is a rectangular arrangement of cells, in row-major order.
type Grid [][]Cell

// Rows returns the number of rows in the grid.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the number of columns in the grid.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

var errEmptyGrid = errors.New("empty grid")

// Validate checks that the grid is non-empty and that all rows have
// the same length.
func (g Grid) Validate() error {
	if g.Rows() == 0 || g.Cols() == 0 {
		return errEmptyGrid
	}
	cols := g.Cols()
	for y, row := range g {
		if len(row) != cols {
			return fmt.Errorf("row %d has %d cells, expected %d", y, len(row), cols)
		}
	}
	return nil
}

// Size returns the image size in pixels for the given scale.
func (g Grid) Size(scale int) image.Point {
	return image.Point{X: g.Cols() * scale, Y: g.Rows() * scale}
}

// CellRect returns the device-space rectangle covered by cell (x, y).
// The y axis points down.
func (g Grid) CellRect(x, y, scale int) rect.Rect {
	s := float64(scale)
	return rect.Rect{
		LLx: float64(x) * s,
		LLy: float64(y) * s,
		URx: float64(x+1) * s,
		URy: float64(y+1) * s,
	}
}

// Image returns the grid as an image with one pixel per cell.
// The visibility flags are not represented.
func (g Grid) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.Cols(), g.Rows()))
	for y, row := range g {
		for x, c := range row {
			img.SetNRGBA(x, y, c.NRGBA())
		}
	}
	return img
}
