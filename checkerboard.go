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

package cellgrid

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Default checkerboard shades.
var (
	// ShadeEven is used for tiles where row and column have the same parity.
	ShadeEven = color.NRGBA{R: 20, G: 20, B: 20, A: 255}

	// ShadeOdd is used for the remaining tiles.
	ShadeOdd = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
)

// Checkerboard returns a width×height image, tiled with squares of
// tile×tile pixels.  Tile (i, j), counted from the top-left corner,
// is painted with even if i and j have the same parity, and with odd
// otherwise.  Tiles at the right and bottom edge are clipped.
func Checkerboard(width, height, tile int, even, odd color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	if tile <= 0 {
		return img
	}

	shades := [2]image.Image{image.NewUniform(even), image.NewUniform(odd)}
	for i := 0; i*tile < height; i++ {
		for j := 0; j*tile < width; j++ {
			r := image.Rect(j*tile, i*tile, (j+1)*tile, (i+1)*tile).Intersect(img.Rect)
			draw.Draw(img, r, shades[TileParity(i, j)], image.Point{}, draw.Src)
		}
	}
	return img
}

// TileParity returns 0 for tiles painted in the even shade and 1 for
// tiles painted in the odd shade.
func TileParity(row, col int) int {
	return (row & 1) ^ (col & 1)
}
