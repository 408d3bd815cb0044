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

// Package bleed extends the colours of an image into its fully transparent
// areas.
//
// Filtering a texture (scaling, mip-mapping) mixes the colour of
// transparent pixels into the visible ones.  Transparent pixels usually
// have arbitrary colour values, often black, which shows up as dark
// fringes.  AlphaBleed replaces the colour of transparent pixels near the
// visible area by an average of their visible neighbours, leaving the
// alpha channel untouched.
package bleed

import "image"

// neighbours lists the offsets of the 8-neighbourhood of a pixel.
var neighbours = [8]image.Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// AlphaBleed modifies img in place.
//
// First, every pixel with alpha 0 is set to (0, 0, 0, 0).  Then the
// colour of pixels with non-zero alpha is spread into the transparent
// area, one ring of pixels per round, for the given number of rounds.
// A transparent pixel in the current ring gets the mean colour of those
// neighbours which had a colour at the start of the round.  The alpha
// channel is never changed.
func AlphaBleed(img *image.NRGBA, thickness int) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return
	}

	pixOffset := func(i int) int {
		return img.PixOffset(b.Min.X+i%w, b.Min.Y+i/w)
	}
	alpha := func(i int) uint8 {
		return img.Pix[pixOffset(i)+3]
	}
	// each calls fn for all neighbours of pixel i inside the image
	each := func(i int, fn func(j int)) {
		x, y := i%w, i/w
		for _, d := range neighbours {
			nx, ny := x+d.X, y+d.Y
			if nx < 0 || nx >= w || ny < 0 || ny >= h {
				continue
			}
			fn(ny*w + nx)
		}
	}

	visited := make([]bool, w*h)
	canSample := make([]bool, w*h)
	var queue []int

	for i := range w * h {
		if alpha(i) != 0 {
			visited[i] = true
			canSample[i] = true
			continue
		}

		nextToOpaque := false
		each(i, func(j int) {
			if alpha(j) != 0 {
				nextToOpaque = true
			}
		})
		if nextToOpaque {
			visited[i] = true
			queue = append(queue, i)
		}

		off := pixOffset(i)
		clear(img.Pix[off : off+4])
	}

	var filled []int
	for range thickness {
		if len(queue) == 0 {
			break
		}
		ring := queue
		queue = nil
		filled = filled[:0]

		for _, i := range ring {
			var sum [3]int
			count := 0
			each(i, func(j int) {
				if canSample[j] {
					off := pixOffset(j)
					sum[0] += int(img.Pix[off])
					sum[1] += int(img.Pix[off+1])
					sum[2] += int(img.Pix[off+2])
					count++
				} else if !visited[j] {
					visited[j] = true
					queue = append(queue, j)
				}
			})

			count = max(count, 1)
			off := pixOffset(i)
			img.Pix[off] = uint8(sum[0] / count)
			img.Pix[off+1] = uint8(sum[1] / count)
			img.Pix[off+2] = uint8(sum[2] / count)
			img.Pix[off+3] = 0
			filled = append(filled, i)
		}

		// Pixels coloured in this round become available for the next.
		for _, i := range filled {
			canSample[i] = true
		}
	}
}

// MakeOpaque sets the alpha channel of every pixel to 255, keeping the
// colour values.
func MakeOpaque(img *image.NRGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Pix[img.PixOffset(x, y)+3] = 255
		}
	}
}
