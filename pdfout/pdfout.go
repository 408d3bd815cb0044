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

// Package pdfout writes cell grids as vector graphics in PDF format.
//
// The page shows the same picture as cellgrid.Render, with one PDF point
// per pixel.  Translucent colours are flattened against the white page.
package pdfout

import (
	"image"
	"image/color"
	"iter"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/cellgrid"
)

// Write renders g to a single-page PDF file.
func Write(fname string, g cellgrid.Grid, opt *cellgrid.Options) error {
	size, fills, err := layout(g, opt)
	if err != nil {
		return err
	}

	paper := &pdf.Rectangle{
		URx: float64(size.X),
		URy: float64(size.Y),
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; the grid starts at the top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(size.Y)})

	for _, f := range fills {
		page.SetFillColor(f.col)
		page.Rectangle(float64(f.r.Min.X), float64(f.r.Min.Y),
			float64(f.r.Dx()), float64(f.r.Dy()))
		page.Fill()
	}

	return page.Close()
}

// fill is one rectangle of uniform colour on the page.
type fill struct {
	r   image.Rectangle
	col pdfcolor.DeviceRGB
}

// layout renders g and splits the result into rectangles of uniform
// colour.  Fully transparent parts are omitted.
func layout(g cellgrid.Grid, opt *cellgrid.Options) (image.Point, []fill, error) {
	o, err := opt.Resolve()
	if err != nil {
		return image.Point{}, nil, err
	}
	img, err := cellgrid.Render(g, &o)
	if err != nil {
		return image.Point{}, nil, err
	}

	var fills []fill
	for y, row := range g {
		for x, c := range row {
			cr := toImageRect(g.CellRect(x, y, o.Scale))

			// Opaque cells and holes have a single colour, everywhere
			// else the checkerboard shows through.
			parts := tiles(cr, o.TileSize)
			if c.A == 255 || !c.Visible {
				parts = single(cr)
			}
			for part := range parts {
				col := img.NRGBAAt(part.Min.X, part.Min.Y)
				if col.A == 0 {
					continue
				}
				fills = append(fills, fill{r: part, col: onWhite(col)})
			}
		}
	}
	return img.Rect.Size(), fills, nil
}

func toImageRect(r rect.Rect) image.Rectangle {
	return image.Rect(int(r.LLx), int(r.LLy), int(r.URx), int(r.URy))
}

// tiles splits r along the boundaries of a checkerboard with the given
// tile size.
func tiles(r image.Rectangle, tile int) iter.Seq[image.Rectangle] {
	return func(yield func(image.Rectangle) bool) {
		for ty := r.Min.Y / tile; ty*tile < r.Max.Y; ty++ {
			for tx := r.Min.X / tile; tx*tile < r.Max.X; tx++ {
				t := image.Rect(tx*tile, ty*tile, (tx+1)*tile, (ty+1)*tile).Intersect(r)
				if t.Empty() {
					continue
				}
				if !yield(t) {
					return
				}
			}
		}
	}
}

func single(r image.Rectangle) iter.Seq[image.Rectangle] {
	return func(yield func(image.Rectangle) bool) {
		yield(r)
	}
}

// onWhite composites col over a white background.
func onWhite(col color.NRGBA) pdfcolor.DeviceRGB {
	a := float64(col.A) / 255
	mix := func(v uint8) float64 {
		return float64(v)/255*a + (1 - a)
	}
	return pdfcolor.DeviceRGB{mix(col.R), mix(col.G), mix(col.B)}
}
