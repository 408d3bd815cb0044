package cellgrid

import (
	"image"
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// FillCells rasterises the rectangles of all cells for which keep returns
// true.  Cells are described in grid coordinates and mapped to device
// space by scaling with scale.  For every pixel touched by a cell,
// paint is called with the pixel position, the cell and the coverage.
//
// The CTM of r is overwritten.
func FillCells(r *Rasteriser, g Grid, scale int, keep func(Cell) bool, paint func(x, y int, c Cell, cov float32)) {
	r.CTM = matrix.Scale(float64(scale), float64(scale))

	p := &path.Data{}
	for y, row := range g {
		for x, c := range row {
			if keep != nil && !keep(c) {
				continue
			}
			unitSquare(p, float64(x), float64(y))
			r.FillNonZero(p, func(py, xMin int, coverage []float32) {
				for i, cov := range coverage {
					paint(xMin+i, py, c, cov)
				}
			})
		}
	}
}

// unitSquare replaces the contents of p with the square [x,x+1]×[y,y+1].
func unitSquare(p *path.Data, x, y float64) {
	p.Cmds = p.Cmds[:0]
	p.Coords = p.Coords[:0]
	p.MoveTo(vec.Vec2{X: x, Y: y}).
		LineTo(vec.Vec2{X: x + 1, Y: y}).
		LineTo(vec.Vec2{X: x + 1, Y: y + 1}).
		LineTo(vec.Vec2{X: x, Y: y + 1}).
		Close()
}

// RenderForeground draws the cell colours into a new image of size
// g.Size(scale).  Every pixel inside cell (x, y) is set to the colour
// of that cell.
func RenderForeground(g Grid, scale int) *image.NRGBA {
	size := g.Size(scale)
	img := image.NewNRGBA(image.Rectangle{Max: size})
	r := NewRasteriser(clipRect(size))
	FillCells(r, g, scale, nil, func(x, y int, c Cell, cov float32) {
		col := c.NRGBA()
		if cov < 1 {
			col.A = uint8(float32(col.A)*cov + 0.5)
		}
		img.SetNRGBA(x, y, col)
	})
	return img
}

// PunchHoles clears the rectangles of all invisible cells in dst to fully
// transparent pixels.
func PunchHoles(dst *image.NRGBA, g Grid, scale int) {
	r := NewRasteriser(clipRect(dst.Bounds().Max))
	invisible := func(c Cell) bool { return !c.Visible }
	FillCells(r, g, scale, invisible, func(x, y int, _ Cell, cov float32) {
		if cov >= 1 {
			dst.SetNRGBA(x, y, color.NRGBA{})
			return
		}
		col := dst.NRGBAAt(x, y)
		col.A = uint8(float32(col.A)*(1-cov) + 0.5)
		dst.SetNRGBA(x, y, col)
	})
}

func clipRect(size image.Point) rect.Rect {
	return rect.Rect{URx: float64(size.X), URy: float64(size.Y)}
}
