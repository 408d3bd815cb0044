package cellgrid

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"seehuhn.de/go/geom/rect"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		grid Grid
		ok   bool
	}{
		{"nil", nil, false},
		{"empty_row", Grid{{}}, false},
		{"single", Grid{{{}}}, true},
		{"rect", Grid{{{}, {}}, {{}, {}}}, true},
		{"ragged", Grid{{{}, {}}, {{}}}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.grid.Validate()
			if c.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !c.ok && err == nil {
				t.Error("expected an error")
			}
		})
	}

	if err := Grid(nil).Validate(); !errors.Is(err, errEmptyGrid) {
		t.Errorf("expected errEmptyGrid, got %v", err)
	}
}

func TestGeometry(t *testing.T) {
	g := Grid{
		{{}, {}, {}},
		{{}, {}, {}},
	}
	if g.Rows() != 2 || g.Cols() != 3 {
		t.Fatalf("expected 2×3 grid, got %d×%d", g.Rows(), g.Cols())
	}
	if size := g.Size(10); size != (image.Point{X: 30, Y: 20}) {
		t.Errorf("wrong size %v", size)
	}

	expected := rect.Rect{LLx: 20, LLy: 10, URx: 30, URy: 20}
	if r := g.CellRect(2, 1, 10); r != expected {
		t.Errorf("expected %v, got %v", expected, r)
	}
}

func TestGridImage(t *testing.T) {
	g := Grid{
		{{R: 1, G: 2, B: 3, A: 4}, {R: 5, G: 6, B: 7, A: 8, Visible: true}},
	}
	img := g.Image()
	if img.Rect != image.Rect(0, 0, 2, 1) {
		t.Fatalf("wrong bounds %v", img.Rect)
	}
	if c := img.NRGBAAt(0, 0); c != (color.NRGBA{R: 1, G: 2, B: 3, A: 4}) {
		t.Errorf("wrong colour %v", c)
	}
	if c := img.NRGBAAt(1, 0); c != g[0][1].NRGBA() {
		t.Errorf("wrong colour %v", c)
	}
}
