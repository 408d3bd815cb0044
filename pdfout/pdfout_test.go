package pdfout

import (
	"bytes"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"slices"
	"testing"

	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/cellgrid"
	"seehuhn.de/go/cellgrid/testcases"
)

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	for category, cases := range testcases.All {
		for _, tc := range cases {
			name := category + "_" + tc.Name
			fname := filepath.Join(dir, name+".pdf")
			if err := Write(fname, tc.Grid, tc.Options()); err != nil {
				t.Errorf("%s: %v", name, err)
				continue
			}

			data, err := os.ReadFile(fname)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.HasPrefix(data, []byte("%PDF-")) {
				t.Errorf("%s: missing PDF header", name)
			}
		}
	}
}

func TestWriteInvalid(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "bad.pdf")
	if err := Write(fname, cellgrid.Grid{{{}}, {}}, nil); err == nil {
		t.Error("expected an error for a ragged grid")
	}
	if _, err := os.Stat(fname); err == nil {
		t.Error("file written despite error")
	}
}

func TestTiles(t *testing.T) {
	r := image.Rect(10, 0, 20, 10)
	var got []image.Rectangle
	for part := range tiles(r, 8) {
		got = append(got, part)
	}

	expected := []image.Rectangle{
		image.Rect(10, 0, 16, 8),
		image.Rect(16, 0, 20, 8),
		image.Rect(10, 8, 16, 10),
		image.Rect(16, 8, 20, 10),
	}
	if !slices.Equal(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}

	area := 0
	for _, part := range got {
		area += part.Dx() * part.Dy()
	}
	if area != r.Dx()*r.Dy() {
		t.Errorf("parts cover %d pixels, expected %d", area, r.Dx()*r.Dy())
	}
}

// TestLayoutHole checks that transparent holes are left unpainted, while
// opaque cells become a single rectangle each.
func TestLayoutHole(t *testing.T) {
	g := cellgrid.Grid{{
		{R: 255, A: 255, Visible: true},
		{},
		{G: 255, A: 255, Visible: true},
	}}
	size, fills, err := layout(g, &cellgrid.Options{Scale: 12, TileSize: 4})
	if err != nil {
		t.Fatal(err)
	}
	if size != image.Pt(36, 12) {
		t.Errorf("wrong page size %v", size)
	}

	expected := []fill{
		{r: image.Rect(0, 0, 12, 12), col: pdfcolor.DeviceRGB{1, 0, 0}},
		{r: image.Rect(24, 0, 36, 12), col: pdfcolor.DeviceRGB{0, 1, 0}},
	}
	if !slices.Equal(fills, expected) {
		t.Errorf("expected %v, got %v", expected, fills)
	}
}

// TestLayoutCheckerboard checks that a transparent visible cell is split
// into checkerboard tiles with alternating shades.
func TestLayoutCheckerboard(t *testing.T) {
	g := cellgrid.Grid{{{Visible: true}}}
	_, fills, err := layout(g, &cellgrid.Options{Scale: 8, TileSize: 4})
	if err != nil {
		t.Fatal(err)
	}
	if len(fills) != 4 {
		t.Fatalf("expected 4 tiles, got %d", len(fills))
	}
	even := onWhite(cellgrid.ShadeEven)
	odd := onWhite(cellgrid.ShadeOdd)
	for _, f := range fills {
		expected := even
		if cellgrid.TileParity(f.r.Min.Y/4, f.r.Min.X/4) == 1 {
			expected = odd
		}
		if f.col != expected {
			t.Errorf("tile %v: expected %v, got %v", f.r, expected, f.col)
		}
	}
}

func TestOnWhite(t *testing.T) {
	cases := []struct {
		in       color.NRGBA
		expected pdfcolor.DeviceRGB
	}{
		{color.NRGBA{R: 255, A: 255}, pdfcolor.DeviceRGB{1, 0, 0}},
		{color.NRGBA{R: 255, G: 255, B: 255, A: 255}, pdfcolor.DeviceRGB{1, 1, 1}},
		{color.NRGBA{A: 255}, pdfcolor.DeviceRGB{0, 0, 0}},
		{color.NRGBA{R: 77}, pdfcolor.DeviceRGB{1, 1, 1}},
		{color.NRGBA{A: 51}, pdfcolor.DeviceRGB{0.8, 0.8, 0.8}},
	}
	for _, c := range cases {
		got := onWhite(c.in)
		for i := range got {
			if math.Abs(got[i]-c.expected[i]) > 1e-9 {
				t.Errorf("%v: expected %v, got %v", c.in, c.expected, got)
				break
			}
		}
	}
}
