package main

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/cellgrid"
)

// testInput returns a 4×1 image with a non-zero origin.  The leftmost
// pixel is opaque red, the others are fully transparent.
func testInput() *image.RGBA {
	img := image.NewRGBA(image.Rect(5, 5, 9, 6))
	img.SetRGBA(5, 5, color.RGBA{R: 255, A: 255})
	return img
}

func TestRun(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	tests := []struct {
		name      string
		thickness int
		opaque    bool
		expected  []color.NRGBA
	}{
		{"default thickness", 1, false, []color.NRGBA{red, {R: 255}, {}, {}}},
		{"two rings", 2, false, []color.NRGBA{red, {R: 255}, {R: 255}, {}}},
		{"opaque", 1, true, []color.NRGBA{red, red, {A: 255}, {A: 255}}},
	}

	dir := t.TempDir()
	input := filepath.Join(dir, "in.png")
	if err := cellgrid.SaveFile(input, testInput()); err != nil {
		t.Fatal(err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := filepath.Join(t.TempDir(), "out.png")
			if err := run(input, output, tt.thickness, tt.opaque); err != nil {
				t.Fatal(err)
			}

			src, err := loadImage(output)
			if err != nil {
				t.Fatal(err)
			}
			img := toNRGBA(src)
			if img.Rect != image.Rect(0, 0, 4, 1) {
				t.Fatalf("wrong bounds %v", img.Rect)
			}
			for x, want := range tt.expected {
				if got := img.NRGBAAt(x, 0); got != want {
					t.Errorf("pixel %d: got %v, want %v", x, got, want)
				}
			}
		})
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.png")
	if err := cellgrid.SaveFile(good, testInput()); err != nil {
		t.Fatal(err)
	}
	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		input  string
		output string
	}{
		{"missing input", filepath.Join(dir, "missing.png"), filepath.Join(dir, "out.png")},
		{"undecodable input", garbage, filepath.Join(dir, "out.png")},
		{"missing output directory", good, filepath.Join(dir, "no-such-dir", "out.png")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := run(tt.input, tt.output, 1, false); err == nil {
				t.Error("expected an error")
			}
		})
	}

	err := run(filepath.Join(dir, "missing.png"), filepath.Join(dir, "out.png"), 1, false)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}

func TestToNRGBA(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 8, 6))
	src.SetRGBA(5, 5, color.RGBA{R: 255, A: 255})
	src.SetRGBA(6, 5, color.RGBA{R: 128, A: 128})
	// (7,5) stays transparent

	img := toNRGBA(src)
	if img.Rect != image.Rect(0, 0, 3, 1) {
		t.Fatalf("wrong bounds %v", img.Rect)
	}
	expected := []color.NRGBA{{R: 255, A: 255}, {R: 255, A: 128}, {}}
	for x, want := range expected {
		if got := img.NRGBAAt(x, 0); got != want {
			t.Errorf("pixel %d: got %v, want %v", x, got, want)
		}
	}

	// NRGBA images with origin (0, 0) are used as they are
	if toNRGBA(img) != img {
		t.Error("image was copied unnecessarily")
	}
}
