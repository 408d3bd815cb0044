// Command alphableed fills the colour of fully transparent pixels near the
// visible part of an image, so that texture filtering does not produce dark
// fringes.
//
// Usage:
//
//	alphableed [-t thickness] [-opaque] <input> <output>
//
// The output is always written in PNG format.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"seehuhn.de/go/cellgrid"
	"seehuhn.de/go/cellgrid/bleed"
)

var (
	thickness = flag.Int("t", 1, "number of pixel `rings` to fill")
	opaque    = flag.Bool("opaque", false, "make all pixels opaque after bleeding")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [options] <input> <output>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	input, output := flag.Arg(0), flag.Arg(1)

	if err := run(input, output, *thickness, *opaque); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	fmt.Println("Successfully saved", output)
}

func run(input, output string, thickness int, opaque bool) error {
	src, err := loadImage(input)
	if err != nil {
		return err
	}

	img := toNRGBA(src)
	bleed.AlphaBleed(img, thickness)
	if opaque {
		bleed.MakeOpaque(img)
	}

	return cellgrid.SaveFile(output, img)
}

func loadImage(fname string) (image.Image, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return img, nil
}

// toNRGBA returns img as an *image.NRGBA with origin (0, 0).
func toNRGBA(img image.Image) *image.NRGBA {
	if res, ok := img.(*image.NRGBA); ok && res.Rect.Min == (image.Point{}) {
		return res
	}
	b := img.Bounds()
	res := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(res, res.Rect, img, b.Min, draw.Src)
	return res
}
