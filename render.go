package cellgrid

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
)

// Options controls the layout of the rendered image.
// Zero fields are replaced by the values from DefaultOptions.  In
// particular, a fully transparent shade cannot be requested: the zero
// colour for Even or Odd selects the default shade.
type Options struct {
	// Scale is the edge length of one cell, in pixels.
	Scale int

	// TileSize is the edge length of one checkerboard tile, in pixels.
	TileSize int

	// Even and Odd are the two checkerboard shades.
	Even, Odd color.NRGBA
}

// DefaultOptions returns the options used when no options are given.
func DefaultOptions() Options {
	return Options{
		Scale:    100,
		TileSize: 8,
		Even:     ShadeEven,
		Odd:      ShadeOdd,
	}
}

var errNegativeSize = errors.New("negative size")

// Resolve returns a copy of o with all zero fields replaced by defaults.
// A nil receiver gives DefaultOptions.
func (o *Options) Resolve() (Options, error) {
	res := DefaultOptions()
	if o == nil {
		return res, nil
	}
	if o.Scale < 0 || o.TileSize < 0 {
		return Options{}, fmt.Errorf("scale %d, tile size %d: %w", o.Scale, o.TileSize, errNegativeSize)
	}
	if o.Scale > 0 {
		res.Scale = o.Scale
	}
	if o.TileSize > 0 {
		res.TileSize = o.TileSize
	}
	if o.Even != (color.NRGBA{}) {
		res.Even = o.Even
	}
	if o.Odd != (color.NRGBA{}) {
		res.Odd = o.Odd
	}
	return res, nil
}

// Render draws the grid over a checkerboard background.
//
// The cell colours are composited over the checkerboard.  Where a cell is
// not visible, the checkerboard is removed first, so that the output
// pixels there equal the cell colour.
func Render(g Grid, opt *Options) (*image.NRGBA, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	o, err := opt.Resolve()
	if err != nil {
		return nil, err
	}

	fg := RenderForeground(g, o.Scale)

	size := g.Size(o.Scale)
	bg := Checkerboard(size.X, size.Y, o.TileSize, o.Even, o.Odd)
	PunchHoles(bg, g, o.Scale)

	return Composite(fg, bg), nil
}

// Composite returns fg drawn over bg, using straight alpha compositing.
// The result has the bounds of bg.  Neither input is modified.
func Composite(fg, bg image.Image) *image.NRGBA {
	b := bg.Bounds()
	out := image.NewNRGBA(b)
	draw.Draw(out, b, bg, b.Min, draw.Src)
	draw.Draw(out, b, fg, b.Min, draw.Over)
	return out
}

// WritePNG encodes img in PNG format.
// Images without any transparent pixels are stored with colour type RGB
// instead of RGBA; the decoded pixel values are the same.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// SaveFile writes img to the named file, in PNG format.
func SaveFile(fname string, img image.Image) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := WritePNG(f, img); err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}
	return nil
}
