// Command cellgrid writes the built-in cell grid to output.png.
//
// The grid is composited over a dark checkerboard, using the default
// scale and tile size of package cellgrid.
package main

import (
	"fmt"

	"seehuhn.de/go/cellgrid"
)

const outputFile = "output.png"

var grid = cellgrid.Grid{
	{
		{R: 255, G: 0, B: 0, A: 255, Visible: true},
		{R: 0, G: 255, B: 0, A: 255, Visible: true},
	},
}

func main() {
	img, err := cellgrid.Render(grid, nil)
	if err != nil {
		panic(err)
	}
	if err := cellgrid.SaveFile(outputFile, img); err != nil {
		panic(err)
	}
	fmt.Println("Successfully saved", outputFile)
}
