package testcases

import "seehuhn.de/go/cellgrid"

var tileCases = []TestCase{
	{
		// 30 is not a multiple of 8, so the last tiles are clipped
		Name:     "partial",
		Grid:     cellgrid.Grid{{none, none, none}},
		Scale:    10,
		TileSize: 8,
	},
	{
		// one tile per pixel
		Name:     "pixel",
		Grid:     cellgrid.Grid{{none, none}, {none, none}},
		Scale:    3,
		TileSize: 1,
	},
	{
		// tiles larger than the image
		Name:     "huge",
		Grid:     cellgrid.Grid{{none, hide(0, 0, 0, 0)}},
		Scale:    5,
		TileSize: 64,
	},
}
