package testcases

import "seehuhn.de/go/cellgrid"

var holeCases = []TestCase{
	{
		// transparent hole: nothing remains
		Name:     "clear",
		Grid:     cellgrid.Grid{{red, hide(0, 0, 0, 0), green}},
		Scale:    12,
		TileSize: 4,
	},
	{
		// an opaque colour in a hole is shown as is
		Name:     "opaque",
		Grid:     cellgrid.Grid{{hide(0, 0, 255, 255), none}},
		Scale:    12,
		TileSize: 4,
	},
	{
		// a translucent colour in a hole stays translucent
		Name: "translucent",
		Grid: cellgrid.Grid{
			{hide(255, 0, 0, 128), show(255, 0, 0, 128)},
			{none, hide(0, 255, 0, 64)},
		},
		Scale:    10,
		TileSize: 3,
	},
	{
		Name: "frame",
		Grid: cellgrid.Grid{
			{white, white, white, white},
			{white, hide(0, 0, 0, 0), hide(0, 0, 0, 0), white},
			{white, white, white, white},
		},
		Scale:    8,
		TileSize: 2,
	},
}
