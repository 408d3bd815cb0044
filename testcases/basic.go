package testcases

import "seehuhn.de/go/cellgrid"

var basicCases = []TestCase{
	{
		// the built-in grid of the cellgrid command
		Name:     "red_green",
		Grid:     cellgrid.Grid{{red, green}},
		Scale:    100,
		TileSize: 8,
	},
	{
		Name:     "single",
		Grid:     cellgrid.Grid{{blue}},
		Scale:    16,
		TileSize: 4,
	},
	{
		Name: "column",
		Grid: cellgrid.Grid{
			{red},
			{green},
			{blue},
		},
		Scale:    10,
		TileSize: 5,
	},
	{
		Name: "flag",
		Grid: cellgrid.Grid{
			{blue, white, red},
			{blue, white, red},
		},
		Scale:    20,
		TileSize: 8,
	},
}
