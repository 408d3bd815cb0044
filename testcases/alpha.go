package testcases

import "seehuhn.de/go/cellgrid"

var alphaCases = []TestCase{
	{
		// visible transparent cells show the checkerboard
		Name:     "transparent",
		Grid:     cellgrid.Grid{{none, none}, {none, none}},
		Scale:    16,
		TileSize: 4,
	},
	{
		Name: "ramp",
		Grid: cellgrid.Grid{{
			show(255, 255, 255, 0),
			show(255, 255, 255, 64),
			show(255, 255, 255, 128),
			show(255, 255, 255, 192),
			show(255, 255, 255, 255),
		}},
		Scale:    10,
		TileSize: 5,
	},
	{
		// colour values of fully transparent cells have no effect
		Name:     "invisible_colour",
		Grid:     cellgrid.Grid{{show(255, 0, 255, 0), show(0, 255, 255, 0)}},
		Scale:    8,
		TileSize: 4,
	},
}
