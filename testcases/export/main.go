// Command export writes the test case grids to JSON, for use by external
// reference tools.  Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/cellgrid"
	"seehuhn.de/go/cellgrid/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name     string     `json:"name"`
	Scale    int        `json:"scale"`
	TileSize int        `json:"tile_size"`
	Width    int        `json:"width"`
	Height   int        `json:"height"`
	Pixels   [][][5]int `json:"pixels"`
}

// toJSON converts a test case.  Each cell is written as the 5-tuple
// (r, g, b, a, visible) with visible being 0 or 1.
func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	size := tc.Grid.Size(tc.Scale)
	jtc := jsonTestCase{
		Name:     category + "_" + tc.Name,
		Scale:    tc.Scale,
		TileSize: tc.TileSize,
		Width:    size.X,
		Height:   size.Y,
	}
	for _, row := range tc.Grid {
		jrow := make([][5]int, len(row))
		for i, c := range row {
			jrow[i] = cellToJSON(c)
		}
		jtc.Pixels = append(jtc.Pixels, jrow)
	}
	return jtc
}

func cellToJSON(c cellgrid.Cell) [5]int {
	visible := 0
	if c.Visible {
		visible = 1
	}
	return [5]int{int(c.R), int(c.G), int(c.B), int(c.A), visible}
}
