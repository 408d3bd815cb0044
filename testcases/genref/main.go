// seehuhn.de/go/cellgrid - checkerboard cell images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command genref generates reference images for all test cases.
// For every case it writes a PNG image and a PDF file showing the same
// picture in vector form.  Run from the module root directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/cellgrid"
	"seehuhn.de/go/cellgrid/pdfout"
	"seehuhn.de/go/cellgrid/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pngPath := filepath.Join(refDir, name+".png")
			pdfPath := filepath.Join(refDir, name+".pdf")

			img, err := cellgrid.Render(tc.Grid, tc.Options())
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := cellgrid.SaveFile(pngPath, img); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := pdfout.Write(pdfPath, tc.Grid, tc.Options()); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}
