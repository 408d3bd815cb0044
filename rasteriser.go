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

package cellgrid

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

// Rasteriser computes the fraction of each pixel covered by a filled path.
// Coverage ranges from 0 (outside) to 1 (inside).
//
// A Rasteriser keeps its internal buffers between calls, so that filling
// many small paths does not allocate in steady state.
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space. Must be non-singular.
	CTM matrix.Matrix

	// Clip restricts output to this device-space rectangle.
	// Coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the line segments used to approximate it. Must be positive.
	Flatness float64

	cover  []float32 // change of accumulated cover, per pixel; reused as output
	area   []float32 // signed area to the right of edges, per pixel
	edges  []edge
	active []int // indices into edges

	bboxEmpty          bool
	bboxXMin, bboxXMax float64
	bboxYMin, bboxYMax float64
}

// NewRasteriser returns a Rasteriser with the given clip rectangle,
// the identity CTM and the default flatness.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultFlatness,
	}
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness

	r.cover = r.cover[:0]
	r.area = r.area[:0]
	r.edges = r.edges[:0]
	r.active = r.active[:0]
}

// FillNonZero fills the path using the nonzero winding rule.
// Coverage is reported one scanline at a time via emit.  Only the
// non-zero part of each scanline is reported, starting at pixel xMin.
// The coverage slice is only valid for the duration of the callback.
func (r *Rasteriser) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.fill(p, integrateNonZero, emit)
}

// FillEvenOdd fills the path using the even-odd rule.
// See FillNonZero for a description of the emit callback.
func (r *Rasteriser) FillEvenOdd(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.fill(p, integrateEvenOdd, emit)
}

func (r *Rasteriser) fill(p *path.Data, integrate func(cover, area []float32), emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.collectEdges(p)
	if !ok {
		return
	}

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yTop := float64(y)
		yBot := float64(y + 1)

		for next < len(r.edges) && r.edges[next].yMin() < yBot {
			r.active = append(r.active, next)
			next++
		}
		// drop edges which end above this scanline
		r.active = slices.DeleteFunc(r.active, func(i int) bool {
			return r.edges[i].yMax() <= yTop
		})
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		for _, i := range r.active {
			r.accumulate(&r.edges[i], y, xMin, xMax)
		}
		integrate(r.cover, r.area)

		if span, offset := trimZeros(r.cover); span != nil {
			emit(y, xMin+offset, span)
		}
	}
}

// collectEdges converts the path into device-space edges and returns the
// integer bounding box of the edges, clipped to r.Clip.
func (r *Rasteriser) collectEdges(p *path.Data) (xMin, xMax, yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]
	r.bboxEmpty = true

	var current, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if current != start {
				r.addEdge(current, start)
			}
			current = p.Coords[k]
			start = current
			k++
		case path.CmdLineTo:
			r.addEdge(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flatten(current, p.Coords[k], p.Coords[k+1])
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flatten(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2])
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
		}
	}
	// Open subpaths are filled as if they were closed.
	if current != start {
		r.addEdge(current, start)
	}

	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.bboxXMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bboxXMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.bboxYMin)), int(r.Clip.LLy))
	yMax = min(int(math.Ceil(r.bboxYMax)), int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// addEdge transforms a user-space segment to device space and appends it
// to the edge list.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	m := r.CTM
	x0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	y0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	x1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	y1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{
		x0: x0, y0: y0,
		x1: x1, y1: y1,
		dxdy: (x1 - x0) / dy,
	})

	if r.bboxEmpty {
		r.bboxXMin, r.bboxXMax = min(x0, x1), max(x0, x1)
		r.bboxYMin, r.bboxYMax = min(y0, y1), max(y0, y1)
		r.bboxEmpty = false
		return
	}
	r.bboxXMin = min(r.bboxXMin, x0, x1)
	r.bboxXMax = max(r.bboxXMax, x0, x1)
	r.bboxYMin = min(r.bboxYMin, y0, y1)
	r.bboxYMax = max(r.bboxYMax, y0, y1)
}

// flatten approximates a quadratic (two control points) or cubic (three
// control points) Bézier curve starting at p0 by line segments.
//
// The number of segments follows Wang's formula, evaluated on the device
// space second differences of the control polygon.
func (r *Rasteriser) flatten(p0 vec.Vec2, ctrl ...vec.Vec2) {
	var pts [4]vec.Vec2
	pts[0] = p0
	n := copy(pts[1:], ctrl) + 1
	degree := n - 1

	var m float64
	for i := 0; i+2 < n; i++ {
		d := pts[i].Sub(pts[i+1].Mul(2)).Add(pts[i+2])
		dev := vec.Vec2{
			X: r.CTM[0]*d.X + r.CTM[2]*d.Y,
			Y: r.CTM[1]*d.X + r.CTM[3]*d.Y,
		}
		m = max(m, dev.Length())
	}
	segments := 1
	if m > 0 {
		f := math.Sqrt(float64(degree*(degree-1)) * m / (8 * r.Flatness))
		segments = max(1, int(math.Ceil(f)))
	}

	prev := p0
	for i := 1; i <= segments; i++ {
		t := float64(i) / float64(segments)
		var q [4]vec.Vec2
		copy(q[:], pts[:n])
		for k := n - 1; k > 0; k-- {
			for j := range k {
				q[j] = q[j].Mul(1 - t).Add(q[j+1].Mul(t))
			}
		}
		r.addEdge(prev, q[0])
		prev = q[0]
	}
}

// Each edge contributes two quantities per pixel:
//
//	cover: the signed height of the edge within the pixel
//	area:  cover times the fraction of the pixel to the right of the edge
//
// The signed area covered by the path in pixel i of a scanline is then
// area[i] plus the sum of cover[j] for j < i.  See integrateNonZero.

// accumulate adds the contribution of e within scanline y to r.cover and
// r.area.  Pixels left of xMin are folded into the first pixel, pixels at
// or right of xMax are dropped.
func (r *Rasteriser) accumulate(e *edge, y, xMin, xMax int) {
	yTop := max(float64(y), e.yMin())
	yBot := min(float64(y+1), e.yMax())
	if yBot <= yTop {
		return
	}
	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(yTop-e.y0)
	xBot := e.x0 + e.dxdy*(yBot-e.y0)
	pTop := int(math.Floor(xTop))
	pBot := int(math.Floor(xBot))

	if pTop == pBot {
		r.deposit(pTop, (xTop+xBot)/2, sign*float32(yBot-yTop), xMin, xMax)
		return
	}

	// Walk through the pixel columns crossed by the edge, from top to
	// bottom.  Since dxdy != 0 here, the inverse slope is finite.
	step := 1
	if pBot < pTop {
		step = -1
	}
	ya, xa := yTop, xTop
	for pix := pTop; pix != pBot; pix += step {
		xb := float64(pix + 1)
		if step < 0 {
			xb = float64(pix)
		}
		yb := e.y0 + (xb-e.x0)/e.dxdy
		yb = min(max(yb, ya), yBot)
		r.deposit(pix, (xa+xb)/2, sign*float32(yb-ya), xMin, xMax)
		ya, xa = yb, xb
	}
	r.deposit(pBot, (xa+xBot)/2, sign*float32(yBot-ya), xMin, xMax)
}

// deposit records an edge piece of signed height c, at horizontal
// position xMid, inside pixel column pix.
func (r *Rasteriser) deposit(pix int, xMid float64, c float32, xMin, xMax int) {
	switch {
	case pix < xMin:
		r.cover[0] += c
		r.area[0] += c
	case pix < xMax:
		i := pix - xMin
		frac := xMid - float64(pix)
		r.cover[i] += c
		r.area[i] += c * float32(1-frac)
	}
}

// integrateNonZero turns cover/area into coverage values using the nonzero
// winding rule.  The result is written to cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		cover[i] = min(abs32(raw), 1)
	}
}

// integrateEvenOdd turns cover/area into coverage values using the even-odd
// rule.  The result is written to cover.
func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		folded := float32(math.Mod(float64(abs32(raw)), 2))
		if folded > 1 {
			folded = 2 - folded
		}
		cover[i] = folded
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// trimZeros returns the part of coverage between the first and last
// non-zero entry, together with its offset.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	if lo == len(coverage) {
		return nil, 0
	}
	hi := len(coverage)
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

const (
	// defaultFlatness is the default curve approximation tolerance, in
	// device pixels.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the minimal vertical extent of an edge.
	// Flatter edges do not contribute to coverage.
	horizontalEdgeThreshold = 1e-10
)
