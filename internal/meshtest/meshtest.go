/*
Copyright © 2026 the InMAP authors.
This file is part of fvmesh.

fvmesh is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

fvmesh is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with fvmesh.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package meshtest provides raw connectivity fixtures shared by tests.
//
// Face rings are ordered so that the cross product of the first two
// edges points into the cell that lists the face first; the derived
// normal is its negation and therefore points out of that cell.
package meshtest

import "github.com/spatialmodel/fvmesh/mesh/ragged"

// Raw holds the three raw inputs of a mesh.
type Raw struct {
	VertexCoords  [][]float64
	FaceVertexIDs [][]int
	CellFaceIDs   [][]int
}

// cubeVertices returns the corners of the unit cube; vertex k sits at
// (k&1, (k>>1)&1, (k>>2)&1).
func cubeVertices() [][]float64 {
	v := make([][]float64, 8)
	for k := range v {
		v[k] = []float64{float64(k & 1), float64((k >> 1) & 1), float64((k >> 2) & 1)}
	}
	return v
}

// UnitCube is a single unit cube whose six sides are each split into
// two triangles, giving 12 faces that all belong to cell 0.
func UnitCube() Raw {
	return Raw{
		VertexCoords: cubeVertices(),
		FaceVertexIDs: [][]int{
			{0, 1, 3}, {0, 3, 2}, // z = 0
			{4, 6, 7}, {4, 7, 5}, // z = 1
			{0, 2, 6}, {0, 6, 4}, // x = 0
			{1, 5, 7}, {1, 7, 3}, // x = 1
			{0, 4, 5}, {0, 5, 1}, // y = 0
			{2, 3, 7}, {2, 7, 6}, // y = 1
		},
		CellFaceIDs: [][]int{{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}},
	}
}

// PaddedUnitCube is UnitCube with both tables padded beyond their
// logical width.
func PaddedUnitCube() Raw {
	r := UnitCube()
	for i, f := range r.FaceVertexIDs {
		r.FaceVertexIDs[i] = append(f, ragged.Invalid, ragged.Invalid)
	}
	r.CellFaceIDs[0] = append(r.CellFaceIDs[0], ragged.Invalid)
	return r
}

// TwoCubes is two unit cubes with quadrilateral faces, stacked along x
// and sharing face 3 at x = 1. Cell 0 spans x ∈ [0, 1] and cell 1 spans
// x ∈ [1, 2].
func TwoCubes() Raw {
	v := cubeVertices()
	v = append(v,
		[]float64{2, 0, 0}, // 8
		[]float64{2, 1, 0}, // 9
		[]float64{2, 0, 1}, // 10
		[]float64{2, 1, 1}, // 11
	)
	return Raw{
		VertexCoords: v,
		FaceVertexIDs: [][]int{
			{0, 1, 3, 2},    // 0: z = 0, cell 0
			{4, 6, 7, 5},    // 1: z = 1, cell 0
			{0, 2, 6, 4},    // 2: x = 0
			{1, 5, 7, 3},    // 3: x = 1, shared
			{0, 4, 5, 1},    // 4: y = 0, cell 0
			{2, 3, 7, 6},    // 5: y = 1, cell 0
			{1, 8, 9, 3},    // 6: z = 0, cell 1
			{5, 7, 11, 10},  // 7: z = 1, cell 1
			{8, 10, 11, 9},  // 8: x = 2
			{1, 5, 10, 8},   // 9: y = 0, cell 1
			{3, 9, 11, 7},   // 10: y = 1, cell 1
		},
		CellFaceIDs: [][]int{
			{0, 1, 2, 3, 4, 5},
			{3, 6, 7, 8, 9, 10},
		},
	}
}

// Rotated returns a copy of r with the ring of every face started at
// its second vertex, keeping the cyclic order.
func Rotated(r Raw) Raw {
	o := Raw{VertexCoords: r.VertexCoords, CellFaceIDs: r.CellFaceIDs}
	for _, f := range r.FaceVertexIDs {
		n := 0
		for _, v := range f {
			if v >= 0 {
				n++
			}
		}
		g := make([]int, len(f))
		copy(g, f)
		for k := 0; k < n; k++ {
			g[k] = f[(k+1)%n]
		}
		o.FaceVertexIDs = append(o.FaceVertexIDs, g)
	}
	return o
}
