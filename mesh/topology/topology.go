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

// Package topology derives face-to-cell adjacency, interior and exterior
// face sets, and per-cell face orientation signs from the padded
// face→vertex and cell→face connectivity of a finite-volume mesh.
//
// Connectivity is not validated here. A face id referenced by more than
// two cells, or more than once by a single cell, produces undefined
// adjacency.
package topology

import "github.com/spatialmodel/fvmesh/mesh/ragged"

// Topology holds the connectivity relationships derived from raw
// mesh tables.
type Topology struct {
	NumberOfFaces   int
	NumberOfCells   int
	MaxFacesPerCell int

	// FaceCellIDs is a NumberOfFaces × 2 table holding the first and
	// second neighbor cell of every face. The second slot is masked
	// for exterior faces.
	FaceCellIDs *ragged.Masked[int]

	// InteriorFaceIDs and ExteriorFaceIDs partition the faces, in
	// ascending order.
	InteriorFaceIDs []int
	ExteriorFaceIDs []int

	// CellFaceOrientations is aligned with the cell→face table: +1 where
	// the cell is the face's first neighbor, -1 otherwise.
	CellFaceOrientations *ragged.Masked[int]

	// AdjacentCellIDs holds the first neighbor and the effective second
	// neighbor of every face. Exterior faces repeat the first neighbor
	// so that cell-pair arrays need no boundary special case.
	AdjacentCellIDs [2][]int
}

// Derive computes the topology of a mesh with the given face→vertex and
// cell→face tables.
func Derive(faceVertexIDs, cellFaceIDs *ragged.Table) *Topology {
	t := &Topology{
		NumberOfFaces:   faceVertexIDs.Rows(),
		NumberOfCells:   cellFaceIDs.Rows(),
		MaxFacesPerCell: cellFaceIDs.Width(),
	}
	t.FaceCellIDs = FaceCellIDs(t.NumberOfFaces, cellFaceIDs)
	t.InteriorFaceIDs, t.ExteriorFaceIDs = Classify(t.FaceCellIDs)
	t.CellFaceOrientations = Orientations(t.FaceCellIDs, cellFaceIDs)
	t.AdjacentCellIDs = AdjacentCellIDs(t.FaceCellIDs)
	return t
}

// FaceCellIDs records every cell against each face it references, in
// two write passes. The first slot is written while walking the cells in
// reverse and the second while walking them forward, so a face referenced
// by one cell receives the same id twice and a face referenced by two
// cells receives both. Where the two passes agree, the face is exterior
// and the second slot is masked. Faces that no cell references keep both
// slots masked.
func FaceCellIDs(numberOfFaces int, cellFaceIDs *ragged.Table) *ragged.Masked[int] {
	first := make([]int, numberOfFaces)
	second := make([]int, numberOfFaces)
	for f := range first {
		first[f], second[f] = ragged.Invalid, ragged.Invalid
	}
	nc, w := cellFaceIDs.Rows(), cellFaceIDs.Width()
	for c := 0; c < nc; c++ {
		for j := 0; j < w; j++ {
			if f, ok := cellFaceIDs.At(c, j); ok && f < numberOfFaces {
				second[f] = c
			}
		}
	}
	for c := nc - 1; c >= 0; c-- {
		for j := w - 1; j >= 0; j-- {
			if f, ok := cellFaceIDs.At(c, j); ok && f < numberOfFaces {
				first[f] = c
			}
		}
	}

	o := ragged.NewMasked[int](numberOfFaces, 2)
	for f := 0; f < numberOfFaces; f++ {
		if first[f] == ragged.Invalid {
			continue
		}
		o.Set(f, 0, first[f])
		if second[f] != first[f] {
			o.Set(f, 1, second[f])
		}
	}
	return o
}

// Classify splits the faces into interior faces, which have a valid second
// neighbor, and exterior faces, which do not.
func Classify(faceCellIDs *ragged.Masked[int]) (interior, exterior []int) {
	interior, exterior = []int{}, []int{}
	for f := 0; f < faceCellIDs.Rows(); f++ {
		if faceCellIDs.Valid(f, 1) {
			interior = append(interior, f)
		} else {
			exterior = append(exterior, f)
		}
	}
	return interior, exterior
}

// Orientations returns, for every valid (cell, face slot) pair, +1 if the
// cell is the face's first neighbor and -1 otherwise.
func Orientations(faceCellIDs *ragged.Masked[int], cellFaceIDs *ragged.Table) *ragged.Masked[int] {
	first := ragged.Gather(faceCellIDs.Column(0).Filled(ragged.Invalid), cellFaceIDs)
	return ragged.Map(first, func(c, _ int, owner int) int {
		if owner == c {
			return 1
		}
		return -1
	})
}

// AdjacentCellIDs returns the first neighbor of every face and its second
// neighbor, substituting the first neighbor where the second is masked.
func AdjacentCellIDs(faceCellIDs *ragged.Masked[int]) [2][]int {
	n := faceCellIDs.Rows()
	o := [2][]int{make([]int, n), make([]int, n)}
	for f := 0; f < n; f++ {
		c0, ok := faceCellIDs.At(f, 0)
		if !ok {
			c0 = ragged.Invalid
		}
		c1, ok := faceCellIDs.At(f, 1)
		if !ok {
			c1 = c0
		}
		o[0][f], o[1][f] = c0, c1
	}
	return o
}
