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

package unstructured

import (
	"github.com/spatialmodel/fvmesh/mesh"
	"gonum.org/v1/gonum/spatial/r3"
)

// Point is a location in the mesh's coordinate space.
type Point struct {
	r3.Vec
	dim int
}

// Len returns the number of dimensions of the point.
func (p Point) Len() int { return p.dim }

// D returns the coordinate of the point in dimension i.
func (p Point) D(i int) float64 {
	switch i {
	case 0:
		return p.X
	case 1:
		return p.Y
	case 2:
		return p.Z
	default:
		panic("unstructured: dimension out of range")
	}
}

func (m *Mesh) point(v r3.Vec) Point { return Point{Vec: v, dim: m.dim} }

// Face is a view of a single face of a mesh. It holds no data of its
// own: every method reads from the mesh.
type Face struct {
	m  *Mesh
	id int
}

// NewFace returns the view of face id of m.
func NewFace(m *Mesh, id int) Face { return Face{m: m, id: id} }

// ID returns the index of the face.
func (f Face) ID() int { return f.id }

// VertexIDs returns the indices of the valid vertices of the face.
func (f Face) VertexIDs() []int { return f.m.faceVertexIDs.Row(f.id) }

// Points returns the number of vertices of the face.
func (f Face) Points() int { return f.m.faceVertexIDs.RowLen(f.id) }

// Point returns vertex i of the face ring.
func (f Face) Point(i int) mesh.Point {
	return f.m.point(f.m.vertexCoords[f.VertexIDs()[i]])
}

// Area returns the area of the face.
func (f Face) Area() float64 { return f.m.geom.FaceAreas[f.id] }

// Measure returns the area of the face.
func (f Face) Measure() float64 { return f.Area() }

// Center returns the center of the face.
func (f Face) Center() r3.Vec { return f.m.geom.FaceCenters[f.id] }

// Centroid returns the center of the face.
func (f Face) Centroid() mesh.Point { return f.m.point(f.Center()) }

// NormalVec returns the unit normal of the face.
func (f Face) NormalVec() r3.Vec { return f.m.geom.FaceNormals[f.id] }

// Normal returns the unit normal of the face.
func (f Face) Normal() mesh.Point { return f.m.point(f.NormalVec()) }

// AreaProjection returns the normal of the face scaled by its area.
func (f Face) AreaProjection() r3.Vec { return f.m.geom.AreaProjections[f.id] }

// Tangents returns the two unit tangents of the face.
func (f Face) Tangents() (r3.Vec, r3.Vec) {
	return f.m.geom.FaceTangents1[f.id], f.m.geom.FaceTangents2[f.id]
}

// CellIDs returns the neighbor cells of the face. interior is false, and
// second is ragged.Invalid, for faces on the boundary.
func (f Face) CellIDs() (first, second int, interior bool) {
	first, second = f.m.topo.AdjacentCellIDs[0][f.id], f.m.topo.AdjacentCellIDs[1][f.id]
	interior = f.m.topo.FaceCellIDs.Valid(f.id, 1)
	if !interior {
		second = -1
	}
	return first, second, interior
}

// Interior reports whether the face is shared by two cells.
func (f Face) Interior() bool {
	_, _, interior := f.CellIDs()
	return interior
}

// First returns the cell that owns the face.
func (f Face) First() mesh.Cell {
	c, _, _ := f.CellIDs()
	if c < 0 {
		return nil
	}
	return NewCell(f.m, c)
}

// Second returns the other neighbor cell of the face, or nil for
// boundary faces.
func (f Face) Second() mesh.Cell {
	_, c, interior := f.CellIDs()
	if !interior {
		return nil
	}
	return NewCell(f.m, c)
}

// CellDistance returns the distance between the neighbor cells of the face.
func (f Face) CellDistance() float64 { return f.m.geom.CellDistances[f.id] }

// DistanceRatio returns the distance from the face to its first cell,
// divided by CellDistance.
func (f Face) DistanceRatio() float64 { return f.m.geom.FaceToCellDistanceRatio[f.id] }

// Cell is a view of a single cell of a mesh.
type Cell struct {
	m  *Mesh
	id int
}

// NewCell returns the view of cell id of m.
func NewCell(m *Mesh, id int) Cell { return Cell{m: m, id: id} }

// ID returns the index of the cell.
func (c Cell) ID() int { return c.id }

// FaceIDs returns the indices of the faces bounding the cell.
func (c Cell) FaceIDs() []int { return c.m.cellFaceIDs.Row(c.id) }

// Faces returns the number of faces bounding the cell.
func (c Cell) Faces() int { return c.m.cellFaceIDs.RowLen(c.id) }

// Face returns the i'th face of the cell.
func (c Cell) Face(i int) mesh.Face { return NewFace(c.m, c.FaceIDs()[i]) }

// Orientations returns the orientation sign of each face of the cell, in
// the order of FaceIDs.
func (c Cell) Orientations() []int { return c.m.topo.CellFaceOrientations.Row(c.id) }

// Volume returns the volume of the cell.
func (c Cell) Volume() float64 { return c.m.geom.CellVolumes[c.id] }

// Measure returns the volume of the cell.
func (c Cell) Measure() float64 { return c.Volume() }

// Center returns the center of the cell.
func (c Cell) Center() r3.Vec { return c.m.geom.CellCenters[c.id] }

// Centroid returns the center of the cell.
func (c Cell) Centroid() mesh.Point { return c.m.point(c.Center()) }

// Cell returns the view of cell i.
func (m *Mesh) Cell(i int) mesh.Cell { return NewCell(m, i) }

// Face returns the view of face i.
func (m *Mesh) Face(i int) mesh.Face { return NewFace(m, i) }

// Faces returns views of every face.
func (m *Mesh) Faces() []Face { return m.faceViews(nil) }

// InteriorFaces returns views of the faces shared by two cells.
func (m *Mesh) InteriorFaces() []Face { return m.faceViews(m.topo.InteriorFaceIDs) }

// ExteriorFaces returns views of the faces on the mesh boundary.
func (m *Mesh) ExteriorFaces() []Face { return m.faceViews(m.topo.ExteriorFaceIDs) }

func (m *Mesh) faceViews(ids []int) []Face {
	if ids == nil {
		o := make([]Face, m.topo.NumberOfFaces)
		for i := range o {
			o[i] = NewFace(m, i)
		}
		return o
	}
	o := make([]Face, len(ids))
	for i, id := range ids {
		o[i] = NewFace(m, id)
	}
	return o
}

// Cells returns views of every cell for which all of the filters
// return true.
func (m *Mesh) Cells(filters ...func(Cell) bool) []Cell {
	o := make([]Cell, 0, m.topo.NumberOfCells)
cells:
	for i := 0; i < m.topo.NumberOfCells; i++ {
		c := NewCell(m, i)
		for _, keep := range filters {
			if !keep(c) {
				continue cells
			}
		}
		o = append(o, c)
	}
	return o
}
