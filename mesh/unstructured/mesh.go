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

// Package unstructured implements a finite-volume mesh built from raw,
// padded connectivity: vertex coordinates, face→vertex indices, and
// cell→face indices. All topology and geometry is derived once, at
// construction, after which the mesh is read-only and may be shared
// between goroutines.
package unstructured

import (
	"fmt"
	"math"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/fvmesh/mesh"
	"github.com/spatialmodel/fvmesh/mesh/geometry"
	"github.com/spatialmodel/fvmesh/mesh/ragged"
	"github.com/spatialmodel/fvmesh/mesh/topology"
	"gonum.org/v1/gonum/spatial/r3"
)

// Make sure our mesh fulfills the interface.
var _ mesh.Mesh = &Mesh{}

// Mesh is an unstructured finite-volume mesh with a single element type.
type Mesh struct {
	dim           int
	vertexCoords  []r3.Vec
	faceVertexIDs *ragged.Table
	cellFaceIDs   *ragged.Table

	topo *topology.Topology
	geom *geometry.Geometry

	log logrus.FieldLogger
}

// New returns a mesh with the given vertex coordinates (numberOfVertices × D,
// 1 ≤ D ≤ 3), face→vertex table, and cell→face table. Rows of the two index
// tables may be shorter than the longest row or padded with ragged.Invalid.
//
// Connectivity is only checked when WithValidation is given. Otherwise
// malformed connectivity silently yields meaningless geometry.
func New(vertexCoords [][]float64, faceVertexIDs, cellFaceIDs [][]int, opts ...Option) (*Mesh, error) {
	o := gatherOptions(opts)
	if o.scale <= 0 || math.IsNaN(o.scale) || math.IsInf(o.scale, 0) {
		return nil, fmt.Errorf("%w: %g", ErrBadScale, o.scale)
	}
	coords, dim, err := toVecs(vertexCoords, o.scale)
	if err != nil {
		return nil, err
	}
	m := &Mesh{
		dim:           dim,
		vertexCoords:  coords,
		faceVertexIDs: ragged.FromPadded(faceVertexIDs),
		cellFaceIDs:   ragged.FromPadded(cellFaceIDs),
		log:           o.log,
	}
	if o.validate {
		if err := Validate(len(coords), m.faceVertexIDs, m.cellFaceIDs); err != nil {
			return nil, err
		}
	}
	m.build()
	return m, nil
}

// toVecs zero-extends D-dimensional coordinates to three dimensions
// and applies the length scale.
func toVecs(vertexCoords [][]float64, scale float64) ([]r3.Vec, int, error) {
	if len(vertexCoords) == 0 {
		return nil, 0, ErrNoVertices
	}
	dim := len(vertexCoords[0])
	if dim < 1 || dim > 3 {
		return nil, 0, fmt.Errorf("%w: vertices have %d coordinates", ErrDimension, dim)
	}
	o := make([]r3.Vec, len(vertexCoords))
	for i, c := range vertexCoords {
		if len(c) != dim {
			return nil, 0, fmt.Errorf("%w: vertex %d has %d coordinates, vertex 0 has %d",
				ErrDimension, i, len(c), dim)
		}
		var v [3]float64
		copy(v[:], c)
		o[i] = r3.Scale(scale, r3.Vec{X: v[0], Y: v[1], Z: v[2]})
	}
	return o, dim, nil
}

// build derives the mesh topology and geometry.
func (m *Mesh) build() {
	m.topo = topology.Derive(m.faceVertexIDs, m.cellFaceIDs)
	m.log.WithFields(logrus.Fields{
		"faces":    m.topo.NumberOfFaces,
		"cells":    m.topo.NumberOfCells,
		"interior": len(m.topo.InteriorFaceIDs),
		"exterior": len(m.topo.ExteriorFaceIDs),
	}).Debug("unstructured: derived mesh topology")
	m.geom = geometry.Derive(m.vertexCoords, m.faceVertexIDs, m.cellFaceIDs, m.topo)
	m.log.WithField("vertices", len(m.vertexCoords)).Debug("unstructured: derived mesh geometry")
}

// Dims returns the number of coordinates of each vertex.
func (m *Mesh) Dims() int { return m.dim }

// Len returns the number of cells in the mesh.
func (m *Mesh) Len() int { return m.topo.NumberOfCells }

// NumberOfCells returns the number of cells in the mesh.
func (m *Mesh) NumberOfCells() int { return m.topo.NumberOfCells }

// NumberOfFaces returns the number of faces in the mesh.
func (m *Mesh) NumberOfFaces() int { return m.topo.NumberOfFaces }

// NumberOfVertices returns the number of vertices in the mesh.
func (m *Mesh) NumberOfVertices() int { return len(m.vertexCoords) }

// MaxFacesPerCell returns the width of the cell→face table.
func (m *Mesh) MaxFacesPerCell() int { return m.topo.MaxFacesPerCell }

// VertexCoords returns the (scaled) vertex coordinates in the
// dimension they were supplied in.
func (m *Mesh) VertexCoords() [][]float64 {
	o := make([][]float64, len(m.vertexCoords))
	for i, v := range m.vertexCoords {
		o[i] = []float64{v.X, v.Y, v.Z}[:m.dim:m.dim]
	}
	return o
}

// FaceVertexCoords returns the coordinates of the valid vertices
// of face i, in ring order. Vertex ids outside of the mesh are skipped.
func (m *Mesh) FaceVertexCoords(i int) []r3.Vec {
	ids := m.faceVertexIDs.Row(i)
	o := make([]r3.Vec, 0, len(ids))
	for _, v := range ids {
		if v < len(m.vertexCoords) {
			o = append(o, m.vertexCoords[v])
		}
	}
	return o
}

// FaceVertexIDs returns the face→vertex table.
func (m *Mesh) FaceVertexIDs() *ragged.Table { return m.faceVertexIDs.Clone() }

// CellFaceIDs returns the cell→face table.
func (m *Mesh) CellFaceIDs() *ragged.Table { return m.cellFaceIDs.Clone() }

// FaceCellIDs returns the faces × 2 table of neighbor cells. The second
// slot is masked for exterior faces.
func (m *Mesh) FaceCellIDs() *ragged.Masked[int] { return m.topo.FaceCellIDs.Clone() }

// InteriorFaceIDs returns the faces shared by two cells.
func (m *Mesh) InteriorFaceIDs() []int { return slices.Clone(m.topo.InteriorFaceIDs) }

// ExteriorFaceIDs returns the faces on the boundary of the mesh.
func (m *Mesh) ExteriorFaceIDs() []int { return slices.Clone(m.topo.ExteriorFaceIDs) }

// CellFaceOrientations returns the orientation signs, aligned
// with the cell→face table.
func (m *Mesh) CellFaceOrientations() *ragged.Masked[int] { return m.topo.CellFaceOrientations.Clone() }

// AdjacentCellIDs returns the first and effective second neighbor
// cell of every face.
func (m *Mesh) AdjacentCellIDs() (first, second []int) {
	return slices.Clone(m.topo.AdjacentCellIDs[0]), slices.Clone(m.topo.AdjacentCellIDs[1])
}

// FaceAreas returns the area of every face.
func (m *Mesh) FaceAreas() []float64 { return slices.Clone(m.geom.FaceAreas) }

// FaceCenters returns the center of every face.
func (m *Mesh) FaceCenters() []r3.Vec { return slices.Clone(m.geom.FaceCenters) }

// FaceNormals returns the unit normal of every face, pointing out
// of the face's first neighbor cell.
func (m *Mesh) FaceNormals() []r3.Vec { return slices.Clone(m.geom.FaceNormals) }

// OrientedFaceNormals is the same as FaceNormals.
func (m *Mesh) OrientedFaceNormals() []r3.Vec { return m.FaceNormals() }

// CellVolumes returns the volume of every cell.
func (m *Mesh) CellVolumes() []float64 { return slices.Clone(m.geom.CellVolumes) }

// CellCenters returns the center of every cell.
func (m *Mesh) CellCenters() []r3.Vec { return slices.Clone(m.geom.CellCenters) }

// FaceToCellDistances returns the faces × 2 table of distances from
// each face center to the centers of its neighbor cells.
func (m *Mesh) FaceToCellDistances() *ragged.Masked[float64] {
	return m.geom.FaceToCellDistances.Clone()
}

// CellDistances returns the distance between the neighbor cells of
// every face.
func (m *Mesh) CellDistances() []float64 { return slices.Clone(m.geom.CellDistances) }

// FaceToCellDistanceRatio returns the face-to-first-cell distance of
// every face divided by its cell distance.
func (m *Mesh) FaceToCellDistanceRatio() []float64 {
	return slices.Clone(m.geom.FaceToCellDistanceRatio)
}

// AreaProjections returns the area-weighted normal of every face.
func (m *Mesh) AreaProjections() []r3.Vec { return slices.Clone(m.geom.AreaProjections) }

// OrientedAreaProjections is the same as AreaProjections.
func (m *Mesh) OrientedAreaProjections() []r3.Vec { return m.AreaProjections() }

// FaceTangents1 returns the first unit tangent of every face.
func (m *Mesh) FaceTangents1() []r3.Vec { return slices.Clone(m.geom.FaceTangents1) }

// FaceTangents2 returns the second unit tangent of every face.
func (m *Mesh) FaceTangents2() []r3.Vec { return slices.Clone(m.geom.FaceTangents2) }

// ClosureResiduals returns, for every cell, the orientation-signed sum of
// the area projections of its faces. It is the zero vector, up to rounding,
// for every closed cell.
func (m *Mesh) ClosureResiduals() []r3.Vec {
	return geometry.OrientedAreaSums(m.geom.AreaProjections, m.cellFaceIDs, m.topo.CellFaceOrientations)
}
