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

// Package geometry computes the metric quantities of a finite-volume
// mesh: face areas, centers, normals and tangents, cell volumes and
// centers, and the distances used to interpolate between cells and faces.
//
// Each quantity is computed by a pure function over whole arrays.
// Derive runs them once, in dependency order.
//
// Faces are assumed to be triangles or otherwise planar: the normal of
// a face is taken from its first three vertices only.
package geometry

import (
	"math"

	"github.com/spatialmodel/fvmesh/mesh/ragged"
	"github.com/spatialmodel/fvmesh/mesh/topology"
	"gonum.org/v1/gonum/spatial/r3"
)

// Geometry holds the derived metric quantities of a mesh.
type Geometry struct {
	FaceAreas   []float64
	FaceCenters []r3.Vec
	FaceNormals []r3.Vec

	CellVolumes []float64
	CellCenters []r3.Vec

	// FaceToCellDistances is a faces × 2 table of the distance from each
	// face center to the centers of its neighbor cells. The second slot
	// is masked on exterior faces.
	FaceToCellDistances *ragged.Masked[float64]

	// CellDistances is the distance between the two neighbor cells of
	// each face. Exterior faces use the distance to their only cell.
	CellDistances []float64

	FaceToCellDistanceRatio []float64

	AreaProjections []r3.Vec
	FaceTangents1   []r3.Vec
	FaceTangents2   []r3.Vec
}

// Derive computes the geometry of a mesh with the given vertex coordinates,
// connectivity, and topology.
func Derive(coords []r3.Vec, faceVertexIDs, cellFaceIDs *ragged.Table, t *topology.Topology) *Geometry {
	g := new(Geometry)
	g.FaceAreas = FaceAreas(coords, faceVertexIDs)
	g.FaceCenters = FaceCenters(coords, faceVertexIDs)
	g.FaceNormals = FaceNormals(coords, faceVertexIDs)
	g.CellVolumes = CellVolumes(g.FaceCenters, g.FaceAreas, g.FaceNormals, cellFaceIDs, t.CellFaceOrientations)
	g.CellCenters = CellCenters(g.FaceCenters, cellFaceIDs)
	g.FaceToCellDistances = FaceToCellDistances(g.FaceCenters, g.CellCenters, t.FaceCellIDs)
	g.CellDistances = CellDistances(g.CellCenters, t.FaceCellIDs, g.FaceToCellDistances)
	g.AreaProjections = AreaProjections(g.FaceNormals, g.FaceAreas)
	g.FaceTangents1, g.FaceTangents2 = FaceTangents(coords, faceVertexIDs, g.FaceCenters, g.FaceNormals)
	g.FaceToCellDistanceRatio = FaceToCellDistanceRatio(g.FaceToCellDistances, g.CellDistances)
	return g
}

var nanVec = r3.Vec{X: math.NaN(), Y: math.NaN(), Z: math.NaN()}

// FaceAreas returns the area of every face: the valid vertices of the ring
// are translated so the first vertex is the origin, the cross products of
// consecutive vertices are summed around the ring, and half the length of
// the sum is the area.
func FaceAreas(coords []r3.Vec, faceVertexIDs *ragged.Table) []float64 {
	rings := ragged.Gather(coords, faceVertexIDs)
	o := make([]float64, rings.Rows())
	for i := range o {
		ring := rings.Row(i)
		n := len(ring)
		if n == 0 {
			continue
		}
		var sum r3.Vec
		for k := range ring {
			a := r3.Sub(ring[k], ring[0])
			b := r3.Sub(ring[(k+1)%n], ring[0])
			sum = r3.Add(sum, r3.Cross(a, b))
		}
		o[i] = r3.Norm(sum) / 2
	}
	return o
}

// FaceCenters returns the mean of the valid vertices of each face.
func FaceCenters(coords []r3.Vec, faceVertexIDs *ragged.Table) []r3.Vec {
	return ragged.MeanVec(ragged.Gather(coords, faceVertexIDs))
}

// FaceNormals returns the unit normal of every face: the negated, normalized
// cross product of the first two edges of the ring, taken over the valid
// vertices in slot order. Faces with fewer than
// three valid vertices have NaN normals.
func FaceNormals(coords []r3.Vec, faceVertexIDs *ragged.Table) []r3.Vec {
	rings := ragged.Gather(coords, faceVertexIDs)
	o := make([]r3.Vec, rings.Rows())
	for i := range o {
		ring := rings.Row(i)
		if len(ring) < 3 {
			o[i] = nanVec
			continue
		}
		v0, v1, v2 := ring[0], ring[1], ring[2]
		n := r3.Cross(r3.Sub(v1, v0), r3.Sub(v2, v1))
		o[i] = r3.Scale(-1, r3.Unit(n))
	}
	return o
}

// CellVolumes applies the divergence theorem to the field (x, 0, 0): the
// volume of a cell is the orientation-signed sum over its faces of
// the face center's x coordinate times the x component of the face's
// area-weighted normal.
func CellVolumes(faceCenters []r3.Vec, faceAreas []float64, faceNormals []r3.Vec,
	cellFaceIDs *ragged.Table, orientations *ragged.Masked[int]) []float64 {
	flux := make([]float64, len(faceAreas))
	for f := range flux {
		flux[f] = faceCenters[f].X * faceAreas[f] * faceNormals[f].X
	}
	signed := ragged.Map(ragged.Gather(flux, cellFaceIDs), func(c, j int, v float64) float64 {
		o, ok := orientations.At(c, j)
		if !ok {
			return 0
		}
		return v * float64(o)
	})
	return ragged.SumFloat(signed)
}

// CellCenters returns the mean of the centers of the faces of each cell.
func CellCenters(faceCenters []r3.Vec, cellFaceIDs *ragged.Table) []r3.Vec {
	return ragged.MeanVec(ragged.Gather(faceCenters, cellFaceIDs))
}

// FaceToCellDistances returns the distance from every face center to the
// center of each of its neighbor cells.
func FaceToCellDistances(faceCenters, cellCenters []r3.Vec, faceCellIDs *ragged.Masked[int]) *ragged.Masked[float64] {
	return ragged.Map(ragged.Gather(cellCenters, faceCellIDs), func(f, _ int, c r3.Vec) float64 {
		return r3.Norm(r3.Sub(c, faceCenters[f]))
	})
}

// CellDistances returns the distance between the centers of the two
// neighbor cells of every interior face, and the face-to-cell distance
// of every exterior face.
func CellDistances(cellCenters []r3.Vec, faceCellIDs *ragged.Masked[int], faceToCell *ragged.Masked[float64]) []float64 {
	pairs := ragged.Gather(cellCenters, faceCellIDs)
	o := make([]float64, pairs.Rows())
	for f := range o {
		c0, ok0 := pairs.At(f, 0)
		c1, ok1 := pairs.At(f, 1)
		if ok0 && ok1 {
			o[f] = r3.Norm(r3.Sub(c1, c0))
			continue
		}
		d, ok := faceToCell.At(f, 0)
		if !ok {
			d = math.NaN()
		}
		o[f] = d
	}
	return o
}

// FaceToCellDistanceRatio returns, for every face, the distance to its
// first neighbor cell divided by the cell distance across the face.
// Exterior faces therefore have a ratio of 1.
func FaceToCellDistanceRatio(faceToCell *ragged.Masked[float64], cellDistances []float64) []float64 {
	o := make([]float64, len(cellDistances))
	for f := range o {
		d, ok := faceToCell.At(f, 0)
		if !ok {
			o[f] = math.NaN()
			continue
		}
		o[f] = d / cellDistances[f]
	}
	return o
}

// AreaProjections returns each face normal scaled by the face area.
func AreaProjections(faceNormals []r3.Vec, faceAreas []float64) []r3.Vec {
	o := make([]r3.Vec, len(faceNormals))
	for f := range o {
		o[f] = r3.Scale(faceAreas[f], faceNormals[f])
	}
	return o
}

// FaceTangents returns two unit tangents per face. The first points from
// the face's first vertex to its center; the second is the normalized
// cross product of the first tangent and the face normal.
func FaceTangents(coords []r3.Vec, faceVertexIDs *ragged.Table, faceCenters, faceNormals []r3.Vec) (t1, t2 []r3.Vec) {
	rings := ragged.Gather(coords, faceVertexIDs)
	t1 = make([]r3.Vec, len(faceCenters))
	t2 = make([]r3.Vec, len(faceCenters))
	for f := range faceCenters {
		ring := rings.Row(f)
		if len(ring) == 0 {
			t1[f], t2[f] = nanVec, nanVec
			continue
		}
		v0 := ring[0]
		t1[f] = r3.Unit(r3.Sub(faceCenters[f], v0))
		t2[f] = r3.Unit(r3.Cross(t1[f], faceNormals[f]))
	}
	return t1, t2
}

// OrientedAreaSums returns, for every cell, the orientation-signed sum of
// the area projections of its faces. For a closed cell the sum vanishes.
func OrientedAreaSums(areaProjections []r3.Vec, cellFaceIDs *ragged.Table, orientations *ragged.Masked[int]) []r3.Vec {
	signed := ragged.Map(ragged.Gather(areaProjections, cellFaceIDs), func(c, j int, v r3.Vec) r3.Vec {
		o, ok := orientations.At(c, j)
		if !ok {
			return r3.Vec{}
		}
		return r3.Scale(float64(o), v)
	})
	return ragged.SumVec(signed)
}
