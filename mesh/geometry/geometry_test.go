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

package geometry

import (
	"math"
	"testing"

	"github.com/spatialmodel/fvmesh/internal/meshtest"
	"github.com/spatialmodel/fvmesh/mesh/ragged"
	"github.com/spatialmodel/fvmesh/mesh/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

const tol = 1e-12

type derived struct {
	topo *topology.Topology
	geom *Geometry
	cf   *ragged.Table
}

func derive(r meshtest.Raw) derived {
	coords := make([]r3.Vec, len(r.VertexCoords))
	for i, c := range r.VertexCoords {
		coords[i] = r3.Vec{X: c[0], Y: c[1], Z: c[2]}
	}
	fv := ragged.FromPadded(r.FaceVertexIDs)
	cf := ragged.FromPadded(r.CellFaceIDs)
	t := topology.Derive(fv, cf)
	return derived{topo: t, geom: Derive(coords, fv, cf, t), cf: cf}
}

func vecNear(t *testing.T, want, got r3.Vec, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, tol, msgAndArgs...)
	assert.InDelta(t, want.Z, got.Z, tol, msgAndArgs...)
}

func TestUnitCube(t *testing.T) {
	d := derive(meshtest.UnitCube())
	g := d.geom

	for f, a := range g.FaceAreas {
		assert.InDelta(t, 0.5, a, tol, "face %d", f)
		assert.InDelta(t, 1, r3.Norm(g.FaceNormals[f]), tol, "face %d", f)
		assert.InDelta(t, 1, g.FaceToCellDistanceRatio[f], tol, "face %d", f)
	}
	require.Len(t, g.CellVolumes, 1)
	assert.InDelta(t, 1, g.CellVolumes[0], tol)
	vecNear(t, r3.Vec{X: 0.5, Y: 0.5, Z: 0.5}, g.CellCenters[0])

	// Faces 0 and 1 lie in z = 0; the outward normal is -z.
	vecNear(t, r3.Vec{Z: -1}, g.FaceNormals[0])
	vecNear(t, r3.Vec{Z: -1}, g.FaceNormals[1])
	vecNear(t, r3.Vec{X: 1}, g.FaceNormals[6])
	vecNear(t, r3.Vec{X: 2.0 / 3, Y: 1.0 / 3}, g.FaceCenters[0])
	vecNear(t, r3.Vec{Z: -0.5}, g.AreaProjections[0])

	for f := range g.CellDistances {
		d0, ok := g.FaceToCellDistances.At(f, 0)
		require.True(t, ok)
		assert.False(t, g.FaceToCellDistances.Valid(f, 1))
		assert.Equal(t, d0, g.CellDistances[f])
	}
}

func TestPaddingExcluded(t *testing.T) {
	plain := derive(meshtest.UnitCube()).geom
	padded := derive(meshtest.PaddedUnitCube()).geom
	assert.Equal(t, plain.FaceAreas, padded.FaceAreas)
	assert.Equal(t, plain.FaceCenters, padded.FaceCenters)
	assert.Equal(t, plain.CellVolumes, padded.CellVolumes)
	assert.Equal(t, plain.CellCenters, padded.CellCenters)
	assert.Equal(t, plain.FaceTangents1, padded.FaceTangents1)
}

func TestTwoCubes(t *testing.T) {
	d := derive(meshtest.TwoCubes())
	g := d.geom

	for c, v := range g.CellVolumes {
		assert.InDelta(t, 1, v, tol, "cell %d", c)
	}
	vecNear(t, r3.Vec{X: 0.5, Y: 0.5, Z: 0.5}, g.CellCenters[0])
	vecNear(t, r3.Vec{X: 1.5, Y: 0.5, Z: 0.5}, g.CellCenters[1])
	for f, a := range g.FaceAreas {
		assert.InDelta(t, 1, a, tol, "face %d", f)
	}

	const shared = 3
	assert.InDelta(t, 1, g.CellDistances[shared], tol)
	d0, _ := g.FaceToCellDistances.At(shared, 0)
	d1, ok := g.FaceToCellDistances.At(shared, 1)
	require.True(t, ok)
	assert.InDelta(t, 0.5, d0, tol)
	assert.InDelta(t, 0.5, d1, tol)
	assert.InDelta(t, 0.5, g.FaceToCellDistanceRatio[shared], tol)

	// The shared face points out of its first cell.
	vecNear(t, r3.Vec{X: 1}, g.FaceNormals[shared])

	// Exterior face 8 at x = 2 is half a cell from cell 1.
	assert.InDelta(t, 0.5, g.CellDistances[8], tol)
	assert.InDelta(t, 1, g.FaceToCellDistanceRatio[8], tol)
}

func TestClosedCellsBalance(t *testing.T) {
	for name, r := range map[string]meshtest.Raw{
		"cube":      meshtest.UnitCube(),
		"padded":    meshtest.PaddedUnitCube(),
		"two cubes": meshtest.TwoCubes(),
	} {
		t.Run(name, func(t *testing.T) {
			d := derive(r)
			sums := OrientedAreaSums(d.geom.AreaProjections, d.cf, d.topo.CellFaceOrientations)
			for c, s := range sums {
				vecNear(t, r3.Vec{}, s, "cell %d", c)
			}
		})
	}
}

func TestRotatedRingsInvariant(t *testing.T) {
	for name, r := range map[string]meshtest.Raw{
		"cube":      meshtest.UnitCube(),
		"two cubes": meshtest.TwoCubes(),
	} {
		t.Run(name, func(t *testing.T) {
			a := derive(r).geom
			b := derive(meshtest.Rotated(r)).geom
			for f := range a.FaceAreas {
				assert.InDelta(t, a.FaceAreas[f], b.FaceAreas[f], tol, "face %d", f)
				vecNear(t, a.FaceNormals[f], b.FaceNormals[f], "face %d", f)
			}
			for c := range a.CellVolumes {
				assert.InDelta(t, a.CellVolumes[c], b.CellVolumes[c], tol, "cell %d", c)
			}
		})
	}
}

func TestTangentFrame(t *testing.T) {
	g := derive(meshtest.TwoCubes()).geom
	for f := range g.FaceNormals {
		n, t1, t2 := g.FaceNormals[f], g.FaceTangents1[f], g.FaceTangents2[f]
		assert.InDelta(t, 1, r3.Norm(t1), tol, "face %d", f)
		assert.InDelta(t, 1, r3.Norm(t2), tol, "face %d", f)
		assert.InDelta(t, 0, r3.Dot(t1, n), tol, "face %d", f)
		assert.InDelta(t, 0, r3.Dot(t2, n), tol, "face %d", f)
		assert.InDelta(t, 0, r3.Dot(t1, t2), tol, "face %d", f)
	}
}

func TestDegenerateFace(t *testing.T) {
	coords := []r3.Vec{{}, {X: 1}}
	fv := ragged.FromPadded([][]int{{0, 1, ragged.Invalid}})
	n := FaceNormals(coords, fv)
	assert.True(t, math.IsNaN(n[0].X))
	assert.Equal(t, []float64{0}, FaceAreas(coords, fv))
}

func TestPaddingInsideRing(t *testing.T) {
	coords := []r3.Vec{{}, {X: 1}, {Y: 1}, {X: 1, Y: 1}}
	packed := ragged.FromPadded([][]int{{0, 1, 3, 2}})
	gapped := ragged.FromPadded([][]int{{0, ragged.Invalid, 1, 3, 2}})

	assert.Equal(t, FaceNormals(coords, packed), FaceNormals(coords, gapped))
	assert.Equal(t, FaceAreas(coords, packed), FaceAreas(coords, gapped))
	centers := FaceCenters(coords, packed)
	assert.Equal(t, centers, FaceCenters(coords, gapped))

	normals := FaceNormals(coords, packed)
	p1, p2 := FaceTangents(coords, packed, centers, normals)
	g1, g2 := FaceTangents(coords, gapped, centers, normals)
	assert.Equal(t, p1, g1)
	assert.Equal(t, p2, g2)
	assert.InDelta(t, 1, math.Abs(normals[0].Z), 1e-12)
}
