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

package plot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spatialmodel/fvmesh/internal/meshtest"
	"github.com/spatialmodel/fvmesh/mesh/unstructured"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

func twoCubes(t *testing.T) *unstructured.Mesh {
	r := meshtest.TwoCubes()
	m, err := unstructured.New(r.VertexCoords, r.FaceVertexIDs, r.CellFaceIDs)
	require.NoError(t, err)
	return m
}

func TestParsePlane(t *testing.T) {
	for _, s := range []string{"xy", "xz", "yz"} {
		p, err := ParsePlane(s)
		require.NoError(t, err)
		assert.Equal(t, s, p.String())
	}
	_, err := ParsePlane("zz")
	assert.Error(t, err)
}

func TestFaceOutlines(t *testing.T) {
	m := twoCubes(t)
	o := FaceOutlines(m, PlaneXZ)
	require.Len(t, o, 11)

	// Face 8 lies in x = 2 and is a closed ring of 4 vertices.
	require.Equal(t, 5, o[8].Len())
	assert.Equal(t, o[8][0], o[8][4])
	for i := 0; i < o[8].Len(); i++ {
		x, _ := o[8].XY(i)
		assert.Equal(t, 2.0, x)
	}

	c := CellCenters(m, PlaneYZ)
	require.Equal(t, 2, c.Len())
	for _, xy := range c {
		assert.InDelta(t, 0.5, xy.X, 1e-12)
		assert.InDelta(t, 0.5, xy.Y, 1e-12)
	}
}

func TestSave(t *testing.T) {
	file := filepath.Join(t.TempDir(), "mesh.png")
	require.NoError(t, Save(twoCubes(t), PlaneXY, file, 4*vg.Inch, 3*vg.Inch))
	fi, err := os.Stat(file)
	require.NoError(t, err)
	assert.NotZero(t, fi.Size())
}
