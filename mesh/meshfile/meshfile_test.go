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

package meshfile

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spatialmodel/fvmesh/mesh/unstructured"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	m, err := Load(filepath.Join("testdata", "two_cubes.toml"))
	require.NoError(t, err)
	assert.Equal(t, 2, m.NumberOfCells())
	assert.Equal(t, 11, m.NumberOfFaces())
	assert.Equal(t, 7, m.MaxFacesPerCell())
	assert.Equal(t, []int{3}, m.InteriorFaceIDs())
	for _, v := range m.CellVolumes() {
		assert.InDelta(t, 1, v, 1e-12)
	}
}

func TestRoundTrip(t *testing.T) {
	m, err := Load(filepath.Join("testdata", "two_cubes.toml"), unstructured.WithScale(3))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, m))
	assert.NotContains(t, buf.String(), "scale")
	assert.NotContains(t, buf.String(), "validate")

	m2, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, m.RawState(), m2.RawState())
	assert.Equal(t, m.CellVolumes(), m2.CellVolumes())
	assert.InDelta(t, 27, m2.CellVolumes()[1], 1e-9)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name, doc, want string
	}{
		{
			name: "syntax",
			doc:  "vertices = [[0.0, 0.0",
			want: "meshfile",
		},
		{
			name: "unknown key",
			doc:  "vertices = [[0.0, 0.0, 0.0]]\nfaces = []\ncells = []\ncolour = \"red\"",
			want: "unknown keys colour",
		},
		{
			name: "no vertices",
			doc:  "faces = []\ncells = []",
			want: unstructured.ErrNoVertices.Error(),
		},
		{
			name: "validation",
			doc:  "validate = true\nvertices = [[0.0, 0.0, 0.0]]\nfaces = [[0, 1, 2]]\ncells = [[0]]",
			want: "invalid connectivity",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(test.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.want)
		})
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
