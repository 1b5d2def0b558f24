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

package term

import (
	"testing"

	"github.com/spatialmodel/fvmesh/internal/meshtest"
	"github.com/spatialmodel/fvmesh/mesh/unstructured"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMesh []float64

func (m fakeMesh) NumberOfCells() int     { return len(m) }
func (m fakeMesh) CellVolumes() []float64 { return m }

func TestDiagonalSign(t *testing.T) {
	tests := []struct {
		name                 string
		transient, diffusion []float64
		want                 float64
		err                  bool
	}{
		{name: "none", want: 1},
		{name: "transient positive", transient: []float64{1, 0, 2}, want: 1},
		{name: "transient negative", transient: []float64{-1, -2}, want: -1},
		{name: "transient mixed", transient: []float64{-1, 2}, err: true},
		{name: "transient wins", transient: []float64{-1}, diffusion: []float64{-1, 1}, want: -1},
		{name: "diffusion negative", diffusion: []float64{-3, -1}, want: 1},
		{name: "diffusion positive", diffusion: []float64{3, 1}, want: -1},
		{name: "diffusion mixed", diffusion: []float64{3, -1}, err: true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, err := DiagonalSign(test.transient, test.diffusion)
			if test.err {
				assert.ErrorIs(t, err, ErrMixedSign)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, s)
		})
	}
}

func TestWeight(t *testing.T) {
	m := fakeMesh{1, 1, 1}
	s := ImplicitSource{Coeff: []float64{2, -2, 0}}
	variable := []float64{5, 6, 7}

	w, err := s.Weight(m, variable, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true}, w.Diagonal)
	assert.Equal(t, []float64{0, -6, 0}, w.BVector.Elements)
	assert.Equal(t, []float64{0, 0, 0}, w.OldValue.Elements)
	assert.Equal(t, []float64{0, 0, 0}, w.NewValue.Elements)

	// A negative transient coefficient flips every decision.
	w, err = s.Weight(m, variable, []float64{-1, -1, -1}, nil)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, true}, w.Diagonal)
	assert.Equal(t, []float64{-5, 0, 0}, w.BVector.Elements)
}

func TestWeightErrors(t *testing.T) {
	m := fakeMesh{1, 1}
	_, err := ImplicitSource{Coeff: []float64{1}}.Weight(m, []float64{0, 0}, nil, nil)
	assert.ErrorIs(t, err, ErrLength)
	_, err = ImplicitSource{Coeff: []float64{1, 1}}.Weight(m, []float64{0}, nil, nil)
	assert.ErrorIs(t, err, ErrLength)
	_, err = ImplicitSource{Coeff: []float64{1, 1}}.Weight(m, []float64{0, 0}, []float64{1, -1}, nil)
	assert.ErrorIs(t, err, ErrMixedSign)
}

func TestContribution(t *testing.T) {
	r := meshtest.TwoCubes()
	m, err := unstructured.New(r.VertexCoords, r.FaceVertexIDs, r.CellFaceIDs, unstructured.WithScale(2))
	require.NoError(t, err)

	s := ImplicitSource{Coeff: []float64{3, -1}}
	L, b, err := s.Contribution(m, []float64{10, 20}, nil, nil)
	require.NoError(t, err)

	// Cell volumes are 8.
	assert.InDelta(t, 24, L.Get(0, 0), 1e-12)
	assert.Equal(t, 0.0, L.Get(1, 1))
	assert.Equal(t, 0.0, L.Get(0, 1))
	assert.Equal(t, 0.0, b.Get(0))
	assert.InDelta(t, 160, b.Get(1), 1e-12)
}
