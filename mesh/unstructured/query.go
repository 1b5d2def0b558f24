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
	"fmt"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

// PointToCellDistances returns the distance from p to the center of
// every cell. p must have Dims() coordinates.
func (m *Mesh) PointToCellDistances(p []float64) ([]float64, error) {
	v, err := m.toVec(p)
	if err != nil {
		return nil, err
	}
	o := make([]float64, len(m.geom.CellCenters))
	for i, c := range m.geom.CellCenters {
		o[i] = r3.Norm(r3.Sub(c, v))
	}
	return o, nil
}

// CellsByDistance returns the indices of all cells, ordered by the
// distance from p to the cell centers. Ties keep index order.
func (m *Mesh) CellsByDistance(p []float64) ([]int, error) {
	d, err := m.PointToCellDistances(p)
	if err != nil {
		return nil, err
	}
	idx := make([]int, len(d))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool { return d[idx[i]] < d[idx[j]] })
	return idx, nil
}

// NearestCell returns the cell whose center is closest to p.
func (m *Mesh) NearestCell(p []float64) (Cell, error) {
	if m.topo.NumberOfCells == 0 {
		return Cell{}, ErrEmptyMesh
	}
	idx, err := m.CellsByDistance(p)
	if err != nil {
		return Cell{}, err
	}
	return NewCell(m, idx[0]), nil
}

func (m *Mesh) toVec(p []float64) (r3.Vec, error) {
	if len(p) != m.dim {
		return r3.Vec{}, fmt.Errorf("%w: point has %d coordinates, mesh has %d", ErrDimension, len(p), m.dim)
	}
	var v [3]float64
	copy(v[:], p)
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}, nil
}
