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

// Package term builds the linear-system contribution of an implicit
// source term, ∫ φ S dV ≈ φ_P S_P V_P, on a finite-volume mesh.
package term

import (
	"errors"
	"fmt"

	"github.com/ctessum/sparse"
)

// ErrMixedSign is returned when a coefficient that decides the sign of
// the matrix diagonal has both positive and negative values.
var ErrMixedSign = errors.New("term: coefficient has both positive and negative values")

// ErrLength is returned when a per-cell input does not have one value
// per cell.
var ErrLength = errors.New("term: wrong number of values")

// Mesh is the part of a mesh that a source term needs.
type Mesh interface {
	NumberOfCells() int
	CellVolumes() []float64
}

// ImplicitSource is a source term whose per-cell coefficient S
// multiplies the solution variable.
type ImplicitSource struct {
	// Coeff holds S for every cell.
	Coeff []float64
}

// Weight records how each cell of a source term is discretized.
type Weight struct {
	// Diagonal is true for cells treated implicitly, where the term
	// adds to the matrix diagonal.
	Diagonal []bool

	// OldValue and NewValue are the weights of the previous and the
	// new solution; they are zero for a source term.
	OldValue, NewValue *sparse.DenseArray

	// BVector is the explicit part: minus the variable value in cells
	// that are not treated implicitly.
	BVector *sparse.DenseArray
}

// DiagonalSign returns the sign of the matrix diagonal implied by the
// other terms of an equation. A transient coefficient decides it if given,
// otherwise a diffusion coefficient does, otherwise it is +1. The deciding
// coefficient must have the same sign everywhere in the mesh.
func DiagonalSign(transient, diffusion []float64) (float64, error) {
	switch {
	case transient != nil:
		if all(transient, func(v float64) bool { return v >= 0 }) {
			return 1, nil
		} else if all(transient, func(v float64) bool { return v <= 0 }) {
			return -1, nil
		}
		return 0, fmt.Errorf("%w: transient coefficient", ErrMixedSign)
	case diffusion != nil:
		if all(diffusion, func(v float64) bool { return v <= 0 }) {
			return 1, nil
		} else if all(diffusion, func(v float64) bool { return v >= 0 }) {
			return -1, nil
		}
		return 0, fmt.Errorf("%w: diffusion coefficient", ErrMixedSign)
	}
	return 1, nil
}

// Weight decides, cell by cell, whether the source is treated implicitly.
// It is implicit wherever the coefficient has the sign of the diagonal.
func (s ImplicitSource) Weight(m Mesh, variable, transient, diffusion []float64) (*Weight, error) {
	n := m.NumberOfCells()
	if len(s.Coeff) != n {
		return nil, fmt.Errorf("%w: %d coefficients for %d cells", ErrLength, len(s.Coeff), n)
	}
	if len(variable) != n {
		return nil, fmt.Errorf("%w: %d variable values for %d cells", ErrLength, len(variable), n)
	}
	diag, err := DiagonalSign(transient, diffusion)
	if err != nil {
		return nil, err
	}
	w := &Weight{
		Diagonal: make([]bool, n),
		OldValue: sparse.ZerosDense(n),
		NewValue: sparse.ZerosDense(n),
		BVector:  sparse.ZerosDense(n),
	}
	for i, c := range s.Coeff {
		combined := diag * sign(c)
		w.Diagonal[i] = combined >= 0
		if combined < 0 {
			w.BVector.Set(-variable[i], i)
		}
	}
	return w, nil
}

// Contribution returns the matrix L and right-hand side b that the term
// adds to the linear system, so that the term reads L·φ − b. Implicit cells
// add S·V to the diagonal of L; explicit cells add −S·V·φ to b.
func (s ImplicitSource) Contribution(m Mesh, variable, transient, diffusion []float64) (*sparse.SparseArray, *sparse.DenseArray, error) {
	w, err := s.Weight(m, variable, transient, diffusion)
	if err != nil {
		return nil, nil, err
	}
	n := m.NumberOfCells()
	vol := m.CellVolumes()
	L := sparse.ZerosSparse(n, n)
	b := sparse.ZerosDense(n)
	for i, c := range s.Coeff {
		g := c * vol[i]
		if w.Diagonal[i] {
			L.Set(g, i, i)
		} else {
			b.Set(g*w.BVector.Get(i), i)
		}
	}
	return L, b, nil
}

func all(v []float64, f func(float64) bool) bool {
	for _, x := range v {
		if !f(x) {
			return false
		}
	}
	return true
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
