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

// Package ragged holds fixed-width connectivity tables whose rows have
// variable logical length. Unused trailing slots are padding and carry
// a validity flag rather than a sentinel value, so that reductions and
// gathers never silently include them.
package ragged

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// Invalid marks a padded slot in a raw connectivity table.
// Any negative entry is treated the same way.
const Invalid = -1

// Masked is a rows × width table of values where every slot
// is either valid or masked out.
type Masked[T any] struct {
	rows, width int
	data        []T
	valid       []bool
}

// NewMasked returns a table with every slot masked out.
func NewMasked[T any](rows, width int) *Masked[T] {
	return &Masked[T]{
		rows:  rows,
		width: width,
		data:  make([]T, rows*width),
		valid: make([]bool, rows*width),
	}
}

// Rows returns the number of rows.
func (m *Masked[T]) Rows() int { return m.rows }

// Width returns the number of slots per row.
func (m *Masked[T]) Width() int { return m.width }

// At returns the value in row i, slot j. ok is false if the
// slot is masked out or outside of the table.
func (m *Masked[T]) At(i, j int) (v T, ok bool) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.width {
		return v, false
	}
	k := i*m.width + j
	if !m.valid[k] {
		return v, false
	}
	return m.data[k], true
}

// Valid reports whether slot (i, j) holds a value.
func (m *Masked[T]) Valid(i, j int) bool {
	_, ok := m.At(i, j)
	return ok
}

// Set stores v in slot (i, j) and marks it valid.
func (m *Masked[T]) Set(i, j int, v T) {
	k := i*m.width + j
	m.data[k] = v
	m.valid[k] = true
}

// Unset masks out slot (i, j).
func (m *Masked[T]) Unset(i, j int) {
	k := i*m.width + j
	var zero T
	m.data[k] = zero
	m.valid[k] = false
}

// Row returns the valid values of row i in slot order.
func (m *Masked[T]) Row(i int) []T {
	o := make([]T, 0, m.width)
	for j := 0; j < m.width; j++ {
		if v, ok := m.At(i, j); ok {
			o = append(o, v)
		}
	}
	return o
}

// RowLen returns the number of valid slots in row i.
func (m *Masked[T]) RowLen(i int) int {
	n := 0
	for j := 0; j < m.width; j++ {
		if m.valid[i*m.width+j] {
			n++
		}
	}
	return n
}

// Column returns slot j of every row as a rows × 1 table.
func (m *Masked[T]) Column(j int) *Masked[T] {
	o := NewMasked[T](m.rows, 1)
	for i := 0; i < m.rows; i++ {
		if v, ok := m.At(i, j); ok {
			o.Set(i, 0, v)
		}
	}
	return o
}

// Filled returns the table flattened in row-major order
// with fill substituted for masked slots.
func (m *Masked[T]) Filled(fill T) []T {
	o := make([]T, len(m.data))
	for k, v := range m.data {
		if m.valid[k] {
			o[k] = v
		} else {
			o[k] = fill
		}
	}
	return o
}

// Clone returns a deep copy of the table.
func (m *Masked[T]) Clone() *Masked[T] {
	o := NewMasked[T](m.rows, m.width)
	copy(o.data, m.data)
	copy(o.valid, m.valid)
	return o
}

// Map applies f to every valid slot of m. Masked slots stay masked.
func Map[T, U any](m *Masked[T], f func(i, j int, v T) U) *Masked[U] {
	o := NewMasked[U](m.rows, m.width)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.width; j++ {
			if v, ok := m.At(i, j); ok {
				o.Set(i, j, f(i, j, v))
			}
		}
	}
	return o
}

// Index is a table of indices with masked slots. Both *Table and
// *Masked[int] satisfy it.
type Index interface {
	Rows() int
	Width() int
	At(i, j int) (int, bool)
}

// Gather looks up src through idx. Slots that are masked in idx, or that
// point outside of src, are masked in the result. Element types are
// masked as a whole, so a vector gathered through a padded index is
// entirely invalid rather than partially valid.
func Gather[T any](src []T, idx Index) *Masked[T] {
	o := NewMasked[T](idx.Rows(), idx.Width())
	for i := 0; i < idx.Rows(); i++ {
		for j := 0; j < idx.Width(); j++ {
			k, ok := idx.At(i, j)
			if !ok || k < 0 || k >= len(src) {
				continue
			}
			o.Set(i, j, src[k])
		}
	}
	return o
}

// SumFloat returns the sum of the valid slots of each row.
func SumFloat(m *Masked[float64]) []float64 {
	o := make([]float64, m.rows)
	for i := range o {
		o[i] = floats.Sum(m.Row(i))
	}
	return o
}

// MeanFloat returns the mean of the valid slots of each row.
// Rows without any valid slot are NaN.
func MeanFloat(m *Masked[float64]) []float64 {
	o := make([]float64, m.rows)
	for i := range o {
		row := m.Row(i)
		if len(row) == 0 {
			o[i] = math.NaN()
			continue
		}
		o[i] = floats.Sum(row) / float64(len(row))
	}
	return o
}

// SumVec returns the vector sum of the valid slots of each row.
func SumVec(m *Masked[r3.Vec]) []r3.Vec {
	o := make([]r3.Vec, m.rows)
	for i := range o {
		for _, v := range m.Row(i) {
			o[i] = r3.Add(o[i], v)
		}
	}
	return o
}

// MeanVec returns the mean of the valid vectors of each row.
// Rows without any valid slot are NaN vectors.
func MeanVec(m *Masked[r3.Vec]) []r3.Vec {
	sums := SumVec(m)
	for i := range sums {
		n := m.RowLen(i)
		if n == 0 {
			nan := math.NaN()
			sums[i] = r3.Vec{X: nan, Y: nan, Z: nan}
			continue
		}
		fn := float64(n)
		sums[i] = r3.Vec{X: sums[i].X / fn, Y: sums[i].Y / fn, Z: sums[i].Z / fn}
	}
	return sums
}
