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

package ragged

// Table is a padded connectivity table: row i lists the entity
// indices (vertices of a face, faces of a cell) of entity i.
type Table struct {
	Masked[int]
}

// NewTable returns a rows × width table with every slot padded.
func NewTable(rows, width int) *Table {
	return &Table{Masked: *NewMasked[int](rows, width)}
}

// FromPadded creates a table from raw rows. The table width is the
// length of the longest row; shorter rows are padded, and negative
// entries (such as Invalid) are padding.
func FromPadded(rows [][]int) *Table {
	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}
	t := NewTable(len(rows), width)
	for i, r := range rows {
		for j, v := range r {
			if v >= 0 {
				t.Set(i, j, v)
			}
		}
	}
	return t
}

// Padded returns the raw form of the table, with Invalid in
// every padded slot. FromPadded(t.Padded()) reproduces t.
func (t *Table) Padded() [][]int {
	o := make([][]int, t.rows)
	flat := t.Filled(Invalid)
	for i := range o {
		o[i] = flat[i*t.width : (i+1)*t.width : (i+1)*t.width]
	}
	return o
}

// Max returns the largest valid index in the table,
// or Invalid if the table has no valid slot.
func (t *Table) Max() int {
	m := Invalid
	for k, v := range t.data {
		if t.valid[k] && v > m {
			m = v
		}
	}
	return m
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	return &Table{Masked: *t.Masked.Clone()}
}
