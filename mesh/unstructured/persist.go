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
	"bytes"
	"encoding/gob"
	"fmt"
)

// RawState is the persisted form of a mesh. Derived topology and
// geometry are never stored; they are recomputed when a mesh is
// created from its raw state.
type RawState struct {
	VertexCoords  [][]float64
	FaceVertexIDs [][]int
	CellFaceIDs   [][]int
}

// RawState returns the raw inputs of the mesh, with padding in
// the index tables.
func (m *Mesh) RawState() RawState {
	return RawState{
		VertexCoords:  m.VertexCoords(),
		FaceVertexIDs: m.faceVertexIDs.Padded(),
		CellFaceIDs:   m.cellFaceIDs.Padded(),
	}
}

// FromRawState creates a mesh from its raw state.
func FromRawState(s RawState, opts ...Option) (*Mesh, error) {
	return New(s.VertexCoords, s.FaceVertexIDs, s.CellFaceIDs, opts...)
}

// MarshalBinary serializes the raw inputs of this mesh into a byte array.
func (m *Mesh) MarshalBinary() ([]byte, error) {
	b := bytes.NewBuffer(nil)
	if err := gob.NewEncoder(b).Encode(m.RawState()); err != nil {
		return nil, fmt.Errorf("marshalling mesh: %w", err)
	}
	return b.Bytes(), nil
}

// UnmarshalBinary initializes this mesh from a byte array created by
// MarshalBinary, re-deriving all topology and geometry. The receiver is
// only modified if the whole mesh could be rebuilt.
func (m *Mesh) UnmarshalBinary(b []byte) error {
	var s RawState
	if err := gob.NewDecoder(bytes.NewReader(b)).Decode(&s); err != nil {
		return fmt.Errorf("unmarshalling mesh: %w", err)
	}
	var opts []Option
	if m.log != nil {
		opts = append(opts, WithLogger(m.log))
	}
	m2, err := FromRawState(s, opts...)
	if err != nil {
		return fmt.Errorf("unmarshalling mesh: %w", err)
	}
	*m = *m2
	return nil
}
