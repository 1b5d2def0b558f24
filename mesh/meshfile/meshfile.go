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

// Package meshfile reads and writes TOML descriptions of unstructured
// meshes. A file holds only the raw inputs of a mesh:
//
//	scale = 1.0        # optional length scale
//	validate = true    # optional connectivity check
//	vertices = [[0.0, 0.0, 0.0], [1.0, 0.0, 0.0], ...]
//	faces = [[0, 1, 3], [0, 3, 2, -1], ...]
//	cells = [[0, 1, 2, 3, 4, 5], ...]
//
// Face and cell rows may be of different lengths or padded with -1.
package meshfile

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spatialmodel/fvmesh/mesh/unstructured"
)

// Description is the content of a mesh file.
type Description struct {
	Scale    float64     `toml:"scale,omitzero"`
	Validate bool        `toml:"validate,omitzero"`
	Vertices [][]float64 `toml:"vertices"`
	Faces    [][]int     `toml:"faces"`
	Cells    [][]int     `toml:"cells"`
}

// Mesh creates the mesh described by d. opts are applied after the
// options implied by d itself.
func (d *Description) Mesh(opts ...unstructured.Option) (*unstructured.Mesh, error) {
	var o []unstructured.Option
	if d.Scale != 0 {
		o = append(o, unstructured.WithScale(d.Scale))
	}
	if d.Validate {
		o = append(o, unstructured.WithValidation())
	}
	return unstructured.New(d.Vertices, d.Faces, d.Cells, append(o, opts...)...)
}

// DecodeDescription reads a mesh description from r. Unknown keys are
// an error.
func DecodeDescription(r io.Reader) (*Description, error) {
	d := new(Description)
	md, err := toml.NewDecoder(r).Decode(d)
	if err != nil {
		return nil, fmt.Errorf("meshfile: %w", err)
	}
	if u := md.Undecoded(); len(u) > 0 {
		keys := make([]string, len(u))
		for i, k := range u {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("meshfile: unknown keys %s", strings.Join(keys, ", "))
	}
	return d, nil
}

// Decode reads a mesh description from r and creates the mesh.
func Decode(r io.Reader, opts ...unstructured.Option) (*unstructured.Mesh, error) {
	d, err := DecodeDescription(r)
	if err != nil {
		return nil, err
	}
	m, err := d.Mesh(opts...)
	if err != nil {
		return nil, fmt.Errorf("meshfile: %w", err)
	}
	return m, nil
}

// Load reads the mesh file at path.
func Load(path string, opts ...unstructured.Option) (*unstructured.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := Decode(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Encode writes the raw inputs of m to w. Coordinates are written
// already scaled, so the scale key is omitted.
func Encode(w io.Writer, m *unstructured.Mesh) error {
	s := m.RawState()
	d := Description{
		Vertices: s.VertexCoords,
		Faces:    s.FaceVertexIDs,
		Cells:    s.CellFaceIDs,
	}
	if err := toml.NewEncoder(w).Encode(d); err != nil {
		return fmt.Errorf("meshfile: %w", err)
	}
	return nil
}
