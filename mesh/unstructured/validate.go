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

	"github.com/spatialmodel/fvmesh/mesh/ragged"
)

// Validate checks connectivity that New otherwise accepts silently:
// every index must refer to an existing vertex or face, every face must
// have at least three vertices, no cell may list a face twice, and no
// face may be listed by more than two cells. The returned error wraps
// ErrInvalidConnectivity.
func Validate(numberOfVertices int, faceVertexIDs, cellFaceIDs *ragged.Table) error {
	for f := 0; f < faceVertexIDs.Rows(); f++ {
		ring := faceVertexIDs.Row(f)
		if len(ring) < 3 {
			return fmt.Errorf("%w: face %d has %d vertices", ErrInvalidConnectivity, f, len(ring))
		}
		for _, v := range ring {
			if v >= numberOfVertices {
				return fmt.Errorf("%w: face %d refers to vertex %d of %d",
					ErrInvalidConnectivity, f, v, numberOfVertices)
			}
		}
	}
	nf := faceVertexIDs.Rows()
	refs := make([]int, nf)
	for c := 0; c < cellFaceIDs.Rows(); c++ {
		seen := make(map[int]bool)
		for _, f := range cellFaceIDs.Row(c) {
			if f >= nf {
				return fmt.Errorf("%w: cell %d refers to face %d of %d", ErrInvalidConnectivity, c, f, nf)
			}
			if seen[f] {
				return fmt.Errorf("%w: cell %d lists face %d more than once", ErrInvalidConnectivity, c, f)
			}
			seen[f] = true
			refs[f]++
			if refs[f] > 2 {
				return fmt.Errorf("%w: face %d is shared by more than two cells", ErrInvalidConnectivity, f)
			}
		}
	}
	return nil
}
