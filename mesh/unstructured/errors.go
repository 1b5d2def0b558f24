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

import "errors"

var (
	// ErrNoVertices is returned when a mesh is created without vertices.
	ErrNoVertices = errors.New("unstructured: no vertex coordinates")

	// ErrDimension is returned when vertex coordinates or query points
	// have an unsupported or inconsistent number of dimensions.
	ErrDimension = errors.New("unstructured: invalid dimension")

	// ErrBadScale is returned for a length scale that is not
	// positive and finite.
	ErrBadScale = errors.New("unstructured: invalid length scale")

	// ErrInvalidConnectivity is returned by Validate.
	ErrInvalidConnectivity = errors.New("unstructured: invalid connectivity")

	// ErrEmptyMesh is returned by queries on a mesh without cells.
	ErrEmptyMesh = errors.New("unstructured: mesh has no cells")
)
