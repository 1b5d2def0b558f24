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

/*Package mesh defines interfaces for finite-volume meshes.*/
package mesh

// Mesh describes a finite-volume mesh.
type Mesh interface {
	// Dims returns the number of spatial dimensions
	// in this mesh.
	Dims() int

	// Len is the total number of cells in this Mesh.
	Len() int

	// Cell returns the mesh cell at index i (where i < Len()).
	Cell(i int) Cell

	// NumberOfFaces is the total number of faces in this Mesh.
	NumberOfFaces() int

	// Face returns the face at index i (where i < NumberOfFaces()).
	Face(i int) Face

	// MarshalBinary serializes this mesh into a byte array.
	MarshalBinary() ([]byte, error)

	// UnmarshalBinary initializes this mesh from a byte array.
	UnmarshalBinary([]byte) error
}

// Cell specifies a cell in a mesh
type Cell interface {
	// ID returns the index of the cell within its mesh.
	ID() int

	// Faces returns the number of faces that bound the cell.
	Faces() int

	// Face returns the face at the given index.
	// The face will have one fewer dimensions than the cell.
	Face(int) Face

	// Centroid returns the centroid of this cell.
	Centroid() Point

	// Measure returns the volume of the cell.
	Measure() float64
}

// Face represents a face of a cell.
type Face interface {
	// ID returns the index of the face within its mesh.
	ID() int

	// Points returns the number of points that
	// comprise this face.
	Points() int

	// Point returns the point at the given index.
	Point(int) Point

	// Centroid returns the center of this face.
	Centroid() Point

	// Normal returns the unit normal of this face. It points
	// out of the First cell.
	Normal() Point

	// Measure returns the area of the face.
	Measure() float64

	// First returns the cell that owns this face: the face's
	// normal points out of it.
	First() Cell

	// Second returns the cell on the other side of this face,
	// or nil if the face is on the boundary of the mesh.
	Second() Cell
}

// Point represents a point in vector space.
type Point interface {
	// Len returns the number of dimensions of this point.
	Len() int

	// D returns the point value in the specified dimension.
	D(int) float64
}
