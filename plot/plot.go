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

// Package plot draws two-dimensional projections of mesh faces.
package plot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/spatial/r3"
	gonumplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// XYs implements the gonum.org/v1/plot/plotter.XYer interface.
type XYs []XY

// XY is an x and y value.
type XY struct{ X, Y float64 }

// Len returns the number of X,Y pairs.
func (xys XYs) Len() int {
	return len(xys)
}

// XY return the x and y values at index i, where i < Len()
func (xys XYs) XY(i int) (float64, float64) {
	return xys[i].X, xys[i].Y
}

// Plane is a coordinate plane that points are projected onto.
type Plane int

const (
	// PlaneXY drops the z coordinate.
	PlaneXY Plane = iota
	// PlaneXZ drops the y coordinate.
	PlaneXZ
	// PlaneYZ drops the x coordinate.
	PlaneYZ
)

// ParsePlane converts "xy", "xz", or "yz" to a Plane.
func ParsePlane(s string) (Plane, error) {
	switch s {
	case "xy":
		return PlaneXY, nil
	case "xz":
		return PlaneXZ, nil
	case "yz":
		return PlaneYZ, nil
	}
	return 0, fmt.Errorf("plot: invalid plane %q", s)
}

func (p Plane) String() string {
	return [...]string{"xy", "xz", "yz"}[p]
}

// Project returns the coordinates of v in plane p.
func (p Plane) Project(v r3.Vec) XY {
	switch p {
	case PlaneXZ:
		return XY{X: v.X, Y: v.Z}
	case PlaneYZ:
		return XY{X: v.Y, Y: v.Z}
	}
	return XY{X: v.X, Y: v.Y}
}

// Mesh is the part of a mesh needed for plotting.
type Mesh interface {
	NumberOfFaces() int
	FaceVertexCoords(i int) []r3.Vec
	CellCenters() []r3.Vec
}

// FaceOutlines returns the closed outline of every face projected
// onto plane p.
func FaceOutlines(m Mesh, p Plane) []XYs {
	o := make([]XYs, m.NumberOfFaces())
	for i := range o {
		ring := m.FaceVertexCoords(i)
		xys := make(XYs, 0, len(ring)+1)
		for _, v := range ring {
			xys = append(xys, p.Project(v))
		}
		if len(ring) > 0 {
			xys = append(xys, p.Project(ring[0]))
		}
		o[i] = xys
	}
	return o
}

// CellCenters returns the cell centers of m projected onto plane p.
func CellCenters(m Mesh, p Plane) XYs {
	c := m.CellCenters()
	o := make(XYs, len(c))
	for i, v := range c {
		o[i] = p.Project(v)
	}
	return o
}

// New creates a plot of the face outlines and cell centers of m,
// projected onto plane p.
func New(m Mesh, p Plane) (*gonumplot.Plot, error) {
	plt := gonumplot.New()
	plt.X.Label.Text = p.String()[0:1]
	plt.Y.Label.Text = p.String()[1:2]
	for _, xys := range FaceOutlines(m, p) {
		l, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("plot: %w", err)
		}
		l.Color = color.Gray{Y: 96}
		plt.Add(l)
	}
	s, err := plotter.NewScatter(CellCenters(m, p))
	if err != nil {
		return nil, fmt.Errorf("plot: %w", err)
	}
	s.Color = color.RGBA{R: 200, A: 255}
	plt.Add(s)
	return plt, nil
}

// Save renders the plot of m onto plane p to file, whose extension
// selects the image format.
func Save(m Mesh, p Plane, file string, width, height vg.Length) error {
	plt, err := New(m, p)
	if err != nil {
		return err
	}
	return plt.Save(width, height, file)
}
