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

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "Print a summary of the topology and geometry of a mesh.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.loadMesh(args[0])
			if err != nil {
				return err
			}
			var residual float64
			for _, r := range m.ClosureResiduals() {
				if n := r3.Norm(r); n > residual {
					residual = n
				}
			}
			vol := m.CellVolumes()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "dimensions:       %d\n", m.Dims())
			fmt.Fprintf(w, "vertices:         %d\n", m.NumberOfVertices())
			fmt.Fprintf(w, "faces:            %d (%d interior, %d exterior)\n",
				m.NumberOfFaces(), len(m.InteriorFaceIDs()), len(m.ExteriorFaceIDs()))
			fmt.Fprintf(w, "cells:            %d (up to %d faces each)\n", m.NumberOfCells(), m.MaxFacesPerCell())
			if len(vol) > 0 {
				fmt.Fprintf(w, "total volume:     %g\n", floats.Sum(vol))
				fmt.Fprintf(w, "cell volumes:     %g to %g\n", floats.Min(vol), floats.Max(vol))
			}
			fmt.Fprintf(w, "closure residual: %g\n", residual)
			return nil
		},
	}
}
