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
)

func newNearestCmd(a *app) *cobra.Command {
	var (
		point []float64
		n     int
	)
	cmd := &cobra.Command{
		Use:   "nearest FILE",
		Short: "List the cells whose centers are closest to a point.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if n < 1 {
				return fmt.Errorf("fvmesh: number of cells must be positive, got %d", n)
			}
			m, err := a.loadMesh(args[0])
			if err != nil {
				return err
			}
			order, err := m.CellsByDistance(point)
			if err != nil {
				return err
			}
			d, err := m.PointToCellDistances(point)
			if err != nil {
				return err
			}
			if n > len(order) {
				n = len(order)
			}
			for _, c := range order[:n] {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%g\n", c, d[c])
			}
			return nil
		},
	}
	cmd.Flags().Float64SliceVar(&point, "point", nil, "query point, comma separated")
	cmd.Flags().IntVarP(&n, "number", "n", 1, "number of cells to list")
	if err := cmd.MarkFlagRequired("point"); err != nil {
		panic(err)
	}
	return cmd
}
