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
	"github.com/spatialmodel/fvmesh/plot"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"
)

func newPlotCmd(a *app) *cobra.Command {
	var (
		out           string
		plane         string
		width, height float64
	)
	cmd := &cobra.Command{
		Use:   "plot FILE",
		Short: "Draw the faces and cell centers of a mesh projected onto a plane.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := plot.ParsePlane(plane)
			if err != nil {
				return err
			}
			m, err := a.loadMesh(args[0])
			if err != nil {
				return err
			}
			if err := plot.Save(m, p, out, vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch); err != nil {
				return err
			}
			a.log.WithField("file", out).Info("wrote plot")
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&out, "out", "o", "mesh.png", "output image; the extension selects the format")
	f.StringVar(&plane, "plane", "xy", "projection plane: xy, xz, or yz")
	f.Float64Var(&width, "width", 6, "image width in inches")
	f.Float64Var(&height, "height", 6, "image height in inches")
	return cmd
}
