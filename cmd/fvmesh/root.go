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
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/fvmesh/mesh/meshfile"
	"github.com/spatialmodel/fvmesh/mesh/unstructured"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// app holds the state shared by all subcommands.
type app struct {
	v   *viper.Viper
	log *logrus.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{
		v:   viper.New(),
		log: logrus.New(),
	}
	root := &cobra.Command{
		Use:   "fvmesh",
		Short: "Derive and inspect finite-volume mesh topology and geometry.",
		Long: `fvmesh reads meshes described by their raw connectivity (vertex
coordinates, face→vertex indices, and cell→face indices) from TOML
files and derives face adjacency, orientations, areas, volumes,
and distances.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	globalFlags(pf)
	if err := a.v.BindPFlags(pf); err != nil {
		panic(err)
	}
	a.v.SetEnvPrefix("FVMESH")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(
		newInspectCmd(a),
		newNearestCmd(a),
		newPlotCmd(a),
	)
	return root
}

// globalFlags declares the flags shared by all subcommands. Each can
// also be set in the configuration file or as an FVMESH_ environment
// variable, with dashes replaced by underscores.
func globalFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "configuration file (TOML, YAML, or JSON)")
	fs.String("log-level", "info", "logging level (debug, info, warn, error)")
	fs.Float64("scale", 1, "length scale applied to vertex coordinates")
	fs.Bool("validate", false, "check mesh connectivity before deriving geometry")
}

// setup reads the configuration file, if any, and configures logging.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.log.SetOutput(cmd.ErrOrStderr())
	if cfg := a.v.GetString("config"); cfg != "" {
		a.v.SetConfigFile(cfg)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("fvmesh: reading configuration: %w", err)
		}
	}
	lvl, err := logrus.ParseLevel(a.v.GetString("log-level"))
	if err != nil {
		return fmt.Errorf("fvmesh: %w", err)
	}
	a.log.SetLevel(lvl)
	return nil
}

// loadMesh reads the mesh file at path with the configured options.
func (a *app) loadMesh(path string) (*unstructured.Mesh, error) {
	opts := []unstructured.Option{unstructured.WithLogger(a.log)}
	if s := a.v.GetFloat64("scale"); s != 1 {
		opts = append(opts, unstructured.WithScale(s))
	}
	if a.v.GetBool("validate") {
		opts = append(opts, unstructured.WithValidation())
	}
	a.log.WithField("file", path).Debug("loading mesh")
	return meshfile.Load(path, opts...)
}
