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

import "github.com/sirupsen/logrus"

// Option configures the construction of a Mesh.
type Option func(*options)

type options struct {
	scale    float64
	validate bool
	log      logrus.FieldLogger
}

func gatherOptions(opts []Option) options {
	o := options{
		scale: 1,
		log:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithScale multiplies every vertex coordinate by s before anything
// is derived, so lengths scale by s, areas by s², and volumes by s³.
// The mesh stores the scaled coordinates. s must be positive and finite.
func WithScale(s float64) Option {
	return func(o *options) { o.scale = s }
}

// WithValidation makes New check the connectivity with Validate
// and fail instead of deriving geometry from malformed input.
func WithValidation() Option {
	return func(o *options) { o.validate = true }
}

// WithLogger sets the logger that receives debug messages
// about mesh derivation. The default is the logrus standard logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}
