// Copyright 2016 The Goaero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fsi implements the static aerostructural coupling solvers
package fsi

import (
	"github.com/cpmech/goaero/aero"
	"github.com/cpmech/goaero/inp"
	"github.com/cpmech/goaero/msh"
	"github.com/cpmech/gosl/chk"
)

// AeroSolver computes the aerodynamic nodal loads on the current meshes
type AeroSolver interface {
	Run(meshes []*msh.Mesh, alpha float64) (res []*aero.Results, err error)
}

// Solver drives the aerostructural analysis of one load case
type Solver interface {
	Run(stg *inp.Stage) (err error)
}

// allocators holds all available aerostructural solvers
var allocators = make(map[string]func(d *Domain) Solver)

// New returns an aerostructural solver by type name
func New(name string, d *Domain) (Solver, error) {
	alloc, ok := allocators[name]
	if !ok {
		return nil, chk.Err("cannot find aerostructural solver type named %q", name)
	}
	return alloc(d), nil
}
