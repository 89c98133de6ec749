// Copyright 2016 The Goaero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package str implements the structural solvers: the external MYSTRAN wrapper
// and the native beam finite-element backend
package str

import (
	"github.com/cpmech/goaero/inp"
	"github.com/cpmech/goaero/msh"
	"github.com/cpmech/gosl/chk"
)

// Solver computes the 6-dof structural nodal displacements of one component
// under the given nodal loads
type Solver interface {

	// Run solves the static problem
	//  Input:
	//   sm    -- structural mesh; the root node (id 0) is clamped
	//   loads -- [ns][6] nodal loads {Fx,Fy,Fz,Mx,My,Mz}
	//   nload -- load factor scaling the inertia relief
	//  Output:
	//   us -- [6·ns] flattened displacement vector {ux,uy,uz,rx,ry,rz}₀ ...
	Run(sm *msh.Mesh, loads [][]float64, nload float64) (us []float64, err error)
}

// allocators holds all available structural solvers
var allocators = make(map[string]func(sim *inp.Simulation, comp *inp.Component) (Solver, error))

// New returns a structural solver by type name
func New(name string, sim *inp.Simulation, comp *inp.Component) (Solver, error) {
	alloc, ok := allocators[name]
	if !ok {
		return nil, chk.Err("cannot find structural solver type named %q", name)
	}
	return alloc(sim, comp)
}

// matprms extracts the elastic parameters of the component's material
func matprms(sim *inp.Simulation, comp *inp.Component) (E, G, ν, ρ float64, err error) {
	if sim.MatParams == nil {
		return 0, 0, 0, 0, chk.Err("material database is not available")
	}
	mat := sim.MatParams.Get(comp.Mat)
	if mat == nil {
		return 0, 0, 0, 0, chk.Err("cannot find material %q of component %q", comp.Mat, comp.Name)
	}
	for _, p := range mat.Prms {
		switch p.N {
		case "E":
			E = p.V
		case "G":
			G = p.V
		case "nu":
			ν = p.V
		case "rho":
			ρ = p.V
		}
	}
	ϵp := 1e-9
	if E < ϵp || G < ϵp {
		return 0, 0, 0, 0, chk.Err("E and G parameters of material %q must be positive", comp.Mat)
	}
	return
}
