// Copyright 2016 The Goaero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trf

import (
	"github.com/cpmech/goaero/msh"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Forces transposes the aerodynamic nodal loads pf into consistent structural
// nodal loads. Each aero load {Fx,Fy,Fz,Mx,My,Mz} is split 50/50 between the
// two nearest structural nodes; moment equivalence is enforced by adding the
// lever-arm contribution of the displaced half forces:
//
//   M_j += M/2 + (xa - x_j) × F/2
//
// Total force is conserved exactly, and so is the total moment about any
// point. For symmetric components both meshes hold the y ≥ 0 half, hence the
// mirror-side loads never fold back onto the modelled beam and the symmetry
// plane carries no double contribution.
func Forces(am, sm *msh.Mesh, pf [][]float64) (sf [][]float64, err error) {

	// check
	if err = msh.CheckCompat(am, sm); err != nil {
		return
	}
	if len(pf) != am.Nn() {
		return nil, chk.Err("aerodynamic load array has wrong size: %d != %d", len(pf), am.Nn())
	}

	// results
	sf = utl.Alloc(sm.Nn(), 6)

	// split loads
	lever := make([]float64, 3)
	mc := make([]float64, 3)
	hf := make([]float64, 3)
	for ia, nod := range am.Nodes {
		if len(pf[ia]) != 6 {
			return nil, chk.Err("aerodynamic load %d must have 6 components", ia)
		}
		j0, j1 := NearestTwo(sm, nod.X)
		for i := 0; i < 3; i++ {
			hf[i] = 0.5 * pf[ia][i]
		}
		for _, j := range []int{j0, j1} {
			for i := 0; i < 3; i++ {
				lever[i] = nod.X[i] - sm.Nodes[j].X[i]
			}
			utl.Cross3d(mc, lever, hf) // mc := lever cross F/2
			for i := 0; i < 3; i++ {
				sf[j][i] += hf[i]
				sf[j][3+i] += 0.5*pf[ia][3+i] + mc[i]
			}
		}
	}
	return
}

// TotalForce sums the force components of a per-node 6-component load array
func TotalForce(f [][]float64) (tot []float64) {
	tot = make([]float64, 3)
	for _, v := range f {
		for i := 0; i < 3; i++ {
			tot[i] += v[i]
		}
	}
	return
}

// TotalMoment sums the moments of a per-node 6-component load array about
// point x0, including the lever contribution of the forces
func TotalMoment(nodes []*msh.Node, f [][]float64, x0 []float64) (tot []float64) {
	tot = make([]float64, 3)
	lever := make([]float64, 3)
	mc := make([]float64, 3)
	for k, v := range f {
		for i := 0; i < 3; i++ {
			lever[i] = nodes[k].X[i] - x0[i]
		}
		utl.Cross3d(mc, lever, v[:3])
		for i := 0; i < 3; i++ {
			tot[i] += v[3+i] + mc[i]
		}
	}
	return
}
