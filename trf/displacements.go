// Copyright 2016 The Goaero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package trf implements the transfer operators mapping displacements and
// loads between the non-matching aerodynamic and structural meshes
package trf

import (
	"sort"

	"github.com/cpmech/goaero/msh"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// displacements transfer methods
const (
	MethodLinear = "linear" // two-nearest-nodes interpolation with rigid rotation correction
	MethodRigid  = "rigid"  // no deformation transfer: aero mesh stays at the jig shape
)

// tolerance below which a structural segment is considered degenerate
const tinySegment = 1e-10

// Displacements builds the matrix H of shape (3·Na, 6·Ns) mapping the
// flattened 6-dof structural displacement vector to the flattened 3-dof
// aerodynamic displacement vector:
//
//   ua = H・us    us = {ux,uy,uz,rx,ry,rz}₀ ... {...}ₙₛ₋₁
//
// With the "linear" method, each aero node is projected onto the segment
// joining its two nearest structural nodes:
//
//   ua = (1-kp)・u₀ + kp・u₁ + θ̄ × r     θ̄ = (1-kp)・θ₀ + kp・θ₁
//
// where kp is the normalised projection coefficient and r joins the projection
// point to the aero node. H must be rebuilt whenever either mesh changes.
func Displacements(method string, am, sm *msh.Mesh) (H *la.Matrix, err error) {

	// check
	if err = msh.CheckCompat(am, sm); err != nil {
		return
	}
	na, ns := am.Nn(), sm.Nn()
	H = la.NewMatrix(3*na, 6*ns)

	// rigid: zero operator
	if method == MethodRigid {
		return
	}
	if method != MethodLinear {
		return nil, chk.Err("unknown displacements transfer method %q", method)
	}

	// linear: one 3×12 block per aero node
	r := make([]float64, 3)
	for ia, nod := range am.Nodes {

		// two nearest structural nodes and projection
		j0, j1 := NearestTwo(sm, nod.X)
		kp, e := project(sm, j0, j1, nod.X, r)
		if e != nil {
			return nil, e
		}

		// interpolation weights on translations
		w0, w1 := 1.0-kp, kp
		for i := 0; i < 3; i++ {
			H.Set(3*ia+i, 6*j0+i, w0)
			H.Set(3*ia+i, 6*j1+i, w1)
		}

		// rigid rotation correction: θ̄ × r = -Skew(r)・θ̄
		//
		//             ⎡  0   r₂  -r₁ ⎤
		//  -Skew(r) = ⎢ -r₂  0    r₀ ⎥
		//             ⎣  r₁ -r₀   0  ⎦
		//
		for j, w := range []float64{w0, w1} {
			col := 6*j0 + 3
			if j == 1 {
				col = 6*j1 + 3
			}
			H.Set(3*ia+0, col+1, w*r[2])
			H.Set(3*ia+0, col+2, -w*r[1])
			H.Set(3*ia+1, col+0, -w*r[2])
			H.Set(3*ia+1, col+2, w*r[0])
			H.Set(3*ia+2, col+0, w*r[1])
			H.Set(3*ia+2, col+1, -w*r[0])
		}
	}
	return
}

// Apply computes ua = H・us
func Apply(H *la.Matrix, us []float64) (ua []float64, err error) {
	if H == nil || H.M == 0 {
		return nil, chk.Err("transfer matrix is empty")
	}
	if len(us) != H.N {
		return nil, chk.Err("displacement vector has wrong size: %d != %d", len(us), H.N)
	}
	ua = make([]float64, H.M)
	la.MatVecMul(ua, 1, H, us)
	return
}

// NearestTwo returns the indices of the two structural nodes nearest to point
// x. Ties are broken by the stable ordering of the computed distances.
func NearestTwo(sm *msh.Mesh, x []float64) (j0, j1 int) {
	idx := utl.IntRange(sm.Nn())
	dist := make([]float64, sm.Nn())
	for j := 0; j < sm.Nn(); j++ {
		dist[j] = sm.Dist(j, x)
	}
	sort.SliceStable(idx, func(a, b int) bool { return dist[idx[a]] < dist[idx[b]] })
	return idx[0], idx[1]
}

// project computes the normalised projection coefficient kp of point x onto
// the segment joining structural nodes j0 and j1, and the offset vector r
// from the projection point to x
func project(sm *msh.Mesh, j0, j1 int, x []float64, r []float64) (kp float64, err error) {
	x0, x1 := sm.Nodes[j0].X, sm.Nodes[j1].X
	var L2, num float64
	for i := 0; i < 3; i++ {
		d := x1[i] - x0[i]
		L2 += d * d
		num += (x[i] - x0[i]) * d
	}
	if L2 < tinySegment*tinySegment {
		return 0, chk.Err("structural nodes %d and %d of component %q coincide: cannot project", j0, j1, sm.CompName)
	}
	kp = num / L2
	for i := 0; i < 3; i++ {
		r[i] = x[i] - (x0[i] + kp*(x1[i]-x0[i]))
	}
	return
}
