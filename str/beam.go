// Copyright 2016 The Goaero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package str

import (
	"math"

	"github.com/cpmech/goaero/inp"
	"github.com/cpmech/goaero/msh"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// Beam implements the native structural backend: a chain of 3-D
// Euler-Bernoulli bar elements (linear elastic) along the structural mesh,
// clamped at the root node. Local axes per element:
//
//   t -- along the bar
//   s -- transverse, as close to global z as possible (flapwise; inertia Irr)
//   r -- t × s (chordwise; inertia Iss)
//
type Beam struct {

	// component and material
	Comp *inp.Component // bar section properties
	E    float64        // Young's modulus
	G    float64        // shear modulus
	Rho  float64        // density
	Grav float64        // gravity constant

	// linear solver
	LinSol inp.LinSolData
}

// register solver
func init() {
	allocators["beam"] = func(sim *inp.Simulation, comp *inp.Component) (Solver, error) {
		E, G, _, ρ, err := matprms(sim, comp)
		if err != nil {
			return nil, err
		}
		ϵp := 1e-9
		if comp.A < ϵp || comp.Irr < ϵp || comp.Iss < ϵp || comp.Jtt < ϵp {
			return nil, chk.Err("A, Irr, Iss and Jtt of component %q must be all positive", comp.Name)
		}
		return &Beam{
			Comp: comp, E: E, G: G, Rho: ρ,
			Grav:   sim.Flight.Grav,
			LinSol: sim.LinSol,
		}, nil
	}
}

// Run assembles and solves the static beam problem
func (o *Beam) Run(sm *msh.Mesh, loads [][]float64, nload float64) (us []float64, err error) {

	// check
	if sm.Kind != msh.KindStruct {
		return nil, chk.Err("beam solver needs a structural mesh")
	}
	nn := sm.Nn()
	if len(loads) != nn {
		return nil, chk.Err("loads array has wrong size: %d != %d", len(loads), nn)
	}
	ne := nn - 1

	// equations: root node clamped => nodes 1..nn-1 are active
	ny := 6 * (nn - 1)
	eq := func(node, dof int) int { return 6*(node-1) + dof } // node ≥ 1

	// global residual vector with external loads
	fb := make([]float64, ny)
	for n := 1; n < nn; n++ {
		for i := 0; i < 6; i++ {
			fb[eq(n, i)] = loads[n][i]
		}
	}

	// assemble stiffness matrix
	kb := la.NewTriplet(ny, ny, ne*144)
	for e := 0; e < ne; e++ {
		K, l, err2 := o.ElemK(sm.Nodes[e].X, sm.Nodes[e+1].X)
		if err2 != nil {
			return nil, err2
		}

		// lumped self-weight with load factor
		w := 0.5 * o.Rho * o.Comp.A * l * o.Grav * nload
		for _, n := range []int{e, e + 1} {
			if n > 0 {
				fb[eq(n, 2)] -= w
			}
		}

		// add to Kb (rows/cols of the clamped node are skipped)
		for i := 0; i < 12; i++ {
			ni, di := e+i/6, i%6
			if ni == 0 {
				continue
			}
			for j := 0; j < 12; j++ {
				nj, dj := e+j/6, j%6
				if nj == 0 {
					continue
				}
				kb.Put(eq(ni, di), eq(nj, dj), K.Get(i, j))
			}
		}
	}

	// solve
	wb := make([]float64, ny)
	ls := la.NewSparseSolver(o.LinSol.Name)
	defer ls.Free()
	ls.Init(kb, &la.SpArgs{
		Symmetric: o.LinSol.Symmetric,
		Verbose:   o.LinSol.Verbose,
		Ordering:  o.LinSol.Ordering,
		Scaling:   o.LinSol.Scaling,
	})
	ls.Fact()
	ls.Solve(wb, fb, false)

	// expand to the full vector (root stays at zero)
	us = make([]float64, 6*nn)
	copy(us[6:], wb)
	return
}

// ElemK computes the global 12×12 stiffness matrix of the bar joining xa and
// xb, together with its length
func (o *Beam) ElemK(xa, xb []float64) (K *la.Matrix, l float64, err error) {
	T, Kl, l, err := o.elemMats(xa, xb)
	if err != nil {
		return
	}

	// K := trans(T) * Kl * T
	aux := la.NewMatrix(12, 12)
	K = la.NewMatrix(12, 12)
	la.MatTrMatMul(aux, 1, T, Kl)
	la.MatMatMul(K, 1, aux, T)
	return
}

// elemMats computes the transformation and local stiffness matrices of one bar
func (o *Beam) elemMats(xa, xb []float64) (T, Kl *la.Matrix, l float64, err error) {

	// local axes
	vt := make([]float64, 3)
	for i := 0; i < 3; i++ {
		vt[i] = xb[i] - xa[i]
	}
	l = math.Sqrt(utl.Dot3d(vt, vt))
	if l < 1e-12 {
		return nil, nil, 0, chk.Err("bar has zero length")
	}
	for i := 0; i < 3; i++ {
		vt[i] /= l
	}
	vaux := []float64{0, 0, 1}
	if math.Abs(vt[2]) > 0.95 {
		vaux = []float64{1, 0, 0}
	}
	vs := make([]float64, 3)
	dot := utl.Dot3d(vaux, vt)
	for i := 0; i < 3; i++ {
		vs[i] = vaux[i] - dot*vt[i]
	}
	ls := math.Sqrt(utl.Dot3d(vs, vs))
	for i := 0; i < 3; i++ {
		vs[i] /= ls
	}
	vr := make([]float64, 3)
	utl.Cross3d(vr, vt, vs) // vr := vt cross vs

	// global to local transformation matrix
	t := utl.Alloc(12, 12)
	for k := 0; k < 4; k++ {
		t[3*k+0][3*k+0], t[3*k+0][3*k+1], t[3*k+0][3*k+2] = vt[0], vt[1], vt[2]
		t[3*k+1][3*k+0], t[3*k+1][3*k+1], t[3*k+1][3*k+2] = vs[0], vs[1], vs[2]
		t[3*k+2][3*k+0], t[3*k+2][3*k+1], t[3*k+2][3*k+2] = vr[0], vr[1], vr[2]
	}
	T = la.NewMatrixDeep2(t)

	// stiffness matrix in local system
	Kl = la.NewMatrixDeep2(o.localK(l))
	return
}

// localK computes the local stiffness matrix of a bar of length l
func (o *Beam) localK(l float64) (Kl [][]float64) {

	// constants
	EIr, EIs, GJ, EA := o.E*o.Comp.Irr, o.E*o.Comp.Iss, o.G*o.Comp.Jtt, o.E*o.Comp.A
	ll := l * l
	lll := l * ll

	// stiffness matrix in local system
	Kl = utl.Alloc(12, 12)
	Kl[0][0] = EA / l
	Kl[0][6] = -EA / l

	Kl[1][1] = 12.0 * EIr / lll
	Kl[1][5] = 6.0 * EIr / ll
	Kl[1][7] = -12.0 * EIr / lll
	Kl[1][11] = 6.0 * EIr / ll

	Kl[2][2] = 12.0 * EIs / lll
	Kl[2][4] = -6.0 * EIs / ll
	Kl[2][8] = -12.0 * EIs / lll
	Kl[2][10] = -6.0 * EIs / ll

	Kl[3][3] = GJ / l
	Kl[3][9] = -GJ / l

	Kl[4][2] = -6.0 * EIs / ll
	Kl[4][4] = 4.0 * EIs / l
	Kl[4][8] = 6.0 * EIs / ll
	Kl[4][10] = 2.0 * EIs / l

	Kl[5][1] = 6.0 * EIr / ll
	Kl[5][5] = 4.0 * EIr / l
	Kl[5][7] = -6.0 * EIr / ll
	Kl[5][11] = 2.0 * EIr / l

	Kl[6][0] = -EA / l
	Kl[6][6] = EA / l

	Kl[7][1] = -12.0 * EIr / lll
	Kl[7][5] = -6.0 * EIr / ll
	Kl[7][7] = 12.0 * EIr / lll
	Kl[7][11] = -6.0 * EIr / ll

	Kl[8][2] = -12.0 * EIs / lll
	Kl[8][4] = 6.0 * EIs / ll
	Kl[8][8] = 12.0 * EIs / lll
	Kl[8][10] = 6.0 * EIs / ll

	Kl[9][3] = -GJ / l
	Kl[9][9] = GJ / l

	Kl[10][2] = -6.0 * EIs / ll
	Kl[10][4] = 2.0 * EIs / l
	Kl[10][8] = 6.0 * EIs / ll
	Kl[10][10] = 4.0 * EIs / l

	Kl[11][1] = 6.0 * EIr / ll
	Kl[11][5] = 2.0 * EIr / l
	Kl[11][7] = -6.0 * EIr / ll
	Kl[11][11] = 4.0 * EIr / l
	return
}

// RootForces recovers the internal forces of the root element in its local
// system at the clamped end: {N, Vs, Vr, Mt, Ms, Mr}
func (o *Beam) RootForces(sm *msh.Mesh, us []float64) (fl []float64, err error) {
	if len(us) != 6*sm.Nn() {
		return nil, chk.Err("displacement vector has wrong size")
	}
	T, Kl, _, err := o.elemMats(sm.Nodes[0].X, sm.Nodes[1].X)
	if err != nil {
		return
	}

	// local displacements and forces: fl = Kl・(T・ue)
	ul := make([]float64, 12)
	la.MatVecMul(ul, 1, T, us[:12])
	f := make([]float64, 12)
	la.MatVecMul(f, 1, Kl, ul)
	fl = f[:6]
	return
}
