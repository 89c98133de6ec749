// Copyright 2016 The Goaero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trf

import (
	"testing"

	"github.com/cpmech/goaero/ana"
	"github.com/cpmech/goaero/inp"
	"github.com/cpmech/goaero/msh"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// rectangular unswept wing whose aero and structural meshes coincide
func matchingMeshes(tst *testing.T, nn int) (am, sm *msh.Mesh) {
	c := &inp.Component{
		Name: "wing", Symmetric: true, Span: 8.0, Naero: nn, Nstruct: nn, Eaxis: 0.25,
		Sections: []*inp.Section{
			{Eta: 0, Xle: 0, Z: 0, Chord: 2.0},
			{Eta: 1, Xle: 0, Z: 0, Chord: 2.0},
		},
	}
	am, err := msh.AeroMesh(c)
	if err != nil {
		tst.Fatalf("AeroMesh failed:\n%v", err)
	}
	sm, err = msh.StructMesh(c)
	if err != nil {
		tst.Fatalf("StructMesh failed:\n%v", err)
	}
	return
}

// swept kinked wing with non-matching meshes
func sweptMeshes(tst *testing.T) (am, sm *msh.Mesh) {
	c := &inp.Component{
		Name: "wing", Symmetric: true, Span: 12.0, Naero: 15, Nstruct: 6, Eaxis: 0.4,
		Sections: []*inp.Section{
			{Eta: 0.0, Xle: 0.0, Z: 0.0, Chord: 3.5},
			{Eta: 0.35, Xle: 0.8, Z: 0.15, Chord: 2.6},
			{Eta: 1.0, Xle: 2.4, Z: 0.7, Chord: 1.2},
		},
	}
	am, err := msh.AeroMesh(c)
	if err != nil {
		tst.Fatalf("AeroMesh failed:\n%v", err)
	}
	sm, err = msh.StructMesh(c)
	if err != nil {
		tst.Fatalf("StructMesh failed:\n%v", err)
	}
	return
}

func Test_transfer01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("transfer01. identity blocks at matching node pairs")

	am, sm := matchingMeshes(tst, 5)
	H, err := Displacements(MethodLinear, am, sm)
	if err != nil {
		tst.Errorf("Displacements failed:\n%v", err)
		return
	}
	chk.IntAssert(H.M, 3*5)
	chk.IntAssert(H.N, 6*5)

	// diagonal 3×3 translation blocks must be exact identities
	for n := 0; n < 5; n++ {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				want := 0.0
				if i == j {
					want = 1.0
				}
				if H.Get(3*n+i, 6*n+j) != want {
					tst.Errorf("H block (%d) entry (%d,%d) must be exactly %g\n", n, i, j, want)
					return
				}
			}
		}
	}
}

func Test_transfer02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("transfer02. partition of unity of interpolation weights")

	am, sm := sweptMeshes(tst)
	H, err := Displacements(MethodLinear, am, sm)
	if err != nil {
		tst.Errorf("Displacements failed:\n%v", err)
		return
	}

	// the translation weights of every aero node must sum to one
	for ia := 0; ia < am.Nn(); ia++ {
		for i := 0; i < 3; i++ {
			sum := 0.0
			for js := 0; js < sm.Nn(); js++ {
				sum += H.Get(3*ia+i, 6*js+i)
			}
			chk.Float64(tst, io.Sf("Σw node %d dir %d", ia, i), 1e-14, sum, 1.0)
		}
	}
}

func Test_transfer03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("transfer03. rigid-body motion round trip")

	am, sm := sweptMeshes(tst)
	H, err := Displacements(MethodLinear, am, sm)
	if err != nil {
		tst.Errorf("Displacements failed:\n%v", err)
		return
	}

	// constant translation field must be reproduced exactly
	us := make([]float64, 6*sm.Nn())
	cst := []float64{0.01, -0.02, 0.5}
	for j := 0; j < sm.Nn(); j++ {
		copy(us[6*j:6*j+3], cst)
	}
	ua, err := Apply(H, us)
	if err != nil {
		tst.Errorf("Apply failed:\n%v", err)
		return
	}
	for ia := 0; ia < am.Nn(); ia++ {
		chk.Array(tst, io.Sf("ua %d", ia), 1e-14, ua[3*ia:3*ia+3], cst)
	}

	// rigid rotation θ about the origin: us = {θ×x, θ} at the structural
	// nodes must give ua = θ×x at the aero nodes
	θ := []float64{0.002, -0.001, 0.004}
	for j, nod := range sm.Nodes {
		us[6*j+0] = θ[1]*nod.X[2] - θ[2]*nod.X[1]
		us[6*j+1] = θ[2]*nod.X[0] - θ[0]*nod.X[2]
		us[6*j+2] = θ[0]*nod.X[1] - θ[1]*nod.X[0]
		us[6*j+3] = θ[0]
		us[6*j+4] = θ[1]
		us[6*j+5] = θ[2]
	}
	ua, err = Apply(H, us)
	if err != nil {
		tst.Errorf("Apply failed:\n%v", err)
		return
	}
	for ia, nod := range am.Nodes {
		want := []float64{
			θ[1]*nod.X[2] - θ[2]*nod.X[1],
			θ[2]*nod.X[0] - θ[0]*nod.X[2],
			θ[0]*nod.X[1] - θ[1]*nod.X[0],
		}
		chk.Array(tst, io.Sf("rot ua %d", ia), 1e-13, ua[3*ia:3*ia+3], want)
	}
}

func Test_transfer04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("transfer04. force and moment conservation")

	am, sm := sweptMeshes(tst)

	// one 6-component load per aero node
	pf := make([][]float64, am.Nn())
	for ia := range pf {
		y := am.Nodes[ia].X[1]
		pf[ia] = []float64{10 + y, -3 * y, 1000 - 20*y, 5, -2 * y, 0.5}
	}
	sf, err := Forces(am, sm, pf)
	if err != nil {
		tst.Errorf("Forces failed:\n%v", err)
		return
	}
	chk.IntAssert(len(sf), sm.Nn())

	// total force conservation
	chk.Array(tst, "ΣF", 1e-11, TotalForce(sf), TotalForce(pf))

	// total moment conservation about an arbitrary point
	x0 := []float64{1.0, -2.0, 0.3}
	chk.Array(tst, "ΣM", 1e-10, TotalMoment(sm.Nodes, sf, x0), TotalMoment(am.Nodes, pf, x0))
}

func Test_transfer05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("transfer05. rigid method and degenerate segments")

	am, sm := sweptMeshes(tst)

	// rigid: zero operator
	H, err := Displacements(MethodRigid, am, sm)
	if err != nil {
		tst.Errorf("Displacements failed:\n%v", err)
		return
	}
	for i := 0; i < H.M; i++ {
		for j := 0; j < H.N; j++ {
			if H.Get(i, j) != 0 {
				tst.Errorf("rigid transfer matrix must be identically zero\n")
				return
			}
		}
	}

	// unknown method
	if _, err := Displacements("cubic", am, sm); err == nil {
		tst.Errorf("unknown method must fail\n")
	}

	// coincident structural nodes
	bad := sm.Clone()
	copy(bad.Nodes[1].X, bad.Nodes[0].X)
	if _, err := Displacements(MethodLinear, am, bad); err == nil {
		tst.Errorf("degenerate structural segment must fail\n")
	}
}

func Test_transfer06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("transfer06. elliptic lift transfer")

	am, sm := matchingMeshes(tst, 41)

	// elliptic distribution over the full span; the mesh covers one side
	lift := &ana.EllipticLift{}
	lift.Init([]*dbf.P{
		{N: "Ltot", V: 1000.0},
		{N: "b", V: 16.0},
	})

	// lump l(y) at the aero nodes with trapezoidal weights
	pf := make([][]float64, am.Nn())
	for ia, nod := range am.Nodes {
		w := 0.0
		if ia > 0 {
			w += 0.5 * am.Dist(ia-1, nod.X)
		}
		if ia < am.Nn()-1 {
			w += 0.5 * am.Dist(ia+1, nod.X)
		}
		pf[ia] = []float64{0, 0, lift.Intensity(nod.X[1]) * w, 0, 0, 0}
	}

	sf, err := Forces(am, sm, pf)
	if err != nil {
		tst.Errorf("Forces failed:\n%v", err)
		return
	}

	// the transfer must conserve force and moment exactly
	chk.Array(tst, "ΣF", 1e-11, TotalForce(sf), TotalForce(pf))
	x0 := []float64{0, 0, 0}
	Ms := TotalMoment(sm.Nodes, sf, x0)
	chk.Array(tst, "ΣM", 1e-10, Ms, TotalMoment(am.Nodes, pf, x0))

	// and the lumped loads must agree with the analytic distribution
	Fz := TotalForce(sf)[2]
	chk.Float64(tst, "half lift", 1.0, Fz, lift.HalfLift())
	chk.Float64(tst, "root bending moment", 8.0, Ms[0], lift.RootBendingMoment())
	chk.Float64(tst, "spanwise centroid", 0.01, Ms[0]/Fz, lift.SpanwiseCentroid())
}
