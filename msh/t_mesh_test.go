// Copyright 2016 The Goaero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"testing"

	"github.com/cpmech/goaero/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// twin-breakpoint swept wing used by most tests
func testWing() *inp.Component {
	return &inp.Component{
		Name: "wing", Symmetric: true, Span: 10.0, Naero: 11, Nstruct: 5,
		Sections: []*inp.Section{
			{Eta: 0.0, Xle: 0.0, Z: 0.0, Chord: 3.0},
			{Eta: 0.5, Xle: 0.5, Z: 0.2, Chord: 2.0},
			{Eta: 1.0, Xle: 1.5, Z: 0.6, Chord: 1.0},
		},
	}
}

func Test_mesh01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mesh01. aero mesh of a kinked wing")

	am, err := AeroMesh(testWing())
	if err != nil {
		tst.Errorf("AeroMesh failed:\n%v", err)
		return
	}
	chk.IntAssert(am.Nn(), 11)
	chk.IntAssert(am.Ndof(), 3)
	chk.StrAssert(am.Kind, KindAero)

	// root node on the quarter chord
	chk.Array(tst, "root", 1e-15, am.Nodes[0].X, []float64{0.25 * 3.0, 0, 0})

	// kink node (η=0.5 is station 5 of 11)
	chk.Array(tst, "kink", 1e-14, am.Nodes[5].X, []float64{0.5 + 0.25*2.0, 5.0, 0.2})

	// tip node
	chk.Array(tst, "tip", 1e-14, am.Nodes[10].X, []float64{1.5 + 0.25*1.0, 10.0, 0.6})

	// ordering is fixed and monotone in y
	for i := 1; i < am.Nn(); i++ {
		if am.Nodes[i].X[1] <= am.Nodes[i-1].X[1] {
			tst.Errorf("nodes must be ordered root to tip\n")
			return
		}
		chk.IntAssert(am.Nodes[i].Id, i)
	}
}

func Test_mesh02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mesh02. structural mesh on the elastic axis")

	c := testWing()
	c.Eaxis = 0.4
	sm, err := StructMesh(c)
	if err != nil {
		tst.Errorf("StructMesh failed:\n%v", err)
		return
	}
	chk.IntAssert(sm.Nn(), 5)
	chk.IntAssert(sm.Ndof(), 6)
	chk.Array(tst, "root", 1e-15, sm.Nodes[0].X, []float64{0.4 * 3.0, 0, 0})
	chk.Array(tst, "tip", 1e-14, sm.Nodes[4].X, []float64{1.5 + 0.4*1.0, 10.0, 0.6})

	// compatibility with the aero mesh
	am, err := AeroMesh(c)
	if err != nil {
		tst.Errorf("AeroMesh failed:\n%v", err)
		return
	}
	if err := CheckCompat(am, sm); err != nil {
		tst.Errorf("CheckCompat failed:\n%v", err)
	}
	if CheckCompat(sm, am) == nil {
		tst.Errorf("swapped kinds must fail compatibility check\n")
	}
}

func Test_mesh03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mesh03. vertical tail and fuselage")

	vt := &inp.Component{
		Name: "vtail", Vertical: true, Span: 4.0, Naero: 5, Nstruct: 3,
		Sections: []*inp.Section{
			{Eta: 0, Xle: 14.0, Z: 0.8, Chord: 2.5},
			{Eta: 1, Xle: 16.0, Z: 0.8, Chord: 1.2},
		},
	}
	am, err := AeroMesh(vt)
	if err != nil {
		tst.Errorf("AeroMesh failed:\n%v", err)
		return
	}
	chk.Array(tst, "vtail root", 1e-15, am.Nodes[0].X, []float64{14.0 + 0.25*2.5, 0, 0.8})
	chk.Array(tst, "vtail tip", 1e-14, am.Nodes[4].X, []float64{16.0 + 0.25*1.2, 0, 4.8})

	fus := &inp.Component{
		Name: "fuselage", Span: 20.0, Naero: 4, Nstruct: 4,
		Sections: []*inp.Section{
			{Eta: 0, Z: 0, Chord: 1},
			{Eta: 1, Z: 0.5, Chord: 1},
		},
	}
	sm, err := StructMesh(fus)
	if err != nil {
		tst.Errorf("StructMesh failed:\n%v", err)
		return
	}
	chk.Array(tst, "fus root", 1e-15, sm.Nodes[0].X, []float64{0, 0, 0})
	chk.Array(tst, "fus tail", 1e-14, sm.Nodes[3].X, []float64{20.0, 0, 0.5})
}

func Test_mesh04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mesh04. mesh deformation")

	am, err := AeroMesh(testWing())
	if err != nil {
		tst.Errorf("AeroMesh failed:\n%v", err)
		return
	}

	// constant heave
	u := make([]float64, 3*am.Nn())
	for i := 0; i < am.Nn(); i++ {
		u[3*i+2] = 0.1
	}
	dm, err := am.Deformed(u)
	if err != nil {
		tst.Errorf("Deformed failed:\n%v", err)
		return
	}
	for i := 0; i < am.Nn(); i++ {
		chk.Float64(tst, io.Sf("z%d", i), 1e-15, dm.Nodes[i].X[2], am.Nodes[i].X[2]+0.1)
	}

	// original mesh untouched
	chk.Float64(tst, "z0 orig", 1e-15, am.Nodes[0].X[2], 0)

	// wrong size and wrong kind
	if _, err := am.Deformed(u[:5]); err == nil {
		tst.Errorf("wrong-size displacement vector must fail\n")
	}
	sm, _ := StructMesh(testWing())
	if _, err := sm.Deformed(u); err == nil {
		tst.Errorf("deforming a structural mesh must fail\n")
	}
}
