// Copyright 2016 The Goaero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package str

import (
	"strings"
	"testing"

	"github.com/cpmech/goaero/msh"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// smallmesh returns a 3-node structural mesh along y at x = 0.5
func smallmesh() *msh.Mesh {
	return &msh.Mesh{
		CompName: "wing",
		Kind:     msh.KindStruct,
		Nodes: []*msh.Node{
			{Id: 0, X: []float64{0.5, 0, 0}},
			{Id: 1, X: []float64{0.5, 1, 0}},
			{Id: 2, X: []float64{0.5, 2, 0}},
		},
		Stations: []float64{0, 0.5, 1},
	}
}

func Test_bdf01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bdf01. small-field formatting")

	// every real field must carry a decimal point or an exponent
	chk.StrAssert(Field8(1.0), "      1.")
	chk.StrAssert(Field8(-1.0), "     -1.")
	chk.StrAssert(Field8(0.35), "    0.35")
	chk.StrAssert(Field8(14.715), "  14.715")
	chk.StrAssert(Field8(7e10), "   7E+10")

	// never wider than 8 characters
	for _, v := range []float64{0, 3.14159265358979, -1.23456789e-7, 6.894757e8} {
		if len(Field8(v)) != 8 {
			tst.Errorf("Field8(%v) = %q is not 8 characters wide\n", v, Field8(v))
			return
		}
	}
}

func Test_bdf02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bdf02. bulk data deck generation")

	sm := smallmesh()
	loads := [][]float64{
		{0, 0, 100, 0, 0, 0},
		{0, 0, 200, 10, 0, 0},
		{0, 0, 50, 0, 0, 0},
	}
	dat := &BdfData{
		Title: "wing", E: 70e9, G: 27e9, Nu: 0.33, Rho: 2800,
		A: 0.01, Irr: 1e-4, Iss: 2e-5, Jtt: 5e-5,
		Nload: 1.5, Grav: 9.81,
	}
	deck, err := WriteBDF(sm, loads, dat)
	if err != nil {
		tst.Errorf("WriteBDF failed:\n%v", err)
		return
	}
	if io.Verbose {
		io.Pf("%v\n", deck)
	}

	// anchors
	for _, anchor := range []string{
		"SOL 101", "TITLE = wing", "SPC = 1", "LOAD = 30", "BEGIN BULK",
		"GRID", "MAT1", "PBAR", "CBAR", "FORCE", "MOMENT", "SPC1", "GRAV",
		"ENDDATA",
	} {
		if !strings.Contains(deck, anchor) {
			tst.Errorf("deck is missing %q:\n%v", anchor, deck)
			return
		}
	}
	chk.IntAssert(strings.Count(deck, "GRID"), 3)
	chk.IntAssert(strings.Count(deck, "CBAR"), 2)
	chk.IntAssert(strings.Count(deck, "FORCE"), 3)
	chk.IntAssert(strings.Count(deck, "MOMENT"), 1)

	// gravity magnitude is nload times the constant
	if !strings.Contains(deck, Field8(1.5*9.81)) {
		tst.Errorf("deck is missing the scaled gravity value:\n%v", deck)
		return
	}

	// the root grid is fully clamped
	if !strings.Contains(deck, io.Sf("%-8s%8d%8d%8d\n", "SPC1", 1, 123456, 1)) {
		tst.Errorf("deck is missing the root SPC1 card:\n%v", deck)
		return
	}
}

func Test_bdf03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bdf03. deck generation error conditions")

	// wrong mesh kind
	am := smallmesh()
	am.Kind = msh.KindAero
	loads := [][]float64{{0, 0, 0, 0, 0, 0}, {0, 0, 0, 0, 0, 0}, {0, 0, 0, 0, 0, 0}}
	_, err := WriteBDF(am, loads, &BdfData{})
	if err == nil {
		tst.Errorf("WriteBDF should fail with an aerodynamic mesh\n")
		return
	}

	// wrong loads size
	_, err = WriteBDF(smallmesh(), loads[:2], &BdfData{})
	if err == nil {
		tst.Errorf("WriteBDF should fail with a short loads array\n")
		return
	}
}

func Test_f0601(tst *testing.T) {

	//verbose()
	chk.PrintTitle("f0601. displacement vector parsing")

	text := `1    WING                                                          AUGUST 29, 2026  MYSTRAN

                                         D I S P L A C E M E N T   V E C T O R

      POINT ID.   TYPE          T1             T2             T3             R1             R2             R3
             1      G      0.000000E+00   0.000000E+00   0.000000E+00   0.000000E+00   0.000000E+00   0.000000E+00
             2      G      1.000000E-03   0.000000E+00   2.500000E-02   1.200000E-02   0.000000E+00  -3.000000E-04
             3      G      2.000000E-03   0.000000E+00   8.100000E-02   2.300000E-02   0.000000E+00  -5.000000E-04

                                         S T R E S S E S   I N   B A R   E L E M E N T S
             1   1.234500E+08  -2.000000E+07
             2   6.700000E+07   1.100000E+07
`

	us, err := ParseF06Disp(text, 3)
	if err != nil {
		tst.Errorf("ParseF06Disp failed:\n%v", err)
		return
	}
	chk.IntAssert(len(us), 18)
	chk.Float64(tst, "uz node 2", 1e-15, us[6*1+2], 2.5e-2)
	chk.Float64(tst, "rx node 3", 1e-15, us[6*2+3], 2.3e-2)
	chk.Float64(tst, "rz node 2", 1e-15, us[6*1+5], -3e-4)
	chk.Float64(tst, "root row", 1e-15, us[2], 0)

	// stress maximum over the bar table
	smax, err := ParseF06MaxStress(text)
	if err != nil {
		tst.Errorf("ParseF06MaxStress failed:\n%v", err)
		return
	}
	chk.Float64(tst, "smax", 1e-15, smax, 1.2345e8)

	// absent stress section is not an error
	smax, err = ParseF06MaxStress("no results here")
	if err != nil {
		tst.Errorf("ParseF06MaxStress should accept text without stresses\n")
		return
	}
	chk.Float64(tst, "smax absent", 1e-15, smax, 0)

	// missing displacement section
	_, err = ParseF06Disp("no results here", 3)
	if err == nil {
		tst.Errorf("ParseF06Disp should fail without a displacement section\n")
		return
	}

	// truncated table
	short := text[:strings.Index(text, "             3")]
	_, err = ParseF06Disp(short, 3)
	if err == nil {
		tst.Errorf("ParseF06Disp should fail with missing rows\n")
		return
	}
}

func Test_mystran01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mystran01. missing executable")

	o := &Mystran{Exec: "/nonexistent/mystran"}
	_, err := o.Run(smallmesh(), [][]float64{{0, 0, 0, 0, 0, 0}, {0, 0, 0, 0, 0, 0}, {0, 0, 0, 0, 0, 0}}, 1)
	if err == nil {
		tst.Errorf("Run should fail when the executable is absent\n")
		return
	}
}
