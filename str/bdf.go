// Copyright 2016 The Goaero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package str

import (
	"math"
	"strconv"
	"strings"

	"github.com/cpmech/goaero/msh"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// load set ids of the generated deck
const (
	sidForces   = 10 // FORCE and MOMENT cards
	sidGravity  = 20 // GRAV card
	sidCombined = 30 // LOAD combination referenced by the subcase
	sidSpc      = 1  // SPC1 clamping the root
	matId       = 1  // MAT1
	pbarId      = 1  // PBAR
)

// BdfData holds the pieces needed to write one bulk data deck
type BdfData struct {
	Title   string      // deck title
	E       float64     // Young's modulus
	G       float64     // shear modulus
	Nu      float64     // Poisson's coefficient
	Rho     float64     // density
	A       float64     // bar area
	Irr     float64     // max principal inertia
	Iss     float64     // min principal inertia
	Jtt     float64     // torsional constant
	Nload   float64     // load factor applied to gravity
	Grav    float64     // gravity constant
	Attach  []int       // extra grid ids tied to the root by an RBE2 (ex: engine pylon); may be empty
	AttachX [][]float64 // coordinates of the attached grids
}

// Field8 formats a real number into one small-field (8 characters) column.
// NASTRAN requires a decimal point or exponent in real fields.
func Field8(v float64) string {
	for prec := 6; prec >= 1; prec-- {
		s := strconv.FormatFloat(v, 'G', prec, 64)
		if !strings.ContainsAny(s, ".E") {
			s += "."
		}
		if len(s) <= 8 {
			return io.Sf("%8s", s)
		}
	}
	return io.Sf("%8s", strconv.FormatFloat(v, 'G', 1, 64))
}

// WriteBDF generates the MYSTRAN/NASTRAN bulk data deck of one component:
// GRID, MAT1, PBAR, CBAR, FORCE, MOMENT, SPC1, RBE2, GRAV and LOAD cards,
// with a single static subcase combining aerodynamic loads and gravity
func WriteBDF(sm *msh.Mesh, loads [][]float64, dat *BdfData) (deck string, err error) {

	// check
	if sm.Kind != msh.KindStruct {
		return "", chk.Err("WriteBDF needs a structural mesh")
	}
	if len(loads) != sm.Nn() {
		return "", chk.Err("loads array has wrong size: %d != %d", len(loads), sm.Nn())
	}

	var b strings.Builder

	// executive and case control
	b.WriteString("ID GOAERO,STATIC\n")
	b.WriteString("SOL 101\n")
	b.WriteString("CEND\n")
	b.WriteString("TITLE = " + dat.Title + "\n")
	b.WriteString(io.Sf("SPC = %d\n", sidSpc))
	b.WriteString(io.Sf("LOAD = %d\n", sidCombined))
	b.WriteString("DISP = ALL\n")
	b.WriteString("STRESS = ALL\n")
	b.WriteString("BEGIN BULK\n")

	// grids (ids are 1-based)
	for _, nod := range sm.Nodes {
		b.WriteString(io.Sf("%-8s%8d%8s%s%s%s\n", "GRID", nod.Id+1, "",
			Field8(nod.X[0]), Field8(nod.X[1]), Field8(nod.X[2])))
	}

	// material and bar property
	b.WriteString(io.Sf("%-8s%8d%s%s%s%s\n", "MAT1", matId,
		Field8(dat.E), Field8(dat.G), Field8(dat.Nu), Field8(dat.Rho)))
	b.WriteString(io.Sf("%-8s%8d%8d%s%s%s%s\n", "PBAR", pbarId, matId,
		Field8(dat.A), Field8(dat.Irr), Field8(dat.Iss), Field8(dat.Jtt)))

	// bar elements with orientation vector
	for i := 0; i < sm.Nn()-1; i++ {
		v := orientation(sm.Nodes[i].X, sm.Nodes[i+1].X)
		b.WriteString(io.Sf("%-8s%8d%8d%8d%8d%s%s%s\n", "CBAR", i+1, pbarId,
			i+1, i+2, Field8(v[0]), Field8(v[1]), Field8(v[2])))
	}

	// nodal loads
	for i, f := range loads {
		if len(f) != 6 {
			return "", chk.Err("load %d must have 6 components", i)
		}
		if norm3(f[:3]) > 1e-12 {
			b.WriteString(io.Sf("%-8s%8d%8d%8d%s%s%s%s\n", "FORCE", sidForces,
				i+1, 0, Field8(1.0), Field8(f[0]), Field8(f[1]), Field8(f[2])))
		}
		if norm3(f[3:]) > 1e-12 {
			b.WriteString(io.Sf("%-8s%8d%8d%8d%s%s%s%s\n", "MOMENT", sidForces,
				i+1, 0, Field8(1.0), Field8(f[3]), Field8(f[4]), Field8(f[5])))
		}
	}

	// clamped root
	b.WriteString(io.Sf("%-8s%8d%8d%8d\n", "SPC1", sidSpc, 123456, 1))

	// rigid attachments
	for k, gid := range dat.Attach {
		x := dat.AttachX[k]
		b.WriteString(io.Sf("%-8s%8d%8s%s%s%s\n", "GRID", gid, "",
			Field8(x[0]), Field8(x[1]), Field8(x[2])))
		b.WriteString(io.Sf("%-8s%8d%8d%8d%8d\n", "RBE2", 1000+k, 1, 123456, gid))
	}

	// gravity with load factor
	b.WriteString(io.Sf("%-8s%8d%8d%s%s%s%s\n", "GRAV", sidGravity, 0,
		Field8(dat.Nload*dat.Grav), Field8(0.0), Field8(0.0), Field8(-1.0)))

	// combination
	b.WriteString(io.Sf("%-8s%8d%s%s%8d%s%8d\n", "LOAD", sidCombined,
		Field8(1.0), Field8(1.0), sidForces, Field8(1.0), sidGravity))

	b.WriteString("ENDDATA\n")
	return b.String(), nil
}

// orientation returns the CBAR orientation vector: the global axis least
// aligned with the bar
func orientation(xa, xb []float64) (v []float64) {
	d := []float64{xb[0] - xa[0], xb[1] - xa[1], xb[2] - xa[2]}
	l := norm3(d)
	if l < 1e-12 {
		return []float64{0, 0, 1}
	}
	if math.Abs(d[2])/l < 0.9 {
		return []float64{0, 0, 1}
	}
	return []float64{1, 0, 0}
}

func norm3(v []float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}
