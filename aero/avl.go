// Copyright 2016 The Goaero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package aero wraps the external AVL vortex-lattice code: input deck
// generation, process invocation and output parsing
package aero

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/cpmech/goaero/inp"
	"github.com/cpmech/goaero/msh"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// scratch file names
const (
	geomFile   = "goaero.avl"
	totalFile  = "total.txt"
	stripsFile = "strips.txt"
)

// Coeffs holds total coefficients parsed from the AVL output
type Coeffs struct {
	Alpha float64 // angle of attack echoed by AVL [deg]
	CLtot float64 // total lift coefficient
	CDind float64 // induced drag coefficient
}

// Results holds the results of one aerodynamic analysis
type Results struct {
	Coeffs Coeffs      // total coefficients
	F      [][]float64 // [na][6] nodal loads {Fx,Fy,Fz,Mx,My,Mz} at the aero nodes (body frame)
}

// AVL wraps the external vortex-lattice executable. One scratch directory is
// created per call and removed afterwards unless KeepScratch is set.
type AVL struct {

	// configuration
	Exec        string // path to the avl executable
	KeepScratch bool   // keep scratch directories for inspection
	ScratchRoot string // root for scratch directories; "" => system default

	// flight condition and reference dimensions
	Flt              *inp.FlightData
	Sref, Cref, Bref float64
}

// NewAVL returns a wrapper configured from the simulation data
func NewAVL(sim *inp.Simulation) (o *AVL) {
	o = &AVL{
		Exec:        sim.ExtCodes.Avl,
		KeepScratch: sim.ExtCodes.KeepScratch,
		ScratchRoot: sim.ExtCodes.ScratchRoot,
		Flt:         &sim.Flight,
	}
	o.Sref, o.Cref, o.Bref = sim.RefDims()
	return
}

// Run serialises the current aerodynamic meshes and flight condition to an
// input deck, invokes AVL and parses the resulting forces
//  Input:
//   meshes -- aerodynamic meshes of the lifting components, wing first
//   alpha  -- angle of attack [deg]
//  Output:
//   res -- per-mesh results, in the order of the input meshes
func (o *AVL) Run(meshes []*msh.Mesh, alpha float64) (res []*Results, err error) {

	// check executable
	if o.Exec == "" {
		return nil, chk.Err("path to the AVL executable is empty")
	}
	if _, e := os.Stat(o.Exec); e != nil {
		if _, e = exec.LookPath(o.Exec); e != nil {
			return nil, chk.Err("cannot find AVL executable %q", o.Exec)
		}
	}
	if len(meshes) < 1 {
		return nil, chk.Err("at least one aerodynamic mesh is required")
	}

	// scratch directory
	dir, err := os.MkdirTemp(o.ScratchRoot, "goaero_avl_")
	if err != nil {
		return nil, chk.Err("cannot create scratch directory: %v", err)
	}
	if !o.KeepScratch {
		defer os.RemoveAll(dir)
	}

	// geometry deck
	deck := GeomDeck(meshes, o.Sref, o.Cref, o.Bref)
	io.WriteStringToFile(filepath.Join(dir, geomFile), deck)

	// command script fed on stdin
	script := Script(alpha)

	// blocking subprocess call
	cmd := exec.Command(o.Exec)
	cmd.Dir = dir
	cmd.Stdin = strings.NewReader(script)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return nil, chk.Err("AVL run failed: %v\noutput:\n%s", err, string(out))
	}

	// parse total coefficients
	btot, err := os.ReadFile(filepath.Join(dir, totalFile))
	if err != nil {
		return nil, chk.Err("cannot read AVL total forces file: %v", err)
	}
	coeffs, err := ParseTotals(string(btot))
	if err != nil {
		return nil, err
	}

	// parse strip forces
	bstr, err := os.ReadFile(filepath.Join(dir, stripsFile))
	if err != nil {
		return nil, chk.Err("cannot read AVL strip forces file: %v", err)
	}
	surfs, err := ParseStrips(string(bstr))
	if err != nil {
		return nil, err
	}

	// distribute strip loads onto the aero nodes, mesh by mesh
	strips, err := StripsForMeshes(surfs, meshes)
	if err != nil {
		return nil, err
	}
	res = make([]*Results, len(meshes))
	for i, m := range meshes {
		res[i] = &Results{Coeffs: coeffs}
		res[i].F = NodalLoads(m, strips[i], o.Flt.Qinf(), alpha)
	}
	return
}

// Script returns the command script driving one AVL session. The anchor
// keywords LOAD, OPER, A, X, FS, W and QUIT mark where the numeric fields
// are substituted.
func Script(alpha float64) string {
	var b strings.Builder
	b.WriteString("LOAD " + geomFile + "\n")
	b.WriteString("OPER\n")
	b.WriteString(io.Sf("A A %.6f\n", alpha))
	b.WriteString("X\n")
	b.WriteString("FS " + stripsFile + "\n")
	b.WriteString("W " + totalFile + "\n")
	b.WriteString("\n")
	b.WriteString("QUIT\n")
	return b.String()
}
