// Copyright 2016 The Goaero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package str

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/cpmech/goaero/inp"
	"github.com/cpmech/goaero/msh"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// scratch file names
const (
	bdfFile = "goaero.bdf"
	f06File = "goaero.F06"
)

// Mystran wraps the external MYSTRAN finite-element solver: BDF deck
// generation, process invocation and F06 parsing
type Mystran struct {

	// configuration
	Exec        string // path to the mystran executable
	KeepScratch bool   // keep scratch directories for inspection
	ScratchRoot string // root for scratch directories; "" => system default

	// component data
	Dat BdfData // material and bar section properties
}

// register solver
func init() {
	allocators["mystran"] = func(sim *inp.Simulation, comp *inp.Component) (Solver, error) {
		E, G, ν, ρ, err := matprms(sim, comp)
		if err != nil {
			return nil, err
		}
		return &Mystran{
			Exec:        sim.ExtCodes.Mystran,
			KeepScratch: sim.ExtCodes.KeepScratch,
			ScratchRoot: sim.ExtCodes.ScratchRoot,
			Dat: BdfData{
				Title: "goaero static analysis: " + comp.Name,
				E:     E, G: G, Nu: ν, Rho: ρ,
				A: comp.A, Irr: comp.Irr, Iss: comp.Iss, Jtt: comp.Jtt,
				Grav: sim.Flight.Grav,
			},
		}, nil
	}
}

// Run writes the deck in a scratch directory, invokes MYSTRAN and parses the
// resulting nodal displacements
func (o *Mystran) Run(sm *msh.Mesh, loads [][]float64, nload float64) (us []float64, err error) {

	// check executable
	if o.Exec == "" {
		return nil, chk.Err("path to the MYSTRAN executable is empty")
	}
	if _, e := os.Stat(o.Exec); e != nil {
		if _, e = exec.LookPath(o.Exec); e != nil {
			return nil, chk.Err("cannot find MYSTRAN executable %q", o.Exec)
		}
	}

	// deck
	dat := o.Dat
	dat.Nload = nload
	deck, err := WriteBDF(sm, loads, &dat)
	if err != nil {
		return
	}

	// scratch directory
	dir, err := os.MkdirTemp(o.ScratchRoot, "goaero_mystran_")
	if err != nil {
		return nil, chk.Err("cannot create scratch directory: %v", err)
	}
	if !o.KeepScratch {
		defer os.RemoveAll(dir)
	}
	io.WriteStringToFile(filepath.Join(dir, bdfFile), deck)

	// blocking subprocess call
	cmd := exec.Command(o.Exec, bdfFile)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		return nil, chk.Err("MYSTRAN run failed: %v\noutput:\n%s", err, string(out))
	}

	// parse displacements
	b, err := os.ReadFile(filepath.Join(dir, f06File))
	if err != nil {
		return nil, chk.Err("cannot read F06 output: %v", err)
	}
	return ParseF06Disp(string(b), sm.Nn())
}
