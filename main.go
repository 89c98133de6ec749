// Copyright 2016 The Goaero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/goaero/fsi"
	"github.com/cpmech/goaero/inp"
	"github.com/cpmech/goaero/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	erasePrev := io.ArgToBool(2, true)
	saveSummary := io.ArgToBool(3, true)

	// message
	if verbose {
		io.PfWhite("\nGoaero -- Static Aerostructural Analysis\n")
		io.Pf("Copyright 2016 The Goaero Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"erase previous results", "erasePrev", erasePrev,
			"save summary", "saveSummary", saveSummary,
		))
	}

	// simulation data
	sim := inp.ReadSim(fnamepath, erasePrev)

	// domain and solver
	dom, err := fsi.NewDomain(sim)
	if err != nil {
		chk.Panic("cannot allocate domain:\n%v", err)
	}
	solver, err := fsi.New(sim.Solver.Type, dom)
	if err != nil {
		chk.Panic("cannot allocate solver:\n%v", err)
	}

	// solve all load cases
	var sum out.Summary
	for i, stg := range sim.Stages {
		if verbose {
			io.Pf("\nstage %d: %s\n", i, stg.Desc)
		}
		err = solver.Run(stg)
		if err != nil {
			chk.Panic("stage %d failed:\n%v", i, err)
		}
		sum.Append(dom, stg)
	}

	// report and summary
	if verbose {
		io.Pf("\n%v\n", sum.Report())
	}
	if saveSummary {
		err = sum.Save(sim.DirOut, sim.Key, sim.EncType, verbose)
		if err != nil {
			chk.Panic("cannot save summary:\n%v", err)
		}
	}
}
