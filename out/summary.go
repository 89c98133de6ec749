// Copyright 2016 The Goaero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out records and post-processes aerostructural results
package out

import (
	"bytes"
	"os"

	"github.com/cpmech/goaero/aero"
	"github.com/cpmech/goaero/fsi"
	"github.com/cpmech/goaero/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// RegionResults holds the converged state of one lifting component
type RegionResults struct {
	Name     string      // component name
	Stations []float64   // [ns] normalised spanwise stations of the structural nodes
	Us       []float64   // [6·ns] structural displacements
	Ua       []float64   // [3·na] aerodynamic mesh displacements
	Loads    [][]float64 // [ns][6] structural nodal loads
}

// StageResults holds the outcome of one load case
type StageResults struct {
	Desc    string          // load case description
	T       float64         // stage pseudo-time
	Alpha   float64         // angle of attack [deg]
	Nload   float64         // load factor
	Coeffs  aero.Coeffs     // total aerodynamic coefficients
	It      int             // number of iterations used
	Resids  []float64       // residual history
	Regions []*RegionResults // per-component results
}

// Summary records the results of all load cases of one simulation
type Summary struct {
	Key    string          // simulation key
	Stages []*StageResults // one entry per solved stage
}

// Append records the current state of the domain as the outcome of stage stg
func (o *Summary) Append(d *fsi.Domain, stg *inp.Stage) {
	res := &StageResults{
		Desc:   stg.Desc,
		T:      d.Sol.T,
		Alpha:  d.Sol.Alpha,
		Nload:  d.Sol.Nload,
		Coeffs: d.Sol.Coeffs,
		It:     d.Sol.It,
		Resids: d.Sol.Resids,
	}
	for _, r := range d.Regions {
		rr := &RegionResults{Name: r.Comp.Name}
		rr.Stations = append(rr.Stations, r.Sm.Stations...)
		rr.Us = append(rr.Us, r.Us...)
		rr.Ua = append(rr.Ua, r.Ua...)
		for _, f := range r.Loads {
			ff := make([]float64, 6)
			copy(ff, f)
			rr.Loads = append(rr.Loads, ff)
		}
		res.Regions = append(res.Regions, rr)
	}
	o.Stages = append(o.Stages, res)
}

// Save writes the summary to disc
func (o *Summary) Save(dirout, fnkey, enctype string, verbose bool) (err error) {
	o.Key = fnkey
	var buf bytes.Buffer
	enc := GetEncoder(&buf, enctype)
	err = enc.Encode(o)
	if err != nil {
		return chk.Err("cannot encode summary\n%v", err)
	}
	return saveFile(sumPath(dirout, fnkey, enctype), &buf, verbose)
}

// ReadSum reads a summary back from disc
func ReadSum(dirout, fnkey, enctype string) (o *Summary, err error) {
	fil, err := os.Open(sumPath(dirout, fnkey, enctype))
	if err != nil {
		return nil, chk.Err("cannot open summary file:\n%v", err)
	}
	defer func() {
		fil.Close()
	}()
	o = new(Summary)
	dec := GetDecoder(fil, enctype)
	err = dec.Decode(o)
	if err != nil {
		return nil, chk.Err("cannot decode summary\n%v", err)
	}
	return
}

// Report returns a text table with one row per solved stage
func (o *Summary) Report() string {
	var b bytes.Buffer
	io.Ff(&b, "%-12s%8s%8s%8s%10s%10s%5s%14s\n",
		"stage", "t", "alpha", "nload", "CL", "CDi", "it", "resid")
	for _, s := range o.Stages {
		resid := 0.0
		if len(s.Resids) > 0 {
			resid = s.Resids[len(s.Resids)-1]
		}
		io.Ff(&b, "%-12s%8.3f%8.3f%8.3f%10.5f%10.5f%5d%14.6e\n",
			s.Desc, s.T, s.Alpha, s.Nload, s.Coeffs.CLtot, s.Coeffs.CDind, s.It, resid)
	}
	return b.String()
}
