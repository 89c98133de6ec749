// Copyright 2016 The Goaero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fsi

import (
	"github.com/cpmech/goaero/inp"
	"github.com/cpmech/goaero/trf"
	"github.com/cpmech/gosl/chk"
)

// OneWay performs a single aerodynamic-then-structural pass on the jig
// geometry, without feeding the deformation back to the aerodynamics
type OneWay struct {
	dom *Domain
}

// set factory
func init() {
	allocators["oneway"] = func(d *Domain) Solver {
		return &OneWay{dom: d}
	}
}

func (o *OneWay) Run(stg *inp.Stage) (err error) {

	// flight condition at this stage
	d := o.dom
	α := d.Sim.Flight.Falpha.F(stg.T, nil)
	nload := d.Sim.Flight.Fnload.F(stg.T, nil)
	d.Sol = &Solution{T: stg.T, Alpha: α, Nload: nload, It: 1}

	// aerodynamic loads on the jig meshes
	res, err := d.Aero.Run(d.AeroMeshes(), α)
	if err != nil {
		return chk.Err("aerodynamic analysis failed:\n%v", err)
	}
	d.Sol.Coeffs = res[0].Coeffs

	// structural displacements and deformed geometry, for reporting only
	for i, r := range d.Regions {
		loads, e := trf.Forces(r.Am, r.Sm, res[i].F)
		if e != nil {
			return e
		}
		r.Loads = loads
		us, e := r.Str.Run(r.Sm, loads, nload)
		if e != nil {
			return chk.Err("structural analysis failed:\n%v", e)
		}
		copy(r.Us, us)
		if err = d.UpdateMesh(r, r.Us); err != nil {
			return
		}
	}
	return
}
