// Copyright 2016 The Goaero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fsi

import (
	"github.com/cpmech/goaero/inp"
	"github.com/cpmech/goaero/trf"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// Static solves one load case with fixed-point (Gauss-Seidel) iterations:
// aerodynamic loads on the current meshes, structural displacements, mesh
// update with under-relaxation, until the structural displacements settle
type Static struct {
	dom *Domain
}

// set factory
func init() {
	allocators["fixpoint"] = func(d *Domain) Solver {
		return &Static{dom: d}
	}
}

func (o *Static) Run(stg *inp.Stage) (err error) {

	// flight condition at this stage
	d := o.dom
	sv := &d.Sim.Solver
	α := d.Sim.Flight.Falpha.F(stg.T, nil)
	nload := d.Sim.Flight.Fnload.F(stg.T, nil)

	// auxiliary
	ω := sv.Relax  // current relaxation; halved on divergence
	ndiverg := 0   // number of steps diverging
	prevL := 0.0   // residual of the previous accepted iteration
	var lastUs [][]float64

	// reset solution
	d.Sol = &Solution{T: stg.T, Alpha: α, Nload: nload}

	// message
	if sv.ShowR {
		io.Pf("\n%13s%4s%23s\n", "t", "it", "Lδu")
	}

	// fixed-point iterations
	usNew := make([][]float64, len(d.Regions))
	for it := 0; it < sv.NmaxIt; it++ {

		// aerodynamic loads on the current meshes
		res, e := d.Aero.Run(d.AeroMeshes(), α)
		if e != nil {
			return chk.Err("aerodynamic analysis failed:\n%v", e)
		}
		d.Sol.Coeffs = res[0].Coeffs

		// structural displacements, region by region
		var Lδu float64
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

			// weighted rms of the change w.r.t the previous iteration
			if l := la.VecRmsError(us, r.Us, sv.Atol, sv.Rtol, us); l > Lδu {
				Lδu = l
			}
			usNew[i] = us
		}

		// residual history
		d.Sol.It, d.Sol.Resid = it, Lδu
		d.Sol.Resids = append(d.Sol.Resids, Lδu)
		if sv.ShowR {
			io.Pf("%13.6e%4d%23.15e\n", stg.T, it, Lδu)
		}

		// converged on displacements; leave meshes consistent with the
		// final solution
		if Lδu < sv.Itol {
			return o.update(usNew, 1)
		}

		// restore state and reduce relaxation if divergence control is on
		if sv.DvgCtrl && it > 0 && Lδu >= prevL {
			ndiverg++
			if ndiverg >= sv.NdvgMax {
				return chk.Err("continuous divergence after %d steps reached", ndiverg)
			}
			if sv.ShowR {
				io.Pfred(". . . iterations diverging (%2d) . . .\n", ndiverg)
			}
			d.restore()
			ω *= 0.5
			if err = o.update(lastUs, ω); err != nil {
				return
			}
			continue
		}
		ndiverg = 0

		// relaxed mesh update
		d.backup()
		if err = o.update(usNew, ω); err != nil {
			return
		}

		// private copy of the accepted displacements; re-applied with a
		// smaller relaxation if the next iteration diverges
		if lastUs == nil {
			lastUs = make([][]float64, len(d.Regions))
		}
		for i, us := range usNew {
			lastUs[i] = append(lastUs[i][:0], us...)
		}
		prevL = Lδu
	}
	return chk.Err("convergence cannot be achieved after %d iterations (Lδu=%g)", sv.NmaxIt, d.Sol.Resid)
}

// update applies the under-relaxed displacements and deforms the meshes
func (o *Static) update(us [][]float64, ω float64) (err error) {
	for i, r := range o.dom.Regions {
		for j := range r.Us {
			r.Us[j] += ω * (us[i][j] - r.Us[j])
		}
		if err = o.dom.UpdateMesh(r, r.Us); err != nil {
			return
		}
	}
	return
}
