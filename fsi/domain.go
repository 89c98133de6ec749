// Copyright 2016 The Goaero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fsi

import (
	"github.com/cpmech/goaero/aero"
	"github.com/cpmech/goaero/inp"
	"github.com/cpmech/goaero/msh"
	"github.com/cpmech/goaero/str"
	"github.com/cpmech/goaero/trf"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Region holds the coupled state of one lifting component
type Region struct {
	Comp *inp.Component // component data
	Am0  *msh.Mesh      // jig (undeformed) aerodynamic mesh
	Am   *msh.Mesh      // current aerodynamic mesh
	Sm   *msh.Mesh      // structural mesh
	H    *la.Matrix     // displacements transfer matrix; rebuilt after every mesh update
	Str  str.Solver     // structural backend

	// state
	Us    []float64   // [6·ns] structural displacements
	Ua    []float64   // [3·na] aerodynamic mesh displacements
	Loads [][]float64 // [ns][6] last structural nodal loads

	// backup state for divergence control
	bkpUs []float64
	bkpUa []float64
	bkpAm *msh.Mesh
}

// Solution holds the results of the last solved load case
type Solution struct {
	T      float64     // stage pseudo-time
	Alpha  float64     // angle of attack [deg]
	Nload  float64     // load factor
	Coeffs aero.Coeffs // total aerodynamic coefficients
	It     int         // number of iterations used
	Resid  float64     // last residual
	Resids []float64   // residual history
}

// Domain holds the full aerostructural problem: one region per lifting
// component plus the aerodynamic solver coupling them
type Domain struct {
	Sim     *inp.Simulation
	Regions []*Region
	Aero    AeroSolver
	Sol     *Solution
}

// NewDomain builds the meshes, transfer matrices and structural backends of
// all lifting components. Non-lifting components (ex: fuselage) contribute
// no region.
func NewDomain(sim *inp.Simulation) (d *Domain, err error) {
	d = &Domain{Sim: sim, Sol: new(Solution)}
	for _, c := range sim.Components {
		if !c.IsLifting() {
			continue
		}
		r := &Region{Comp: c}
		r.Am0, err = msh.AeroMesh(c)
		if err != nil {
			return nil, err
		}
		r.Sm, err = msh.StructMesh(c)
		if err != nil {
			return nil, err
		}
		err = msh.CheckCompat(r.Am0, r.Sm)
		if err != nil {
			return nil, err
		}
		r.Str, err = str.New(sim.Solver.Struct, sim, c)
		if err != nil {
			return nil, err
		}
		r.Am = r.Am0.Clone()
		r.H, err = trf.Displacements(sim.Solver.Method, r.Am, r.Sm)
		if err != nil {
			return nil, err
		}
		r.Us = make([]float64, r.Sm.Ndof()*r.Sm.Nn())
		r.Ua = make([]float64, 3*r.Am0.Nn())
		d.Regions = append(d.Regions, r)
	}
	if len(d.Regions) == 0 {
		return nil, chk.Err("at least one lifting component is required")
	}
	d.Aero = aero.NewAVL(sim)
	return
}

// AeroMeshes returns the current aerodynamic meshes, in region order
func (d *Domain) AeroMeshes() (meshes []*msh.Mesh) {
	meshes = make([]*msh.Mesh, len(d.Regions))
	for i, r := range d.Regions {
		meshes[i] = r.Am
	}
	return
}

// UpdateMesh deforms the jig mesh of region r with the displacements mapped
// from us and rebuilds the transfer matrix from the updated geometry
func (d *Domain) UpdateMesh(r *Region, us []float64) (err error) {
	r.Ua, err = trf.Apply(r.H, us)
	if err != nil {
		return
	}
	r.Am, err = r.Am0.Deformed(r.Ua)
	if err != nil {
		return
	}
	r.H, err = trf.Displacements(d.Sim.Solver.Method, r.Am, r.Sm)
	return
}

// backup saves the coupled state of all regions
func (d *Domain) backup() {
	for _, r := range d.Regions {
		if r.bkpUs == nil {
			r.bkpUs = make([]float64, len(r.Us))
			r.bkpUa = make([]float64, len(r.Ua))
		}
		copy(r.bkpUs, r.Us)
		copy(r.bkpUa, r.Ua)
		r.bkpAm = r.Am.Clone()
	}
}

// restore recovers the coupled state saved by backup
func (d *Domain) restore() {
	for _, r := range d.Regions {
		copy(r.Us, r.bkpUs)
		copy(r.Ua, r.bkpUa)
		r.Am = r.bkpAm.Clone()
	}
}
