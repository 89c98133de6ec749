// Copyright 2016 The Goaero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"github.com/cpmech/goaero/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// chordwise location of the aerodynamic node line (quarter chord)
const aeroChordFrac = 0.25

// AeroMesh generates the aerodynamic mesh of one component: an ordered line of
// 3-dof nodes along the quarter-chord (lifting surfaces) or along the
// longitudinal axis (fuselage)
func AeroMesh(c *inp.Component) (o *Mesh, err error) {
	return generate(c, KindAero, c.Naero, aeroChordFrac)
}

// StructMesh generates the structural mesh of one component: an ordered line
// of 6-dof nodes along the elastic axis
func StructMesh(c *inp.Component) (o *Mesh, err error) {
	return generate(c, KindStruct, c.Nstruct, c.Eaxis)
}

// generate produces a node line by linear interpolation across the geometric
// breakpoints. Symmetric components are meshed on the y ≥ 0 half only; the
// mirror side is recovered by the aerodynamic solver and the transfer
// operators.
func generate(c *inp.Component, kind string, nn int, chordFrac float64) (o *Mesh, err error) {
	if err = c.Validate(); err != nil {
		return
	}
	if nn < 2 {
		return nil, chk.Err("component %q: cannot generate %q mesh with %d nodes", c.Name, kind, nn)
	}
	o = &Mesh{CompName: c.Name, Kind: kind, Symmetric: c.Symmetric}
	o.Nodes = make([]*Node, nn)
	o.Stations = utl.LinSpace(0, 1, nn)
	if kind == KindAero {
		o.Chords = make([]float64, nn)
	}
	for i, η := range o.Stations {
		s := η * c.Span
		xle, z, chord := c.Interp(η)
		var x []float64
		switch {
		case c.Name == "fuselage":
			x = []float64{s, 0, z}
		case c.Vertical:
			x = []float64{xle + chordFrac*chord, 0, z + s}
		default:
			x = []float64{xle + chordFrac*chord, s, z}
		}
		o.Nodes[i] = &Node{Id: i, X: x}
		if kind == KindAero {
			o.Chords[i] = chord
		}
	}
	return
}
