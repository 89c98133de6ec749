// Copyright 2016 The Goaero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"github.com/cpmech/gosl/fun/dbf"
)

// CantileverBeam computes the solution of a clamped-free prismatic beam under
// a tip point load P and a uniformly distributed load q (both acting in the
// same transverse direction)
//
//     ▷|——————————————————— → x
//     ▷|   q q q q q q q
//     ▷|   ↓ ↓ ↓ ↓ ↓ ↓ ↓   ↓ P
//      |←——————— L ———————→|
//
type CantileverBeam struct {

	// input
	E float64 // Young's modulus
	I float64 // second moment of area
	L float64 // length
	P float64 // tip point load
	Q float64 // uniformly distributed load
}

// Init initialises this structure
func (o *CantileverBeam) Init(prms dbf.Params) {

	// default values
	o.E = 1000.0
	o.I = 1.0
	o.L = 1.0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "I":
			o.I = p.V
		case "L":
			o.L = p.V
		case "P":
			o.P = p.V
		case "q":
			o.Q = p.V
		}
	}
}

// TipDeflection returns the transverse deflection at the free end
func (o *CantileverBeam) TipDeflection() float64 {
	L3 := o.L * o.L * o.L
	return o.P*L3/(3.0*o.E*o.I) + o.Q*L3*o.L/(8.0*o.E*o.I)
}

// TipRotation returns the slope at the free end
func (o *CantileverBeam) TipRotation() float64 {
	L2 := o.L * o.L
	return o.P*L2/(2.0*o.E*o.I) + o.Q*L2*o.L/(6.0*o.E*o.I)
}

// Deflection returns the transverse deflection at 0 ≤ x ≤ L
func (o *CantileverBeam) Deflection(x float64) float64 {
	x2 := x * x
	EI := o.E * o.I
	wP := o.P * x2 * (3.0*o.L - x) / (6.0 * EI)
	wQ := o.Q * x2 * (6.0*o.L*o.L - 4.0*o.L*x + x2) / (24.0 * EI)
	return wP + wQ
}

// Moment returns the bending moment at 0 ≤ x ≤ L (negative at the root for
// positive loads, following the sagging-positive convention)
func (o *CantileverBeam) Moment(x float64) float64 {
	d := o.L - x
	return -o.P*d - 0.5*o.Q*d*d
}

// RootShear returns the shear force at the clamped end
func (o *CantileverBeam) RootShear() float64 {
	return o.P + o.Q*o.L
}
