// Copyright 2016 The Goaero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
)

// EllipticLift computes quantities of the elliptic spanwise lift distribution
// of a symmetric wing of full span b carrying a total lift Ltot:
//
//   l(y) = l₀・sqrt(1 - (2y/b)²)       l₀ = 4・Ltot/(π・b)
//
type EllipticLift struct {

	// input
	Ltot float64 // total lift on both sides
	B    float64 // full span

	// derived
	l0 float64 // lift per unit span at the root
}

// Init initialises this structure
func (o *EllipticLift) Init(prms dbf.Params) {

	// default values
	o.Ltot = 1.0
	o.B = 1.0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "Ltot":
			o.Ltot = p.V
		case "b":
			o.B = p.V
		}
	}

	// derived
	o.l0 = 4.0 * o.Ltot / (math.Pi * o.B)
}

// Intensity returns the lift per unit span at station y ∈ [-b/2, b/2]
func (o *EllipticLift) Intensity(y float64) float64 {
	η := 2.0 * y / o.B
	if η*η >= 1.0 {
		return 0
	}
	return o.l0 * math.Sqrt(1.0-η*η)
}

// HalfLift returns the lift carried by one side
func (o *EllipticLift) HalfLift() float64 {
	return 0.5 * o.Ltot
}

// RootBendingMoment returns the bending moment at the symmetry plane due to
// one side:  M = ∫ l(y)・y dy = (Ltot/2)・(2b/(3π))/... = l₀・b²/12
func (o *EllipticLift) RootBendingMoment() float64 {
	return o.l0 * o.B * o.B / 12.0
}

// SpanwiseCentroid returns the centroid of the one-side distribution:
// ȳ = 2b/(3π)
func (o *EllipticLift) SpanwiseCentroid() float64 {
	return 2.0 * o.B / (3.0 * math.Pi)
}
