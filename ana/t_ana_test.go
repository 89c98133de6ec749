// Copyright 2016 The Goaero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_cantilever01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cantilever01")

	var beam CantileverBeam
	beam.Init(dbf.Params{
		&dbf.P{N: "E", V: 2.0e11},
		&dbf.P{N: "I", V: 4.0e-6},
		&dbf.P{N: "L", V: 3.0},
		&dbf.P{N: "P", V: 1000.0},
	})

	chk.Float64(tst, "tip w", 1e-15, beam.TipDeflection(), 1000.0*27.0/(3.0*2.0e11*4.0e-6))
	chk.Float64(tst, "tip θ", 1e-15, beam.TipRotation(), 1000.0*9.0/(2.0*2.0e11*4.0e-6))
	chk.Float64(tst, "w(L) == tip w", 1e-15, beam.Deflection(3.0), beam.TipDeflection())
	chk.Float64(tst, "w(0)", 1e-15, beam.Deflection(0), 0)
	chk.Float64(tst, "M(0)", 1e-12, beam.Moment(0), -3000.0)
	chk.Float64(tst, "M(L)", 1e-15, beam.Moment(3.0), 0)
	chk.Float64(tst, "V(0)", 1e-15, beam.RootShear(), 1000.0)

	// distributed load
	beam.Init(dbf.Params{
		&dbf.P{N: "E", V: 1.0},
		&dbf.P{N: "I", V: 1.0},
		&dbf.P{N: "L", V: 2.0},
		&dbf.P{N: "q", V: 5.0},
	})
	chk.Float64(tst, "tip w (q)", 1e-14, beam.TipDeflection(), 5.0*16.0/8.0)
	chk.Float64(tst, "M(0) (q)", 1e-14, beam.Moment(0), -0.5*5.0*4.0)
	chk.Float64(tst, "V(0) (q)", 1e-15, beam.RootShear(), 10.0)
}

func Test_elliptic01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("elliptic01")

	var lift EllipticLift
	lift.Init(dbf.Params{
		&dbf.P{N: "Ltot", V: 5.0e5},
		&dbf.P{N: "b", V: 30.0},
	})

	chk.Float64(tst, "l(0)", 1e-10, lift.Intensity(0), 4.0*5.0e5/(math.Pi*30.0))
	chk.Float64(tst, "l(b/2)", 1e-15, lift.Intensity(15.0), 0)
	chk.Float64(tst, "half lift", 1e-15, lift.HalfLift(), 2.5e5)
	chk.Float64(tst, "centroid", 1e-12, lift.SpanwiseCentroid(), 2.0*30.0/(3.0*math.Pi))
	chk.Float64(tst, "root BM", 1e-8, lift.RootBendingMoment(), lift.HalfLift()*lift.SpanwiseCentroid())

	// numerical check of the half lift by integration
	n := 200000
	dy := 15.0 / float64(n)
	sum := 0.0
	for i := 0; i < n; i++ {
		y := (float64(i) + 0.5) * dy
		sum += lift.Intensity(y) * dy
	}
	chk.Float64(tst, "∫l dy", 1e-2, sum, lift.HalfLift())
}
