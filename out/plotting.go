// Copyright 2016 The Goaero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/cpmech/gosl/plt"
)

// PlotDeflection draws the spanwise vertical deflection of all regions of one
// load case
func PlotDeflection(res *StageResults) {
	for _, r := range res.Regions {
		ns := len(r.Stations)
		uz := make([]float64, ns)
		for j := 0; j < ns; j++ {
			uz[j] = r.Us[6*j+2]
		}
		plt.Plot(r.Stations, uz, &plt.A{M: "o", NoClip: true, L: r.Name})
	}
	plt.Gll("$\\eta$", "$u_z$", nil)
}

// PlotTwist draws the spanwise twist rotation of all regions of one load case
func PlotTwist(res *StageResults) {
	for _, r := range res.Regions {
		ns := len(r.Stations)
		θ := make([]float64, ns)
		for j := 0; j < ns; j++ {
			θ[j] = r.Us[6*j+4]
		}
		plt.Plot(r.Stations, θ, &plt.A{M: "s", NoClip: true, L: r.Name})
	}
	plt.Gll("$\\eta$", "$\\theta_y$", nil)
}

// PlotLoading draws the spanwise vertical nodal loads of all regions of one
// load case
func PlotLoading(res *StageResults) {
	for _, r := range res.Regions {
		ns := len(r.Stations)
		fz := make([]float64, ns)
		for j := 0; j < ns; j++ {
			fz[j] = r.Loads[j][2]
		}
		plt.Plot(r.Stations, fz, &plt.A{M: "^", NoClip: true, L: r.Name})
	}
	plt.Gll("$\\eta$", "$F_z$", nil)
}

// PlotResiduals draws the convergence history of one load case
func PlotResiduals(res *StageResults) {
	n := len(res.Resids)
	its := make([]float64, n)
	lr := make([]float64, n)
	for i, r := range res.Resids {
		its[i] = float64(i)
		lr[i] = math.Log10(r + 1e-20)
	}
	plt.Plot(its, lr, &plt.A{C: "b", M: "s", NoClip: true})
	plt.Gll("iteration", "$\\log_{10}(L_{\\delta u})$", nil)
}

// Draw saves the current figure to dirout/fnkey plus the extension selected
// by the plotting backend
func Draw(dirout, fnkey string) {
	plt.Save(dirout, fnkey)
}
