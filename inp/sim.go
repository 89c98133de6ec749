// Copyright 2016 The Goaero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	Matfile string `json:"matfile"` // materials file path
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/goaero
	Encoder string `json:"encoder"` // encoder name; e.g. "gob" or "json"
}

// FlightData holds the flight condition of the static analysis
type FlightData struct {

	// input
	V        float64 `json:"v"`        // true airspeed [m/s]
	Rho      float64 `json:"rho"`      // air density [kg/m³]
	AlphaFcn string  `json:"alpha"`    // function name: angle of attack [deg] versus stage time
	NloadFcn string  `json:"nload"`    // function name: load factor versus stage time
	Grav     float64 `json:"grav"`     // gravity constant; 0 => 9.81

	// derived
	Falpha dbf.T // alpha(t) function
	Fnload dbf.T // n(t) function
}

// Qinf returns the dynamic pressure
func (o *FlightData) Qinf() float64 {
	return 0.5 * o.Rho * o.V * o.V
}

// SolverData holds aerostructural solver data
type SolverData struct {

	// fixed-point iterations
	Type    string  `json:"type"`    // solver type: "fixpoint" or "oneway"
	Method  string  `json:"method"`  // displacements transfer method: "linear" or "rigid"
	NmaxIt  int     `json:"nmaxit"`  // number of max iterations
	Atol    float64 `json:"atol"`    // absolute tolerance on structural displacements
	Rtol    float64 `json:"rtol"`    // relative tolerance on structural displacements
	Relax   float64 `json:"relax"`   // under-relaxation coefficient applied to mesh updates
	DvgCtrl bool    `json:"dvgctrl"` // use divergence control
	NdvgMax int     `json:"ndvgmax"` // max number of continued divergence
	ShowR   bool    `json:"showr"`   // show residuals table

	// structural backend
	Struct string `json:"struct"` // structural solver: "beam" (native) or "mystran"

	// derived
	Itol float64 // iterations tolerance
}

// SetDefault sets default values
func (o *SolverData) SetDefault() {
	o.Type = "fixpoint"
	o.Method = "linear"
	o.NmaxIt = 20
	o.Atol = 1e-6
	o.Rtol = 1e-8
	o.Relax = 1.0
	o.NdvgMax = 5
	o.Struct = "beam"
}

// PostProcess sets derived quantities
func (o *SolverData) PostProcess() {
	o.Itol = 1.0 // VecRmsError already embeds Atol and Rtol
	if o.Relax < 1e-3 || o.Relax > 1.0 {
		o.Relax = 1.0
	}
}

// LinSolData holds data for linear solvers
type LinSolData struct {
	Name      string `json:"name"`      // "umfpack" or "mumps"
	Symmetric bool   `json:"symmetric"` // use symmetric solver
	Verbose   bool   `json:"verbose"`   // verbose?
	Ordering  string `json:"ordering"`  // ordering scheme (MUMPS only)
	Scaling   string `json:"scaling"`   // scaling scheme (MUMPS only)
}

// SetDefault sets default values
func (o *LinSolData) SetDefault() {
	o.Name = "umfpack"
}

// ExtCodesData holds paths and policies for the external aerodynamic/structural codes
type ExtCodesData struct {
	Avl         string `json:"avl"`         // path to the AVL executable
	Mystran     string `json:"mystran"`     // path to the MYSTRAN executable
	KeepScratch bool   `json:"keepscratch"` // do not remove scratch directories after each call
	ScratchRoot string `json:"scratchroot"` // root for scratch directories; "" => system default
}

// Stage holds one load case of the analysis
type Stage struct {
	Desc string  `json:"desc"` // description of load case. ex: cruise, pull-up
	T    float64 `json:"t"`    // pseudo-time at which alpha(t) and n(t) are evaluated
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data       Data         `json:"data"`       // global data
	Flight     FlightData   `json:"flight"`     // flight condition
	Solver     SolverData   `json:"solver"`     // solver data
	LinSol     LinSolData   `json:"linsol"`     // linear solver data
	ExtCodes   ExtCodesData `json:"extcodes"`   // external codes data
	Functions  FuncsData    `json:"functions"`  // alpha/load-factor functions
	Stages     []*Stage     `json:"stages"`     // load cases
	Components []*Component `json:"components"` // aircraft components

	// derived
	Ndim      int    // space dimension (always 3)
	Key       string // simulation key; e.g. mysim01.sim => mysim01
	DirOut    string // output directory
	EncType   string // encoder type
	MatParams *MatDb // materials' parameters
}

// Wing returns the wing component
func (o *Simulation) Wing() *Component {
	for _, c := range o.Components {
		if c.Name == "wing" {
			return c
		}
	}
	return nil
}

// RefDims returns the aerodynamic reference dimensions computed from the wing planform
func (o *Simulation) RefDims() (sref, cref, bref float64) {
	w := o.Wing()
	if w == nil {
		chk.Panic("simulation must have a %q component", "wing")
	}
	sref = w.Area()
	bref = w.Span
	if w.Symmetric {
		sref *= 2.0
		bref *= 2.0
	}
	cref = sref / bref
	return
}

// GetStage returns stage number istage or nil
func (o *Simulation) GetStage(istage int) *Stage {
	if istage < 0 || istage >= len(o.Stages) {
		return nil
	}
	return o.Stages[istage]
}

// ReadSim reads all simulation data from a .sim JSON file
//  Note: returns nil on errors
func ReadSim(simfilepath string, erasePrev bool) *Simulation {

	// new sim
	var o Simulation
	o.Ndim = 3

	// read file
	b := io.ReadFile(simfilepath)

	// set default values
	o.Solver.SetDefault()
	o.LinSol.SetDefault()

	// decode
	err := json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("ReadSim: cannot unmarshal simulation file %q", simfilepath)
	}

	// input directory and filename key
	dir := filepath.Dir(simfilepath)
	fn := filepath.Base(simfilepath)
	dir = os.ExpandEnv(dir)
	o.Key = io.FnKey(fn)

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/goaero/" + o.Key
	}

	// encoder type
	o.EncType = o.Data.Encoder
	if o.EncType != "gob" && o.EncType != "json" {
		o.EncType = "gob"
	}

	// create directory
	err = os.MkdirAll(o.DirOut, 0777)
	if err != nil {
		chk.Panic("cannot create directory for output results (%s): %v", o.DirOut, err)
	}

	// erase previous simulation results
	if erasePrev {
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, o.Key))
	}

	// set solver constants
	o.Solver.PostProcess()

	// gravity default
	if o.Flight.Grav < 1e-10 {
		o.Flight.Grav = 9.81
	}

	// flight condition functions
	o.Flight.Falpha, err = o.Functions.Get(o.Flight.AlphaFcn)
	if err != nil {
		chk.Panic("cannot get alpha function: %v", err)
	}
	o.Flight.Fnload, err = o.Functions.Get(o.Flight.NloadFcn)
	if err != nil {
		chk.Panic("cannot get load factor function: %v", err)
	}

	// default stage
	if len(o.Stages) == 0 {
		o.Stages = []*Stage{{Desc: "nominal", T: 0}}
	}

	// validate components
	if len(o.Components) == 0 {
		chk.Panic("at least one component must be defined in %q", simfilepath)
	}
	for _, c := range o.Components {
		err = c.Validate()
		if err != nil {
			chk.Panic("component %q is invalid:\n%v", c.Name, err)
		}
	}

	// read materials
	if o.Data.Matfile != "" {
		o.MatParams, err = ReadMat(dir, o.Data.Matfile)
		if err != nil {
			chk.Panic("cannot read materials file:\n%v", err)
		}
	}

	// results
	return &o
}
