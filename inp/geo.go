// Copyright 2016 The Goaero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
)

// Section holds the planform data of one spanwise breakpoint (root, kink or tip).
// Coordinates follow the body frame: x aft, y starboard, z up.
type Section struct {
	Eta   float64 `json:"eta"`   // normalised spanwise station; 0 ≤ η ≤ 1
	Xle   float64 `json:"xle"`   // leading edge x-coordinate
	Z     float64 `json:"z"`     // elevation due to dihedral
	Chord float64 `json:"chord"` // local chord
}

// Component holds the geometric and discretisation data of one aircraft component.
//
//            ·—————· tip (η=1)
//           / ←sweep
//          /      |
//     root ·——————· kink (η=ηk)
//      (η=0)
//
// Lifting surfaces (wing, htail, vtail, strut) are defined by breakpoint
// sections; the fuselage by a straight node line along x.
type Component struct {

	// input
	Name      string     `json:"name"`      // "wing", "htail", "vtail", "strut" or "fuselage"
	Symmetric bool       `json:"symmetric"` // mirrored about the x-z plane
	Vertical  bool       `json:"vertical"`  // stations run along z instead of y (vertical tail)
	Span      float64    `json:"span"`      // semi-span (or height/length for vertical/fuselage components)
	Sections  []*Section `json:"sections"`  // breakpoints ordered by increasing η
	Naero     int        `json:"naero"`     // number of aerodynamic nodes
	Nstruct   int        `json:"nstruct"`   // number of structural nodes
	Eaxis     float64    `json:"eaxis"`     // elastic axis chord fraction; 0 => 0.35
	Mat       string     `json:"mat"`       // material name

	// bar cross-section properties
	A   float64 `json:"a"`   // cross-sectional area
	Irr float64 `json:"irr"` // maximum principal moment of inertia
	Iss float64 `json:"iss"` // minimum principal moment of inertia
	Jtt float64 `json:"jtt"` // torsional constant
}

// Validate checks input data
func (o *Component) Validate() (err error) {
	if o.Span < 1e-10 {
		return chk.Err("span must be positive")
	}
	if o.Naero < 2 || o.Nstruct < 2 {
		return chk.Err("naero and nstruct must be at least 2: naero=%d nstruct=%d", o.Naero, o.Nstruct)
	}
	if len(o.Sections) < 2 {
		return chk.Err("at least root and tip sections are required")
	}
	for i, s := range o.Sections {
		if s.Chord < 1e-10 {
			return chk.Err("section %d has non-positive chord", i)
		}
		if i > 0 {
			if s.Eta <= o.Sections[i-1].Eta {
				return chk.Err("sections must be ordered by increasing eta")
			}
		}
	}
	if o.Sections[0].Eta > 1e-10 {
		return chk.Err("first section must be at eta=0")
	}
	if o.Sections[len(o.Sections)-1].Eta < 1.0-1e-10 {
		return chk.Err("last section must be at eta=1")
	}
	if o.Eaxis < 1e-10 {
		o.Eaxis = 0.35
	}
	return
}

// Interp interpolates planform data at the normalised station η by walking
// the breakpoint segments linearly
func (o *Component) Interp(η float64) (xle, z, chord float64) {
	n := len(o.Sections)
	if η <= o.Sections[0].Eta {
		s := o.Sections[0]
		return s.Xle, s.Z, s.Chord
	}
	for i := 1; i < n; i++ {
		a, b := o.Sections[i-1], o.Sections[i]
		if η <= b.Eta+1e-14 {
			k := (η - a.Eta) / (b.Eta - a.Eta)
			xle = (1.0-k)*a.Xle + k*b.Xle
			z = (1.0-k)*a.Z + k*b.Z
			chord = (1.0-k)*a.Chord + k*b.Chord
			return
		}
	}
	s := o.Sections[n-1]
	return s.Xle, s.Z, s.Chord
}

// Area returns the planform area of one side via the trapezoidal rule
// over the breakpoint segments
func (o *Component) Area() (area float64) {
	for i := 1; i < len(o.Sections); i++ {
		a, b := o.Sections[i-1], o.Sections[i]
		area += 0.5 * (a.Chord + b.Chord) * (b.Eta - a.Eta) * o.Span
	}
	return
}

// MeanChord returns the average geometric chord
func (o *Component) MeanChord() float64 {
	return o.Area() / o.Span
}

// IsLifting tells whether this component carries aerodynamic load
func (o *Component) IsLifting() bool {
	return o.Name != "fuselage"
}
