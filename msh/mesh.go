// Copyright 2016 The Goaero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msh implements the aerodynamic and structural meshes of aircraft components
package msh

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// mesh kinds
const (
	KindAero   = "aero"   // lightweight aerodynamic mesh: 3 translational dofs per node
	KindStruct = "struct" // structural mesh: 3 translations + 3 rotations per node
)

// Node is a point of a mesh
type Node struct {
	Id int       // index in mesh; fixed once the mesh is generated
	X  []float64 // [3] coordinates
}

// Mesh holds an ordered and immutable set of nodes representing one aircraft
// component. Node count and ordering are fixed once set by the generators.
type Mesh struct {
	CompName  string    // component name. ex: wing, htail
	Kind      string    // KindAero or KindStruct
	Symmetric bool      // component is mirrored about the x-z plane; mesh holds the y ≥ 0 half
	Nodes     []*Node   // all nodes, ordered root to tip
	Stations  []float64 // [nn] normalised spanwise station η of each node
	Chords    []float64 // [nn] local chord at each node (aerodynamic meshes only)
}

// Nn returns the number of nodes
func (o *Mesh) Nn() int { return len(o.Nodes) }

// Ndof returns the number of dofs per node
func (o *Mesh) Ndof() int {
	if o.Kind == KindStruct {
		return 6
	}
	return 3
}

// Clone returns a deep copy of this mesh
func (o *Mesh) Clone() (m *Mesh) {
	m = &Mesh{CompName: o.CompName, Kind: o.Kind, Symmetric: o.Symmetric}
	m.Nodes = make([]*Node, len(o.Nodes))
	m.Stations = make([]float64, len(o.Stations))
	copy(m.Stations, o.Stations)
	if o.Chords != nil {
		m.Chords = make([]float64, len(o.Chords))
		copy(m.Chords, o.Chords)
	}
	for i, n := range o.Nodes {
		x := make([]float64, 3)
		copy(x, n.X)
		m.Nodes[i] = &Node{Id: n.Id, X: x}
	}
	return
}

// Deformed returns a copy of this (aerodynamic) mesh with coordinates updated
// by the flattened displacement vector u = {ux0,uy0,uz0, ux1, ...}
func (o *Mesh) Deformed(u []float64) (m *Mesh, err error) {
	if o.Kind != KindAero {
		return nil, chk.Err("Deformed works with aerodynamic meshes only")
	}
	if len(u) != 3*o.Nn() {
		return nil, chk.Err("displacement vector has wrong size: %d != %d", len(u), 3*o.Nn())
	}
	m = o.Clone()
	for i, n := range m.Nodes {
		for j := 0; j < 3; j++ {
			n.X[j] += u[3*i+j]
		}
	}
	return
}

// Dist returns the Euclidean distance between node i of this mesh and point x
func (o *Mesh) Dist(i int, x []float64) float64 {
	dx := o.Nodes[i].X[0] - x[0]
	dy := o.Nodes[i].X[1] - x[1]
	dz := o.Nodes[i].X[2] - x[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// CheckCompat checks whether two meshes describe the same component
func CheckCompat(am, sm *Mesh) (err error) {
	if am.Kind != KindAero || sm.Kind != KindStruct {
		return chk.Err("meshes have wrong kinds: %q and %q", am.Kind, sm.Kind)
	}
	if am.CompName != sm.CompName {
		return chk.Err("meshes belong to different components: %q and %q", am.CompName, sm.CompName)
	}
	if am.Symmetric != sm.Symmetric {
		return chk.Err("meshes disagree on symmetry for component %q", am.CompName)
	}
	if am.Nn() < 2 || sm.Nn() < 2 {
		return chk.Err("meshes must have at least 2 nodes each")
	}
	return
}
