// Copyright 2016 The Goaero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Material holds material data
type Material struct {

	// input
	Name  string   `json:"name"`  // name of material
	Model string   `json:"model"` // name of model; e.g. "elast"
	Extra string   `json:"extra"` // extra information about this material
	Prms  dbf.Params `json:"prms"`  // E, G, nu, rho, qy parameters
}

// GetPrm returns the value of a named parameter; ok tells whether it was found
func (o *Material) GetPrm(name string) (val float64, ok bool) {
	for _, p := range o.Prms {
		if p.N == name {
			return p.V, true
		}
	}
	return
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {
	Materials MatsData `json:"materials"` // all materials
}

// Get returns a material by name or nil
func (o *MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// ReadMat reads all materials data from a .mat JSON file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {

	// new database
	mdb = new(MatDb)

	// read file
	b := io.ReadFile(filepath.Join(dir, fn))

	// decode
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return nil, chk.Err("cannot unmarshal materials file %q:\n%v", fn, err)
	}
	return
}

// String prints one materials file
func (o MatsData) String() string {
	b, _ := json.MarshalIndent(map[string]MatsData{"materials": o}, "", "  ")
	return string(b)
}
