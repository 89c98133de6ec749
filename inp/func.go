// Copyright 2016 The Goaero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// FuncData holds function definition
type FuncData struct {
	Name string   `json:"name"` // name of function. ex: alpha, nload
	Type string   `json:"type"` // type of function. ex: cte, rmp, lin
	Prms dbf.Params `json:"prms"` // parameters
}

// FuncsData holds functions
type FuncsData []*FuncData

// Get returns function by name
//  Note: "zero" and "none" return a nil-safe zero function
func (o FuncsData) Get(name string) (fcn dbf.T, err error) {
	if name == "" || name == "zero" || name == "none" {
		return dbf.New("zero", nil), nil
	}
	for _, f := range o {
		if f.Name == name {
			return dbf.New(f.Type, f.Prms), nil
		}
	}
	err = chk.Err("cannot find function named %q\n", name)
	return
}
