// Copyright 2016 The Goaero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package str

import (
	"math"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// F06 section markers
const (
	markerDisp   = "D I S P L A C E M E N T   V E C T O R"
	markerStress = "S T R E S S E S   I N   B A R   E L E M E N T S"
)

// ParseF06Disp extracts the nodal displacement vector from an F06 output.
// Rows of the displacement table read:
//
//   POINT-ID  TYPE  T1  T2  T3  R1  R2  R3
//
// and are mapped to the flattened vector us[6·(id-1):6·id].
func ParseF06Disp(text string, nn int) (us []float64, err error) {
	i := strings.Index(text, markerDisp)
	if i < 0 {
		return nil, chk.Err("cannot find displacement vector section in F06 output")
	}
	us = make([]float64, 6*nn)
	found := 0
	for _, line := range strings.Split(text[i:], "\n") {

		// stop at the next section
		if strings.Contains(line, "S T R E S S") || strings.Contains(line, "F O R C E") {
			break
		}
		f := strings.Fields(line)
		if len(f) != 8 || f[1] != "G" {
			continue
		}
		id, e := strconv.Atoi(f[0])
		if e != nil || id < 1 || id > nn {
			continue
		}
		ok := true
		for k := 0; k < 6; k++ {
			us[6*(id-1)+k], e = strconv.ParseFloat(f[2+k], 64)
			if e != nil {
				ok = false
				break
			}
		}
		if !ok {
			return nil, chk.Err("cannot parse displacement row %q", line)
		}
		found++
	}
	if found != nn {
		return nil, chk.Err("displacement table has %d rows; need %d", found, nn)
	}
	return
}

// ParseF06MaxStress scans the bar stresses section and returns the largest
// absolute stress value found. Returns zero (and no error) when the section
// is absent, since stress output is optional.
func ParseF06MaxStress(text string) (smax float64, err error) {
	i := strings.Index(text, markerStress)
	if i < 0 {
		return 0, nil
	}
	for _, line := range strings.Split(text[i:], "\n") {
		f := strings.Fields(line)
		if len(f) < 3 {
			continue
		}
		if _, e := strconv.Atoi(f[0]); e != nil {
			continue
		}
		for _, tok := range f[1:] {
			v, e := strconv.ParseFloat(tok, 64)
			if e != nil {
				continue
			}
			if a := math.Abs(v); a > smax {
				smax = a
			}
		}
	}
	return
}
