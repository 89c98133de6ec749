// Copyright 2016 The Goaero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aero

import (
	"math"
	"strconv"
	"strings"

	"github.com/cpmech/goaero/msh"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// width of the numeric field following an anchor in AVL output
const anchorWidth = 12

// Strip holds one row of the AVL strip-forces table
type Strip struct {
	J     int     // strip index as printed by AVL (1-based)
	Xle   float64 // strip leading edge x
	Yle   float64 // strip leading edge y
	Zle   float64 // strip leading edge z
	Chord float64 // strip chord
	Area  float64 // strip area
	Cl    float64 // strip lift coefficient
	Cd    float64 // strip drag coefficient
	Cm    float64 // strip pitching moment coefficient about c/4
}

// ParseTotals extracts the total coefficients from the AVL total-forces
// output using anchor strings and fixed column offsets
func ParseTotals(text string) (c Coeffs, err error) {
	c.Alpha, err = anchored(text, "Alpha =")
	if err != nil {
		return
	}
	c.CLtot, err = anchored(text, "CLtot =")
	if err != nil {
		return
	}
	c.CDind, err = anchored(text, "CDind =")
	return
}

// anchored returns the number found right after the first occurrence of
// anchor, reading a fixed-width column
func anchored(text, anchor string) (val float64, err error) {
	i := strings.Index(text, anchor)
	if i < 0 {
		return 0, chk.Err("cannot find anchor %q in AVL output", anchor)
	}
	lo := i + len(anchor)
	hi := lo + anchorWidth
	if hi > len(text) {
		hi = len(text)
	}
	field := strings.TrimSpace(text[lo:hi])
	if j := strings.IndexAny(field, " \n"); j > 0 {
		field = field[:j]
	}
	val, e := strconv.ParseFloat(field, 64)
	if e != nil {
		return 0, chk.Err("cannot parse number after anchor %q: %v", anchor, e)
	}
	return
}

// SurfaceStrips holds the strip-forces rows of one surface
type SurfaceStrips struct {
	Name   string   // surface name as printed in the header
	Image  bool     // mirror-side surface generated by a YDUPLICATE card
	Strips []*Strip // rows, in spanwise order
}

// ParseStrips extracts the strip-forces tables, one per surface. Surfaces are
// recognised by their "Surface #" header lines; image surfaces created by
// YDUPLICATE cards carry the "(YDUP)" suffix in their name. Strip rows are
// recognised by their leading integer strip index followed by at least 12
// numeric columns:
//
//   j   Xle   Yle   Zle   Chord  Area  c_cl  ai  cl_norm  cl  cd  cdv  cm_c/4
//
func ParseStrips(text string) (surfs []*SurfaceStrips, err error) {
	var cur *SurfaceStrips
	for _, line := range strings.Split(text, "\n") {
		if i := strings.Index(line, "Surface #"); i >= 0 {
			f := strings.Fields(line[i+len("Surface #"):])
			name := ""
			if len(f) > 1 {
				name = strings.Join(f[1:], " ")
			}
			cur = &SurfaceStrips{Name: name, Image: strings.Contains(name, "(YDUP)")}
			surfs = append(surfs, cur)
			continue
		}
		f := strings.Fields(line)
		if len(f) < 13 {
			continue
		}
		j, e := strconv.Atoi(f[0])
		if e != nil {
			continue
		}
		vals := make([]float64, 12)
		ok := true
		for k := 0; k < 12; k++ {
			vals[k], e = strconv.ParseFloat(f[1+k], 64)
			if e != nil {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		if cur == nil {
			return nil, chk.Err("found a strip-forces row before any surface header")
		}
		cur.Strips = append(cur.Strips, &Strip{
			J: j, Xle: vals[0], Yle: vals[1], Zle: vals[2],
			Chord: vals[3], Area: vals[4],
			Cl: vals[8], Cd: vals[9], Cm: vals[11],
		})
	}
	if len(surfs) == 0 {
		err = chk.Err("cannot find any surface in AVL strip-forces output")
	}
	return
}

// StripsForMeshes pairs the parsed surfaces with the aero meshes, in order.
// Image surfaces carry loads already accounted for by the symmetry of the
// structural model and are skipped.
func StripsForMeshes(surfs []*SurfaceStrips, meshes []*msh.Mesh) (strips [][]*Strip, err error) {
	strips = make([][]*Strip, len(meshes))
	pos := 0
	for i, m := range meshes {
		for pos < len(surfs) && surfs[pos].Image {
			pos++
		}
		if pos >= len(surfs) {
			return nil, chk.Err("AVL returned %d surfaces; not enough for %d meshes", len(surfs), len(meshes))
		}
		s := surfs[pos]
		if len(s.Strips) != m.Nn()-1 {
			return nil, chk.Err("surface %q has %d strips; component %q needs %d", s.Name, len(s.Strips), m.CompName, m.Nn()-1)
		}
		strips[i] = s.Strips
		pos++
	}
	return
}

// NodalLoads converts the dimensionless strip data into dimensional loads at
// the aero nodes of mesh m. Strip k lies between nodes k and k+1; its force
// acts at the strip quarter-chord point and is split 50/50 between the two
// end nodes with the lever-arm moment correction keeping the resultant
// unchanged.
func NodalLoads(m *msh.Mesh, strips []*Strip, qinf, alphaDeg float64) (F [][]float64) {
	F = make([][]float64, m.Nn())
	for i := range F {
		F[i] = make([]float64, 6)
	}
	ca := math.Cos(alphaDeg * math.Pi / 180.0)
	sa := math.Sin(alphaDeg * math.Pi / 180.0)
	lever := make([]float64, 3)
	mc := make([]float64, 3)
	for k, s := range strips {
		if k+1 >= m.Nn() {
			break
		}
		lift := qinf * s.Area * s.Cl
		drag := qinf * s.Area * s.Cd
		fx := drag*ca - lift*sa
		fz := lift*ca + drag*sa
		my := qinf * s.Area * s.Chord * s.Cm
		xcp := []float64{s.Xle + 0.25*s.Chord, s.Yle, s.Zle}
		half := []float64{0.5 * fx, 0, 0.5 * fz}
		for _, n := range []int{k, k + 1} {
			for i := 0; i < 3; i++ {
				lever[i] = xcp[i] - m.Nodes[n].X[i]
			}
			utl.Cross3d(mc, lever, half) // mc := lever cross F/2
			for i := 0; i < 3; i++ {
				F[n][i] += half[i]
				F[n][3+i] += mc[i]
			}
			F[n][4] += 0.5 * my
		}
	}
	return
}

// TotalLift sums the z-components of the nodal loads
func TotalLift(F [][]float64) (sum float64) {
	for _, f := range F {
		sum += f[2]
	}
	return
}

// report formatting helper used by the solvers when ShowR is on
func CoeffsTable(c Coeffs) string {
	return io.Sf("%v\n", io.ArgsTable("TOTAL COEFFICIENTS",
		"angle of attack", "Alpha", c.Alpha,
		"lift coefficient", "CLtot", c.CLtot,
		"induced drag coefficient", "CDind", c.CDind,
	))
}
