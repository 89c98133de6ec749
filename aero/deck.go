// Copyright 2016 The Goaero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aero

import (
	"strings"

	"github.com/cpmech/goaero/msh"
	"github.com/cpmech/gosl/io"
)

// GeomDeck serialises the aerodynamic meshes into one AVL geometry deck.
// Each mesh becomes one SURFACE; each aero node becomes one SECTION on the
// quarter-chord line, with a single vortex strip between consecutive
// sections so that the strip count of a surface is Nn-1. Symmetric
// components carry a YDUPLICATE card; the image side is kept out of the
// strip-forces accounting since the structural model holds the y ≥ 0 half.
func GeomDeck(meshes []*msh.Mesh, sref, cref, bref float64) string {
	var b strings.Builder
	b.WriteString("goaero configuration\n")
	b.WriteString("#Mach\n")
	b.WriteString(" 0.0\n")
	b.WriteString("#IYsym  IZsym  Zsym\n")
	b.WriteString(" 0      0      0.0\n")
	b.WriteString("#Sref   Cref   Bref\n")
	b.WriteString(io.Sf(" %.5f  %.5f  %.5f\n", sref, cref, bref))
	b.WriteString("#Xref   Yref   Zref\n")
	b.WriteString(" 0.0    0.0    0.0\n")
	for _, m := range meshes {
		b.WriteString("#" + strings.Repeat("=", 60) + "\n")
		b.WriteString("SURFACE\n")
		b.WriteString(m.CompName + "\n")
		b.WriteString("#Nchord  Cspace\n")
		b.WriteString(" 8       1.0\n")
		if m.Symmetric {
			b.WriteString("YDUPLICATE\n")
			b.WriteString(" 0.0\n")
		}
		for i, nod := range m.Nodes {
			chord := m.Chords[i]
			xle := nod.X[0] - 0.25*chord
			b.WriteString("SECTION\n")
			b.WriteString("#Xle      Yle      Zle      Chord    Ainc  Nspan  Sspace\n")
			b.WriteString(io.Sf(" %.6f  %.6f  %.6f  %.6f  0.0   1      0\n",
				xle, nod.X[1], nod.X[2], chord))
		}
	}
	return b.String()
}
