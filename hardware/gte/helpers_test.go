// This file is part of Gopherpsx.
//
// Gopherpsx is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherpsx is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherpsx.  If not, see <https://www.gnu.org/licenses/>.

package gte_test

import (
	"testing"

	"github.com/jetsetilly/gopherpsx/hardware/gte"
	"github.com/jetsetilly/gopherpsx/test"
)

// command word fields
const (
	cop2 = 0x4a000000
	sf   = 0x00080000
	lm   = 0x00000400
)

var identity = gte.Matrix{
	{0x1000, 0, 0},
	{0, 0x1000, 0},
	{0, 0, 0x1000},
}

func command(t *testing.T, g *gte.GTE, cmd uint32) {
	t.Helper()
	if !g.Command(cmd) {
		t.Fatalf("command not recognised (%08x)", cmd)
	}
}

// MAC1 to MAC3 and IR1 to IR3 must be equal to the three values
func expectResult(t *testing.T, g *gte.GTE, mac [3]int32, ir [3]int16, flag uint32) {
	t.Helper()
	test.ExpectEquality(t, [3]int32{g.MAC[1], g.MAC[2], g.MAC[3]}, mac, "mac")
	test.ExpectEquality(t, [3]int16{g.IR[1], g.IR[2], g.IR[3]}, ir, "ir")
	if !test.ExpectEquality(t, g.FLAG, flag, "flag") {
		t.Logf("flag: %s", gte.FlagString(g.FLAG))
	}
}

// a GTE with a light source, light color and color registers
func lighting() *gte.GTE {
	g := gte.NewGTE(nil)
	g.V[0] = gte.Vector16{0, 0, 0x1000}
	g.V[1] = gte.Vector16{0x1000, 0, 0}
	g.V[2] = gte.Vector16{0, 0x1000, 0}
	g.L = gte.Matrix{
		{0, 0, 0x1000},
		{0, 0x1000, 0},
		{0x1000, 0, 0},
	}
	g.LR = gte.Matrix{
		{0x1000, 0, 0},
		{0, 0x800, 0},
		{0, 0, 0x400},
	}
	g.BK = gte.Vector32{0x10, 0x20, 0x30}
	g.FC = gte.Vector32{0x100, 0x80, 0x40}
	g.RGBC = 0x30804020
	g.IR[0] = 0x800
	return g
}
