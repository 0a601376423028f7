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
	"strings"
	"testing"

	"github.com/jetsetilly/gopherpsx/hardware/gte"
	"github.com/jetsetilly/gopherpsx/test"
)

func TestSQR(t *testing.T) {
	g := gte.NewGTE(nil)
	g.Write(gte.IR1, 100)
	g.Write(gte.IR2, 0xffffff9c)
	g.Write(gte.IR3, 0)

	command(t, g, cop2|sf|0x28)
	expectResult(t, g, [3]int32{2, 2, 0}, [3]int16{2, 2, 0}, 0)

	g.IR = [4]int16{0, 100, -200, 0x7fff}
	command(t, g, cop2|0x28)
	expectResult(t, g, [3]int32{10000, 40000, 0x3fff0001}, [3]int16{10000, 0x7fff, 0x7fff},
		gte.FlagError|gte.FlagIR2Saturated|gte.FlagIR3Saturated)
}

func TestOP(t *testing.T) {
	g := gte.NewGTE(nil)
	g.RT = gte.Matrix{
		{0x1000, 0, 0},
		{0, 0x2000, 0},
		{0, 0, 0x3000},
	}
	g.IR = [4]int16{0, 1, 1, 1}

	command(t, g, cop2|0x0c)
	expectResult(t, g, [3]int32{-4096, 8192, -4096}, [3]int16{-4096, 8192, -4096}, 0)

	g.IR = [4]int16{0, 1, 1, 1}
	command(t, g, cop2|sf|lm|0x0c)
	expectResult(t, g, [3]int32{-1, 2, -1}, [3]int16{0, 2, 0},
		gte.FlagError|gte.FlagIR1Saturated|gte.FlagIR3Saturated)
}

func TestGeneralPurpose(t *testing.T) {
	g := lighting()
	g.IR[1] = 0x800
	g.IR[2] = 0x400
	g.IR[3] = -0x200
	command(t, g, cop2|sf|0x3d)
	expectResult(t, g, [3]int32{1024, 512, -256}, [3]int16{1024, 512, -256}, gte.FlagBlueSaturated)
	test.ExpectEquality(t, g.RGB[2], 0x30002040)

	g = lighting()
	g.MAC = [4]int32{0, 0x10, 0x20, 0x30}
	g.IR[1] = 0x800
	g.IR[2] = 0x400
	g.IR[3] = 0x200
	command(t, g, cop2|sf|0x3e)
	expectResult(t, g, [3]int32{1040, 544, 304}, [3]int16{1040, 544, 304}, 0)
	test.ExpectEquality(t, g.RGB[2], 0x30132241)

	g = lighting()
	g.MAC = [4]int32{0, 0x10, 0x20, 0x30}
	g.IR[1] = 8
	g.IR[2] = 4
	g.IR[3] = 2
	command(t, g, cop2|0x3e)
	expectResult(t, g, [3]int32{16400, 8224, 4144}, [3]int16{16400, 8224, 4144},
		gte.FlagRedSaturated|gte.FlagGreenSaturated|gte.FlagBlueSaturated)
	test.ExpectEquality(t, g.RGB[2], 0x30ffffff)
}

func mvmva() *gte.GTE {
	g := lighting()
	g.RT = gte.Matrix{
		{0x1000, 0x100, 0},
		{0, 0x1000, 0x200},
		{0x300, 0, 0x1000},
	}
	g.TR = gte.Vector32{1, 2, 3}
	g.IR[1] = 0x100
	g.IR[2] = -0x200
	g.IR[3] = 0x300
	return g
}

func TestMVMVA(t *testing.T) {
	vectors := []struct {
		asm string
		mac [3]int32
	}{
		{"rt v0 tr", [3]int32{1, 514, 4099}},
		{"rt ir none", [3]int32{224, -416, 816}},
		{"llm v1 bk", [3]int32{16, 32, 4144}},
		{"lcm v2 tr", [3]int32{1, 2050, 3}},
		{"bad ir none", [3]int32{288, 0, 512}},
		{"rt v0 fc", [3]int32{0, 512, 4096}},
		{"rt ir fc", [3]int32{-32, -416, 768}},
	}

	for _, v := range vectors {
		ins, err := gte.Assemble(append([]string{"MVMVA", "sf"}, strings.Fields(v.asm)...))
		test.DemandSuccess(t, err)

		g := mvmva()
		command(t, g, ins.Encode())
		test.ExpectEquality(t, [3]int32{g.MAC[1], g.MAC[2], g.MAC[3]}, v.mac, v.asm)
		test.ExpectEquality(t, [3]int16{g.IR[1], g.IR[2], g.IR[3]}, [3]int16{int16(v.mac[0]), int16(v.mac[1]), int16(v.mac[2])}, v.asm)
		test.ExpectEquality(t, g.FLAG, 0, v.asm)
	}
}

func TestMVMVASaturation(t *testing.T) {
	g := mvmva()
	ins, err := gte.Assemble([]string{"MVMVA", "lm", "rt", "ir", "tr"})
	test.DemandSuccess(t, err)
	command(t, g, ins.Encode())
	expectResult(t, g, [3]int32{921600, -1695744, 3354624}, [3]int16{0x7fff, 0, 0x7fff},
		gte.FlagError|gte.FlagIR1Saturated|gte.FlagIR2Saturated|gte.FlagIR3Saturated)
}

// the product of the first column is lost when the far color is selected but
// still sets the IR flags
func TestMVMVAFarColor(t *testing.T) {
	g := mvmva()
	g.FC = gte.Vector32{0x100000, 0, 0}
	ins, err := gte.Assemble([]string{"MVMVA", "sf", "rt", "v0", "fc"})
	test.DemandSuccess(t, err)
	command(t, g, ins.Encode())
	expectResult(t, g, [3]int32{0, 512, 4096}, [3]int16{0, 512, 4096}, gte.FlagError|gte.FlagIR1Saturated)
}

// IR1 to IR3 are always within the range selected by lm and are only
// different to MAC1 to MAC3 when the saturation flag is set
func TestIRRange(t *testing.T) {
	g := gte.NewGTE(nil)

	for n := 0; n < gte.NumRegisters; n++ {
		g.Write(n, uint32(n)*0x01234567^0x89abcdef)
	}

	saturated := [4]uint32{0, gte.FlagIR1Saturated, gte.FlagIR2Saturated, gte.FlagIR3Saturated}

	for op := uint32(0); op < 0x40; op++ {
		switch gte.Opcode(op) {
		case gte.OpNCLIP, gte.OpAVSZ3, gte.OpAVSZ4:
			// IR is not written
			continue
		}
		if !gte.Opcode(op).Valid() {
			continue
		}
		for _, mod := range []uint32{0, sf, lm, sf | lm} {
			cmd := cop2 | mod | op
			command(t, g, cmd)

			lo := int32(-0x8000)
			if mod&lm == lm {
				lo = 0
			}

			for i := 1; i <= 3; i++ {
				mac := g.MAC[i]
				ir := int32(g.IR[i])
				if ir < lo || ir > 0x7fff {
					t.Errorf("%s: IR%d out of range (%d)", gte.Decode(cmd), i, ir)
				}

				want := min(max(mac, lo), 0x7fff)
				if ir != want {
					t.Errorf("%s: IR%d is %d but MAC%d is %d", gte.Decode(cmd), i, ir, i, mac)
				}

				// without sf the IR3 flag of a perspective transform is
				// taken from MAC3 >> 12
				opcode := gte.Opcode(op)
				if i == 3 && mod&sf == 0 && (opcode == gte.OpRTPS || opcode == gte.OpRTPT) {
					continue
				}

				if want != mac && g.FLAG&saturated[i] == 0 {
					t.Errorf("%s: IR%d saturated without flag", gte.Decode(cmd), i)
				}
			}
		}
	}
}
