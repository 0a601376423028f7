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

func TestNormalColor(t *testing.T) {
	g := lighting()
	command(t, g, cop2|sf|0x1e)
	expectResult(t, g, [3]int32{4112, 32, 48}, [3]int16{4112, 32, 48}, gte.FlagRedSaturated)
	test.ExpectEquality(t, g.RGB, [3]uint32{0, 0, 0x300302ff})

	g = lighting()
	command(t, g, cop2|sf|0x20)
	expectResult(t, g, [3]int32{16, 2080, 48}, [3]int16{16, 2080, 48}, gte.FlagRedSaturated)
	test.ExpectEquality(t, g.RGB, [3]uint32{0x300302ff, 0x30430201, 0x30038201})
}

func TestNormalColorColor(t *testing.T) {
	g := lighting()
	command(t, g, cop2|sf|0x1b)
	expectResult(t, g, [3]int32{514, 8, 24}, [3]int16{514, 8, 24}, 0)
	test.ExpectEquality(t, g.RGB, [3]uint32{0, 0, 0x30010020})

	g = lighting()
	command(t, g, cop2|sf|0x3f)
	expectResult(t, g, [3]int32{2, 520, 24}, [3]int16{2, 520, 24}, 0)
	test.ExpectEquality(t, g.RGB, [3]uint32{0x30010020, 0x30210000, 0x30012000})
}

func TestNormalColorDepthCue(t *testing.T) {
	g := lighting()
	command(t, g, cop2|sf|0x13)
	expectResult(t, g, [3]int32{385, 68, 44}, [3]int16{385, 68, 44}, 0)
	test.ExpectEquality(t, g.RGB, [3]uint32{0, 0, 0x30020418})

	g = lighting()
	command(t, g, cop2|sf|0x16)
	expectResult(t, g, [3]int32{129, 324, 44}, [3]int16{129, 324, 44}, 0)
	test.ExpectEquality(t, g.RGB, [3]uint32{0x30020418, 0x30120408, 0x30021408})
}

// NCDS differs from NCCS by the depth cue towards the far color
func TestDepthCueDifference(t *testing.T) {
	a := lighting()
	b := lighting()
	command(t, a, cop2|sf|0x13)
	command(t, b, cop2|sf|0x1b)
	test.ExpectInequality(t, a.RGB[2], b.RGB[2])

	// with IR0 at zero the far color has no influence
	a = lighting()
	b = lighting()
	a.IR[0] = 0
	command(t, a, cop2|sf|0x13)
	command(t, b, cop2|sf|0x1b)
	test.ExpectEquality(t, a.RGB[2], b.RGB[2])
}

func TestColorColor(t *testing.T) {
	g := lighting()
	g.IR[1] = 0x1000
	g.IR[2] = 0x800
	g.IR[3] = 0x400
	command(t, g, cop2|sf|0x1c)
	expectResult(t, g, [3]int32{514, 264, 152}, [3]int16{514, 264, 152}, 0)
	test.ExpectEquality(t, g.RGB[2], 0x30091020)

	g = lighting()
	g.IR[1] = 0x1000
	g.IR[2] = 0x800
	g.IR[3] = 0x400
	command(t, g, cop2|sf|0x14)
	expectResult(t, g, [3]int32{385, 196, 108}, [3]int16{385, 196, 108}, 0)
	test.ExpectEquality(t, g.RGB[2], 0x30060c18)
}

func TestDepthCue(t *testing.T) {
	g := lighting()
	command(t, g, cop2|sf|0x10)
	expectResult(t, g, [3]int32{384, 576, 1056}, [3]int16{384, 576, 1056}, 0)
	test.ExpectEquality(t, g.RGB[2], 0x30422418)

	// DPCT works on the FIFO and not on RGBC
	g = lighting()
	g.RGB = [3]uint32{0x00102030, 0x00405060, 0x00708090}
	command(t, g, cop2|sf|0x2a)
	expectResult(t, g, [3]int32{1280, 1088, 928}, [3]int16{1280, 1088, 928}, 0)
	test.ExpectEquality(t, g.RGB, [3]uint32{0x300a1420, 0x30222c38, 0x303a4450})

	g = lighting()
	g.IR[1] = 0x1000
	g.IR[2] = 0x800
	g.IR[3] = 0x400
	command(t, g, cop2|sf|0x29)
	expectResult(t, g, [3]int32{384, 320, 288}, [3]int16{384, 320, 288}, 0)
	test.ExpectEquality(t, g.RGB[2], 0x30121418)
}

func TestInterpolate(t *testing.T) {
	g := lighting()
	g.IR[1] = 0x800
	g.IR[2] = 0x400
	g.IR[3] = 0x200
	command(t, g, cop2|sf|0x11)
	expectResult(t, g, [3]int32{1152, 576, 288}, [3]int16{1152, 576, 288}, 0)
	test.ExpectEquality(t, g.RGB[2], 0x30122448)

	// IR1 saturates to zero with lm. the red channel of the color saturates
	g = lighting()
	g.IR[1] = -0x800
	g.IR[2] = 0x400
	g.IR[3] = 0x200
	g.FC = gte.Vector32{-0x1000, 0, 0}
	command(t, g, cop2|sf|lm|0x11)
	expectResult(t, g, [3]int32{-3072, 512, 256}, [3]int16{0, 512, 256},
		gte.FlagError|gte.FlagIR1Saturated|gte.FlagRedSaturated)
	test.ExpectEquality(t, g.RGB[2], 0x30102000)
}

func TestColorFIFOCode(t *testing.T) {
	g := lighting()
	g.IR[1] = 0x800
	g.IR[2] = 0x400
	g.IR[3] = 0x200

	// the code byte is taken from RGBC at the time of the push
	command(t, g, cop2|sf|0x11)
	g.RGBC = 0xff804020
	command(t, g, cop2|sf|0x11)
	test.ExpectEquality(t, g.RGB[1]>>24, 0x30)
	test.ExpectEquality(t, g.RGB[2]>>24, 0xff)
}
