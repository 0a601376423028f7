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

package gte

import (
	"testing"

	"github.com/jetsetilly/gopherpsx/test"
)

func TestLeadingSignBits(t *testing.T) {
	vectors := []struct {
		n        uint32
		expected int
	}{
		{0x00000000, 32},
		{0xffffffff, 32},
		{0x00000001, 31},
		{0x80000000, 1},
		{0x7fffffff, 1},
		{0xdeadbeef, 2},
		{0x000c0ffe, 12},
		{0xfffc0ffe, 14},
	}

	for _, v := range vectors {
		test.ExpectEquality(t, leadingSignBits(v.n), v.expected, v.n)
	}
}

func TestCountLeadingZeroes(t *testing.T) {
	test.ExpectEquality(t, countLeadingZeroes(0), 32)
	test.ExpectEquality(t, countLeadingZeroes(1), 31)
	test.ExpectEquality(t, countLeadingZeroes(0x8000), 16)
	test.ExpectEquality(t, countLeadingZeroes(0xffffffff), 0)
}

func TestSignExtend44(t *testing.T) {
	test.ExpectEquality(t, signExtend44(0x7ffffffffff), 0x7ffffffffff)
	test.ExpectEquality(t, signExtend44(0x80000000000), -0x80000000000)
	test.ExpectEquality(t, signExtend44(-1), -1)
	test.ExpectEquality(t, signExtend44(0x100000000001), 1)
}

func TestAccumulate(t *testing.T) {
	var r Registers

	// largest positive value does not overflow
	v := r.accumulate(1, 0x7ffffffffff)
	test.ExpectEquality(t, v, 0x7ffffffffff)
	test.ExpectEquality(t, r.FLAG, 0)

	// one more wraps to the most negative value
	v = r.accumulate(1, 0x80000000000)
	test.ExpectEquality(t, v, -0x80000000000)
	test.ExpectEquality(t, r.FLAG, FlagMAC1Overflow)

	r.FLAG = 0
	v = r.accumulate(3, -0x80000000001)
	test.ExpectEquality(t, v, 0x7ffffffffff)
	test.ExpectEquality(t, r.FLAG, FlagMAC3Underflow)
}

func TestSetMacAndIR(t *testing.T) {
	var r Registers

	r.setMacAndIR(1, 0x1000*100, 12, false)
	test.ExpectEquality(t, r.MAC[1], 100)
	test.ExpectEquality(t, r.IR[1], 100)
	test.ExpectEquality(t, r.FLAG, 0)

	// lm saturates negative values to zero
	r.setMacAndIR(2, -0x1000*100, 12, true)
	test.ExpectEquality(t, r.MAC[2], -100)
	test.ExpectEquality(t, r.IR[2], 0)
	test.ExpectEquality(t, r.FLAG, FlagIR2Saturated)

	r.FLAG = 0
	r.setMacAndIR(3, 0x8000, 0, false)
	test.ExpectEquality(t, r.MAC[3], 0x8000)
	test.ExpectEquality(t, r.IR[3], 0x7fff)
	test.ExpectEquality(t, r.FLAG, FlagIR3Saturated)

	r.FLAG = 0
	r.setMacAndIR(3, -0x8001, 0, false)
	test.ExpectEquality(t, r.IR[3], -0x8000)
	test.ExpectEquality(t, r.FLAG, FlagIR3Saturated)
}

func TestSetMac0(t *testing.T) {
	var r Registers

	r.setMac0(0x7fffffff)
	test.ExpectEquality(t, r.MAC[0], 0x7fffffff)
	test.ExpectEquality(t, r.FLAG, 0)

	r.setMac0(0x80000000)
	test.ExpectEquality(t, r.MAC[0], -0x80000000)
	test.ExpectEquality(t, r.FLAG, FlagMAC0Overflow)

	r.FLAG = 0
	r.setMac0(-0x80000001)
	test.ExpectEquality(t, r.FLAG, FlagMAC0Underflow)
}

func TestSetIR0(t *testing.T) {
	var r Registers

	r.setIR0(0x800)
	test.ExpectEquality(t, r.IR[0], 0x800)
	test.ExpectEquality(t, r.FLAG, 0)

	r.setIR0(0x1001)
	test.ExpectEquality(t, r.IR[0], 0x1000)
	test.ExpectEquality(t, r.FLAG, FlagIR0Saturated)

	r.FLAG = 0
	r.setIR0(-1)
	test.ExpectEquality(t, r.IR[0], 0)
	test.ExpectEquality(t, r.FLAG, FlagIR0Saturated)
}

func TestSetOtz(t *testing.T) {
	var r Registers

	r.setOtz(100 << 12)
	test.ExpectEquality(t, r.OTZ, 100)
	test.ExpectEquality(t, r.FLAG, 0)

	r.setOtz(0x10000 << 12)
	test.ExpectEquality(t, r.OTZ, 0xffff)
	test.ExpectEquality(t, r.FLAG, FlagSZ3OTZSaturated)

	r.FLAG = 0
	r.setOtz(-1 << 12)
	test.ExpectEquality(t, r.OTZ, 0)
	test.ExpectEquality(t, r.FLAG, FlagSZ3OTZSaturated)
}

func TestScreenFIFO(t *testing.T) {
	var r Registers

	for i := int64(1); i <= 5; i++ {
		r.pushScreenXY(i, -i)
		r.pushScreenZ(i * 10)
	}
	test.ExpectEquality(t, r.FLAG, 0)

	// only the most recent pushes remain, oldest first
	test.ExpectEquality(t, r.SXY[0], ScreenXY{X: 3, Y: -3})
	test.ExpectEquality(t, r.SXY[1], ScreenXY{X: 4, Y: -4})
	test.ExpectEquality(t, r.SXY[2], ScreenXY{X: 5, Y: -5})
	test.ExpectEquality(t, r.SZ, [4]uint16{20, 30, 40, 50})

	r.pushScreenXY(0x400, -0x401)
	test.ExpectEquality(t, r.SXY[2], ScreenXY{X: 0x3ff, Y: -0x400})
	test.ExpectEquality(t, r.FLAG, FlagSX2Saturated|FlagSY2Saturated)

	r.FLAG = 0
	r.pushScreenZ(-1)
	test.ExpectEquality(t, r.SZ[3], 0)
	test.ExpectEquality(t, r.FLAG, FlagSZ3OTZSaturated)
}

func TestColorFIFO(t *testing.T) {
	var r Registers
	r.RGBC = 0xaa000000

	r.pushColor(0x10, 0x20, 0x30)
	test.ExpectEquality(t, r.RGB[2], 0xaa302010)
	test.ExpectEquality(t, r.FLAG, 0)

	r.pushColor(-1, 0x100, 0x80)
	test.ExpectEquality(t, r.RGB[1], 0xaa302010)
	test.ExpectEquality(t, r.RGB[2], 0xaa80ff00)
	test.ExpectEquality(t, r.FLAG, FlagRedSaturated|FlagGreenSaturated)

	r.FLAG = 0
	r.MAC = [4]int32{0, 0x100, 0x200, 0x300}
	r.pushColorFromMAC()
	test.ExpectEquality(t, r.RGB[0], 0xaa302010)
	test.ExpectEquality(t, r.RGB[2], 0xaa302010)
	test.ExpectEquality(t, r.FLAG, 0)
}
