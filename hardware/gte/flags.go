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

import "strings"

// List of FLAG register bits. Bits 0 to 11 are unused and always zero.
const (
	FlagIR0Saturated    = uint32(1) << 12
	FlagSY2Saturated    = uint32(1) << 13
	FlagSX2Saturated    = uint32(1) << 14
	FlagMAC0Underflow   = uint32(1) << 15
	FlagMAC0Overflow    = uint32(1) << 16
	FlagDivideOverflow  = uint32(1) << 17
	FlagSZ3OTZSaturated = uint32(1) << 18
	FlagBlueSaturated   = uint32(1) << 19
	FlagGreenSaturated  = uint32(1) << 20
	FlagRedSaturated    = uint32(1) << 21
	FlagIR3Saturated    = uint32(1) << 22
	FlagIR2Saturated    = uint32(1) << 23
	FlagIR1Saturated    = uint32(1) << 24
	FlagMAC3Underflow   = uint32(1) << 25
	FlagMAC2Underflow   = uint32(1) << 26
	FlagMAC1Underflow   = uint32(1) << 27
	FlagMAC3Overflow    = uint32(1) << 28
	FlagMAC2Overflow    = uint32(1) << 29
	FlagMAC1Overflow    = uint32(1) << 30
	FlagError           = uint32(1) << 31
)

const (
	// the bits that contribute to FlagError: 30 to 23 and 18 to 13
	flagErrorMask = 0x7f87e000

	// the bits that can be set by writing to the FLAG register
	flagWritable = 0x7ffff000
)

// per lane flags. index 0 is MAC0/IR0
var (
	macOverflow  = [4]uint32{FlagMAC0Overflow, FlagMAC1Overflow, FlagMAC2Overflow, FlagMAC3Overflow}
	macUnderflow = [4]uint32{FlagMAC0Underflow, FlagMAC1Underflow, FlagMAC2Underflow, FlagMAC3Underflow}
	irSaturated  = [4]uint32{FlagIR0Saturated, FlagIR1Saturated, FlagIR2Saturated, FlagIR3Saturated}
	rgbSaturated = [3]uint32{FlagRedSaturated, FlagGreenSaturated, FlagBlueSaturated}
)

func (r *Registers) updateErrorFlag() {
	if r.FLAG&flagErrorMask != 0 {
		r.FLAG |= FlagError
	} else {
		r.FLAG &^= FlagError
	}
}

var flagNames = []struct {
	bit  uint32
	name string
}{
	{FlagError, "error"},
	{FlagMAC1Overflow, "mac1+"},
	{FlagMAC2Overflow, "mac2+"},
	{FlagMAC3Overflow, "mac3+"},
	{FlagMAC1Underflow, "mac1-"},
	{FlagMAC2Underflow, "mac2-"},
	{FlagMAC3Underflow, "mac3-"},
	{FlagIR1Saturated, "ir1"},
	{FlagIR2Saturated, "ir2"},
	{FlagIR3Saturated, "ir3"},
	{FlagRedSaturated, "r"},
	{FlagGreenSaturated, "g"},
	{FlagBlueSaturated, "b"},
	{FlagSZ3OTZSaturated, "sz3/otz"},
	{FlagDivideOverflow, "div"},
	{FlagMAC0Overflow, "mac0+"},
	{FlagMAC0Underflow, "mac0-"},
	{FlagSX2Saturated, "sx2"},
	{FlagSY2Saturated, "sy2"},
	{FlagIR0Saturated, "ir0"},
}

// FlagString returns a list of the set bits in a FLAG value, most significant
// first. Returns "none" if no bits are set.
func FlagString(flag uint32) string {
	var s []string
	for _, f := range flagNames {
		if flag&f.bit == f.bit {
			s = append(s, f.name)
		}
	}
	if len(s) == 0 {
		return "none"
	}
	return strings.Join(s, " ")
}
