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
	"math/bits"

	"golang.org/x/exp/constraints"
)

// the MAC1 to MAC3 accumulators have 44 bits of internal precision. MAC0
// has 32 bits
const (
	macBits  = 44
	mac0Bits = 32
)

// range limits of the saturating registers
const (
	irMin  = -0x8000
	irMax  = 0x7fff
	ir0Max = 0x1000
	sxyMin = -0x400
	sxyMax = 0x3ff
	szMax  = 0xffff
	rgbMax = 0xff
)

// clamp value to the range min to max. the second return value is true if
// the value was changed
func clamp[T constraints.Integer](value, min, max T) (T, bool) {
	if value < min {
		return min, true
	}
	if value > max {
		return max, true
	}
	return value, false
}

func signExtend44(value int64) int64 {
	return (value << (64 - macBits)) >> (64 - macBits)
}

// countLeadingZeroes returns the number of leading zero bits in n. Returns 32
// if n is zero.
func countLeadingZeroes(n uint32) int {
	return bits.LeadingZeros32(n)
}

// leadingSignBits counts the leading bits equal to the sign bit. this is the
// value of LZCR after a write to LZCS
func leadingSignBits(n uint32) int {
	if int32(n) < 0 {
		n = ^n
	}
	return countLeadingZeroes(n)
}

// checkOverflow sets the overflow flag if value is too large for a signed
// integer of the specified width, or the underflow flag if it is too small.
// the value itself is not changed
func (r *Registers) checkOverflow(value int64, width int, overflow uint32, underflow uint32) {
	if value > int64(1)<<(width-1)-1 {
		r.FLAG |= overflow
	} else if value < -(int64(1) << (width - 1)) {
		r.FLAG |= underflow
	}
}

// clip saturates value to the range min to max and sets the flag bits if the
// value was changed
func (r *Registers) clip(value int64, max int64, min int64, flag uint32) int64 {
	v, saturated := clamp(value, min, max)
	if saturated {
		r.FLAG |= flag
	}
	return v
}

// accumulate checks a partial sum of products for the MAC lane (1 to 3) and
// wraps it to the 44 bits of the accumulator
func (r *Registers) accumulate(lane int, value int64) int64 {
	r.checkOverflow(value, macBits, macOverflow[lane], macUnderflow[lane])
	return signExtend44(value)
}

// setMac is the final stage of an accumulation in MAC lanes 1 to 3. the value
// is checked for 44 bit overflow before being shifted and truncated to the 32
// bit MAC register. the shifted value is returned
func (r *Registers) setMac(lane int, value int64, shift uint) int64 {
	r.checkOverflow(value, macBits, macOverflow[lane], macUnderflow[lane])
	value >>= shift
	r.MAC[lane] = int32(value)
	return value
}

// setMac0 is the accumulation path for MAC0, which is never shifted and which
// is checked for 32 bit overflow
func (r *Registers) setMac0(value int64) {
	r.checkOverflow(value, mac0Bits, FlagMAC0Overflow, FlagMAC0Underflow)
	r.MAC[0] = int32(value)
}

// setIR saturates value into IR lane 1 to 3. the lower bound is zero when lm is
// set
func (r *Registers) setIR(lane int, value int64, lm bool) {
	min := int64(irMin)
	if lm {
		min = 0
	}
	r.IR[lane] = int16(r.clip(value, irMax, min, irSaturated[lane]))
}

// setIR0 saturates value into IR0, which has a range of 0 to 0x1000
func (r *Registers) setIR0(value int64) {
	r.IR[0] = int16(r.clip(value, ir0Max, 0, FlagIR0Saturated))
}

// setMacAndIR sets MAC lane 1 to 3 and derives the IR register from the
// truncated MAC value
func (r *Registers) setMacAndIR(lane int, value int64, shift uint, lm bool) {
	r.setMac(lane, value, shift)
	r.setIR(lane, int64(r.MAC[lane]), lm)
}

// setOtz shifts the Z sum by 12 and saturates it into OTZ
func (r *Registers) setOtz(value int64) {
	r.OTZ = uint16(r.clip(value>>12, szMax, 0, FlagSZ3OTZSaturated))
}

// pushScreenXY saturates the coordinates to 11 bits and pushes them onto the
// screen coordinate FIFO
func (r *Registers) pushScreenXY(x int64, y int64) {
	r.SXY[0] = r.SXY[1]
	r.SXY[1] = r.SXY[2]
	r.SXY[2] = ScreenXY{
		X: int16(r.clip(x, sxyMax, sxyMin, FlagSX2Saturated)),
		Y: int16(r.clip(y, sxyMax, sxyMin, FlagSY2Saturated)),
	}
}

// pushScreenZ saturates the Z value to 16 bits unsigned and pushes it onto
// the Z FIFO
func (r *Registers) pushScreenZ(z int64) {
	r.SZ[0] = r.SZ[1]
	r.SZ[1] = r.SZ[2]
	r.SZ[2] = r.SZ[3]
	r.SZ[3] = uint16(r.clip(z, szMax, 0, FlagSZ3OTZSaturated))
}

// pushColor saturates each lane to 8 bits and pushes the color, along with
// the code byte of RGBC, onto the color FIFO
func (r *Registers) pushColor(red int64, green int64, blue int64) {
	c := r.RGBC & 0xff000000
	for i, v := range [3]int64{red, green, blue} {
		c |= uint32(r.clip(v, rgbMax, 0, rgbSaturated[i])) << (8 * i)
	}
	r.RGB[0] = r.RGB[1]
	r.RGB[1] = r.RGB[2]
	r.RGB[2] = c
}

// pushColorFromMAC pushes MAC1 to MAC3 divided by 16 onto the color FIFO
func (r *Registers) pushColorFromMAC() {
	r.pushColor(int64(r.MAC[1]>>4), int64(r.MAC[2]>>4), int64(r.MAC[3]>>4))
}
