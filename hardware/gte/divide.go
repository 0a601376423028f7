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

// divideSaturation is the result of a perspective divide that would overflow
const divideSaturation = 0x1ffff

// unrTable is the reciprocal seed table used by the divide approximation. the
// table in the hardware is a ROM but the values can be derived
var unrTable [0x101]uint8

func init() {
	for i := range unrTable {
		v := (0x40000/(i+0x100)+1)/2 - 0x101
		if v < 0 {
			v = 0
		}
		unrTable[i] = uint8(v)
	}
}

// divide approximates ((h << 17) / sz3 + 1) / 2 as used by the perspective
// projection. That is, h / sz3 rounded to nearest as an unsigned 1.16 fixed
// point value in the range 0 to 0x1ffff.
//
// The divisor is normalised so that its most significant bit is bit 15. The
// top bits of the normalised divisor select a seed from the unrTable, which
// is refined by two Newton-Raphson steps to a 17 bit reciprocal. The result can
// be one less than the rounded quotient and software can depend on the
// difference.
//
// If h is greater than or equal to twice sz3 the result is saturated and the
// divide overflow flag is set. The same is true if the rounded approximation
// exceeds 0x1ffff.
func (r *Registers) divide(h uint16, sz3 uint16) uint32 {
	if uint32(h) >= uint32(sz3)*2 {
		r.FLAG |= FlagDivideOverflow
		return divideSaturation
	}

	// normalise divisor to 0x8000..0xffff
	z := countLeadingZeroes(uint32(sz3)) - 16
	n := uint64(h) << z
	d := uint64(sz3) << z

	// seed in the range 0x101..0x200
	u := uint64(unrTable[(d-0x7fc0)>>7]) + 0x101

	// refine reciprocal to the range 0x10000..0x20000
	d = (0x2000080 - d*u) >> 8
	d = (0x0000080 + d*u) >> 8

	q := (n*d + 0x8000) >> 16
	if q > divideSaturation {
		r.FLAG |= FlagDivideOverflow
		return divideSaturation
	}

	return uint32(q)
}
