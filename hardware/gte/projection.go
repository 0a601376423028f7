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

// perspective transformation of vertex n. the depth cue values in MAC0 and
// IR0 are only calculated for the last vertex in a sequence.
func (r *Registers) rtps(ins Instruction, n int, last bool) {
	shift := ins.shift()
	v := r.V[n]

	var z int64
	for i := 0; i < 3; i++ {
		mac := r.accumulate(i+1, int64(r.TR[i])<<12+int64(r.RT[i][0])*int64(v[0]))
		mac = r.accumulate(i+1, mac+int64(r.RT[i][1])*int64(v[1]))
		mac += int64(r.RT[i][2]) * int64(v[2])
		r.setMac(i+1, mac, shift)
		if i < 2 {
			r.setIR(i+1, int64(r.MAC[i+1]), ins.LM)
		} else {
			z = mac
		}
	}

	if shift == 0 {
		// saturation flag for IR3 is taken from the unshifted value
		if z>>12 < irMin || z>>12 > irMax {
			r.FLAG |= FlagIR3Saturated
		}
		min := int64(irMin)
		if ins.LM {
			min = 0
		}
		ir3, _ := clamp(int64(r.MAC[3]), min, irMax)
		r.IR[3] = int16(ir3)
	} else {
		r.setIR(3, int64(r.MAC[3]), ins.LM)
	}

	r.pushScreenZ(int64(int32(z >> 12)))

	d := int64(r.divide(r.H, r.SZ[3]))

	sx := d*int64(r.IR[1]) + int64(r.OFX)
	r.checkOverflow(sx, mac0Bits, FlagMAC0Overflow, FlagMAC0Underflow)
	sy := d*int64(r.IR[2]) + int64(r.OFY)
	r.checkOverflow(sy, mac0Bits, FlagMAC0Overflow, FlagMAC0Underflow)
	r.pushScreenXY(sx>>16, sy>>16)

	if last {
		dq := d*int64(r.DQA) + int64(r.DQB)
		r.setMac0(dq)
		r.setIR0(dq >> 12)
	}
}

func (r *Registers) rtpt(ins Instruction) {
	r.rtps(ins, 0, false)
	r.rtps(ins, 1, false)
	r.rtps(ins, 2, true)
}

// the sign of the result indicates the winding order of the three most
// recent screen coordinates
func (r *Registers) nclip() {
	s0 := r.SXY[0]
	s1 := r.SXY[1]
	s2 := r.SXY[2]

	mac0 := int64(s0.X)*int64(s1.Y) + int64(s1.X)*int64(s2.Y) + int64(s2.X)*int64(s0.Y) -
		int64(s0.X)*int64(s2.Y) - int64(s1.X)*int64(s0.Y) - int64(s2.X)*int64(s1.Y)

	r.setMac0(mac0)
}

func (r *Registers) avsz3() {
	sum := int64(r.ZSF3) * (int64(r.SZ[1]) + int64(r.SZ[2]) + int64(r.SZ[3]))
	r.setMac0(sum)
	r.setOtz(sum)
}

func (r *Registers) avsz4() {
	sum := int64(r.ZSF4) * (int64(r.SZ[0]) + int64(r.SZ[1]) + int64(r.SZ[2]) + int64(r.SZ[3]))
	r.setMac0(sum)
	r.setOtz(sum)
}
