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

// color channel i (0 to 2) of an RGBC value
func colorChannel(rgbc uint32, i int) int64 {
	return int64((rgbc >> (8 * i)) & 0xff)
}

func (r *Registers) irVector() Vector16 {
	return Vector16{r.IR[1], r.IR[2], r.IR[3]}
}

// blend the color in mac towards the far color by the amount in IR0. the
// first step is always saturated to the signed range regardless of lm.
func (r *Registers) interpolateColor(ins Instruction, mac [3]int64) {
	shift := ins.shift()
	for i := 0; i < 3; i++ {
		r.setMacAndIR(i+1, int64(r.FC[i])<<12-mac[i], shift, false)
	}
	for i := 0; i < 3; i++ {
		r.setMacAndIR(i+1, int64(r.IR[i+1])*int64(r.IR[0])+mac[i], shift, ins.LM)
	}
}

// product of the RGBC color and the IR vector, scaled to 12 bits of fraction
func (r *Registers) colorProduct() [3]int64 {
	var mac [3]int64
	for i := 0; i < 3; i++ {
		mac[i] = (colorChannel(r.RGBC, i) * int64(r.IR[i+1])) << 4
	}
	return mac
}

// light the normal vector n. the result is left in IR1 to IR3
func (r *Registers) lightNormal(ins Instruction, n int) {
	r.multiplyMatrixByVector(ins, &r.L, r.V[n], Vector32{})
	r.multiplyMatrixByVector(ins, &r.LR, r.irVector(), r.BK)
}

func (r *Registers) ncs(ins Instruction, n int) {
	r.lightNormal(ins, n)
	r.pushColorFromMAC()
}

func (r *Registers) nct(ins Instruction) {
	for n := 0; n < 3; n++ {
		r.ncs(ins, n)
	}
}

func (r *Registers) nccs(ins Instruction, n int) {
	r.lightNormal(ins, n)
	mac := r.colorProduct()
	for i := 0; i < 3; i++ {
		r.setMacAndIR(i+1, mac[i], ins.shift(), ins.LM)
	}
	r.pushColorFromMAC()
}

func (r *Registers) ncct(ins Instruction) {
	for n := 0; n < 3; n++ {
		r.nccs(ins, n)
	}
}

func (r *Registers) ncds(ins Instruction, n int) {
	r.lightNormal(ins, n)
	r.interpolateColor(ins, r.colorProduct())
	r.pushColorFromMAC()
}

func (r *Registers) ncdt(ins Instruction) {
	for n := 0; n < 3; n++ {
		r.ncds(ins, n)
	}
}

func (r *Registers) cc(ins Instruction) {
	r.multiplyMatrixByVector(ins, &r.LR, r.irVector(), r.BK)
	mac := r.colorProduct()
	for i := 0; i < 3; i++ {
		r.setMacAndIR(i+1, mac[i], ins.shift(), ins.LM)
	}
	r.pushColorFromMAC()
}

func (r *Registers) cdp(ins Instruction) {
	r.multiplyMatrixByVector(ins, &r.LR, r.irVector(), r.BK)
	r.interpolateColor(ins, r.colorProduct())
	r.pushColorFromMAC()
}

// depth cue the color in rgbc
func (r *Registers) dpcs(ins Instruction, rgbc uint32) {
	var mac [3]int64
	for i := 0; i < 3; i++ {
		mac[i] = colorChannel(rgbc, i) << 16
	}
	r.interpolateColor(ins, mac)
	r.pushColorFromMAC()
}

// depth cue the oldest color in the FIFO three times. each iteration moves
// the FIFO so every entry is processed once
func (r *Registers) dpct(ins Instruction) {
	for n := 0; n < 3; n++ {
		r.dpcs(ins, r.RGB[0])
	}
}

func (r *Registers) dcpl(ins Instruction) {
	r.interpolateColor(ins, r.colorProduct())
	r.pushColorFromMAC()
}

func (r *Registers) intpl(ins Instruction) {
	var mac [3]int64
	for i := 0; i < 3; i++ {
		mac[i] = int64(r.IR[i+1]) << 12
	}
	r.interpolateColor(ins, mac)
	r.pushColorFromMAC()
}
