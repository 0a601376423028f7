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

// MAC = T + M·V for each lane. partial sums wrap at 44 bits
func (r *Registers) multiplyMatrixByVector(ins Instruction, m *Matrix, v Vector16, t Vector32) {
	shift := ins.shift()
	for i := 0; i < 3; i++ {
		mac := r.accumulate(i+1, int64(t[i])<<12+int64(m[i][0])*int64(v[0]))
		mac = r.accumulate(i+1, mac+int64(m[i][1])*int64(v[1]))
		r.setMacAndIR(i+1, mac+int64(m[i][2])*int64(v[2]), shift, ins.LM)
	}
}

// the hardware mishandles the far color translation vector. the product of
// the first column is only used to set the IR flags and is then lost
func (r *Registers) multiplyMatrixByVectorFC(ins Instruction, m *Matrix, v Vector16) {
	shift := ins.shift()
	for i := 0; i < 3; i++ {
		mac := r.accumulate(i+1, int64(r.FC[i])<<12+int64(m[i][0])*int64(v[0]))
		r.setIR(i+1, mac>>shift, false)
		mac = r.accumulate(i+1, int64(m[i][1])*int64(v[1]))
		r.setMacAndIR(i+1, mac+int64(m[i][2])*int64(v[2]), shift, ins.LM)
	}
}

// the matrix used when the matrix selector is 3
func (r *Registers) garbageMatrix() Matrix {
	red := int16(r.RGBC&0xff) << 4
	return Matrix{
		{-red, red, r.IR[0]},
		{r.RT[0][2], r.RT[0][2], r.RT[0][2]},
		{r.RT[1][1], r.RT[1][1], r.RT[1][1]},
	}
}

func (r *Registers) mvmva(ins Instruction) {
	var m Matrix
	switch ins.Matrix {
	case MatrixRotation:
		m = r.RT
	case MatrixLight:
		m = r.L
	case MatrixColor:
		m = r.LR
	case MatrixReserved:
		m = r.garbageMatrix()
	}

	var v Vector16
	switch ins.Vector {
	case VectorV0, VectorV1, VectorV2:
		v = r.V[ins.Vector]
	case VectorIR:
		v = r.irVector()
	}

	switch ins.Translation {
	case TranslationTR:
		r.multiplyMatrixByVector(ins, &m, v, r.TR)
	case TranslationBK:
		r.multiplyMatrixByVector(ins, &m, v, r.BK)
	case TranslationFC:
		r.multiplyMatrixByVectorFC(ins, &m, v)
	case TranslationNone:
		r.multiplyMatrixByVector(ins, &m, v, Vector32{})
	}
}

func (r *Registers) sqr(ins Instruction) {
	for i := 1; i <= 3; i++ {
		r.setMacAndIR(i, int64(r.IR[i])*int64(r.IR[i]), ins.shift(), ins.LM)
	}
}

// cross product of IR and the diagonal of the rotation matrix
func (r *Registers) op(ins Instruction) {
	d1 := int64(r.RT[0][0])
	d2 := int64(r.RT[1][1])
	d3 := int64(r.RT[2][2])
	ir1 := int64(r.IR[1])
	ir2 := int64(r.IR[2])
	ir3 := int64(r.IR[3])

	shift := ins.shift()
	r.setMacAndIR(1, ir3*d2-ir2*d3, shift, ins.LM)
	r.setMacAndIR(2, ir1*d3-ir3*d1, shift, ins.LM)
	r.setMacAndIR(3, ir2*d1-ir1*d2, shift, ins.LM)
}

func (r *Registers) gpf(ins Instruction) {
	for i := 1; i <= 3; i++ {
		r.setMacAndIR(i, int64(r.IR[0])*int64(r.IR[i]), ins.shift(), ins.LM)
	}
	r.pushColorFromMAC()
}

func (r *Registers) gpl(ins Instruction) {
	shift := ins.shift()
	for i := 1; i <= 3; i++ {
		r.setMacAndIR(i, int64(r.MAC[i])<<shift+int64(r.IR[0])*int64(r.IR[i]), shift, ins.LM)
	}
	r.pushColorFromMAC()
}
