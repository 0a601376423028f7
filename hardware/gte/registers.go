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
	"fmt"
	"strings"
)

// NumRegisters is the size of the register index space. Data registers
// occupy the first half and control registers the second half.
const (
	NumDataRegisters    = 32
	NumControlRegisters = 32
	NumRegisters        = NumDataRegisters + NumControlRegisters
)

// List of data register indexes.
const (
	VXY0 = iota
	VZ0
	VXY1
	VZ1
	VXY2
	VZ2
	RGBC
	OTZ
	IR0
	IR1
	IR2
	IR3
	SXY0
	SXY1
	SXY2
	SXYP
	SZ0
	SZ1
	SZ2
	SZ3
	RGB0
	RGB1
	RGB2
	RES1
	MAC0
	MAC1
	MAC2
	MAC3
	IRGB
	ORGB
	LZCS
	LZCR
)

// List of control register indexes.
const (
	RT11RT12 = iota + NumDataRegisters
	RT13RT21
	RT22RT23
	RT31RT32
	RT33
	TRX
	TRY
	TRZ
	L11L12
	L13L21
	L22L23
	L31L32
	L33
	RBK
	GBK
	BBK
	LR1LR2
	LR3LG1
	LG2LG3
	LB1LB2
	LB3
	RFC
	GFC
	BFC
	OFX
	OFY
	H
	DQA
	DQB
	ZSF3
	ZSF4
	FLAG
)

var registerNames = [NumRegisters]string{
	"vxy0", "vz0", "vxy1", "vz1", "vxy2", "vz2", "rgbc", "otz",
	"ir0", "ir1", "ir2", "ir3", "sxy0", "sxy1", "sxy2", "sxyp",
	"sz0", "sz1", "sz2", "sz3", "rgb0", "rgb1", "rgb2", "res1",
	"mac0", "mac1", "mac2", "mac3", "irgb", "orgb", "lzcs", "lzcr",
	"rt11rt12", "rt13rt21", "rt22rt23", "rt31rt32", "rt33", "trx", "try", "trz",
	"l11l12", "l13l21", "l22l23", "l31l32", "l33", "rbk", "gbk", "bbk",
	"lr1lr2", "lr3lg1", "lg2lg3", "lb1lb2", "lb3", "rfc", "gfc", "bfc",
	"ofx", "ofy", "h", "dqa", "dqb", "zsf3", "zsf4", "flag",
}

// RegisterName returns the conventional name of the register. Returns the
// empty string if the index is out of range.
func RegisterName(n int) string {
	if n < 0 || n >= NumRegisters {
		return ""
	}
	return registerNames[n]
}

// RegisterIndex returns the index of the named register. The name is not case
// sensitive.
func RegisterIndex(name string) (int, bool) {
	name = strings.ToLower(name)
	for i, n := range registerNames {
		if n == name {
			return i, true
		}
	}
	return 0, false
}

// Vector16 is a vector of three signed 16 bit values. Depending on context
// the lanes are X, Y and Z or R, G and B.
type Vector16 [3]int16

// Vector32 is a vector of three signed 32 bit values.
type Vector32 [3]int32

// Matrix is a 3x3 matrix of signed 16 bit values, normally in 1.3.12 fixed
// point format. The first index is the row.
type Matrix [3][3]int16

// ScreenXY is an entry in the screen coordinate FIFO.
type ScreenXY struct {
	X int16
	Y int16
}

// Registers is the register file of the GTE. The fields are exported so that
// the host emulation (or a debugger) can inspect the state directly. Writing
// to the fields directly bypasses the Tracer.
type Registers struct {
	// input vectors
	V [3]Vector16

	// color and GPU command code. red in bits 0-7, green in bits 8-15, blue
	// in bits 16-23 and the code in bits 24-31
	RGBC uint32

	// average Z value for ordering tables
	OTZ uint16

	// intermediate results
	IR [4]int16

	// screen coordinate FIFO. the SXYP register is a mirror of SXY[2] that
	// pushes onto the FIFO when written
	SXY [3]ScreenXY

	// screen Z FIFO
	SZ [4]uint16

	// color FIFO
	RGB [3]uint32

	// prohibited register. reads as the last written value
	RES1 uint32

	// sums of products
	MAC [4]int32

	// leading zero/one count source and result
	LZCS uint32
	LZCR uint32

	// rotation matrix and translation vector
	RT Matrix
	TR Vector32

	// light source matrix and background color
	L  Matrix
	BK Vector32

	// light color matrix and far color
	LR Matrix
	FC Vector32

	// screen offset (16.16 fixed point)
	OFX int32
	OFY int32

	// projection plane distance
	H uint16

	// depth cue coefficient (8.8) and offset (8.24)
	DQA int16
	DQB int32

	// Z averaging scale factors (4.12)
	ZSF3 int16
	ZSF4 int16

	// overflow and saturation flags of the most recent command
	FLAG uint32
}

func pack16(lo, hi int16) uint32 {
	return uint32(uint16(lo)) | uint32(uint16(hi))<<16
}

func signExtend16(v int16) uint32 {
	return uint32(int32(v))
}

// the five registers of a matrix hold the nine entries in row order, two
// entries per register. the fifth register holds only the last entry
func readMatrix(m *Matrix, k int) uint32 {
	if k == 4 {
		return signExtend16(m[2][2])
	}
	a := 2 * k
	b := a + 1
	return pack16(m[a/3][a%3], m[b/3][b%3])
}

func writeMatrix(m *Matrix, k int, data uint32) {
	if k == 4 {
		m[2][2] = int16(data)
		return
	}
	a := 2 * k
	b := a + 1
	m[a/3][a%3] = int16(data)
	m[b/3][b%3] = int16(data >> 16)
}

// packed 15 bit color of IR1 to IR3. each lane is IR >> 7, saturated to
// 0..1f. no flags are affected
func (r *Registers) orgb() uint32 {
	var rgb uint32
	for i := 1; i <= 3; i++ {
		c, _ := clamp(int32(r.IR[i])>>7, 0, 0x1f)
		rgb |= uint32(c) << (5 * (i - 1))
	}
	return rgb
}

// read returns the value of register n without notifying the tracer
func (r *Registers) read(n int) uint32 {
	switch {
	case n >= RT11RT12 && n <= RT33:
		return readMatrix(&r.RT, n-RT11RT12)
	case n >= L11L12 && n <= L33:
		return readMatrix(&r.L, n-L11L12)
	case n >= LR1LR2 && n <= LB3:
		return readMatrix(&r.LR, n-LR1LR2)
	case n >= TRX && n <= TRZ:
		return uint32(r.TR[n-TRX])
	case n >= RBK && n <= BBK:
		return uint32(r.BK[n-RBK])
	case n >= RFC && n <= BFC:
		return uint32(r.FC[n-RFC])
	}

	switch n {
	case VXY0, VXY1, VXY2:
		v := r.V[n/2]
		return pack16(v[0], v[1])
	case VZ0, VZ1, VZ2:
		return signExtend16(r.V[n/2][2])
	case RGBC:
		return r.RGBC
	case OTZ:
		return uint32(r.OTZ)
	case IR0, IR1, IR2, IR3:
		return signExtend16(r.IR[n-IR0])
	case SXY0, SXY1, SXY2:
		s := r.SXY[n-SXY0]
		return pack16(s.X, s.Y)
	case SXYP:
		s := r.SXY[2]
		return pack16(s.X, s.Y)
	case SZ0, SZ1, SZ2, SZ3:
		return uint32(r.SZ[n-SZ0])
	case RGB0, RGB1, RGB2:
		return r.RGB[n-RGB0]
	case RES1:
		return r.RES1
	case MAC0, MAC1, MAC2, MAC3:
		return uint32(r.MAC[n-MAC0])
	case IRGB, ORGB:
		return r.orgb()
	case LZCS:
		return r.LZCS
	case LZCR:
		return r.LZCR
	case OFX:
		return uint32(r.OFX)
	case OFY:
		return uint32(r.OFY)
	case H:
		// H is unsigned but reads as though it were signed
		return signExtend16(int16(r.H))
	case DQA:
		return signExtend16(r.DQA)
	case DQB:
		return uint32(r.DQB)
	case ZSF3:
		return signExtend16(r.ZSF3)
	case ZSF4:
		return signExtend16(r.ZSF4)
	case FLAG:
		return r.FLAG
	}

	panic(fmt.Sprintf("gte: register index out of range (%d)", n))
}

// write sets register n without notifying the tracer. returns false if the
// register is read-only
func (r *Registers) write(n int, data uint32) bool {
	switch {
	case n >= RT11RT12 && n <= RT33:
		writeMatrix(&r.RT, n-RT11RT12, data)
		return true
	case n >= L11L12 && n <= L33:
		writeMatrix(&r.L, n-L11L12, data)
		return true
	case n >= LR1LR2 && n <= LB3:
		writeMatrix(&r.LR, n-LR1LR2, data)
		return true
	case n >= TRX && n <= TRZ:
		r.TR[n-TRX] = int32(data)
		return true
	case n >= RBK && n <= BBK:
		r.BK[n-RBK] = int32(data)
		return true
	case n >= RFC && n <= BFC:
		r.FC[n-RFC] = int32(data)
		return true
	}

	switch n {
	case VXY0, VXY1, VXY2:
		r.V[n/2][0] = int16(data)
		r.V[n/2][1] = int16(data >> 16)
	case VZ0, VZ1, VZ2:
		r.V[n/2][2] = int16(data)
	case RGBC:
		r.RGBC = data
	case OTZ:
		r.OTZ = uint16(data)
	case IR0:
		r.IR[0] = int16(data)
	case IR1, IR2, IR3:
		// a direct write saturates to the signed 16 bit range. lm does not
		// apply and FLAG is not affected
		v, _ := clamp(int32(data), irMin, irMax)
		r.IR[n-IR0] = int16(v)
	case SXY0, SXY1, SXY2:
		r.SXY[n-SXY0] = ScreenXY{X: int16(data), Y: int16(data >> 16)}
	case SXYP:
		// writing to SXYP is the only direct write that moves the FIFO
		r.SXY[0] = r.SXY[1]
		r.SXY[1] = r.SXY[2]
		r.SXY[2] = ScreenXY{X: int16(data), Y: int16(data >> 16)}
	case SZ0, SZ1, SZ2, SZ3:
		r.SZ[n-SZ0] = uint16(data)
	case RGB0, RGB1, RGB2:
		r.RGB[n-RGB0] = data
	case RES1:
		r.RES1 = data
	case MAC0, MAC1, MAC2, MAC3:
		r.MAC[n-MAC0] = int32(data)
	case IRGB:
		r.IR[1] = int16((data & 0x1f) << 7)
		r.IR[2] = int16(((data >> 5) & 0x1f) << 7)
		r.IR[3] = int16(((data >> 10) & 0x1f) << 7)
	case ORGB, LZCR:
		return false
	case LZCS:
		r.LZCS = data
		r.LZCR = uint32(leadingSignBits(data))
	case OFX:
		r.OFX = int32(data)
	case OFY:
		r.OFY = int32(data)
	case H:
		r.H = uint16(data)
	case DQA:
		r.DQA = int16(data)
	case DQB:
		r.DQB = int32(data)
	case ZSF3:
		r.ZSF3 = int16(data)
	case ZSF4:
		r.ZSF4 = int16(data)
	case FLAG:
		r.FLAG = data & flagWritable
		r.updateErrorFlag()
	default:
		panic(fmt.Sprintf("gte: register index out of range (%d)", n))
	}

	return true
}
