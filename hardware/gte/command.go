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

	"github.com/jetsetilly/gopherpsx/curated"
)

// Opcode is the lower six bits of a GTE command word.
type Opcode uint8

// List of recognised opcodes.
const (
	OpRTPS  Opcode = 0x01
	OpNCLIP Opcode = 0x06
	OpOP    Opcode = 0x0c
	OpDPCS  Opcode = 0x10
	OpINTPL Opcode = 0x11
	OpMVMVA Opcode = 0x12
	OpNCDS  Opcode = 0x13
	OpCDP   Opcode = 0x14
	OpNCDT  Opcode = 0x16
	OpNCCS  Opcode = 0x1b
	OpCC    Opcode = 0x1c
	OpNCS   Opcode = 0x1e
	OpNCT   Opcode = 0x20
	OpSQR   Opcode = 0x28
	OpDCPL  Opcode = 0x29
	OpDPCT  Opcode = 0x2a
	OpAVSZ3 Opcode = 0x2d
	OpAVSZ4 Opcode = 0x2e
	OpRTPT  Opcode = 0x30
	OpGPF   Opcode = 0x3d
	OpGPL   Opcode = 0x3e
	OpNCCT  Opcode = 0x3f
)

var mnemonics = map[Opcode]string{
	OpRTPS:  "RTPS",
	OpNCLIP: "NCLIP",
	OpOP:    "OP",
	OpDPCS:  "DPCS",
	OpINTPL: "INTPL",
	OpMVMVA: "MVMVA",
	OpNCDS:  "NCDS",
	OpCDP:   "CDP",
	OpNCDT:  "NCDT",
	OpNCCS:  "NCCS",
	OpCC:    "CC",
	OpNCS:   "NCS",
	OpNCT:   "NCT",
	OpSQR:   "SQR",
	OpDCPL:  "DCPL",
	OpDPCT:  "DPCT",
	OpAVSZ3: "AVSZ3",
	OpAVSZ4: "AVSZ4",
	OpRTPT:  "RTPT",
	OpGPF:   "GPF",
	OpGPL:   "GPL",
	OpNCCT:  "NCCT",
}

// Valid returns true if the opcode is recognised.
func (op Opcode) Valid() bool {
	_, ok := mnemonics[op]
	return ok
}

func (op Opcode) String() string {
	if m, ok := mnemonics[op]; ok {
		return m
	}
	return fmt.Sprintf("unknown(%02x)", uint8(op))
}

// MatrixSelect is the MVMVA multiply matrix selector.
type MatrixSelect uint8

// List of multiply matrices. MatrixReserved selects a garbage matrix.
const (
	MatrixRotation MatrixSelect = iota
	MatrixLight
	MatrixColor
	MatrixReserved
)

// VectorSelect is the MVMVA multiply vector selector.
type VectorSelect uint8

// List of multiply vectors. VectorIR uses IR1 to IR3.
const (
	VectorV0 VectorSelect = iota
	VectorV1
	VectorV2
	VectorIR
)

// TranslationSelect is the MVMVA translation vector selector.
type TranslationSelect uint8

// List of translation vectors. TranslationNone adds nothing.
const (
	TranslationTR TranslationSelect = iota
	TranslationBK
	TranslationFC
	TranslationNone
)

var matrixNames = [4]string{"rt", "llm", "lcm", "bad"}
var vectorNames = [4]string{"v0", "v1", "v2", "ir"}
var translationNames = [4]string{"tr", "bk", "fc", "none"}

// layout of the command word
const (
	opcodeMask       = 0x3f
	lmBit            = 10
	translationShift = 13
	vectorShift      = 15
	matrixShift      = 17
	sfBit            = 19
)

// Instruction is a decoded command word. It is the execution context passed to
// every instruction.
type Instruction struct {
	Opcode Opcode

	// shift MAC results by 12 bits
	SF bool

	// saturate IR1 to IR3 to 0..7fff rather than -8000..7fff
	LM bool

	// sources for MVMVA. decoded for all opcodes but only meaningful for MVMVA
	Matrix      MatrixSelect
	Vector      VectorSelect
	Translation TranslationSelect
}

// Decode splits a command word into its fields.
func Decode(cmd uint32) Instruction {
	return Instruction{
		Opcode:      Opcode(cmd & opcodeMask),
		SF:          cmd&(1<<sfBit) != 0,
		LM:          cmd&(1<<lmBit) != 0,
		Matrix:      MatrixSelect((cmd >> matrixShift) & 0x03),
		Vector:      VectorSelect((cmd >> vectorShift) & 0x03),
		Translation: TranslationSelect((cmd >> translationShift) & 0x03),
	}
}

// Encode returns the command word for the instruction. The COP2 command
// prefix (0x4a000000) is included.
func (ins Instruction) Encode() uint32 {
	cmd := uint32(0x4a000000) | uint32(ins.Opcode)&opcodeMask
	if ins.SF {
		cmd |= 1 << sfBit
	}
	if ins.LM {
		cmd |= 1 << lmBit
	}
	cmd |= uint32(ins.Matrix&0x03) << matrixShift
	cmd |= uint32(ins.Vector&0x03) << vectorShift
	cmd |= uint32(ins.Translation&0x03) << translationShift
	return cmd
}

// shift amount for MAC results
func (ins Instruction) shift() uint {
	if ins.SF {
		return 12
	}
	return 0
}

// String returns the instruction in the same format accepted by Assemble().
func (ins Instruction) String() string {
	s := strings.Builder{}
	s.WriteString(ins.Opcode.String())
	if ins.SF {
		s.WriteString(" sf")
	}
	if ins.LM {
		s.WriteString(" lm")
	}
	if ins.Opcode == OpMVMVA {
		s.WriteString(fmt.Sprintf(" %s %s %s", matrixNames[ins.Matrix], vectorNames[ins.Vector], translationNames[ins.Translation]))
	}
	return s.String()
}

// Sentinal errors returned by Assemble().
const (
	UnknownMnemonic = "gte: unknown mnemonic (%s)"
	UnknownOperand  = "gte: unknown operand for %s (%s)"
)

// Assemble converts the fields of an instruction, in the format returned by
// Instruction.String(), into an Instruction. For example:
//
//	MVMVA sf lm rt v0 tr
//
// Fields are not case sensitive. MVMVA operands that are not specified
// default to rt, v0 and tr.
func Assemble(fields []string) (Instruction, error) {
	var ins Instruction

	if len(fields) == 0 {
		return ins, curated.Errorf(UnknownMnemonic, "")
	}

	m := strings.ToUpper(fields[0])
	found := false
	for op, n := range mnemonics {
		if n == m {
			ins.Opcode = op
			found = true
			break
		}
	}
	if !found {
		return ins, curated.Errorf(UnknownMnemonic, fields[0])
	}

	lookup := func(names [4]string, f string) (uint8, bool) {
		for i, n := range names {
			if n == f {
				return uint8(i), true
			}
		}
		return 0, false
	}

	for _, f := range fields[1:] {
		f = strings.ToLower(f)
		switch f {
		case "sf":
			ins.SF = true
			continue
		case "lm":
			ins.LM = true
			continue
		}

		if ins.Opcode != OpMVMVA {
			return ins, curated.Errorf(UnknownOperand, m, f)
		}

		if v, ok := lookup(matrixNames, f); ok {
			ins.Matrix = MatrixSelect(v)
		} else if v, ok := lookup(vectorNames, f); ok {
			ins.Vector = VectorSelect(v)
		} else if v, ok := lookup(translationNames, f); ok {
			ins.Translation = TranslationSelect(v)
		} else {
			return ins, curated.Errorf(UnknownOperand, m, f)
		}
	}

	return ins, nil
}
