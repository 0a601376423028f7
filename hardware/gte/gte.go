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

	"github.com/jetsetilly/gopherpsx/environment"
	"github.com/jetsetilly/gopherpsx/logger"
)

// TraceMode indicates the type of GTE access being traced.
type TraceMode int

// List of valid TraceMode values.
const (
	TraceRead TraceMode = iota
	TraceWrite
	TraceFunc
)

func (m TraceMode) String() string {
	switch m {
	case TraceRead:
		return "read"
	case TraceWrite:
		return "write"
	case TraceFunc:
		return "func"
	}
	return "unknown"
}

// Tracer is notified of every access to the GTE. For TraceRead and TraceWrite
// n is the register index and data is the value read or written. For
// TraceFunc n is the command word and data is the value of FLAG after the
// command has completed.
type Tracer interface {
	Trace(mode TraceMode, n uint32, data uint32)
}

// GTE is the geometry transformation engine coprocessor.
type GTE struct {
	Registers

	env    *environment.Environment
	tracer Tracer
}

// NewGTE is the preferred method of initialisation for the GTE type. A nil
// environment is treated as the main emulation.
func NewGTE(env *environment.Environment) *GTE {
	if env == nil {
		env = environment.NewEnvironment(environment.MainEmulation)
	}
	gte := &GTE{env: env}
	gte.Reset()
	return gte
}

// Reset clears all registers. Attached tracers are not affected.
func (gte *GTE) Reset() {
	gte.Registers = Registers{}

	// leading count of zero
	gte.LZCR = 32
}

// AttachTracer sets the tracer for the GTE. A nil tracer removes any existing
// tracer.
func (gte *GTE) AttachTracer(t Tracer) {
	gte.tracer = t
}

// Read returns the value of register n. Panics if n is not a valid register
// index.
func (gte *GTE) Read(n int) uint32 {
	data := gte.read(n)
	if gte.tracer != nil {
		gte.tracer.Trace(TraceRead, uint32(n), data)
	}
	return data
}

// Write sets the value of register n. Panics if n is not a valid register
// index.
func (gte *GTE) Write(n int, data uint32) {
	if gte.tracer != nil {
		gte.tracer.Trace(TraceWrite, uint32(n), data)
	}
	if !gte.write(n, data) {
		logger.Logf(gte.env, "GTE", "write to read-only register %s ignored (%08x)", registerNames[n], data)
	}
}

// Command executes the command word. Returns false if the opcode is not
// recognised, in which case the registers are left unchanged except for FLAG,
// which is cleared.
func (gte *GTE) Command(cmd uint32) bool {
	gte.FLAG = 0

	ins := Decode(cmd)

	switch ins.Opcode {
	case OpRTPS:
		gte.rtps(ins, 0, true)
	case OpNCLIP:
		gte.nclip()
	case OpOP:
		gte.op(ins)
	case OpDPCS:
		gte.dpcs(ins, gte.RGBC)
	case OpINTPL:
		gte.intpl(ins)
	case OpMVMVA:
		gte.mvmva(ins)
	case OpNCDS:
		gte.ncds(ins, 0)
	case OpCDP:
		gte.cdp(ins)
	case OpNCDT:
		gte.ncdt(ins)
	case OpNCCS:
		gte.nccs(ins, 0)
	case OpCC:
		gte.cc(ins)
	case OpNCS:
		gte.ncs(ins, 0)
	case OpNCT:
		gte.nct(ins)
	case OpSQR:
		gte.sqr(ins)
	case OpDCPL:
		gte.dcpl(ins)
	case OpDPCT:
		gte.dpct(ins)
	case OpAVSZ3:
		gte.avsz3()
	case OpAVSZ4:
		gte.avsz4()
	case OpRTPT:
		gte.rtpt(ins)
	case OpGPF:
		gte.gpf(ins)
	case OpGPL:
		gte.gpl(ins)
	case OpNCCT:
		gte.ncct(ins)
	default:
		logger.Logf(gte.env, "GTE", "unrecognised command %08x (opcode %02x)", cmd, uint8(ins.Opcode))
		if gte.tracer != nil {
			gte.tracer.Trace(TraceFunc, cmd, gte.FLAG)
		}
		return false
	}

	gte.updateErrorFlag()

	if gte.tracer != nil {
		gte.tracer.Trace(TraceFunc, cmd, gte.FLAG)
	}

	return true
}

// Snapshot returns the value of every register, in register index order, as
// they would be returned by Read(). Reading the snapshot does not notify the
// tracer.
func (gte *GTE) Snapshot() [NumRegisters]uint32 {
	var s [NumRegisters]uint32
	for i := range s {
		s[i] = gte.read(i)
	}
	return s
}

// String returns the register file as a formatted table. Four registers per
// line.
func (gte *GTE) String() string {
	s := strings.Builder{}
	snapshot := gte.Snapshot()
	for i, v := range snapshot {
		s.WriteString(fmt.Sprintf("%-8s %08x", registerNames[i], v))
		if i%4 == 3 {
			s.WriteString("\n")
		} else {
			s.WriteString("  ")
		}
	}
	return s.String()
}
