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

// Package gte emulates the Geometry Transformation Engine, the fixed-point
// vector and matrix coprocessor (COP2) of the PlayStation. The host CPU
// emulation communicates with the GTE through three functions:
//
//	Read(n) returns the value of register n
//	Write(n, data) sets register n
//	Command(cmd) executes the command word and returns false if the
//	opcode was not recognised
//
// Registers 0 to 31 are the data registers and registers 32 to 63 are the
// control registers. The register index constants (VXY0, RT11RT12, FLAG,
// etc.) should be used rather than bare numbers.
//
// Every command begins by clearing the FLAG register. Arithmetic overflow,
// underflow and saturation during the command are recorded in FLAG and are
// not errors in the Go sense of the word. Bit 31 of FLAG is the logical OR of
// bits 30 to 23 and bits 18 to 13 and is recomputed at the end of every
// command.
//
// The arithmetic follows the hardware exactly, including the quirks that game
// software relies on. In particular:
//
//	MAC1 to MAC3 accumulate with 44 bits of precision and wrap after every
//	partial sum.
//
//	The perspective divide is a reciprocal approximation (see divide.go),
//	not a true division.
//
//	MVMVA with the far color translation vector only uses the second and
//	third matrix columns. MVMVA with matrix selector 3 uses a garbage
//	matrix.
//
// The GTE is not safe for concurrent use. It is intended to be called from
// the single goroutine running the CPU emulation.
//
// A Tracer can be attached to the GTE with AttachTracer(). The tracer will be
// notified of every register read, register write and command. See the trace
// package for an implementation.
package gte
