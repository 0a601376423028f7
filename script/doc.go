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

// Package script runs Lua scripts against a GTE instance. It stands in for
// the host CPU emulation and is useful for exploring the behaviour of the GTE
// and for writing regression tests.
//
// The following functions are available in the gte table:
//
//	gte.read(reg)              value of register. reg can be an index or a name
//	gte.write(reg, value)      set register
//	gte.command(cmd)           run command. cmd can be a command word or an
//	                           instruction string (eg. "MVMVA sf rt v0 tr").
//	                           returns false if the command is not recognised
//	gte.flag()                 description of the FLAG register
//	gte.reset()                reset all registers
//	gte.name(reg)              name of register index
//	gte.decode(cmd)            disassembly of command word
//	gte.digest()               hash of the register digest (if attached)
//
// The print() function writes to the output given to NewScript().
package script
