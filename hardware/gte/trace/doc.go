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

// Package trace records the activity of a GTE and allows the activity to be
// replayed and verified against another GTE instance.
//
// A Log is attached to the GTE with the AttachTracer() function. Every
// register read, register write and command is then recorded as an Entry.
//
// Entries can be written to and read from a transcript. The transcript is a
// text file with a header line followed by one entry per line:
//
//	# gopherpsx gte trace
//	write, 58, 00000200
//	func, 4a080001, 80020000
//	read, 14, 006300c7
//
// The first field is the mode. For read and write entries the second field
// is the register index (decimal) and the third field is the data. For func
// entries the second field is the command word and the third field is the
// value of the FLAG register after the command. Numbers in the third field,
// and the command word, are in hexadecimal.
//
// Blank lines and lines beginning with # (after the header) are ignored.
package trace
