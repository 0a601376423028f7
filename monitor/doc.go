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

// Package monitor implements a simple line based interface to a GTE. Commands
// are read from an io.Reader and the results written to an io.Writer.
//
// Command lines are split into arguments in the same way as a POSIX shell
// so arguments can be quoted. Commands are not case sensitive. Register
// arguments can be given as an index or as a name. Values can be given in
// decimal, hexadecimal (with the 0x prefix), octal or binary.
//
// A prompt is only shown if the input is a terminal.
package monitor
