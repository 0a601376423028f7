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

// Package modalflag wraps the flag package of the standard library and adds
// program modes. Each mode can have its own set of flags.
//
// Arguments are given with NewArgs() and are consumed by successive calls to
// Parse(). Before each call to Parse() the flags and sub-modes for that layer
// are declared:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("MONITOR", "SCRIPT", "REPLAY")
//	echo := md.AddBool("log", false, "echo log to stdout")
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// After Parse(), Mode() returns the selected sub-mode. If the first non-flag
// argument is not a sub-mode then the first sub-mode in the list is selected
// and the argument is left in RemainingArgs(). Sub-mode names are case
// insensitive.
//
// Flags for the selected mode are then declared after a call to NewMode()
// and Parse() is called again:
//
//	switch md.Mode() {
//	case "REPLAY":
//		md.NewMode()
//		strict := md.AddBool("strict", false, "stop on first mismatch")
//		md.Parse()
//		replay(md.RemainingArgs(), *strict)
//	}
package modalflag
