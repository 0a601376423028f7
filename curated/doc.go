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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. Patterns intended for use with Is() should be stored as an
// exported const string, suitably named and commented. For example:
//
//	const MalformedEntry = "trace: malformed entry at line %d"
//
//	e := curated.Errorf(MalformedEntry, 10)
//
//	if curated.Is(e, MalformedEntry) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("replay: %v", e)
//
//	if curated.Has(f, MalformedEntry) {
//		fmt.Println("true")
//	}
//
// The IsAny() function answers whether the error was created by Errorf(). We
// can think of the difference between curated and uncurated errors as being
// 'expected' and 'unexpected' errors.
//
// The Error() implementation normalises the error chain. For the purposes of
// this package we think of chains as being composed of parts separated by the
// sub-string ": ". Duplicate adjacent parts are removed so that a message
// wrapped twice in the same context is only reported once:
//
//	trace: trace: malformed entry at line 10
//
// becomes:
//
//	trace: malformed entry at line 10
package curated
