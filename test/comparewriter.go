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

package test

import "strings"

// CompareWriter implements io.Writer and collects everything written to it
// so that the output of a function can be compared against an expected
// string.
type CompareWriter struct {
	b strings.Builder
}

// Write implements the io.Writer interface.
func (cw *CompareWriter) Write(p []byte) (int, error) {
	return cw.b.Write(p)
}

// Clear discards collected output.
func (cw *CompareWriter) Clear() {
	cw.b.Reset()
}

// Compare returns true if the collected output is equal to s.
func (cw *CompareWriter) Compare(s string) bool {
	return cw.b.String() == s
}

// String implements the fmt.Stringer interface.
func (cw *CompareWriter) String() string {
	return cw.b.String()
}
