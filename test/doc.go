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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() and DemandEquality() functions compare like-typed
// values. The Expect*() functions report a failure and allow the test to
// continue, whereas the Demand*() functions end the test immediately. Demand
// is useful when the value being tested is used by further tests and so must
// be correct.
//
// The ExpectSuccess() and ExpectFailure() functions test for success and
// failure under generic conditions:
//
//	bool -> true is success
//	error -> nil is success
//
// It is worth describing how nil is handled because it is not obvious. A nil
// value is considered a success and consequently will cause ExpectFailure() to
// fail and ExpectSuccess() to succeed. This is because of how errors usually
// work (nil to indicate no error).
//
// All functions accept an optional list of tags. The tags are prepended to any
// failure message and are useful for identifying the iteration of a table
// driven test.
//
// The CompareWriter type implements the io.Writer interface and should be used
// to capture output. The CompareWriter.Compare() function can then be used to
// test for equality.
package test
