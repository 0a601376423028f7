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

// Package logger is the central logging facility for the emulator. Log entries
// are made of a tag and a detail string. Tags are used to indicate the part of
// the emulation making the entry. For example:
//
//	logger.Logf(env, "GTE", "unrecognised command (%08x)", cmd)
//
// Consecutive entries with the same tag and detail are folded into a single
// entry with a repeat count.
//
// Every request to log must be accompanied by a Permission. The
// environment.Environment type is the usual implementation, allowing only the
// main emulation to log. If an entry should always be made then logger.Allow
// can be used.
//
// The package level functions log to a central Logger instance. Additional
// instances can be created with NewLogger() when a separate log is required.
package logger
