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

package trace

import (
	"github.com/jetsetilly/gopherpsx/curated"
	"github.com/jetsetilly/gopherpsx/hardware/gte"
	"github.com/jetsetilly/gopherpsx/logger"
)

// Sentinal errors returned by Replay().
const (
	ReplayMismatch = "trace: mismatch at entry %d: %s: %08x does not equal %08x"
	ReplayFailed   = "trace: replay failed with %d mismatches: %v"
	ReplayInvalid  = "trace: invalid entry %d: %s"
)

// Replay the entries on the GTE. Register writes and commands are performed
// and register reads are compared against the value in the entry. Commands
// compare the resulting FLAG register.
//
// If strict is true then the first mismatch is returned as a ReplayMismatch
// error. Otherwise every mismatch is logged and a ReplayFailed error is
// returned after all entries have been replayed. The ReplayFailed error
// wraps the first mismatch.
func Replay(entries []Entry, g *gte.GTE, strict bool) error {
	var first error
	var count int

	for i, e := range entries {
		var got uint32

		switch e.Mode {
		case gte.TraceWrite:
			if e.N >= gte.NumRegisters {
				return curated.Errorf(ReplayInvalid, i+1, e)
			}
			g.Write(int(e.N), e.Data)
			continue

		case gte.TraceRead:
			if e.N >= gte.NumRegisters {
				return curated.Errorf(ReplayInvalid, i+1, e)
			}
			got = g.Read(int(e.N))

		case gte.TraceFunc:
			g.Command(e.N)
			got = g.FLAG

		default:
			return curated.Errorf(ReplayInvalid, i+1, e)
		}

		if got != e.Data {
			err := curated.Errorf(ReplayMismatch, i+1, e.Annotation(), got, e.Data)
			if strict {
				return err
			}
			logger.Log(logger.Allow, "trace", err)
			if first == nil {
				first = err
			}
			count++
		}
	}

	if count > 0 {
		return curated.Errorf(ReplayFailed, count, first)
	}

	return nil
}
