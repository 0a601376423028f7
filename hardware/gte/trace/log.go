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
	"fmt"

	"github.com/jetsetilly/gopherpsx/hardware/gte"
)

// Entry is a single event in the trace.
type Entry struct {
	Mode gte.TraceMode
	N    uint32
	Data uint32
}

func (e Entry) String() string {
	if e.Mode == gte.TraceFunc {
		return fmt.Sprintf("%s%s%08x%s%08x", e.Mode, fieldSep, e.N, fieldSep, e.Data)
	}
	return fmt.Sprintf("%s%s%d%s%08x", e.Mode, fieldSep, e.N, fieldSep, e.Data)
}

// Annotation returns a short description of the entry suitable for
// presentation to the user.
func (e Entry) Annotation() string {
	switch e.Mode {
	case gte.TraceFunc:
		return fmt.Sprintf("%s [%s]", gte.Decode(e.N), gte.FlagString(e.Data))
	case gte.TraceRead:
		return fmt.Sprintf("%s -> %08x", gte.RegisterName(int(e.N)), e.Data)
	case gte.TraceWrite:
		return fmt.Sprintf("%s <- %08x", gte.RegisterName(int(e.N)), e.Data)
	}
	return ""
}

// Log implements the gte.Tracer interface.
type Log struct {
	entries []Entry

	// maximum number of entries. zero means unlimited
	limit int

	// when the limit has been reached the entries slice is used as a ring.
	// cursor is the index of the oldest entry and the next to be overwritten
	cursor  int
	wrapped bool
}

// NewLog is the preferred method of initialisation for the Log type. If limit
// is greater than zero then the oldest entries are dropped when the limit is
// reached.
func NewLog(limit int) *Log {
	return &Log{limit: limit}
}

// Trace implements the gte.Tracer interface.
func (l *Log) Trace(mode gte.TraceMode, n uint32, data uint32) {
	e := Entry{Mode: mode, N: n, Data: data}

	if l.limit <= 0 || len(l.entries) < l.limit {
		l.entries = append(l.entries, e)
		return
	}

	l.entries[l.cursor] = e
	l.cursor = (l.cursor + 1) % l.limit
	l.wrapped = true
}

// Entries returns a copy of the recorded entries, oldest first.
func (l *Log) Entries() []Entry {
	e := make([]Entry, 0, len(l.entries))
	if l.wrapped {
		e = append(e, l.entries[l.cursor:]...)
		return append(e, l.entries[:l.cursor]...)
	}
	return append(e, l.entries...)
}

// Len returns the number of entries in the log.
func (l *Log) Len() int {
	return len(l.entries)
}

// Clear removes all entries from the log.
func (l *Log) Clear() {
	l.entries = l.entries[:0]
	l.cursor = 0
	l.wrapped = false
}
