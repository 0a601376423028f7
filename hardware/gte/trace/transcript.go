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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopherpsx/curated"
	"github.com/jetsetilly/gopherpsx/hardware/gte"
)

// the first line of every transcript
const header = "# gopherpsx gte trace"

const fieldSep = ", "

const (
	fieldMode int = iota
	fieldN
	fieldData
	numFields
)

// Sentinal errors returned when reading a transcript.
const (
	MissingHeader  = "trace: transcript header missing"
	MalformedEntry = "trace: malformed entry at line %d: %v"
)

// Write the entries to the io.Writer as a transcript.
func Write(w io.Writer, entries []Entry) error {
	b := bufio.NewWriter(w)

	if _, err := fmt.Fprintln(b, header); err != nil {
		return curated.Errorf("trace: %v", err)
	}

	for _, e := range entries {
		if _, err := fmt.Fprintln(b, e.String()); err != nil {
			return curated.Errorf("trace: %v", err)
		}
	}

	if err := b.Flush(); err != nil {
		return curated.Errorf("trace: %v", err)
	}

	return nil
}

// Read a transcript from the io.Reader.
func Read(r io.Reader) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)

	if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != header {
		if err := scanner.Err(); err != nil {
			return nil, curated.Errorf("trace: %v", err)
		}
		return nil, curated.Errorf(MissingHeader)
	}

	line := 1
	for scanner.Scan() {
		line++

		s := strings.TrimSpace(scanner.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}

		e, err := parseEntry(s)
		if err != nil {
			return nil, curated.Errorf(MalformedEntry, line, err)
		}
		entries = append(entries, e)
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf("trace: %v", err)
	}

	return entries, nil
}

func parseEntry(s string) (Entry, error) {
	var e Entry

	toks := strings.Split(s, fieldSep)
	if len(toks) != numFields {
		return e, fmt.Errorf("expected %d fields", numFields)
	}

	switch toks[fieldMode] {
	case gte.TraceRead.String():
		e.Mode = gte.TraceRead
	case gte.TraceWrite.String():
		e.Mode = gte.TraceWrite
	case gte.TraceFunc.String():
		e.Mode = gte.TraceFunc
	default:
		return e, fmt.Errorf("unknown mode (%s)", toks[fieldMode])
	}

	base := 10
	if e.Mode == gte.TraceFunc {
		base = 16
	}
	n, err := strconv.ParseUint(toks[fieldN], base, 32)
	if err != nil {
		return e, err
	}
	if e.Mode != gte.TraceFunc && n >= gte.NumRegisters {
		return e, fmt.Errorf("register index out of range (%d)", n)
	}
	e.N = uint32(n)

	data, err := strconv.ParseUint(toks[fieldData], 16, 32)
	if err != nil {
		return e, err
	}
	e.Data = uint32(data)

	return e, nil
}

// Save the entries to the named file.
func Save(filename string, entries []Entry) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("trace: %v", err)
	}

	err = Write(f, entries)
	if err != nil {
		f.Close()
		return err
	}

	err = f.Close()
	if err != nil {
		return curated.Errorf("trace: %v", err)
	}

	return nil
}

// Load entries from the named file.
func Load(filename string) ([]Entry, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf("trace: %v", err)
	}
	defer f.Close()

	return Read(f)
}
