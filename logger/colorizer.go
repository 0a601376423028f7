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

package logger

import (
	"io"
	"strings"
)

// ANSI pens used by the Colorizer
const (
	penTag    = "\033[2;36m"
	penNormal = "\033[0m"
)

// Colorizer applies basic coloring rules to logging output. It is intended to
// be used with SetEcho() when the output is known to be a terminal.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface. The tag part of each line is
// written with a dim pen.
func (c Colorizer) Write(p []byte) (n int, err error) {
	for _, l := range strings.SplitAfter(string(p), "\n") {
		if l == "" {
			continue
		}

		var s string
		if tag, detail, ok := strings.Cut(l, ": "); ok {
			s = penTag + tag + ":" + penNormal + " " + detail
		} else {
			s = l
		}

		if _, err := io.WriteString(c.out, s); err != nil {
			return n, err
		}
		n += len(l)
	}

	return n, nil
}
