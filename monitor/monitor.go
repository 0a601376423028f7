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

package monitor

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/buildkite/shellwords"
	"golang.org/x/term"

	"github.com/jetsetilly/gopherpsx/curated"
	"github.com/jetsetilly/gopherpsx/digest"
	"github.com/jetsetilly/gopherpsx/hardware/gte"
	"github.com/jetsetilly/gopherpsx/hardware/gte/trace"
)

const prompt = "[ gte ] > "

// Monitor is a line based interface to a GTE.
type Monitor struct {
	gte *gte.GTE

	input     io.Reader
	output    io.Writer
	realInput bool

	// optional digest and trace log. both are fed by the monitor's tracer
	digest    *digest.Registers
	recording *trace.Log
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(g *gte.GTE, input io.Reader, output io.Writer) (*Monitor, error) {
	if g == nil {
		return nil, curated.Errorf("monitor: no GTE")
	}

	mon := &Monitor{
		gte:    g,
		input:  input,
		output: output,
	}

	if f, ok := input.(*os.File); ok {
		mon.realInput = term.IsTerminal(int(f.Fd()))
	}

	g.AttachTracer(mon)

	return mon, nil
}

// AttachDigest adds a digest to the monitor. The digest will be updated after
// every command.
func (mon *Monitor) AttachDigest(dig *digest.Registers) {
	mon.digest = dig
}

// Trace implements the gte.Tracer interface.
func (mon *Monitor) Trace(mode gte.TraceMode, n uint32, data uint32) {
	if mon.digest != nil {
		mon.digest.Trace(mode, n, data)
	}
	if mon.recording != nil {
		mon.recording.Trace(mode, n, data)
	}
}

// Run reads and executes commands until the input is exhausted or the QUIT
// command is executed. Errors from individual commands are printed and do not
// end the session.
func (mon *Monitor) Run() error {
	scanner := bufio.NewScanner(mon.input)

	for {
		if mon.realInput {
			fmt.Fprint(mon.output, prompt)
		}

		if !scanner.Scan() {
			break
		}

		quit, err := mon.Execute(scanner.Text())
		if err != nil {
			fmt.Fprintf(mon.output, "* %v\n", err)
		}
		if quit {
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		return curated.Errorf("monitor: %v", err)
	}

	return nil
}

// Execute a single command line. Returns true if the QUIT command was
// executed.
func (mon *Monitor) Execute(line string) (bool, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return false, nil
	}

	toks, err := shellwords.Split(line)
	if err != nil {
		return false, curated.Errorf("monitor: %v", err)
	}
	if len(toks) == 0 {
		return false, nil
	}

	name := strings.ToUpper(toks[0])
	if name == "QUIT" {
		return true, nil
	}

	cmd, ok := commands[name]
	if !ok {
		return false, curated.Errorf(UnknownCommand, toks[0])
	}

	return false, cmd.exec(mon, toks[1:])
}
