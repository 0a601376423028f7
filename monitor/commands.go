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
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/gopherpsx/curated"
	"github.com/jetsetilly/gopherpsx/hardware/gte"
	"github.com/jetsetilly/gopherpsx/hardware/gte/trace"
	"github.com/jetsetilly/gopherpsx/logger"
)

// Sentinal errors returned by Execute().
const (
	UnknownCommand  = "monitor: unknown command (%s)"
	MissingArgument = "monitor: %s: missing argument"
	InvalidArgument = "monitor: %s: invalid argument (%s)"
	NoDigest        = "monitor: no digest attached"
)

type command struct {
	usage string
	help  string
	exec  func(mon *Monitor, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"READ":    {"READ <reg>", "show value of register", (*Monitor).read},
		"WRITE":   {"WRITE <reg> <value>", "set value of register", (*Monitor).write},
		"COMMAND": {"COMMAND <word | instruction>", "run command", (*Monitor).command},
		"REGS":    {"REGS", "show all registers", (*Monitor).regs},
		"FLAG":    {"FLAG", "describe FLAG register", (*Monitor).flag},
		"RESET":   {"RESET", "reset all registers", (*Monitor).reset},
		"DIGEST":  {"DIGEST", "show hash of register digest", (*Monitor).digestHash},
		"TRACE":   {"TRACE [ON | OFF | LIST | SAVE <file>]", "control trace recording", (*Monitor).trace},
		"MEMVIZ":  {"MEMVIZ <file>", "save register file as graphviz document", (*Monitor).memviz},
		"LOG":     {"LOG [n | TAG <tag>]", "show last n log entries or entries with tag", (*Monitor).log},
		"HELP":    {"HELP", "list commands", (*Monitor).help},
		"QUIT":    {"QUIT", "end session", nil},
	}
}

func (mon *Monitor) printf(format string, args ...any) {
	fmt.Fprintf(mon.output, format, args...)
	fmt.Fprintln(mon.output)
}

func parseRegister(cmd string, arg string) (int, error) {
	if n, ok := gte.RegisterIndex(arg); ok {
		return n, nil
	}
	n, err := strconv.ParseUint(arg, 0, 8)
	if err != nil || n >= gte.NumRegisters {
		return 0, curated.Errorf(InvalidArgument, cmd, arg)
	}
	return int(n), nil
}

func parseValue(cmd string, arg string) (uint32, error) {
	v, err := strconv.ParseInt(arg, 0, 64)
	if err != nil || v < -0x80000000 || v > 0xffffffff {
		return 0, curated.Errorf(InvalidArgument, cmd, arg)
	}
	return uint32(v), nil
}

func (mon *Monitor) read(args []string) error {
	if len(args) < 1 {
		return curated.Errorf(MissingArgument, "READ")
	}
	n, err := parseRegister("READ", args[0])
	if err != nil {
		return err
	}
	mon.printf("%s: %08x", gte.RegisterName(n), mon.gte.Read(n))
	return nil
}

func (mon *Monitor) write(args []string) error {
	if len(args) < 2 {
		return curated.Errorf(MissingArgument, "WRITE")
	}
	n, err := parseRegister("WRITE", args[0])
	if err != nil {
		return err
	}
	v, err := parseValue("WRITE", args[1])
	if err != nil {
		return err
	}
	mon.gte.Write(n, v)
	return nil
}

func (mon *Monitor) command(args []string) error {
	if len(args) < 1 {
		return curated.Errorf(MissingArgument, "COMMAND")
	}

	var cmd uint32

	if v, err := strconv.ParseUint(args[0], 0, 32); err == nil && len(args) == 1 {
		cmd = uint32(v)
	} else {
		ins, err := gte.Assemble(strings.Fields(strings.Join(args, " ")))
		if err != nil {
			return curated.Errorf("monitor: COMMAND: %v", err)
		}
		cmd = ins.Encode()
	}

	ins := gte.Decode(cmd)
	if !mon.gte.Command(cmd) {
		mon.printf("%s: not recognised", ins)
		return nil
	}
	mon.printf("%s: %s", ins, gte.FlagString(mon.gte.FLAG))
	return nil
}

func (mon *Monitor) regs(_ []string) error {
	fmt.Fprint(mon.output, mon.gte.String())
	return nil
}

func (mon *Monitor) flag(_ []string) error {
	mon.printf("%08x %s", mon.gte.FLAG, gte.FlagString(mon.gte.FLAG))
	return nil
}

func (mon *Monitor) reset(_ []string) error {
	mon.gte.Reset()
	return nil
}

func (mon *Monitor) digestHash(_ []string) error {
	if mon.digest == nil {
		return curated.Errorf(NoDigest)
	}
	mon.printf("%s", mon.digest.Hash())
	return nil
}

func (mon *Monitor) trace(args []string) error {
	if len(args) == 0 {
		if mon.recording == nil {
			mon.printf("trace is off")
		} else {
			mon.printf("trace is on (%d entries)", mon.recording.Len())
		}
		return nil
	}

	switch strings.ToUpper(args[0]) {
	case "ON":
		if mon.recording == nil {
			mon.recording = trace.NewLog(0)
		}
	case "OFF":
		mon.recording = nil
	case "LIST":
		if mon.recording == nil {
			return curated.Errorf("monitor: TRACE: trace is off")
		}
		for _, e := range mon.recording.Entries() {
			mon.printf("%s", e.Annotation())
		}
	case "SAVE":
		if len(args) < 2 {
			return curated.Errorf(MissingArgument, "TRACE SAVE")
		}
		if mon.recording == nil {
			return curated.Errorf("monitor: TRACE: trace is off")
		}
		if err := trace.Save(args[1], mon.recording.Entries()); err != nil {
			return curated.Errorf("monitor: TRACE: %v", err)
		}
	default:
		return curated.Errorf(InvalidArgument, "TRACE", args[0])
	}

	return nil
}

func (mon *Monitor) memviz(args []string) error {
	if len(args) < 1 {
		return curated.Errorf(MissingArgument, "MEMVIZ")
	}

	f, err := os.Create(args[0])
	if err != nil {
		return curated.Errorf("monitor: MEMVIZ: %v", err)
	}
	memviz.Map(f, &mon.gte.Registers)

	if err := f.Close(); err != nil {
		return curated.Errorf("monitor: MEMVIZ: %v", err)
	}
	return nil
}

func (mon *Monitor) log(args []string) error {
	if len(args) == 0 {
		logger.Write(mon.output)
		return nil
	}

	if strings.ToUpper(args[0]) == "TAG" {
		if len(args) < 2 {
			return curated.Errorf(MissingArgument, "LOG TAG")
		}
		logger.BorrowLog(func(entries []logger.Entry) {
			for i := range entries {
				if strings.EqualFold(entries[i].Tag, args[1]) {
					fmt.Fprint(mon.output, entries[i].String())
				}
			}
		})
		return nil
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return curated.Errorf(InvalidArgument, "LOG", args[0])
	}
	logger.Tail(mon.output, n)
	return nil
}

func (mon *Monitor) help(_ []string) error {
	names := make([]string, 0, len(commands))
	for n := range commands {
		names = append(names, n)
	}
	sort.Strings(names)

	for _, n := range names {
		mon.printf("%-40s %s", commands[n].usage, commands[n].help)
	}
	return nil
}
