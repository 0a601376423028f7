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

package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopherpsx/curated"
	"github.com/jetsetilly/gopherpsx/digest"
	"github.com/jetsetilly/gopherpsx/environment"
	"github.com/jetsetilly/gopherpsx/hardware/gte"
	"github.com/jetsetilly/gopherpsx/hardware/gte/trace"
	"github.com/jetsetilly/gopherpsx/logger"
	"github.com/jetsetilly/gopherpsx/modalflag"
	"github.com/jetsetilly/gopherpsx/monitor"
	"github.com/jetsetilly/gopherpsx/script"
	"github.com/jetsetilly/gopherpsx/statsview"
	"github.com/jetsetilly/gopherpsx/version"
	"golang.org/x/term"
)

// number of entries kept by trace logs created by the tool
const traceLimit = 1 << 20

// exit values
const (
	exitOkay  = 0
	exitParse = 10
	exitMode  = 20
)

func main() {
	// the launch goroutine sends the exit value when it is done
	done := make(chan int)

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(done, os.Args[1:])

	exitVal := exitOkay
	select {
	case <-intChan:
		fmt.Print("\r\n")
	case exitVal = <-done:
	}

	os.Exit(exitVal)
}

func launch(done chan int, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.AddSubModes("MONITOR", "SCRIPT", "REPLAY", "DIGEST")
	echo := md.AddBool("log", false, "echo log to stdout")
	stats := md.AddBool("statsview", false, "launch runtime statistics server (if available)")
	showVersion := md.AddBool("version", false, "print version and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		done <- exitOkay
		return
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		done <- exitParse
		return
	}

	if *showVersion {
		fmt.Println(version.String())
		done <- exitOkay
		return
	}

	if *echo {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			logger.SetEcho(logger.NewColorizer(os.Stdout))
		} else {
			logger.SetEcho(os.Stdout)
		}
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("* statsview not available in this build")
		}
	}

	g := gte.NewGTE(environment.NewEnvironment(environment.MainEmulation))

	switch md.Mode() {
	case "MONITOR":
		err = runMonitor(md, g)
	case "SCRIPT":
		err = runScript(md, g)
	case "REPLAY":
		err = runReplay(md, g)
	case "DIGEST":
		err = runDigest(md, g)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md, err)
		done <- exitMode
		return
	}

	done <- exitOkay
}

func runMonitor(md *modalflag.Modes, g *gte.GTE) error {
	md.NewMode()
	withDigest := md.AddBool("digest", false, "update a register digest after every command")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf("too many arguments for %s mode", md)
	}

	mon, err := monitor.NewMonitor(g, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	if *withDigest {
		dig, err := digest.NewRegisters(g)
		if err != nil {
			return err
		}
		mon.AttachDigest(dig)
	}

	return mon.Run()
}

func runScript(md *modalflag.Modes, g *gte.GTE) error {
	md.NewMode()
	record := md.AddString("trace", "", "save a trace transcript of the script to file")
	md.AdditionalHelp("runs a lua script with access to the gte table")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf("lua script required for %s mode", md)
	case 1:
	default:
		return curated.Errorf("too many arguments for %s mode", md)
	}

	var recording *trace.Log
	if *record != "" {
		recording = trace.NewLog(traceLimit)
		g.AttachTracer(recording)
	}

	scr, err := script.NewScript(g, os.Stdout)
	if err != nil {
		return err
	}
	defer scr.Close()

	err = scr.RunFile(md.GetArg(0))
	if err != nil {
		return err
	}

	if recording != nil {
		return trace.Save(*record, recording.Entries())
	}

	return nil
}

func runReplay(md *modalflag.Modes, g *gte.GTE) error {
	md.NewMode()
	strict := md.AddBool("strict", false, "stop on first mismatch")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf("trace transcript required for %s mode", md)
	case 1:
	default:
		return curated.Errorf("too many arguments for %s mode", md)
	}

	entries, err := trace.Load(md.GetArg(0))
	if err != nil {
		return err
	}

	err = trace.Replay(entries, g, *strict)
	if err != nil {
		return err
	}

	fmt.Printf("! replay of %d entries matched\n", len(entries))
	return nil
}

func runDigest(md *modalflag.Modes, g *gte.GTE) error {
	md.NewMode()
	dump := md.AddString("memviz", "", "write register file layout as a graphviz document")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf("lua script required for %s mode", md)
	case 1:
	default:
		return curated.Errorf("too many arguments for %s mode", md)
	}

	dig, err := digest.NewRegisters(g)
	if err != nil {
		return err
	}
	g.AttachTracer(dig)

	scr, err := script.NewScript(g, os.Stdout)
	if err != nil {
		return err
	}
	defer scr.Close()
	scr.AttachDigest(dig)

	err = scr.RunFile(md.GetArg(0))
	if err != nil {
		return err
	}

	fmt.Printf("%s (%d commands)\n", dig.Hash(), dig.Commands())

	if *dump != "" {
		f, err := os.Create(*dump)
		if err != nil {
			return curated.Errorf("memviz: %v", err)
		}
		memviz.Map(f, &g.Registers)
		if err := f.Close(); err != nil {
			return curated.Errorf("memviz: %v", err)
		}
	}

	return nil
}
