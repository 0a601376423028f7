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

package modalflag_test

import (
	"testing"

	"github.com/jetsetilly/gopherpsx/modalflag"
	"github.com/jetsetilly/gopherpsx/test"
)

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"foo", "bar"})

	r, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(0), "foo")
	test.ExpectEquality(t, md.GetArg(1), "bar")
	test.ExpectEquality(t, md.GetArg(2), "")
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"test.lua"})
	md.AddSubModes("MONITOR", "SCRIPT")

	r, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "MONITOR")
	test.ExpectEquality(t, md.GetArg(0), "test.lua")
}

func TestSelectedMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-log", "replay", "-strict", "trace.txt"})
	md.AddSubModes("MONITOR", "SCRIPT", "REPLAY")
	log := md.AddBool("log", false, "echo log")

	r, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, modalflag.ParseContinue)
	test.ExpectEquality(t, *log, true)
	test.ExpectEquality(t, md.Mode(), "REPLAY")

	md.NewMode()
	strict := md.AddBool("strict", false, "stop on first mismatch")
	r, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, modalflag.ParseContinue)
	test.ExpectEquality(t, *strict, true)
	test.ExpectEquality(t, md.Path(), "REPLAY")
	test.ExpectEquality(t, md.String(), "REPLAY")
	test.ExpectEquality(t, len(md.RemainingArgs()), 1)
	test.ExpectEquality(t, md.GetArg(0), "trace.txt")
}

func TestNestedModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"digest", "regs", "-memviz", "out.dot"})
	md.AddSubModes("MONITOR", "DIGEST")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)

	md.NewMode()
	md.AddSubModes("COMMANDS", "REGS")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "REGS")
	test.ExpectEquality(t, md.Path(), "DIGEST/REGS")

	md.NewMode()
	memviz := md.AddString("memviz", "", "write register layout")
	count := md.AddInt("count", 10, "number of commands")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *memviz, "out.dot")
	test.ExpectEquality(t, *count, 10)
	test.ExpectEquality(t, len(md.RemainingArgs()), 0)
}

func TestBadFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-nosuchflag"})
	md.AddSubModes("MONITOR")

	r, err := md.Parse()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, r, modalflag.ParseError)
}

func TestHelp(t *testing.T) {
	tw := &test.CompareWriter{}
	md := modalflag.Modes{Output: tw}

	md.NewArgs([]string{"-help"})
	r, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, modalflag.ParseHelp)
	test.ExpectEquality(t, tw.String(), "No help available\n")

	tw.Clear()
	md.NewArgs([]string{"-help"})
	md.AddSubModes("MONITOR", "SCRIPT")
	r, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, modalflag.ParseHelp)
	test.ExpectEquality(t, tw.String(), "Usage:\n  available sub-modes: MONITOR, SCRIPT\n    default: MONITOR\n")

	tw.Clear()
	md.NewArgs([]string{"script", "-help"})
	md.AddSubModes("MONITOR", "SCRIPT")
	_, _ = md.Parse()
	md.NewMode()
	md.AdditionalHelp("runs a lua script")
	r, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, modalflag.ParseHelp)
	test.ExpectEquality(t, tw.String(), "Usage for SCRIPT mode:\n\nruns a lua script\n")
}
