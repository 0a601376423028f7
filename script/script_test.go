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

package script_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherpsx/curated"
	"github.com/jetsetilly/gopherpsx/digest"
	"github.com/jetsetilly/gopherpsx/hardware/gte"
	"github.com/jetsetilly/gopherpsx/script"
	"github.com/jetsetilly/gopherpsx/test"
)

const projection = `
gte.write("rt11rt12", 0x1000)
gte.write("rt22rt23", 0x1000)
gte.write("rt33", 0x1000)
gte.write(0, 0x00320064)
gte.write("vz0", 200)
gte.write("h", 512)
print(gte.command("RTPS sf"))
print(gte.read("sz3"), gte.read("sxy2"))
print(gte.flag())
`

func TestScript(t *testing.T) {
	g := gte.NewGTE(nil)
	w := &test.CompareWriter{}

	scr, err := script.NewScript(g, w)
	test.DemandSuccess(t, err)
	defer scr.Close()

	test.ExpectSuccess(t, scr.Run(projection))
	test.ExpectEquality(t, w.String(), "true\n200\t6488263\nerror div\n")
	test.ExpectEquality(t, g.SXY[2], gte.ScreenXY{X: 199, Y: 99})
}

func TestScriptFunctions(t *testing.T) {
	g := gte.NewGTE(nil)
	w := &test.CompareWriter{}

	scr, err := script.NewScript(g, w)
	test.DemandSuccess(t, err)
	defer scr.Close()

	test.ExpectSuccess(t, scr.Run(`print(gte.name(63), gte.decode(0x4a080412))`))
	test.ExpectEquality(t, w.String(), "flag\tMVMVA sf lm rt v0 tr\n")

	// negative values are written as their two's complement
	w.Clear()
	test.ExpectSuccess(t, scr.Run(`gte.write("ir1", -100); print(gte.read("ir1"))`))
	test.ExpectEquality(t, w.String(), "4294967196\n")

	w.Clear()
	test.ExpectSuccess(t, scr.Run(`print(gte.command(0x4a000000))`))
	test.ExpectEquality(t, w.String(), "false\n")

	w.Clear()
	test.ExpectSuccess(t, scr.Run(`gte.reset(); print(gte.read("lzcr"))`))
	test.ExpectEquality(t, w.String(), "32\n")
}

func TestScriptErrors(t *testing.T) {
	_, err := script.NewScript(nil, nil)
	test.ExpectFailure(t, err)

	g := gte.NewGTE(nil)
	scr, err := script.NewScript(g, nil)
	test.DemandSuccess(t, err)
	defer scr.Close()

	for _, s := range []string{
		`gte.read(64)`,
		`gte.read("cop0")`,
		`gte.write("ir1")`,
		`gte.command("RTPQ")`,
		`gte.digest()`,
		`this is not lua`,
	} {
		err := scr.Run(s)
		test.ExpectFailure(t, err, s)
		test.ExpectSuccess(t, curated.IsAny(err), s)
	}
}

func TestScriptDigest(t *testing.T) {
	g := gte.NewGTE(nil)
	dig, err := digest.NewRegisters(g)
	test.DemandSuccess(t, err)
	g.AttachTracer(dig)

	w := &test.CompareWriter{}
	scr, err := script.NewScript(g, w)
	test.DemandSuccess(t, err)
	defer scr.Close()
	scr.AttachDigest(dig)

	test.ExpectSuccess(t, scr.Run(projection))
	w.Clear()
	test.ExpectSuccess(t, scr.Run(`print(gte.digest())`))
	test.ExpectEquality(t, w.String(), dig.Hash()+"\n")
}

func TestScriptFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "projection.lua")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(projection), 0o644))

	g := gte.NewGTE(nil)
	scr, err := script.NewScript(g, nil)
	test.DemandSuccess(t, err)
	defer scr.Close()

	test.ExpectSuccess(t, scr.RunFile(fn))
	test.ExpectEquality(t, g.Read(gte.SZ3), 200)

	test.ExpectFailure(t, scr.RunFile(filepath.Join(t.TempDir(), "missing.lua")))
}
