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

package script

import (
	"fmt"
	"io"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/jetsetilly/gopherpsx/curated"
	"github.com/jetsetilly/gopherpsx/digest"
	"github.com/jetsetilly/gopherpsx/hardware/gte"
)

// Script is a Lua environment connected to a GTE.
type Script struct {
	state  *lua.LState
	gte    *gte.GTE
	digest *digest.Registers
	output io.Writer
}

// NewScript is the preferred method of initialisation for the Script type.
func NewScript(g *gte.GTE, output io.Writer) (*Script, error) {
	if g == nil {
		return nil, curated.Errorf("script: no GTE")
	}
	if output == nil {
		output = io.Discard
	}

	scr := &Script{
		state:  lua.NewState(),
		gte:    g,
		output: output,
	}

	tbl := scr.state.NewTable()
	scr.state.SetFuncs(tbl, map[string]lua.LGFunction{
		"read":    scr.read,
		"write":   scr.write,
		"command": scr.command,
		"flag":    scr.flag,
		"reset":   scr.reset,
		"name":    scr.name,
		"decode":  scr.decode,
		"digest":  scr.hash,
	})
	scr.state.SetGlobal("gte", tbl)
	scr.state.SetGlobal("print", scr.state.NewFunction(scr.print))

	return scr, nil
}

// AttachDigest makes the digest available to the script through gte.digest().
func (scr *Script) AttachDigest(dig *digest.Registers) {
	scr.digest = dig
}

// Run the Lua source.
func (scr *Script) Run(source string) error {
	if err := scr.state.DoString(source); err != nil {
		return curated.Errorf("script: %v", err)
	}
	return nil
}

// RunFile runs the Lua source in the named file.
func (scr *Script) RunFile(filename string) error {
	if err := scr.state.DoFile(filename); err != nil {
		return curated.Errorf("script: %v", err)
	}
	return nil
}

// Close the Lua environment. The Script instance should not be used after
// calling Close().
func (scr *Script) Close() {
	scr.state.Close()
}

// register argument may be a number or a register name
func (scr *Script) register(L *lua.LState, n int) int {
	switch v := L.Get(n).(type) {
	case lua.LNumber:
		r := int(v)
		if r < 0 || r >= gte.NumRegisters {
			L.ArgError(n, fmt.Sprintf("register index out of range (%d)", r))
		}
		return r
	case lua.LString:
		r, ok := gte.RegisterIndex(string(v))
		if !ok {
			L.ArgError(n, fmt.Sprintf("unknown register (%s)", string(v)))
		}
		return r
	}
	L.ArgError(n, "register index or name expected")
	return 0
}

func (scr *Script) read(L *lua.LState) int {
	L.Push(lua.LNumber(scr.gte.Read(scr.register(L, 1))))
	return 1
}

func (scr *Script) write(L *lua.LState) int {
	n := scr.register(L, 1)
	v := L.CheckNumber(2)
	scr.gte.Write(n, uint32(int64(v)))
	return 0
}

func (scr *Script) command(L *lua.LState) int {
	var cmd uint32

	switch v := L.Get(1).(type) {
	case lua.LNumber:
		cmd = uint32(int64(v))
	case lua.LString:
		ins, err := gte.Assemble(strings.Fields(string(v)))
		if err != nil {
			L.ArgError(1, err.Error())
		}
		cmd = ins.Encode()
	default:
		L.ArgError(1, "command word or instruction expected")
	}

	L.Push(lua.LBool(scr.gte.Command(cmd)))
	return 1
}

func (scr *Script) flag(L *lua.LState) int {
	L.Push(lua.LString(gte.FlagString(scr.gte.FLAG)))
	return 1
}

func (scr *Script) reset(L *lua.LState) int {
	scr.gte.Reset()
	return 0
}

func (scr *Script) name(L *lua.LState) int {
	L.Push(lua.LString(gte.RegisterName(scr.register(L, 1))))
	return 1
}

func (scr *Script) decode(L *lua.LState) int {
	v := L.CheckNumber(1)
	L.Push(lua.LString(gte.Decode(uint32(int64(v))).String()))
	return 1
}

func (scr *Script) hash(L *lua.LState) int {
	if scr.digest == nil {
		L.RaiseError("no digest attached")
		return 0
	}
	L.Push(lua.LString(scr.digest.Hash()))
	return 1
}

func (scr *Script) print(L *lua.LState) int {
	top := L.GetTop()
	s := make([]string, 0, top)
	for i := 1; i <= top; i++ {
		s = append(s, L.ToStringMeta(L.Get(i)).String())
	}
	fmt.Fprintln(scr.output, strings.Join(s, "\t"))
	return 0
}
