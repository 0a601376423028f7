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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/gopherpsx/curated"
	"github.com/jetsetilly/gopherpsx/hardware/gte"
)

// Registers is an implementation of the Digest interface. The digest is
// updated with the contents of the GTE register file, either explicitly with
// the Update() function or by attaching the Registers instance to the GTE as a
// tracer, in which case the digest is updated after every command.
//
// The digest is chained. That is, each update includes the previous value of
// the digest. The same register file updated twice will produce two different
// hash values.
type Registers struct {
	gte      *gte.GTE
	digest   [sha1.Size]byte
	buffer   []byte
	commands int
}

const registerWidth = 4

// NewRegisters is the preferred method of initialisation for the Registers
// type.
func NewRegisters(g *gte.GTE) (*Registers, error) {
	if g == nil {
		return nil, curated.Errorf("digest: registers: no GTE")
	}

	dig := &Registers{gte: g}

	// room for the previous digest at the head of the buffer
	dig.buffer = make([]byte, len(dig.digest)+gte.NumRegisters*registerWidth)

	return dig, nil
}

// Hash implements digest.Digest interface.
func (dig *Registers) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *Registers) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.commands = 0
}

// Update the digest with the current state of the register file.
func (dig *Registers) Update() {
	n := copy(dig.buffer, dig.digest[:])
	for _, v := range dig.gte.Snapshot() {
		binary.LittleEndian.PutUint32(dig.buffer[n:], v)
		n += registerWidth
	}
	dig.digest = sha1.Sum(dig.buffer)
}

// Trace implements the gte.Tracer interface. Only commands cause the digest
// to be updated.
func (dig *Registers) Trace(mode gte.TraceMode, _ uint32, _ uint32) {
	if mode == gte.TraceFunc {
		dig.Update()
		dig.commands++
	}
}

// Commands returns the number of commands included in the digest since the
// last reset.
func (dig *Registers) Commands() int {
	return dig.commands
}
