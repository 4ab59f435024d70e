// This file is part of appleone.
//
// appleone is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// appleone is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with appleone.  If not, see <https://www.gnu.org/licenses/>.

package hardware

import (
	"fmt"
	"io"

	"github.com/appleone/appleone/hardware/memory/addresses"
	"github.com/bradleyjkemp/memviz"
)

type keyboardState struct {
	Pending  int
	Capacity int
}

type displayState struct {
	Pending int
	DSP     uint8
	DSPCR   uint8
}

// the parts of the machine that are drawn by Visualise(). the address space
// is left out because sixty-four thousand nodes isn't useful to anyone
type machineState struct {
	Engine   string
	Halted   bool
	Frames   uint64
	Cycles   uint64
	Keyboard *keyboardState
	Display  *displayState
}

// Visualise writes a graphviz description of the machine's current state to
// w. The output can be rendered with the dot tool.
func (a1 *AppleOne) Visualise(w io.Writer) {
	a1.crit.Lock()
	s := machineState{
		Halted: a1.halted.Load(),
		Frames: a1.frames.Load(),
		Cycles: a1.cycles.Load(),
		Keyboard: &keyboardState{
			Pending:  a1.Keyboard.Len(),
			Capacity: a1.Keyboard.Cap(),
		},
		Display: &displayState{
			Pending: a1.PIA.Pending(),
		},
	}
	if str, ok := a1.engine.(fmt.Stringer); ok {
		s.Engine = str.String()
	}
	s.Display.DSP, _ = a1.PIA.Peek(addresses.DSP)
	s.Display.DSPCR, _ = a1.PIA.Peek(addresses.DSPCR)
	a1.crit.Unlock()

	memviz.Map(w, &s)
}
