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

package pia

import (
	"sync"

	"github.com/appleone/appleone/charset"
	"github.com/appleone/appleone/hardware/keyboard"
	"github.com/appleone/appleone/hardware/memory"
	"github.com/appleone/appleone/hardware/memory/addresses"
	"github.com/appleone/appleone/logger"
)

// the number of display characters that can be waiting for the output
// handler before characters are dropped
const outputDepth = 4096

// OutputHandler receives characters written to the display. The characters
// have already been translated into host form with charset.MachineToHost().
type OutputHandler func(uint8)

// PIA implements the bus.CPUBus and bus.DebuggerBus interfaces.
type PIA struct {
	mem      *memory.Memory
	keyboard *keyboard.Queue

	// characters written to DSP waiting to be dispatched
	output chan uint8

	handlerCrit sync.Mutex
	handler     OutputHandler

	quit    chan struct{}
	done    chan struct{}
	endOnce sync.Once
}

// NewPIA is the preferred method of initialisation for the PIA type. The
// output dispatcher is started immediately and runs until End() is called.
func NewPIA(mem *memory.Memory, kb *keyboard.Queue) *PIA {
	pia := &PIA{
		mem:      mem,
		keyboard: kb,
		output:   make(chan uint8, outputDepth),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go pia.dispatch()
	return pia
}

// SetOutputHandler sets the function that receives display characters. A nil
// handler discards all output.
func (pia *PIA) SetOutputHandler(handler OutputHandler) {
	pia.handlerCrit.Lock()
	defer pia.handlerCrit.Unlock()
	pia.handler = handler
}

// End stops the output dispatcher and clears the output handler. Characters
// not yet dispatched are discarded. It is safe to call End() more than once.
func (pia *PIA) End() {
	pia.endOnce.Do(func() {
		close(pia.quit)
		<-pia.done
		pia.SetOutputHandler(nil)
	})
}

func (pia *PIA) dispatch() {
	defer close(pia.done)
	for {
		select {
		case <-pia.quit:
			return
		case c := <-pia.output:
			h, ok := charset.MachineToHost(c)
			if !ok {
				continue
			}

			pia.handlerCrit.Lock()
			handler := pia.handler
			pia.handlerCrit.Unlock()

			if handler != nil {
				handler(h)
			}
		}
	}
}

// Read is an implementation of bus.CPUBus.
func (pia *PIA) Read(address uint16) (uint8, error) {
	switch address {
	case addresses.KBDCR:
		if pia.keyboard.IsEmpty() {
			return 0x00, nil
		}
		return 0x80, nil

	case addresses.KBD:
		if c, ok := pia.keyboard.PopFirst(); ok {
			return c, nil
		}

		// nothing in the queue so the value in memory is returned. this will
		// be the last value written to the register, which is meaningless
	}

	return pia.mem.Read(address)
}

// Write is an implementation of bus.CPUBus.
func (pia *PIA) Write(address uint16, data uint8) error {
	if address == addresses.DSP {
		data &= 0x7f
		select {
		case pia.output <- data:
		default:
			logger.Logf(logger.Allow, "PIA", "display output full: %#02x dropped", data)
		}
	}

	// KBD, KBDCR and DSPCR are stored verbatim. DSP is stored with bit 7
	// cleared to indicate that the display has accepted the character
	return pia.mem.Write(address, data)
}

// Peek is an implementation of bus.DebuggerBus. The I/O registers are not
// affected.
func (pia *PIA) Peek(address uint16) (uint8, error) {
	return pia.mem.Peek(address)
}

// Poke is an implementation of bus.DebuggerBus. The I/O registers are not
// affected.
func (pia *PIA) Poke(address uint16, value uint8) error {
	return pia.mem.Poke(address, value)
}

// Pending returns the number of display characters waiting for the output
// handler.
func (pia *PIA) Pending() int {
	return len(pia.output)
}
