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

package terminal

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/appleone/appleone/charset"
	"github.com/appleone/appleone/hardware/pia"
	"github.com/appleone/appleone/logger"
	"github.com/appleone/appleone/terminal/easyterm"
)

// Machine is the interface to the emulation used by the terminal host. It is
// satisfied by hardware.AppleOne.
type Machine interface {
	InputCharacter(c uint8) error
	SetOutputHandler(handler pia.OutputHandler)
	HaltExecution(halt bool)
	IsHalted() bool
	Reset() error
}

// Control keys handled by the host rather than being sent to the machine.
const (
	KeyReset = 18 // ctrl-r
	KeyHalt  = 20 // ctrl-t
)

// Host connects a Machine to a pair of streams.
type Host struct {
	machine Machine

	crit       sync.Mutex
	output     io.Writer
	echoDelete bool
}

// NewHost is the preferred method of initialisation for the Host type. The
// host installs itself as the machine's output handler.
func NewHost(machine Machine, output io.Writer, echoDelete bool) *Host {
	h := &Host{
		machine:    machine,
		output:     output,
		echoDelete: echoDelete,
	}
	machine.SetOutputHandler(h.Output)
	return h
}

// SetEchoDelete changes how the machine's erase character is displayed.
func (h *Host) SetEchoDelete(echoDelete bool) {
	h.crit.Lock()
	defer h.crit.Unlock()
	h.echoDelete = echoDelete
}

// Output prints a single character from the machine.
func (h *Host) Output(c uint8) {
	h.crit.Lock()
	defer h.crit.Unlock()

	var err error
	switch {
	case c == charset.HostNewline:
		_, err = io.WriteString(h.output, "\r\n")
	case c == charset.MachineErase && h.echoDelete:
		_, err = io.WriteString(h.output, "\b \b")
	default:
		_, err = h.output.Write([]byte{c})
	}

	if err != nil {
		logger.Logf(logger.Allow, "TERMINAL", "output: %v", err)
	}
}

// Input sends a single key press from the terminal to the machine. Returns
// false if the key ends the session.
func (h *Host) Input(c uint8) bool {
	switch c {
	case easyterm.KeyInterrupt, easyterm.KeyEndOfFile:
		return false
	case KeyReset:
		err := h.machine.Reset()
		if err != nil {
			logger.Logf(logger.Allow, "TERMINAL", "reset: %v", err)
		}
		return true
	case KeyHalt:
		h.machine.HaltExecution(!h.machine.IsHalted())
		return true
	case easyterm.KeyCarriageReturn:
		c = charset.HostNewline
	case easyterm.KeyBackspace:
		c = charset.HostDelete
	}

	// errors have already been logged and a dropped key is not fatal
	_ = h.machine.InputCharacter(c)

	return true
}

// Serve reads key presses from the input stream until the session is ended
// by a key press, the input stream is exhausted or the context is done.
//
// The input stream is read on a separate goroutine which will remain blocked
// in Read() until the stream delivers more input or is closed.
func (h *Host) Serve(ctx context.Context, input io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keys := make(chan uint8)
	readErr := make(chan error, 1)

	go func() {
		b := make([]byte, 1)
		for {
			n, err := input.Read(b)
			if n > 0 {
				select {
				case keys <- b[0]:
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				readErr <- err
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-readErr:
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		case c := <-keys:
			if !h.Input(c) {
				return nil
			}
		}
	}
}
