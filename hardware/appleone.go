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
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/appleone/appleone/charset"
	"github.com/appleone/appleone/hardware/cpu"
	"github.com/appleone/appleone/hardware/keyboard"
	"github.com/appleone/appleone/hardware/limiter"
	"github.com/appleone/appleone/hardware/memory"
	"github.com/appleone/appleone/hardware/memory/addresses"
	"github.com/appleone/appleone/hardware/pia"
	"github.com/appleone/appleone/hardware/preferences"
	"github.com/appleone/appleone/hardware/rom"
	"github.com/appleone/appleone/logger"
	"github.com/appleone/appleone/prefs"
)

// Sentinel errors returned by the AppleOne type.
var (
	ErrInvalidCharacter = errors.New("appleone: character cannot be sent to the machine")
	ErrEnded            = errors.New("appleone: emulation has ended")
	ErrRunning          = errors.New("appleone: emulation is already running")
)

// AppleOne is the main container for the emulated components of the Apple-1.
type AppleOne struct {
	Prefs *preferences.Preferences

	Mem      *memory.Memory
	PIA      *pia.PIA
	Keyboard *keyboard.Queue

	// the component executing instructions. the CPU by default
	engine Engine

	limiter *limiter.Limiter

	// halted is read at the start of every frame
	halted atomic.Bool

	// crit is held while a batch of instructions is being executed. host
	// goroutines that change memory must also hold it
	crit sync.Mutex

	// cycles executed beyond the budget of the previous frame. the overshoot
	// is deducted from the budget of the next frame
	overshoot int

	// counts of the frames and cycles executed since creation
	frames atomic.Uint64
	cycles atomic.Uint64

	// runCrit protects the fields used to stop the Run() loop
	runCrit sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	ended   bool
}

// NewAppleOne creates a new Apple-1 and everything associated with the
// hardware. The machine is reset and ready to run.
func NewAppleOne(p *preferences.Preferences) (*AppleOne, error) {
	a1 := &AppleOne{
		Prefs: p,
	}

	var err error

	a1.Mem, err = memory.NewMemory(rom.WozMon(), addresses.OriginROM)
	if err != nil {
		return nil, fmt.Errorf("appleone: %w", err)
	}

	a1.Keyboard = keyboard.NewQueue(p.KeyboardDepth.Get().(int))
	a1.PIA = pia.NewPIA(a1.Mem, a1.Keyboard)
	a1.engine = cpu.NewCPU(a1.PIA)

	a1.limiter = limiter.NewLimiter(p.FPS.Get().(float64))
	p.FPS.SetHookPost(func(v prefs.Value) error {
		a1.limiter.SetLimit(v.(float64))
		return nil
	})

	err = a1.reset()
	if err != nil {
		a1.PIA.End()
		return nil, err
	}

	return a1, nil
}

// AttachEngine replaces the engine used to execute instructions. The engine is
// reset and its program counter loaded from the reset vector.
func (a1 *AppleOne) AttachEngine(e Engine) error {
	a1.crit.Lock()
	defer a1.crit.Unlock()
	a1.engine = e
	a1.overshoot = 0
	return a1.resetEngine()
}

// InputCharacter sends a host character to the machine's keyboard. The
// character is translated and has its high bit set before it is queued.
//
// Characters that cannot be translated or that do not fit in the queue are
// dropped and an error returned. Neither case affects the running machine.
func (a1 *AppleOne) InputCharacter(c uint8) error {
	m, ok := charset.HostToMachine(c)
	if !ok {
		return fmt.Errorf("%w: %#02x", ErrInvalidCharacter, c)
	}

	err := a1.Keyboard.Append(m | 0x80)
	if err != nil {
		logger.Log(logger.Allow, "KEYBOARD", err.Error())
		return err
	}

	return nil
}

// InputString sends every character in s to the machine's keyboard. It stops
// at the first character that cannot be queued.
func (a1 *AppleOne) InputString(s string) error {
	for i := 0; i < len(s); i++ {
		err := a1.InputCharacter(s[i])
		if err != nil {
			return err
		}
	}
	return nil
}

// SetOutputHandler sets the function that receives characters written to the
// display. The handler is called on a goroutine owned by the PIA.
func (a1 *AppleOne) SetOutputHandler(handler pia.OutputHandler) {
	a1.PIA.SetOutputHandler(handler)
}

// HaltExecution stops or restarts instruction execution. The change takes
// effect at the start of the next frame. Calling HaltExecution() with the
// current state has no effect.
func (a1 *AppleOne) HaltExecution(halt bool) {
	if a1.halted.Swap(halt) != halt {
		if halt {
			logger.Log(logger.Allow, "APPLEONE", "execution halted")
		} else {
			logger.Log(logger.Allow, "APPLEONE", "execution resumed")
		}
	}
}

// IsHalted returns true if instruction execution has been halted.
func (a1 *AppleOne) IsHalted() bool {
	return a1.halted.Load()
}

// Reset the machine. Memory is cleared and the ROM restored, the keyboard
// queue is emptied and the engine restarts from the reset vector. The halted
// state is not changed.
func (a1 *AppleOne) Reset() error {
	a1.crit.Lock()
	defer a1.crit.Unlock()
	return a1.reset()
}

func (a1 *AppleOne) reset() error {
	a1.Mem.Reset()
	a1.Keyboard.Clear()
	a1.overshoot = 0
	return a1.resetEngine()
}

func (a1 *AppleOne) resetEngine() error {
	a1.engine.Reset()
	err := a1.engine.LoadPCIndirect(addresses.Reset)
	if err != nil {
		return fmt.Errorf("appleone: %w", err)
	}
	return nil
}

// BlitData copies data into memory at the specified address. If the data does
// not fit in memory then memory is left unchanged and an error is returned.
func (a1 *AppleOne) BlitData(data []uint8, address uint16) error {
	a1.crit.Lock()
	defer a1.crit.Unlock()

	err := a1.Mem.Blit(data, address)
	if err != nil {
		logger.Log(logger.Allow, "APPLEONE", err.Error())
		return fmt.Errorf("appleone: %w", err)
	}

	logger.Logf(logger.Allow, "APPLEONE", "%d bytes copied to %#04x", len(data), address)
	return nil
}

// Peek returns the value at address without triggering any I/O side effects.
func (a1 *AppleOne) Peek(address uint16) uint8 {
	a1.crit.Lock()
	defer a1.crit.Unlock()
	v, _ := a1.PIA.Peek(address)
	return v
}

// Frames returns the number of frames in which instructions were executed.
func (a1 *AppleOne) Frames() uint64 {
	return a1.frames.Load()
}

// Cycles returns the number of cycles executed since the machine was created.
func (a1 *AppleOne) Cycles() uint64 {
	return a1.cycles.Load()
}
