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
	"fmt"

	"github.com/appleone/appleone/logger"
)

// RunForFrame executes one frame's worth of instructions. The number of
// cycles in a frame is decided by the clock and FPS preferences.
//
// Nothing is executed if the machine has been halted. An error from the
// engine abandons the remainder of the frame.
func (a1 *AppleOne) RunForFrame() error {
	if a1.halted.Load() {
		return nil
	}

	a1.crit.Lock()
	defer a1.crit.Unlock()

	budget := a1.Prefs.CyclesPerFrame()

	// the previous frame's overshoot counts towards this frame
	cycles := a1.overshoot
	executed := 0
	a1.overshoot = 0

	for cycles < budget {
		n, err := a1.engine.Step()
		cycles += n
		executed += n
		if err != nil {
			a1.cycles.Add(uint64(executed))
			return fmt.Errorf("appleone: %w", err)
		}
		if n == 0 {
			break
		}
	}

	a1.overshoot = max(cycles-budget, 0)
	a1.frames.Add(1)
	a1.cycles.Add(uint64(executed))

	return nil
}

// Run the emulation continuously, one frame at a time, at the rate given by
// the FPS preference. Errors that occur during a frame are logged and do not
// stop the emulation.
//
// Run returns when the context is cancelled or when End() is called. In the
// latter case the return value is nil.
func (a1 *AppleOne) Run(ctx context.Context) error {
	a1.runCrit.Lock()
	if a1.ended {
		a1.runCrit.Unlock()
		return ErrEnded
	}
	if a1.cancel != nil {
		a1.runCrit.Unlock()
		return ErrRunning
	}
	ctx, a1.cancel = context.WithCancel(ctx)
	done := make(chan struct{})
	a1.done = done
	a1.runCrit.Unlock()

	defer func() {
		a1.runCrit.Lock()
		a1.cancel()
		a1.cancel = nil
		a1.done = nil
		a1.runCrit.Unlock()
		close(done)
	}()

	for {
		a1.limiter.StartFrame()

		err := a1.RunForFrame()
		if err != nil {
			logger.Log(logger.Allow, "APPLEONE", err.Error())
		}

		err = a1.limiter.Wait(ctx)
		if err != nil {
			a1.runCrit.Lock()
			ended := a1.ended
			a1.runCrit.Unlock()
			if ended {
				return nil
			}
			return err
		}
	}
}

// End the emulation. The Run() loop is stopped, the output handler is
// removed and memory is destroyed. It is safe to call End() more than once.
func (a1 *AppleOne) End() {
	a1.runCrit.Lock()
	if a1.ended {
		a1.runCrit.Unlock()
		return
	}
	a1.ended = true
	cancel := a1.cancel
	done := a1.done
	a1.runCrit.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}

	a1.PIA.End()

	a1.crit.Lock()
	a1.Mem.Destroy()
	a1.crit.Unlock()
}
