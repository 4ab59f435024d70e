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

package limiter

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultFPS is the frame rate used when an invalid rate is requested.
const DefaultFPS = 60.0

// Limiter paces frames to a requested rate.
type Limiter struct {
	// whether to wait for the end of the frame. when false Wait() returns
	// immediately
	Active atomic.Bool

	// the frame rate that was requested with SetLimit()
	IdealFPS atomic.Value // float64

	// the measured number of frames per second
	Measured atomic.Value // float64

	// duration of a single frame
	frameDuration atomic.Int64

	// time at which the current frame began
	frameStart time.Time

	// the measured FPS is the number of frames divided by the amount of
	// elapsed time since the previous measurement. SetLimit() can be called
	// from any goroutine so the measurement fields are guarded by measureCrit
	measureCrit sync.Mutex
	measureTime time.Time
	measureCt   int
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
func NewLimiter(fps float64) *Limiter {
	lmtr := &Limiter{}
	lmtr.Active.Store(true)
	lmtr.Measured.Store(float64(0.0))
	lmtr.SetLimit(fps)
	return lmtr
}

// SetLimit changes the number of frames per second. A value of zero or less
// will set the rate to DefaultFPS.
func (lmtr *Limiter) SetLimit(fps float64) {
	if fps <= 0 {
		fps = DefaultFPS
	}
	lmtr.IdealFPS.Store(fps)
	lmtr.frameDuration.Store(int64(1e9 / fps))

	lmtr.measureCrit.Lock()
	lmtr.measureCt = 0
	lmtr.measureTime = time.Now()
	lmtr.measureCrit.Unlock()
}

// FrameDuration returns the length of a single frame.
func (lmtr *Limiter) FrameDuration() time.Duration {
	return time.Duration(lmtr.frameDuration.Load())
}

// StartFrame should be called at the beginning of every frame.
func (lmtr *Limiter) StartFrame() {
	lmtr.frameStart = time.Now()
}

// Remaining returns the time left in the current frame. The value is never
// negative.
func (lmtr *Limiter) Remaining() time.Duration {
	return max(lmtr.FrameDuration()-time.Since(lmtr.frameStart), 0)
}

// Wait suspends the caller until the end of the current frame or until the
// context is done, in which case the context's error is returned.
func (lmtr *Limiter) Wait(ctx context.Context) error {
	lmtr.measure()

	if !lmtr.Active.Load() {
		return ctx.Err()
	}

	remaining := lmtr.Remaining()
	if remaining == 0 {
		return ctx.Err()
	}

	t := time.NewTimer(remaining)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
	}

	return nil
}

// measure updates the Measured field approximately once a second.
func (lmtr *Limiter) measure() {
	lmtr.measureCrit.Lock()
	defer lmtr.measureCrit.Unlock()

	lmtr.measureCt++

	dur := time.Since(lmtr.measureTime)
	if dur >= time.Second {
		lmtr.Measured.Store(float64(lmtr.measureCt) / dur.Seconds())
		lmtr.measureTime = time.Now()
		lmtr.measureCt = 0
	}
}
