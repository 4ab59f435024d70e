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

package limiter_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/appleone/appleone/hardware/limiter"
	"github.com/appleone/appleone/test"
)

func TestFrameDuration(t *testing.T) {
	lmtr := limiter.NewLimiter(60)
	test.ExpectEquality(t, lmtr.FrameDuration(), time.Duration(16666666))

	lmtr.SetLimit(50)
	test.ExpectEquality(t, lmtr.FrameDuration(), 20*time.Millisecond)

	lmtr.SetLimit(0)
	test.ExpectEquality(t, lmtr.IdealFPS.Load().(float64), limiter.DefaultFPS)
}

func TestRemaining(t *testing.T) {
	lmtr := limiter.NewLimiter(100)
	lmtr.StartFrame()
	test.ExpectSuccess(t, lmtr.Remaining() <= 10*time.Millisecond)

	// work that takes longer than a frame leaves nothing remaining
	time.Sleep(15 * time.Millisecond)
	test.ExpectEquality(t, lmtr.Remaining(), time.Duration(0))
}

func TestWait(t *testing.T) {
	lmtr := limiter.NewLimiter(50)

	const frames = 10

	start := time.Now()
	for i := 0; i < frames; i++ {
		lmtr.StartFrame()
		test.ExpectSuccess(t, lmtr.Wait(context.Background()))
	}
	elapsed := time.Since(start)

	// timers never fire early so the elapsed time is at least the total of
	// the frame durations
	test.ExpectSuccess(t, elapsed >= frames*20*time.Millisecond)
}

func TestWaitInactive(t *testing.T) {
	lmtr := limiter.NewLimiter(1)
	lmtr.Active.Store(false)

	start := time.Now()
	lmtr.StartFrame()
	test.ExpectSuccess(t, lmtr.Wait(context.Background()))
	test.ExpectSuccess(t, time.Since(start) < 500*time.Millisecond)
}

func TestWaitCancel(t *testing.T) {
	lmtr := limiter.NewLimiter(1)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	lmtr.StartFrame()
	err := lmtr.Wait(ctx)
	test.ExpectSuccess(t, errors.Is(err, context.Canceled))
	test.ExpectSuccess(t, time.Since(start) < 500*time.Millisecond)
}

func TestSetLimitWhileWaiting(t *testing.T) {
	lmtr := limiter.NewLimiter(1000)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			lmtr.StartFrame()
			_ = lmtr.Wait(context.Background())
		}
	}()

	for i := 0; i < 50; i++ {
		lmtr.SetLimit(float64(500 + i*10))
	}
	<-done

	fps := 990.0
	test.ExpectEquality(t, lmtr.IdealFPS.Load().(float64), fps)
	test.ExpectEquality(t, lmtr.FrameDuration(), time.Duration(int64(1e9/fps)))
}
