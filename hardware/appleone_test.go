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

package hardware_test

import (
	"context"
	"testing"
	"time"

	"github.com/appleone/appleone/charset"
	"github.com/appleone/appleone/hardware"
	"github.com/appleone/appleone/hardware/preferences"
	"github.com/appleone/appleone/test"
)

// number of frames run by runTranscript(). at the default clock speed this is
// far more than WozMon needs to process any of the test inputs
const transcriptFrames = 30

func newAppleOne(t *testing.T, echoDelete bool) (*hardware.AppleOne, *charset.Transcript) {
	t.Helper()

	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.EchoDelete.Set(echoDelete))

	a1, err := hardware.NewAppleOne(p)
	test.DemandSuccess(t, err)
	t.Cleanup(a1.End)

	tr := charset.NewTranscript(p.EchoDelete.Get().(bool))
	a1.SetOutputHandler(tr.Append)

	return a1, tr
}

// runTranscript runs the machine for a fixed number of frames and then waits
// for the output to match the expected transcript exactly
func runTranscript(t *testing.T, a1 *hardware.AppleOne, tr *charset.Transcript, expected string) {
	t.Helper()

	for i := 0; i < transcriptFrames; i++ {
		test.DemandSuccess(t, a1.RunForFrame())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	test.ExpectSuccess(t, tr.WaitFor(ctx, expected))
	test.ExpectEquality(t, tr.String(), expected)
}

func TestBoot(t *testing.T) {
	a1, tr := newAppleOne(t, false)
	runTranscript(t, a1, tr, "\\\n")

	// WozMon is now waiting for input. the transcript should not change
	for i := 0; i < transcriptFrames; i++ {
		test.DemandSuccess(t, a1.RunForFrame())
	}
	time.Sleep(20 * time.Millisecond)
	test.ExpectEquality(t, tr.String(), "\\\n")
}

func TestExamine(t *testing.T) {
	a1, tr := newAppleOne(t, false)
	test.ExpectSuccess(t, a1.InputString("FFFD\n"))
	runTranscript(t, a1, tr, "\\\nFFFD\n\nFFFD: FF\n")
}

func TestExamineRange(t *testing.T) {
	a1, tr := newAppleOne(t, false)
	test.ExpectSuccess(t, a1.InputString("FFF0.FFFF\n"))
	runTranscript(t, a1, tr, "\\\nFFF0.FFFF\n\nFFF0: 12 D0 30 FB 8D 12 D0 60\nFFF8: 00 00 00 0F 00 FF 00 00\n")
}

func TestExamineMultiple(t *testing.T) {
	a1, tr := newAppleOne(t, false)

	// lower case input is shifted to upper case before it reaches the machine
	test.ExpectSuccess(t, a1.InputString("ff00 ff0f ffc2\n"))
	runTranscript(t, a1, tr, "\\\nFF00 FF0F FFC2\n\nFF00: D8\nFF0F: C9\nFFC2: DC\n")
}

func TestDeposit(t *testing.T) {
	a1, tr := newAppleOne(t, false)
	test.ExpectSuccess(t, a1.InputString("30\n30:AA\n30\n"))
	runTranscript(t, a1, tr, "\\\n30\n\n0030: 00\n30:AA\n\n0030: 00\n30\n\n0030: AA\n")
	test.ExpectEquality(t, a1.Peek(0x0030), 0xaa)
}

// prints "Woz!" and returns to WozMon
const wozProgram = "A9 57 20 EF FF A9 6F 20 EF FF A9 7A 20 EF FF A9 21 20 EF FF 4C 1F FF"

var wozBinary = []uint8{
	0xa9, 0x57, 0x20, 0xef, 0xff,
	0xa9, 0x6f, 0x20, 0xef, 0xff,
	0xa9, 0x7a, 0x20, 0xef, 0xff,
	0xa9, 0x21, 0x20, 0xef, 0xff,
	0x4c, 0x1f, 0xff,
}

func TestRunProgram(t *testing.T) {
	a1, tr := newAppleOne(t, false)
	test.ExpectSuccess(t, a1.InputString("3000:"+wozProgram+"\nR\n"))
	runTranscript(t, a1, tr, "\\\n3000:"+wozProgram+"\n\n3000: 00\nR\nWoz!\n")
}

func TestBlitAndRun(t *testing.T) {
	a1, tr := newAppleOne(t, false)
	test.ExpectSuccess(t, a1.BlitData(wozBinary, 0x3000))
	test.ExpectSuccess(t, a1.InputString("3000\nR\n"))
	runTranscript(t, a1, tr, "\\\n3000\n\n3000: A9\nR\nWoz!\n")
}

func TestEchoDelete(t *testing.T) {
	a1, tr := newAppleOne(t, true)
	test.ExpectSuccess(t, a1.InputString("FFFC\x7fD"))
	runTranscript(t, a1, tr, "\\\nFFFD")

	// the erased character is also forgotten by WozMon
	test.ExpectSuccess(t, a1.InputString("\n"))
	runTranscript(t, a1, tr, "\\\nFFFD\n\nFFFD: FF\n")
}

func TestNoEchoDelete(t *testing.T) {
	a1, tr := newAppleOne(t, false)
	test.ExpectSuccess(t, a1.InputString("FFFC\x7fD"))
	runTranscript(t, a1, tr, "\\\nFFFC_D")
}

func TestRun(t *testing.T) {
	a1, tr := newAppleOne(t, false)

	done := make(chan error)
	go func() {
		done <- a1.Run(context.Background())
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	test.ExpectSuccess(t, tr.WaitFor(ctx, "\\\n"))

	test.ExpectSuccess(t, a1.InputString("FFFD\n"))
	test.ExpectSuccess(t, tr.WaitFor(ctx, "FFFD: FF\n"))

	a1.End()
	test.ExpectSuccess(t, <-done)
	test.ExpectSuccess(t, a1.Mem.Destroyed())

	// the emulation can not be restarted once it has ended
	test.ExpectFailure(t, a1.Run(context.Background()))

	// calling End() more than once is safe
	a1.End()
}
