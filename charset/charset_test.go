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

package charset_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/appleone/appleone/charset"
	"github.com/appleone/appleone/test"
)

func TestHostToMachine(t *testing.T) {
	c, ok := charset.HostToMachine('a')
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c, 'A')

	c, ok = charset.HostToMachine('Z')
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c, 'Z')

	c, ok = charset.HostToMachine('\n')
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c, 0x0d)

	c, ok = charset.HostToMachine(0x7f)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c, '_')

	c, ok = charset.HostToMachine('{')
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c, '{')

	_, ok = charset.HostToMachine(0x80)
	test.ExpectFailure(t, ok)
	_, ok = charset.HostToMachine(0xff)
	test.ExpectFailure(t, ok)
}

func TestMachineToHost(t *testing.T) {
	c, ok := charset.MachineToHost(0x0d)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c, '\n')

	c, ok = charset.MachineToHost('_')
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c, '_')

	c, ok = charset.MachineToHost(' ')
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c, ' ')

	c, ok = charset.MachineToHost('~')
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c, '~')

	// control characters and delete are dropped
	for _, v := range []uint8{0x00, 0x07, 0x08, 0x1b, 0x1f, 0x7f} {
		_, ok = charset.MachineToHost(v)
		test.ExpectFailure(t, ok, v)
	}
}

// newline and printable characters survive the trip to the machine and back.
// lower case letters are the exception because the machine has no lower case
func TestRoundTrip(t *testing.T) {
	for c := uint8(0x20); c <= 0x7e; c++ {
		if c >= 'a' && c <= 'z' {
			continue
		}
		m, ok := charset.HostToMachine(c)
		test.DemandSuccess(t, ok)
		h, ok := charset.MachineToHost(m)
		test.DemandSuccess(t, ok)
		test.ExpectEquality(t, h, c)
	}

	m, _ := charset.HostToMachine('\n')
	h, _ := charset.MachineToHost(m)
	test.ExpectEquality(t, h, '\n')
}

func TestInputString(t *testing.T) {
	test.ExpectEquality(t, string(charset.InputString("fffd\n")), "FFFD\r")
	test.ExpectEquality(t, string(charset.InputString("ff\x7fd")), "FF_D")
	test.ExpectEquality(t, string(charset.InputString("a\xc0b")), "AB")
}

func TestTranscript(t *testing.T) {
	tr := charset.NewTranscript(true)
	for _, c := range []uint8("FFFC_D") {
		tr.Append(c)
	}
	test.ExpectEquality(t, tr.String(), "FFFD")

	// erase on an empty transcript does nothing
	tr.Clear()
	tr.Append('_')
	test.ExpectEquality(t, tr.String(), "")

	tr.SetEchoDelete(false)
	for _, c := range []uint8("FFFC_D") {
		tr.Append(c)
	}
	test.ExpectEquality(t, tr.String(), "FFFC_D")
}

func TestTranscriptWait(t *testing.T) {
	tr := charset.NewTranscript(false)

	go func() {
		for _, c := range []uint8("\\\n") {
			time.Sleep(time.Millisecond)
			tr.Append(c)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	test.ExpectSuccess(t, tr.WaitFor(ctx, "\\\n"))

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := tr.WaitFor(ctx, "never")
	test.ExpectSuccess(t, errors.Is(err, context.DeadlineExceeded))
}
