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

package logger_test

import (
	"fmt"
	"testing"

	"github.com/appleone/appleone/logger"
	"github.com/appleone/appleone/test"
)

type deny struct{}

func (_ deny) AllowLogging() bool {
	return false
}

func TestLogger(t *testing.T) {
	logger.Clear()
	tw := &test.Writer{}

	logger.Write(tw)
	test.ExpectEquality(t, tw.String(), "")

	logger.Log(logger.Allow, "test", "this is a test")
	logger.Write(tw)
	test.ExpectEquality(t, tw.String(), "test: this is a test\n")

	tw.Clear()

	logger.Log(logger.Allow, "test2", "this is another test")
	logger.Write(tw)
	test.ExpectEquality(t, tw.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	tw.Clear()
	logger.Tail(tw, 100)
	test.ExpectEquality(t, tw.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	tw.Clear()
	logger.Tail(tw, 1)
	test.ExpectEquality(t, tw.String(), "test2: this is another test\n")

	// and no entries
	tw.Clear()
	logger.Tail(tw, 0)
	test.ExpectEquality(t, tw.String(), "")
}

func TestRepeatedEntries(t *testing.T) {
	logger.Clear()
	tw := &test.Writer{}

	logger.Log(logger.Allow, "PIA", "write")
	logger.Log(logger.Allow, "PIA", "write")
	logger.Logf(logger.Allow, "PIA", "%s", "write")
	logger.Write(tw)
	test.ExpectEquality(t, tw.String(), "PIA: write (repeat x3)\n")
}

func TestPermission(t *testing.T) {
	logger.Clear()
	tw := &test.Writer{}

	logger.Log(deny{}, "test", "should not appear")
	logger.Write(tw)
	test.ExpectEquality(t, tw.String(), "")
}

func TestMaximumEntries(t *testing.T) {
	logger.Clear()

	for i := 0; i < 1000; i++ {
		logger.Logf(logger.Allow, "test", "entry %d", i)
	}

	var n int
	var last string
	logger.BorrowLog(func(entries []logger.Entry) {
		n = len(entries)
		last = entries[len(entries)-1].Detail
	})
	test.ExpectEquality(t, n, 256)
	test.ExpectEquality(t, last, fmt.Sprintf("entry %d", 999))
}

func TestEcho(t *testing.T) {
	logger.Clear()
	tw := &test.Writer{}

	logger.SetEcho(tw)
	defer logger.SetEcho(nil)

	logger.Log(logger.Allow, "echo", "hello")
	test.ExpectEquality(t, tw.String(), "echo: hello\n")
}
