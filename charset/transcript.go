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

package charset

import (
	"context"
	"strings"
	"sync"
)

// Transcript accumulates host characters as output by the machine. It is safe
// to use from multiple goroutines and is suitable for use as an output
// handler.
type Transcript struct {
	crit sync.Mutex

	text []uint8

	// erase character removes previous character if echoDelete is true
	echoDelete bool

	// closed and replaced whenever the transcript changes
	changed chan struct{}
}

// NewTranscript is the preferred method of initialisation for the Transcript
// type.
func NewTranscript(echoDelete bool) *Transcript {
	return &Transcript{
		echoDelete: echoDelete,
		changed:    make(chan struct{}),
	}
}

// SetEchoDelete changes how the erase character is handled. The change only
// affects characters appended after the call.
func (tr *Transcript) SetEchoDelete(echoDelete bool) {
	tr.crit.Lock()
	defer tr.crit.Unlock()
	tr.echoDelete = echoDelete
}

// Append adds a host character to the transcript.
func (tr *Transcript) Append(c uint8) {
	tr.crit.Lock()
	defer tr.crit.Unlock()

	if c == MachineErase && tr.echoDelete {
		if len(tr.text) > 0 {
			tr.text = tr.text[:len(tr.text)-1]
		}
	} else {
		tr.text = append(tr.text, c)
	}

	close(tr.changed)
	tr.changed = make(chan struct{})
}

// String returns a copy of the transcript.
func (tr *Transcript) String() string {
	tr.crit.Lock()
	defer tr.crit.Unlock()
	return string(tr.text)
}

// Clear empties the transcript.
func (tr *Transcript) Clear() {
	tr.crit.Lock()
	defer tr.crit.Unlock()
	tr.text = tr.text[:0]
	close(tr.changed)
	tr.changed = make(chan struct{})
}

// WaitFor blocks until the transcript ends with the suffix or until the
// context is done. The context error is returned in that case.
func (tr *Transcript) WaitFor(ctx context.Context, suffix string) error {
	for {
		tr.crit.Lock()
		done := strings.HasSuffix(string(tr.text), suffix)
		changed := tr.changed
		tr.crit.Unlock()

		if done {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-changed:
		}
	}
}
