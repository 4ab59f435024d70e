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

package keyboard

import (
	"errors"
	"fmt"
)

// DefaultDepth is the number of characters the queue can hold if no other
// value is specified.
const DefaultDepth = 4096

// ErrQueueFull is returned by Append() when the character could not be
// queued.
var ErrQueueFull = errors.New("keyboard: queue is full")

// Queue is a FIFO of machine characters. It is safe for concurrent use by
// multiple goroutines.
type Queue struct {
	pending chan uint8
}

// NewQueue is the preferred method of initialisation for the Queue type. A
// depth of less than one will use DefaultDepth.
func NewQueue(depth int) *Queue {
	if depth < 1 {
		depth = DefaultDepth
	}
	return &Queue{
		pending: make(chan uint8, depth),
	}
}

// Append adds a character to the end of the queue. The character will be
// dropped and ErrQueueFull returned if the queue is full.
func (q *Queue) Append(c uint8) error {
	select {
	case q.pending <- c:
	default:
		return fmt.Errorf("%w: %#02x dropped", ErrQueueFull, c)
	}
	return nil
}

// IsEmpty returns true if there are no characters in the queue.
func (q *Queue) IsEmpty() bool {
	return len(q.pending) == 0
}

// Len returns the number of characters waiting in the queue.
func (q *Queue) Len() int {
	return len(q.pending)
}

// Cap returns the maximum number of characters the queue can hold.
func (q *Queue) Cap() int {
	return cap(q.pending)
}

// PopFirst removes and returns the character at the front of the queue. The
// boolean return value is false if the queue was empty.
func (q *Queue) PopFirst() (uint8, bool) {
	select {
	case c := <-q.pending:
		return c, true
	default:
	}
	return 0, false
}

// Clear removes all characters from the queue.
func (q *Queue) Clear() {
	for {
		select {
		case <-q.pending:
		default:
			return
		}
	}
}
