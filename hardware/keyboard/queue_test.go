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

package keyboard_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/appleone/appleone/hardware/keyboard"
	"github.com/appleone/appleone/test"
)

func TestQueue(t *testing.T) {
	q := keyboard.NewQueue(8)
	test.ExpectSuccess(t, q.IsEmpty())
	test.ExpectEquality(t, q.Cap(), 8)

	_, ok := q.PopFirst()
	test.ExpectFailure(t, ok)

	for _, c := range []uint8("FFFD\r") {
		test.ExpectSuccess(t, q.Append(c))
	}
	test.ExpectFailure(t, q.IsEmpty())
	test.ExpectEquality(t, q.Len(), 5)

	for _, c := range []uint8("FFFD\r") {
		v, ok := q.PopFirst()
		test.ExpectSuccess(t, ok)
		test.ExpectEquality(t, v, c)
	}
	test.ExpectSuccess(t, q.IsEmpty())
}

func TestQueueFull(t *testing.T) {
	q := keyboard.NewQueue(2)
	test.ExpectSuccess(t, q.Append('A'))
	test.ExpectSuccess(t, q.Append('B'))

	err := q.Append('C')
	test.ExpectSuccess(t, errors.Is(err, keyboard.ErrQueueFull))
	test.ExpectEquality(t, q.Len(), 2)

	// the dropped character does not appear in the queue
	v, _ := q.PopFirst()
	test.ExpectEquality(t, v, 'A')
	v, _ = q.PopFirst()
	test.ExpectEquality(t, v, 'B')
}

func TestQueueClear(t *testing.T) {
	q := keyboard.NewQueue(0)
	test.ExpectEquality(t, q.Cap(), keyboard.DefaultDepth)

	for i := 0; i < 100; i++ {
		test.ExpectSuccess(t, q.Append(uint8(i)))
	}
	q.Clear()
	test.ExpectSuccess(t, q.IsEmpty())
}

// a single producer and a single consumer running concurrently. every
// character must arrive exactly once and in order
func TestQueueConcurrent(t *testing.T) {
	const count = 10000

	q := keyboard.NewQueue(count)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < count; i++ {
			_ = q.Append(uint8(i))
		}
	}()

	received := make([]uint8, 0, count)
	for len(received) < count {
		if c, ok := q.PopFirst(); ok {
			received = append(received, c)
		}
	}
	wg.Wait()

	for i := range received {
		test.ExpectEquality(t, received[i], uint8(i), i)
	}
	test.ExpectSuccess(t, q.IsEmpty())
}

// several producers and a single consumer. the top two bits of each
// character identify the producer and the lower six bits count upwards so
// that the order of each producer's characters can be checked
func TestQueueConcurrentProducers(t *testing.T) {
	const producers = 4
	const perProducer = 2000

	q := keyboard.NewQueue(producers * perProducer)

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				_ = q.Append(uint8(p<<6 | i&0x3f))
			}
		}(p)
	}

	var next [producers]int
	for n := 0; n < producers*perProducer; {
		c, ok := q.PopFirst()
		if !ok {
			continue
		}
		p := int(c >> 6)
		test.ExpectEquality(t, int(c&0x3f), next[p]&0x3f, p, next[p])
		next[p]++
		n++
	}
	wg.Wait()

	for p := range next {
		test.ExpectEquality(t, next[p], perProducer, p)
	}
	test.ExpectSuccess(t, q.IsEmpty())
}
