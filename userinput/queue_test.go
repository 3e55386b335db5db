// This file is part of Inputrelay.
//
// Inputrelay is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Inputrelay is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Inputrelay.  If not, see <https://www.gnu.org/licenses/>.

package userinput_test

import (
	"sync"
	"testing"

	"github.com/jetsetilly/inputrelay/test"
	"github.com/jetsetilly/inputrelay/userinput"
)

func custom(n int) userinput.Event {
	return userinput.Event{Kind: userinput.KindCustom, Value: int32(n)}
}

func TestQueueEmpty(t *testing.T) {
	q := userinput.NewQueue(1)
	_, ok := q.TryPop()
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, q.Len(), 0)
	test.ExpectEquality(t, q.Cap(), 1)

	// invalid capacity is treated as one
	q = userinput.NewQueue(0)
	test.ExpectEquality(t, q.Cap(), 1)
}

func TestQueueGrowth(t *testing.T) {
	q := userinput.NewQueue(2)

	q.Push(custom(1))
	q.Push(custom(2))
	q.Push(custom(3))

	// capacity has grown by one to fit the third event
	test.ExpectEquality(t, q.Cap(), 3)
	test.ExpectEquality(t, q.Len(), 3)

	for _, n := range []int{1, 2, 3} {
		ev, ok := q.TryPop()
		test.ExpectSuccess(t, ok)
		test.ExpectEquality(t, ev, custom(n))
	}

	_, ok := q.TryPop()
	test.ExpectFailure(t, ok)

	// capacity never shrinks
	test.ExpectEquality(t, q.Cap(), 3)
}

// growing the queue when the ring buffer has wrapped must preserve FIFO order
func TestQueueGrowthWrapped(t *testing.T) {
	q := userinput.NewQueue(4)

	next := 0
	expected := 0

	for round := 0; round < 50; round++ {
		// push more than we pop so that the queue both wraps and grows
		for i := 0; i < 3; i++ {
			q.Push(custom(next))
			next++
		}
		for i := 0; i < 2; i++ {
			ev, ok := q.TryPop()
			test.DemandSuccess(t, ok)
			test.DemandEquality(t, ev, custom(expected))
			expected++
		}
	}

	for {
		ev, ok := q.TryPop()
		if !ok {
			break
		}
		test.DemandEquality(t, ev, custom(expected))
		expected++
	}
	test.ExpectEquality(t, expected, next)
}

func TestQueueManyFromSmallCapacity(t *testing.T) {
	for _, c := range []int{1, 2, 7, 64} {
		q := userinput.NewQueue(c)
		for i := 0; i < 5000; i++ {
			q.Push(custom(i))
		}
		test.ExpectEquality(t, q.Len(), 5000)
		for i := 0; i < 5000; i++ {
			ev, ok := q.TryPop()
			test.DemandSuccess(t, ok)
			test.DemandEquality(t, ev, custom(i))
		}
	}
}

func TestQueueConcurrent(t *testing.T) {
	const producers = 4
	const each = 2000

	q := userinput.NewQueue(1)

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < each; i++ {
				q.Push(userinput.Event{Kind: userinput.KindCustom, Device: userinput.DeviceID(p), Value: int32(i)})
			}
		}(p)
	}

	// consume while the producers are running. events from a single producer
	// must arrive in the order they were pushed
	last := make([]int32, producers)
	for i := range last {
		last[i] = -1
	}

	done := make(chan bool)
	go func() {
		wg.Wait()
		close(done)
	}()

	count := 0
	finished := false
	for !finished || q.Len() > 0 {
		select {
		case <-done:
			finished = true
		default:
		}
		ev, ok := q.TryPop()
		if !ok {
			continue
		}
		test.DemandEquality(t, ev.Value, last[ev.Device]+1)
		last[ev.Device] = ev.Value
		count++
	}

	test.ExpectEquality(t, count, producers*each)
}

func TestQueueShutdown(t *testing.T) {
	q := userinput.NewQueue(4)
	q.Push(custom(1))
	q.Shutdown()

	_, ok := q.TryPop()
	test.ExpectFailure(t, ok)

	// pushing after shutdown drops the event
	q.Push(custom(2))
	test.ExpectEquality(t, q.Len(), 0)

	// shutdown more than once is allowed
	q.Shutdown()
}

func TestQueueDrain(t *testing.T) {
	q := userinput.NewQueue(4)
	q.Push(custom(1))
	q.Push(custom(2))
	test.ExpectEquality(t, q.Drain(), 2)
	test.ExpectEquality(t, q.Len(), 0)

	q.Push(custom(3))
	ev, ok := q.TryPop()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ev, custom(3))
}
