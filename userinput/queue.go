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

package userinput

import (
	"sync"

	"github.com/jetsetilly/inputrelay/logger"
)

// the number of slots added to the queue when it overflows.
const queueGrowth = 1

// Queue is a FIFO of events. It is safe to Push() and TryPop() from different
// goroutines. The usual arrangement is for the goroutine that owns the
// platform event source to push and for the UI goroutine to pop.
//
// The queue grows when it is full. Capacity never shrinks. If memory for the
// larger buffer cannot be allocated the Go runtime terminates the program,
// there is no graceful degradation.
type Queue struct {
	crit sync.Mutex

	// ring buffer. the oldest event is at index head
	buf   []Event
	head  int
	count int

	shutdown bool
}

// NewQueue is the preferred method of initialisation for the Queue type. A
// capacity of less than one is treated as one.
func NewQueue(capacity int) *Queue {
	if capacity < 1 {
		logger.Logf(logger.Allow, "queue", "capacity of %d is not valid, using 1", capacity)
		capacity = 1
	}
	return &Queue{
		buf: make([]Event, capacity),
	}
}

// Push adds an event to the back of the queue. It never fails and the event
// is never dropped, unless the queue has been shut down.
func (q *Queue) Push(ev Event) {
	q.crit.Lock()
	defer q.crit.Unlock()

	if q.shutdown {
		logger.Logf(logger.Allow, "queue", "push after shutdown: dropped %s", ev)
		return
	}

	if q.count == len(q.buf) {
		q.grow()
	}

	q.buf[(q.head+q.count)%len(q.buf)] = ev
	q.count++
}

// grow the buffer, moving the existing events to the start of the new buffer
// in FIFO order. must be called with the critical section held.
func (q *Queue) grow() {
	nb := make([]Event, len(q.buf)+queueGrowth)
	for i := 0; i < q.count; i++ {
		nb[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = nb
	q.head = 0
}

// TryPop removes and returns the event at the front of the queue. The second
// return value is false if the queue is empty. It never blocks.
func (q *Queue) TryPop() (Event, bool) {
	q.crit.Lock()
	defer q.crit.Unlock()

	if q.count == 0 {
		return Event{}, false
	}

	ev := q.buf[q.head]
	q.buf[q.head] = Event{}
	q.head = (q.head + 1) % len(q.buf)
	q.count--

	return ev, true
}

// Len returns the number of events in the queue.
func (q *Queue) Len() int {
	q.crit.Lock()
	defer q.crit.Unlock()
	return q.count
}

// Cap returns the current capacity of the queue.
func (q *Queue) Cap() int {
	q.crit.Lock()
	defer q.crit.Unlock()
	return len(q.buf)
}

// Drain discards all queued events and returns how many were discarded.
func (q *Queue) Drain() int {
	q.crit.Lock()
	defer q.crit.Unlock()

	n := q.count
	for i := range q.buf {
		q.buf[i] = Event{}
	}
	q.head = 0
	q.count = 0

	return n
}

// Shutdown releases the queue's storage. Events pushed after Shutdown() are
// dropped and TryPop() will report an empty queue. It is safe to call more
// than once.
func (q *Queue) Shutdown() {
	q.crit.Lock()
	defer q.crit.Unlock()

	q.shutdown = true
	q.buf = nil
	q.head = 0
	q.count = 0
}
