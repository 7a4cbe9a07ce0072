// This file is part of Consolemix.
//
// Consolemix is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Consolemix is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Consolemix.  If not, see <https://www.gnu.org/licenses/>.

package future

import (
	"fmt"
	"math"

	"github.com/consolemix/consolemix/curated"
)

// Sentinal error patterns returned by the future package.
const (
	QueueFull        = "future: event queue full (capacity %d)"
	InvalidFactor    = "future: invalid adjustment factor (%v)"
	NilPayload       = "future: event has no payload"
	SchedulerStopped = "future: scheduler is stopped"
)

// Payload is the function called when an event reaches its deadline. The
// context argument is the value given when the event was scheduled.
type Payload func(context any)

// Event represents a single occurance of a payload sometime in the future.
type Event struct {
	// virtual time at which the payload must be run
	Deadline uint64

	Payload Payload
	Context any

	// insertion order. used to keep events with the same deadline in FIFO
	// order
	seq uint64
}

func (ev Event) String() string {
	return fmt.Sprintf("event @ %dus", ev.Deadline)
}

// Queue is an ordered collection of events. The earliest event is always
// available in constant time. The queue is a binary heap over a preallocated
// array.
type Queue struct {
	events []Event
	seq    uint64

	// returned by Push() when the queue is full. created once so that a full
	// queue can be reported without allocating
	errFull error
}

// NewQueue is the preferred method of initialisation for the Queue type.
func NewQueue(capacity int) *Queue {
	if capacity < 1 {
		capacity = 1
	}
	return &Queue{
		events:  make([]Event, 0, capacity),
		errFull: curated.Errorf(QueueFull, capacity),
	}
}

var errNilPayload = curated.Errorf(NilPayload)

// Len returns the number of pending events.
func (q *Queue) Len() int {
	return len(q.events)
}

// Cap returns the maximum number of pending events.
func (q *Queue) Cap() int {
	return cap(q.events)
}

// less is the ordering of the heap. events with equal deadlines are ordered
// by insertion.
func (q *Queue) less(i, j int) bool {
	if q.events[i].Deadline != q.events[j].Deadline {
		return q.events[i].Deadline < q.events[j].Deadline
	}
	return q.events[i].seq < q.events[j].seq
}

func (q *Queue) up(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !q.less(i, p) {
			break
		}
		q.events[i], q.events[p] = q.events[p], q.events[i]
		i = p
	}
}

func (q *Queue) down(i int) {
	n := len(q.events)
	for {
		l := 2*i + 1
		if l >= n {
			break
		}
		m := l
		if r := l + 1; r < n && q.less(r, l) {
			m = r
		}
		if !q.less(m, i) {
			break
		}
		q.events[i], q.events[m] = q.events[m], q.events[i]
		i = m
	}
}

// Push adds a new event to the queue. If the queue is full then the event is
// dropped and the QueueFull error is returned. A full queue is not fatal and
// callers should carry on without the event.
func (q *Queue) Push(deadline uint64, payload Payload, context any) error {
	if payload == nil {
		return errNilPayload
	}
	if len(q.events) == cap(q.events) {
		return q.errFull
	}

	q.events = append(q.events, Event{
		Deadline: deadline,
		Payload:  payload,
		Context:  context,
		seq:      q.seq,
	})
	q.seq++
	q.up(len(q.events) - 1)

	return nil
}

// PeekEarliestDeadline returns the deadline of the earliest event. The
// boolean is false if the queue is empty.
func (q *Queue) PeekEarliestDeadline() (uint64, bool) {
	if len(q.events) == 0 {
		return 0, false
	}
	return q.events[0].Deadline, true
}

// PopEarliest removes and returns the earliest event. The boolean is false if
// the queue is empty.
func (q *Queue) PopEarliest() (Event, bool) {
	n := len(q.events)
	if n == 0 {
		return Event{}, false
	}

	ev := q.events[0]
	q.events[0] = q.events[n-1]

	// forget references held by the vacated slot
	q.events[n-1] = Event{}
	q.events = q.events[:n-1]
	q.down(0)

	return ev, true
}

// Clear discards all events without running their payloads.
func (q *Queue) Clear() {
	for i := range q.events {
		q.events[i] = Event{}
	}
	q.events = q.events[:0]
}

// AdjustAll rescales the distance of every deadline from the reference time
// by factor:
//
//	deadline = reference + (deadline - reference) * factor
//
// Deadlines already behind the reference are scaled in the same way. New
// deadlines are clamped to the range of uint64 and the scaled distance is
// clamped to the range of int64. The factor must be greater than zero.
func (q *Queue) AdjustAll(reference uint64, factor float64) error {
	if !(factor > 0) {
		return curated.Errorf(InvalidFactor, factor)
	}

	// put events into their dispatch order. a sorted array is also a valid
	// heap. the queue is small and bounded so an insertion sort is fine
	for i := 1; i < len(q.events); i++ {
		for j := i; j > 0 && q.less(j, j-1); j-- {
			q.events[j], q.events[j-1] = q.events[j-1], q.events[j]
		}
	}

	// renumber insertion order to match dispatch order. rescaling can turn
	// distinct deadlines into equal ones and those new ties must resolve in
	// the order the events would have fired before the adjustment
	base := q.seq - uint64(len(q.events))
	for i := range q.events {
		q.events[i].seq = base + uint64(i)

		var d float64
		if dl := q.events[i].Deadline; dl >= reference {
			d = float64(dl-reference) * factor
		} else {
			d = -float64(reference-dl) * factor
		}
		q.events[i].Deadline = offset(reference, d)
	}

	return nil
}

// offset returns reference+d clamped to the range of uint64. The distance is
// clamped to the range of int64 before conversion.
func offset(reference uint64, d float64) uint64 {
	n := uint64(math.MaxInt64)
	if math.Abs(d) < float64(math.MaxInt64) {
		n = uint64(math.Abs(d))
	}

	if d < 0 {
		if n >= reference {
			return 0
		}
		return reference - n
	}

	if n > math.MaxUint64-reference {
		return math.MaxUint64
	}
	return reference + n
}
