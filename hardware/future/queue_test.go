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

package future_test

import (
	"math"
	"testing"

	"github.com/consolemix/consolemix/curated"
	"github.com/consolemix/consolemix/hardware/future"
	"github.com/consolemix/consolemix/test"
)

// record returns a payload that appends its context to the order slice
func record(order *[]int) future.Payload {
	return func(ctx any) {
		*order = append(*order, ctx.(int))
	}
}

func TestQueue_ordering(t *testing.T) {
	q := future.NewQueue(8)
	var order []int

	// deadlines t1 < t2 < t3 pushed out of order
	test.DemandSuccess(t, q.Push(300, record(&order), 3))
	test.DemandSuccess(t, q.Push(100, record(&order), 1))
	test.DemandSuccess(t, q.Push(200, record(&order), 2))

	d, ok := q.PeekEarliestDeadline()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, d, uint64(100))

	for {
		ev, ok := q.PopEarliest()
		if !ok {
			break
		}
		ev.Payload(ev.Context)
	}

	test.DemandEquality(t, len(order), 3)
	test.ExpectEquality(t, order[0], 1)
	test.ExpectEquality(t, order[1], 2)
	test.ExpectEquality(t, order[2], 3)

	_, ok = q.PeekEarliestDeadline()
	test.ExpectFailure(t, ok)
	_, ok = q.PopEarliest()
	test.ExpectFailure(t, ok)
}

func TestQueue_fifoTies(t *testing.T) {
	q := future.NewQueue(16)
	var order []int

	for i := 0; i < 10; i++ {
		test.DemandSuccess(t, q.Push(50, record(&order), i))
	}
	test.DemandSuccess(t, q.Push(10, record(&order), 100))

	for q.Len() > 0 {
		ev, _ := q.PopEarliest()
		ev.Payload(ev.Context)
	}

	test.DemandEquality(t, len(order), 11)
	test.ExpectEquality(t, order[0], 100)
	for i := 0; i < 10; i++ {
		test.ExpectEquality(t, order[i+1], i)
	}
}

func TestQueue_capacity(t *testing.T) {
	q := future.NewQueue(2)
	test.ExpectEquality(t, q.Cap(), 2)

	test.ExpectSuccess(t, q.Push(1, func(any) {}, nil))
	test.ExpectSuccess(t, q.Push(2, func(any) {}, nil))

	err := q.Push(3, func(any) {}, nil)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, future.QueueFull))
	test.ExpectEquality(t, q.Len(), 2)

	// nil payloads are rejected
	q.Clear()
	test.ExpectFailure(t, q.Push(1, nil, nil))
	test.ExpectEquality(t, q.Len(), 0)
}

func TestQueue_clear(t *testing.T) {
	q := future.NewQueue(4)
	called := false
	_ = q.Push(1, func(any) { called = true }, nil)
	_ = q.Push(2, func(any) { called = true }, nil)
	q.Clear()
	test.ExpectEquality(t, q.Len(), 0)
	test.ExpectFailure(t, called)
}

func TestQueue_adjustAll(t *testing.T) {
	q := future.NewQueue(8)
	var order []int

	_ = q.Push(1100, record(&order), 1)
	_ = q.Push(1200, record(&order), 2)
	_ = q.Push(1400, record(&order), 3)

	// halve the distance from the reference time of 1000
	test.ExpectSuccess(t, q.AdjustAll(1000, 0.5))

	expected := []uint64{1050, 1100, 1200}
	for i, e := range expected {
		ev, ok := q.PopEarliest()
		test.DemandSuccess(t, ok)
		test.ExpectEquality(t, ev.Deadline, e, i)
		ev.Payload(ev.Context)
	}
	test.ExpectEquality(t, order[0], 1)
	test.ExpectEquality(t, order[2], 3)

	// invalid factors
	test.ExpectFailure(t, q.AdjustAll(0, 0))
	test.ExpectFailure(t, q.AdjustAll(0, -1))
}

func TestQueue_adjustAllPreservesOrder(t *testing.T) {
	q := future.NewQueue(8)
	var order []int

	// a tiny factor collapses all deadlines onto the reference time. the
	// events must still fire in their original order even though the event
	// pushed first has the latest deadline
	_ = q.Push(1003, record(&order), 3)
	_ = q.Push(1001, record(&order), 1)
	_ = q.Push(1002, record(&order), 2)
	test.ExpectSuccess(t, q.AdjustAll(1000, 0.001))

	for q.Len() > 0 {
		ev, _ := q.PopEarliest()
		test.ExpectEquality(t, ev.Deadline, uint64(1000))
		ev.Payload(ev.Context)
	}
	test.DemandEquality(t, len(order), 3)
	test.ExpectEquality(t, order[0], 1)
	test.ExpectEquality(t, order[1], 2)
	test.ExpectEquality(t, order[2], 3)
}

func TestQueue_adjustAllOverdue(t *testing.T) {
	q := future.NewQueue(4)
	_ = q.Push(100, func(any) {}, nil)

	// deadline is 100 behind the reference. doubling puts it 200 behind
	test.ExpectSuccess(t, q.AdjustAll(200, 2.0))
	d, _ := q.PeekEarliestDeadline()
	test.ExpectEquality(t, d, uint64(0))

	// overdue deadlines that stay above zero keep their scaled distance
	q.Clear()
	_ = q.Push(900, func(any) {}, nil)
	test.ExpectSuccess(t, q.AdjustAll(1000, 2.0))
	d, _ = q.PeekEarliestDeadline()
	test.ExpectEquality(t, d, uint64(800))
}

func TestQueue_adjustAllOverflow(t *testing.T) {
	q := future.NewQueue(4)
	_ = q.Push(2000, func(any) {}, nil)

	// a huge factor pushes deadlines far into the future rather than
	// wrapping round to the start
	test.ExpectSuccess(t, q.AdjustAll(1000, 1e30))
	d, _ := q.PeekEarliestDeadline()
	test.ExpectEquality(t, d, uint64(1000+math.MaxInt64))

	// and never beyond the end of time
	q.Clear()
	_ = q.Push(math.MaxUint64-4, func(any) {}, nil)
	test.ExpectSuccess(t, q.AdjustAll(math.MaxUint64-5, 1e30))
	d, _ = q.PeekEarliestDeadline()
	test.ExpectEquality(t, d, uint64(math.MaxUint64))

	q.Clear()
	_ = q.Push(10, func(any) {}, nil)
	test.ExpectSuccess(t, q.AdjustAll(1000, 1e30))
	d, _ = q.PeekEarliestDeadline()
	test.ExpectEquality(t, d, uint64(0))
}
