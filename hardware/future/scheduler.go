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

	"github.com/consolemix/consolemix/curated"
)

// State of the Ticker.
type State int

// List of valid State values.
const (
	Stopped State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Running:
		return "running"
	case Paused:
		return "paused"
	}
	return "unknown"
}

// Scheduler exposes only the functions relating to scheduling of events.
type Scheduler interface {
	ScheduleAfter(delta uint64, payload Payload, context any) error
	ClearAll()
	AdjustCallbacks(factor float64) error
	Now() uint64
}

// DefaultCapacity is the number of events a Ticker can hold unless another
// value is specified.
const DefaultCapacity = 64

// Ticker owns the virtual clock and the queue of pending events.
type Ticker struct {
	Label string

	state    State
	capacity int
	queue    *Queue

	// the raw clock always moves forward on a call to Advance(). the paused
	// offset accumulates the time spent paused. the effective time is the
	// difference between the two
	raw          uint64
	pausedOffset uint64

	// number of events that could not be scheduled since the last call to
	// ResetMissed()
	missed int
}

// NewTicker is the preferred method of initialisation for the Ticker type.
// The Ticker is created in the Stopped state.
func NewTicker(label string, capacity int) *Ticker {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Ticker{
		Label:    label,
		capacity: capacity,
	}
}

var errStopped = curated.Errorf(SchedulerStopped)

func (tck *Ticker) String() string {
	return fmt.Sprintf("%s: %s @ %dus (%d pending)", tck.Label, tck.state, tck.Now(), tck.Pending())
}

// Start resets the clock and attaches an empty event queue. Starting an
// already running Ticker restarts it.
func (tck *Ticker) Start() {
	if tck.queue == nil {
		tck.queue = NewQueue(tck.capacity)
	} else {
		tck.queue.Clear()
	}
	tck.raw = 0
	tck.pausedOffset = 0
	tck.missed = 0
	tck.state = Running
}

// Stop discards all pending events and releases the event queue.
func (tck *Ticker) Stop() {
	if tck.queue != nil {
		tck.queue.Clear()
		tck.queue = nil
	}
	tck.state = Stopped
}

// State returns the current state of the Ticker.
func (tck *Ticker) State() State {
	return tck.state
}

// SetPaused moves the Ticker between the Running and Paused states. It has no
// effect if the Ticker is stopped.
func (tck *Ticker) SetPaused(paused bool) {
	if tck.state == Stopped {
		return
	}
	if paused {
		tck.state = Paused
	} else {
		tck.state = Running
	}
}

// Now returns the effective time. The effective time does not move while the
// Ticker is paused.
func (tck *Ticker) Now() uint64 {
	return tck.raw - tck.pausedOffset
}

// Raw returns the raw time, including any time spent paused.
func (tck *Ticker) Raw() uint64 {
	return tck.raw
}

// Pending returns the number of events waiting in the queue.
func (tck *Ticker) Pending() int {
	if tck.queue == nil {
		return 0
	}
	return tck.queue.Len()
}

// Missed returns the number of events dropped because the queue was full.
func (tck *Ticker) Missed() int {
	return tck.missed
}

// ResetMissed sets the missed event count to zero and returns the previous
// count.
func (tck *Ticker) ResetMissed() int {
	m := tck.missed
	tck.missed = 0
	return m
}

// ScheduleAfter adds an event that is due delta microseconds after the
// current effective time. If the event cannot be queued it is dropped, the
// missed count is incremented and the error is returned.
func (tck *Ticker) ScheduleAfter(delta uint64, payload Payload, context any) error {
	if tck.state == Stopped {
		return errStopped
	}

	err := tck.queue.Push(tck.Now()+delta, payload, context)
	if err != nil {
		if curated.Is(err, QueueFull) {
			tck.missed++
		}
		return err
	}

	return nil
}

// Advance moves the clock forward by delta microseconds and runs the payload
// of every event that is now due, earliest first. Payloads run to completion
// before the next event is considered. A payload that schedules an event that
// is already due will see that event run in the same call.
//
// If the Ticker is paused the raw clock moves forward but no payloads are
// run. Advance() has no effect if the Ticker is stopped.
func (tck *Ticker) Advance(delta uint64) {
	if tck.state == Stopped {
		return
	}

	tck.raw += delta

	if tck.state == Paused {
		tck.pausedOffset += delta
		return
	}

	// the state and queue are checked on every iteration because a payload
	// may pause or stop the Ticker
	for tck.state == Running && tck.queue != nil {
		deadline, ok := tck.queue.PeekEarliestDeadline()
		if !ok || deadline > tck.Now() {
			break
		}
		ev, _ := tck.queue.PopEarliest()
		ev.Payload(ev.Context)
	}
}

// ClearAll discards all pending events without running their payloads.
func (tck *Ticker) ClearAll() {
	if tck.queue != nil {
		tck.queue.Clear()
	}
}

// AdjustCallbacks rescales the time remaining before every pending event by
// factor. Used when the rate of the synthesizer's clock changes.
func (tck *Ticker) AdjustCallbacks(factor float64) error {
	if tck.queue == nil {
		return errStopped
	}
	return tck.queue.AdjustAll(tck.Now(), factor)
}
