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

package squarechip

// timer is one of the programmable timers of the chip.
type timer struct {
	chip *Chip
	id   int

	// microseconds per count
	unit uint64

	running bool
	masked  bool
	period  uint64

	// incremented every time the timer is started or stopped. expiry events
	// scheduled for an earlier generation are ignored
	generation int
}

func (t *timer) start(count uint8) {
	if t.running {
		return
	}
	t.generation++
	t.running = true
	t.period = (256 - uint64(count)) * t.unit
	t.arm()
}

func (t *timer) stop() {
	if t.running {
		t.generation++
	}
	t.running = false
}

func (t *timer) arm() {
	if t.chip.sched == nil {
		return
	}
	delay := uint64(float64(t.period) * t.chip.scale)

	// a full event queue means the timer stops. the missed event is counted
	// by the scheduler
	if err := t.chip.sched.ScheduleAfter(delay, t.expire, t.generation); err != nil {
		t.running = false
	}
}

func (t *timer) expire(context any) {
	if !t.running || context.(int) != t.generation {
		return
	}

	if !t.masked {
		if t.id == 1 {
			t.chip.status |= StatusIRQ | StatusTimer1
		} else {
			t.chip.status |= StatusIRQ | StatusTimer2
		}
		if t.chip.IRQ != nil {
			t.chip.IRQ(t.id)
		}
	}

	// the IRQ handler may have stopped the timer
	if t.running && context.(int) == t.generation {
		t.arm()
	}
}
