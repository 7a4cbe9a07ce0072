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

package sequencer

import (
	"fmt"

	"github.com/consolemix/consolemix/curated"
	"github.com/consolemix/consolemix/hardware/future"
	"github.com/consolemix/consolemix/hardware/synth"
)

// Sentinal error patterns.
const (
	EmptySequence = "sequencer: sequence %s has no steps"
	NoScheduler   = "sequencer: no scheduler"
	EndlessLoop   = "sequencer: looping sequence %s has zero duration"
)

// Step is a single register write.
type Step struct {
	// microseconds after the previous step
	Delay uint64

	Register uint16
	Value    uint8
}

func (s Step) String() string {
	return fmt.Sprintf("+%dus %03x=%02x", s.Delay, s.Register, s.Value)
}

// Sequence is a list of steps.
type Sequence struct {
	Name  string
	Steps []Step

	// the sequence restarts from the first step after the last step has
	// been played
	Loop bool
}

// Duration returns the total of all step delays in microseconds.
func (seq *Sequence) Duration() uint64 {
	var d uint64
	for _, s := range seq.Steps {
		d += s.Delay
	}
	return d
}

// Player plays a Sequence through a register writer.
type Player struct {
	sched future.Scheduler
	out   synth.RegisterWriter

	seq     *Sequence
	pos     int
	playing bool

	// incremented by Play() and Stop(). pending events for an earlier
	// generation do nothing
	generation int
}

// NewPlayer is the preferred method of initialisation for the Player type.
func NewPlayer(sched future.Scheduler, out synth.RegisterWriter) *Player {
	return &Player{
		sched: sched,
		out:   out,
	}
}

func (p *Player) String() string {
	if !p.playing {
		return "stopped"
	}
	return fmt.Sprintf("%s: step %d of %d", p.seq.Name, p.pos, len(p.seq.Steps))
}

// Play starts the sequence from the first step. Any sequence that is already
// playing is stopped.
func (p *Player) Play(seq *Sequence) error {
	if p.sched == nil {
		return curated.Errorf(NoScheduler)
	}
	if seq == nil || len(seq.Steps) == 0 {
		name := "<nil>"
		if seq != nil {
			name = seq.Name
		}
		return curated.Errorf(EmptySequence, name)
	}
	if seq.Loop && seq.Duration() == 0 {
		return curated.Errorf(EndlessLoop, seq.Name)
	}

	p.Stop()

	p.seq = seq
	p.pos = 0
	p.playing = true
	p.generation++

	return p.scheduleNext()
}

// Stop ends playback. The pending step stays in the scheduler but does
// nothing when it runs. Events scheduled by other users of the scheduler are
// not affected.
func (p *Player) Stop() {
	if !p.playing {
		return
	}
	p.playing = false
	p.generation++
}

// Playing returns true if a sequence is being played.
func (p *Player) Playing() bool {
	return p.playing
}

// Position returns the index of the next step to be played.
func (p *Player) Position() int {
	return p.pos
}

func (p *Player) scheduleNext() error {
	err := p.sched.ScheduleAfter(p.seq.Steps[p.pos].Delay, p.step, p.generation)
	if err != nil {
		p.playing = false
		return curated.Errorf("sequencer: %v", err)
	}
	return nil
}

func (p *Player) step(context any) {
	if !p.playing || context.(int) != p.generation {
		return
	}

	s := p.seq.Steps[p.pos]
	p.out.WriteRegister(s.Register, s.Value)

	// the register write may have caused the player to stop
	if !p.playing || context.(int) != p.generation {
		return
	}

	p.pos++
	if p.pos >= len(p.seq.Steps) {
		if !p.seq.Loop {
			p.playing = false
			return
		}
		p.pos = 0
	}

	// the scheduler records the missed event. playing stops
	_ = p.scheduleNext()
}
