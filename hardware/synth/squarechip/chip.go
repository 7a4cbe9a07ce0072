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

import (
	"github.com/arl/blip"
	"github.com/consolemix/consolemix/curated"
	"github.com/consolemix/consolemix/hardware/future"
)

// InvalidTempo is returned by SetTempo() for tempo values that are not
// greater than zero.
const InvalidTempo = "squarechip: invalid tempo (%f)"

// NumVoices is the number of square wave voices.
const NumVoices = 2

// MaxLevel is the loudest voice level.
const MaxLevel = 63

// the amplitude of a voice at MaxLevel. the output range of the chip is
// similar to the output of an FM chip emulation
const maxAmplitude = 8192

// Register numbers.
const (
	RegTimer1       = 0x02
	RegTimer2       = 0x03
	RegTimerControl = 0x04
	RegLevel        = 0x40
	RegFreqLo       = 0xa0
	RegFreqHi       = 0xb0
)

// Status register bits.
const (
	StatusIRQ    = 0x80
	StatusTimer1 = 0x40
	StatusTimer2 = 0x20
)

type voice struct {
	freq  int
	level int

	// +1 or -1
	phase int

	// clock time of next delta and current amplitude in the delta buffer
	time int
	amp  int
}

func (v *voice) run(bl *blip.Buffer, clockRate float64, clocks int) {
	volume := v.level * maxAmplitude / MaxLevel

	if v.freq <= 0 || volume == 0 {
		// return to zero if the voice was sounding
		if v.amp != 0 {
			bl.AddDelta(0, int32(-v.amp))
			v.amp = 0
		}
		v.time = 0
		return
	}

	// clocks for each half of the square wave cycle
	period := int(clockRate/float64(v.freq)/2 + 0.5)
	if period < 1 {
		period = 1
	}

	for ; v.time < clocks; v.time += period {
		delta := v.phase*volume - v.amp
		v.amp += delta
		bl.AddDelta(uint64(v.time), int32(delta))
		v.phase = -v.phase
	}

	v.time -= clocks
}

// Chip is the square wave synthesizer.
type Chip struct {
	sched future.Scheduler

	bl         *blip.Buffer
	clockRate  float64
	sampleRate int

	// scratch space for samples read from the blip buffer
	temp []int16

	regs   [0x100]uint8
	voices [NumVoices]voice
	timers [2]timer
	status uint8

	// time scale applied to timer periods. the reciprocal of the tempo
	scale float64

	// IRQ is called when an unmasked timer expires. the argument is the
	// timer number (1 or 2)
	IRQ func(timer int)
}

// NewChip is the preferred method of initialisation for the Chip type.
// The blockSize argument is the largest block of samples that will be
// generated in one go.
func NewChip(sched future.Scheduler, sampleRate int, blockSize int) *Chip {
	ch := &Chip{
		sched:      sched,
		sampleRate: sampleRate,
		clockRate:  float64(sampleRate) * blip.MaxRatio,
		temp:       make([]int16, blockSize),
		scale:      1.0,
	}

	ch.bl = blip.NewBuffer(blockSize)
	ch.bl.SetRates(ch.clockRate, float64(sampleRate))

	ch.timers[0] = timer{chip: ch, id: 1, unit: 80}
	ch.timers[1] = timer{chip: ch, id: 2, unit: 320}

	ch.Reset()

	return ch
}

// Reset silences the voices, stops the timers and clears the status
// register. Pending timer events do nothing when they run. Events scheduled
// by other users of the scheduler are not affected.
func (ch *Chip) Reset() {
	ch.regs = [0x100]uint8{}
	for i := range ch.voices {
		ch.voices[i] = voice{phase: 1}
	}
	for i := range ch.timers {
		ch.timers[i].stop()
	}
	ch.status = 0
	ch.bl.Clear()
}

// Status returns the value of the status register.
func (ch *Chip) Status() uint8 {
	return ch.status
}

// Voice returns the frequency and level of a voice.
func (ch *Chip) Voice(n int) (freq int, level int) {
	if n < 0 || n >= NumVoices {
		return 0, 0
	}
	return ch.voices[n].freq, ch.voices[n].level
}

// SetTempo changes the rate of the timers. A tempo of 2.0 makes the timers
// expire twice as often. Timers that are already running are adjusted so
// that the time remaining before they expire changes by the same amount.
func (ch *Chip) SetTempo(tempo float64) error {
	if !(tempo > 0) {
		return curated.Errorf(InvalidTempo, tempo)
	}

	scale := 1.0 / tempo
	if ch.sched != nil {
		err := ch.sched.AdjustCallbacks(scale / ch.scale)
		if err != nil && !curated.Is(err, future.SchedulerStopped) {
			return err
		}
	}
	ch.scale = scale

	return nil
}

// WriteRegister implements the synth.RegisterWriter interface.
func (ch *Chip) WriteRegister(reg uint16, value uint8) {
	if reg >= 0x100 {
		return
	}
	ch.regs[reg] = value

	switch {
	case reg == RegTimerControl:
		ch.timerControl(value)

	case reg >= RegLevel && reg < RegLevel+NumVoices:
		ch.voices[reg-RegLevel].level = int(value & MaxLevel)

	case reg >= RegFreqLo && reg < RegFreqLo+NumVoices:
		n := reg - RegFreqLo
		ch.voices[n].freq = int(ch.regs[RegFreqHi+n])<<8 | int(value)

	case reg >= RegFreqHi && reg < RegFreqHi+NumVoices:
		n := reg - RegFreqHi
		ch.voices[n].freq = int(value)<<8 | int(ch.regs[RegFreqLo+n])
	}
}

func (ch *Chip) timerControl(value uint8) {
	if value&0x80 == 0x80 {
		ch.status = 0
		return
	}

	ch.timers[0].masked = value&0x40 == 0x40
	ch.timers[1].masked = value&0x20 == 0x20

	if value&0x01 == 0x01 {
		ch.timers[0].start(ch.regs[RegTimer1])
	} else {
		ch.timers[0].stop()
	}

	if value&0x02 == 0x02 {
		ch.timers[1].start(ch.regs[RegTimer2])
	} else {
		ch.timers[1].stop()
	}
}

// GenerateBlock implements the synth.Generator interface.
func (ch *Chip) GenerateBlock(out []int32) {
	for len(out) > 0 {
		n := min(len(out), len(ch.temp))

		clocks := ch.bl.ClocksNeeded(n)
		for i := range ch.voices {
			ch.voices[i].run(ch.bl, ch.clockRate, clocks)
		}
		ch.bl.EndFrame(clocks)
		ch.bl.ReadSamples(ch.temp[:n], n, blip.Mono)

		for i := 0; i < n; i++ {
			out[i] = int32(ch.temp[i])
		}
		out = out[n:]
	}
}
