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
	"math"
	"path/filepath"
	"sort"

	"github.com/consolemix/consolemix/curated"
	"github.com/consolemix/consolemix/hardware/synth/squarechip"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Sentinal error patterns.
const (
	MIDIError       = "sequencer: midi: %v"
	UnsupportedTime = "sequencer: midi: only metric time is supported"
)

// tempo of a MIDI file with no tempo events
const defaultBPM = 120.0

// the level of a voice playing a note at full velocity
const maxNoteLevel = squarechip.MaxLevel

// FromMIDI reads a standard MIDI file and converts it to a Sequence for the
// square wave chip.
func FromMIDI(path string) (*Sequence, error) {
	s, err := smf.ReadFile(path)
	if err != nil {
		return nil, curated.Errorf(MIDIError, err)
	}
	seq, err := FromSMF(s)
	if err != nil {
		return nil, err
	}
	seq.Name = filepath.Base(path)
	return seq, nil
}

// timed MIDI message merged from all tracks
type timedMessage struct {
	tick  uint64
	track int
	msg   smf.Message
}

// FromSMF converts a parsed MIDI file to a Sequence for the square wave
// chip. All tracks are merged. Notes are given to the first free voice of the
// chip; when no voice is free the oldest note is replaced.
func FromSMF(s *smf.SMF) (*Sequence, error) {
	metric, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return nil, curated.Errorf(UnsupportedTime)
	}

	var msgs []timedMessage
	for i, tr := range s.Tracks {
		var tick uint64
		for _, ev := range tr {
			tick += uint64(ev.Delta)
			msgs = append(msgs, timedMessage{tick: tick, track: i, msg: ev.Message})
		}
	}

	// messages at the same tick keep the order of their tracks
	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].tick < msgs[j].tick
	})

	b := builder{
		seq: &Sequence{},
	}
	for v := range b.voices {
		b.voices[v].key = -1
	}

	bpm := defaultBPM
	var lastTick uint64

	for _, m := range msgs {
		if m.tick > lastTick {
			d := metric.Duration(bpm, uint32(m.tick-lastTick))
			b.delay += uint64(d.Microseconds())
			lastTick = m.tick
		}

		var newBPM float64
		if m.msg.GetMetaTempo(&newBPM) {
			if newBPM > 0 {
				bpm = newBPM
			}
			continue
		}

		var channel, key, velocity uint8
		msg := midi.Message(m.msg)
		switch {
		case msg.GetNoteStart(&channel, &key, &velocity):
			b.noteOn(int(key), int(velocity))
		case msg.GetNoteEnd(&channel, &key):
			b.noteOff(int(key))
		}
	}

	// silence any notes still sounding at the end of the file
	for v := range b.voices {
		if b.voices[v].key != -1 {
			b.write(squarechip.RegLevel+uint16(v), 0)
		}
	}

	return b.seq, nil
}

type voiceState struct {
	key   int
	start int
}

type builder struct {
	seq    *Sequence
	voices [squarechip.NumVoices]voiceState

	// delay accumulated since the last step was added
	delay uint64

	// note counter used to find the oldest sounding note
	count int
}

func (b *builder) write(reg uint16, value uint8) {
	b.seq.Steps = append(b.seq.Steps, Step{
		Delay:    b.delay,
		Register: reg,
		Value:    value,
	})
	b.delay = 0
}

func (b *builder) noteOn(key int, velocity int) {
	v := -1
	oldest := math.MaxInt
	for i := range b.voices {
		if b.voices[i].key == -1 {
			v = i
			break
		}
		if b.voices[i].start < oldest {
			oldest = b.voices[i].start
			v = i
		}
	}

	b.count++
	b.voices[v] = voiceState{key: key, start: b.count}

	freq := noteFrequency(key)
	b.write(squarechip.RegFreqHi+uint16(v), uint8(freq>>8))
	b.write(squarechip.RegFreqLo+uint16(v), uint8(freq))
	b.write(squarechip.RegLevel+uint16(v), uint8(velocity*maxNoteLevel/127))
}

func (b *builder) noteOff(key int) {
	for i := range b.voices {
		if b.voices[i].key == key {
			b.voices[i].key = -1
			b.write(squarechip.RegLevel+uint16(i), 0)
			return
		}
	}
}

// noteFrequency returns the frequency in Hz of a MIDI key number. Key 69 is
// A4 (440Hz).
func noteFrequency(key int) int {
	return int(math.Round(440.0 * math.Pow(2, float64(key-69)/12.0)))
}
