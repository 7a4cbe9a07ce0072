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

package sequencer_test

import (
	"path/filepath"
	"testing"

	"github.com/consolemix/consolemix/hardware/future"
	"github.com/consolemix/consolemix/hardware/synth/sequencer"
	"github.com/consolemix/consolemix/hardware/synth/squarechip"
	"github.com/consolemix/consolemix/test"
	"github.com/google/go-cmp/cmp"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

type write struct {
	reg   uint16
	value uint8
}

type recorder struct {
	writes []write
}

func (r *recorder) WriteRegister(reg uint16, value uint8) {
	r.writes = append(r.writes, write{reg: reg, value: value})
}

func newPlayer() (*sequencer.Player, *future.Ticker, *recorder) {
	tck := future.NewTicker("sequencer", 0)
	tck.Start()
	rec := &recorder{}
	return sequencer.NewPlayer(tck, rec), tck, rec
}

func TestPlay(t *testing.T) {
	p, tck, rec := newPlayer()

	seq := &sequencer.Sequence{
		Name: "test",
		Steps: []sequencer.Step{
			{Delay: 100, Register: 0x40, Value: 1},
			{Delay: 0, Register: 0x41, Value: 2},
			{Delay: 50, Register: 0x40, Value: 3},
		},
	}
	test.ExpectEquality(t, seq.Duration(), uint64(150))

	test.DemandSuccess(t, p.Play(seq))
	test.ExpectSuccess(t, p.Playing())

	tck.Advance(99)
	test.ExpectEquality(t, len(rec.writes), 0)

	// steps with no delay are written in the same advance
	tck.Advance(1)
	test.ExpectEquality(t, len(rec.writes), 2)

	tck.Advance(50)
	expected := []write{{0x40, 1}, {0x41, 2}, {0x40, 3}}
	if diff := cmp.Diff(expected, rec.writes, cmp.AllowUnexported(write{})); diff != "" {
		t.Errorf("register writes mismatch (-want +got):\n%s", diff)
	}
	test.ExpectFailure(t, p.Playing())
	test.ExpectEquality(t, tck.Pending(), 0)
}

func TestLoop(t *testing.T) {
	p, tck, rec := newPlayer()

	seq := &sequencer.Sequence{
		Name: "loop",
		Loop: true,
		Steps: []sequencer.Step{
			{Delay: 10, Register: 0x40, Value: 1},
			{Delay: 10, Register: 0x40, Value: 0},
		},
	}
	test.DemandSuccess(t, p.Play(seq))

	tck.Advance(40)
	test.ExpectEquality(t, len(rec.writes), 4)
	test.ExpectEquality(t, p.Position(), 0)
	test.ExpectSuccess(t, p.Playing())

	p.Stop()
	test.ExpectFailure(t, p.Playing())

	tck.Advance(100)
	test.ExpectEquality(t, len(rec.writes), 4)
	test.ExpectEquality(t, tck.Pending(), 0)
}

func TestStopKeepsChipTimers(t *testing.T) {
	tck := future.NewTicker("shared", 0)
	tck.Start()

	ch := squarechip.NewChip(tck, 44100, 64)
	var irq int
	ch.IRQ = func(_ int) {
		irq++
	}

	// timer 1 expires every 80us
	ch.WriteRegister(squarechip.RegTimer1, 0xff)
	ch.WriteRegister(squarechip.RegTimerControl, 0x01)

	p := sequencer.NewPlayer(tck, ch)
	seq := &sequencer.Sequence{
		Name: "shared",
		Loop: true,
		Steps: []sequencer.Step{
			{Delay: 30, Register: squarechip.RegLevel, Value: squarechip.MaxLevel},
			{Delay: 30, Register: squarechip.RegLevel, Value: 0},
		},
	}
	test.DemandSuccess(t, p.Play(seq))
	tck.Advance(80)
	test.ExpectEquality(t, irq, 1)

	p.Stop()
	tck.Advance(160)
	test.ExpectEquality(t, irq, 3)

	// playing again does not disturb the timer either
	test.DemandSuccess(t, p.Play(seq))
	tck.Advance(80)
	test.ExpectEquality(t, irq, 4)
	test.ExpectSuccess(t, p.Playing())
}

func TestPause(t *testing.T) {
	p, tck, rec := newPlayer()

	seq := &sequencer.Sequence{
		Steps: []sequencer.Step{
			{Delay: 10, Register: 0x40, Value: 1},
		},
	}
	test.DemandSuccess(t, p.Play(seq))

	tck.SetPaused(true)
	tck.Advance(1000)
	test.ExpectEquality(t, len(rec.writes), 0)

	tck.SetPaused(false)
	tck.Advance(10)
	test.ExpectEquality(t, len(rec.writes), 1)
}

func TestReplay(t *testing.T) {
	p, tck, rec := newPlayer()

	seq := &sequencer.Sequence{
		Steps: []sequencer.Step{
			{Delay: 10, Register: 0x40, Value: 1},
		},
	}
	test.DemandSuccess(t, p.Play(seq))
	tck.Advance(5)

	// playing again restarts the sequence
	test.DemandSuccess(t, p.Play(seq))
	tck.Advance(5)
	test.ExpectEquality(t, len(rec.writes), 0)
	tck.Advance(5)
	test.ExpectEquality(t, len(rec.writes), 1)
}

func TestInvalidSequences(t *testing.T) {
	p, _, _ := newPlayer()

	test.ExpectFailure(t, p.Play(nil))
	test.ExpectFailure(t, p.Play(&sequencer.Sequence{Name: "empty"}))
	test.ExpectFailure(t, p.Play(&sequencer.Sequence{
		Name:  "endless",
		Loop:  true,
		Steps: []sequencer.Step{{Register: 0x40}},
	}))

	// no scheduler
	p = sequencer.NewPlayer(nil, &recorder{})
	test.ExpectFailure(t, p.Play(&sequencer.Sequence{
		Steps: []sequencer.Step{{Register: 0x40}},
	}))
}

func TestStoppedScheduler(t *testing.T) {
	tck := future.NewTicker("stopped", 0)
	p := sequencer.NewPlayer(tck, &recorder{})

	err := p.Play(&sequencer.Sequence{
		Steps: []sequencer.Step{{Delay: 10, Register: 0x40}},
	})
	test.ExpectFailure(t, err)
	test.ExpectFailure(t, p.Playing())
}

func singleNote() *smf.SMF {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(96)

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(120))
	tr.Add(0, midi.NoteOn(0, 69, 127))
	tr.Add(96, midi.NoteOff(0, 69))
	tr.Close(0)
	s.Add(tr)

	return s
}

func TestFromSMF(t *testing.T) {
	seq, err := sequencer.FromSMF(singleNote())
	test.DemandSuccess(t, err)

	// 440Hz is 0x01b8. a quarter note at 120bpm is 500ms
	expected := []sequencer.Step{
		{Delay: 0, Register: squarechip.RegFreqHi, Value: 0x01},
		{Delay: 0, Register: squarechip.RegFreqLo, Value: 0xb8},
		{Delay: 0, Register: squarechip.RegLevel, Value: squarechip.MaxLevel},
		{Delay: 500000, Register: squarechip.RegLevel, Value: 0},
	}
	if diff := cmp.Diff(expected, seq.Steps); diff != "" {
		t.Errorf("sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestFromSMFVoices(t *testing.T) {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(96)

	// three overlapping notes on a chip with two voices. the third note
	// takes the voice of the first
	var tr smf.Track
	tr.Add(0, midi.NoteOn(0, 60, 127))
	tr.Add(0, midi.NoteOn(0, 64, 127))
	tr.Add(48, midi.NoteOn(0, 67, 127))
	tr.Add(48, midi.NoteOff(0, 64))
	tr.Close(0)
	s.Add(tr)

	seq, err := sequencer.FromSMF(s)
	test.DemandSuccess(t, err)

	var voice0, voice1 int
	for _, st := range seq.Steps {
		switch st.Register {
		case squarechip.RegLevel:
			voice0++
		case squarechip.RegLevel + 1:
			voice1++
		}
	}

	// voice 0: note 60, note 67, silenced at end of file
	test.ExpectEquality(t, voice0, 3)

	// voice 1: note 64 on and off
	test.ExpectEquality(t, voice1, 2)

	// at the default tempo of 120bpm the file lasts a quarter note
	test.ExpectEquality(t, seq.Duration(), uint64(500000))
}

func TestFromMIDI(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.mid")
	test.DemandSuccess(t, singleNote().WriteFile(path))

	seq, err := sequencer.FromMIDI(path)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, seq.Name, "note.mid")
	test.ExpectEquality(t, len(seq.Steps), 4)

	_, err = sequencer.FromMIDI(filepath.Join(t.TempDir(), "missing.mid"))
	test.ExpectFailure(t, err)
}

func TestArpeggio(t *testing.T) {
	seq := sequencer.Arpeggio("arp", []int{60, 64, 67}, 1000)
	test.ExpectSuccess(t, seq.Loop)
	test.ExpectEquality(t, seq.Duration(), uint64(3000))

	// every note is on the first voice
	for _, s := range seq.Steps {
		switch s.Register {
		case squarechip.RegFreqHi, squarechip.RegFreqLo, squarechip.RegLevel:
		default:
			t.Errorf("unexpected register in step %v", s)
		}
	}

	p, tck, rec := newPlayer()
	test.DemandSuccess(t, p.Play(seq))
	tck.Advance(3000)
	test.ExpectEquality(t, len(rec.writes), len(seq.Steps))
	test.ExpectSuccess(t, p.Playing())
}
