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

package main

import (
	"strings"

	"github.com/consolemix/consolemix/curated"
	"github.com/consolemix/consolemix/gui/otoaudio"
	"github.com/consolemix/consolemix/gui/sdlaudio"
	"github.com/consolemix/consolemix/hardware/pipeline"
	"github.com/consolemix/consolemix/hardware/preferences"
	"github.com/consolemix/consolemix/hardware/synth"
	"github.com/consolemix/consolemix/hardware/synth/sequencer"
	"github.com/consolemix/consolemix/hardware/synth/squarechip"
	"github.com/consolemix/consolemix/logger"
	"github.com/consolemix/consolemix/resources/sounds"
)

// notes of the sequence played when music is requested but no file is given
var demoKeys = []int{57, 60, 64, 69, 72, 69, 64, 60}

// length of each note in the demo sequence in microseconds
const demoNoteLength = 150000

// newDriver creates the named output driver. The returned function releases
// the driver and should be called once the pipeline has been shut down.
func newDriver(name string, prefs *preferences.Preferences) (pipeline.Driver, func(), error) {
	rate := prefs.SampleRate.Get().(int)
	half := prefs.HalfBuffer.Get().(int)

	switch strings.ToLower(name) {
	case "sdl":
		aud, err := sdlaudio.NewAudio(rate, half)
		if err != nil {
			return nil, nil, err
		}
		return aud, aud.Close, nil

	case "oto":
		aud, err := otoaudio.NewAudio(rate, half)
		if err != nil {
			return nil, nil, err
		}
		return aud, func() {}, nil
	}

	return nil, nil, curated.Errorf("unknown output driver (%s)", name)
}

// newSounds creates a sound cache. If a directory is given then every sound
// in it is loaded.
func newSounds(perm logger.Permission, dir string) (*sounds.Cache, error) {
	cache := sounds.NewCache(perm, dir)
	if dir == "" {
		return cache, nil
	}

	n, err := cache.LoadDir(dir)
	if err != nil {
		return nil, err
	}
	logger.Logf(perm, "sounds", "%d sounds loaded from %s", n, dir)

	return cache, nil
}

// splitList splits a comma separated list, ignoring surrounding space.
// Empty entries are kept so that positions in the list are preserved.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	l := strings.Split(s, ",")
	for i := range l {
		l[i] = strings.TrimSpace(l[i])
	}
	return l
}

// music is the square wave chip and the sequence player attached to a
// pipeline.
type music struct {
	chip   *squarechip.Chip
	port   *synth.Port
	player *sequencer.Player
}

// attachMusic creates the square wave chip, attaches it to the pipeline and
// starts playing the MIDI file. If no file is given then a short demo
// sequence is played. The pipeline must have been initialised.
func attachMusic(pl *pipeline.Pipeline, prefs *preferences.Preferences, midiFile string, loop bool) (*music, error) {
	var seq *sequencer.Sequence
	var err error

	if midiFile != "" {
		seq, err = sequencer.FromMIDI(midiFile)
		if err != nil {
			return nil, err
		}
	} else {
		seq = sequencer.Arpeggio("demo", demoKeys, demoNoteLength)
	}
	seq.Loop = loop

	m := &music{}
	m.chip = squarechip.NewChip(pl.Scheduler(), pl.SampleRate(), prefs.MaxTick.Get().(int))
	m.port = synth.NewPort(m.chip)
	m.port.Init()
	m.player = sequencer.NewPlayer(pl.Scheduler(), m.port)

	pl.AttachSynth(m.chip)

	pl.Critical(func() {
		err = m.chip.SetTempo(prefs.Tempo.Get().(float64))
		if err != nil {
			return
		}
		err = m.player.Play(seq)
	})
	if err != nil {
		return nil, err
	}

	return m, nil
}

func (m *music) String() string {
	return m.player.String()
}
