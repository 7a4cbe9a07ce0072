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

// Package preferences holds the preferences of the audio hardware. The
// values are stored in the preferences file under the "audio." prefix.
package preferences

import (
	"github.com/consolemix/consolemix/curated"
	"github.com/consolemix/consolemix/paths"
	"github.com/consolemix/consolemix/prefs"
)

// Default values.
const (
	DefaultSampleRate    = 44100
	DefaultHalfBuffer    = 16
	DefaultMaxTick       = 2048
	DefaultSynthGain     = 2
	DefaultQueueCapacity = 64
	DefaultTempo         = 1.0
	DefaultDriver        = "sdl"
)

// InvalidValue is the error pattern for preference values that are out of
// range.
const InvalidValue = "preferences: %s: invalid value (%v)"

// Preferences defines and collates all the preference values used by the
// audio hardware.
type Preferences struct {
	dsk *prefs.Disk

	// output sample rate in Hz
	SampleRate prefs.Int

	// number of stereo frames in each half of the transfer buffer
	HalfBuffer prefs.Int

	// the largest number of samples the synthesizer is asked for in one go
	MaxTick prefs.Int

	// gain applied to the synthesizer output before mixing
	SynthGain prefs.Int

	// capacity of the scheduler event queue
	QueueCapacity prefs.Int

	// rate of the music timers. 1.0 is normal speed
	Tempo prefs.Float

	// output driver used in PLAY mode ("sdl" or "oto")
	Driver prefs.String
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// positive returns a pre-hook that rejects values less than one
func positive(key string) func(prefs.Value) error {
	return func(v prefs.Value) error {
		switch v := v.(type) {
		case int:
			if v < 1 {
				return curated.Errorf(InvalidValue, key, v)
			}
		case float64:
			if !(v > 0) {
				return curated.Errorf(InvalidValue, key, v)
			}
		}
		return nil
	}
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the default preferences file and
// from the command line stack.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return newPreferences(pth)
}

// NewPreferencesFile is like NewPreferences() but uses the named
// preferences file.
func NewPreferencesFile(pth string) (*Preferences, error) {
	return newPreferences(pth)
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.SampleRate.SetHookPre(positive("audio.samplerate"))
	p.HalfBuffer.SetHookPre(positive("audio.halfbuffer"))
	p.MaxTick.SetHookPre(positive("audio.maxtick"))
	p.SynthGain.SetHookPre(positive("audio.synthgain"))
	p.QueueCapacity.SetHookPre(positive("audio.queuecap"))
	p.Tempo.SetHookPre(positive("audio.tempo"))
	p.Driver.SetHookPre(func(v prefs.Value) error {
		switch v.(string) {
		case "sdl", "oto":
			return nil
		}
		return curated.Errorf(InvalidValue, "audio.driver", v)
	})

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("audio.samplerate", &p.SampleRate)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("audio.halfbuffer", &p.HalfBuffer)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("audio.maxtick", &p.MaxTick)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("audio.synthgain", &p.SynthGain)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("audio.queuecap", &p.QueueCapacity)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("audio.tempo", &p.Tempo)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("audio.driver", &p.Driver)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all audio preferences to the default values.
func (p *Preferences) SetDefaults() {
	// hooks allow the default values so errors are not possible
	_ = p.SampleRate.Set(DefaultSampleRate)
	_ = p.HalfBuffer.Set(DefaultHalfBuffer)
	_ = p.MaxTick.Set(DefaultMaxTick)
	_ = p.SynthGain.Set(DefaultSynthGain)
	_ = p.QueueCapacity.Set(DefaultQueueCapacity)
	_ = p.Tempo.Set(DefaultTempo)
	_ = p.Driver.Set(DefaultDriver)
}

// Load current audio preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current audio preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
