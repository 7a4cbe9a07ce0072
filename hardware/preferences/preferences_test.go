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

package preferences_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/consolemix/consolemix/hardware/preferences"
	"github.com/consolemix/consolemix/prefs"
	"github.com/consolemix/consolemix/test"
)

func TestDefaults(t *testing.T) {
	p, err := preferences.NewPreferencesFile(filepath.Join(t.TempDir(), prefs.DefaultPrefsFile))
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.SampleRate.Get().(int), 44100)
	test.ExpectEquality(t, p.HalfBuffer.Get().(int), 16)
	test.ExpectEquality(t, p.MaxTick.Get().(int), 2048)
	test.ExpectEquality(t, p.SynthGain.Get().(int), 2)
	test.ExpectEquality(t, p.QueueCapacity.Get().(int), 64)
	test.ExpectEquality(t, p.Tempo.Get().(float64), 1.0)
	test.ExpectEquality(t, p.Driver.String(), "sdl")
}

func TestValidation(t *testing.T) {
	p, err := preferences.NewPreferencesFile(filepath.Join(t.TempDir(), prefs.DefaultPrefsFile))
	test.DemandSuccess(t, err)

	test.ExpectFailure(t, p.SampleRate.Set(0))
	test.ExpectFailure(t, p.HalfBuffer.Set(-16))
	test.ExpectFailure(t, p.Tempo.Set(0.0))
	test.ExpectFailure(t, p.Driver.Set("alsa"))
	test.ExpectSuccess(t, p.Driver.Set("oto"))

	// unchanged by the failed sets
	test.ExpectEquality(t, p.SampleRate.Get().(int), 44100)
	test.ExpectEquality(t, p.HalfBuffer.Get().(int), 16)
}

func TestSaveLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	p, err := preferences.NewPreferencesFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.SampleRate.Set(22050))
	test.ExpectSuccess(t, p.Tempo.Set(1.5))
	test.DemandSuccess(t, p.Save())

	_, err = os.Stat(fn)
	test.DemandSuccess(t, err)

	q, err := preferences.NewPreferencesFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.SampleRate.Get().(int), 22050)
	test.ExpectEquality(t, q.Tempo.Get().(float64), 1.5)

	q.SetDefaults()
	test.ExpectEquality(t, q.SampleRate.Get().(int), 44100)
	test.DemandSuccess(t, q.Load())
	test.ExpectEquality(t, q.SampleRate.Get().(int), 22050)
}

func TestCommandLine(t *testing.T) {
	prefs.PushCommandLineStack("audio.halfbuffer::64")
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewPreferencesFile(filepath.Join(t.TempDir(), prefs.DefaultPrefsFile))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.HalfBuffer.Get().(int), 64)
}
