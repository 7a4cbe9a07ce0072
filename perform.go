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
	"fmt"
	"time"

	"github.com/consolemix/consolemix/environment"
	"github.com/consolemix/consolemix/hardware/preferences"
	"github.com/consolemix/consolemix/modalflag"
	"github.com/consolemix/consolemix/performance"
)

func perform(md *modalflag.Modes, prefs *preferences.Preferences) error {
	md.NewMode()

	duration := md.AddDuration("duration", 5*time.Second, "run duration")
	profile := md.AddString("profile", "none", "profiles to generate: cpu, mem, trace, all, none (comma separated)")
	paced := md.AddBool("paced", false, "request fills at the rate of a real output device")
	withMusic := md.AddBool("music", true, "play a sequence on the square wave chip")
	soundDir := md.AddString("sounds", "", "directory of sound effects")
	effects := md.AddString("effects", "", "sounds played on channels 0 upwards (comma separated)")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("%s mode does not take arguments", md)
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	// the sound cache shares the quiet environment of the performance check
	env, err := environment.NewEnvironment(performance.Label, prefs)
	if err != nil {
		return err
	}
	cache, err := newSounds(env, *soundDir)
	if err != nil {
		return err
	}

	_, err = performance.Check(md.Output, prf, prefs, cache, performance.Options{
		Duration: *duration,
		Paced:    *paced,
		Music:    *withMusic,
		Effects:  splitList(*effects),
	})

	return err
}
