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

	"github.com/consolemix/consolemix/curated"
	"github.com/consolemix/consolemix/environment"
	"github.com/consolemix/consolemix/hardware/pipeline"
	"github.com/consolemix/consolemix/hardware/preferences"
	"github.com/consolemix/consolemix/logger"
	"github.com/consolemix/consolemix/modalflag"
	"github.com/consolemix/consolemix/userinput"
)

const playTag = "play"

// how often the application side of the pipeline is serviced in PLAY mode
const updatePeriod = 100 * time.Millisecond

// controller binds sound effects to channels and implements the
// userinput.HandleInput interface.
type controller struct {
	env      *environment.Environment
	pl       *pipeline.Pipeline
	bindings []string
}

func (ctl *controller) StartChannel(channel int) error {
	if channel >= len(ctl.bindings) || ctl.bindings[channel] == "" {
		return curated.Errorf("no sound bound to key %d", channel+1)
	}
	_, err := ctl.pl.StartSound(channel, ctl.bindings[channel], 127, 128)
	return err
}

func (ctl *controller) StopChannel(channel int) {
	ctl.pl.StopSound(channel)
}

func (ctl *controller) ToggleMusic() {
	paused := !ctl.pl.MusicPaused()
	ctl.pl.SetMusicPaused(paused)
	if paused {
		logger.Log(ctl.env, playTag, "music paused")
	} else {
		logger.Log(ctl.env, playTag, "music resumed")
	}
}

func play(md *modalflag.Modes, sync *mainSync, prefs *preferences.Preferences) error {
	md.NewMode()

	driver := md.AddString("driver", "", "output driver: SDL, OTO (default from preferences)")
	soundDir := md.AddString("sounds", "", "directory of sound effects")
	bind := md.AddString("bind", "", "sounds bound to keys 1 to 8 (comma separated)")
	withMusic := md.AddBool("music", true, "play music (demo sequence if no MIDI file is given)")
	loop := md.AddBool("loop", true, "loop the music")

	md.AdditionalHelp("keys 1 to 8 start sounds, q to i stop them, p pauses the music, x quits")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 1 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	env, err := environment.NewEnvironment(environment.MainPipeline, prefs)
	if err != nil {
		return err
	}

	if *driver == "" {
		*driver = prefs.Driver.Get().(string)
	}
	drv, release, err := newDriver(*driver, prefs)
	if err != nil {
		return err
	}
	defer release()

	cache, err := newSounds(env, *soundDir)
	if err != nil {
		return err
	}

	pl, err := pipeline.NewPipeline(env, drv, cache)
	if err != nil {
		return err
	}

	if err := pl.Initialize(); err != nil {
		return err
	}
	defer func() {
		if err := pl.Shutdown(); err != nil {
			logger.Log(env, playTag, err)
		}
	}()

	if *withMusic || md.GetArg(0) != "" {
		m, err := attachMusic(pl, prefs, md.GetArg(0), *loop)
		if err != nil {
			return err
		}
		logger.Logf(env, playTag, "music: %v", m)
	}

	if err := pl.Start(); err != nil {
		return err
	}

	ctl := &controller{
		env:      env,
		pl:       pl,
		bindings: splitList(*bind),
	}

	var events chan userinput.Event
	if userinput.IsInteractive() {
		kb, err := userinput.NewKeyboard()
		if err != nil {
			return err
		}
		defer kb.Close()

		events = make(chan userinput.Event)
		go kb.Events(events)
	} else {
		fmt.Fprintln(md.Output, "not a terminal: keyboard disabled. interrupt to quit")
	}

	tick := time.NewTicker(updatePeriod)
	defer tick.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			quit, err := userinput.HandleUserInput(ev, ctl)
			if err != nil {
				logger.Log(env, playTag, err)
			}
			if quit {
				return nil
			}

		case <-tick.C:
			pl.Update()

		case <-sync.interrupt:
			return nil
		}
	}
}
