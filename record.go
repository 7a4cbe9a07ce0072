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

	"github.com/consolemix/consolemix/digest"
	"github.com/consolemix/consolemix/environment"
	"github.com/consolemix/consolemix/hardware/dma"
	"github.com/consolemix/consolemix/hardware/pipeline"
	"github.com/consolemix/consolemix/hardware/preferences"
	"github.com/consolemix/consolemix/logger"
	"github.com/consolemix/consolemix/modalflag"
	"github.com/consolemix/consolemix/paths"
	"github.com/consolemix/consolemix/wavwriter"
)

// number of half buffers recorded between each service of the application
// side of the pipeline
const recordBatch = 64

func record(md *modalflag.Modes, sync *mainSync, prefs *preferences.Preferences) error {
	md.NewMode()

	duration := md.AddDuration("duration", 5*time.Second, "length of the recording")
	output := md.AddString("o", "", "output file (default is a unique name in the current directory)")
	soundDir := md.AddString("sounds", "", "directory of sound effects")
	effects := md.AddString("effects", "", "sounds started on channels 0 upwards (comma separated)")
	withMusic := md.AddBool("music", false, "record the demo sequence if no MIDI file is given")
	loop := md.AddBool("loop", false, "loop the music")

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

	cache, err := newSounds(env, *soundDir)
	if err != nil {
		return err
	}

	drv := dma.NewHeadless(prefs.HalfBuffer.Get().(int))

	pl, err := pipeline.NewPipeline(env, drv, cache)
	if err != nil {
		return err
	}

	if err := pl.Initialize(); err != nil {
		return err
	}
	defer pl.Shutdown()

	if *withMusic || md.GetArg(0) != "" {
		if _, err := attachMusic(pl, prefs, md.GetArg(0), *loop); err != nil {
			return err
		}
	}

	if err := pl.Start(); err != nil {
		return err
	}

	for ch, id := range splitList(*effects) {
		if id == "" {
			continue
		}
		if _, err := pl.StartSound(ch, id, 127, 128); err != nil {
			return err
		}
	}

	if *output == "" {
		*output = paths.UniqueFilename("consolemix", "", "wav")
	}

	wav, err := wavwriter.New(env, *output, pl.SampleRate())
	if err != nil {
		return err
	}

	dig := digest.NewAudio()
	capture := func(segment []int16) {
		wav.Write(segment)
		dig.Write(segment)
	}

	halves := int(duration.Seconds() * float64(pl.SampleRate()) / float64(drv.Buffer().HalfFrames()))

	interrupted := false
	for halves > 0 && !interrupted {
		n := min(halves, recordBatch)
		drv.Pull(n, capture)
		halves -= n

		pl.Update()

		select {
		case <-sync.interrupt:
			interrupted = true
		default:
		}
	}

	if err := pl.Stop(); err != nil {
		return err
	}

	if err := wav.EndMixing(); err != nil {
		return err
	}

	logger.Logf(env, "record", "%v", pl.Stats())
	fmt.Fprintf(md.Output, "%d frames written to %s\n", wav.Frames(), wav.Filename())
	fmt.Fprintf(md.Output, "digest: %s\n", dig.Hash())

	return nil
}
