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
	"os"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/consolemix/consolemix/environment"
	"github.com/consolemix/consolemix/hardware/dma"
	"github.com/consolemix/consolemix/hardware/pipeline"
	"github.com/consolemix/consolemix/hardware/preferences"
	"github.com/consolemix/consolemix/modalflag"
	"github.com/consolemix/consolemix/resources/sounds"
	"github.com/consolemix/consolemix/version"
)

// label of the environment used by INFO mode. the pipeline is never started
const infoLabel = environment.Label("info")

func info(md *modalflag.Modes, prefs *preferences.Preferences) error {
	md.NewMode()

	soundDir := md.AddString("sounds", "", "list the sound effects in the directory")
	dot := md.AddString("memviz", "", "write a graphviz dot file of the pipeline structure")
	withMusic := md.AddBool("music", false, "attach the square wave chip before writing the dot file")
	save := md.AddBool("save", false, "save the preferences file")

	md.AdditionalHelp("the dot file can be viewed with: dot -Tsvg pipeline.dot > pipeline.svg")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	v := version.Version()
	fmt.Fprintf(md.Output, "%v built with %s\n", v, v.GoVersion)

	fmt.Fprintln(md.Output, "preferences:")
	for _, l := range strings.Split(strings.TrimSpace(prefs.String()), "\n") {
		fmt.Fprintf(md.Output, "  %s\n", l)
	}
	fmt.Fprintf(md.Output, "sound formats: %s\n", strings.Join(sounds.Extensions, " "))

	if *save {
		if err := prefs.Save(); err != nil {
			return err
		}
	}

	env, err := environment.NewEnvironment(infoLabel, prefs)
	if err != nil {
		return err
	}

	cache, err := newSounds(env, *soundDir)
	if err != nil {
		return err
	}
	if *soundDir != "" {
		fmt.Fprintf(md.Output, "%d sounds in %s:\n", cache.Len(), *soundDir)
		for _, id := range cache.List() {
			snd, _ := cache.Lookup(id)
			fmt.Fprintf(md.Output, "  %v\n", snd)
		}
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

	if *withMusic {
		if _, err := attachMusic(pl, prefs, "", false); err != nil {
			return err
		}
	}

	fmt.Fprintf(md.Output, "pipeline: %v\n", pl)
	fmt.Fprintf(md.Output, "buffer: %d frames per half (%d bytes)\n", drv.Buffer().HalfFrames(), drv.Buffer().HalfBytes())
	fmt.Fprintf(md.Output, "stats: %v\n", pl.Stats())

	if *dot != "" {
		f, err := os.Create(*dot)
		if err != nil {
			return err
		}
		memviz.Map(f, pl)
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Fprintf(md.Output, "structure written to %s\n", *dot)
	}

	return nil
}
