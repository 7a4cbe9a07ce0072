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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/consolemix/consolemix/curated"
	"github.com/consolemix/consolemix/environment"
	"github.com/consolemix/consolemix/hardware/dma"
	"github.com/consolemix/consolemix/hardware/pipeline"
	"github.com/consolemix/consolemix/hardware/preferences"
	"github.com/consolemix/consolemix/hardware/synth/sequencer"
	"github.com/consolemix/consolemix/hardware/synth/squarechip"
	"github.com/consolemix/consolemix/performance/limiter"
)

// Label of the environment used by Check(). The pipeline created by Check()
// does not log.
const Label = environment.Label("performance")

// CheckError is the sentinal error pattern for Check().
const CheckError = "performance: %v"

// how often, in fill requests, the application side of the check runs
const updateRate = 64

// Options for Check().
type Options struct {
	Duration time.Duration

	// request fills at the rate of a real output device rather than as
	// quickly as possible
	Paced bool

	// play a looping sequence on the square wave chip
	Music bool

	// sound effects played on channels 0 upwards. an effect is restarted
	// when it ends
	Effects []string
}

// Results of Check().
type Results struct {
	Fills  int
	Frames int

	// time spent inside fill requests
	Busy    time.Duration
	Elapsed time.Duration

	// time available to fill one half of the buffer and the number of fills
	// that took longer
	Deadline time.Duration
	Overruns int

	Worst time.Duration
}

// Mean returns the average time taken by a fill request.
func (r Results) Mean() time.Duration {
	if r.Fills == 0 {
		return 0
	}
	return r.Busy / time.Duration(r.Fills)
}

// Load returns the time spent filling as a percentage of the time available.
func (r Results) Load() float64 {
	if r.Fills == 0 || r.Deadline == 0 {
		return 0
	}
	return 100 * float64(r.Busy) / float64(r.Deadline*time.Duration(r.Fills))
}

func (r Results) String() string {
	return fmt.Sprintf("%d fills (%d frames) in %.2f seconds: mean %v, worst %v, deadline %v, %d overruns, %.2f%% load",
		r.Fills, r.Frames, r.Elapsed.Seconds(), r.Mean(), r.Worst, r.Deadline, r.Overruns, r.Load())
}

// Check runs a pipeline with a headless driver for the duration given in
// the options. The results are written to output as well as being returned.
//
// The library can be nil if there are no effects in the options.
func Check(output io.Writer, profile Profile, prefs *preferences.Preferences, library pipeline.Library, opts Options) (Results, error) {
	var res Results

	env, err := environment.NewEnvironment(Label, prefs)
	if err != nil {
		return res, curated.Errorf(CheckError, err)
	}

	halfFrames := prefs.HalfBuffer.Get().(int)
	drv := dma.NewHeadless(halfFrames)

	p, err := pipeline.NewPipeline(env, drv, library)
	if err != nil {
		return res, curated.Errorf(CheckError, err)
	}

	if err := p.Initialize(); err != nil {
		return res, curated.Errorf(CheckError, err)
	}
	defer p.Shutdown()

	if opts.Music {
		chip := squarechip.NewChip(p.Scheduler(), p.SampleRate(), prefs.MaxTick.Get().(int))
		p.AttachSynth(chip)

		player := sequencer.NewPlayer(p.Scheduler(), chip)
		p.Critical(func() {
			err = player.Play(sequencer.Arpeggio("performance", []int{60, 64, 67, 72}, 125000))
		})
		if err != nil {
			return res, curated.Errorf(CheckError, err)
		}
	}

	if err := p.Start(); err != nil {
		return res, curated.Errorf(CheckError, err)
	}

	effects := func() error {
		for ch, id := range opts.Effects {
			if id != "" && !p.IsSoundPlaying(ch) {
				if _, err := p.StartSound(ch, id, 127, 128); err != nil {
					return err
				}
			}
		}
		return nil
	}

	res.Deadline = time.Duration(float64(time.Second) * float64(halfFrames) / float64(p.SampleRate()))

	runner := func() error {
		if err := effects(); err != nil {
			return err
		}

		var lim *limiter.Limiter
		if opts.Paced {
			lim = limiter.NewLimiter(float64(time.Second) / float64(res.Deadline))
			defer lim.Close()
		}

		start := time.Now()
		for time.Since(start) < opts.Duration {
			if lim != nil {
				lim.Wait()
			}

			t := time.Now()
			drv.Pull(1, nil)
			d := time.Since(t)

			res.Fills++
			res.Busy += d
			if d > res.Worst {
				res.Worst = d
			}
			if d > res.Deadline {
				res.Overruns++
			}

			if res.Fills%updateRate == 0 {
				p.Update()
				if err := effects(); err != nil {
					return err
				}
			}
		}
		res.Elapsed = time.Since(start)

		return nil
	}

	if err := RunProfiler(profile, string(Label), runner); err != nil {
		return res, curated.Errorf(CheckError, err)
	}

	res.Frames = res.Fills * halfFrames

	fmt.Fprintln(output, res.String())

	return res, nil
}
