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

package pipeline

import (
	"fmt"
	"sync/atomic"

	"github.com/consolemix/consolemix/curated"
	"github.com/consolemix/consolemix/environment"
	"github.com/consolemix/consolemix/hardware/dma"
	"github.com/consolemix/consolemix/hardware/future"
	"github.com/consolemix/consolemix/hardware/mixer"
	"github.com/consolemix/consolemix/hardware/synth"
	"github.com/consolemix/consolemix/logger"
	"github.com/consolemix/consolemix/resources/sounds"
)

const logTag = "pipeline"

// Sentinal error patterns.
const (
	InvalidState = "pipeline: cannot %s when %s"
	NoDriver     = "pipeline: no output driver"
	SoundError   = "pipeline: %v"
)

// State of the Pipeline.
type State int32

// List of valid State values.
const (
	Uninitialized State = iota
	Ready
	Running
	Stopped
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// Driver is implemented by output drivers. Once started, the driver calls
// OnFillRequest() of the filler for each half of its transfer buffer.
type Driver interface {
	Start(filler dma.Filler) error
	Stop() error
	Interrupts() dma.Interrupts
}

// Library is the source of sound effects.
type Library interface {
	Lookup(id string) (*sounds.Sound, error)
}

// Stats is a snapshot of the pipeline counters.
type Stats struct {
	State State

	// number of fill requests serviced and the number of frames produced
	Fills  uint64
	Frames uint64

	// fill requests refused because of a zero or negative frame count
	Rejected uint64

	// scheduler events dropped because the event queue was full. reported
	// by Update()
	Missed int

	// effective time of the scheduler in microseconds
	VirtualTime uint64

	// number of channels playing a sound
	Active int
}

func (s Stats) String() string {
	return fmt.Sprintf("%s: %d fills, %d frames, %d rejected, %d missed, %dus, %d active",
		s.State, s.Fills, s.Frames, s.Rejected, s.Missed, s.VirtualTime, s.Active)
}

// Pipeline is the audio pipeline.
type Pipeline struct {
	env     *environment.Environment
	driver  Driver
	library Library

	state atomic.Int32

	sampleRate int
	ticker     *future.Ticker
	mixer      *mixer.Mixer
	adapter    *synth.Adapter

	// written by the fill goroutine
	fills    atomic.Uint64
	frames   atomic.Uint64
	rejected atomic.Uint64

	// written by the application goroutine
	missed int
}

// NewPipeline is the preferred method of initialisation for the Pipeline
// type. The geometry of the pipeline is taken from the preferences in the
// environment. The pipeline is created in the Uninitialized state.
func NewPipeline(env *environment.Environment, driver Driver, library Library) (*Pipeline, error) {
	if driver == nil {
		return nil, curated.Errorf(NoDriver)
	}

	p := &Pipeline{
		env:        env,
		driver:     driver,
		library:    library,
		sampleRate: env.Prefs.SampleRate.Get().(int),
		mixer:      mixer.NewMixer(),
	}

	p.ticker = future.NewTicker(string(env.Label), env.Prefs.QueueCapacity.Get().(int))
	p.adapter = synth.NewAdapter(p.ticker, nil,
		p.sampleRate,
		env.Prefs.MaxTick.Get().(int),
		env.Prefs.SynthGain.Get().(int))

	return p, nil
}

func (p *Pipeline) String() string {
	return fmt.Sprintf("%s @ %dHz", p.State(), p.sampleRate)
}

// State returns the current state of the pipeline.
func (p *Pipeline) State() State {
	return State(p.state.Load())
}

// SampleRate returns the output sample rate.
func (p *Pipeline) SampleRate() int {
	return p.sampleRate
}

// Scheduler returns the scheduler used by the synthesizer. Calls to the
// scheduler from the application goroutine should be made inside
// Critical().
func (p *Pipeline) Scheduler() future.Scheduler {
	return p.ticker
}

// AttachSynth sets the synthesizer that contributes to every fill request.
// A nil value detaches the synthesizer.
func (p *Pipeline) AttachSynth(gen synth.Generator) {
	p.Critical(func() {
		p.adapter.SetGenerator(gen)
	})
}

// Critical runs the function with fill requests masked.
func (p *Pipeline) Critical(f func()) {
	ints := p.driver.Interrupts()
	ints.Disable()
	defer ints.Enable()
	f()
}

// Initialize clears the channel table and starts the scheduler with an
// empty event queue. Valid in the Uninitialized and Stopped states.
func (p *Pipeline) Initialize() error {
	switch s := p.State(); s {
	case Uninitialized, Stopped:
	default:
		return curated.Errorf(InvalidState, "initialize", s)
	}

	p.Critical(func() {
		p.mixer.StopAll()
		p.ticker.Start()
		p.adapter.Reset()
	})

	p.state.Store(int32(Ready))
	logger.Logf(p.env, logTag, "initialised: %dHz, %d frames per half buffer", p.sampleRate, p.env.Prefs.HalfBuffer.Get().(int))

	return nil
}

// Start the output driver. Fill requests produce sound from this point.
func (p *Pipeline) Start() error {
	if s := p.State(); s != Ready {
		return curated.Errorf(InvalidState, "start", s)
	}

	// the state must be Running before the first fill request arrives
	p.state.Store(int32(Running))
	if err := p.driver.Start(p); err != nil {
		p.state.Store(int32(Ready))
		return curated.Errorf(SoundError, err)
	}

	logger.Logf(p.env, logTag, "started %v", p.driver)

	return nil
}

// Stop the output driver. All channels are stopped and all pending
// scheduler events are discarded.
func (p *Pipeline) Stop() error {
	if s := p.State(); s != Running {
		return curated.Errorf(InvalidState, "stop", s)
	}

	p.state.Store(int32(Stopped))
	err := p.driver.Stop()

	p.Critical(func() {
		p.mixer.StopAll()
		p.ticker.Stop()
	})

	logger.Log(p.env, logTag, "stopped")

	if err != nil {
		return curated.Errorf(SoundError, err)
	}
	return nil
}

// Shutdown stops the pipeline if it is running and releases the scheduler.
// The pipeline can be initialised again after shutdown.
func (p *Pipeline) Shutdown() error {
	if p.State() == Running {
		if err := p.Stop(); err != nil {
			return err
		}
	}

	p.Critical(func() {
		p.mixer.StopAll()
		p.ticker.Stop()
	})

	p.Update()
	p.state.Store(int32(Stopped))

	return nil
}
