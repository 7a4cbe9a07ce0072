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

package synth

import (
	"github.com/consolemix/consolemix/hardware/future"
	"github.com/consolemix/consolemix/hardware/mixer"
)

// Generator is implemented by synthesizers. GenerateBlock should fill the
// entire slice with mono samples produced from the current register state.
// Samples are nominally in the range of a signed 16-bit value before gain is
// applied.
type Generator interface {
	GenerateBlock(out []int32)
}

// DefaultMaxTick is the largest number of samples generated in a single
// call to Contribute() unless another value is specified.
const DefaultMaxTick = 2048

// DefaultGain is applied to the output of the generator unless another value
// is specified.
const DefaultGain = 2

// Adapter drives a Generator from the audio pipeline.
type Adapter struct {
	ticker *future.Ticker
	gen    Generator

	sampleRate int
	gain       int32

	// scratch buffer for generated samples. allocated once and reused
	scratch []int32

	// remainder of the samples-to-microseconds conversion carried into the
	// next tick
	remainder uint64
}

// NewAdapter is the preferred method of initialisation for the Adapter type.
// The generator can be nil, in which case the ticker is still advanced but
// there is no audio contribution.
func NewAdapter(ticker *future.Ticker, gen Generator, sampleRate int, maxTick int, gain int) *Adapter {
	if maxTick < 1 {
		maxTick = DefaultMaxTick
	}
	return &Adapter{
		ticker:     ticker,
		gen:        gen,
		sampleRate: sampleRate,
		gain:       int32(gain),
		scratch:    make([]int32, maxTick),
	}
}

// SetGenerator changes the generator. A nil value removes the generator.
func (a *Adapter) SetGenerator(gen Generator) {
	a.gen = gen
}

// MaxTick returns the largest number of samples the adapter will generate in
// a single call to Contribute().
func (a *Adapter) MaxTick() int {
	return len(a.scratch)
}

// Reset forgets the fractional microseconds carried between ticks.
func (a *Adapter) Reset() {
	a.remainder = 0
}

// Elapsed converts a sample count to the number of whole microseconds it
// represents at the output sample rate. The fractional part is carried into
// the next call so that the virtual clock never drifts from the sample clock.
func (a *Adapter) Elapsed(samples int) uint64 {
	if a.sampleRate <= 0 || samples <= 0 {
		return 0
	}
	n := uint64(samples)*1_000_000 + a.remainder
	a.remainder = n % uint64(a.sampleRate)
	return n / uint64(a.sampleRate)
}

// Contribute advances the virtual clock by the duration of samples and adds
// the output of the generator to the first frames of the interleaved stereo
// buffer. The number of generated samples is limited by MaxTick() and by the
// length of the buffer.
func (a *Adapter) Contribute(buffer []int16, samples int) {
	if samples <= 0 {
		return
	}

	if a.ticker != nil {
		a.ticker.Advance(a.Elapsed(samples))
	}

	if a.gen == nil {
		return
	}

	n := min(samples, len(a.scratch), len(buffer)/2)
	if n <= 0 {
		return
	}

	out := a.scratch[:n]
	a.gen.GenerateBlock(out)

	for i, s := range out {
		v := int32(saturate(int64(s) * int64(a.gain)))
		mixer.AddSaturated(buffer, i*2, v)
		mixer.AddSaturated(buffer, i*2+1, v)
	}
}

func saturate(v int64) int16 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int16(v)
}
