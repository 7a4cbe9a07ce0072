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

// Package synth connects a music synthesizer to the audio pipeline.
//
// The synthesizer itself is not part of this package. It is represented by
// the Generator interface, which produces blocks of mono samples from the
// current state of the synthesizer's registers.
//
// The Adapter type keeps the virtual clock of a future.Ticker in step with
// the audio produced by the pipeline. On every fill request the clock is
// advanced by the duration of the requested samples, which runs any
// synthesizer events (timer expiry, note changes) that have become due,
// before the synthesizer is asked for the samples themselves. The mono output
// is added to both channels of the stereo buffer.
//
// The Port type emulates the register interface of an FM synthesizer chip:
// an address latch, a data port and a status register. Music drivers written
// for the real chip use the status register to detect the chip and its
// timers. The emulation returns what those drivers expect to see.
package synth
