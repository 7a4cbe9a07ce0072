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

// Package pipeline is the composition root of the audio hardware. It owns
// the channel mixer, the virtual time scheduler and the synthesizer adapter
// and it services the fill requests of an output driver.
//
// Each fill request clears the segment of the transfer buffer, advances the
// scheduler by the duration of the segment (which runs any synthesizer
// timer events that have become due), adds the synthesizer output and then
// mixes the active sound effect channels on top.
//
// Fill requests arrive on the goroutine of the output driver. Everything
// else in the Pipeline API is called from the application goroutine and
// masks fill requests, using the Interrupts of the driver, for the duration
// of any change to the channel table or the scheduler queue. Code outside the
// package that needs to touch the scheduler (a synthesizer chip or a music
// sequencer for example) should do so from inside Critical().
package pipeline
