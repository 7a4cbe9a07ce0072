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

// Package squarechip is a small synthesizer chip with two square wave voices
// and two programmable timers. It implements the synth.Generator and
// synth.RegisterWriter interfaces and so can be attached to the audio
// pipeline in place of an FM chip. The voices are band-limited with a blip
// buffer.
//
// Registers:
//
//	0x02        timer 1 count (period is (256 - count) * 80us)
//	0x03        timer 2 count (period is (256 - count) * 320us)
//	0x04        timer control
//	              bit 0: start timer 1
//	              bit 1: start timer 2
//	              bit 5: mask timer 2
//	              bit 6: mask timer 1
//	              bit 7: reset status flags (other bits ignored)
//	0x40 + n    voice n level (0 to 63)
//	0xa0 + n    voice n frequency low byte (Hz)
//	0xb0 + n    voice n frequency high byte (Hz)
//
// The status register sets bit 6 when timer 1 expires and bit 5 when timer 2
// expires. Bit 7 is set when either flag is set. Timers use the future
// package so expiry happens on the virtual timeline of the audio pipeline.
package squarechip
