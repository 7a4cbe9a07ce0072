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

// Package sequencer plays music on a synthesizer chip by writing chip
// registers at scheduled times. A Sequence is a list of register writes, each
// with a delay measured from the previous write. The Player schedules each
// write with a future.Scheduler, so the music advances with the virtual time
// of the audio pipeline and can be paused and rescaled with it.
//
// Sequences can be built by hand or converted from a standard MIDI file with
// FromMIDI().
package sequencer
