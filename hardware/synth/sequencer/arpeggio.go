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

package sequencer

// Arpeggio returns a looping sequence that plays each key in turn on the
// first voice of the chip. Each note lasts for the given number of
// microseconds. Used when no music file is supplied and by the performance
// check.
func Arpeggio(name string, keys []int, noteLength uint64) *Sequence {
	b := builder{
		seq: &Sequence{Name: name, Loop: true},
	}
	for v := range b.voices {
		b.voices[v].key = -1
	}

	for i, k := range keys {
		if i > 0 {
			b.noteOff(keys[i-1])
		}
		b.noteOn(k, 100)
		b.delay = noteLength
	}

	// the delay of the first step is the length of the last note when the
	// sequence loops
	if len(b.seq.Steps) > 0 {
		b.seq.Steps[0].Delay = noteLength
	}

	return b.seq
}
