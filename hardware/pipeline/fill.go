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

// OnFillRequest implements the dma.Filler interface. It is called by the
// output driver for each half of its transfer buffer.
//
// The segment is cleared and, if the pipeline is running, the synthesizer
// and the sound effect channels are mixed into it. A request for zero or
// fewer frames is refused and the segment is left untouched.
func (p *Pipeline) OnFillRequest(segment []int16, frames int) {
	if frames <= 0 {
		p.rejected.Add(1)
		return
	}

	clear(segment)

	if State(p.state.Load()) != Running {
		return
	}

	frames = min(frames, len(segment)/2)

	p.adapter.Contribute(segment, frames)
	p.mixer.MixInto(segment, frames)

	p.fills.Add(1)
	p.frames.Add(uint64(frames))
}
