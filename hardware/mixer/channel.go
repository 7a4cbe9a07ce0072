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

package mixer

import "fmt"

// NumChannels is the number of sound effect channels.
const NumChannels = 8

// Limits for the volume and pan values of a channel.
const (
	MaxVolume = 127
	MaxPan    = 255

	// CentrePan splits a channel (approximately) equally between the left
	// and right outputs
	CentrePan = 128
)

// the number of fractional bits in the position and step values
const fracBits = 16

// Channel is a single sound effect voice.
type Channel struct {
	// borrowed view of the sample data
	data   []uint8
	length int

	// 16.16 fixed point read cursor and playback rate ratio
	position uint64
	step     uint64

	volume int
	pan    int

	active bool
}

func (ch Channel) String() string {
	if !ch.active {
		return "inactive"
	}
	return fmt.Sprintf("%d/%d vol=%d pan=%d", ch.position>>fracBits, ch.length, ch.volume, ch.pan)
}

// Active returns true if the channel is currently playing.
func (ch Channel) Active() bool {
	return ch.active
}

// Position returns the 16.16 fixed point read cursor.
func (ch Channel) Position() uint64 {
	return ch.position
}

// Step returns the 16.16 fixed point playback rate ratio.
func (ch Channel) Step() uint64 {
	return ch.step
}

// Length returns the number of samples in the channel's sample data.
func (ch Channel) Length() int {
	return ch.length
}

// Volume returns the channel volume (0 to MaxVolume).
func (ch Channel) Volume() int {
	return ch.volume
}

// Pan returns the channel's stereo position (0 to MaxPan).
func (ch Channel) Pan() int {
	return ch.pan
}

// mix adds the channel's contribution to the first frames of an interleaved
// stereo buffer.
func (ch *Channel) mix(buffer []int16, frames int) {
	leftGain := int32(MaxPan - ch.pan)
	rightGain := int32(ch.pan)
	volume := int32(ch.volume)

	for i := 0; i < frames; i++ {
		idx := ch.position >> fracBits
		if idx >= uint64(ch.length) {
			// no fade out. the sound is truncated at exactly this frame
			ch.active = false
			return
		}

		// 8-bit unsigned to 16-bit signed
		s := (int32(ch.data[idx]) - 128) << 8
		s = s * volume / MaxVolume

		buffer[i*2] = saturate(int32(buffer[i*2]) + s*leftGain/MaxPan)
		buffer[i*2+1] = saturate(int32(buffer[i*2+1]) + s*rightGain/MaxPan)

		ch.position += ch.step
	}
}

// saturate clamps v to the range of int16.
func saturate(v int32) int16 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int16(v)
}

// AddSaturated adds v to the buffer value at index i, clamping the result to
// the range of int16.
func AddSaturated(buffer []int16, i int, v int32) {
	buffer[i] = saturate(int32(buffer[i]) + v)
}
