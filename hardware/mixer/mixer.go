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

import (
	"strings"

	"github.com/consolemix/consolemix/curated"
)

// Sentinal error patterns returned by the mixer package.
const (
	InvalidSlot   = "mixer: invalid channel slot (%d)"
	InvalidRate   = "mixer: invalid sample rates (source %d, target %d)"
	InvalidLength = "mixer: invalid sample length (%d with %d bytes of data)"
	InvalidVolume = "mixer: volume out of range (%d)"
	InvalidPan    = "mixer: pan out of range (%d)"
)

// Mixer is the table of sound effect channels.
type Mixer struct {
	channels [NumChannels]Channel
}

// NewMixer is the preferred method of initialisation for the Mixer type. All
// channels are inactive.
func NewMixer() *Mixer {
	return &Mixer{}
}

func (mx *Mixer) String() string {
	s := strings.Builder{}
	for i := range mx.channels {
		if mx.channels[i].active {
			s.WriteString(mx.channels[i].String())
		} else {
			s.WriteString("-")
		}
		if i < len(mx.channels)-1 {
			s.WriteString(" | ")
		}
	}
	return s.String()
}

func validSlot(slot int) bool {
	return slot >= 0 && slot < NumChannels
}

// Start playing sample data on the channel in the specified slot. Any sound
// already playing in the slot is replaced. The length argument is the number
// of samples to play and must not be more than the length of the data.
//
// Returns the slot number on success.
func (mx *Mixer) Start(slot int, data []uint8, length int, sourceRate int, targetRate int, volume int, pan int) (int, error) {
	if !validSlot(slot) {
		return -1, curated.Errorf(InvalidSlot, slot)
	}
	if sourceRate <= 0 || targetRate <= 0 {
		return -1, curated.Errorf(InvalidRate, sourceRate, targetRate)
	}

	// a step of zero would never reach the end of the data
	step := (uint64(sourceRate) << fracBits) / uint64(targetRate)
	if step == 0 {
		return -1, curated.Errorf(InvalidRate, sourceRate, targetRate)
	}
	if length < 0 || length > len(data) {
		return -1, curated.Errorf(InvalidLength, length, len(data))
	}
	if volume < 0 || volume > MaxVolume {
		return -1, curated.Errorf(InvalidVolume, volume)
	}
	if pan < 0 || pan > MaxPan {
		return -1, curated.Errorf(InvalidPan, pan)
	}

	mx.channels[slot] = Channel{
		data:     data,
		length:   length,
		position: 0,
		step:     step,
		volume:   volume,
		pan:      pan,
		active:   true,
	}

	return slot, nil
}

// Stop the channel in the specified slot. Stopping an inactive channel or an
// invalid slot has no effect.
func (mx *Mixer) Stop(slot int) {
	if !validSlot(slot) {
		return
	}
	mx.channels[slot].active = false
}

// StopAll stops every channel.
func (mx *Mixer) StopAll() {
	for i := range mx.channels {
		mx.channels[i].active = false
	}
}

// IsPlaying returns true if the channel in the specified slot is active.
// Invalid slots are never playing.
func (mx *Mixer) IsPlaying(slot int) bool {
	if !validSlot(slot) {
		return false
	}
	return mx.channels[slot].active
}

// SetParams changes the volume and pan of the channel in the specified slot
// without affecting playback position. Values outside the valid range are
// clamped. Invalid slots are ignored.
func (mx *Mixer) SetParams(slot int, volume int, pan int) {
	if !validSlot(slot) {
		return
	}
	mx.channels[slot].volume = max(0, min(volume, MaxVolume))
	mx.channels[slot].pan = max(0, min(pan, MaxPan))
}

// Channel returns a copy of the channel in the specified slot. The boolean
// is false for invalid slots.
func (mx *Mixer) Channel(slot int) (Channel, bool) {
	if !validSlot(slot) {
		return Channel{}, false
	}
	return mx.channels[slot], true
}

// Active returns the number of active channels.
func (mx *Mixer) Active() int {
	n := 0
	for i := range mx.channels {
		if mx.channels[i].active {
			n++
		}
	}
	return n
}

// MixInto adds the contribution of every active channel to the interleaved
// stereo buffer. The number of frames is limited by the length of the buffer.
// Channels that reach the end of their data during the call are deactivated.
func (mx *Mixer) MixInto(buffer []int16, frames int) {
	frames = min(frames, len(buffer)/2)
	if frames <= 0 {
		return
	}

	for i := range mx.channels {
		if mx.channels[i].active {
			mx.channels[i].mix(buffer, frames)
		}
	}
}
