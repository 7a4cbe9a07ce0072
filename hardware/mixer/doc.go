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

// Package mixer implements the sound effect channels of the audio pipeline.
//
// There is a fixed number of channels, identified by their slot index. Each
// channel plays 8-bit unsigned PCM data at its own sample rate. The data is
// resampled to the output rate with a 16.16 fixed-point step, scaled by the
// channel volume and split between the left and right outputs according to
// the channel's pan value. Contributions are added into an existing stereo
// buffer with saturation.
//
// The sample data of a channel is borrowed. The mixer never copies or frees
// it and relies on the owner of the data (the sound cache) keeping it valid
// for as long as the channel refers to it.
//
// Nothing in this package allocates once the Mixer has been created.
package mixer
