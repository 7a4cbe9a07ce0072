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

package userinput

// HandleInput conceptualises the game logic that key presses are forwarded
// to.
type HandleInput interface {
	// StartChannel plays the sound bound to the channel.
	StartChannel(channel int) error

	// StopChannel stops the sound playing on the channel.
	StopChannel(channel int)

	// ToggleMusic pauses or resumes the music.
	ToggleMusic()
}

// Event is a single key press.
type Event struct {
	Key byte
}

// Keys used for control.
const (
	KeyEscape = 0x1b
	KeyQuit   = 'x'
	KeyPause  = 'p'
)

// the keys that stop each channel, in channel order
const stopKeys = "qwertyui"
