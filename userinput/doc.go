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

// Package userinput handles keyboard input in the interactive PLAY mode. It
// is a translation layer between key presses and the game logic API of the
// audio pipeline.
//
// Keys:
//
//	1 to 8        start the sound bound to channel 0 to 7
//	q w e r t y u i  stop channel 0 to 7
//	p             pause or resume the music
//	Esc or x      quit
//
// Key presses are read from the terminal in cbreak mode, so keys take effect
// without the need to press return.
package userinput
