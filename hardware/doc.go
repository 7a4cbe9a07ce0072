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

// Package hardware is the base package for the emulated audio hardware of
// the console. Its sub-packages contain everything required for a headless
// audio pipeline:
//
//	future      time scheduler and event queue
//	mixer       sound effect channels
//	synth       synthesizer adapter and chip port
//	dma         double buffered transfer to the output device
//	pipeline    the audio pipeline and its game logic API
//	preferences audio preferences
//
// The Pipeline type in the pipeline package is the root of the hardware and
// is where an output driver, a sound library and a synthesizer are brought
// together.
package hardware
