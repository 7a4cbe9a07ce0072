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

// Package future conceptualises events that will happen at a later point on
// the virtual timeline of the audio pipeline. An event, in this context, is a
// payload function that must be called once the virtual clock reaches the
// event's deadline. For example, when the synthesizer programs one of its
// timers the expiry of that timer is an event in the future.
//
// The Queue type is the ordered collection of pending events. It has a fixed
// capacity chosen at construction time and never allocates after that.
// Events with the same deadline are kept in the order in which they were
// pushed.
//
// The Ticker type owns a Queue and the virtual clock. The clock is advanced
// with the Advance() function, which also runs the payload of every event
// that has become due. It is up to the users of the package to govern how
// often Advance() is called and by how much. In the audio pipeline it is
// called once per fill request with the duration of the requested samples.
//
// Time is measured in microseconds. The clock can be paused, in which case
// calls to Advance() still move the raw clock forward but the effective time,
// as seen by events, does not change and no payloads are run.
//
// To help keep code clean the Scheduler interface is provided. It exposes only
// the functions required to schedule events and is what the synthesizer
// packages are given.
package future
