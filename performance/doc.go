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

// Package performance measures how long the audio pipeline takes to service
// fill requests.
//
// Check() runs a pipeline with a headless driver for a fixed duration and
// reports the time taken by each fill request against the deadline imposed
// by a real output device: a half buffer must be filled before the other
// half has finished playing. It will optionally generate profiling
// information.
//
// RunProfiler() can be used on its own to profile any function.
package performance
