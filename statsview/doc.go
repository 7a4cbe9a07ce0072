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

// Package statsview runs a local HTTP server offering runtime statistics of
// the running program. It is useful for watching allocation and GC pressure
// while the audio pipeline is being driven.
//
// Underlying functionality is provided by github.com/go-echarts/statsview.
// Once launched, graphs are available at:
//
//	localhost:12600/debug/statsview
//
// and the standard pprof pages at:
//
//	localhost:12600/debug/pprof/
package statsview
