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

// Package logger is the central log for the program. Log entries are made
// with Log() or Logf() and are tagged, usually with the name of the package
// or component that created the entry.
//
// Every call must supply a Permission. Instances of the audio pipeline that
// are not the main instance (performance checks for example) implement
// Permission and refuse logging so that the log is not flooded with
// duplicate messages.
//
// Nothing in the audio fill path logs. Conditions that arise there (missed
// scheduler events for example) are counted and reported later from the
// application context.
package logger

import (
	"io"
)

// the central logger instance used by the package level functions
var central *Logger

const maxCentral = 256

func init() {
	central = NewLogger(maxCentral)
}

// Log adds an entry to the central logger.
func Log(perm Permission, tag string, detail any) {
	central.Log(perm, tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(perm Permission, tag string, detail string, args ...any) {
	central.Logf(perm, tag, detail, args...)
}

// Clear all entries from central logger.
func Clear() {
	central.Clear()
}

// Write contents of central logger to io.Writer.
func Write(output io.Writer) {
	central.Write(output)
}

// Tail writes the last N entries to io.Writer.
func Tail(output io.Writer, number int) {
	central.Tail(output, number)
}

// SetEcho prints entries to io.Writer as they are created. A nil writer
// turns echoing off.
func SetEcho(output io.Writer) {
	central.SetEcho(output)
}
