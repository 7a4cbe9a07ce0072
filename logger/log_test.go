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

package logger_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/consolemix/consolemix/logger"
	"github.com/consolemix/consolemix/test"
)

func TestWriteAndTail(t *testing.T) {
	log := logger.NewLogger(100)

	var w strings.Builder
	log.Write(&w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "pipeline", "initialised")
	log.Log(logger.Allow, "sounds", "12 sounds loaded")

	w.Reset()
	log.Write(&w)
	test.ExpectEquality(t, w.String(), "pipeline: initialised\nsounds: 12 sounds loaded\n")

	tail := []struct {
		n        int
		expected string
	}{
		{n: 100, expected: "pipeline: initialised\nsounds: 12 sounds loaded\n"},
		{n: 1, expected: "sounds: 12 sounds loaded\n"},
		{n: 0, expected: ""},
	}
	for _, tl := range tail {
		w.Reset()
		log.Tail(&w, tl.n)
		test.ExpectEquality(t, w.String(), tl.expected, tl.n)
	}
}

// pipeline instance that only logs when it is the main instance
type instance struct {
	main bool
}

func (i instance) AllowLogging() bool {
	return i.main
}

func TestPermission(t *testing.T) {
	log := logger.NewLogger(10)

	var w strings.Builder
	log.Log(instance{main: false}, "performance", "started")
	log.Write(&w)
	test.ExpectEquality(t, w.String(), "")

	log.Logf(instance{main: true}, "pipeline", "started %s", "sdl")
	log.Write(&w)
	test.ExpectEquality(t, w.String(), "pipeline: started sdl\n")
}

func TestRepeatedEntries(t *testing.T) {
	log := logger.NewLogger(100)

	for range 3 {
		log.Log(logger.Allow, "pipeline", "1 scheduler events missed")
	}
	log.Log(logger.Allow, "pipeline", "stopped")

	var w strings.Builder
	log.Write(&w)
	test.ExpectEquality(t, w.String(), "pipeline: 1 scheduler events missed (repeat x3)\npipeline: stopped\n")
}

func TestMaximumEntries(t *testing.T) {
	log := logger.NewLogger(2)
	log.Log(logger.Allow, "a", "1")
	log.Log(logger.Allow, "b", "2")
	log.Log(logger.Allow, "c", "3")

	var w strings.Builder
	log.Write(&w)
	test.ExpectEquality(t, w.String(), "b: 2\nc: 3\n")

	log.Clear()
	w.Reset()
	log.Write(&w)
	test.ExpectEquality(t, w.String(), "")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(10)

	var w strings.Builder
	log.SetEcho(&w)
	log.Log(logger.Allow, "record", "multi\nline")
	test.ExpectEquality(t, w.String(), "record: multiline\n")

	log.SetEcho(nil)
	log.Log(logger.Allow, "record", "not echoed")
	test.ExpectEquality(t, w.String(), "record: multiline\n")
}

type state int

func (s state) String() string {
	return "running"
}

func TestDetailTypes(t *testing.T) {
	log := logger.NewLogger(100)

	log.Log(logger.Allow, "tag", errors.New("no output driver"))
	log.Log(logger.Allow, "tag", state(2))
	log.Log(logger.Allow, "tag", 44100)

	var w strings.Builder
	log.Write(&w)
	test.ExpectEquality(t, w.String(), "tag: no output driver\ntag: running\ntag: 44100\n")
}
