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

package userinput_test

import (
	"errors"
	"testing"

	"github.com/consolemix/consolemix/test"
	"github.com/consolemix/consolemix/userinput"
)

type handler struct {
	started []int
	stopped []int
	toggles int
	err     error
}

func (h *handler) StartChannel(channel int) error {
	h.started = append(h.started, channel)
	return h.err
}

func (h *handler) StopChannel(channel int) {
	h.stopped = append(h.stopped, channel)
}

func (h *handler) ToggleMusic() {
	h.toggles++
}

func press(t *testing.T, h *handler, keys string) bool {
	t.Helper()
	var quit bool
	for i := range len(keys) {
		q, _ := userinput.HandleUserInput(userinput.Event{Key: keys[i]}, h)
		quit = quit || q
	}
	return quit
}

func TestChannels(t *testing.T) {
	h := &handler{}

	test.ExpectFailure(t, press(t, h, "18qiz9"))
	test.ExpectEquality(t, len(h.started), 2)
	test.ExpectEquality(t, h.started[0], 0)
	test.ExpectEquality(t, h.started[1], 7)
	test.ExpectEquality(t, len(h.stopped), 2)
	test.ExpectEquality(t, h.stopped[0], 0)
	test.ExpectEquality(t, h.stopped[1], 7)
}

func TestMusicAndQuit(t *testing.T) {
	h := &handler{}

	test.ExpectFailure(t, press(t, h, "pp"))
	test.ExpectEquality(t, h.toggles, 2)

	test.ExpectSuccess(t, press(t, h, "x"))
	test.ExpectSuccess(t, press(t, h, "\x1b"))
}

func TestError(t *testing.T) {
	h := &handler{err: errors.New("no sound")}
	_, err := userinput.HandleUserInput(userinput.Event{Key: '3'}, h)
	test.ExpectFailure(t, err)
}
