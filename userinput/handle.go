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

import (
	"strings"
)

// HandleUserInput forwards the event to the handler. Returns true if the
// event is a request to quit. Keys with no meaning are ignored.
func HandleUserInput(ev Event, handle HandleInput) (bool, error) {
	var err error

	switch k := ev.Key; {
	case k == KeyEscape || k == KeyQuit:
		return true, nil

	case k == KeyPause:
		handle.ToggleMusic()

	case k >= '1' && k <= '8':
		err = handle.StartChannel(int(k - '1'))

	default:
		if ch := strings.IndexByte(stopKeys, k); ch != -1 {
			handle.StopChannel(ch)
		}
	}

	return false, err
}
