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
	"os"

	"github.com/consolemix/consolemix/curated"
	"github.com/pkg/term"
	xterm "golang.org/x/term"
)

// IsInteractive returns true if standard input is a terminal.
func IsInteractive() bool {
	return xterm.IsTerminal(int(os.Stdin.Fd()))
}

// Keyboard reads key presses from the controlling terminal.
type Keyboard struct {
	tty *term.Term
}

// NewKeyboard opens the controlling terminal and puts it into cbreak mode.
// The terminal must be restored with Close().
func NewKeyboard() (*Keyboard, error) {
	tty, err := term.Open("/dev/tty", term.CBreakMode)
	if err != nil {
		return nil, curated.Errorf("userinput: %v", err)
	}
	return &Keyboard{tty: tty}, nil
}

// Close restores the terminal to the mode it was in before NewKeyboard().
func (kb *Keyboard) Close() error {
	if err := kb.tty.Restore(); err != nil {
		_ = kb.tty.Close()
		return curated.Errorf("userinput: %v", err)
	}
	return kb.tty.Close()
}

// Events sends key presses to the channel until the terminal is closed. The
// function blocks and is intended to be run in its own goroutine. The
// channel is closed when the function returns.
func (kb *Keyboard) Events(events chan<- Event) {
	defer close(events)

	b := make([]byte, 1)
	for {
		n, err := kb.tty.Read(b)
		if err != nil {
			return
		}
		if n == 1 {
			events <- Event{Key: b[0]}
		}
	}
}
