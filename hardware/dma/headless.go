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

package dma

// Headless is a driver with no output device. Fill requests are made when
// the program asks for them, which makes it suitable for recording, for
// performance measurement and for tests.
type Headless struct {
	buf     *Buffer
	started bool

	// the next half to be filled
	next int
}

// NewHeadless is the preferred method of initialisation for the Headless type.
func NewHeadless(halfFrames int) *Headless {
	return &Headless{
		buf: NewBuffer(halfFrames, nil),
	}
}

func (h *Headless) String() string {
	return "headless"
}

// Start attaches the filler. Fill requests are made by calls to Pull().
func (h *Headless) Start(filler Filler) error {
	h.buf.SetFiller(filler)
	h.started = true
	h.next = 0
	return nil
}

// Stop detaches the filler.
func (h *Headless) Stop() error {
	h.buf.SetFiller(nil)
	h.started = false
	return nil
}

// Interrupts returns the mask for fill requests.
func (h *Headless) Interrupts() Interrupts {
	return h.buf
}

// Buffer returns the underlying transfer buffer.
func (h *Headless) Buffer() *Buffer {
	return h.buf
}

// Pull makes fill requests for the given number of halves, alternating
// between the two halves of the buffer. The function f is called with the
// contents of each half after it has been filled. The function can be nil.
//
// Pull does nothing if the driver has not been started.
func (h *Headless) Pull(halves int, f func(segment []int16)) {
	if !h.started {
		return
	}

	for i := 0; i < halves; i++ {
		if h.next == 0 {
			h.buf.HalfTransferComplete()
		} else {
			h.buf.TransferComplete()
		}
		if f != nil {
			f(h.buf.Half(h.next))
		}
		h.next ^= 1
	}
}
