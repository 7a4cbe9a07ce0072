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

import (
	"encoding/binary"
	"sync"
	"sync/atomic"
)

// Default geometry of the transfer buffer.
const (
	DefaultSampleRate = 44100
	DefaultHalfFrames = 16
	Channels          = 2
)

// Filler is called to fill one half of the transfer buffer. The segment is
// interleaved stereo and is exactly frames*Channels samples long.
type Filler interface {
	OnFillRequest(segment []int16, frames int)
}

// Interrupts masks and unmasks fill requests.
type Interrupts interface {
	Disable()
	Enable()
}

// Buffer is the double buffered transfer area.
type Buffer struct {
	// held while a fill request is being serviced and while fill requests
	// are disabled
	crit sync.Mutex

	// goroutine servicing the current fill request. zero when no fill is in
	// progress
	filling atomic.Uint64

	// Disable() calls made by the filling goroutine. only accessed while
	// crit is held
	nested int

	filler     Filler
	halfFrames int

	samples []int16

	// samples encoded as little-endian bytes for Read()
	raw    []byte
	cursor int

	fills atomic.Int64
}

// NewBuffer is the preferred method of initialisation for the Buffer type.
// A halfFrames value of zero or less selects DefaultHalfFrames.
func NewBuffer(halfFrames int, filler Filler) *Buffer {
	if halfFrames <= 0 {
		halfFrames = DefaultHalfFrames
	}
	n := halfFrames * 2 * Channels
	return &Buffer{
		filler:     filler,
		halfFrames: halfFrames,
		samples:    make([]int16, n),
		raw:        make([]byte, n*2),
	}
}

// SetFiller changes the filler. A nil filler produces silence.
func (b *Buffer) SetFiller(filler Filler) {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.filler = filler
}

// HalfFrames returns the number of stereo frames in each half of the buffer.
func (b *Buffer) HalfFrames() int {
	return b.halfFrames
}

// HalfBytes returns the size in bytes of each half of the buffer.
func (b *Buffer) HalfBytes() int {
	return len(b.raw) / 2
}

// Half returns the samples of the first (0) or second (1) half of the
// buffer. The returned slice is overwritten by the next fill request for
// that half.
func (b *Buffer) Half(half int) []int16 {
	n := b.halfFrames * Channels
	return b.samples[half*n : (half+1)*n]
}

// HalfRaw returns the bytes of the first (0) or second (1) half of the
// buffer. The returned slice is overwritten by the next fill request for
// that half.
func (b *Buffer) HalfRaw(half int) []byte {
	n := b.HalfBytes()
	return b.raw[half*n : (half+1)*n]
}

// Fills returns the number of fill requests serviced.
func (b *Buffer) Fills() int {
	return int(b.fills.Load())
}

// Disable implements the Interrupts interface. Calls to Disable() from
// other goroutines do not nest.
//
// Fill requests are already masked for the goroutine servicing a fill
// request, so the call returns immediately. Event payloads run during a
// fill request are free to call code that masks fill requests.
func (b *Buffer) Disable() {
	if id := b.filling.Load(); id != 0 && id == goroutineID() {
		b.nested++
		return
	}
	b.crit.Lock()
}

// Enable implements the Interrupts interface.
func (b *Buffer) Enable() {
	if b.nested > 0 {
		b.nested--
		return
	}
	b.crit.Unlock()
}

// HalfTransferComplete is called when the first half of the buffer has been
// played. The first half is refilled.
func (b *Buffer) HalfTransferComplete() {
	b.fill(0)
}

// TransferComplete is called when the second half of the buffer has been
// played. The second half is refilled.
func (b *Buffer) TransferComplete() {
	b.fill(1)
}

func (b *Buffer) fill(half int) {
	b.crit.Lock()
	defer b.crit.Unlock()

	b.filling.Store(goroutineID())
	defer func() {
		b.filling.Store(0)
		b.nested = 0
	}()

	seg := b.Half(half)
	if b.filler == nil {
		clear(seg)
	} else {
		b.filler.OnFillRequest(seg, b.halfFrames)
	}

	raw := b.HalfRaw(half)
	for i, s := range seg {
		binary.LittleEndian.PutUint16(raw[i*2:], uint16(s))
	}

	b.fills.Add(1)
}

// Read implements the io.Reader interface. The buffer is read as a
// continuous stream of little-endian 16-bit samples. The transfer events are
// raised as the read position passes the middle and the end of the buffer.
// Read never returns an error.
func (b *Buffer) Read(p []byte) (int, error) {
	half := b.HalfBytes()

	var n int
	for n < len(p) {
		end := half
		if b.cursor >= half {
			end = len(b.raw)
		}

		c := copy(p[n:], b.raw[b.cursor:end])
		n += c
		b.cursor += c

		if b.cursor == half {
			b.HalfTransferComplete()
		} else if b.cursor == len(b.raw) {
			b.cursor = 0
			b.TransferComplete()
		}
	}

	return n, nil
}
