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

package dma_test

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/consolemix/consolemix/hardware/dma"
	"github.com/consolemix/consolemix/test"
)

// counter fills every sample of a segment with the number of the request
type counter struct {
	requests int
	frames   []int
}

func (c *counter) OnFillRequest(segment []int16, frames int) {
	c.requests++
	c.frames = append(c.frames, frames)
	for i := range segment {
		segment[i] = int16(c.requests)
	}
}

func TestHalves(t *testing.T) {
	c := &counter{}
	b := dma.NewBuffer(0, c)
	test.ExpectEquality(t, b.HalfFrames(), dma.DefaultHalfFrames)
	test.ExpectEquality(t, len(b.Half(0)), dma.DefaultHalfFrames*dma.Channels)
	test.ExpectEquality(t, b.HalfBytes(), dma.DefaultHalfFrames*dma.Channels*2)

	b.HalfTransferComplete()
	test.ExpectEquality(t, b.Half(0)[0], int16(1))
	test.ExpectEquality(t, b.Half(1)[0], int16(0))

	b.TransferComplete()
	test.ExpectEquality(t, b.Half(0)[0], int16(1))
	test.ExpectEquality(t, b.Half(1)[0], int16(2))

	test.ExpectEquality(t, b.Fills(), 2)
	for _, f := range c.frames {
		test.ExpectEquality(t, f, dma.DefaultHalfFrames)
	}

	// samples are also available as bytes
	raw := b.HalfRaw(1)
	test.ExpectEquality(t, int16(binary.LittleEndian.Uint16(raw)), int16(2))
}

func TestNilFiller(t *testing.T) {
	c := &counter{}
	b := dma.NewBuffer(4, c)
	b.HalfTransferComplete()
	test.ExpectEquality(t, b.Half(0)[0], int16(1))

	b.SetFiller(nil)
	b.HalfTransferComplete()
	for _, s := range b.Half(0) {
		test.ExpectEquality(t, s, int16(0))
	}
}

func TestRead(t *testing.T) {
	c := &counter{}
	b := dma.NewBuffer(4, c)

	// nothing has been filled so the first read is silent and raises the
	// half transfer event
	p := make([]byte, b.HalfBytes())
	n, err := b.Read(p)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, len(p))
	test.ExpectEquality(t, c.requests, 1)
	test.ExpectEquality(t, p[0], uint8(0))

	// reads that do not reach a boundary raise no event
	p = make([]byte, 6)
	_, _ = b.Read(p)
	test.ExpectEquality(t, c.requests, 1)

	// reaching the end of the buffer raises transfer complete and wraps.
	// the next bytes are the first half as filled by the first request
	p = make([]byte, b.HalfBytes()-6+2)
	_, _ = b.Read(p)
	test.ExpectEquality(t, c.requests, 2)
	test.ExpectEquality(t, int16(binary.LittleEndian.Uint16(p[len(p)-2:])), int16(1))

	// a read spanning the whole buffer raises both events
	p = make([]byte, b.HalfBytes()*2)
	_, _ = b.Read(p)
	test.ExpectEquality(t, c.requests, 4)
}

func TestDisable(t *testing.T) {
	c := &counter{}
	b := dma.NewBuffer(4, c)

	b.Disable()

	done := make(chan bool)
	go func() {
		b.HalfTransferComplete()
		done <- true
	}()

	select {
	case <-done:
		t.Fatalf("fill request was serviced while disabled")
	case <-time.After(20 * time.Millisecond):
	}
	test.ExpectEquality(t, b.Fills(), 0)

	b.Enable()
	<-done
	test.ExpectEquality(t, b.Fills(), 1)
}

// masking disables fill requests from inside a fill request
type masking struct {
	buf    *dma.Buffer
	masked int
}

func (m *masking) OnFillRequest(segment []int16, frames int) {
	m.buf.Disable()
	m.buf.Disable()
	m.masked++
	m.buf.Enable()
	m.buf.Enable()
}

func TestDisableDuringFill(t *testing.T) {
	m := &masking{}
	b := dma.NewBuffer(4, m)
	m.buf = b

	done := make(chan bool)
	go func() {
		b.HalfTransferComplete()
		b.TransferComplete()
		done <- true
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("fill request blocked on its own mask")
	}
	test.ExpectEquality(t, m.masked, 2)
	test.ExpectEquality(t, b.Fills(), 2)

	// masking from outside a fill request still excludes fill requests
	b.Disable()
	go func() {
		b.HalfTransferComplete()
		done <- true
	}()

	select {
	case <-done:
		t.Fatalf("fill request was serviced while disabled")
	case <-time.After(20 * time.Millisecond):
	}

	b.Enable()
	<-done
	test.ExpectEquality(t, m.masked, 3)
}

func TestHeadless(t *testing.T) {
	h := dma.NewHeadless(8)
	c := &counter{}

	// not started
	h.Pull(2, nil)
	test.ExpectEquality(t, c.requests, 0)

	test.DemandSuccess(t, h.Start(c))

	var firsts []int16
	h.Pull(3, func(segment []int16) {
		test.ExpectEquality(t, len(segment), 16)
		firsts = append(firsts, segment[0])
	})
	test.ExpectEquality(t, c.requests, 3)
	test.ExpectEquality(t, len(firsts), 3)
	test.ExpectEquality(t, firsts[2], int16(3))

	// the halves alternate
	test.ExpectEquality(t, h.Buffer().Half(0)[0], int16(3))
	test.ExpectEquality(t, h.Buffer().Half(1)[0], int16(2))

	test.DemandSuccess(t, h.Stop())
	h.Pull(1, nil)
	test.ExpectEquality(t, c.requests, 3)

	var _ dma.Interrupts = h.Interrupts()
}
