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

// Package sdlaudio is an output driver for the audio pipeline using SDL.
//
// SDL audio is queued. The driver keeps the queue topped up from a
// goroutine, which is the goroutine that services fill requests. Each fill
// request produces one half of the transfer buffer and the half is queued
// as soon as it has been filled.
package sdlaudio

import (
	"fmt"
	"sync"
	"time"

	"github.com/consolemix/consolemix/curated"
	"github.com/consolemix/consolemix/hardware/dma"
	"github.com/veandco/go-sdl2/sdl"
)

// how often the queue is checked. the SDL queue is topped up to the
// latency value on every check
const pollPeriod = 2 * time.Millisecond

// the amount of audio kept in the SDL queue. longer values are safer but
// sound effects start later
const latency = 20 * time.Millisecond

// Audio outputs sound using SDL.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	buf *dma.Buffer

	// size of the SDL queue in bytes that we try to maintain
	target uint32

	// the next half of the transfer buffer to fill
	next int

	crit sync.Mutex
	quit chan bool
	done chan bool
}

// NewAudio is the preferred method of initialisation for the Audio Type. The
// SDL audio subsystem is initialised if necessary.
func NewAudio(sampleRate int, halfFrames int) (*Audio, error) {
	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}

	aud := &Audio{
		buf: dma.NewBuffer(halfFrames, nil),
	}

	spec := &sdl.AudioSpec{
		Freq:     int32(sampleRate),
		Format:   sdl.AUDIO_S16LSB,
		Channels: dma.Channels,
		Samples:  uint16(aud.buf.HalfFrames() * 2),
	}

	var err error
	aud.id, err = sdl.OpenAudioDevice("", false, spec, &aud.spec, 0)
	if err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}

	bytesPerSecond := float64(aud.spec.Freq) * dma.Channels * 2
	aud.target = uint32(bytesPerSecond * latency.Seconds())

	return aud, nil
}

func (aud *Audio) String() string {
	return fmt.Sprintf("sdl audio (%dHz)", aud.spec.Freq)
}

// Start implements the pipeline.Driver interface.
func (aud *Audio) Start(filler dma.Filler) error {
	aud.crit.Lock()
	defer aud.crit.Unlock()

	if aud.quit != nil {
		return curated.Errorf("sdlaudio: already started")
	}

	aud.buf.SetFiller(filler)
	aud.next = 0
	aud.quit = make(chan bool)
	aud.done = make(chan bool)

	go aud.service(aud.quit, aud.done)

	sdl.PauseAudioDevice(aud.id, false)

	return nil
}

func (aud *Audio) service(quit chan bool, done chan bool) {
	defer close(done)

	tck := time.NewTicker(pollPeriod)
	defer tck.Stop()

	for {
		select {
		case <-quit:
			return
		case <-tck.C:
		}

		for sdl.GetQueuedAudioSize(aud.id) < aud.target {
			if aud.next == 0 {
				aud.buf.HalfTransferComplete()
			} else {
				aud.buf.TransferComplete()
			}

			// an error here means the device has gone away. there is nothing
			// useful to do about it on this goroutine
			if err := sdl.QueueAudio(aud.id, aud.buf.HalfRaw(aud.next)); err != nil {
				break
			}

			aud.next ^= 1
		}
	}
}

// Stop implements the pipeline.Driver interface.
func (aud *Audio) Stop() error {
	aud.crit.Lock()
	defer aud.crit.Unlock()

	if aud.quit == nil {
		return nil
	}

	close(aud.quit)
	<-aud.done
	aud.quit = nil

	sdl.PauseAudioDevice(aud.id, true)
	sdl.ClearQueuedAudio(aud.id)
	aud.buf.SetFiller(nil)

	return nil
}

// Interrupts implements the pipeline.Driver interface.
func (aud *Audio) Interrupts() dma.Interrupts {
	return aud.buf
}

// Close the audio device. The driver cannot be used after it is closed.
func (aud *Audio) Close() {
	_ = aud.Stop()
	sdl.CloseAudioDevice(aud.id)
	sdl.QuitSubSystem(sdl.INIT_AUDIO)
}
