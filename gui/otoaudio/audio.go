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

// Package otoaudio is an output driver for the audio pipeline using oto.
//
// Oto pulls audio from a player. The player reads from the transfer buffer
// and fill requests are made on the goroutine of the player as the read
// position passes each half of the buffer.
package otoaudio

import (
	"fmt"
	"sync"
	"time"

	"github.com/consolemix/consolemix/curated"
	"github.com/consolemix/consolemix/hardware/dma"
	"github.com/ebitengine/oto/v3"
)

// the size of the buffer used by oto itself
const bufferSize = 20 * time.Millisecond

// Audio outputs sound using oto.
type Audio struct {
	ctx        *oto.Context
	sampleRate int

	buf *dma.Buffer

	crit   sync.Mutex
	player *oto.Player
}

// NewAudio is the preferred method of initialisation for the Audio type.
// Only one oto context can exist in a program so NewAudio should only be
// called once.
func NewAudio(sampleRate int, halfFrames int) (*Audio, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: dma.Channels,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   bufferSize,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, curated.Errorf("otoaudio: %v", err)
	}
	<-ready

	return &Audio{
		ctx:        ctx,
		sampleRate: sampleRate,
		buf:        dma.NewBuffer(halfFrames, nil),
	}, nil
}

func (aud *Audio) String() string {
	return fmt.Sprintf("oto audio (%dHz)", aud.sampleRate)
}

// Start implements the pipeline.Driver interface.
func (aud *Audio) Start(filler dma.Filler) error {
	aud.crit.Lock()
	defer aud.crit.Unlock()

	if aud.player != nil {
		return curated.Errorf("otoaudio: already started")
	}

	aud.buf.SetFiller(filler)
	aud.player = aud.ctx.NewPlayer(aud.buf)
	aud.player.Play()

	return nil
}

// Stop implements the pipeline.Driver interface.
func (aud *Audio) Stop() error {
	aud.crit.Lock()
	defer aud.crit.Unlock()

	if aud.player == nil {
		return nil
	}

	aud.player.Pause()
	err := aud.player.Close()
	aud.player = nil
	aud.buf.SetFiller(nil)

	if err != nil {
		return curated.Errorf("otoaudio: %v", err)
	}
	return nil
}

// Interrupts implements the pipeline.Driver interface.
func (aud *Audio) Interrupts() dma.Interrupts {
	return aud.buf
}
