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

package pipeline

import (
	"github.com/consolemix/consolemix/curated"
	"github.com/consolemix/consolemix/hardware/future"
	"github.com/consolemix/consolemix/logger"
)

// StartSound plays the sound effect on the channel. Any sound already
// playing on the channel is replaced. Returns the channel number.
func (p *Pipeline) StartSound(channel int, soundID string, volume int, pan int) (int, error) {
	if s := p.State(); s == Uninitialized {
		return -1, curated.Errorf(InvalidState, "start sound", s)
	}
	if p.library == nil {
		return -1, curated.Errorf(SoundError, "no sound library")
	}

	// lookup may load the sound from disk so it happens before fill
	// requests are masked
	snd, err := p.library.Lookup(soundID)
	if err != nil {
		return -1, curated.Errorf(SoundError, err)
	}

	var slot int
	p.Critical(func() {
		slot, err = p.mixer.Start(channel, snd.Data, len(snd.Data), snd.Rate, p.sampleRate, volume, pan)
	})
	if err != nil {
		return -1, curated.Errorf(SoundError, err)
	}

	return slot, nil
}

// StopSound stops the channel. Stopping a channel that is not playing, or a
// channel that does not exist, has no effect.
func (p *Pipeline) StopSound(channel int) {
	p.Critical(func() {
		p.mixer.Stop(channel)
	})
}

// IsSoundPlaying returns true if the channel is playing a sound.
func (p *Pipeline) IsSoundPlaying(channel int) bool {
	var playing bool
	p.Critical(func() {
		playing = p.mixer.IsPlaying(channel)
	})
	return playing
}

// UpdateSoundParams changes the volume and pan of a channel without
// restarting the sound. Out of range values are clamped.
func (p *Pipeline) UpdateSoundParams(channel int, volume int, pan int) {
	p.Critical(func() {
		p.mixer.SetParams(channel, volume, pan)
	})
}

// ScheduleAfter adds an event to the scheduler. The payload runs on the
// goroutine of the output driver once delta microseconds of audio have been
// produced.
func (p *Pipeline) ScheduleAfter(delta uint64, payload future.Payload, context any) error {
	var err error
	p.Critical(func() {
		err = p.ticker.ScheduleAfter(delta, payload, context)
	})
	return err
}

// SetMusicPaused pauses and resumes the scheduler. Sound effects are not
// affected.
func (p *Pipeline) SetMusicPaused(paused bool) {
	p.Critical(func() {
		p.ticker.SetPaused(paused)
	})
}

// MusicPaused returns true if the scheduler is paused.
func (p *Pipeline) MusicPaused() bool {
	var paused bool
	p.Critical(func() {
		paused = p.ticker.State() == future.Paused
	})
	return paused
}

// Update should be called regularly from the application goroutine. It
// reports conditions that arose during fill requests, which cannot log for
// themselves.
func (p *Pipeline) Update() {
	var missed int
	p.Critical(func() {
		missed = p.ticker.ResetMissed()
	})

	if missed > 0 {
		p.missed += missed
		logger.Logf(p.env, logTag, "%d scheduler events missed (event queue full)", missed)
	}
}

// Stats returns a snapshot of the pipeline counters.
func (p *Pipeline) Stats() Stats {
	s := Stats{
		State:    p.State(),
		Fills:    p.fills.Load(),
		Frames:   p.frames.Load(),
		Rejected: p.rejected.Load(),
		Missed:   p.missed,
	}

	p.Critical(func() {
		s.VirtualTime = p.ticker.Now()
		s.Active = p.mixer.Active()
		s.Missed += p.ticker.Missed()
	})

	return s
}

// Channels returns a string summarising the channel table.
func (p *Pipeline) Channels() string {
	var s string
	p.Critical(func() {
		s = p.mixer.String()
	})
	return s
}
