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

// Package limiter paces a loop to a fixed rate. It is used to make a
// headless driver request fills at the same rate as a real output device
// would.
//
//	lim := limiter.NewLimiter(rate)
//	defer lim.Close()
//	for {
//		lim.Wait()
//		pull()
//	}
package limiter

import (
	"time"
)

// Limiter triggers at a fixed rate.
type Limiter struct {
	ticker *time.Ticker
	period time.Duration
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// The rate is the number of triggers per second and must be positive.
func NewLimiter(rate float64) *Limiter {
	lim := &Limiter{}
	lim.period = period(rate)
	lim.ticker = time.NewTicker(lim.period)
	return lim
}

func period(rate float64) time.Duration {
	if rate <= 0 {
		return time.Second
	}
	return time.Duration(float64(time.Second) / rate)
}

// Period returns the time between triggers.
func (lim *Limiter) Period() time.Duration {
	return lim.period
}

// SetLimit changes the rate of the limiter.
func (lim *Limiter) SetLimit(rate float64) {
	lim.period = period(rate)
	lim.ticker.Reset(lim.period)
}

// Wait blocks until the next trigger.
func (lim *Limiter) Wait() {
	<-lim.ticker.C
}

// HasWaited returns true if the trigger has already happened. It does not
// block.
func (lim *Limiter) HasWaited() bool {
	select {
	case <-lim.ticker.C:
		return true
	default:
		return false
	}
}

// Close stops the limiter.
func (lim *Limiter) Close() {
	lim.ticker.Stop()
}
