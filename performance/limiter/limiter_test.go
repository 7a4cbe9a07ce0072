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

package limiter_test

import (
	"testing"
	"time"

	"github.com/consolemix/consolemix/performance/limiter"
	"github.com/consolemix/consolemix/test"
)

func TestPeriod(t *testing.T) {
	lim := limiter.NewLimiter(100)
	defer lim.Close()
	test.ExpectEquality(t, lim.Period(), 10*time.Millisecond)

	lim.SetLimit(0)
	test.ExpectEquality(t, lim.Period(), time.Second)
}

func TestWait(t *testing.T) {
	lim := limiter.NewLimiter(1000)
	defer lim.Close()

	start := time.Now()
	for range 5 {
		lim.Wait()
	}
	test.ExpectSuccess(t, time.Since(start) >= 4*time.Millisecond)
}
