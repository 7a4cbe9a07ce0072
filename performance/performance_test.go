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

package performance_test

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/consolemix/consolemix/hardware/preferences"
	"github.com/consolemix/consolemix/logger"
	"github.com/consolemix/consolemix/performance"
	"github.com/consolemix/consolemix/resources/sounds"
	"github.com/consolemix/consolemix/test"
)

func newPrefs(t *testing.T) *preferences.Preferences {
	t.Helper()
	prefs, err := preferences.NewPreferencesFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	return prefs
}

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("cpu,mem")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)
	test.ExpectEquality(t, p.String(), "cpu,mem")

	p, err = performance.ParseProfile("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	p, err = performance.ParseProfile("ALL")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileAll)

	_, err = performance.ParseProfile("cpu,gpu")
	test.ExpectFailure(t, err)
}

func TestCheck(t *testing.T) {
	prefs := newPrefs(t)

	var w strings.Builder
	res, err := performance.Check(&w, performance.ProfileNone, prefs, nil, performance.Options{
		Duration: 20 * time.Millisecond,
		Music:    true,
	})
	test.DemandSuccess(t, err)

	test.ExpectInequality(t, res.Fills, 0)
	test.ExpectEquality(t, res.Frames, res.Fills*prefs.HalfBuffer.Get().(int))
	test.ExpectEquality(t, res.Deadline.Microseconds(), int64(362))
	test.ExpectSuccess(t, res.Worst >= res.Mean())
	test.ExpectSuccess(t, strings.Contains(w.String(), "fills"))
}

func TestCheckEffects(t *testing.T) {
	prefs := newPrefs(t)

	lib := sounds.NewCache(logger.Allow, "")
	lib.Add(&sounds.Sound{Name: "tone", Rate: 11025, Data: make([]uint8, 100)})

	var w strings.Builder
	res, err := performance.Check(&w, performance.ProfileNone, prefs, lib, performance.Options{
		Duration: 10 * time.Millisecond,
		Effects:  []string{"tone", "tone"},
	})
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, res.Fills, 0)

	_, err = performance.Check(&w, performance.ProfileNone, prefs, lib, performance.Options{
		Duration: 10 * time.Millisecond,
		Effects:  []string{"missing"},
	})
	test.ExpectFailure(t, err)
}
