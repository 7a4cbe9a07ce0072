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

package environment_test

import (
	"path/filepath"
	"testing"

	"github.com/consolemix/consolemix/environment"
	"github.com/consolemix/consolemix/hardware/preferences"
	"github.com/consolemix/consolemix/logger"
	"github.com/consolemix/consolemix/prefs"
	"github.com/consolemix/consolemix/test"
)

func TestEnvironment(t *testing.T) {
	p, err := preferences.NewPreferencesFile(filepath.Join(t.TempDir(), prefs.DefaultPrefsFile))
	test.DemandSuccess(t, err)

	main, err := environment.NewEnvironment(environment.MainPipeline, p)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, main.IsMainPipeline())
	test.ExpectSuccess(t, main.AllowLogging())

	perf, err := environment.NewEnvironment("performance", p)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, perf.IsMainPipeline())
	test.ExpectSuccess(t, perf.IsPipeline("performance"))
	test.ExpectFailure(t, perf.AllowLogging())

	// preferences are shared
	test.ExpectSuccess(t, main.Prefs.SampleRate.Set(22050))
	test.ExpectEquality(t, perf.Prefs.SampleRate.Get().(int), 22050)
	perf.Normalise()
	test.ExpectEquality(t, main.Prefs.SampleRate.Get().(int), 44100)

	var _ logger.Permission = main
}
