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

package version

import (
	"testing"

	"github.com/consolemix/consolemix/test"
)

func TestFromBuildInfo(t *testing.T) {
	inf := fromBuildInfo("", buildInfo{})
	test.ExpectEquality(t, inf.Version, "local")
	test.ExpectEquality(t, inf.Revision, "no revision information")
	test.ExpectFailure(t, inf.Release)

	inf = fromBuildInfo("", buildInfo{vcs: true, revision: "abc123", modified: true})
	test.ExpectEquality(t, inf.Version, "unreleased")
	test.ExpectEquality(t, inf.Revision, "abc123+dirty")
	test.ExpectEquality(t, inf.String(), "Consolemix unreleased (abc123+dirty)")

	inf = fromBuildInfo("v0.1.0", buildInfo{vcs: true, revision: "abc123"})
	test.ExpectSuccess(t, inf.Release)
	test.ExpectEquality(t, inf.String(), "Consolemix v0.1.0")
}
