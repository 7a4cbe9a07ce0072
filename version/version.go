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

// Package version reports the version of the program. The version number is
// set by the linker for release builds:
//
//	go build -ldflags "-X github.com/consolemix/consolemix/version.number=v0.1.0"
//
// Other builds take what they can from the build information embedded by the
// Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is used when referring to the program.
const ApplicationName = "Consolemix"

// set by the linker
var number string

// Info describes the build.
type Info struct {
	// version number. "unreleased" if the program was built from a
	// repository without a version number and "local" if there is no
	// information at all
	Version string

	// vcs revision, suffixed with "+dirty" if the source had been modified
	Revision string

	// the version is a numbered release
	Release bool

	GoVersion string
}

func (inf Info) String() string {
	if inf.Release {
		return fmt.Sprintf("%s %s", ApplicationName, inf.Version)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, inf.Version, inf.Revision)
}

// Version returns the build information.
func Version() Info {
	return fromBuildInfo(number, readBuildInfo())
}

type buildInfo struct {
	goVersion string
	vcs       bool
	revision  string
	modified  bool
}

func readBuildInfo() buildInfo {
	var b buildInfo

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return b
	}

	b.goVersion = info.GoVersion
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs":
			b.vcs = true
		case "vcs.revision":
			b.revision = s.Value
		case "vcs.modified":
			b.modified = s.Value == "true"
		}
	}

	return b
}

func fromBuildInfo(number string, b buildInfo) Info {
	inf := Info{
		GoVersion: b.goVersion,
		Release:   number != "",
	}

	switch {
	case b.revision == "":
		inf.Revision = "no revision information"
	case b.modified:
		inf.Revision = b.revision + "+dirty"
	default:
		inf.Revision = b.revision
	}

	switch {
	case number != "":
		inf.Version = number
	case b.vcs:
		inf.Version = "unreleased"
	default:
		inf.Version = "local"
	}

	return inf
}
