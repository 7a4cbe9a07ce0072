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

package modalflag

import (
	"fmt"
	"strings"
)

// writeHelp reworks the usage text produced by the flag package so that it
// names the mode and lists the sub-modes.
func (md *Modes) writeHelp() {
	if md.Output == nil {
		return
	}

	// the flag package always writes a "Usage:" line first
	_, flags, _ := strings.Cut(md.help.String(), "\n")

	if flags == "" && len(md.subModes) == 0 {
		if p := md.Path(); p != "" {
			fmt.Fprintf(md.Output, "No help available for %s\n", p)
		} else {
			fmt.Fprintln(md.Output, "No help available")
		}
		return
	}

	if p := md.Path(); p != "" {
		fmt.Fprintf(md.Output, "Usage for %s mode:\n", p)
	} else {
		fmt.Fprintln(md.Output, "Usage:")
	}
	fmt.Fprint(md.Output, flags)

	if len(md.subModes) > 0 {
		if flags != "" {
			fmt.Fprintln(md.Output)
		}
		fmt.Fprintf(md.Output, "  available sub-modes: %s\n", strings.Join(md.subModes, ", "))
		fmt.Fprintf(md.Output, "    default: %s\n", md.subModes[0])
	}

	if md.extra != "" {
		fmt.Fprintf(md.Output, "\n%s\n", md.extra)
	}
}
