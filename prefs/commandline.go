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

package prefs

import (
	"fmt"
	"sort"
	"strings"
)

// each group on the stack maps preference keys to the value given on the
// command line
var commandLineStack []map[string]Value

// SizeCommandLineStack returns the number of groups on the command line
// stack.
func SizeCommandLineStack() int {
	return len(commandLineStack)
}

// PushCommandLineStack parses a prefs string and adds it as a new group. The
// prefs string is a list of key::value pairs separated by semicolons. Pairs
// that cannot be parsed are ignored.
func PushCommandLineStack(prefs string) {
	group := make(map[string]Value)

	for _, p := range strings.Split(prefs, ";") {
		k, v, ok := strings.Cut(p, "::")
		if !ok {
			continue
		}
		k = strings.TrimSpace(k)
		if k != "" {
			group[k] = strings.TrimSpace(v)
		}
	}

	commandLineStack = append(commandLineStack, group)
}

// PopCommandLineStack removes the top group from the stack. The values in
// the group that were never used are returned as a prefs string, sorted by
// key. An empty string is returned if there are no unused values.
func PopCommandLineStack() string {
	if len(commandLineStack) == 0 {
		return ""
	}

	top := commandLineStack[len(commandLineStack)-1]
	commandLineStack = commandLineStack[:len(commandLineStack)-1]

	keys := make([]string, 0, len(top))
	for k := range top {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	unused := make([]string, 0, len(keys))
	for _, k := range keys {
		unused = append(unused, fmt.Sprintf("%s::%v", k, top[k]))
	}

	return strings.Join(unused, "; ")
}

// GetCommandLinePref returns the value for the key from the top group of the
// stack. The value is removed from the group, so each value is only used
// once.
func GetCommandLinePref(key string) (bool, Value) {
	if len(commandLineStack) == 0 {
		return false, nil
	}

	top := commandLineStack[len(commandLineStack)-1]
	if v, ok := top[key]; ok {
		delete(top, key)
		return true, v
	}

	return false, nil
}
