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
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/consolemix/consolemix/curated"
)

// Sentinal error patterns.
const (
	NoPrefsFile = "prefs: no prefs file (%s)"
	DiskError   = "prefs: %v"
	InvalidKey  = "prefs: invalid key (%s)"
)

// DefaultPrefsFile is the default filename of the preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file while consolemix is running ***"

// separates key from value in the preferences file.
const keySep = " :: "

// Disk represents preference values as stored on disk.
type Disk struct {
	crit    sync.Mutex
	path    string
	entries map[string]pref
}

func (dsk *Disk) String() string {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k]))
	}
	return s.String()
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// file is not touched until Load() or Save() is called.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Path returns the path of the preferences file.
func (dsk *Disk) Path() string {
	return dsk.path
}

// Add preference value to list of values to store/load from disk.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if key == "" || strings.ContainsAny(key, ":;\n") {
		return curated.Errorf(InvalidKey, key)
	}

	dsk.crit.Lock()
	defer dsk.crit.Unlock()
	dsk.entries[key] = p

	return nil
}

// sorted list of registered keys. must be called with the critical section
// locked
func (dsk *Disk) keys() []string {
	k := make([]string, 0, len(dsk.entries))
	for key := range dsk.entries {
		k = append(k, key)
	}
	sort.Strings(k)
	return k
}

// Reset all preference values to their zero value. Preference owners
// usually follow this with a call to set their default values.
func (dsk *Disk) Reset() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return curated.Errorf(DiskError, err)
		}
	}
	return nil
}

// read the key/value pairs in the preferences file.
func (dsk *Disk) read() (map[string]string, error) {
	values := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return values, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return values, curated.Errorf(DiskError, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// skip boilerplate
	scanner.Scan()

	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), keySep)
		if !ok {
			continue
		}
		k = strings.TrimSpace(k)
		if isDefunct(k) {
			continue
		}
		values[k] = strings.TrimSpace(v)
	}

	if err := scanner.Err(); err != nil {
		return values, curated.Errorf(DiskError, err)
	}

	return values, nil
}

// Save current preference values to disk. Values in the file that are not
// registered with this Disk instance are preserved.
func (dsk *Disk) Save() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	values, err := dsk.read()
	if err != nil && !curated.Is(err, NoPrefsFile) {
		return err
	}

	for k, p := range dsk.entries {
		values[k] = p.String()
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, values[k]))
	}

	if err := os.WriteFile(dsk.path, []byte(s.String()), 0600); err != nil {
		return curated.Errorf(DiskError, err)
	}

	return nil
}

// Load preference values from disk. If commandLine is true then values on
// the top of the command line stack are applied after the values from the
// file. Command line values are applied even if the preferences file does
// not exist, in which case the NoPrefsFile error is still returned.
func (dsk *Disk) Load(commandLine bool) error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	values, loadErr := dsk.read()
	if loadErr != nil && !curated.Is(loadErr, NoPrefsFile) {
		return loadErr
	}

	for k, v := range values {
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(DiskError, err)
			}
		}
	}

	if commandLine {
		for _, k := range dsk.keys() {
			if ok, v := GetCommandLinePref(k); ok {
				if err := dsk.entries[k].Set(v); err != nil {
					return curated.Errorf(DiskError, err)
				}
			}
		}
	}

	return loadErr
}
