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

package sounds

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/consolemix/consolemix/curated"
	"github.com/consolemix/consolemix/logger"
)

const logTag = "sounds"

// the prefix given to the names of sound effect lumps
const lumpPrefix = "ds"

// Cache of sound effects. Sounds are added to the cache explicitly or loaded
// from the search directory the first time they are looked up.
type Cache struct {
	perm logger.Permission

	// directory searched by Lookup() for sounds not yet in the cache. can be
	// empty
	dir string

	crit   sync.RWMutex
	sounds map[string]*Sound
}

// NewCache is the preferred method of initialisation for the Cache type.
func NewCache(perm logger.Permission, dir string) *Cache {
	return &Cache{
		perm:   perm,
		dir:    dir,
		sounds: make(map[string]*Sound),
	}
}

func normalise(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// Add a sound to the cache. An existing sound with the same name is not
// replaced because it may still be playing.
func (c *Cache) Add(s *Sound) bool {
	c.crit.Lock()
	defer c.crit.Unlock()

	id := normalise(s.Name)
	if _, ok := c.sounds[id]; ok {
		return false
	}
	c.sounds[id] = s
	return true
}

// Len returns the number of sounds in the cache.
func (c *Cache) Len() int {
	c.crit.RLock()
	defer c.crit.RUnlock()
	return len(c.sounds)
}

// List returns the sorted names of all sounds in the cache.
func (c *Cache) List() []string {
	c.crit.RLock()
	defer c.crit.RUnlock()

	l := make([]string, 0, len(c.sounds))
	for id := range c.sounds {
		l = append(l, id)
	}
	sort.Strings(l)
	return l
}

// LoadFile decodes a file and adds it to the cache.
func (c *Cache) LoadFile(path string) (*Sound, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, curated.Errorf(DecodeError, filepath.Base(path), err)
	}
	defer f.Close()

	s, err := Decode(path, f)
	if err != nil {
		return nil, err
	}

	if !c.Add(s) {
		// return the sound already in the cache
		c.crit.RLock()
		defer c.crit.RUnlock()
		return c.sounds[normalise(s.Name)], nil
	}

	logger.Logf(c.perm, logTag, "loaded %s", s)

	return s, nil
}

// LoadDir loads every sound file in a directory. Files that fail to load are
// logged and skipped. Returns the number of sounds added.
func (c *Cache) LoadDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, curated.Errorf(DecodeError, dir, err)
	}

	var n int
	for _, e := range entries {
		if e.IsDir() || !supported(e.Name()) {
			continue
		}
		_, err := c.LoadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			logger.Log(c.perm, logTag, err)
			continue
		}
		n++
	}

	return n, nil
}

func supported(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Lookup returns the sound with the given id. The id is tried on its own and
// then with the sound lump prefix. Sounds not in the cache are searched for in
// the search directory.
func (c *Cache) Lookup(id string) (*Sound, error) {
	id = normalise(id)
	candidates := [...]string{id, lumpPrefix + id}

	c.crit.RLock()
	for _, n := range candidates {
		if s, ok := c.sounds[n]; ok {
			c.crit.RUnlock()
			return s, nil
		}
	}
	c.crit.RUnlock()

	if c.dir != "" {
		for _, n := range candidates {
			for _, ext := range Extensions {
				pth := filepath.Join(c.dir, n+ext)
				if _, err := os.Stat(pth); err != nil {
					continue
				}
				return c.LoadFile(pth)
			}
		}
	}

	return nil, curated.Errorf(NotFound, id)
}

// Precache makes sure that all the listed sounds are in the cache. All ids
// are tried and the first error is returned.
func (c *Cache) Precache(ids ...string) error {
	var first error
	for _, id := range ids {
		if _, err := c.Lookup(id); err != nil {
			logger.Log(c.perm, logTag, err)
			if first == nil {
				first = err
			}
		}
	}
	return first
}
