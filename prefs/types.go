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
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/consolemix/consolemix/curated"
)

// Value represents the actual Go preference value.
type Value any

// SetError is the error pattern for values that cannot be converted to the
// preference type.
const SetError = "prefs: cannot convert %T to %s"

// types supported by the prefs system must implement the pref interface.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// value is the live value and the hooks shared by all the preference types.
// Loads and stores are atomic so a value can be read from the audio
// goroutine while it is being changed.
type value[T any] struct {
	v        atomic.Pointer[T]
	hookPre  func(value Value) error
	hookPost func(value Value) error
}

// SetHookPre sets the callback function to be called just before the prefs
// value is updated. An error from the callback leaves the value unchanged.
// The callback is run even if the value is not changing.
func (p *value[T]) SetHookPre(f func(value Value) error) {
	p.hookPre = f
}

// SetHookPost sets the callback function to be called just after the prefs
// value is updated. The callback is run even if the value has not changed.
func (p *value[T]) SetHookPost(f func(value Value) error) {
	p.hookPost = f
}

func (p *value[T]) load() T {
	if v := p.v.Load(); v != nil {
		return *v
	}
	var zero T
	return zero
}

func (p *value[T]) store(nv T) error {
	if p.hookPre != nil {
		if err := p.hookPre(nv); err != nil {
			return err
		}
	}
	p.v.Store(&nv)
	if p.hookPost != nil {
		return p.hookPost(nv)
	}
	return nil
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	value[bool]
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.load())
}

// Set new value to Bool type. New value must be of type bool or string. A
// string value of anything other than "true" (case insensitive) will set the
// value to false.
func (p *Bool) Set(v Value) error {
	switch v := v.(type) {
	case bool:
		return p.store(v)
	case string:
		return p.store(strings.EqualFold(strings.TrimSpace(v), "true"))
	}
	return curated.Errorf(SetError, v, "prefs.Bool")
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	return p.load()
}

// Reset sets the boolean value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// String implements a string type in the prefs system.
type String struct {
	value[string]
	maxLen int
}

func (p *String) String() string {
	return p.load()
}

func (p *String) crop(s string) string {
	if p.maxLen > 0 && len(s) > p.maxLen {
		return s[:p.maxLen]
	}
	return s
}

// SetMaxLen sets the maximum length for a string when it is set. To set no
// limit use a value less than or equal to zero. The existing string is
// cropped if necessary, without calling the hooks.
func (p *String) SetMaxLen(max int) {
	p.maxLen = max
	if s := p.load(); len(s) != len(p.crop(s)) {
		c := p.crop(s)
		p.v.Store(&c)
	}
}

// Set new value to String type. Values of other types are converted with
// the %v verb.
func (p *String) Set(v Value) error {
	return p.store(p.crop(fmt.Sprintf("%v", v)))
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	return p.load()
}

// Reset sets the string value to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}

// Int implements an integer type in the prefs system.
type Int struct {
	value[int]
}

func (p *Int) String() string {
	return strconv.Itoa(p.load())
}

// Set new value to Int type. New value can be an int or a string.
func (p *Int) Set(v Value) error {
	switch v := v.(type) {
	case int:
		return p.store(v)
	case int32:
		return p.store(int(v))
	case int64:
		return p.store(int(v))
	case string:
		if nv, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return p.store(nv)
		}
	}
	return curated.Errorf(SetError, v, "prefs.Int")
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	return p.load()
}

// Reset sets the int value to zero.
func (p *Int) Reset() error {
	return p.Set(0)
}

// Float implements a floating-point type in the prefs system.
type Float struct {
	value[float64]
}

func (p *Float) String() string {
	return strconv.FormatFloat(p.load(), 'f', 3, 64)
}

// Set new value to Float type. New value can be a float, an int or a string.
func (p *Float) Set(v Value) error {
	switch v := v.(type) {
	case float64:
		return p.store(v)
	case float32:
		return p.store(float64(v))
	case int:
		return p.store(float64(v))
	case string:
		if nv, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return p.store(nv)
		}
	}
	return curated.Errorf(SetError, v, "prefs.Float")
}

// Get returns the raw pref value.
func (p *Float) Get() Value {
	return p.load()
}

// Reset sets the float value to zero.
func (p *Float) Reset() error {
	return p.Set(0.0)
}
