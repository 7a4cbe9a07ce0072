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

package curated

import (
	"errors"
	"fmt"
	"strings"
)

// curated is the error type created by Errorf(). The message is not
// formatted until it is needed.
type curated struct {
	pattern string
	values  []any
}

// Errorf creates a new curated error. The first argument is a pattern rather
// than just a format string because it identifies the error to Is() and
// Has().
func Errorf(pattern string, values ...any) error {
	return curated{pattern: pattern, values: values}
}

// Error implements the error interface. Adjacent parts of the message that
// are the same are collapsed into one, so that wrapping an error with a
// pattern that repeats the package prefix does not repeat the prefix.
func (er curated) Error() string {
	var b strings.Builder
	var last string
	for i, part := range strings.Split(fmt.Sprintf(er.pattern, er.values...), ": ") {
		if i > 0 {
			if part == last {
				continue
			}
			b.WriteString(": ")
		}
		b.WriteString(part)
		last = part
	}
	return b.String()
}

// wrapped returns every error in the placeholder values.
func (er curated) wrapped() []error {
	var w []error
	for _, v := range er.values {
		if e, ok := v.(error); ok {
			w = append(w, e)
		}
	}
	return w
}

// Unwrap allows curated errors to take part in errors.Is() and errors.As().
func (er curated) Unwrap() []error {
	return er.wrapped()
}

// Is is used by errors.Is(). Curated errors with the same pattern are equal.
func (er curated) Is(target error) bool {
	t, ok := target.(curated)
	return ok && t.pattern == er.pattern
}

// IsAny returns true if a curated error is anywhere in the chain.
func IsAny(err error) bool {
	var er curated
	return err != nil && errors.As(err, &er)
}

// Is returns true if err is a curated error created with the pattern. Only
// err itself is checked. Use Has() to search the chain.
func Is(err error, pattern string) bool {
	er, ok := err.(curated)
	return ok && er.pattern == pattern
}

// Has returns true if a curated error created with the pattern is anywhere in
// the chain of curated errors.
func Has(err error, pattern string) bool {
	er, ok := err.(curated)
	if !ok {
		return false
	}
	if er.pattern == pattern {
		return true
	}
	for _, e := range er.wrapped() {
		if Has(e, pattern) {
			return true
		}
	}
	return false
}
