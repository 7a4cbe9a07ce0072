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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with
// a specific pattern. The pattern is what differentiates curated errors, not
// the formatted message. For example:
//
//	e := curated.Errorf(mixer.InvalidSlot, 12)
//
//	if curated.Is(e, mixer.InvalidSlot) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("pipeline: %v", e)
//
//	if curated.Has(f, mixer.InvalidSlot) {
//		fmt.Println("true")
//	}
//
// Packages declare the patterns they can return as exported const strings.
// Those constants are the sentinels of the package.
//
// The Error() implementation normalises the message chain by removing
// duplicate adjacent parts. This means that a function can wrap an error
// with its own context without worrying that the callee has already done
// so. For example, if the callee returns "sounds: not found" and the caller
// wraps it as "sounds: %v" the message will still be "sounds: not found".
//
// Curated errors are values. A curated error stored in a package level
// variable can be returned from code that must not allocate, such as the
// audio fill path.
package curated
