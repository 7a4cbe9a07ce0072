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

// Package prefs is the preferences system. Preference values are declared
// with the types in this package (Bool, Int, Float, String and Generic) and
// registered with a Disk instance under a key. The Disk saves and loads the
// registered values to and from a preferences file.
//
// The preferences file is plain text. Each line has the form:
//
//	key :: value
//
// Saving does not clobber keys in the file that have not been registered
// with the saving Disk instance. Many Disk instances can therefore share the
// same file.
//
// Values can also be set from the command line. A prefs string of the form
// "key::value; key::value" is pushed onto the command line stack with
// PushCommandLineStack(). Loading a Disk with the command line argument set
// applies values from the top of the stack after the values from the file.
//
// Hooks can be registered with SetHookPre() and SetHookPost(). A pre-hook
// that returns an error prevents the value from changing, which makes it a
// good place for validation.
package prefs
