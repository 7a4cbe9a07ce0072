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

// Package modalflag handles command lines made up of modes, each with its own
// set of flags. It wraps the flag package in the standard library.
//
// Arguments are supplied once with NewArgs(). Each layer of the command line
// is then prepared with NewMode(), AddSubModes() and the Add*() flag
// functions, before being processed with Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("play", "record", "info")
//	log := md.AddBool("log", false, "echo log to stderr")
//	if p, err := md.Parse(); p != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "RECORD":
//		md.NewMode()
//		...
//	}
//
// The first sub-mode is the default and is selected if the next argument is
// not a recognised mode. Mode comparisons are case insensitive and modes are
// reported in upper case.
package modalflag
