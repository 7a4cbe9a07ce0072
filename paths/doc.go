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

// Package paths prepares paths to consolemix resources, such as the
// preferences file, the sound directory and recordings.
//
// The ResourcePath() function joins the resource to the base path and
// creates the directories leading to the resource if necessary. It does not
// create the resource itself:
//
//	pth, err := paths.ResourcePath("", "preferences")
//
// For development builds the base path is rooted in the current working
// directory:
//
//	.consolemix
//
// For builds with the "release" build tag the base path is in the user's
// configuration directory. On a modern Linux system the full path would be
// something like:
//
//	/home/user/.config/consolemix/
package paths
