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

// Package sounds is the cache of sound effects used by the audio pipeline.
// Sound effects are 8-bit unsigned PCM with a native sample rate.
//
// Sounds are loaded from lump files, which is the format used by the game
// data files, or from WAV and MP3 files which are converted on load. Lump
// files have an eight byte header:
//
//	offset 0: format (uint16, always 3)
//	offset 2: sample rate (uint16)
//	offset 4: sample count (uint32)
//
// All values are little-endian. The samples follow the header.
//
// The cache never evicts a sound. The Data field of a Sound returned by the
// cache remains valid, and unchanged, for the lifetime of the program, which
// means that the mixer can play directly from it.
package sounds
