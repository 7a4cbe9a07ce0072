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

// Package digest creates fingerprints of the audio stream. Two runs of the
// pipeline with the same inputs produce the same digest, which makes the
// digest useful for spotting changes in the mixed output.
package digest

// Digest is implemented by types that fingerprint a stream of data.
type Digest interface {
	Hash() string
	ResetDigest()
}
