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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
)

// the number of bytes hashed at once. the previous digest value is stored
// at the start of the buffer so each digest depends on every earlier sample
const audioBufferLength = 1024 * sha1.Size

const audioBufferStart = sha1.Size

// Audio is a digest of an interleaved stereo stream.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	dig := &Audio{
		buffer:   make([]uint8, audioBufferLength),
		bufferCt: audioBufferStart,
	}
	return dig
}

// Hash implements the Digest interface. Samples that have not yet filled
// the buffer are included, which means that calling Hash() part way through
// a stream affects the value of later calls.
func (dig *Audio) Hash() string {
	if dig.bufferCt > audioBufferStart {
		dig.flush()
	}
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Audio) ResetDigest() {
	clear(dig.digest[:])
	clear(dig.buffer)
	dig.bufferCt = audioBufferStart
}

// Write adds a segment of samples to the digest. The signature matches the
// callback of dma.Headless.Pull().
func (dig *Audio) Write(segment []int16) {
	for _, s := range segment {
		binary.LittleEndian.PutUint16(dig.buffer[dig.bufferCt:], uint16(s))
		dig.bufferCt += 2
		if dig.bufferCt >= audioBufferLength {
			dig.flush()
		}
	}
}

func (dig *Audio) flush() {
	// the unused part of a partly filled buffer is not hashed
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = audioBufferStart
}
