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
	"encoding/binary"
	"fmt"

	"github.com/consolemix/consolemix/curated"
)

// Sentinal error patterns.
const (
	ShortLump       = "sounds: %s: lump too short (%d bytes)"
	UnknownFormat   = "sounds: %s: unknown lump format (%d)"
	InvalidRate     = "sounds: %s: invalid sample rate (%d)"
	NotFound        = "sounds: %s: not found"
	UnsupportedFile = "sounds: %s: unsupported file type"
	DecodeError     = "sounds: %s: %v"
)

// LumpFormat is the only format value accepted in a lump header.
const LumpFormat = 3

// length of lump header in bytes
const lumpHeader = 8

// Sound is a sound effect ready to be played by the mixer.
type Sound struct {
	Name string

	// sample rate in Hz
	Rate int

	// 8-bit unsigned PCM. silence is 128
	Data []uint8
}

func (s *Sound) String() string {
	return fmt.Sprintf("%s: %d samples @ %dHz", s.Name, len(s.Data), s.Rate)
}

// Length returns the number of samples in the sound.
func (s *Sound) Length() int {
	return len(s.Data)
}

// ParseLump parses the header of a sound lump. The returned Sound shares the
// data slice.
//
// If the length field of the header is larger than the data following the
// header then the sound is truncated to the available data.
func ParseLump(name string, data []uint8) (*Sound, error) {
	if len(data) < lumpHeader {
		return nil, curated.Errorf(ShortLump, name, len(data))
	}

	format := binary.LittleEndian.Uint16(data[0:])
	if format != LumpFormat {
		return nil, curated.Errorf(UnknownFormat, name, format)
	}

	rate := binary.LittleEndian.Uint16(data[2:])
	if rate == 0 {
		return nil, curated.Errorf(InvalidRate, name, rate)
	}

	length := int(binary.LittleEndian.Uint32(data[4:]))
	data = data[lumpHeader:]
	if length > len(data) {
		length = len(data)
	}

	return &Sound{
		Name: name,
		Rate: int(rate),
		Data: data[:length],
	}, nil
}

// Lump returns the sound encoded as a lump.
func (s *Sound) Lump() []uint8 {
	l := make([]uint8, lumpHeader+len(s.Data))
	binary.LittleEndian.PutUint16(l[0:], LumpFormat)
	binary.LittleEndian.PutUint16(l[2:], uint16(s.Rate))
	binary.LittleEndian.PutUint32(l[4:], uint32(len(s.Data)))
	copy(l[lumpHeader:], s.Data)
	return l
}
