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
	"io"
	"path/filepath"
	"strings"

	"github.com/consolemix/consolemix/curated"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
)

// Extensions is the list of file extensions that can be loaded, in order of
// preference.
var Extensions = []string{".lmp", ".wav", ".mp3"}

// Decode creates a Sound from the contents of a file. The type of file is
// decided by the extension of the name.
func Decode(name string, r io.ReadSeeker) (*Sound, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".lmp":
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, curated.Errorf(DecodeError, name, err)
		}
		return ParseLump(soundName(name), data)
	case ".wav":
		return decodeWAV(name, r)
	case ".mp3":
		return decodeMP3(name, r)
	}
	return nil, curated.Errorf(UnsupportedFile, name)
}

// the name of a sound is the lower case filename without the extension
func soundName(name string) string {
	name = filepath.Base(name)
	return strings.ToLower(strings.TrimSuffix(name, filepath.Ext(name)))
}

func decodeWAV(name string, r io.ReadSeeker) (*Sound, error) {
	dec := wav.NewDecoder(r)
	if dec == nil || !dec.IsValidFile() {
		return nil, curated.Errorf(DecodeError, name, "not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, curated.Errorf(DecodeError, name, err)
	}

	if buf.Format == nil || buf.Format.SampleRate <= 0 {
		return nil, curated.Errorf(InvalidRate, name, 0)
	}

	return &Sound{
		Name: soundName(name),
		Rate: buf.Format.SampleRate,
		Data: fromIntBuffer(buf, int(dec.BitDepth)),
	}, nil
}

// fromIntBuffer takes the first channel of the buffer and converts it to
// 8-bit unsigned samples. 8-bit data in a WAV file is already unsigned.
func fromIntBuffer(buf *audio.IntBuffer, bitDepth int) []uint8 {
	chans := buf.Format.NumChannels
	if chans < 1 {
		chans = 1
	}

	data := make([]uint8, 0, len(buf.Data)/chans)
	for i := 0; i < len(buf.Data); i += chans {
		v := buf.Data[i]
		if bitDepth <= 8 {
			data = append(data, uint8(v))
		} else {
			data = append(data, uint8((v>>(bitDepth-8))+128))
		}
	}

	return data
}

func decodeMP3(name string, r io.Reader) (*Sound, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, curated.Errorf(DecodeError, name, err)
	}

	// the decoded stream is always 16 bit little-endian with two channels
	pcm, err := io.ReadAll(dec)
	if err != nil {
		return nil, curated.Errorf(DecodeError, name, err)
	}
	data := fromPCM16(pcm)

	return &Sound{
		Name: soundName(name),
		Rate: dec.SampleRate(),
		Data: data,
	}, nil
}

// fromPCM16 takes the left channel of interleaved 16-bit stereo data and
// converts it to 8-bit unsigned samples. Incomplete frames are ignored.
func fromPCM16(chunk []byte) []uint8 {
	data := make([]uint8, 0, len(chunk)/4)
	for i := 0; i+3 < len(chunk); i += 4 {
		// the high byte of the little-endian left sample, with the sign bit
		// flipped
		data = append(data, chunk[i+1]^0x80)
	}
	return data
}
