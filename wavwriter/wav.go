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

// Package wavwriter records the output of the audio pipeline and writes it
// to disk as a 16-bit stereo WAV file. Audio data is buffered in memory in
// its entirety and written to disk by EndMixing().
package wavwriter

import (
	"os"

	"github.com/consolemix/consolemix/curated"
	"github.com/consolemix/consolemix/logger"
	"github.com/youpy/go-wav"
)

const logTag = "wavwriter"

// WavWriter collects interleaved stereo segments.
type WavWriter struct {
	perm       logger.Permission
	filename   string
	sampleRate int
	buffer     []wav.Sample
}

// New is the preferred method of initialisation for the WavWriter type.
func New(perm logger.Permission, filename string, sampleRate int) (*WavWriter, error) {
	if sampleRate <= 0 {
		return nil, curated.Errorf("wavwriter: invalid sample rate (%d)", sampleRate)
	}

	aw := &WavWriter{
		perm:       perm,
		filename:   filename,
		sampleRate: sampleRate,
		buffer:     make([]wav.Sample, 0),
	}

	return aw, nil
}

// Filename returns the name of the file written by EndMixing().
func (aw *WavWriter) Filename() string {
	return aw.filename
}

// Frames returns the number of stereo frames recorded.
func (aw *WavWriter) Frames() int {
	return len(aw.buffer)
}

// Write adds an interleaved stereo segment to the recording. A trailing odd
// sample is ignored.
func (aw *WavWriter) Write(segment []int16) {
	for i := 0; i+1 < len(segment); i += 2 {
		w := wav.Sample{}
		w.Values[0] = int(segment[i])
		w.Values[1] = int(segment[i+1])
		aw.buffer = append(aw.buffer, w)
	}
}

// EndMixing writes the recording to disk.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewWriter(f, uint32(len(aw.buffer)), 2, uint32(aw.sampleRate), 16)
	if enc == nil {
		return curated.Errorf("wavwriter: %v", "bad parameters for wav encoding")
	}

	logger.Logf(aw.perm, logTag, "writing %d frames to %s", len(aw.buffer), aw.filename)

	if err := enc.WriteSamples(aw.buffer); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}

// Reset discards the recording.
func (aw *WavWriter) Reset() {
	aw.buffer = aw.buffer[:0]
}
