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

package sounds_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/consolemix/consolemix/curated"
	"github.com/consolemix/consolemix/logger"
	"github.com/consolemix/consolemix/resources/sounds"
	"github.com/consolemix/consolemix/test"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/google/go-cmp/cmp"
)

func TestParseLump(t *testing.T) {
	lump := []uint8{
		0x03, 0x00, // format
		0x11, 0x2b, // 11025Hz
		0x04, 0x00, 0x00, 0x00, // four samples
		0x80, 0xff, 0x00, 0x80,
	}

	s, err := sounds.ParseLump("dspistol", lump)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Name, "dspistol")
	test.ExpectEquality(t, s.Rate, 11025)
	test.ExpectEquality(t, s.Length(), 4)
	test.ExpectEquality(t, s.String(), "dspistol: 4 samples @ 11025Hz")

	if diff := cmp.Diff(lump, s.Lump()); diff != "" {
		t.Errorf("lump mismatch (-want +got):\n%s", diff)
	}
}

func TestParseLumpTruncated(t *testing.T) {
	// header claims more samples than there are
	lump := []uint8{0x03, 0x00, 0x11, 0x2b, 0xff, 0x00, 0x00, 0x00, 0x80, 0x80}
	s, err := sounds.ParseLump("short", lump)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Length(), 2)
}

func TestParseLumpErrors(t *testing.T) {
	_, err := sounds.ParseLump("tiny", []uint8{0x03, 0x00, 0x11})
	test.ExpectSuccess(t, curated.Is(err, sounds.ShortLump))

	_, err = sounds.ParseLump("format", []uint8{0x02, 0x00, 0x11, 0x2b, 0, 0, 0, 0})
	test.ExpectSuccess(t, curated.Is(err, sounds.UnknownFormat))

	_, err = sounds.ParseLump("rate", []uint8{0x03, 0x00, 0x00, 0x00, 0, 0, 0, 0})
	test.ExpectSuccess(t, curated.Is(err, sounds.InvalidRate))
}

func TestCacheLookup(t *testing.T) {
	c := sounds.NewCache(logger.Allow, "")

	test.ExpectSuccess(t, c.Add(&sounds.Sound{Name: "DSPISTOL", Rate: 11025, Data: []uint8{1, 2, 3}}))
	test.ExpectSuccess(t, c.Add(&sounds.Sound{Name: "beep", Rate: 22050, Data: []uint8{4}}))

	// names are not replaced
	test.ExpectFailure(t, c.Add(&sounds.Sound{Name: "beep", Rate: 8000}))

	s, err := c.Lookup("pistol")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Rate, 11025)

	s, err = c.Lookup("dspistol")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Rate, 11025)

	s, err = c.Lookup("BEEP")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Rate, 22050)

	_, err = c.Lookup("missing")
	test.ExpectSuccess(t, curated.Is(err, sounds.NotFound))

	if diff := cmp.Diff([]string{"beep", "dspistol"}, c.List()); diff != "" {
		t.Errorf("list mismatch (-want +got):\n%s", diff)
	}
}

func writeWAV(t *testing.T, path string, rate int, data []int) {
	t.Helper()

	f, err := os.Create(path)
	test.DemandSuccess(t, err)
	defer f.Close()

	enc := wav.NewEncoder(f, rate, 16, 2, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: rate},
		Data:           data,
		SourceBitDepth: 16,
	}
	test.DemandSuccess(t, enc.Write(buf))
	test.DemandSuccess(t, enc.Close())
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()

	lump := (&sounds.Sound{Name: "dsbeep", Rate: 11025, Data: []uint8{0x80, 0x90}}).Lump()
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "DSBEEP.lmp"), lump, 0600))

	// stereo file. only the left channel is kept
	writeWAV(t, filepath.Join(dir, "tone.wav"), 22050, []int{0, 1000, 32767, 1000, -32768, 1000, 256, 1000})

	// ignored
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("hello"), 0600))

	// fails to load and is skipped
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "broken.lmp"), []byte{0x03}, 0600))

	c := sounds.NewCache(logger.Allow, "")
	n, err := c.LoadDir(dir)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n, 2)

	s, err := c.Lookup("beep")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Length(), 2)

	s, err = c.Lookup("tone")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Rate, 22050)
	if diff := cmp.Diff([]uint8{128, 255, 0, 129}, s.Data); diff != "" {
		t.Errorf("converted wav mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchDirectory(t *testing.T) {
	dir := t.TempDir()

	lump := (&sounds.Sound{Name: "dsdoor", Rate: 11025, Data: []uint8{0x80}}).Lump()
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "dsdoor.lmp"), lump, 0600))

	c := sounds.NewCache(logger.Allow, dir)
	test.ExpectEquality(t, c.Len(), 0)

	test.ExpectSuccess(t, c.Precache("door"))
	test.ExpectEquality(t, c.Len(), 1)

	// the cached sound is returned on the second lookup
	a, err := c.Lookup("door")
	test.DemandSuccess(t, err)
	b, err := c.Lookup("dsdoor")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, a == b)

	test.ExpectFailure(t, c.Precache("door", "window"))
}

func TestDecodeUnsupported(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "*.ogg")
	test.DemandSuccess(t, err)
	defer f.Close()

	_, err = sounds.Decode(f.Name(), f)
	test.ExpectSuccess(t, curated.Is(err, sounds.UnsupportedFile))
}
