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

package digest_test

import (
	"testing"

	"github.com/consolemix/consolemix/digest"
	"github.com/consolemix/consolemix/test"
)

func stream(n int, seed int16) []int16 {
	s := make([]int16, n)
	for i := range s {
		s[i] = seed * int16(i%97)
	}
	return s
}

func TestAudioDigest(t *testing.T) {
	a := digest.NewAudio()
	b := digest.NewAudio()

	// a digest must not depend on how the stream is divided into segments
	s := stream(40000, 3)
	a.Write(s)
	for i := 0; i < len(s); i += 32 {
		b.Write(s[i:min(i+32, len(s))])
	}
	test.ExpectEquality(t, a.Hash(), b.Hash())

	c := digest.NewAudio()
	c.Write(stream(40000, 5))
	test.ExpectInequality(t, a.Hash(), c.Hash())
}

func TestAudioReset(t *testing.T) {
	var dig digest.Digest = digest.NewAudio()
	empty := dig.Hash()

	dig.(*digest.Audio).Write(stream(100, 1))
	test.ExpectInequality(t, dig.Hash(), empty)

	dig.ResetDigest()
	test.ExpectEquality(t, dig.Hash(), empty)
}
