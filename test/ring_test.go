// This file is part of Inputrelay.
//
// Inputrelay is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Inputrelay is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Inputrelay.  If not, see <https://www.gnu.org/licenses/>.

package test_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/jetsetilly/inputrelay/test"
)

func TestRingWriter(t *testing.T) {
	_, err := test.NewRingWriter(0)
	test.ExpectFailure(t, err)

	r, err := test.NewRingWriter(10)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.String(), "")

	// short writes accumulate
	r.Write([]byte("abcde"))
	r.Write([]byte("fgh"))
	test.ExpectEquality(t, r.String(), "abcdefgh")
	r.Write([]byte("ij"))
	test.ExpectEquality(t, r.String(), "abcdefghij")

	// overflowing drops the oldest bytes
	r.Write([]byte("kl"))
	test.ExpectEquality(t, r.String(), "cdefghijkl")
	test.ExpectSuccess(t, r.Contains("ijkl"))
	test.ExpectFailure(t, r.Contains("ab"))

	// a write as long as the ring, or longer, replaces everything
	r.Write([]byte("1234567890"))
	test.ExpectEquality(t, r.String(), "1234567890")
	n, err := r.Write([]byte("1234567890ABC"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 13)
	test.ExpectEquality(t, r.String(), "4567890ABC")

	r.Reset()
	test.ExpectEquality(t, r.String(), "")
	r.Write([]byte("xyz"))
	test.ExpectEquality(t, r.String(), "xyz")
}

func TestRingWriterConcurrent(t *testing.T) {
	r, err := test.NewRingWriter(64)
	test.DemandSuccess(t, err)

	var wg sync.WaitGroup
	for i := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 100 {
				fmt.Fprintf(r, "%d:%02d ", i, j)
			}
		}()
	}
	wg.Wait()

	test.ExpectEquality(t, len(r.String()), 64)
}
