// This file is part of DumpEvents.
//
// DumpEvents is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// DumpEvents is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with DumpEvents.  If not, see <https://www.gnu.org/licenses/>.

package assert_test

import (
	"testing"

	"github.com/jetsetilly/dumpevents/assert"
	"github.com/jetsetilly/dumpevents/test"
)

func TestGoroutineID(t *testing.T) {
	id := assert.GoroutineID()
	test.ExpectInequality(t, id, 0)
	test.ExpectEquality(t, assert.GoroutineID(), id)

	other := make(chan uint64)
	go func() {
		other <- assert.GoroutineID()
	}()
	test.ExpectInequality(t, <-other, id)
}

func TestThread(t *testing.T) {
	th := assert.NewThread()
	test.ExpectSuccess(t, th.Same())
	test.ExpectSuccess(t, th.Check("test"))

	done := make(chan bool)
	go func() {
		done <- th.Check("test")
	}()
	test.ExpectFailure(t, <-done)
}
