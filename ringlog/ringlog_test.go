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

package ringlog_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/dumpevents/ringlog"
	"github.com/jetsetilly/dumpevents/test"
)

// artifact records how many times it has been destroyed
type artifact struct {
	destroyed int
}

func (a *artifact) Destroy() {
	a.destroyed++
}

func materialize(t *testing.T, e *ringlog.Entry) *artifact {
	t.Helper()
	if e == nil {
		t.Fatalf("cannot materialize nil entry")
	}
	a, err := e.Materialize(func(line string) (ringlog.Artifact, error) {
		return &artifact{}, nil
	})
	test.DemandSuccess(t, err)
	return a.(*artifact)
}

func TestAppendWithinCapacity(t *testing.T) {
	l := ringlog.New(10)
	test.ExpectEquality(t, l.Cap(), 10)
	test.ExpectEquality(t, l.Len(), 0)

	for i := range 7 {
		l.Append(fmt.Sprintf("Line %d", i))
	}
	test.ExpectEquality(t, l.Len(), 7)

	for i := range 7 {
		test.ExpectEquality(t, l.Get(i).Line(), fmt.Sprintf("Line %d", i), i)
	}

	// filling the log exactly
	for i := 7; i < 10; i++ {
		l.Append(fmt.Sprintf("Line %d", i))
	}
	test.ExpectEquality(t, l.Len(), 10)
	test.ExpectEquality(t, l.Get(0).Line(), "Line 0")
	test.ExpectEquality(t, l.Get(9).Line(), "Line 9")
}

func TestOverflow(t *testing.T) {
	l := ringlog.New(3)
	for i := range 16 {
		l.Append(fmt.Sprintf("Line %d", i))
	}

	test.ExpectEquality(t, l.Len(), 3)
	test.ExpectEquality(t, l.Get(0).Line(), "Line 13")
	test.ExpectEquality(t, l.Get(1).Line(), "Line 14")
	test.ExpectEquality(t, l.Get(2).Line(), "Line 15")

	// nothing beyond the valid entries
	for i := 3; i < 8; i++ {
		test.ExpectSuccess(t, l.Get(i) == nil, i)
	}
}

func TestOverflowGeneral(t *testing.T) {
	for _, capacity := range []int{1, 2, 5, 149, 150, 151, 300} {
		for _, n := range []int{capacity + 1, capacity * 2, capacity*3 + 1} {
			l := ringlog.New(capacity)
			for i := range n {
				l.Append(fmt.Sprintf("%d", i))
			}
			test.ExpectEquality(t, l.Len(), capacity, capacity, n)
			test.ExpectEquality(t, l.Get(0).Line(), fmt.Sprintf("%d", n-capacity), capacity, n)
			test.ExpectEquality(t, l.Get(capacity-1).Line(), fmt.Sprintf("%d", n-1), capacity, n)
		}
	}
}

func TestNegativeIndex(t *testing.T) {
	l := ringlog.New(4)
	test.ExpectSuccess(t, l.Get(-1) == nil)
	test.ExpectSuccess(t, l.Get(0) == nil)

	for i := range 6 {
		l.Append(fmt.Sprintf("Line %d", i))
		test.ExpectEquality(t, l.Get(-1), l.Get(l.Len()-1))
		test.ExpectEquality(t, l.Get(-1).Line(), fmt.Sprintf("Line %d", i))
	}

	test.ExpectEquality(t, l.Get(-4).Line(), "Line 2")
	test.ExpectSuccess(t, l.Get(-5) == nil)
}

func TestOutOfRange(t *testing.T) {
	l := ringlog.New(5)
	l.Append("a")
	l.Append("b")
	test.ExpectSuccess(t, l.Get(l.Len()) == nil)
	test.ExpectSuccess(t, l.Get(l.Len()+1) == nil)
	test.ExpectSuccess(t, l.Get(100) == nil)
}

func TestDefaultCapacity(t *testing.T) {
	test.ExpectEquality(t, ringlog.New(0).Cap(), ringlog.DefaultCapacity)
	test.ExpectEquality(t, ringlog.New(-10).Cap(), ringlog.DefaultCapacity)
	test.ExpectSuccess(t, ringlog.DefaultCapacity > 0)
}

func TestTruncation(t *testing.T) {
	l := ringlog.New(2)

	l.Append(strings.Repeat("x", ringlog.MaxLineLength*2))
	test.ExpectEquality(t, len(l.Get(0).Line()), ringlog.MaxLineLength)

	// exactly the maximum length is stored unchanged
	s := strings.Repeat("y", ringlog.MaxLineLength)
	l.Append(s)
	test.ExpectEquality(t, l.Get(-1).Line(), s)

	// multi-byte characters are never split
	l.Append("a" + strings.Repeat("é", ringlog.MaxLineLength))
	v := l.Get(-1).Line()
	test.ExpectSuccess(t, len(v) <= ringlog.MaxLineLength)
	test.ExpectSuccess(t, len(v) >= ringlog.MaxLineLength-1)
	test.ExpectSuccess(t, !strings.ContainsRune(v, '�'))

	// line endings are stripped
	l.Append("foo\nbar\n")
	test.ExpectEquality(t, l.Get(-1).Line(), "foobar")
	l.Append("foo\r\nbar\r\n")
	test.ExpectEquality(t, l.Get(-1).Line(), "foobar")
	l.Append("\rbaz")
	test.ExpectEquality(t, l.Get(-1).Line(), "baz")
}

func TestResize(t *testing.T) {
	l := ringlog.New(3)
	for i := range 5 {
		l.Append(fmt.Sprintf("Line %d", i))
	}

	for _, n := range []int{1, 3, 10, ringlog.InlineCapacity, ringlog.InlineCapacity + 1, 500, 2} {
		test.ExpectEquality(t, l.Resize(n), n)
		test.ExpectEquality(t, l.Cap(), n)
		test.ExpectEquality(t, l.Len(), 0)
		test.ExpectSuccess(t, l.Get(0) == nil)

		l.Append("fresh")
		test.ExpectEquality(t, l.Get(0).Line(), "fresh")
		l.Append("another")
	}

	// resize to nothing is the same as resize to one
	test.ExpectEquality(t, l.Resize(0), 1)
	test.ExpectEquality(t, l.Resize(-1), 1)
}

func TestAllocationFailure(t *testing.T) {
	fail := func(n int) ([]ringlog.Entry, error) {
		return nil, errors.New("out of memory")
	}

	l := ringlog.NewWithAllocator(1000, fail)
	test.ExpectEquality(t, l.Cap(), ringlog.InlineCapacity)

	for i := range 200 {
		l.Append(fmt.Sprintf("%d", i))
	}
	test.ExpectEquality(t, l.Len(), ringlog.InlineCapacity)
	test.ExpectEquality(t, l.Get(-1).Line(), "199")

	// small resizes never need the allocator
	test.ExpectEquality(t, l.Resize(20), 20)

	// large resizes fall back to the inline capacity
	test.ExpectEquality(t, l.Resize(1000), ringlog.InlineCapacity)

	// an allocator that returns too little storage is treated as a failure
	short := func(n int) ([]ringlog.Entry, error) {
		return make([]ringlog.Entry, n/2), nil
	}
	l = ringlog.NewWithAllocator(1000, short)
	test.ExpectEquality(t, l.Cap(), ringlog.InlineCapacity)
}

func TestImpossibleAllocation(t *testing.T) {
	// the default allocator recovers from the runtime panic
	l := ringlog.New(int(^uint(0) >> 1))
	test.ExpectEquality(t, l.Cap(), ringlog.InlineCapacity)
	l.Append("still usable")
	test.ExpectEquality(t, l.Get(0).Line(), "still usable")
}

func TestArtifactEviction(t *testing.T) {
	l := ringlog.New(2)
	l.Append("a")
	l.Append("b")

	a := materialize(t, l.Get(0))
	b := materialize(t, l.Get(1))

	// materializing again returns the existing artifact
	again := materialize(t, l.Get(0))
	test.ExpectEquality(t, again, a)

	// "a" is evicted and its artifact destroyed
	l.Append("c")
	test.ExpectEquality(t, a.destroyed, 1)
	test.ExpectEquality(t, b.destroyed, 0)
	test.ExpectSuccess(t, l.Get(1).Artifact() == nil)

	c := materialize(t, l.Get(1))

	// resize releases everything
	l.Resize(4)
	test.ExpectEquality(t, b.destroyed, 1)
	test.ExpectEquality(t, c.destroyed, 1)
	test.ExpectEquality(t, a.destroyed, 1)
}

func TestArtifactClearAndDestroy(t *testing.T) {
	l := ringlog.New(3)
	l.Append("a")
	l.Append("b")
	a := materialize(t, l.Get(0))
	b := materialize(t, l.Get(1))

	l.Clear()
	test.ExpectEquality(t, l.Len(), 0)
	test.ExpectEquality(t, l.Cap(), 3)
	test.ExpectEquality(t, a.destroyed, 1)
	test.ExpectEquality(t, b.destroyed, 1)

	// new entries in old slots start without an artifact
	l.Append("c")
	test.ExpectSuccess(t, l.Get(0).Artifact() == nil)
	c := materialize(t, l.Get(0))

	l.Destroy()
	test.ExpectEquality(t, c.destroyed, 1)
	test.ExpectEquality(t, l.Len(), 0)
	test.ExpectEquality(t, l.Cap(), ringlog.DefaultCapacity)

	// nothing is destroyed twice
	test.ExpectEquality(t, a.destroyed, 1)
	test.ExpectEquality(t, b.destroyed, 1)
}

func TestMaterializeError(t *testing.T) {
	l := ringlog.New(1)
	l.Append("a")

	_, err := l.Get(0).Materialize(func(line string) (ringlog.Artifact, error) {
		return nil, errors.New("no renderer")
	})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, l.Get(0).Artifact() == nil)

	var seen string
	_, err = l.Get(0).Materialize(func(line string) (ringlog.Artifact, error) {
		seen = line
		return &artifact{}, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, seen, "a")
}

func TestClock(t *testing.T) {
	t0 := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	now := t0

	l := ringlog.New(2)
	l.SetClock(func() time.Time { return now })

	l.Append("a")
	now = now.Add(time.Second)
	l.Append("b")

	test.ExpectEquality(t, l.Get(0).Spawned(), t0)
	test.ExpectEquality(t, l.Get(1).Spawned(), t0.Add(time.Second))
}

func TestEachAndLines(t *testing.T) {
	l := ringlog.New(3)
	for i := range 5 {
		l.Append(fmt.Sprintf("%d", i))
	}

	var s []string
	l.Each(func(i int, e *ringlog.Entry) bool {
		s = append(s, e.Line())
		return true
	})
	test.ExpectEquality(t, strings.Join(s, ","), "2,3,4")
	test.ExpectEquality(t, strings.Join(l.Lines(), ","), "2,3,4")

	// stop early
	var ct int
	l.Each(func(i int, e *ringlog.Entry) bool {
		ct++
		return i < 1
	})
	test.ExpectEquality(t, ct, 2)
}
