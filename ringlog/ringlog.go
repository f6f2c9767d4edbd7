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

package ringlog

import (
	"strings"
	"time"
	"unicode/utf8"
)

// MaxLineLength is the maximum length of a line in bytes. Longer lines are
// truncated.
const MaxLineLength = 256

// RingLog is a fixed-capacity circular log of lines. The zero value is not
// usable; use New() or NewWithAllocator(). A RingLog must not be copied.
//
// Valid entries occupy slots [head, head+count) modulo the capacity.
type RingLog struct {
	store storage
	head  int
	count int
	now   func() time.Time
}

// New is the preferred method of initialisation for the RingLog type. A
// capacity of zero or less selects DefaultCapacity.
func New(capacity int) *RingLog {
	return NewWithAllocator(capacity, nil)
}

// NewWithAllocator is the same as New() but with an alternative allocator for
// heap storage. A nil allocator selects the default allocator.
func NewWithAllocator(capacity int, alloc Allocator) *RingLog {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	l := &RingLog{
		now: time.Now,
	}
	l.store.alloc = alloc
	l.store.reserve(capacity)

	return l
}

// SetClock changes the function used to timestamp new entries. A nil function
// restores the default clock.
func (l *RingLog) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	l.now = now
}

// Len returns the number of valid entries.
func (l *RingLog) Len() int {
	return l.count
}

// Cap returns the maximum number of entries.
func (l *RingLog) Cap() int {
	return len(l.store.slots)
}

// line endings are removed because an entry is always rendered as a single row
var lineEndings = strings.NewReplacer("\r", "", "\n", "")

// truncate line to MaxLineLength without splitting a UTF-8 sequence.
func truncate(line string) string {
	line = lineEndings.Replace(line)
	if len(line) <= MaxLineLength {
		return line
	}

	n := MaxLineLength
	for n > 0 && !utf8.RuneStart(line[n]) {
		n--
	}

	// clone so that the retained line does not keep a long string alive
	return strings.Clone(line[:n])
}

// Append a line to the log. If the log is full the oldest line is evicted.
// Lines longer than MaxLineLength are truncated.
func (l *RingLog) Append(line string) {
	n := (l.head + l.count) % l.Cap()

	// when the log is full the next free slot is the oldest entry's slot. the
	// artifact of the evicted entry is released before the slot is reused
	e := &l.store.slots[n]
	e.release()
	e.line = truncate(line)
	e.spawned = l.now()

	l.count++
	if l.count > l.Cap() {
		l.head = (l.head + 1) % l.Cap()
		l.count--
	}
}

// Get returns the entry at the logical position index. Index 0 is the oldest
// entry; index -1 is the newest entry. Returns nil if the index is out of
// range.
func (l *RingLog) Get(index int) *Entry {
	if index >= l.count || index < -l.count {
		return nil
	}
	if index < 0 {
		index += l.count
	}

	ofs := l.head + index
	if ofs >= l.Cap() {
		ofs %= l.Cap()
	}

	return &l.store.slots[ofs]
}

// Each calls f for every valid entry from oldest to newest. Iteration stops if
// f returns false.
func (l *RingLog) Each(f func(i int, e *Entry) bool) {
	for i := 0; i < l.count; i++ {
		if !f(i, l.Get(i)) {
			return
		}
	}
}

// Lines returns a copy of every valid line from oldest to newest.
func (l *RingLog) Lines() []string {
	s := make([]string, 0, l.count)
	l.Each(func(_ int, e *Entry) bool {
		s = append(s, e.line)
		return true
	})
	return s
}

// Resize changes the capacity of the log. All entries are discarded and their
// artifacts released. A capacity of less than one is treated as one.
//
// Returns the resulting capacity, which will be InlineCapacity if heap storage
// for a larger capacity could not be allocated.
func (l *RingLog) Resize(capacity int) int {
	if capacity < 1 {
		capacity = 1
	}

	l.store.release()
	l.head = 0
	l.count = 0

	return l.store.reserve(capacity)
}

// Clear discards all entries and releases their artifacts. The capacity is
// unchanged.
func (l *RingLog) Clear() {
	l.store.release()
	clear(l.store.slots)
	l.head = 0
	l.count = 0
}

// Destroy discards all entries, releases their artifacts and returns any heap
// storage. The RingLog is usable afterwards with a capacity of
// DefaultCapacity.
func (l *RingLog) Destroy() {
	l.store.release()
	l.head = 0
	l.count = 0
	l.store.reserve(DefaultCapacity)
}
