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
	"fmt"

	"github.com/jetsetilly/dumpevents/logger"
)

// InlineCapacity is the number of entries that can be stored without a heap
// allocation. It is also the capacity a RingLog falls back to if heap storage
// cannot be allocated.
const InlineCapacity = 150

// DefaultCapacity is used when a RingLog is created with a capacity of zero
// or less.
const DefaultCapacity = InlineCapacity

// Allocator returns heap storage for n entries.
type Allocator func(n int) ([]Entry, error)

// defaultAllocator traps the runtime panic raised by an impossible allocation
// and returns it as an error.
func defaultAllocator(n int) (e []Entry, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return make([]Entry, n), nil
}

// storage is a small-buffer container. slots is always a slice of either the
// inline array or the heap slice.
type storage struct {
	inline [InlineCapacity]Entry
	heap   []Entry
	slots  []Entry
	alloc  Allocator
}

// reserve prepares the storage for n entries and returns the number of entries
// actually available. all slots are empty after the call.
func (s *storage) reserve(n int) int {
	if n <= InlineCapacity {
		s.heap = nil
		s.slots = s.inline[:n]
		clear(s.slots)
		return n
	}

	// reuse heap storage if it is large enough
	if cap(s.heap) >= n {
		s.slots = s.heap[:n]
		clear(s.slots)
		return n
	}

	alloc := s.alloc
	if alloc == nil {
		alloc = defaultAllocator
	}

	h, err := alloc(n)
	if err == nil && len(h) < n {
		err = fmt.Errorf("allocator returned %d entries", len(h))
	}
	if err != nil {
		logger.Logf(logger.Allow, "ringlog", "cannot allocate %d entries, using %d: %v", n, InlineCapacity, err)
		s.heap = nil
		s.slots = s.inline[:]
		clear(s.slots)
		return InlineCapacity
	}

	s.heap = h
	s.slots = h[:n]
	clear(s.slots)

	return n
}

// release the artifacts of every slot, whether or not the slot holds a valid
// entry.
func (s *storage) release() {
	for i := range s.slots {
		s.slots[i].release()
	}
}
