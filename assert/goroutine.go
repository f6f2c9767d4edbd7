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

// Package assert helps to check that code is running where it is expected to
// be running. It should only ever be used for debugging or testing purposes.
package assert

import (
	"bytes"
	"runtime"
	"strconv"

	"github.com/jetsetilly/dumpevents/logger"
)

// GoroutineID returns an identifier for the calling goroutine. The result is
// different between goroutines and consistent for a given goroutine.
func GoroutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Thread remembers the goroutine it was created on. SDL functions must be
// called from the same goroutine that initialised SDL.
type Thread struct {
	id uint64
}

// NewThread is the preferred method of initialisation for the Thread type.
func NewThread() Thread {
	return Thread{id: GoroutineID()}
}

// Same returns true if it is called from the goroutine the Thread was created
// on.
func (th Thread) Same() bool {
	return th.id == GoroutineID()
}

// Check logs a debug entry if it is called from any goroutine other than the
// one the Thread was created on.
func (th Thread) Check(tag string) bool {
	if th.Same() {
		return true
	}
	logger.Logf(logger.Debug, tag, "called from goroutine %d (expected %d)", GoroutineID(), th.id)
	return false
}
