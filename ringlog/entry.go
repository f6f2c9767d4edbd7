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
	"time"
)

// Artifact is the presentation layer's cached rendering of an entry. The
// RingLog decides when the artifact is destroyed.
type Artifact interface {
	Destroy()
}

// Entry is a single line in the RingLog.
type Entry struct {
	line     string
	spawned  time.Time
	artifact Artifact
}

// Line returns the text of the entry.
func (e *Entry) Line() string {
	return e.line
}

// Spawned returns the time at which the entry was appended to the RingLog.
func (e *Entry) Spawned() time.Time {
	return e.spawned
}

// Artifact returns the rendered artifact for the entry. Returns nil if
// Materialize() has not been called since the entry was appended.
func (e *Entry) Artifact() Artifact {
	return e.artifact
}

// Materialize returns the existing artifact for the entry or, if there is
// none, creates one with the supplied function. An error from the create
// function is returned unchanged and the entry is left without an artifact.
func (e *Entry) Materialize(create func(line string) (Artifact, error)) (Artifact, error) {
	if e.artifact != nil {
		return e.artifact, nil
	}

	a, err := create(e.line)
	if err != nil {
		return nil, err
	}
	e.artifact = a

	return e.artifact, nil
}

// Fade returns the fade intensity of the entry at the specified time. The
// boolean result is false once the entry has fully faded.
func (e *Entry) Fade(f Fade, now time.Time) (uint8, bool) {
	return f.Intensity(now.Sub(e.spawned))
}

func (e *Entry) release() {
	if e.artifact != nil {
		e.artifact.Destroy()
		e.artifact = nil
	}
}
