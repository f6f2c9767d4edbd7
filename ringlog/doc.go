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

// Package ringlog holds a fixed-capacity history of recent text lines. One
// RingLog is used for each column of the event viewer.
//
// Appending to a full RingLog evicts the oldest line. Lines are addressed
// relative to the oldest retained line, with index 0 being the oldest line and
// Len()-1 being the newest. Negative indices address from the newest end, with
// -1 being the newest line.
//
// Small logs (up to InlineCapacity lines) are stored in an array inside the
// RingLog itself. Larger logs are stored on the heap. If the heap storage
// cannot be allocated the RingLog falls back to the inline array. The RingLog
// never returns an error: it is used by a diagnostic overlay and should never
// stop the program it is instrumenting.
//
// Each Entry can own a "rendered artifact", usually a texture or surface
// created by the presentation layer. The artifact is created through the
// Materialize() function and is destroyed by the RingLog when the entry is
// evicted, or when the RingLog is resized, cleared or destroyed. The
// presentation layer must not hold on to an Entry or an Artifact across calls
// to Append(), Resize(), Clear() or Destroy().
package ringlog
