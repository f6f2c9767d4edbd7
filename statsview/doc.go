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

// Package statsview is an optional HTTP server offering runtime statistics of
// the event viewer. It is built only when the statsview build constraint is
// present. Without the constraint Launch() does nothing and Available()
// returns false.
//
// Underlying functionality is provided by "github.com/go-echarts/statsview".
//
// After launch, graphical statistics will be viewable at:
//
//	localhost:12680/debug/statsview
//
// And standard Go pprof statistics are available at:
//
//	localhost:12680/debug/pprof/
//
// Useful for checking that rendered text is released as lines scroll out of
// a column. The heap should not grow while events are arriving.
package statsview
