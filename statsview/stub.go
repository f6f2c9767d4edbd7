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

//go:build !statsview

package statsview

import (
	"io"

	"github.com/jetsetilly/dumpevents/logger"
)

// DefaultAddress is used by Launch() if no address is given.
const DefaultAddress = ""

// Launch does nothing without the statsview build constraint.
func Launch(_ io.Writer, _ string) {
	logger.Log(logger.Allow, "statsview", "not available in this build")
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return false
}
