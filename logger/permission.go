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

package logger

// Permission implementations indicate whether the environment making a log
// request is allowed to create new log entries. Good for controlling when or if
// log entries are to be made
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (_ allow) AllowLogging() bool {
	return true
}

// Allow indicates that the logging request should be allowed. A good default to
// use if a log entry should always be made.
var Allow Permission = allow{}

// Verbosity is a Permission that allows logging when the verbosity level of
// the program is at least the value of the Verbosity instance.
//
// The level of the program is set with SetVerbosity().
type Verbosity int

// AllowLogging implements the Permission interface.
func (v Verbosity) AllowLogging() bool {
	return int(v) <= level
}

// list of verbosity levels used by the program
const (
	Info  Verbosity = 0
	Debug Verbosity = 2
)

// the current verbosity level of the program
var level int

// SetVerbosity sets the level against which Verbosity permissions are tested.
func SetVerbosity(v int) {
	level = v
}
