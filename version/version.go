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

// Package version reports the name and version of the program. The version
// number is set at link time:
//
//	go build -ldflags "-X github.com/jetsetilly/dumpevents/version.number=v0.1.0"
//
// Without a version number the version is worked out from the build
// information embedded by the Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "DumpEvents"

// set by the linker. if number is empty then the project was built without
// the -X flag
var number string

var (
	version  string
	revision string
)

// Version returns the version string, the revision string and whether this is a
// numbered release version.
//
// If the version string is "unreleased" then the project has been built from a
// vcs checkout without a version number. If the version string is "local" then
// there is no version number and no vcs information, which can happen when
// compiling with "go run ."
//
// A revision suffixed with "+dirty" means the source has been modified but
// not committed.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// Title returns the application name and version, suitable for a window
// title.
func Title() string {
	if version == number && number != "" {
		return fmt.Sprintf("%s %s", ApplicationName, version)
	}
	return fmt.Sprintf("%s (%s)", ApplicationName, version)
}

func init() {
	version, revision = fromBuildInfo(number)
}

func fromBuildInfo(number string) (string, string) {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	rev := "no revision information"
	if vcsRevision != "" {
		rev = vcsRevision
		if vcsModified {
			rev = fmt.Sprintf("%s+dirty", rev)
		}
	}

	switch {
	case number != "":
		return number, rev
	case vcs:
		return "unreleased", rev
	}
	return "local", rev
}
