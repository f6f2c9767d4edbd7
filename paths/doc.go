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

// Package paths contains functions to prepare paths to DumpEvents resources,
// such as the preferences file and fonts.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate config directory.
//
//	pth, err := paths.ResourcePath("", "prefs.toml")
//
// For development builds the base path is ".dumpevents" in the current
// directory. For release builds, those built with the "release" build tag,
// the base path is "dumpevents" in the directory given by os.UserConfigDir().
// In both cases the directories are created if they do not already exist.
package paths
