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

// Package prefs facilitates the storage of preferential values in the
// program. Values are of type Bool, Int, Float or String, each of which can
// have hook functions run before and after a new value is set.
//
// The Disk type collates preference values under a key and saves them to
// and loads them from a TOML file.
//
//	var fadePeriod prefs.Int
//
//	dsk, _ := prefs.NewDisk("dumpevents.toml")
//	dsk.Add("dumper.fade.period", &fadePeriod)
//	dsk.Load()
//
// Preferences can be overridden from the command line. A string of the form
// "key::value; key::value" is pushed onto the command line stack with
// PushCommandLineStack() before the call to Load(). Values on the stack are
// applied after the values from the file.
package prefs
