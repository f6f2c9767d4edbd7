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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Arguments are first given to NewArgs() and then parsed with Parse(). Flags
// are added before the call to Parse() in the same way as with the flag
// package.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("SDL", "TUI", "ECHO")
//	verbose := md.AddInt("v", 0, "verbosity level")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
// A mode is a special command line argument, following the flags, that puts
// the program into a different mode of operation. The first sub-mode is the
// default and is selected if no mode is named on the command line. Sub-mode
// comparisons are case insensitive.
//
// Once a mode has been selected, NewMode() is called and a further set of flags
// can be added for that mode before calling Parse() again. Modes can be
// chained as deep as required and the Path() function returns the list of
// modes selected so far.
//
//	switch md.Mode() {
//	case "TUI":
//		md.NewMode()
//		fps := md.AddInt("fps", 30, "frames per second")
//		md.Parse()
//	}
//
// Arguments that are neither flags nor a listed sub-mode are returned by
// RemainingArgs() and GetArg().
package modalflag
