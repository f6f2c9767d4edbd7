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

// Package fonts locates the TrueType font used to draw the event columns.
//
// The font is not embedded in the executable. The search order is given by
// Search(): an explicit path, the directory named by the EnvPath environment
// variable, the directory of the executable (as reported by SDL), and finally
// the current working directory.
//
// GNU FreeMono is the default font. It is licenced under the GNU General
// Public License and is available from https://www.gnu.org/software/freefont/
package fonts
