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

// Package tuidump shows the columns of a dumper.Dumper in a terminal, using
// bubbletea.
//
// Keyboard, mouse and window size events come from the terminal. A terminal
// does not report key releases so every key press is followed immediately by
// a release. Joystick and game controller events come from SDL and are
// forwarded to the bubbletea program as messages.
//
// Fading is shown by drawing lines in a shade of grey.
package tuidump
