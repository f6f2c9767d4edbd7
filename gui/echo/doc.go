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

// Package echo runs the event viewer without a window. Every line added to a
// column is written to an io.Writer, usually stdout.
//
// Keyboard input is read from the controlling terminal, which is put into
// cbreak mode for the duration. A terminal does not report key releases so
// every key press is followed immediately by a release. Joystick and game
// controller events are polled from SDL.
package echo
