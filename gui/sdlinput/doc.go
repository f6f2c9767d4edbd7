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

// Package sdlinput is the source of input events for every presentation of
// the event viewer. It initialises SDL, translates SDL events into the types
// of the userinput package and keeps track of the joysticks and game
// controllers that are currently open.
//
// Joysticks and game controllers are opened when SDL reports that they have
// been added and closed when SDL reports that they have been removed. A game
// controller that is reported more than once is only opened once.
//
// The Source type should only be used from the thread that called NewSource().
// SDL requires that events are polled from the thread that initialised the
// video subsystem.
package sdlinput
