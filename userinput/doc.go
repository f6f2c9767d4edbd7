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

// Package userinput defines the input events that can be shown by the event
// viewer. Events are produced by a GUI implementation, which is responsible
// for translating the events of the underlying platform into the types in
// this package.
//
// Every Event implementation knows which column it belongs to, through the
// Category() function, and how it appears in that column, through String().
//
// The GUI implementation in use during development was SDL and so there will
// be a bias towards that system.
package userinput
