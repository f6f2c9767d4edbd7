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

// Package logger is the central log for diagnostic messages. It is not the
// log of input events shown by the event viewer, for that see the ringlog
// package.
//
// Entries are made up of a tag and a detail string. The tag should be short
// and identify the part of the program making the entry. Whether an entry is
// made depends on the Permission argument. The Allow value can be used when
// an entry should always be made. The Verbosity type can be used to make
// entries only when the program has been started with a high enough verbosity
// level.
package logger
