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

// Package sdldump shows the columns of a dumper.Dumper in an SDL window.
//
// Every line is rendered once, with SDL_ttf, when it first appears in a column.
// The rendered texture is attached to the ringlog.Entry and is destroyed by
// the RingLog when the entry is evicted. Fading is achieved by changing the
// alpha modulation of the texture.
//
// The window, renderer and the main loop must all be on the main thread.
package sdldump
