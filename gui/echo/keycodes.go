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

package echo

import (
	"unicode"
	"unicode/utf8"
)

// list of ASCII codes for non-alphanumeric characters
const (
	keyTab            = 9
	keyLineFeed       = 10
	keyCarriageReturn = 13
	keyEsc            = 27
	keySpace          = 32
	keyBackspace      = 8
	keyDelete         = 127
)

// list of ASCII codes that can follow keyEsc
const (
	escCursor = '['
)

// list of ASCII codes that can follow escCursor
var cursorKeys = map[byte]string{
	'A': "Up",
	'B': "Down",
	'C': "Right",
	'D': "Left",
	'H': "Home",
	'F': "End",
}

// decodeKey returns the name of the key, in the form used by SDL, for the
// bytes read from the terminal in a single read. The code is the first byte,
// or the rune for a multi-byte character. An empty name means that the key has
// no name.
func decodeKey(b []byte) (string, int) {
	if len(b) == 0 {
		return "", 0
	}

	switch b[0] {
	case keyEsc:
		if len(b) == 1 {
			return "Escape", keyEsc
		}
		if len(b) == 3 && b[1] == escCursor {
			if n, ok := cursorKeys[b[2]]; ok {
				return n, keyEsc
			}
		}
		return "", keyEsc
	case keyTab:
		return "Tab", keyTab
	case keyLineFeed, keyCarriageReturn:
		return "Return", keyCarriageReturn
	case keySpace:
		return "Space", keySpace
	case keyBackspace, keyDelete:
		return "Backspace", keyBackspace
	}

	r, _ := utf8.DecodeRune(b)
	if r == utf8.RuneError || !unicode.IsPrint(r) {
		return "", int(b[0])
	}

	return string(unicode.ToUpper(r)), int(r)
}
