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

package categories_test

import (
	"testing"

	"github.com/jetsetilly/dumpevents/categories"
	"github.com/jetsetilly/dumpevents/test"
)

func TestList(t *testing.T) {
	test.ExpectEquality(t, len(categories.List), categories.Count)
	for i, c := range categories.List {
		test.ExpectEquality(t, int(c), i)
		test.ExpectSuccess(t, c.Valid())
	}
	test.ExpectFailure(t, categories.Category(-1).Valid())
	test.ExpectFailure(t, categories.Category(categories.Count).Valid())
}

func TestLabels(t *testing.T) {
	test.ExpectEquality(t, categories.Misc.String(), "MISC")
	test.ExpectEquality(t, categories.Keyboard.String(), "KEYB")
	test.ExpectEquality(t, categories.Mouse.String(), "MOUSE")
	test.ExpectEquality(t, categories.Joystick.String(), "JOY")
	test.ExpectEquality(t, categories.Gamepad.String(), "SDL_CONTROLLER")
	test.ExpectEquality(t, categories.Category(99).String(), "?")
}
