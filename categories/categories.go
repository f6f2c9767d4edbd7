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

// Package categories lists the five columns an input event can be logged to.
// The list is fixed.
package categories

// Category of an input event. The value of a Category is also the index of its
// column when displayed.
type Category int

// List of valid Category values.
const (
	Misc Category = iota
	Keyboard
	Mouse
	Joystick
	Gamepad
)

// Count is the number of categories.
const Count = 5

// List of all categories in column order.
var List = [Count]Category{Misc, Keyboard, Mouse, Joystick, Gamepad}

// String returns the column header label for the category.
func (c Category) String() string {
	switch c {
	case Misc:
		return "MISC"
	case Keyboard:
		return "KEYB"
	case Mouse:
		return "MOUSE"
	case Joystick:
		return "JOY"
	case Gamepad:
		return "SDL_CONTROLLER"
	}
	return "?"
}

// Valid returns false if the Category value is not one of the listed categories.
func (c Category) Valid() bool {
	return c >= Misc && c <= Gamepad
}
