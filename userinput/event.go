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

package userinput

import (
	"github.com/jetsetilly/dumpevents/categories"
)

// Event is the interface implemented by every input event type.
type Event interface {
	// the column the event is logged to
	Category() categories.Category

	// the line of text representing the event in the column
	String() string
}

// EventQuit is sent when the user has asked to close the program.
type EventQuit struct{}

// WindowAction describes what happened to the window in an EventWindow.
type WindowAction int

// List of valid WindowAction values.
const (
	WindowShown WindowAction = iota
	WindowHidden
	WindowExposed
	WindowMoved
	WindowResized
	WindowSizeChanged
	WindowMinimized
	WindowMaximized
	WindowRestored
	WindowEnter
	WindowLeave
	WindowFocusGained
	WindowFocusLost
	WindowClose
)

// EventWindow is sent when the state of the window has changed. Width and
// Height only have meaning for WindowResized and WindowSizeChanged.
type EventWindow struct {
	Action WindowAction
	Width  int
	Height int
}

// EventKeyboard is sent when a key is pressed or released. Key is the name
// of the key and Code is the numeric key code, used when Key is empty.
type EventKeyboard struct {
	Key    string
	Code   int
	Down   bool
	Repeat bool
}

// EventMouseMotion is sent when the mouse has moved. X and Y are absolute
// positions.
type EventMouseMotion struct {
	X    int
	Y    int
	XRel int
	YRel int
}

// EventMouseButton is sent when a mouse button is pressed or released.
type EventMouseButton struct {
	Button int
	Down   bool
}

// EventMouseWheel is sent when the mouse wheel is scrolled.
type EventMouseWheel struct {
	X int
	Y int
}

// EventJoyAxis is sent when an axis of a joystick has moved.
type EventJoyAxis struct {
	Instance int32
	Axis     int
	Value    int
}

// EventJoyHat is sent when a hat of a joystick has changed position.
type EventJoyHat struct {
	Instance int32
	Hat      int
	Value    int
}

// EventJoyBall is sent when a trackball of a joystick has moved.
type EventJoyBall struct {
	Instance int32
	Ball     int
	XRel     int
	YRel     int
}

// EventJoyButton is sent when a joystick button is pressed or released.
type EventJoyButton struct {
	Instance int32
	Button   int
	Down     bool
}

// DeviceAction describes what happened to a device in an EventJoyDevice or
// EventGamepadDevice.
type DeviceAction int

// List of valid DeviceAction values.
const (
	DeviceAdded DeviceAction = iota
	DeviceRemoved
	DeviceRemapped
)

// EventJoyDevice is sent when a joystick is attached or detached.
type EventJoyDevice struct {
	Action   DeviceAction
	Instance int32
	Name     string
}

// EventGamepadAxis is sent when an axis of a game controller has moved.
type EventGamepadAxis struct {
	Instance int32
	Axis     int
	Value    int
}

// EventGamepadButton is sent when a game controller button is pressed or
// released.
type EventGamepadButton struct {
	Instance int32
	Button   int
	Down     bool
}

// EventGamepadDevice is sent when a game controller is attached, detached or
// has had its mapping changed.
type EventGamepadDevice struct {
	Action   DeviceAction
	Instance int32
	Name     string
}

// EventTick is a periodic event created by the main loop rather than by
// the user. Delta is the number of milliseconds since the previous tick.
type EventTick struct {
	Cycle int
	Delta int
}
