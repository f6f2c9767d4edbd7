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
	"fmt"

	"github.com/jetsetilly/dumpevents/categories"
)

// MaxNameLength is the maximum number of glyphs in a device name when it
// appears in a column.
const MaxNameLength = 11

// TruncateName shortens a device name to MaxNameLength glyphs.
func TruncateName(name string) string {
	n := 0
	for i := range name {
		if n == MaxNameLength {
			return name[:i]
		}
		n++
	}
	return name
}

func (a WindowAction) String() string {
	switch a {
	case WindowShown:
		return "SHOWN"
	case WindowHidden:
		return "HIDDEN"
	case WindowExposed:
		return "EXPOSED"
	case WindowMoved:
		return "MOVED"
	case WindowResized:
		return "RESIZED"
	case WindowSizeChanged:
		return "SIZE_CHANGED"
	case WindowMinimized:
		return "MINIMIZED"
	case WindowMaximized:
		return "MAXIMIZED"
	case WindowRestored:
		return "RESTORED"
	case WindowEnter:
		return "ENTER"
	case WindowLeave:
		return "LEAVE"
	case WindowFocusGained:
		return "FOCUS_GAINED"
	case WindowFocusLost:
		return "FOCUS_LOST"
	case WindowClose:
		return "CLOSE"
	}
	return "?"
}

func (a DeviceAction) String() string {
	switch a {
	case DeviceAdded:
		return "ADD"
	case DeviceRemoved:
		return "REMOVE"
	case DeviceRemapped:
		return "REMAP"
	}
	return "?"
}

func pressRelease(down bool) string {
	if down {
		return "PRESS"
	}
	return "RELEASE"
}

func (ev EventQuit) Category() categories.Category { return categories.Misc }
func (ev EventQuit) String() string                { return "QUIT" }

func (ev EventWindow) Category() categories.Category { return categories.Misc }
func (ev EventWindow) String() string {
	return fmt.Sprintf("WIN %s", ev.Action)
}

func (ev EventKeyboard) Category() categories.Category { return categories.Keyboard }
func (ev EventKeyboard) String() string {
	k := ev.Key
	if k == "" {
		k = fmt.Sprintf("(%d)", ev.Code)
	}
	return fmt.Sprintf("%s: %s", pressRelease(ev.Down), k)
}

func (ev EventMouseMotion) Category() categories.Category { return categories.Mouse }
func (ev EventMouseMotion) String() string {
	return fmt.Sprintf("MV: %+d%+d:(%d,%d)", ev.XRel, ev.YRel, ev.X, ev.Y)
}

func (ev EventMouseButton) Category() categories.Category { return categories.Mouse }
func (ev EventMouseButton) String() string {
	return fmt.Sprintf("%s: %d", pressRelease(ev.Down), ev.Button)
}

func (ev EventMouseWheel) Category() categories.Category { return categories.Mouse }
func (ev EventMouseWheel) String() string {
	return fmt.Sprintf("WHEEL: %+d%+d", ev.X, ev.Y)
}

func (ev EventJoyAxis) Category() categories.Category { return categories.Joystick }
func (ev EventJoyAxis) String() string {
	return fmt.Sprintf("%d/AXIS/%d: %d", ev.Instance, ev.Axis, ev.Value)
}

func (ev EventJoyHat) Category() categories.Category { return categories.Joystick }
func (ev EventJoyHat) String() string {
	return fmt.Sprintf("%d/HAT/%d: %d", ev.Instance, ev.Hat, ev.Value)
}

func (ev EventJoyBall) Category() categories.Category { return categories.Joystick }
func (ev EventJoyBall) String() string {
	return fmt.Sprintf("%d/BALL/%d: %+d%+d", ev.Instance, ev.Ball, ev.XRel, ev.YRel)
}

func (ev EventJoyButton) Category() categories.Category { return categories.Joystick }
func (ev EventJoyButton) String() string {
	return fmt.Sprintf("%d/%s: %d", ev.Instance, pressRelease(ev.Down), ev.Button)
}

func (ev EventJoyDevice) Category() categories.Category { return categories.Joystick }
func (ev EventJoyDevice) String() string {
	return fmt.Sprintf("%s: %d=%s", ev.Action, ev.Instance, TruncateName(ev.Name))
}

func (ev EventGamepadAxis) Category() categories.Category { return categories.Gamepad }
func (ev EventGamepadAxis) String() string {
	return fmt.Sprintf("%d/AXIS/%d: %d", ev.Instance, ev.Axis, ev.Value)
}

func (ev EventGamepadButton) Category() categories.Category { return categories.Gamepad }
func (ev EventGamepadButton) String() string {
	return fmt.Sprintf("%d/%s: %d", ev.Instance, pressRelease(ev.Down), ev.Button)
}

func (ev EventGamepadDevice) Category() categories.Category { return categories.Gamepad }
func (ev EventGamepadDevice) String() string {
	return fmt.Sprintf("%s: %d=%s", ev.Action, ev.Instance, TruncateName(ev.Name))
}

func (ev EventTick) Category() categories.Category { return categories.Misc }
func (ev EventTick) String() string {
	return fmt.Sprintf("Tick %d (+%d)", ev.Cycle, ev.Delta)
}
