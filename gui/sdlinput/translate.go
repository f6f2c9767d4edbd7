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

package sdlinput

import (
	"github.com/jetsetilly/dumpevents/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// the userinput equivalent of every SDL window event
var windowActions = map[uint8]userinput.WindowAction{
	sdl.WINDOWEVENT_SHOWN:        userinput.WindowShown,
	sdl.WINDOWEVENT_HIDDEN:       userinput.WindowHidden,
	sdl.WINDOWEVENT_EXPOSED:      userinput.WindowExposed,
	sdl.WINDOWEVENT_MOVED:        userinput.WindowMoved,
	sdl.WINDOWEVENT_RESIZED:      userinput.WindowResized,
	sdl.WINDOWEVENT_SIZE_CHANGED: userinput.WindowSizeChanged,
	sdl.WINDOWEVENT_MINIMIZED:    userinput.WindowMinimized,
	sdl.WINDOWEVENT_MAXIMIZED:    userinput.WindowMaximized,
	sdl.WINDOWEVENT_RESTORED:     userinput.WindowRestored,
	sdl.WINDOWEVENT_ENTER:        userinput.WindowEnter,
	sdl.WINDOWEVENT_LEAVE:        userinput.WindowLeave,
	sdl.WINDOWEVENT_FOCUS_GAINED: userinput.WindowFocusGained,
	sdl.WINDOWEVENT_FOCUS_LOST:   userinput.WindowFocusLost,
	sdl.WINDOWEVENT_CLOSE:        userinput.WindowClose,
}

// Translate converts an SDL event that does not involve a change of device
// into the equivalent userinput event. Returns nil if the event is not of
// interest.
//
// Device events are handled by Source.Translate() because they change the
// set of open devices.
func Translate(ev sdl.Event) userinput.Event {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return userinput.EventQuit{}

	case *sdl.WindowEvent:
		act, ok := windowActions[ev.Event]
		if !ok {
			return nil
		}
		return userinput.EventWindow{
			Action: act,
			Width:  int(ev.Data1),
			Height: int(ev.Data2),
		}

	case *sdl.KeyboardEvent:
		return userinput.EventKeyboard{
			Key:    sdl.GetKeyName(ev.Keysym.Sym),
			Code:   int(ev.Keysym.Sym),
			Down:   ev.Type == sdl.KEYDOWN,
			Repeat: ev.Repeat != 0,
		}

	case *sdl.MouseMotionEvent:
		return userinput.EventMouseMotion{
			X:    int(ev.X),
			Y:    int(ev.Y),
			XRel: int(ev.XRel),
			YRel: int(ev.YRel),
		}

	case *sdl.MouseButtonEvent:
		return userinput.EventMouseButton{
			Button: int(ev.Button),
			Down:   ev.Type == sdl.MOUSEBUTTONDOWN,
		}

	case *sdl.MouseWheelEvent:
		return userinput.EventMouseWheel{
			X: int(ev.X),
			Y: int(ev.Y),
		}

	case *sdl.JoyAxisEvent:
		return userinput.EventJoyAxis{
			Instance: int32(ev.Which),
			Axis:     int(ev.Axis),
			Value:    int(ev.Value),
		}

	case *sdl.JoyHatEvent:
		return userinput.EventJoyHat{
			Instance: int32(ev.Which),
			Hat:      int(ev.Hat),
			Value:    int(ev.Value),
		}

	case *sdl.JoyBallEvent:
		return userinput.EventJoyBall{
			Instance: int32(ev.Which),
			Ball:     int(ev.Ball),
			XRel:     int(ev.XRel),
			YRel:     int(ev.YRel),
		}

	case *sdl.JoyButtonEvent:
		return userinput.EventJoyButton{
			Instance: int32(ev.Which),
			Button:   int(ev.Button),
			Down:     ev.State == sdl.PRESSED,
		}

	case *sdl.ControllerAxisEvent:
		return userinput.EventGamepadAxis{
			Instance: int32(ev.Which),
			Axis:     int(ev.Axis),
			Value:    int(ev.Value),
		}

	case *sdl.ControllerButtonEvent:
		return userinput.EventGamepadButton{
			Instance: int32(ev.Which),
			Button:   int(ev.Button),
			Down:     ev.State == sdl.PRESSED,
		}
	}

	return nil
}
