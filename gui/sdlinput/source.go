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
	"fmt"
	"runtime"
	"time"

	"github.com/jetsetilly/dumpevents/assert"
	"github.com/jetsetilly/dumpevents/controllers"
	"github.com/jetsetilly/dumpevents/logger"
	"github.com/jetsetilly/dumpevents/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// Subsystems to initialise with NewSource(). Headless is sufficient when there
// is no SDL window.
const (
	Headless   = sdl.INIT_JOYSTICK | sdl.INIT_GAMECONTROLLER | sdl.INIT_EVENTS
	Everything = sdl.INIT_EVERYTHING
)

// Source translates SDL events into userinput events, opening and closing
// devices as required.
type Source struct {
	open   opener
	thread assert.Thread

	joysticks controllers.Pack[controllers.Device]
	gamepads  controllers.Pack[controllers.Device]
}

// NewSource is the preferred method of initialisation for the Source type.
// The SDL subsystems to initialise are given by flags.
func NewSource(flags uint32) (*Source, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(flags)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	var v sdl.Version
	sdl.VERSION(&v)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", v.Major, v.Minor, v.Patch)

	return &Source{
		open:   sdlOpener{},
		thread: assert.NewThread(),
	}, nil
}

// Mappings returns the database of game controller mappings. Mappings should
// be added before Start() is called.
func (src *Source) Mappings() *MappingDB {
	return &MappingDB{}
}

// Start enables joystick and game controller events. A controller added event
// is pushed onto the SDL queue for every attached game controller, so that
// controllers attached before the program started are opened and shown in the
// same way as controllers attached afterwards.
func (src *Source) Start() {
	sdl.JoystickEventState(sdl.ENABLE)
	sdl.GameControllerEventState(sdl.ENABLE)

	n := sdl.NumJoysticks()
	if n == 0 {
		logger.Log(logger.Allow, "sdl", "no joysticks/gamepads found")
	}

	for i := 0; i < n; i++ {
		if !sdl.IsGameController(i) {
			continue
		}
		_, err := sdl.PushEvent(&sdl.ControllerDeviceEvent{
			Type:  sdl.CONTROLLERDEVICEADDED,
			Which: sdl.JoystickID(i),
		})
		if err != nil {
			logger.Logf(logger.Allow, "sdl", "push controller #%d: %v", i, err)
		}
	}
}

// Poll drains the SDL event queue, passing each translated event to the
// handle function. Polling stops early if handle returns true, in which case
// Poll also returns true.
func (src *Source) Poll(handle func(userinput.Event) bool) bool {
	src.thread.Check("sdl")
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		if ue := src.Translate(ev); ue != nil {
			if handle(ue) {
				return true
			}
		}
	}
	return false
}

// Wait is like Poll but waits up to timeout for the first event.
func (src *Source) Wait(timeout time.Duration, handle func(userinput.Event) bool) bool {
	src.thread.Check("sdl")
	ev := sdl.WaitEventTimeout(int(timeout.Milliseconds()))
	if ev == nil {
		return false
	}
	if ue := src.Translate(ev); ue != nil {
		if handle(ue) {
			return true
		}
	}
	return src.Poll(handle)
}

// Translate converts the SDL event into a userinput event. Unlike the
// package-level Translate() function, device events are handled too,
// opening or closing the device. Returns nil if the event is not of interest.
func (src *Source) Translate(ev sdl.Event) userinput.Event {
	switch ev := ev.(type) {
	case *sdl.JoyDeviceAddedEvent:
		return src.joystickAdded(int(ev.Which))
	case *sdl.JoyDeviceRemovedEvent:
		return src.joystickRemoved(int32(ev.Which))
	case *sdl.ControllerDeviceEvent:
		switch ev.Type {
		case sdl.CONTROLLERDEVICEADDED:
			return src.gamepadAdded(int(ev.Which))
		case sdl.CONTROLLERDEVICEREMOVED:
			return src.gamepadRemoved(int32(ev.Which))
		case sdl.CONTROLLERDEVICEREMAPPED:
			return src.gamepadRemapped(int32(ev.Which))
		}
		return nil
	}
	return Translate(ev)
}

// the index in a device added event is the device index. SDL uses instance
// IDs for every other event
func (src *Source) joystickAdded(index int) userinput.Event {
	ev := userinput.EventJoyDevice{Action: userinput.DeviceAdded, Instance: -1}

	joy, err := src.open.openJoystick(index)
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "unable to open joystick #%d: %v", index, err)
		return ev
	}

	// SDL reference counts opened joysticks so closing a duplicate is safe
	instance := joy.InstanceID()
	if slot, ok := src.joysticks.Find(instance); ok {
		joy.Close()
		logger.Logf(logger.Allow, "sdl", "re-opening joystick (handle=%d, instance=%d)", slot, instance)
		return nil
	}

	slot, ok := src.joysticks.Add(joy)
	if !ok {
		joy.Close()
		logger.Logf(logger.Allow, "sdl", "out of handles while trying to open joystick #%d", index)
		return ev
	}

	ev.Instance = joy.InstanceID()
	ev.Name = joy.Name()
	logger.Logf(logger.Allow, "sdl", "opened joystick handle %d as instance #%d from index %d %q", slot, ev.Instance, index, ev.Name)

	return ev
}

func (src *Source) joystickRemoved(instance int32) userinput.Event {
	ev := userinput.EventJoyDevice{Action: userinput.DeviceRemoved, Instance: instance}

	joy, ok := src.joysticks.Remove(instance)
	if ok {
		ev.Name = joy.Name()
		joy.Close()
		logger.Logf(logger.Allow, "sdl", "closed joystick #%d %q", instance, ev.Name)
	}

	return ev
}

func (src *Source) gamepadAdded(index int) userinput.Event {
	pad, err := src.open.openGamepad(index)
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "unable to open game controller #%d: %v", index, err)
		return userinput.EventGamepadDevice{Action: userinput.DeviceAdded, Instance: -1}
	}

	instance := pad.InstanceID()

	// controllers attached at startup are reported by SDL and by Start(). the
	// second report is ignored
	if slot, ok := src.gamepads.Find(instance); ok {
		pad.Close()
		logger.Logf(logger.Allow, "sdl", "re-opening game controller (handle=%d, instance=%d)", slot, instance)
		return nil
	}

	slot, ok := src.gamepads.Add(pad)
	if !ok {
		pad.Close()
		logger.Logf(logger.Allow, "sdl", "out of handles trying to open game controller #%d", index)
		return userinput.EventGamepadDevice{Action: userinput.DeviceAdded, Instance: -1}
	}

	logger.Logf(logger.Allow, "sdl", "opened game controller (handle=%d, instance=%d, index=%d) %q", slot, instance, index, pad.Name())

	return userinput.EventGamepadDevice{
		Action:   userinput.DeviceAdded,
		Instance: instance,
		Name:     pad.Name(),
	}
}

func (src *Source) gamepadRemoved(instance int32) userinput.Event {
	ev := userinput.EventGamepadDevice{Action: userinput.DeviceRemoved, Instance: instance}

	pad, ok := src.gamepads.Remove(instance)
	if ok {
		ev.Name = pad.Name()
		pad.Close()
		logger.Logf(logger.Allow, "sdl", "closed game controller (instance=%d) %q", instance, ev.Name)
	}

	return ev
}

func (src *Source) gamepadRemapped(instance int32) userinput.Event {
	ev := userinput.EventGamepadDevice{Action: userinput.DeviceRemapped, Instance: instance}

	if pad, ok := src.gamepads.Get(instance); ok {
		ev.Name = pad.Name()
	}
	logger.Logf(logger.Allow, "sdl", "remapping on game controller (instance=%d)", instance)

	return ev
}

// Joysticks returns the number of open joysticks.
func (src *Source) Joysticks() int {
	return src.joysticks.Len()
}

// Gamepads returns the number of open game controllers.
func (src *Source) Gamepads() int {
	return src.gamepads.Len()
}

// Destroy closes every open device and shuts down SDL.
func (src *Source) Destroy() {
	src.thread.Check("sdl")
	src.joysticks.CloseAll()
	src.gamepads.CloseAll()
	sdl.Quit()
}
