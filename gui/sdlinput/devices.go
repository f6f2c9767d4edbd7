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
	"errors"
	"fmt"

	"github.com/jetsetilly/dumpevents/controllers"
	"github.com/veandco/go-sdl2/sdl"
)

// Joystick is an open SDL joystick.
type Joystick struct {
	joy  *sdl.Joystick
	name string
	guid string
}

// InstanceID implements the controllers.Device interface.
func (j *Joystick) InstanceID() int32 {
	return int32(j.joy.InstanceID())
}

// Name implements the controllers.Device interface.
func (j *Joystick) Name() string {
	return j.name
}

// GUID returns the GUID of the joystick in the form used by SDL mappings.
func (j *Joystick) GUID() string {
	return j.guid
}

// Close implements the controllers.Device interface.
func (j *Joystick) Close() {
	j.joy.Close()
}

// Gamepad is an open SDL game controller.
type Gamepad struct {
	pad  *sdl.GameController
	name string
}

// InstanceID implements the controllers.Device interface.
func (g *Gamepad) InstanceID() int32 {
	return int32(g.pad.Joystick().InstanceID())
}

// Name implements the controllers.Device interface.
func (g *Gamepad) Name() string {
	return g.name
}

// Close implements the controllers.Device interface.
func (g *Gamepad) Close() {
	g.pad.Close()
}

// opener abstracts the opening of devices by device index.
type opener interface {
	openJoystick(index int) (controllers.Device, error)
	openGamepad(index int) (controllers.Device, error)
}

type sdlOpener struct{}

func (sdlOpener) openJoystick(index int) (controllers.Device, error) {
	joy := sdl.JoystickOpen(index)
	if joy == nil {
		return nil, sdlError()
	}
	return &Joystick{
		joy:  joy,
		name: joy.Name(),
		guid: sdl.JoystickGetGUIDString(joy.GUID()),
	}, nil
}

func (sdlOpener) openGamepad(index int) (controllers.Device, error) {
	pad := sdl.GameControllerOpen(index)
	if pad == nil {
		return nil, sdlError()
	}
	return &Gamepad{
		pad:  pad,
		name: pad.Name(),
	}, nil
}

// sdlError returns the most recent SDL error.
func sdlError() error {
	if err := sdl.GetError(); err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	return errors.New("sdl: unknown error")
}
