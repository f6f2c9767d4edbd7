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
	"io"

	"github.com/jetsetilly/dumpevents/mapping"
	"github.com/veandco/go-sdl2/sdl"
)

// MappingDB is the SDL game controller mapping database. It implements the
// mapping.Database interface.
type MappingDB struct{}

// AddMapping implements the mapping.Database interface.
func (db *MappingDB) AddMapping(m string) error {
	if sdl.GameControllerAddMapping(m) < 0 {
		return sdlError()
	}
	return nil
}

// AddMappingsFromFile implements the mapping.Database interface.
func (db *MappingDB) AddMappingsFromFile(filename string) (int, error) {
	n := sdl.GameControllerAddMappingsFromFile(filename)
	if n < 0 {
		return 0, sdlError()
	}
	return n, nil
}

// AddMappingsFromReader implements the mapping.Database interface.
func (db *MappingDB) AddMappingsFromReader(r io.Reader) (int, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("sdl: %w", err)
	}
	if len(b) == 0 {
		return 0, nil
	}

	rw, err := sdl.RWFromMem(b)
	if err != nil {
		return 0, fmt.Errorf("sdl: %w", err)
	}

	// the RWops is freed by SDL
	n := sdl.GameControllerAddMappingsFromRW(rw, true)
	if n < 0 {
		return 0, sdlError()
	}
	return n, nil
}

// Devices implements the mapping.Database interface.
func (db *MappingDB) Devices() []mapping.Device {
	var devs []mapping.Device
	for i := 0; i < sdl.NumJoysticks(); i++ {
		devs = append(devs, mapping.Device{
			Index:          i,
			GUID:           sdl.JoystickGetGUIDString(sdl.JoystickGetDeviceGUID(i)),
			Name:           sdl.JoystickNameForIndex(i),
			GameController: sdl.IsGameController(i),
		})
	}
	return devs
}
