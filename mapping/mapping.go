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

// Package mapping adds game controller mappings to a mapping database before
// any game controller is opened. A mapping describes how the buttons and axes
// of a joystick correspond to the buttons and axes of a standard game
// controller.
//
// Mappings can come from a file, from the standard input, from an
// environment variable or from a literal string. The Help protocol adds no
// mappings and instead lists the attached joysticks so that the user can see
// the GUID needed to write a mapping.
package mapping

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/dumpevents/curated"
	"github.com/jetsetilly/dumpevents/logger"
)

// DefaultEnv is the environment variable used by the Env protocol if no other
// variable is named.
const DefaultEnv = "SDL_DUMPEVENTS_MAPPING"

// Protocol describes where mappings come from.
type Protocol int

// List of valid Protocol values.
const (
	None Protocol = iota
	Literal
	Env
	File
	Help
)

func (p Protocol) String() string {
	switch p {
	case None:
		return "none"
	case Literal:
		return "literal"
	case Env:
		return "env"
	case File:
		return "file"
	case Help:
		return "help"
	}
	return "?"
}

// Request for mappings to be added. The meaning of Locator depends on the
// Protocol:
//
//	Literal: the mapping string
//	Env: the name of the environment variable (empty for DefaultEnv)
//	File: the file name (empty for stdin)
type Request struct {
	Protocol Protocol
	Locator  string
}

func (req Request) String() string {
	if req.Locator == "" {
		return req.Protocol.String()
	}
	return fmt.Sprintf("%s: %s", req.Protocol, req.Locator)
}

// Device describes an attached joystick.
type Device struct {
	Index          int
	GUID           string
	Name           string
	GameController bool
}

func (d Device) String() string {
	return fmt.Sprintf("JS #%d: GUID=%s (%s)", d.Index, d.GUID, d.Name)
}

// Database is the destination for mappings. It is implemented by the GUI.
type Database interface {
	// add a single mapping
	AddMapping(mapping string) error

	// add every mapping in the file or in the io.Reader. returns the number of
	// mappings added
	AddMappingsFromFile(filename string) (int, error)
	AddMappingsFromReader(r io.Reader) (int, error)

	// list of attached joysticks
	Devices() []Device
}

// Sentinal error patterns.
const (
	// the environment variable is not set or is empty
	EmptyEnvironment = "mapping: environment variable %s is empty"

	// Database returned an error
	DatabaseError = "mapping: %s: %v"
)

// Apply the request to the Database. Returns true if the program should stop
// after the request has been applied, which is the case for the Help
// protocol.
//
// The stdin argument is used for the File protocol when there is no file
// name. The getenv function is used for the Env protocol.
func Apply(req Request, db Database, stdin io.Reader, getenv func(string) string) (bool, error) {
	switch req.Protocol {
	case None:
		return false, nil

	case Literal:
		logger.Logf(logger.Allow, "mapping", "loading mapping %q", req.Locator)
		if err := db.AddMapping(req.Locator); err != nil {
			return false, curated.Errorf(DatabaseError, req.Protocol, err)
		}

	case Env:
		name := req.Locator
		if name == "" {
			name = DefaultEnv
		}
		logger.Logf(logger.Allow, "mapping", "loading mapping from env %s", name)
		m := strings.TrimSpace(getenv(name))
		if m == "" {
			return false, curated.Errorf(EmptyEnvironment, name)
		}
		if err := db.AddMapping(m); err != nil {
			return false, curated.Errorf(DatabaseError, req.Protocol, err)
		}

	case File:
		var n int
		var err error
		if req.Locator == "" {
			logger.Log(logger.Allow, "mapping", "loading mappings from stdin")
			n, err = db.AddMappingsFromReader(stdin)
		} else {
			logger.Logf(logger.Allow, "mapping", "loading mappings from %s", req.Locator)
			n, err = db.AddMappingsFromFile(req.Locator)
		}
		if err != nil {
			return false, curated.Errorf(DatabaseError, req.Protocol, err)
		}
		logger.Logf(logger.Allow, "mapping", "%d mappings added", n)

	case Help:
		devs := db.Devices()
		if len(devs) == 0 {
			logger.Log(logger.Allow, "mapping", "no joysticks attached")
		}
		for _, d := range devs {
			logger.Log(logger.Allow, "mapping", d)
		}
		return true, nil

	default:
		return false, curated.Errorf("mapping: unknown protocol (%d)", int(req.Protocol))
	}

	return false, nil
}
