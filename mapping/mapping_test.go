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

package mapping_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/jetsetilly/dumpevents/curated"
	"github.com/jetsetilly/dumpevents/logger"
	"github.com/jetsetilly/dumpevents/mapping"
	"github.com/jetsetilly/dumpevents/test"
)

type database struct {
	mappings []string
	files    []string
	fail     bool
	devices  []mapping.Device
}

var errDatabase = errors.New("database error")

func (db *database) AddMapping(m string) error {
	if db.fail {
		return errDatabase
	}
	db.mappings = append(db.mappings, m)
	return nil
}

func (db *database) AddMappingsFromFile(filename string) (int, error) {
	if db.fail {
		return 0, errDatabase
	}
	db.files = append(db.files, filename)
	return 1, nil
}

func (db *database) AddMappingsFromReader(r io.Reader) (int, error) {
	if db.fail {
		return 0, errDatabase
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	db.mappings = append(db.mappings, lines...)
	return len(lines), nil
}

func (db *database) Devices() []mapping.Device {
	return db.devices
}

func noenv(string) string {
	return ""
}

const testMapping = "030000005e0400008e02000014010000,X360 Controller,a:b0,b:b1"

func TestNone(t *testing.T) {
	db := &database{}
	stop, err := mapping.Apply(mapping.Request{}, db, nil, noenv)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, stop)
	test.ExpectEquality(t, len(db.mappings), 0)
}

func TestLiteral(t *testing.T) {
	db := &database{}
	stop, err := mapping.Apply(mapping.Request{Protocol: mapping.Literal, Locator: testMapping}, db, nil, noenv)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, stop)

	// the literal string is the mapping. it is not the name of an environment
	// variable
	test.DemandEquality(t, len(db.mappings), 1)
	test.ExpectEquality(t, db.mappings[0], testMapping)
}

func TestEnv(t *testing.T) {
	getenv := func(name string) string {
		switch name {
		case mapping.DefaultEnv:
			return testMapping
		case "OTHER":
			return " other "
		}
		return ""
	}

	db := &database{}
	_, err := mapping.Apply(mapping.Request{Protocol: mapping.Env}, db, nil, getenv)
	test.ExpectSuccess(t, err)
	_, err = mapping.Apply(mapping.Request{Protocol: mapping.Env, Locator: "OTHER"}, db, nil, getenv)
	test.ExpectSuccess(t, err)
	test.DemandEquality(t, len(db.mappings), 2)
	test.ExpectEquality(t, db.mappings[0], testMapping)
	test.ExpectEquality(t, db.mappings[1], "other")

	_, err = mapping.Apply(mapping.Request{Protocol: mapping.Env, Locator: "MISSING"}, db, nil, getenv)
	test.ExpectSuccess(t, curated.Is(err, mapping.EmptyEnvironment))
	test.ExpectEquality(t, err.Error(), "mapping: environment variable MISSING is empty")
}

func TestFile(t *testing.T) {
	db := &database{}
	_, err := mapping.Apply(mapping.Request{Protocol: mapping.File, Locator: "gamecontrollerdb.txt"}, db, nil, noenv)
	test.ExpectSuccess(t, err)
	test.DemandEquality(t, len(db.files), 1)
	test.ExpectEquality(t, db.files[0], "gamecontrollerdb.txt")

	// empty locator reads from stdin
	stdin := strings.NewReader(testMapping + "\n" + testMapping + "\n")
	_, err = mapping.Apply(mapping.Request{Protocol: mapping.File}, db, stdin, noenv)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(db.mappings), 2)
}

func TestDatabaseError(t *testing.T) {
	db := &database{fail: true}
	for _, p := range []mapping.Protocol{mapping.Literal, mapping.File} {
		_, err := mapping.Apply(mapping.Request{Protocol: p, Locator: "x"}, db, nil, noenv)
		test.ExpectSuccess(t, curated.Is(err, mapping.DatabaseError), p)
		test.ExpectSuccess(t, errors.Is(err, errDatabase), p)
	}

	_, err := mapping.Apply(mapping.Request{Protocol: mapping.Protocol(99)}, db, nil, noenv)
	test.ExpectFailure(t, err)
}

func TestHelp(t *testing.T) {
	logger.Clear()
	defer logger.Clear()

	db := &database{
		devices: []mapping.Device{
			{Index: 0, GUID: "030000005e0400008e02000014010000", Name: "X360 Controller", GameController: true},
			{Index: 1, GUID: "03000000790000000600000010010000", Name: "Generic USB Joystick"},
		},
	}
	stop, err := mapping.Apply(mapping.Request{Protocol: mapping.Help}, db, nil, noenv)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, stop)

	w := &strings.Builder{}
	logger.Tail(w, 2)
	test.ExpectEquality(t, w.String(),
		"mapping: JS #0: GUID=030000005e0400008e02000014010000 (X360 Controller)\n"+
			"mapping: JS #1: GUID=03000000790000000600000010010000 (Generic USB Joystick)\n")
}

func TestRequestString(t *testing.T) {
	test.ExpectEquality(t, mapping.Request{}.String(), "none")
	test.ExpectEquality(t, mapping.Request{Protocol: mapping.File, Locator: "db.txt"}.String(), "file: db.txt")
}
