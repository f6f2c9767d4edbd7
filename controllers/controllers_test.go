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

package controllers_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/dumpevents/controllers"
	"github.com/jetsetilly/dumpevents/test"
)

type device struct {
	id     int32
	closed bool
}

func (d *device) InstanceID() int32 { return d.id }
func (d *device) Name() string      { return fmt.Sprintf("device %d", d.id) }
func (d *device) Close()            { d.closed = true }

func TestAddFindRemove(t *testing.T) {
	var p controllers.Pack[*device]
	test.ExpectEquality(t, p.Len(), 0)

	a := &device{id: 10}
	b := &device{id: 20}

	slot, ok := p.Add(a)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, slot, 0)

	slot, ok = p.Add(b)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, slot, 1)
	test.ExpectEquality(t, p.Len(), 2)

	// adding a device with the same instance ID is ignored
	_, ok = p.Add(&device{id: 10})
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, p.Len(), 2)

	slot, ok = p.Find(20)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, slot, 1)

	_, ok = p.Find(30)
	test.ExpectFailure(t, ok)

	d, ok := p.Get(10)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, d, a)

	d, ok = p.Remove(10)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, d, a)
	test.ExpectFailure(t, a.closed)
	test.ExpectEquality(t, p.Len(), 1)

	_, ok = p.Remove(10)
	test.ExpectFailure(t, ok)

	// freed slot is reused
	slot, ok = p.Add(&device{id: 30})
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, slot, 0)
}

func TestFull(t *testing.T) {
	var p controllers.Pack[*device]
	for i := range controllers.MaxDevices {
		_, ok := p.Add(&device{id: int32(i)})
		test.ExpectSuccess(t, ok)
	}
	test.ExpectEquality(t, p.Len(), controllers.MaxDevices)

	slot, ok := p.Add(&device{id: 100})
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, slot, -1)
}

func TestCloseAll(t *testing.T) {
	var p controllers.Pack[*device]
	devs := []*device{{id: 1}, {id: 2}, {id: 3}}
	for _, d := range devs {
		p.Add(d)
	}
	p.Remove(2)

	p.CloseAll()
	test.ExpectEquality(t, p.Len(), 0)
	test.ExpectSuccess(t, devs[0].closed)
	test.ExpectFailure(t, devs[1].closed)
	test.ExpectSuccess(t, devs[2].closed)
}
