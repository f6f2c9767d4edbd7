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

// Package controllers keeps track of the input devices that have been opened
// by the GUI. Devices are held in a Pack, which has a fixed number of slots.
package controllers

// MaxDevices is the number of slots in a Pack.
const MaxDevices = 8

// Device is implemented by opened joystick and game controller handles.
type Device interface {
	// the instance ID used in input events to identify the device
	InstanceID() int32

	// name of the device as reported by the device driver
	Name() string

	// close the device. the device should not be used after Close()
	Close()
}

// Pack is a fixed size collection of opened devices of the same kind.
type Pack[T Device] struct {
	slots [MaxDevices]T
	used  [MaxDevices]bool
}

// Add device to the first free slot. Returns the slot number and true if
// the device was added. Returns false if there are no free slots or if a
// device with the same instance ID is already in the Pack.
func (p *Pack[T]) Add(d T) (int, bool) {
	if _, ok := p.Find(d.InstanceID()); ok {
		return -1, false
	}
	for i := range p.slots {
		if !p.used[i] {
			p.slots[i] = d
			p.used[i] = true
			return i, true
		}
	}
	return -1, false
}

// Find the slot of the device with the instance ID.
func (p *Pack[T]) Find(instance int32) (int, bool) {
	for i := range p.slots {
		if p.used[i] && p.slots[i].InstanceID() == instance {
			return i, true
		}
	}
	return -1, false
}

// Get returns the device with the instance ID.
func (p *Pack[T]) Get(instance int32) (T, bool) {
	if i, ok := p.Find(instance); ok {
		return p.slots[i], true
	}
	var z T
	return z, false
}

// Remove device with the instance ID from the Pack. The device is not closed,
// that is the responsibility of the caller.
func (p *Pack[T]) Remove(instance int32) (T, bool) {
	var z T
	i, ok := p.Find(instance)
	if !ok {
		return z, false
	}
	d := p.slots[i]
	p.slots[i] = z
	p.used[i] = false
	return d, true
}

// CloseAll closes and removes every device in the Pack.
func (p *Pack[T]) CloseAll() {
	var z T
	for i := range p.slots {
		if p.used[i] {
			p.slots[i].Close()
			p.slots[i] = z
			p.used[i] = false
		}
	}
}

// Len returns the number of devices in the Pack.
func (p *Pack[T]) Len() int {
	var n int
	for _, u := range p.used {
		if u {
			n++
		}
	}
	return n
}
