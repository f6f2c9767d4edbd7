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

package dumper

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/dumpevents/categories"
	"github.com/jetsetilly/dumpevents/logger"
	"github.com/jetsetilly/dumpevents/prefs"
	"github.com/jetsetilly/dumpevents/ringlog"
	"github.com/jetsetilly/dumpevents/userinput"
)

// Banner is shown above the columns by every presentation.
const Banner = "DumpEvents - add as Non-Steam Game, run from Big Picture Mode; ESCAPE to quit"

// Dumper is the application context of the event viewer. It holds one
// RingLog for every category and decides how each input event changes them.
//
// A Dumper is not safe for concurrent use. All calls should come from the
// loop that also renders the columns.
type Dumper struct {
	prefs *Preferences

	logs [categories.Count]*ringlog.RingLog

	// most recent geometry given to Resize()
	width  int
	height int

	heartbeat *Heartbeat
	clock     func() time.Time

	// every line written to a column is also written to echo, if it is not nil
	echo io.Writer
}

// NewDumper is the preferred method of initialisation for the Dumper type. If
// p is nil then DefaultPreferences() is used.
func NewDumper(p *Preferences) *Dumper {
	if p == nil {
		p = DefaultPreferences()
	}

	d := &Dumper{
		prefs: p,
		clock: time.Now,
	}

	for _, c := range categories.List {
		d.logs[c] = ringlog.New(ringlog.DefaultCapacity)
	}

	d.heartbeat = NewHeartbeat(d.clock())

	// changes to the geometry preferences take effect immediately if the
	// geometry is known
	resize := func(_ prefs.Value) error {
		if d.height > 0 {
			d.Resize(d.width, d.height)
		}
		return nil
	}
	d.prefs.RowHeight.SetHookPost(resize)
	d.prefs.ReservedRows.SetHookPost(resize)

	return d
}

// Prefs returns the Preferences used by the Dumper.
func (d *Dumper) Prefs() *Preferences {
	return d.prefs
}

// SetClock changes the source of the current time for the Dumper and all its
// columns.
func (d *Dumper) SetClock(now func() time.Time) {
	d.clock = now
	for _, l := range d.logs {
		l.SetClock(now)
	}
	d.heartbeat = NewHeartbeat(now())
}

// Now returns the current time according to the Dumper's clock.
func (d *Dumper) Now() time.Time {
	return d.clock()
}

// SetEcho sets the io.Writer to which every new line is also written. Lines
// are prefixed with the label of the column. A nil value turns off echoing.
func (d *Dumper) SetEcho(w io.Writer) {
	d.echo = w
}

// Log returns the RingLog for the category. Returns nil if the category is
// not valid.
//
// The RingLog is borrowed. Entries must not be retained across calls to
// Write(), HandleEvent(), Resize() or Clear().
func (d *Dumper) Log(cat categories.Category) *ringlog.RingLog {
	if !cat.Valid() {
		return nil
	}
	return d.logs[cat]
}

// Write adds a line to the column for the category.
func (d *Dumper) Write(cat categories.Category, line string) {
	if !cat.Valid() {
		logger.Logf(logger.Allow, "dumper", "cannot write to category %d", cat)
		return
	}
	d.logs[cat].Append(line)
	if d.echo != nil {
		fmt.Fprintf(d.echo, "%s: %s\n", cat, d.logs[cat].Get(-1).Line())
	}
}

// Writef adds a formatted line to the column for the category.
func (d *Dumper) Writef(cat categories.Category, format string, args ...any) {
	d.Write(cat, fmt.Sprintf(format, args...))
}

// HandleEvent adds the event to the column it belongs in. Returns true if the
// event means the program should quit.
func (d *Dumper) HandleEvent(ev userinput.Event) bool {
	switch ev := ev.(type) {
	case nil:
		return false

	case userinput.EventQuit:
		d.Write(ev.Category(), ev.String())
		return true

	case userinput.EventKeyboard:
		// repeated key presses are not interesting
		if ev.Down && ev.Repeat {
			return false
		}
		d.Write(ev.Category(), ev.String())
		return !ev.Down && ev.Key == "Escape"

	case userinput.EventWindow:
		// resizing clears the columns so it must be done before the line is
		// written or the line will be lost
		if ev.Action == userinput.WindowSizeChanged {
			d.Resize(ev.Width, ev.Height)
		}
		d.Write(ev.Category(), ev.String())
		return false
	}

	d.Write(ev.Category(), ev.String())
	return false
}

// Rows returns the number of rows that fit into the height, given the
// RowHeight and ReservedRows preferences. Never less than one.
func (d *Dumper) Rows(height int) int {
	rh := max(d.prefs.RowHeight.Get().(int), 1)
	return max((height-d.prefs.ReservedRows.Get().(int))/rh, 1)
}

// Resize every column to fit the geometry. All columns are cleared. Returns the
// capacity of the columns.
func (d *Dumper) Resize(width, height int) int {
	d.width = width
	d.height = height

	rows := d.Rows(height)

	var capacity int
	for _, l := range d.logs {
		capacity = l.Resize(rows)
	}

	logger.Logf(logger.Debug, "dumper", "resize to %dx%d: %d rows", width, height, capacity)

	return capacity
}

// Size returns the most recent geometry given to Resize().
func (d *Dumper) Size() (int, int) {
	return d.width, d.height
}

// Clear every column. The capacity of every column is unchanged.
func (d *Dumper) Clear() {
	for _, l := range d.logs {
		l.Clear()
	}
}

// Destroy releases every rendered artifact held by the Dumper. The Dumper can
// still be used after Destroy() but it will have the default capacity.
func (d *Dumper) Destroy() {
	for _, l := range d.logs {
		l.Destroy()
	}
}

// Fade returns the fade to apply to the entries of every column.
func (d *Dumper) Fade() ringlog.Fade {
	return d.prefs.Fade()
}

// Cycle should be called once per main loop cycle by the presentation layer.
// On a heartbeat it returns the Beat and true. If the Heartbeat preference is
// set then a Tick line is added to the MISC column.
func (d *Dumper) Cycle() (Beat, bool) {
	b, ok := d.heartbeat.Cycle(d.clock())
	if ok && d.prefs.Heartbeat.Get().(bool) {
		d.HandleEvent(userinput.EventTick{Cycle: b.Count, Delta: b.Delta})
	}
	return b, ok
}
