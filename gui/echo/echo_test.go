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

package echo_test

import (
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/dumpevents/dumper"
	"github.com/jetsetilly/dumpevents/gui/echo"
	"github.com/jetsetilly/dumpevents/test"
	"github.com/jetsetilly/dumpevents/userinput"
)

// poller sends one event every time it is waited on
type poller struct {
	events []userinput.Event
}

func (p *poller) Wait(_ time.Duration, handle func(userinput.Event) bool) bool {
	if len(p.events) == 0 {
		return false
	}
	ev := p.events[0]
	p.events = p.events[1:]
	return handle(ev)
}

func TestRun(t *testing.T) {
	d := dumper.NewDumper(nil)
	d.Resize(640, 480)

	keys := make(chan userinput.Event, 2)
	keys <- userinput.EventKeyboard{Key: "A", Down: true}
	keys <- userinput.EventKeyboard{Key: "A", Down: false}
	close(keys)

	p := &poller{events: []userinput.Event{
		nil,
		userinput.EventJoyAxis{Instance: 0, Axis: 1, Value: 100},
		nil,
		nil,
		userinput.EventQuit{},
		userinput.EventJoyAxis{Instance: 0, Axis: 1, Value: 200},
	}}

	var out strings.Builder
	echo.Run(d, p, keys, &out)

	test.ExpectEquality(t, out.String(), strings.Join([]string{
		"KEYB: PRESS: A",
		"KEYB: RELEASE: A",
		"JOY: 0/AXIS/1: 100",
		"MISC: QUIT",
		"",
	}, "\n"))

	// echoing is turned off when Run() returns
	d.Writef(0, "after")
	test.ExpectSuccess(t, !strings.Contains(out.String(), "after"))

	// the event after the quit event was never handled
	test.ExpectEquality(t, len(p.events), 1)
}

func TestRunEscape(t *testing.T) {
	d := dumper.NewDumper(nil)
	d.Resize(640, 480)

	keys := make(chan userinput.Event, 2)
	keys <- userinput.EventKeyboard{Key: "Escape", Down: true}
	keys <- userinput.EventKeyboard{Key: "Escape", Down: false}

	var out strings.Builder
	echo.Run(d, nil, keys, &out)

	test.ExpectEquality(t, out.String(), "KEYB: PRESS: Escape\nKEYB: RELEASE: Escape\n")
}
