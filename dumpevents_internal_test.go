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

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/dumpevents/categories"
	"github.com/jetsetilly/dumpevents/dumper"
	"github.com/jetsetilly/dumpevents/test"
)

type orderedDestroy struct {
	order *[]string
	check func()
}

func (d orderedDestroy) Destroy() {
	if d.check != nil {
		d.check()
	}
	*d.order = append(*d.order, "presentation")
}

func TestSessionEnd(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "dumper.dot")
	c, err := parseCommon(t, "-memviz", fn)
	test.DemandSuccess(t, err)

	var order []string
	s := &session{
		c:   c,
		dmp: dumper.NewDumper(nil),
		quit: func() {
			order = append(order, "quit")
		},
	}
	s.dmp.Write(categories.Misc, "hello")

	pres := orderedDestroy{
		order: &order,
		check: func() {
			// the memviz output exists before the presentation is destroyed
			_, err := os.Stat(fn)
			test.ExpectSuccess(t, err)
		},
	}

	test.ExpectSuccess(t, s.end(pres))
	test.DemandEquality(t, len(order), 2)
	test.ExpectEquality(t, order[0], "presentation")
	test.ExpectEquality(t, order[1], "quit")
}

func TestSessionEndWithoutMemviz(t *testing.T) {
	c, err := parseCommon(t)
	test.DemandSuccess(t, err)

	var quit bool
	s := &session{
		c:   c,
		dmp: dumper.NewDumper(nil),
		quit: func() {
			quit = true
		},
	}

	// the Dumper is a presentation of itself in the terminal modes
	test.ExpectSuccess(t, s.end(s.dmp))
	test.ExpectSuccess(t, quit)
}

func TestSessionEndError(t *testing.T) {
	c, err := parseCommon(t, "-memviz", filepath.Join(t.TempDir(), "missing", "dumper.dot"))
	test.DemandSuccess(t, err)

	var order []string
	s := &session{
		c:   c,
		dmp: dumper.NewDumper(nil),
		quit: func() {
			order = append(order, "quit")
		},
	}

	// a failure to write the memviz output does not prevent shutdown
	test.ExpectFailure(t, s.end(orderedDestroy{order: &order}))
	test.ExpectEquality(t, len(order), 2)
}
