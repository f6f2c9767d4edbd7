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
	"strings"

	"github.com/jetsetilly/dumpevents/categories"
)

// Column is a copy of the contents of one column of the Dumper.
type Column struct {
	Label    string
	Capacity int
	Lines    []string
}

// Snapshot is a copy of the state of the Dumper. It contains no references
// to the Dumper or to any rendered artifacts.
type Snapshot struct {
	Width   int
	Height  int
	Columns [categories.Count]Column
}

func (s Snapshot) String() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "%dx%d\n", s.Width, s.Height)
	for _, c := range s.Columns {
		fmt.Fprintf(b, "%s (%d/%d)\n", c.Label, len(c.Lines), c.Capacity)
		for _, l := range c.Lines {
			fmt.Fprintf(b, "  %s\n", l)
		}
	}
	return b.String()
}

// Snapshot returns a copy of all columns.
func (d *Dumper) Snapshot() Snapshot {
	s := Snapshot{
		Width:  d.width,
		Height: d.height,
	}
	for _, c := range categories.List {
		s.Columns[c] = Column{
			Label:    c.String(),
			Capacity: d.logs[c].Cap(),
			Lines:    d.logs[c].Lines(),
		}
	}
	return s
}
