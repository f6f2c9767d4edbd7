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

package sdldump

import (
	"testing"

	"github.com/jetsetilly/dumpevents/dumper"
	"github.com/jetsetilly/dumpevents/test"
)

// decorations with an empty text are valid but have nothing to destroy
func installed() decoration {
	return decoration{t: &text{}}
}

func TestCheckSize(t *testing.T) {
	dmp := dumper.NewDumper(nil)
	dmp.Resize(DefaultWidth, DefaultHeight)

	sd := &SdlDump{dmp: dmp}
	test.ExpectSuccess(t, sd.checkSize())
	test.ExpectFailure(t, sd.checkSize())

	sd.banner = installed()
	for i := range sd.headers {
		sd.headers[i] = installed()
	}
	sd.heartbeat = installed()

	// no change in size leaves every decoration in place
	test.ExpectFailure(t, sd.checkSize())
	test.ExpectSuccess(t, sd.heartbeat.valid())

	// a smaller window invalidates the decorations positioned by the size of
	// the window
	dmp.Resize(640, 200)
	test.ExpectSuccess(t, sd.checkSize())
	test.ExpectEquality(t, sd.width, 640)
	test.ExpectEquality(t, sd.height, 200)
	test.ExpectSuccess(t, sd.banner.valid())
	test.ExpectFailure(t, sd.heartbeat.valid())
	for i := range sd.headers {
		test.ExpectFailure(t, sd.headers[i].valid(), i)
	}
}
