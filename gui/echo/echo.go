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

package echo

import (
	"io"
	"time"

	"github.com/jetsetilly/dumpevents/dumper"
	"github.com/jetsetilly/dumpevents/logger"
	"github.com/jetsetilly/dumpevents/userinput"
)

// Poller is a source of events other than the keyboard. It is implemented by
// sdlinput.Source.
type Poller interface {
	// wait up to timeout for events, passing each one to the handle function
	Wait(timeout time.Duration, handle func(userinput.Event) bool) bool
}

// PollTimeout is how long the Poller is waited on in each cycle of the main
// loop.
const PollTimeout = 10 * time.Millisecond

// Run the main loop until an event requests that the program quits. Every line
// added to the Dumper is also written to the output. Keys and the Poller may
// be nil.
func Run(dmp *dumper.Dumper, poller Poller, keys <-chan userinput.Event, output io.Writer) {
	dmp.SetEcho(output)
	defer dmp.SetEcho(nil)

	for {
		if beat, ok := dmp.Cycle(); ok {
			logger.Log(logger.Debug, "echo", beat)
		}

		select {
		case ev, ok := <-keys:
			if !ok {
				keys = nil
				break
			}
			if dmp.HandleEvent(ev) {
				return
			}
		default:
		}

		if poller == nil {
			time.Sleep(PollTimeout)
			continue
		}

		if poller.Wait(PollTimeout, dmp.HandleEvent) {
			return
		}
	}
}
