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

package tuidump

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jetsetilly/dumpevents/dumper"
	"github.com/jetsetilly/dumpevents/userinput"
)

// Poller is a source of events from outside of the terminal. It is
// implemented by sdlinput.Source.
type Poller interface {
	// wait up to timeout for events, passing each one to the handle function
	Wait(timeout time.Duration, handle func(userinput.Event) bool) bool
}

// how long the poller waits for an event before checking whether the
// bubbletea program has ended
const pollTimeout = 50 * time.Millisecond

// Run the terminal presentation until the user quits. The Poller, if it is not
// nil, is serviced by the calling goroutine. The bubbletea program runs in
// its own goroutine and is the only user of the Dumper until Run returns.
func Run(dmp *dumper.Dumper, poller Poller, tick time.Duration) error {
	p := tea.NewProgram(NewModel(dmp, tick), tea.WithAltScreen(), tea.WithMouseAllMotion())

	done := make(chan error, 1)
	go func() {
		_, err := p.Run()
		done <- err
	}()

	if poller == nil {
		return <-done
	}

	forward := func(ev userinput.Event) bool {
		p.Send(eventMsg{ev: ev})
		return false
	}

	for {
		select {
		case err := <-done:
			return err
		default:
		}
		poller.Wait(pollTimeout, forward)
	}
}
