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
	"fmt"

	"github.com/jetsetilly/dumpevents/logger"
	"github.com/jetsetilly/dumpevents/userinput"
	"github.com/pkg/term"
)

// DefaultTerminal is the terminal opened by OpenKeyboard() when no path is
// given.
const DefaultTerminal = "/dev/tty"

// Keyboard reads keys from a terminal in cbreak mode.
type Keyboard struct {
	t      *term.Term
	events chan userinput.Event
}

// OpenKeyboard puts the terminal into cbreak mode and starts reading keys
// from it.
func OpenKeyboard(path string) (*Keyboard, error) {
	if path == "" {
		path = DefaultTerminal
	}

	t, err := term.Open(path, term.CBreakMode)
	if err != nil {
		return nil, fmt.Errorf("echo: %w", err)
	}

	kb := &Keyboard{
		t:      t,
		events: make(chan userinput.Event, 16),
	}
	go kb.read()

	return kb, nil
}

// Events returns the channel on which key events are sent. The channel is
// closed when the terminal can no longer be read.
func (kb *Keyboard) Events() <-chan userinput.Event {
	return kb.events
}

func (kb *Keyboard) read() {
	defer close(kb.events)

	b := make([]byte, 8)
	for {
		n, err := kb.t.Read(b)
		if err != nil {
			logger.Logf(logger.Debug, "echo", "keyboard: %v", err)
			return
		}

		name, code := decodeKey(b[:n])
		kb.events <- userinput.EventKeyboard{Key: name, Code: code, Down: true}
		kb.events <- userinput.EventKeyboard{Key: name, Code: code, Down: false}
	}
}

// Close restores the terminal to its original mode.
func (kb *Keyboard) Close() error {
	if err := kb.t.Restore(); err != nil {
		return fmt.Errorf("echo: %w", err)
	}
	return kb.t.Close()
}
