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
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jetsetilly/dumpevents/categories"
	"github.com/jetsetilly/dumpevents/dumper"
	"github.com/jetsetilly/dumpevents/logger"
	"github.com/jetsetilly/dumpevents/ringlog"
	"github.com/jetsetilly/dumpevents/userinput"
)

// Geometry of the terminal presentation. The reserved rows are the banner,
// the column headers, the heartbeat and the help footer.
const (
	RowHeight    = 1
	ReservedRows = 4
)

// DefaultTick is the period of the main loop cycle.
const DefaultTick = time.Second / 60

// Messages

type tickMsg time.Time

// eventMsg carries an event from outside of the terminal.
type eventMsg struct {
	ev userinput.Event
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the bubbletea model for the terminal presentation.
type Model struct {
	dmp  *dumper.Dumper
	keys keyMap
	help help.Model
	tick time.Duration

	width  int
	height int

	// most recent mouse position. used to calculate relative motion
	mouseX int
	mouseY int

	beat    dumper.Beat
	beating bool

	headerStyle lipgloss.Style
	bannerStyle lipgloss.Style
}

// NewModel is the preferred method of initialisation for the Model type. The
// row height and reserved rows preferences of the Dumper are changed to suit a
// terminal. A tick of zero or less means DefaultTick.
func NewModel(dmp *dumper.Dumper, tick time.Duration) Model {
	if tick <= 0 {
		tick = DefaultTick
	}

	p := dmp.Prefs()
	if err := p.RowHeight.Set(RowHeight); err != nil {
		logger.Log(logger.Allow, "tui", err)
	}
	if err := p.ReservedRows.Set(ReservedRows); err != nil {
		logger.Log(logger.Allow, "tui", err)
	}

	return Model{
		dmp:         dmp,
		keys:        defaultKeyMap(),
		help:        help.New(),
		tick:        tick,
		headerStyle: lipgloss.NewStyle().Bold(true),
		bannerStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tick)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.dmp.HandleEvent(userinput.EventWindow{
			Action: userinput.WindowSizeChanged,
			Width:  msg.Width,
			Height: msg.Height,
		})
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.dmp.HandleEvent(m.mouseEvent(msg)) {
			return m, tea.Quit
		}
		return m, nil

	case eventMsg:
		if m.dmp.HandleEvent(msg.ev) {
			return m, tea.Quit
		}
		return m, nil

	case tickMsg:
		if beat, ok := m.dmp.Cycle(); ok {
			m.beat = beat
			m.beating = true
		}
		return m, tickCmd(m.tick)
	}

	return m, nil
}

// keyName returns the name of the key in the form used by SDL where the
// terminal name differs.
func keyName(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeyEsc:
		return "Escape"
	case tea.KeyEnter:
		return "Return"
	case tea.KeySpace:
		return "Space"
	case tea.KeyTab:
		return "Tab"
	case tea.KeyBackspace:
		return "Backspace"
	}
	return msg.String()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := userinput.EventKeyboard{Key: keyName(msg), Down: true}
	quit := m.dmp.HandleEvent(k)

	k.Down = false
	quit = m.dmp.HandleEvent(k) || quit

	if !quit && key.Matches(msg, m.keys.Quit) {
		quit = m.dmp.HandleEvent(userinput.EventQuit{})
	}

	if quit {
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) mouseEvent(msg tea.MouseMsg) userinput.Event {
	if tea.MouseEvent(msg).IsWheel() {
		var ev userinput.EventMouseWheel
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			ev.Y = 1
		case tea.MouseButtonWheelDown:
			ev.Y = -1
		case tea.MouseButtonWheelLeft:
			ev.X = -1
		case tea.MouseButtonWheelRight:
			ev.X = 1
		}
		return ev
	}

	switch msg.Action {
	case tea.MouseActionPress:
		return userinput.EventMouseButton{Button: int(msg.Button), Down: true}
	case tea.MouseActionRelease:
		return userinput.EventMouseButton{Button: int(msg.Button), Down: false}
	}

	ev := userinput.EventMouseMotion{
		X:    msg.X,
		Y:    msg.Y,
		XRel: msg.X - m.mouseX,
		YRel: msg.Y - m.mouseY,
	}
	m.mouseX = msg.X
	m.mouseY = msg.Y
	return ev
}

// greys for every intensity
var greys [256]lipgloss.Style

func init() {
	for i := range greys {
		greys[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", i, i, i)))
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	colWidth := max(m.width/categories.Count, 1)
	rows := m.dmp.Log(categories.Misc).Cap()

	fade := m.dmp.Fade()
	now := m.dmp.Now()

	cols := make([]string, 0, categories.Count)
	for _, c := range categories.List {
		lines := make([]string, 0, rows+1)
		lines = append(lines, m.headerStyle.Render(c.String()))

		m.dmp.Log(c).Each(func(_ int, e *ringlog.Entry) bool {
			a, _ := e.Fade(fade, now)
			lines = append(lines, greys[a].Render(e.Line()))
			return true
		})

		col := lipgloss.NewStyle().
			Width(colWidth).
			MaxWidth(colWidth).
			Height(rows + 1).
			MaxHeight(rows + 1).
			Render(strings.Join(lines, "\n"))
		cols = append(cols, col)
	}

	var hb string
	if m.beating {
		hb = m.beat.String()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.bannerStyle.MaxWidth(m.width).Render(dumper.Banner),
		lipgloss.JoinHorizontal(lipgloss.Top, cols...),
		hb,
		m.help.View(m.keys),
	)
}
