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
	"time"

	"github.com/jetsetilly/dumpevents/paths"
	"github.com/jetsetilly/dumpevents/prefs"
	"github.com/jetsetilly/dumpevents/ringlog"
)

// Preferences for the Dumper and for the presentation of its columns.
type Preferences struct {
	dsk *prefs.Disk

	// length of the fade in milliseconds
	FadePeriod prefs.Int

	// intensity at the start and end of the fade
	FadeStart prefs.Int
	FadeEnd   prefs.Int

	// height of a row and the amount of vertical space reserved for the
	// banner and the heartbeat. in pixels for the SDL presentation and in
	// terminal rows for the terminal presentation
	RowHeight    prefs.Int
	ReservedRows prefs.Int

	// add a Tick line to the MISC column on every heartbeat
	Heartbeat prefs.Bool

	// font used by the SDL presentation. an empty FontPath means the font will
	// be searched for
	FontPath prefs.String
	FontSize prefs.Int
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// default values
const (
	defaultFadePeriod   = 1000
	defaultFadeStart    = 0xff
	defaultFadeEnd      = 0x7f
	defaultRowHeight    = 20
	defaultReservedRows = 80
	defaultFontSize     = 20
)

func intensityRange(v prefs.Value) error {
	if n := v.(int); n < 0 || n > 255 {
		return fmt.Errorf("intensity out of range (%d)", n)
	}
	return nil
}

func notNegative(v prefs.Value) error {
	if n := v.(int); n < 0 {
		return fmt.Errorf("value cannot be negative (%d)", n)
	}
	return nil
}

func positive(v prefs.Value) error {
	if n := v.(int); n < 1 {
		return fmt.Errorf("value must be positive (%d)", n)
	}
	return nil
}

// DefaultPreferences returns preferences that are not attached to a file on
// disk. Load() and Save() do nothing.
func DefaultPreferences() *Preferences {
	p := &Preferences{}

	p.FadePeriod.SetHookPre(notNegative)
	p.FadeStart.SetHookPre(intensityRange)
	p.FadeEnd.SetHookPre(intensityRange)
	p.RowHeight.SetHookPre(positive)
	p.ReservedRows.SetHookPre(notNegative)
	p.FontSize.SetHookPre(positive)

	p.SetDefaults()
	return p
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.FadePeriod.Set(defaultFadePeriod)
	p.FadeStart.Set(defaultFadeStart)
	p.FadeEnd.Set(defaultFadeEnd)
	p.RowHeight.Set(defaultRowHeight)
	p.ReservedRows.Set(defaultReservedRows)
	p.Heartbeat.Set(false)
	p.FontPath.Set("")
	p.FontSize.Set(defaultFontSize)
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The preferences are loaded from the file at pth. If pth is
// empty then the default preferences file is used.
func NewPreferences(pth string) (*Preferences, error) {
	p := DefaultPreferences()

	if pth == "" {
		var err error
		pth, err = paths.ResourcePath("", prefs.DefaultPrefsFile)
		if err != nil {
			return nil, fmt.Errorf("dumper: %w", err)
		}
	}

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, fmt.Errorf("dumper: %w", err)
	}

	for k, v := range map[string]prefsValue{
		"dumper.fade.period":   &p.FadePeriod,
		"dumper.fade.start":    &p.FadeStart,
		"dumper.fade.end":      &p.FadeEnd,
		"dumper.rowheight":     &p.RowHeight,
		"dumper.reservedrows":  &p.ReservedRows,
		"dumper.heartbeat.log": &p.Heartbeat,
		"gui.font.path":        &p.FontPath,
		"gui.font.size":        &p.FontSize,
	} {
		if err := p.dsk.Add(k, v); err != nil {
			return nil, fmt.Errorf("dumper: %w", err)
		}
	}

	if err := p.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

// the subset of pref functions needed to add a value to a prefs.Disk
type prefsValue interface {
	fmt.Stringer
	Set(prefs.Value) error
	Get() prefs.Value
	Reset() error
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	if err := p.dsk.Load(); err != nil {
		return fmt.Errorf("dumper: %w", err)
	}
	return nil
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	if err := p.dsk.Save(); err != nil {
		return fmt.Errorf("dumper: %w", err)
	}
	return nil
}

// Fade returns the fade described by the preferences.
func (p *Preferences) Fade() ringlog.Fade {
	return ringlog.Fade{
		Period: time.Duration(p.FadePeriod.Get().(int)) * time.Millisecond,
		Start:  uint8(p.FadeStart.Get().(int)),
		End:    uint8(p.FadeEnd.Get().(int)),
	}
}
