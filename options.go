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
	"fmt"
	"os"
	"strings"

	"github.com/jetsetilly/dumpevents/curated"
	"github.com/jetsetilly/dumpevents/dumper"
	"github.com/jetsetilly/dumpevents/logger"
	"github.com/jetsetilly/dumpevents/mapping"
	"github.com/jetsetilly/dumpevents/modalflag"
	"github.com/jetsetilly/dumpevents/paths"
	"github.com/jetsetilly/dumpevents/prefs"
)

// the value used with the -map-file and -map-env flags to mean the default
// locator. stdin and SDL_DUMPEVENTS_MAPPING respectively
const defaultLocator = "-"

// the value used with the -memviz flag to request a unique filename
const autoFilename = "AUTO"

// errors returned by flag functions
const (
	resolutionFormat = "resolution must be in the form WxH: %s"
	mappingConflict  = "only one mapping flag can be used: %s and %s"
)

// resolution is the value of the -resolution flag.
type resolution struct {
	width  int
	height int
}

func (r resolution) String() string {
	return fmt.Sprintf("%dx%d", r.width, r.height)
}

func (r *resolution) set(s string) error {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return curated.Errorf(resolutionFormat, s)
	}

	var nw, nh int
	if _, err := fmt.Sscanf(w+" "+h, "%d %d", &nw, &nh); err != nil {
		return curated.Errorf(resolutionFormat, s)
	}
	if nw <= 0 || nh <= 0 {
		return curated.Errorf(resolutionFormat, s)
	}

	r.width = nw
	r.height = nh
	return nil
}

// common flags are available in every mode.
type common struct {
	md *modalflag.Modes

	verbosity *int
	prefsFile *string
	prefsLine *string
	savePrefs *bool
	statsview *bool
	memviz    *string

	req     mapping.Request
	reqFlag string
	mapHelp *bool
}

func addCommonFlags(md *modalflag.Modes) *common {
	c := &common{md: md}

	c.verbosity = md.AddInt("v", 0, "verbosity of log. 1 echoes the log to stderr, 2 adds debugging entries")
	c.prefsFile = md.AddString("prefs", "", "preferences file. default is the file in the resource directory")
	c.prefsLine = md.AddString("setprefs", "", "override preferences. in the form 'key::value; key::value'")
	c.savePrefs = md.AddBool("saveprefs", false, "save preferences, including any from -setprefs, to the preferences file")
	c.statsview = md.AddBool("statsview", false, "run statistics server (if available)")
	c.memviz = md.AddString("memviz", "", fmt.Sprintf("write graphviz dump of the event columns on exit. %s for a unique filename", autoFilename))
	c.mapHelp = md.AddBool("map-help", false, "list the GUID of every attached joystick and exit")

	md.AddFunc("map-file", fmt.Sprintf("add game controller mappings from file. %s for stdin", defaultLocator), func(s string) error {
		return c.request("map-file", mapping.File, s)
	})
	md.AddFunc("map-env", fmt.Sprintf("add game controller mapping from environment variable. %s for %s", defaultLocator, mapping.DefaultEnv), func(s string) error {
		return c.request("map-env", mapping.Env, s)
	})
	md.AddFunc("map-string", "add game controller mapping", func(s string) error {
		return c.request("map-string", mapping.Literal, s)
	})

	return c
}

func (c *common) request(flag string, protocol mapping.Protocol, locator string) error {
	if c.reqFlag != "" && c.reqFlag != flag {
		return curated.Errorf(mappingConflict, c.reqFlag, flag)
	}
	c.reqFlag = flag

	if protocol != mapping.Literal && locator == defaultLocator {
		locator = ""
	}
	c.req = mapping.Request{Protocol: protocol, Locator: locator}
	return nil
}

// mappingRequest returns the mapping request implied by the flags. the
// -map-help flag takes priority.
func (c *common) mappingRequest() mapping.Request {
	if *c.mapHelp {
		return mapping.Request{Protocol: mapping.Help}
	}
	return c.req
}

// apply the flags that must be applied before anything else happens.
func (c *common) apply() {
	logger.SetVerbosity(*c.verbosity)
	if *c.verbosity >= 1 {
		logger.SetEcho(os.Stderr)
	} else {
		logger.SetEcho(nil)
	}

	for _, f := range c.setFlags() {
		logger.Logf(logger.Debug, "flags", "-%s set for %s mode", f, c.md)
	}
}

// setFlags returns the name of every flag set on the command line.
func (c *common) setFlags() []string {
	var set []string
	c.md.Visit(func(flag string) {
		set = append(set, flag)
	})
	return set
}

// preferences loads the preferences, applying any preferences given with the
// -setprefs flag. the preferences are saved immediately if requested, before
// any presentation has a chance to change them.
func (c *common) preferences() (*dumper.Preferences, error) {
	if *c.prefsLine != "" {
		prefs.PushCommandLineStack(*c.prefsLine)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "prefs", "unused preferences: %s", unused)
			}
		}()
	}

	p, err := dumper.NewPreferences(*c.prefsFile)
	if err != nil {
		return nil, err
	}

	if *c.savePrefs {
		if err := p.Save(); err != nil {
			return nil, err
		}
		logger.Log(logger.Allow, "prefs", "preferences saved")
	}

	return p, nil
}

// memvizFilename returns the name of the file to use for the memviz output.
// returns the empty string if no file was requested.
func (c *common) memvizFilename() string {
	switch *c.memviz {
	case "":
		return ""
	case autoFilename:
		return paths.UniqueFilename("memviz", "dumper", "dot")
	}
	return *c.memviz
}
