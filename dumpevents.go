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

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/dumpevents/dumper"
	"github.com/jetsetilly/dumpevents/gui/echo"
	"github.com/jetsetilly/dumpevents/gui/fonts"
	"github.com/jetsetilly/dumpevents/gui/sdldump"
	"github.com/jetsetilly/dumpevents/gui/sdlinput"
	"github.com/jetsetilly/dumpevents/gui/tuidump"
	"github.com/jetsetilly/dumpevents/limiter"
	"github.com/jetsetilly/dumpevents/logger"
	"github.com/jetsetilly/dumpevents/mapping"
	"github.com/jetsetilly/dumpevents/modalflag"
	"github.com/jetsetilly/dumpevents/statsview"
	"github.com/jetsetilly/dumpevents/userinput"
)

// exit values
const (
	exitParse = 10
	exitMode  = 20
)

func main() {
	os.Exit(launch(os.Args[1:]))
}

// launch the mode specified by the arguments. returns the value to be used
// with os.Exit()
func launch(args []string) int {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("SDL", "TUI", "ECHO")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		return exitParse
	}

	switch md.Mode() {
	case "SDL":
		err = sdlMode(md)

	case "TUI":
		err = tuiMode(md)

	case "ECHO":
		err = echoMode(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		return exitMode
	}

	return 0
}

// session is the state shared by every mode once the flags have been parsed.
type session struct {
	c   *common
	dmp *dumper.Dumper
	src *sdlinput.Source

	// shuts down SDL. always the last thing to happen in a session
	quit func()
}

// start a session. if the returned session is nil then the program should
// stop without error.
func start(c *common, subsystems uint32) (*session, error) {
	c.apply()

	p, err := c.preferences()
	if err != nil {
		return nil, err
	}

	src, err := sdlinput.NewSource(subsystems)
	if err != nil {
		return nil, err
	}

	stop, err := mapping.Apply(c.mappingRequest(), src.Mappings(), os.Stdin, os.Getenv)
	if err != nil {
		// a bad mapping is not fatal
		logger.Log(logger.Allow, "mapping", err)
	}
	if stop {
		if *c.verbosity == 0 {
			logger.Write(os.Stdout)
		}
		src.Destroy()
		return nil, nil
	}

	if *c.statsview {
		statsview.Launch(os.Stdout, "")
	}

	s := &session{
		c:    c,
		dmp:  dumper.NewDumper(p),
		src:  src,
		quit: src.Destroy,
	}
	src.Start()

	return s, nil
}

// destroyer is implemented by the presentations and by dumper.Dumper.
type destroyer interface {
	Destroy()
}

// end the session. the memviz output is written before anything is released,
// the presentation is destroyed next and SDL is shut down last. the
// presentation must destroy the Dumper.
func (s *session) end(pres destroyer) error {
	err := s.writeMemviz()
	pres.Destroy()
	s.quit()
	return err
}

func (s *session) writeMemviz() error {
	fn := s.c.memvizFilename()
	if fn == "" {
		return nil
	}

	f, err := os.Create(fn)
	if err != nil {
		return fmt.Errorf("memviz: %w", err)
	}
	defer f.Close()

	snapshot := s.dmp.Snapshot()
	memviz.Map(f, &snapshot)
	logger.Logf(logger.Allow, "memviz", "written to %s", fn)

	return nil
}

func sdlMode(md *modalflag.Modes) error {
	md.NewMode()

	res := resolution{width: sdldump.DefaultWidth, height: sdldump.DefaultHeight}
	md.AddFunc("resolution", fmt.Sprintf("window resolution in the form WxH (default %s)", res), res.set)
	font := md.AddString("font", "", "font file. default is to search for "+fonts.DefaultFont)
	fps := md.AddFloat64("fps", float64(limiter.DefaultFPS), "frames per second. zero for unlimited")
	c := addCommonFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	s, err := start(c, sdlinput.Everything)
	if err != nil || s == nil {
		return err
	}

	fontPath := *font
	if fontPath == "" {
		fontPath = s.dmp.Prefs().FontPath.Get().(string)
	}

	sd, err := sdldump.NewSdlDump(s.dmp, s.src, sdldump.Options{
		Width:  res.width,
		Height: res.height,
		FPS:    float32(*fps),
		Font: fonts.Locations{
			Path:   fontPath,
			Getenv: os.Getenv,
		},
	})
	if err != nil {
		s.quit()
		return err
	}

	err = sd.Run()
	endErr := s.end(sd)
	if err != nil {
		return err
	}
	return endErr
}

func tuiMode(md *modalflag.Modes) error {
	md.NewMode()

	tick := md.AddDuration("tick", tuidump.DefaultTick, "period of the display update")
	c := addCommonFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	s, err := start(c, sdlinput.Headless)
	if err != nil || s == nil {
		return err
	}

	err = tuidump.Run(s.dmp, s.src, *tick)
	endErr := s.end(s.dmp)

	if err != nil {
		return err
	}
	return endErr
}

func echoMode(md *modalflag.Modes) error {
	md.NewMode()

	tty := md.AddString("tty", echo.DefaultTerminal, "terminal to read the keyboard from")
	c := addCommonFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	s, err := start(c, sdlinput.Headless)
	if err != nil || s == nil {
		return err
	}

	var keys <-chan userinput.Event
	kb, err := echo.OpenKeyboard(*tty)
	if err != nil {
		// joystick events can still be shown without a keyboard
		logger.Log(logger.Allow, "echo", err)
	} else {
		keys = kb.Events()
		defer kb.Close()
	}

	echo.Run(s.dmp, s.src, keys, os.Stdout)
	return s.end(s.dmp)
}
