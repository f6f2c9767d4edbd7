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
	"fmt"

	"github.com/jetsetilly/dumpevents/categories"
	"github.com/jetsetilly/dumpevents/dumper"
	"github.com/jetsetilly/dumpevents/gui/fonts"
	"github.com/jetsetilly/dumpevents/gui/sdlinput"
	"github.com/jetsetilly/dumpevents/limiter"
	"github.com/jetsetilly/dumpevents/logger"
	"github.com/jetsetilly/dumpevents/ringlog"
	"github.com/jetsetilly/dumpevents/version"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Default window geometry.
const (
	DefaultWidth  = 1280
	DefaultHeight = 720
)

// the position of the first column header
const (
	columnTop    = 40
	separatorGap = 4
)

// heartbeat is drawn this many pixels above the bottom of the window
const heartbeatMargin = 20

// Options for NewSdlDump().
type Options struct {
	Width  int
	Height int

	// frames per second. zero or less means unlimited
	FPS float32

	// where to look for the font file
	Font fonts.Locations
}

// SdlDump draws the columns of a Dumper into an SDL window.
type SdlDump struct {
	dmp *dumper.Dumper
	src *sdlinput.Source

	window   *sdl.Window
	renderer *sdl.Renderer
	font     *ttf.Font

	lmtr *limiter.Limiter

	// the size of the window the last time the decorations were installed
	width  int
	height int

	banner    decoration
	headers   [categories.Count]decoration
	heartbeat decoration

	// the most recent heartbeat. the heartbeat decoration is reinstalled
	// from it when the window changes size
	beat    dumper.Beat
	beating bool
}

// NewSdlDump is the preferred method of initialisation for the SdlDump type.
// The Source must have been created with sdlinput.Everything.
func NewSdlDump(dmp *dumper.Dumper, src *sdlinput.Source, opts Options) (*SdlDump, error) {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}

	sd := &SdlDump{
		dmp: dmp,
		src: src,
	}

	var err error

	sd.window, err = sdl.CreateWindow(version.Title(),
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(opts.Width), int32(opts.Height),
		sdl.WINDOW_OPENGL|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	logger.Logf(logger.Debug, "sdl", "opened window %dx%d", opts.Width, opts.Height)

	sd.renderer, err = sdl.CreateRenderer(sd.window, -1, 0)
	if err != nil {
		_ = sd.window.Destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	err = ttf.Init()
	if err != nil {
		sd.destroyWindow()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	if opts.Font.BasePath == "" {
		opts.Font.BasePath = sdl.GetBasePath()
	}
	pth, err := fonts.Search(opts.Font)
	if err != nil {
		ttf.Quit()
		sd.destroyWindow()
		return nil, err
	}
	logger.Logf(logger.Allow, "sdl", "using font file %s", pth)

	sd.font, err = ttf.OpenFont(pth, dmp.Prefs().FontSize.Get().(int))
	if err != nil {
		ttf.Quit()
		sd.destroyWindow()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	sd.lmtr = limiter.NewLimiter()
	sd.lmtr.SetLimit(opts.FPS)

	w, h := sd.window.GetSize()
	dmp.Resize(int(w), int(h))

	return sd, nil
}

// Run the main loop until a quit event is received.
func (sd *SdlDump) Run() error {
	for {
		if sd.src.Poll(sd.dmp.HandleEvent) {
			return nil
		}

		if beat, ok := sd.dmp.Cycle(); ok {
			sd.beat = beat
			sd.beating = true
			if err := sd.installHeartbeat(); err != nil {
				return err
			}
			logger.Logf(logger.Debug, "sdl", "measured fps: %.2f", sd.lmtr.Measured.Load().(float32))
		}

		if err := sd.update(); err != nil {
			return err
		}

		if err := sd.render(); err != nil {
			return err
		}

		sd.lmtr.CheckFrame()
		sd.lmtr.MeasureActual()
	}
}

func (sd *SdlDump) installHeartbeat() error {
	_, h := sd.dmp.Size()
	return sd.heartbeat.install(sd, 0, int32(h-heartbeatMargin), sd.beat.String())
}

// checkSize destroys the decorations that are positioned relative to the size
// of the window, if the size has changed. Returns true if the size has
// changed.
func (sd *SdlDump) checkSize() bool {
	w, h := sd.dmp.Size()
	if w == sd.width && h == sd.height {
		return false
	}
	sd.width = w
	sd.height = h
	for i := range sd.headers {
		sd.headers[i].destroy()
	}
	sd.heartbeat.destroy()
	return true
}

// update the decorations and create textures for any new entries.
func (sd *SdlDump) update() error {
	if sd.checkSize() && sd.beating {
		if err := sd.installHeartbeat(); err != nil {
			return err
		}
	}

	if !sd.banner.valid() {
		if err := sd.banner.install(sd, 0, 0, dumper.Banner); err != nil {
			return err
		}
	}

	for _, c := range categories.List {
		if !sd.headers[c].valid() {
			x := columnX(c, sd.width)
			if err := sd.headers[c].install(sd, x, columnTop, c.String()); err != nil {
				return err
			}
		}
	}

	create := sd.artifactor()
	var err error
	for _, c := range categories.List {
		sd.dmp.Log(c).Each(func(i int, e *ringlog.Entry) bool {
			if e.Artifact() == nil && e.Line() != "" {
				logger.Logf(logger.Debug, "sdl", "create text %d,%d", c, i)
			}
			_, err = e.Materialize(create)
			return err == nil
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func (sd *SdlDump) render() error {
	rnd := sd.renderer

	if err := rnd.SetDrawColor(0, 0, 0, 0); err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	if err := rnd.Clear(); err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	if err := rnd.SetDrawColor(0xff, 0xff, 0xff, 0xff); err != nil {
		return fmt.Errorf("sdl: %w", err)
	}

	now := sd.dmp.Now()
	fade := sd.dmp.Fade()
	rowHeight := sd.dmp.Prefs().RowHeight.Get().(int)

	for _, c := range categories.List {
		x := columnX(c, sd.width)

		if c > 0 {
			if err := rnd.DrawLine(x-separatorGap, columnTop, x-separatorGap, int32(sd.height)); err != nil {
				return fmt.Errorf("sdl: %w", err)
			}
		}

		var err error
		sd.dmp.Log(c).Each(func(i int, e *ringlog.Entry) bool {
			t, ok := e.Artifact().(*text)
			if !ok {
				return true
			}

			// the alpha of the texture is left unchanged once the fade is
			// complete
			if alpha, active := e.Fade(fade, now); active {
				if err = t.tex.SetAlphaMod(alpha); err != nil {
					return false
				}
			}

			err = t.copy(rnd, x, rowY(i, rowHeight))
			return err == nil
		})
		if err != nil {
			return fmt.Errorf("sdl: %w", err)
		}
	}

	if err := sd.renderDecorations(); err != nil {
		return fmt.Errorf("sdl: %w", err)
	}

	rnd.Present()

	return nil
}

func (sd *SdlDump) renderDecorations() error {
	if err := sd.banner.render(sd.renderer); err != nil {
		return err
	}
	for i := range sd.headers {
		if err := sd.headers[i].render(sd.renderer); err != nil {
			return err
		}
	}
	return sd.heartbeat.render(sd.renderer)
}

func (sd *SdlDump) destroyWindow() {
	if sd.renderer != nil {
		_ = sd.renderer.Destroy()
		sd.renderer = nil
	}
	if sd.window != nil {
		_ = sd.window.Destroy()
		sd.window = nil
	}
}

// Destroy releases every texture, the font, the renderer and the window. The
// Source is not destroyed.
func (sd *SdlDump) Destroy() {
	sd.lmtr.Stop()

	// textures belong to the renderer and must be destroyed first
	sd.dmp.Destroy()
	sd.banner.destroy()
	for i := range sd.headers {
		sd.headers[i].destroy()
	}
	sd.heartbeat.destroy()

	sd.font.Close()
	ttf.Quit()

	sd.destroyWindow()
}
