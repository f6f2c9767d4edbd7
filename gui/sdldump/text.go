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

	"github.com/jetsetilly/dumpevents/ringlog"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// text is a line of rendered text. It implements the ringlog.Artifact
// interface.
type text struct {
	surf *sdl.Surface
	tex  *sdl.Texture
}

var white = sdl.Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// newText renders the line with the font. The texture is created for the
// renderer.
func newText(rnd *sdl.Renderer, font *ttf.Font, line string) (*text, error) {
	surf, err := font.RenderUTF8Blended(line, white)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	tex, err := rnd.CreateTextureFromSurface(surf)
	if err != nil {
		surf.Free()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	return &text{surf: surf, tex: tex}, nil
}

// Destroy implements the ringlog.Artifact interface.
func (t *text) Destroy() {
	if t.tex != nil {
		_ = t.tex.Destroy()
		t.tex = nil
	}
	if t.surf != nil {
		t.surf.Free()
		t.surf = nil
	}
}

// copy the text to the renderer at the position.
func (t *text) copy(rnd *sdl.Renderer, x, y int32) error {
	dst := sdl.Rect{X: x, Y: y, W: t.surf.W, H: t.surf.H}
	return rnd.Copy(t.tex, nil, &dst)
}

// artifactor returns a function suitable for ringlog.Entry.Materialize().
func (sd *SdlDump) artifactor() func(string) (ringlog.Artifact, error) {
	return func(line string) (ringlog.Artifact, error) {
		// a line with no glyphs cannot be rendered by SDL_ttf
		if line == "" {
			return nil, nil
		}
		t, err := newText(sd.renderer, sd.font, line)
		if err != nil {
			return nil, err
		}
		return t, nil
	}
}

// decoration is text that persists across many frames.
type decoration struct {
	x, y int32
	t    *text
}

func (dec *decoration) install(sd *SdlDump, x, y int32, line string) error {
	dec.destroy()
	t, err := newText(sd.renderer, sd.font, line)
	if err != nil {
		return err
	}
	dec.x = x
	dec.y = y
	dec.t = t
	return nil
}

func (dec *decoration) valid() bool {
	return dec.t != nil
}

func (dec *decoration) destroy() {
	if dec.t != nil {
		dec.t.Destroy()
		dec.t = nil
	}
}

func (dec *decoration) render(rnd *sdl.Renderer) error {
	if dec.t == nil {
		return nil
	}
	return dec.t.copy(rnd, dec.x, dec.y)
}
