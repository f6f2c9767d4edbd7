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

package fonts

import (
	"os"
	"path/filepath"

	"github.com/jetsetilly/dumpevents/curated"
)

// DefaultFont is the font file searched for when no font is specified.
const DefaultFont = "FreeMono.ttf"

// EnvPath is the environment variable naming a directory that contains the
// font file.
const EnvPath = "SDL_DUMPEVENTS_PATH"

// Sentinal error returned by Search().
const NotFound = "fonts: cannot find %s"

// Locations describes where Search() should look for a font.
type Locations struct {
	// explicit path to a font file. if this is not empty then no other
	// location is tried
	Path string

	// name of the font file to look for in the directories
	Filename string

	// directory of the executable. may be empty
	BasePath string

	// lookup function for the EnvPath variable. normally os.Getenv
	Getenv func(string) string
}

// Candidates returns the list of file paths that Search() will try, in order.
func (loc Locations) Candidates() []string {
	if loc.Path != "" {
		return []string{loc.Path}
	}

	fn := loc.Filename
	if fn == "" {
		fn = DefaultFont
	}

	var c []string
	if loc.Getenv != nil {
		if d := loc.Getenv(EnvPath); d != "" {
			c = append(c, filepath.Join(d, fn))
		}
	}
	if loc.BasePath != "" {
		c = append(c, filepath.Join(loc.BasePath, fn))
	}
	c = append(c, fn)

	return c
}

// Search returns the first candidate that is a regular file.
func Search(loc Locations) (string, error) {
	c := loc.Candidates()
	for _, p := range c {
		if fi, err := os.Stat(p); err == nil && fi.Mode().IsRegular() {
			return p, nil
		}
	}
	return "", curated.Errorf(NotFound, c[len(c)-1])
}
