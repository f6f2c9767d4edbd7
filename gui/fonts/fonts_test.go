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

package fonts_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/dumpevents/curated"
	"github.com/jetsetilly/dumpevents/gui/fonts"
	"github.com/jetsetilly/dumpevents/test"
)

func TestCandidates(t *testing.T) {
	loc := fonts.Locations{
		BasePath: "/opt/dumpevents",
		Getenv: func(k string) string {
			if k == fonts.EnvPath {
				return "/usr/share/fonts"
			}
			return ""
		},
	}

	c := loc.Candidates()
	test.DemandEquality(t, len(c), 3)
	test.ExpectEquality(t, c[0], filepath.Join("/usr/share/fonts", fonts.DefaultFont))
	test.ExpectEquality(t, c[1], filepath.Join("/opt/dumpevents", fonts.DefaultFont))
	test.ExpectEquality(t, c[2], fonts.DefaultFont)

	// an explicit path is the only candidate
	loc.Path = "/tmp/font.ttf"
	c = loc.Candidates()
	test.DemandEquality(t, len(c), 1)
	test.ExpectEquality(t, c[0], "/tmp/font.ttf")

	// no environment and no base path
	c = fonts.Locations{Filename: "Other.ttf"}.Candidates()
	test.DemandEquality(t, len(c), 1)
	test.ExpectEquality(t, c[0], "Other.ttf")
}

func TestSearch(t *testing.T) {
	env := t.TempDir()
	base := t.TempDir()
	t.Chdir(t.TempDir())

	loc := fonts.Locations{
		BasePath: base,
		Getenv: func(k string) string {
			return env
		},
	}

	_, err := fonts.Search(loc)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, fonts.NotFound))

	// the working directory is the last resort
	test.DemandSuccess(t, os.WriteFile(fonts.DefaultFont, []byte{0}, 0o644))
	p, err := fonts.Search(loc)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, fonts.DefaultFont)

	// the base path is preferred to the working directory
	test.DemandSuccess(t, os.WriteFile(filepath.Join(base, fonts.DefaultFont), []byte{0}, 0o644))
	p, err = fonts.Search(loc)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, filepath.Join(base, fonts.DefaultFont))

	// the environment is preferred to everything else
	test.DemandSuccess(t, os.WriteFile(filepath.Join(env, fonts.DefaultFont), []byte{0}, 0o644))
	p, err = fonts.Search(loc)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, filepath.Join(env, fonts.DefaultFont))

	// a directory is not a font
	_, err = fonts.Search(fonts.Locations{Path: env})
	test.ExpectFailure(t, err)
}
