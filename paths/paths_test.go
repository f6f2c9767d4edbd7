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

package paths_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/dumpevents/paths"
	"github.com/jetsetilly/dumpevents/test"
)

func TestPaths(t *testing.T) {
	// paths are relative to the working directory in development builds
	t.Chdir(t.TempDir())

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".dumpevents", "foo", "bar", "baz"))

	// the sub-path directory has been created
	info, err := os.Stat(filepath.Join(".dumpevents", "foo", "bar"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, info.IsDir())

	pth, err = paths.ResourcePath("foo/bar", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".dumpevents", "foo", "bar"))

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".dumpevents", "baz"))

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".dumpevents")
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("memviz", "dumper", "dot")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "memviz_dumper_"))
	test.ExpectSuccess(t, strings.HasSuffix(fn, ".dot"))

	fn = paths.UniqueFilename("memviz", " ", "")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "memviz_"))
	test.ExpectFailure(t, strings.Contains(fn, "."))
}
