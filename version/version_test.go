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

package version_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/dumpevents/test"
	"github.com/jetsetilly/dumpevents/version"
)

func TestVersion(t *testing.T) {
	v, r, release := version.Version()

	// tests are never built with a version number
	test.ExpectFailure(t, release)
	test.ExpectInequality(t, v, "")
	test.ExpectInequality(t, r, "")

	title := version.Title()
	test.ExpectSuccess(t, strings.HasPrefix(title, version.ApplicationName))
	test.ExpectSuccess(t, strings.Contains(title, v))
}
