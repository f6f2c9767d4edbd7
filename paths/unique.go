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

package paths

import (
	"fmt"
	"strings"
	"time"
)

// UniqueFilename creates a filename that (assuming a functioning clock) should
// not collide with any existing file. Note that the function does not test for
// this.
//
// Used to generate filenames for memviz dumps. Format of returned string is:
//
//	prepend_label_YYYYMMDD_HHMMSS.ext
//
// If label is empty the returned string will be of the format:
//
//	prepend_YYYYMMDD_HHMMSS.ext
func UniqueFilename(prepend string, label string, ext string) string {
	return uniqueFilename(time.Now(), prepend, label, ext)
}

func uniqueFilename(n time.Time, prepend string, label string, ext string) string {
	timestamp := n.Format("20060102_150405")

	var fn string
	if l := strings.TrimSpace(label); len(l) > 0 {
		fn = fmt.Sprintf("%s_%s_%s", prepend, l, timestamp)
	} else {
		fn = fmt.Sprintf("%s_%s", prepend, timestamp)
	}

	if ext = strings.TrimPrefix(ext, "."); ext != "" {
		fn = fmt.Sprintf("%s.%s", fn, ext)
	}

	return fn
}
