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

package modalflag

import (
	"fmt"
	"strings"
)

// help amends the usage message produced by the flag package with the name
// of the current mode, the list of sub-modes and any additional help.
func help(usage string, banner string, subModes []string, additionalHelp string) string {
	if usage == "Usage:\n" && len(subModes) == 0 {
		if banner != "" {
			return fmt.Sprintf("No help available for %s\n", banner)
		}
		return "No help available\n"
	}

	s := &strings.Builder{}

	first, rest, _ := strings.Cut(usage, "\n")
	if banner != "" {
		fmt.Fprintf(s, "%s for %s mode\n", first, banner)
	} else {
		fmt.Fprintf(s, "%s\n", first)
	}
	s.WriteString(rest)

	if len(subModes) > 0 {
		// separate sub-mode information from flag information
		if rest != "" {
			s.WriteString("\n")
		}
		fmt.Fprintf(s, "  available sub-modes: %s\n", strings.Join(subModes, ", "))
		fmt.Fprintf(s, "    default: %s\n", subModes[0])
	}

	if additionalHelp != "" {
		fmt.Fprintf(s, "\n%s\n", additionalHelp)
	}

	return s.String()
}
