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

import "github.com/jetsetilly/dumpevents/categories"

// columnX returns the left edge of the column for the category.
func columnX(c categories.Category, width int) int32 {
	return int32(int(c) * width / categories.Count)
}

// rowY returns the top edge of the row. Row zero is the row immediately below
// the column header.
func rowY(row int, rowHeight int) int32 {
	return int32(columnTop + rowHeight*(row+1))
}
