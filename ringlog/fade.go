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

package ringlog

import "time"

// Fade describes how the intensity of an entry decays with age.
//
// The intensity moves linearly from Start to End over Period. It is then held
// at End for a further Period, after which the fade is no longer active.
type Fade struct {
	Period time.Duration
	Start  uint8
	End    uint8
}

// DefaultFade is a one second fade from full intensity to half intensity.
var DefaultFade = Fade{
	Period: time.Second,
	Start:  0xff,
	End:    0x7f,
}

// Intensity returns the intensity for an entry of the specified age and
// whether the fade is still active.
func (f Fade) Intensity(age time.Duration) (uint8, bool) {
	if f.Period <= 0 {
		return f.End, false
	}

	if age < 0 {
		age = 0
	}

	switch {
	case age < f.Period:
		scaled := (int64(f.Start) - int64(f.End)) * int64(age) / int64(f.Period)
		return uint8(int64(f.Start) - scaled), true
	case age < f.Period*2:
		return f.End, true
	}

	return f.End, false
}
