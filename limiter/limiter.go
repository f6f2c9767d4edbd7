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

// Package limiter is a frame rate limiter for the presentation loops of the
// event viewer. The limiter waits on a ticker rather than sleeping, which
// keeps the frame rate steady even when the time taken by each frame varies.
package limiter

import (
	"sync/atomic"
	"time"
)

// DefaultFPS is the frame rate used by NewLimiter().
const DefaultFPS float32 = 60.0

// Limiter waits in CheckFrame() so that the calling loop runs at the
// requested number of frames per second.
type Limiter struct {
	// whether to wait for fps limited each frame
	Active bool

	// the requested number of frames per second
	RequestedFPS atomic.Value // float32

	// pulse that performs the limiting. the duration of the ticker is set
	// when SetLimit() is called with a new fps value
	pulse *time.Ticker

	// waiting on the pulse every frame is too fine grained for higher frame
	// rates. the limiter instead waits every pulseCtLimit frames
	pulseCt      int
	pulseCtLimit int

	// pulse that performs the FPS measurement
	measuringPulse *time.Ticker

	// the measured FPS is the number of frames divided by the amount of
	// elapsed time since the previous measurement
	measureTime time.Time
	measureCt   int

	// the measured number of frames per second
	Measured atomic.Value // float32
}

// NewLimiter is preferred method of initialising a new instance of the Limiter
// type. The limit is set to DefaultFPS.
func NewLimiter() *Limiter {
	lmtr := &Limiter{
		Active:         true,
		pulse:          time.NewTicker(time.Second / time.Duration(DefaultFPS)),
		measuringPulse: time.NewTicker(time.Second),
	}
	lmtr.Measured.Store(float32(0.0))
	lmtr.SetLimit(DefaultFPS)
	return lmtr
}

// SetLimit sets the number of frames per second. A value of zero or less
// deactivates the limiter.
func (lmtr *Limiter) SetLimit(fps float32) {
	lmtr.RequestedFPS.Store(fps)

	if fps <= 0.0 {
		lmtr.Active = false
		return
	}
	lmtr.Active = true

	lmtr.pulseCt = 0
	lmtr.pulseCtLimit = 1 + int(fps/20)
	lmtr.pulse.Reset(time.Duration(float32(time.Second) / fps * float32(lmtr.pulseCtLimit)))

	// restart actual FPS rate measurement values
	lmtr.measureCt = 0
	lmtr.measureTime = time.Now()
}

// CheckFrame should be called every frame.
func (lmtr *Limiter) CheckFrame() {
	lmtr.measureCt++

	if lmtr.Active {
		lmtr.pulseCt++
		if lmtr.pulseCt >= lmtr.pulseCtLimit {
			lmtr.pulseCt = 0
			<-lmtr.pulse.C
		}
	}
}

// MeasureActual measures frame rate on every tick of the measuringPulse ticker.
// Checking the pulse channel is itself expensive so the function should not be
// called more than once per frame.
func (lmtr *Limiter) MeasureActual() {
	select {
	case <-lmtr.measuringPulse.C:
		t := time.Now()
		m := float32(lmtr.measureCt) / float32(t.Sub(lmtr.measureTime).Seconds())
		lmtr.Measured.Store(m)

		// reset time and count ready for next measurement
		lmtr.measureTime = t
		lmtr.measureCt = 0
	default:
	}
}

// Stop the tickers used by the limiter. The Limiter should not be used after
// Stop() has been called.
func (lmtr *Limiter) Stop() {
	lmtr.pulse.Stop()
	lmtr.measuringPulse.Stop()
}
