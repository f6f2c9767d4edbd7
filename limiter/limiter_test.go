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

package limiter_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/dumpevents/limiter"
	"github.com/jetsetilly/dumpevents/test"
)

// tolerance of measurement
const measurementTolerance = 0.1
const numSecondsPerTest = 2

func TestTicker(t *testing.T) {
	if testing.Short() {
		t.Skip("limiter test takes several seconds")
	}

	lmtr := limiter.NewLimiter()
	defer lmtr.Stop()

	for _, fps := range []float32{60.0, 30.0} {
		lmtr.SetLimit(fps)
		for range int(fps * numSecondsPerTest) {
			lmtr.CheckFrame()
			lmtr.MeasureActual()
		}
		rate := lmtr.Measured.Load().(float32)
		test.ExpectSuccess(t, rate >= fps*(1.0-measurementTolerance) && rate <= fps*(1.0+measurementTolerance), fps, rate)
	}
}

func TestInactive(t *testing.T) {
	lmtr := limiter.NewLimiter()
	defer lmtr.Stop()

	lmtr.SetLimit(0)
	test.ExpectFailure(t, lmtr.Active)

	// an inactive limiter never waits
	start := time.Now()
	for range 1000 {
		lmtr.CheckFrame()
	}
	test.ExpectSuccess(t, time.Since(start) < time.Second)

	lmtr.SetLimit(60)
	test.ExpectSuccess(t, lmtr.Active)
	test.ExpectEquality(t, lmtr.RequestedFPS.Load().(float32), float32(60))
}
