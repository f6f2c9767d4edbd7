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

package dumper

import (
	"fmt"
	"math"
	"time"
)

// CyclesPerHeartbeat is the number of main loop cycles between heartbeats.
const CyclesPerHeartbeat = 500

// MaxHeartbeatSamples is the number of heartbeat samples used for the
// statistics in a Beat.
const MaxHeartbeatSamples = 17

// Beat is the result of a heartbeat. Values are in milliseconds.
type Beat struct {
	// number of heartbeats before this one
	Count int

	// time since the previous heartbeat
	Delta int

	// mean time and standard deviation between the sampled heartbeats
	Mean  int
	Sigma int
}

// String returns the heatbeat report. The heart symbol alternates between a
// filled and an empty heart on every beat.
func (b Beat) String() string {
	heart := "♡"
	if b.Count%2 == 1 {
		heart = "♥"
	}
	return fmt.Sprintf("%s +%d x̄=%d σ=%d", heart, b.Delta, b.Mean, b.Sigma)
}

// Heartbeat measures the time taken by the main loop. A sample is taken
// every CyclesPerHeartbeat calls to Cycle().
type Heartbeat struct {
	cycles int
	last   time.Time

	// samples is a circular buffer. next wraps and count is capped at
	// MaxHeartbeatSamples
	samples [MaxHeartbeatSamples]int64
	next    int
	count   int
}

// NewHeartbeat is the preferred method of initialisation for the Heartbeat
// type. The start time is the time the first Delta is measured from.
func NewHeartbeat(start time.Time) *Heartbeat {
	return &Heartbeat{last: start}
}

// Cycle should be called once per main loop cycle. Returns a Beat and true if
// this cycle is a heartbeat.
func (h *Heartbeat) Cycle(now time.Time) (Beat, bool) {
	defer func() { h.cycles++ }()

	if h.cycles%CyclesPerHeartbeat != 0 {
		return Beat{}, false
	}

	delta := now.Sub(h.last).Milliseconds()
	h.last = now

	h.samples[h.next] = delta
	h.next = (h.next + 1) % MaxHeartbeatSamples
	if h.count < MaxHeartbeatSamples {
		h.count++
	}

	var sum, sumsq int64
	for _, s := range h.samples[:h.count] {
		sum += s
		sumsq += s * s
	}

	n := int64(h.count)
	mean := delta
	var variance int64
	if n > 1 {
		variance = (sumsq - (sum*sum)/n) / (n - 1)
		mean = sum / n
	}

	return Beat{
		Count: h.cycles / CyclesPerHeartbeat,
		Delta: int(delta),
		Mean:  int(mean),
		Sigma: int(math.Sqrt(float64(max(variance, 0)))),
	}, true
}
