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

package dumper_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/dumpevents/dumper"
	"github.com/jetsetilly/dumpevents/test"
)

func TestHeartbeat(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	h := dumper.NewHeartbeat(start)

	// one millisecond per cycle
	var beats []dumper.Beat
	for i := range dumper.CyclesPerHeartbeat*2 + 1 {
		b, ok := h.Cycle(start.Add(time.Duration(i) * time.Millisecond))
		if ok {
			beats = append(beats, b)
		}
	}
	test.DemandEquality(t, len(beats), 3)

	// first heartbeat is on the first cycle
	test.ExpectEquality(t, beats[0], dumper.Beat{Count: 0, Delta: 0, Mean: 0, Sigma: 0})

	// samples are 0 and 500
	test.ExpectEquality(t, beats[1], dumper.Beat{Count: 1, Delta: 500, Mean: 250, Sigma: 353})

	// samples are 0, 500 and 500
	test.ExpectEquality(t, beats[2], dumper.Beat{Count: 2, Delta: 500, Mean: 333, Sigma: 288})
}

func TestHeartbeatSamples(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	h := dumper.NewHeartbeat(start)

	// a steady heartbeat of 10ms. once the first sample (of zero) has been
	// pushed out of the sample buffer the deviation will be zero
	now := start
	var b dumper.Beat
	for i := range dumper.CyclesPerHeartbeat * (dumper.MaxHeartbeatSamples + 1) {
		if i%dumper.CyclesPerHeartbeat == 0 && i > 0 {
			now = now.Add(10 * time.Millisecond)
		}
		if nb, ok := h.Cycle(now); ok {
			b = nb
		}
	}
	test.ExpectEquality(t, b.Count, dumper.MaxHeartbeatSamples)
	test.ExpectEquality(t, b.Delta, 10)
	test.ExpectEquality(t, b.Mean, 10)
	test.ExpectEquality(t, b.Sigma, 0)
}

func TestBeatString(t *testing.T) {
	test.ExpectEquality(t, dumper.Beat{Count: 1, Delta: 5, Mean: 4, Sigma: 1}.String(), "♥ +5 x̄=4 σ=1")
	test.ExpectEquality(t, dumper.Beat{Count: 2, Delta: 16, Mean: 16, Sigma: 0}.String(), "♡ +16 x̄=16 σ=0")
}
