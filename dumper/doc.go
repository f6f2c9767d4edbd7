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

// Package dumper is the heart of the event viewer. The Dumper type holds the
// five columns of logged events and is given input events by the presentation
// layer. The presentation layer then reads the columns every frame and draws
// them.
//
// A presentation layer will typically look something like:
//
//	d := dumper.NewDumper(prefs)
//	defer d.Destroy()
//
//	for {
//		for ev := range events {
//			if d.HandleEvent(ev) {
//				return
//			}
//		}
//		d.Cycle()
//		for _, c := range categories.List {
//			d.Log(c).Each(draw)
//		}
//	}
//
// The Heartbeat type measures the time taken by the main loop and is reported
// by the presentation layer.
package dumper
