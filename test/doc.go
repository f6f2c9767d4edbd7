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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() is the most basic and probably the most useful
// function. It compares like-typed variables for equality and returns true if
// they match. A boolean false is returned and t.Errorf() called otherwise.
//
// The ExpectSuccess() and ExpectFailure() functions test for "success" with
// bool and error values. For bool values success means true and for error
// values success means nil. The functions accept any type but for types other
// than bool or error the test fails immediately.
//
// The Demand*() functions are the same as the Expect*() functions except that
// t.Fatalf() is called on failure.
package test
