// This file is part of Inputrelay.
//
// Inputrelay is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Inputrelay is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Inputrelay.  If not, see <https://www.gnu.org/licenses/>.

// Package test bundles helper functions that remove common boilerplate from
// the package tests.
//
// The Expect functions report a failure with t.Errorf() and allow the test to
// continue. The Demand functions report a failure with t.Fatalf() and should
// be used when later parts of the test depend on the value being correct.
//
// It is worth describing how the success/failure functions handle the nil
// type because it is not obvious. The nil type is considered a success and
// consequently will cause ExpectFailure to fail and ExpectSuccess to
// succeed. This is because of how errors usually work (nil to indicate no
// error).
//
// The CompareWriter and RingWriter types implement the io.Writer interface and
// should be used to capture output.
package test
