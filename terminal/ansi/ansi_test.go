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

package ansi_test

import (
	"testing"

	"github.com/jetsetilly/inputrelay/terminal/ansi"
	"github.com/jetsetilly/inputrelay/test"
)

func TestColorBuild(t *testing.T) {
	s, err := ansi.ColorBuild("red", "", "", true)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[91m")

	s, err = ansi.ColorBuild("red", "blue", "bold", false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[31;44;1m")

	_, err = ansi.ColorBuild("puce", "", "", false)
	test.ExpectFailure(t, err)

	test.ExpectEquality(t, ansi.NormalPen, "\033[m")
}

func TestCursorPosition(t *testing.T) {
	test.ExpectEquality(t, ansi.CursorPosition(0, 0), "\033[1;1H")
	test.ExpectEquality(t, ansi.CursorPosition(4, 10), "\033[5;11H")
}
