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

package userinput_test

import (
	"testing"

	"github.com/jetsetilly/inputrelay/test"
	"github.com/jetsetilly/inputrelay/userinput"
)

func TestAutorepeat(t *testing.T) {
	a := userinput.NewAutorepeat()

	// nothing held
	for range 100 {
		test.DemandEquality(t, a.Tick(), userinput.MenuNone)
	}

	a.Press(userinput.MenuDown)

	// the initial delay
	for range userinput.AutorepeatDelay {
		test.DemandEquality(t, a.Tick(), userinput.MenuNone)
	}

	// first repeat and then one repeat every AutorepeatRate ticks
	test.ExpectEquality(t, a.Tick(), userinput.MenuDown)
	for range 3 {
		for range userinput.AutorepeatRate {
			test.DemandEquality(t, a.Tick(), userinput.MenuNone)
		}
		test.ExpectEquality(t, a.Tick(), userinput.MenuDown)
	}

	// release restarts the initial delay
	a.Release()
	a.Press(userinput.MenuUp)
	for range userinput.AutorepeatDelay {
		test.DemandEquality(t, a.Tick(), userinput.MenuNone)
	}
	test.ExpectEquality(t, a.Tick(), userinput.MenuUp)
}

func TestMenuActionRelease(t *testing.T) {
	r := userinput.MenuSelect.Release()
	test.ExpectSuccess(t, r.IsRelease())
	test.ExpectFailure(t, userinput.MenuSelect.IsRelease())
	test.ExpectEquality(t, r.String(), "select release")
}
