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

package userinput

// the number of ticks a direction must be held before it repeats and the
// number of ticks between repeats. a tick is a single pass of the menu input
// loop, which runs at 60Hz.
const (
	AutorepeatDelay = 30
	AutorepeatRate  = 4
)

// Autorepeat repeats a held menu direction. Use NewAutorepeat() to create a
// value with the correct initial delay.
type Autorepeat struct {
	action MenuAction
	delay  int
}

// NewAutorepeat is the preferred method of initialisation for the Autorepeat
// type.
func NewAutorepeat() Autorepeat {
	return Autorepeat{delay: AutorepeatDelay}
}

// Press sets the action to be repeated. The delay is not restarted.
func (a *Autorepeat) Press(action MenuAction) {
	a.action = action
}

// Stop clears the repeating action without restarting the delay.
func (a *Autorepeat) Stop() {
	a.action = MenuNone
}

// Release clears the repeating action and restarts the delay.
func (a *Autorepeat) Release() {
	a.action = MenuNone
	a.delay = AutorepeatDelay
}

// Restart the delay without changing the repeating action.
func (a *Autorepeat) Restart() {
	a.delay = AutorepeatDelay
}

// Tick should be called once per menu input loop. It returns the action to
// repeat or MenuNone. The delay only counts down while an action is held.
func (a *Autorepeat) Tick() MenuAction {
	if a.delay > 0 {
		if a.action != MenuNone {
			a.delay--
		}
		return MenuNone
	}
	a.delay = AutorepeatRate
	return a.action
}
