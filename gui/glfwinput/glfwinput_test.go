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

package glfwinput

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/jetsetilly/inputrelay/test"
	"github.com/jetsetilly/inputrelay/userinput"
)

func TestKeys(t *testing.T) {
	test.ExpectEquality(t, Keysym(glfw.KeyQ), userinput.Keysym('q'))
	test.ExpectEquality(t, Keysym(glfw.Key1), userinput.Keysym('1'))
	test.ExpectEquality(t, Keysym(glfw.KeyF3), userinput.KeyF(3))
	test.ExpectEquality(t, Keysym(glfw.KeyEnter), userinput.KeyReturn)
	test.ExpectEquality(t, Keysym(glfw.KeyKPAdd), userinput.KeyNone)

	for _, k := range []glfw.Key{glfw.KeyQ, glfw.KeyF12, glfw.KeyLeftShift, glfw.KeySlash} {
		test.ExpectEquality(t, Key(Keysym(k)), k)
	}

	ev, ok := KeyEvent(glfw.KeyR, glfw.Press, glfw.ModControl|glfw.ModSuper)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ev.Kind, userinput.KindKeyDown)
	test.ExpectEquality(t, ev.Mod, userinput.ModControl|userinput.ModMeta)

	_, ok = KeyEvent(glfw.KeyR, glfw.Repeat, 0)
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, ModifierKey(userinput.ModOption|userinput.ModCommand), glfw.ModAlt|glfw.ModSuper)
}

func TestAxisValue(t *testing.T) {
	test.ExpectEquality(t, AxisValue(0), int16(0))
	test.ExpectEquality(t, AxisValue(1), int16(32767))
	test.ExpectEquality(t, AxisValue(-1), int16(-32768))
	test.ExpectEquality(t, AxisValue(-1.5), int16(-32768))
	test.ExpectEquality(t, AxisValue(0.5), int16(16383))
}

func TestSampleDiff(t *testing.T) {
	var s sample

	// the first sample reports everything that is not at rest
	evs := s.diff(2, []float32{0, 1}, []glfw.Action{glfw.Release, glfw.Press}, []glfw.JoystickHatState{glfw.HatCentered})
	test.ExpectEquality(t, len(evs), 2)
	test.ExpectEquality(t, evs[0], userinput.Event{Kind: userinput.KindAxisMotion, Device: 2, Index: 1, Value: 32767})
	test.ExpectEquality(t, evs[1], userinput.Event{Kind: userinput.KindButtonDown, Device: 2, Index: 1})

	evs = s.diff(2, []float32{0, 1}, []glfw.Action{glfw.Release, glfw.Press}, []glfw.JoystickHatState{glfw.HatCentered})
	test.ExpectEquality(t, len(evs), 0)

	evs = s.diff(2, []float32{0, 1}, []glfw.Action{glfw.Release, glfw.Release}, []glfw.JoystickHatState{glfw.HatLeftUp})
	test.ExpectEquality(t, len(evs), 2)
	test.ExpectEquality(t, evs[0].Kind, userinput.KindButtonUp)
	test.ExpectEquality(t, userinput.HatDirection(evs[1].Value), userinput.HatLeft|userinput.HatUp)
}
