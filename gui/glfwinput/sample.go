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
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/jetsetilly/inputrelay/userinput"
)

// AxisValue converts a GLFW axis value (-1.0 to 1.0) to the range used by
// userinput axis events.
func AxisValue(v float32) int16 {
	switch {
	case v >= 1.0:
		return 32767
	case v <= -1.0:
		return -32768
	}
	return int16(v * 32767)
}

// sample is the state of a joystick on the previous pass of the service loop
type sample struct {
	axes    []int16
	buttons []glfw.Action
	hats    []glfw.JoystickHatState
}

// diff returns the events needed to bring the sample up to date with the
// current state of the joystick. the sample is updated.
func (s *sample) diff(id userinput.DeviceID, axes []float32, buttons []glfw.Action, hats []glfw.JoystickHatState) []userinput.Event {
	var evs []userinput.Event

	if len(s.axes) != len(axes) {
		s.axes = make([]int16, len(axes))
	}
	for i, a := range axes {
		v := AxisValue(a)
		if v != s.axes[i] {
			s.axes[i] = v
			evs = append(evs, userinput.Event{Kind: userinput.KindAxisMotion, Device: id, Index: i, Value: int32(v)})
		}
	}

	if len(s.buttons) != len(buttons) {
		s.buttons = make([]glfw.Action, len(buttons))
	}
	for i, b := range buttons {
		if b != s.buttons[i] {
			s.buttons[i] = b
			k := userinput.KindButtonUp
			if b == glfw.Press {
				k = userinput.KindButtonDown
			}
			evs = append(evs, userinput.Event{Kind: k, Device: id, Index: i})
		}
	}

	if len(s.hats) != len(hats) {
		s.hats = make([]glfw.JoystickHatState, len(hats))
	}
	for i, h := range hats {
		if h != s.hats[i] {
			s.hats[i] = h
			// GLFW hat bits are the same as the HatDirection bits
			evs = append(evs, userinput.Event{Kind: userinput.KindHatMotion, Device: id, Index: i, Value: int32(h)})
		}
	}

	return evs
}
