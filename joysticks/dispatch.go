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

package joysticks

import (
	"math/bits"

	"github.com/jetsetilly/inputrelay/curated"
	"github.com/jetsetilly/inputrelay/logger"
	"github.com/jetsetilly/inputrelay/userinput"
)

// output is a port event waiting to be sent to the HandleInput
// implementation. port events are collected while the registry is locked and
// sent after it is unlocked, so that the handler can call back into the
// registry.
type output struct {
	port userinput.Port
	ev   userinput.PortEvent
	data userinput.PortEventData
}

type outputs []output

func (o *outputs) add(port userinput.Port, ev userinput.PortEvent, data userinput.PortEventData) {
	*o = append(*o, output{port: port, ev: ev, data: data})
}

func (reg *Registry) send(handle userinput.HandleInput, out outputs) error {
	if handle == nil {
		return nil
	}
	for _, o := range out {
		if err := handle.HandleEvent(o.port, o.ev, o.data); err != nil {
			return curated.Errorf("joysticks: %v", err)
		}
	}
	return nil
}

// Dispatch an event. Non-joystick events are ignored, with the exception of
// KindDeviceAdded and KindDeviceRemoved, which cause a Rescan().
//
// Bound inputs are forwarded to the handler. In menu mode the menu action of
// the input is returned instead and nothing is forwarded. The menu action is
// returned with the Release() bit set when the input is released.
func (reg *Registry) Dispatch(ev userinput.Event) (userinput.MenuAction, error) {
	switch ev.Kind {
	case userinput.KindDeviceAdded, userinput.KindDeviceRemoved:
		_, err := reg.Rescan()
		return userinput.MenuNone, err
	case userinput.KindAxisMotion, userinput.KindButtonDown, userinput.KindButtonUp, userinput.KindHatMotion:
	default:
		return userinput.MenuNone, nil
	}

	var out outputs

	reg.crit.Lock()
	joy, ok := reg.logicalIndex(ev.Device)
	if !ok {
		reg.crit.Unlock()
		logger.Logf(logger.Allow, "joystick", "event from unknown device (%d)", ev.Device)
		return userinput.MenuNone, nil
	}

	var action userinput.MenuAction

	switch ev.Kind {
	case userinput.KindAxisMotion:
		action = reg.axis(joy, ev, &out)
	case userinput.KindButtonDown:
		action = reg.perform(joy, Input{Type: Button, Index: ev.Index}, true, &out)
	case userinput.KindButtonUp:
		action = reg.perform(joy, Input{Type: Button, Index: ev.Index}, false, &out)
	case userinput.KindHatMotion:
		action = reg.hat(joy, ev, &out)
	}

	handle := reg.handle
	reg.crit.Unlock()

	return action, reg.send(handle, out)
}

// PotValue converts a raw axis value to the value of an emulated
// potentiometer. The direction is inverted, so that fully negative is 255.
func PotValue(raw int16) uint8 {
	return uint8((int32(^raw) + 32768) >> 8)
}

func (reg *Registry) axis(joy int, ev userinput.Event, out *outputs) userinput.MenuAction {
	raw := int16(ev.Value)

	for i, p := range reg.pots {
		if p.valid && p.joy == joy && p.axis == ev.Index {
			out.add(userinput.Port(i>>1), userinput.PortPotSet, userinput.PotValue{Pot: i & 1, Value: PotValue(raw)})
		}
	}

	cur, prev := reg.norm.Axis(ev.Device, ev.Index, raw)
	if cur == prev {
		return userinput.MenuNone
	}

	pos := Input{Type: Axis, Index: ev.Index, Sub: AxisPositive}
	neg := Input{Type: Axis, Index: ev.Index, Sub: AxisNegative}

	switch cur {
	case userinput.AxisPositive:
		if prev == userinput.AxisNegative {
			reg.perform(joy, neg, false, out)
		}
		return reg.perform(joy, pos, true, out)
	case userinput.AxisNegative:
		if prev == userinput.AxisPositive {
			reg.perform(joy, pos, false, out)
		}
		return reg.perform(joy, neg, true, out)
	}

	if prev == userinput.AxisPositive {
		return reg.perform(joy, pos, false, out)
	}
	return reg.perform(joy, neg, false, out)
}

func (reg *Registry) hat(joy int, ev userinput.Event, out *outputs) userinput.MenuAction {
	raw := userinput.HatDirection(ev.Value)
	_, prev := reg.norm.Hat(ev.Device, ev.Index, raw)
	if raw == prev {
		return userinput.MenuNone
	}

	in := func(sub int) Input {
		return Input{Type: Hat, Index: ev.Index, Sub: sub}
	}

	action := userinput.MenuNone

	// vertical and horizontal directions are treated separately so that
	// diagonals work. releases are performed before presses so that moving
	// straight to the opposite direction releases the old direction first
	axes := [2][2]struct {
		dir userinput.HatDirection
		sub int
	}{
		{{userinput.HatUp, HatUp}, {userinput.HatDown, HatDown}},
		{{userinput.HatLeft, HatLeft}, {userinput.HatRight, HatRight}},
	}

	for _, a := range axes {
		for _, d := range a {
			if raw&d.dir != d.dir && prev&d.dir == d.dir {
				if r := reg.perform(joy, in(d.sub), false, out); action == userinput.MenuNone {
					action = r
				}
			}
		}
		for _, d := range a {
			if raw&d.dir == d.dir && prev&d.dir != d.dir {
				action = reg.perform(joy, in(d.sub), true, out)
			}
		}
	}

	return action
}

// perform the binding of the input. must be called with the registry locked.
func (reg *Registry) perform(joy int, in Input, pressed bool, out *outputs) userinput.MenuAction {
	p, ok := reg.joysticks[joy].binding(in)
	if !ok {
		return userinput.MenuNone
	}
	b := *p

	if reg.menuMode {
		reg.autorepeat.Stop()

		action := userinput.MenuNone

		switch b.Kind {
		case BindJoystick:
			if reg.joysticksForMenu {
				switch b.Pins {
				case userinput.PinUp:
					action = userinput.MenuUp
					reg.autorepeat.Press(action)
				case userinput.PinDown:
					action = userinput.MenuDown
					reg.autorepeat.Press(action)
				case userinput.PinLeft:
					action = userinput.MenuLeft
					reg.autorepeat.Press(action)
				case userinput.PinRight:
					action = userinput.MenuRight
					reg.autorepeat.Press(action)
				case userinput.PinFire:
					action = userinput.MenuSelect
				}
			}
		case BindMenuActivate:
			action = userinput.MenuCancel
		case BindMap:
			action = userinput.MenuMap
		}

		if !pressed {
			reg.autorepeat.Release()
			action = action.Release()
		}

		return action
	}

	reg.autorepeat.Restart()

	switch b.Kind {
	case BindJoystick:
		reg.pins(b.Port, b.Pins, pressed, out)
	case BindKeyboard:
		if pressed {
			out.add(userinput.PortNone, userinput.PortKeyPress, b.Key)
		} else {
			out.add(userinput.PortNone, userinput.PortKeyRelease, b.Key)
		}
	case BindMenuActivate:
		if pressed {
			out.add(userinput.PortNone, userinput.PortMenuActivate, nil)
		}
	case BindHotkey:
		if pressed && b.Hotkey != 0 {
			out.add(userinput.PortNone, userinput.PortHotkey, b.Hotkey)
		}
	}

	return userinput.MenuNone
}

// pins updates the press count of each pin in the mask. presses are always
// forwarded. releases are forwarded only for pins that are no longer held by
// any input.
func (reg *Registry) pins(port userinput.Port, mask uint16, pressed bool, out *outputs) {
	if port < 0 || port >= userinput.NumPorts {
		return
	}

	if pressed {
		for m := mask; m != 0; m &= m - 1 {
			if pin := bits.TrailingZeros16(m); pin < userinput.NumPins {
				reg.pressed[port][pin]++
			}
		}
		out.add(port, userinput.PortPinsPress, mask)
		return
	}

	var release uint16
	for m := mask; m != 0; m &= m - 1 {
		pin := bits.TrailingZeros16(m)
		if pin >= userinput.NumPins {
			continue
		}
		if reg.pressed[port][pin] > 0 {
			reg.pressed[port][pin]--
		}
		if reg.pressed[port][pin] == 0 {
			release |= 1 << pin
		}
	}

	if release != 0 {
		out.add(port, userinput.PortPinsRelease, release)
	}
}

// clearPresses zeroes every press count. pins that were held are released.
// must be called with the registry locked.
func (reg *Registry) clearPresses(out *outputs) {
	for port := range reg.pressed {
		var release uint16
		for pin, n := range reg.pressed[port] {
			if n > 0 {
				release |= 1 << pin
			}
		}
		reg.pressed[port] = [userinput.NumPins]int{}
		if release != 0 {
			out.add(userinput.Port(port), userinput.PortPinsRelease, release)
		}
	}
}

// HandleEvent implements the userinput.HandleInput interface. Pin events
// share the press counts used for joystick bindings. All other events are
// forwarded unchanged.
func (reg *Registry) HandleEvent(port userinput.Port, ev userinput.PortEvent, d userinput.PortEventData) error {
	var out outputs

	reg.crit.Lock()
	switch ev {
	case userinput.PortPinsPress, userinput.PortPinsRelease:
		mask, ok := d.(uint16)
		if !ok {
			reg.crit.Unlock()
			return curated.Errorf("joysticks: pin event data must be uint16 not %T", d)
		}
		reg.pins(port, mask, ev == userinput.PortPinsPress, &out)
	default:
		out.add(port, ev, d)
	}
	handle := reg.handle
	reg.crit.Unlock()

	return reg.send(handle, out)
}
