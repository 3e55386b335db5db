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
	"fmt"

	"github.com/jetsetilly/inputrelay/userinput"
)

// inputFromEvent returns the joystick and input that an event refers to. An
// axis or hat event refers to the direction it moves to from the centre. A
// button event refers to the button only when pressed. Must be called with
// the registry locked.
func (reg *Registry) inputFromEvent(ev userinput.Event) (int, Input, bool) {
	joy, ok := reg.logicalIndex(ev.Device)
	if !ok {
		return -1, Input{}, false
	}

	switch ev.Kind {
	case userinput.KindAxisMotion:
		switch reg.norm.Classify(int16(ev.Value), userinput.AxisMiddle) {
		case userinput.AxisPositive:
			return joy, Input{Type: Axis, Index: ev.Index, Sub: AxisPositive}, true
		case userinput.AxisNegative:
			return joy, Input{Type: Axis, Index: ev.Index, Sub: AxisNegative}, true
		}
	case userinput.KindButtonDown:
		return joy, Input{Type: Button, Index: ev.Index}, true
	case userinput.KindHatMotion:
		switch userinput.ClassifyHat(userinput.HatDirection(ev.Value), userinput.HatCentred) {
		case userinput.HatUp:
			return joy, Input{Type: Hat, Index: ev.Index, Sub: HatUp}, true
		case userinput.HatDown:
			return joy, Input{Type: Hat, Index: ev.Index, Sub: HatDown}, true
		case userinput.HatLeft:
			return joy, Input{Type: Hat, Index: ev.Index, Sub: HatLeft}, true
		case userinput.HatRight:
			return joy, Input{Type: Hat, Index: ev.Index, Sub: HatRight}, true
		}
	}

	return -1, Input{}, false
}

// InputFromEvent returns the logical joystick index and the input referred
// to by the event. Used when capturing an input for binding.
func (reg *Registry) InputFromEvent(ev userinput.Event) (int, Input, bool) {
	reg.crit.Lock()
	defer reg.crit.Unlock()
	return reg.inputFromEvent(ev)
}

// BindingFromEvent returns the binding of the input referred to by the event.
func (reg *Registry) BindingFromEvent(ev userinput.Event) (Binding, bool) {
	reg.crit.Lock()
	defer reg.crit.Unlock()

	joy, in, ok := reg.inputFromEvent(ev)
	if !ok {
		return Binding{}, false
	}
	p, ok := reg.joysticks[joy].binding(in)
	if !ok {
		return Binding{}, false
	}
	return *p, true
}

// SetFromEvent binds the input referred to by the event. Returns false if
// the event does not refer to a bindable input.
func (reg *Registry) SetFromEvent(ev userinput.Event, b Binding) bool {
	reg.crit.Lock()
	defer reg.crit.Unlock()

	joy, in, ok := reg.inputFromEvent(ev)
	if !ok {
		return false
	}
	return reg.setBinding(joy, in, b) == nil
}

// SetPotAxisFromEvent binds the axis that the event refers to the pot of the
// port. Any direction of the axis is accepted.
func (reg *Registry) SetPotAxisFromEvent(ev userinput.Event, port userinput.Port, pot int) bool {
	if ev.Kind != userinput.KindAxisMotion {
		return false
	}

	reg.crit.Lock()
	defer reg.crit.Unlock()

	joy, in, ok := reg.inputFromEvent(ev)
	if !ok {
		return false
	}

	idx := (int(port) << 1) | pot
	if idx < 0 || idx >= numPotMappings {
		return false
	}

	// the pot takes over both directions of the axis
	for _, sub := range []int{AxisPositive, AxisNegative} {
		in.Sub = sub
		_ = reg.setBinding(joy, in, PotBinding(port, pot))
	}

	return true
}

// bindPot maps the axis to the pot at idx. the axis is removed from any other
// pot and the axis that previously drove the pot loses its pot bindings.
// must be called with the registry locked.
func (reg *Registry) bindPot(idx int, joy int, axis int) {
	if idx < 0 || idx >= numPotMappings {
		return
	}

	if old := reg.pots[idx]; old.valid && (old.joy != joy || old.axis != axis) {
		reg.clearPotBindings(old.joy, old.axis)
	}

	for i, p := range reg.pots {
		if i != idx && p.valid && p.joy == joy && p.axis == axis {
			reg.pots[i] = potMapping{}
		}
	}

	reg.pots[idx] = potMapping{joy: joy, axis: axis, valid: true}
}

// unbindPot removes the axis from every pot it drives, including the pot
// binding of the other direction of the axis. must be called with the
// registry locked.
func (reg *Registry) unbindPot(joy int, axis int) {
	for i, p := range reg.pots {
		if p.valid && p.joy == joy && p.axis == axis {
			reg.pots[i] = potMapping{}
		}
	}
	reg.clearPotBindings(joy, axis)
}

func (reg *Registry) clearPotBindings(joy int, axis int) {
	if joy < 0 || joy >= len(reg.joysticks) {
		return
	}
	for _, sub := range []int{AxisPositive, AxisNegative} {
		if b, ok := reg.joysticks[joy].binding(Input{Type: Axis, Index: axis, Sub: sub}); ok && b.Kind == BindPotAxis {
			*b = Binding{}
		}
	}
}

// UnsetFromEvent removes the binding of the input referred to by the event.
func (reg *Registry) UnsetFromEvent(ev userinput.Event) bool {
	reg.crit.Lock()
	defer reg.crit.Unlock()

	joy, in, ok := reg.inputFromEvent(ev)
	if !ok {
		return false
	}
	return reg.setBinding(joy, in, Binding{}) == nil
}

// each calls f for every binding of every joystick. must be called with the
// registry locked.
func (reg *Registry) each(f func(joy int, in Input, b *Binding)) {
	for joy, j := range reg.joysticks {
		for t := InputType(0); t < numInputTypes; t++ {
			for s := range j.bindings[t] {
				f(joy, inputFromSlot(t, s), &j.bindings[t][s])
			}
		}
	}
}

// DeletePinMapping removes every binding to exactly the pins of the port.
func (reg *Registry) DeletePinMapping(port userinput.Port, pins uint16) {
	reg.crit.Lock()
	defer reg.crit.Unlock()

	reg.each(func(_ int, _ Input, b *Binding) {
		if b.Kind == BindJoystick && b.Port == port && b.Pins == pins {
			*b = Binding{}
		}
	})
}

// DeletePotMapping removes the axis mapped to the pot of the port.
func (reg *Registry) DeletePotMapping(port userinput.Port, pot int) {
	reg.crit.Lock()
	defer reg.crit.Unlock()

	idx := (int(port) << 1) | pot
	if idx < 0 || idx >= numPotMappings {
		return
	}
	reg.pots[idx] = potMapping{}

	reg.each(func(_ int, _ Input, b *Binding) {
		if b.Kind == BindPotAxis && b.Port == port && b.Pot == pot {
			*b = Binding{}
		}
	})
}

// DeleteExtraMapping removes every menu activation binding (mapKey false) or
// every map binding (mapKey true).
func (reg *Registry) DeleteExtraMapping(mapKey bool) {
	reg.crit.Lock()
	defer reg.crit.Unlock()

	kind := ExtraBinding(mapKey).Kind
	reg.each(func(_ int, _ Input, b *Binding) {
		if b.Kind == kind {
			*b = Binding{}
		}
	})
}

// describe the inputs that match. returns the empty string if there are no
// matches and "Multiple" if there is more than one.
func (reg *Registry) describe(match func(b Binding) bool) string {
	s := ""
	n := 0
	reg.each(func(joy int, in Input, b *Binding) {
		if match(*b) {
			n++
			s = fmt.Sprintf("J%d, %s", joy, in)
		}
	})
	if n > 1 {
		return "Multiple"
	}
	return s
}

// PinMappingString describes the inputs bound to exactly the pins of the
// port. For example, "J0, Ax1, I0" or "J1, Bt3". If more than one input is
// bound the string is "Multiple".
func (reg *Registry) PinMappingString(port userinput.Port, pins uint16) string {
	reg.crit.Lock()
	defer reg.crit.Unlock()
	return reg.describe(func(b Binding) bool {
		return b.Kind == BindJoystick && b.Port == port && b.Pins == pins
	})
}

// ExtraMappingString describes the inputs bound to menu activation (mapKey
// false) or to the map function (mapKey true).
func (reg *Registry) ExtraMappingString(mapKey bool) string {
	reg.crit.Lock()
	defer reg.crit.Unlock()
	kind := ExtraBinding(mapKey).Kind
	return reg.describe(func(b Binding) bool {
		return b.Kind == kind
	})
}

// PotMappingString describes the axis mapped to the pot of the port. For
// example, "J0, Ax2".
func (reg *Registry) PotMappingString(port userinput.Port, pot int) string {
	reg.crit.Lock()
	defer reg.crit.Unlock()

	idx := (int(port) << 1) | pot
	if idx < 0 || idx >= numPotMappings || !reg.pots[idx].valid {
		return ""
	}
	p := reg.pots[idx]
	return fmt.Sprintf("J%d, %s%d", p.joy, inputTypeNames[Axis], p.axis)
}
