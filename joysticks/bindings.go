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

// InputType is the type of a joystick input.
type InputType int

// List of valid InputType values.
const (
	Axis InputType = iota
	Button
	Hat

	numInputTypes
)

// the number of bindable inputs for each physical input of the type.
var inputMult = [numInputTypes]int{
	Axis:   2,
	Button: 1,
	Hat:    4,
}

var inputTypeNames = [numInputTypes]string{
	Axis:   "Ax",
	Button: "Bt",
	Hat:    "Ht",
}

// Sub-inputs of an axis.
const (
	AxisPositive = 0
	AxisNegative = 1
)

// Sub-inputs of a hat.
const (
	HatUp    = 0
	HatDown  = 1
	HatLeft  = 2
	HatRight = 3
)

// Input identifies a single bindable input of a joystick.
type Input struct {
	Type  InputType
	Index int

	// the sub-input. AxisPositive/AxisNegative for axes and
	// HatUp/HatDown/HatLeft/HatRight for hats. always zero for buttons
	Sub int
}

// slot returns the position of the input in the binding table for its type.
func (in Input) slot() int {
	return in.Index*inputMult[in.Type] + in.Sub
}

func inputFromSlot(t InputType, slot int) Input {
	return Input{Type: t, Index: slot / inputMult[t], Sub: slot % inputMult[t]}
}

func (in Input) String() string {
	if in.Type < 0 || in.Type >= numInputTypes {
		return "invalid input"
	}
	if inputMult[in.Type] == 1 {
		return fmt.Sprintf("%s%d", inputTypeNames[in.Type], in.Index)
	}
	return fmt.Sprintf("%s%d, I%d", inputTypeNames[in.Type], in.Index, in.Sub)
}

// BindingKind identifies what a joystick input is bound to.
type BindingKind int

// List of valid BindingKind values.
const (
	Unbound BindingKind = iota
	BindJoystick
	BindKeyboard
	BindHotkey
	BindMenuActivate
	BindMap
	BindPotAxis
)

var bindingKindNames = map[BindingKind]string{
	Unbound:          "none",
	BindJoystick:     "joystick",
	BindKeyboard:     "keyboard",
	BindHotkey:       "hotkey",
	BindMenuActivate: "menu",
	BindMap:          "map",
	BindPotAxis:      "pot",
}

func (k BindingKind) String() string {
	if n, ok := bindingKindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("unknown binding (%d)", int(k))
}

func bindingKindFromString(s string) (BindingKind, bool) {
	for k, n := range bindingKindNames {
		if n == s {
			return k, true
		}
	}
	return Unbound, false
}

// Binding is the function a joystick input is bound to. Only the fields
// relevant to the Kind are used.
type Binding struct {
	Kind BindingKind

	// BindJoystick and BindPotAxis
	Port userinput.Port

	// BindJoystick
	Pins uint16

	// BindPotAxis
	Pot int

	// BindKeyboard
	Key userinput.KeyMatrix

	// BindHotkey. the action ID in the hotkeys map
	Hotkey int
}

// JoystickBinding binds an input to pins of an emulated joystick port.
func JoystickBinding(port userinput.Port, pins uint16) Binding {
	return Binding{Kind: BindJoystick, Port: port, Pins: pins}
}

// KeyboardBinding binds an input to a key in the emulated keyboard matrix.
func KeyboardBinding(row, col int) Binding {
	return Binding{Kind: BindKeyboard, Key: userinput.KeyMatrix{Row: row, Col: col}}
}

// HotkeyBinding binds an input to a hotkey action.
func HotkeyBinding(action int) Binding {
	return Binding{Kind: BindHotkey, Hotkey: action}
}

// PotBinding binds an axis to a potentiometer of an emulated port.
func PotBinding(port userinput.Port, pot int) Binding {
	return Binding{Kind: BindPotAxis, Port: port, Pot: pot}
}

// ExtraBinding binds an input to menu activation (mapKey false) or to the
// map function (mapKey true).
func ExtraBinding(mapKey bool) Binding {
	if mapKey {
		return Binding{Kind: BindMap}
	}
	return Binding{Kind: BindMenuActivate}
}

func (b Binding) String() string {
	switch b.Kind {
	case BindJoystick:
		return fmt.Sprintf("joystick port %d pins %#02x", b.Port+1, b.Pins)
	case BindKeyboard:
		return fmt.Sprintf("keyboard row %d col %d", b.Key.Row, b.Key.Col)
	case BindHotkey:
		return fmt.Sprintf("hotkey %d", b.Hotkey)
	case BindPotAxis:
		return fmt.Sprintf("pot %d port %d", b.Pot, b.Port+1)
	}
	return b.Kind.String()
}

// Device describes an attached joystick as reported by an Enumerator.
type Device struct {
	Instance userinput.DeviceID
	Name     string
	Axes     int
	Buttons  int
	Hats     int

	// the value of each axis when the device was opened. axes that rest
	// beyond the threshold are left unbound by the default bindings. may be
	// nil
	Rest []int16
}

func (d Device) String() string {
	return fmt.Sprintf("%s (%d axes, %d buttons, %d hats)", d.Name, d.Axes, d.Buttons, d.Hats)
}

func (d Device) inputs(t InputType) int {
	switch t {
	case Axis:
		return d.Axes
	case Button:
		return d.Buttons
	case Hat:
		return d.Hats
	}
	return 0
}

// joystick is an entry in the registry
type joystick struct {
	Device
	bindings [numInputTypes][]Binding
}

func newJoystick(d Device) *joystick {
	j := &joystick{Device: d}
	for t := InputType(0); t < numInputTypes; t++ {
		j.bindings[t] = make([]Binding, d.inputs(t)*inputMult[t])
	}
	return j
}

// sameLayout returns true if the two joysticks have the same number of each
// input type
func (j *joystick) sameLayout(o *joystick) bool {
	return j.Axes == o.Axes && j.Buttons == o.Buttons && j.Hats == o.Hats
}

func (j *joystick) binding(in Input) (*Binding, bool) {
	if in.Type < 0 || in.Type >= numInputTypes {
		return nil, false
	}
	if in.Index < 0 || in.Sub < 0 || in.Sub >= inputMult[in.Type] {
		return nil, false
	}
	s := in.slot()
	if s >= len(j.bindings[in.Type]) {
		return nil, false
	}
	return &j.bindings[in.Type][s], true
}

// setDefaults sets the default bindings for the joystick at logical index n.
//
// Axes 0 and 1 and the first hat drive the port opposite to the joystick
// index. Axes 2 and 3 and the second hat drive the other port. The first
// button is fire, the second activates the menu and the third is the map
// button. The pattern repeats for the remaining buttons.
func (j *joystick) setDefaults(n int, joysticksForMenu bool, threshold uint16) {
	for i := range j.bindings[Axis] {
		port := userinput.Port((1 + n + ((i & 4) >> 2)) & 1)
		pin := uint16(8 >> (i & 3))

		// leave axes that rest beyond the threshold unbound
		axis := i / inputMult[Axis]
		if axis < len(j.Rest) && (j.Rest[axis] > int16(threshold) || j.Rest[axis] < -int16(threshold)) {
			j.bindings[Axis][i] = Binding{}
			continue
		}

		j.bindings[Axis][i] = JoystickBinding(port, pin)
	}

	for i := range j.bindings[Button] {
		switch i & 3 {
		case 1:
			if joysticksForMenu {
				j.bindings[Button][i] = ExtraBinding(false)
			}
		case 2:
			if joysticksForMenu {
				j.bindings[Button][i] = ExtraBinding(true)
			}
		default:
			port := userinput.Port((1 + n + (i & 1)) & 1)
			j.bindings[Button][i] = JoystickBinding(port, userinput.PinFire)
		}
	}

	for i := range j.bindings[Hat] {
		port := userinput.Port((1 + n + ((i & 4) >> 2)) & 1)
		j.bindings[Hat][i] = JoystickBinding(port, uint16(1<<(i&3)))
	}
}
