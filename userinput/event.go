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

import "fmt"

// Kind identifies the type of an Event.
type Kind int

// List of valid Kind values. KindNone is the sentinel value returned by
// functions that did not capture an event.
const (
	KindNone Kind = iota
	KindKeyDown
	KindKeyUp
	KindAxisMotion
	KindButtonDown
	KindButtonUp
	KindHatMotion
	KindMouseMotion
	KindDeviceAdded
	KindDeviceRemoved
	KindCancel
	KindQuit
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindKeyDown:
		return "key down"
	case KindKeyUp:
		return "key up"
	case KindAxisMotion:
		return "axis"
	case KindButtonDown:
		return "button down"
	case KindButtonUp:
		return "button up"
	case KindHatMotion:
		return "hat"
	case KindMouseMotion:
		return "mouse"
	case KindDeviceAdded:
		return "device added"
	case KindDeviceRemoved:
		return "device removed"
	case KindCancel:
		return "cancel"
	case KindQuit:
		return "quit"
	case KindCustom:
		return "custom"
	}
	return fmt.Sprintf("unknown kind (%d)", int(k))
}

// DeviceID is the runtime instance identifier of a physical input device as
// reported by the platform. It is not stable across reconnection and is not
// the same as the logical joystick index maintained by the joysticks package.
type DeviceID int32

// NoDevice is used for events that do not originate from a joystick.
const NoDevice DeviceID = -1

// Event is a single input event. The meaning of the fields depends on Kind:
//
//	KindKeyDown, KindKeyUp    Key, Mod, ArchKey, ArchMod, Modifier
//	KindAxisMotion            Device, Index (axis), Value (-32768 to 32767)
//	KindButtonDown/Up         Device, Index (button)
//	KindHatMotion             Device, Index (hat), Value (HatDirection bits)
//	KindMouseMotion           Value (relative X), ValueY (relative Y)
//	KindDeviceAdded/Removed   Device
//	KindCustom                Value (application defined code)
//
// Event values are comparable.
type Event struct {
	Kind   Kind
	Device DeviceID

	// logical key and modifier codes. see keys.go
	Key Keysym
	Mod Modmask

	// the platform's own key and modifier codes. required by the hotkeys
	// package when binding a chord captured from the platform
	ArchKey uint32
	ArchMod uint32

	// the key is itself a modifier key (eg. shift)
	Modifier bool

	Index  int
	Value  int32
	ValueY int32
}

func (ev Event) String() string {
	switch ev.Kind {
	case KindKeyDown, KindKeyUp:
		return fmt.Sprintf("%s %s", ev.Kind, ChordString(ev.Key, ev.Mod))
	case KindAxisMotion, KindHatMotion:
		return fmt.Sprintf("%s %d: %d (device %d)", ev.Kind, ev.Index, ev.Value, ev.Device)
	case KindButtonDown, KindButtonUp:
		return fmt.Sprintf("%s %d (device %d)", ev.Kind, ev.Index, ev.Device)
	case KindMouseMotion:
		return fmt.Sprintf("%s %d,%d", ev.Kind, ev.Value, ev.ValueY)
	case KindDeviceAdded, KindDeviceRemoved:
		return fmt.Sprintf("%s (device %d)", ev.Kind, ev.Device)
	case KindCustom:
		return fmt.Sprintf("%s %d", ev.Kind, ev.Value)
	}
	return ev.Kind.String()
}

// Class is a bitmask of device classes used to filter events.
type Class uint8

// List of valid Class bits.
const (
	ClassKeyboard Class = 1 << iota

	// key events where the key is itself a modifier key. these are separate
	// from ClassKeyboard so that a capture dialog can ignore a shift key that
	// is being held in preparation for pressing another key
	ClassModifier

	ClassJoystick
	ClassMouse

	ClassAll = ClassKeyboard | ClassModifier | ClassJoystick | ClassMouse
)

// Class returns the device class of the event. Events that do not belong to a
// device class return zero.
func (ev Event) Class() Class {
	switch ev.Kind {
	case KindKeyDown, KindKeyUp:
		if ev.Modifier {
			return ClassModifier
		}
		return ClassKeyboard
	case KindAxisMotion, KindButtonDown, KindButtonUp, KindHatMotion:
		return ClassJoystick
	case KindMouseMotion:
		return ClassMouse
	}
	return 0
}

// IsJoystick returns true if the event is from a joystick device.
func (ev Event) IsJoystick() bool {
	return ev.Class() == ClassJoystick
}
