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

// Keyset emulates a joystick with keyboard keys.
type Keyset struct {
	Port Port
	Pins map[Keysym]uint16
}

// DefaultKeysets returns the two standard keysets. The cursor keys and space
// drive port two and WASD with F drive port one.
func DefaultKeysets() []Keyset {
	return []Keyset{
		{
			Port: PortTwo,
			Pins: map[Keysym]uint16{
				KeyUp:    PinUp,
				KeyDown:  PinDown,
				KeyLeft:  PinLeft,
				KeyRight: PinRight,
				' ':      PinFire,
			},
		},
		{
			Port: PortOne,
			Pins: map[Keysym]uint16{
				'w': PinUp,
				's': PinDown,
				'a': PinLeft,
				'd': PinRight,
				'f': PinFire,
			},
		},
	}
}

// HandleKeysets forwards key events that belong to a keyset to the emulated
// port. Returns true if the key was handled by one of the keysets.
//
// Key presses with a modifier are never handled, so that they remain
// available as hotkeys. Key releases are always handled so that a key
// released after a modifier was pressed does not stick.
func HandleKeysets(sets []Keyset, ev Event, handle HandleInput) (bool, error) {
	var pev PortEvent
	switch ev.Kind {
	case KindKeyDown:
		if ev.Mod != ModNone {
			return false, nil
		}
		pev = PortPinsPress
	case KindKeyUp:
		pev = PortPinsRelease
	default:
		return false, nil
	}

	for _, s := range sets {
		if pin, ok := s.Pins[ev.Key]; ok {
			return true, handle.HandleEvent(s.Port, pev, pin)
		}
	}

	return false, nil
}
