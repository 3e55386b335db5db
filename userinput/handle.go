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

// Port identifies an emulated control port.
type Port int

// List of emulated control ports. PortNone is used for port events that are
// not directed at a control port (keyboard matrix, hotkeys, menu activation).
const (
	PortNone Port = -1
	PortOne  Port = 0
	PortTwo  Port = 1

	// the number of emulated control ports
	NumPorts = 2
)

// Pin bits of an emulated joystick port.
const (
	PinUp    uint16 = 0x01
	PinDown  uint16 = 0x02
	PinLeft  uint16 = 0x04
	PinRight uint16 = 0x08
	PinFire  uint16 = 0x10

	// the number of pins that can be bound. the five above plus up to
	// seven more fire buttons
	NumPins = 12
)

// PortEvent is the type of event sent to an emulated port.
type PortEvent int

// List of valid PortEvent values and the type of PortEventData expected with
// each.
const (
	PortPinsPress    PortEvent = iota // uint16 (pin mask)
	PortPinsRelease                   // uint16 (pin mask)
	PortKeyPress                      // KeyMatrix
	PortKeyRelease                    // KeyMatrix
	PortPotSet                        // PotValue
	PortHotkey                        // int (hotkey action ID)
	PortMenuActivate                  // nil
)

// PortEventData is the data that accompanies a PortEvent.
type PortEventData interface{}

// KeyMatrix is the position of a key in the emulated keyboard matrix.
type KeyMatrix struct {
	Row int
	Col int
}

// PotValue is the value of one of the two potentiometers of a port.
type PotValue struct {
	Pot   int
	Value uint8
}

// HandleInput conceptualises data being sent to the emulated ports.
type HandleInput interface {
	// HandleEvent forwards the PortEvent and PortEventData to the specified
	// Port.
	HandleEvent(port Port, ev PortEvent, d PortEventData) error
}
