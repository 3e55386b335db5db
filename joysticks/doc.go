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

// Package joysticks maintains the list of attached joysticks and the
// bindings of each joystick input to an emulated function.
//
// Joysticks are identified by the platform with a runtime instance ID (the
// userinput.DeviceID type). The Registry maps instance IDs to a dense logical
// index, in the order the Enumerator reports the devices. The logical index
// is what the user sees ("J0", "J1") and what bindings are keyed by. The
// table is rebuilt with Rescan(), which should be called whenever a device is
// added or removed. Bindings of devices that are present both before and
// after a rescan are carried over. Bindings for a logical index that no
// longer exists read as Unbound.
//
// Every axis has two bindable inputs (positive and negative), every button
// has one and every hat has four (up, down, left, right).
//
// Joystick events are sent to the Registry with Dispatch(). Bound inputs are
// forwarded to the emulated ports through the userinput.HandleInput
// interface. Pins are press counted, so a pin pressed by two host inputs is
// only released when both are released. When the registry is in menu mode,
// joystick bindings are instead translated into menu navigation actions.
package joysticks
