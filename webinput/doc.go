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

// Package webinput lets a remote gamepad, usually a web page on a phone,
// act as a joystick. Each websocket connection is one device. The first
// message from a connection must describe the device:
//
//	{"type": "hello", "name": "phone", "axes": 2, "buttons": 4, "hats": 1}
//
// after which the connection may send input messages:
//
//	{"type": "axis", "index": 0, "value": -32768}
//	{"type": "button", "index": 1, "down": true}
//	{"type": "hat", "index": 0, "value": 5}
//	{"type": "cancel"}
//
// Hat values are the bits of userinput.HatDirection. The server replies to
// the hello message with the device ID given to the connection and replies
// to malformed messages with an error message.
//
// The Hub implements joysticks.Enumerator so that remote gamepads share the
// logical joystick index space with local devices.
package webinput
