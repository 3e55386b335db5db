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

// Package userinput handles input from the real hardware that the user is
// using to control the emulated machine and to navigate the menus.
//
// It can be thought of as a translation layer between the platform event
// source (SDL, GLFW, a terminal or a remote gamepad) and the consumers of
// input. As such, this package hides the details of the platform while
// protecting the consumers from complication.
//
// Platform events are translated into the Event type and pushed onto a Queue
// by the thread that owns the platform event source. The Queue grows when it
// is full so Push() never fails. Consumers remove events with TryPop(), which
// never blocks.
//
// Raw analogue axis values are turned into discrete directions with
// ClassifyAxis(), which applies a threshold with hysteresis so that a stick
// resting near the threshold does not flicker. Hat values are turned into
// newly pressed directions with ClassifyHat(). The Normaliser type keeps the
// per device state required by both.
//
// The platform implementation in use during development was SDL and so there
// will be a bias towards that system.
package userinput
