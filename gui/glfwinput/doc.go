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

// Package glfwinput is the GLFW input source. Keyboard input arrives through
// the window's key callback. GLFW has no joystick events so joysticks are
// sampled on every pass of the service loop and events are created for any
// change.
//
// As with all GLFW programs, Service() and NewPlatform() must be called from
// the main thread.
package glfwinput
