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

// Package sdlinput is the SDL input source. It opens a small window to
// receive keyboard focus, translates SDL events and pushes them onto a
// userinput.Queue.
//
// SDL functions must be called from the main thread. The Service() function
// should be run by the main thread and any other function that needs SDL is
// handed to it through a service channel.
package sdlinput
