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

// Package polling waits on the event queue for a specific kind of input. It
// is used by capture dialogs, which need a single key press or joystick
// movement, and by menus, which need navigation actions.
//
// Waiting is done in short sleeps so that the waiting goroutine never blocks
// indefinitely. The wait ends when a matching event is found, when a cancel
// event is found, when the timeout runs out or when the context is done.
// Events that are not wanted are passed to the Misc callback so that the
// rest of the application still sees them.
package polling
