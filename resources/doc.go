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

// Package resources contains functions to prepare paths to the files used by
// the application: the preferences file, the joystick map and diagnostic
// dumps.
//
// The JoinPath() function prepends the supplied path with the base resource
// path. If a directory named ".inputrelay" exists in the current directory
// then that is used as the base path (the portable mode). Otherwise the
// "inputrelay" directory in the user's config directory is used, as returned
// by os.UserConfigDir().
//
// On a modern Linux system the preferences file will be at:
//
//	/home/user/.config/inputrelay/preferences
package resources
