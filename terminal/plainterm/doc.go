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

// Package plainterm is an input source for a plain posix terminal. The
// terminal is put into cbreak mode and each byte sequence read from it is
// decoded into key events. Terminals do not report key releases so every key
// down event is immediately followed by a key up event.
//
// The package also has a polling.Surface implementation that writes ANSI
// sequences to any io.Writer.
package plainterm
