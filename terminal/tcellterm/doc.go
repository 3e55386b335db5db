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

// Package tcellterm is an input source and capture surface for terminals,
// built on tcell. Unlike the plainterm package it can report mouse motion and
// modifier combinations that the terminal encodes in escape sequences.
//
// As with all terminal input, key releases are not reported and so every key
// down event is followed immediately by a key up event.
package tcellterm
