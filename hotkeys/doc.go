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

// Package hotkeys is the table of key chords bound to actions. The table is
// indexed by action ID and can be searched in reverse by either the logical
// key chord or the platform's own key chord.
//
// Action IDs are dense and fixed for the lifetime of the Map. ID zero is
// reserved and means "no action".
//
// Each chord is owned by at most one action. Setting a chord that is owned
// by another action unsets the other action first.
//
// Mappings returned by the Map are copies and can be used freely. Menu item
// references are opaque to this package and are kept when a mapping is
// unset.
package hotkeys
