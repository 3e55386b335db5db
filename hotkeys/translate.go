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

package hotkeys

import "github.com/jetsetilly/inputrelay/userinput"

// Translator converts between the logical key chords of the userinput
// package and the platform's own key chords.
type Translator interface {
	Logical(archKey uint32, archMod uint32) (userinput.Keysym, userinput.Modmask)
	Arch(key userinput.Keysym, mod userinput.Modmask) (uint32, uint32)
}

// NullTranslator is used when the platform codes are the same as the
// logical codes.
type NullTranslator struct{}

// Logical implements the Translator interface.
func (NullTranslator) Logical(archKey uint32, archMod uint32) (userinput.Keysym, userinput.Modmask) {
	return userinput.Keysym(archKey), userinput.Modmask(archMod)
}

// Arch implements the Translator interface.
func (NullTranslator) Arch(key userinput.Keysym, mod userinput.Modmask) (uint32, uint32) {
	return uint32(key), uint32(mod)
}
