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

package tcellterm

import (
	"github.com/gdamore/tcell/v2"
	"github.com/jetsetilly/inputrelay/userinput"
)

var keycodes = map[tcell.Key]userinput.Keysym{
	tcell.KeyBackspace:  userinput.KeyBackspace,
	tcell.KeyBackspace2: userinput.KeyBackspace,
	tcell.KeyTab:        userinput.KeyTab,
	tcell.KeyEnter:      userinput.KeyReturn,
	tcell.KeyEscape:     userinput.KeyEscape,
	tcell.KeyPause:      userinput.KeyPause,
	tcell.KeyHome:       userinput.KeyHome,
	tcell.KeyEnd:        userinput.KeyEnd,
	tcell.KeyPgUp:       userinput.KeyPageUp,
	tcell.KeyPgDn:       userinput.KeyPageDown,
	tcell.KeyInsert:     userinput.KeyInsert,
	tcell.KeyDelete:     userinput.KeyDelete,
	tcell.KeyUp:         userinput.KeyUp,
	tcell.KeyDown:       userinput.KeyDown,
	tcell.KeyLeft:       userinput.KeyLeft,
	tcell.KeyRight:      userinput.KeyRight,
}

// reverse of keycodes
var archcodes = map[userinput.Keysym]tcell.Key{}

func init() {
	for i := range 12 {
		keycodes[tcell.KeyF1+tcell.Key(i)] = userinput.KeyF(i + 1)
	}
	for k, sym := range keycodes {
		if k != tcell.KeyBackspace2 {
			archcodes[sym] = k
		}
	}
}

// Modmask converts tcell modifiers to the logical modifier mask.
func Modmask(m tcell.ModMask) userinput.Modmask {
	var mod userinput.Modmask
	if m&tcell.ModShift != 0 {
		mod |= userinput.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mod |= userinput.ModControl
	}
	if m&tcell.ModAlt != 0 {
		mod |= userinput.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mod |= userinput.ModMeta
	}
	return mod
}

// ModMask is the inverse of Modmask.
func ModMask(m userinput.Modmask) tcell.ModMask {
	var mod tcell.ModMask
	if m&userinput.ModShift != 0 {
		mod |= tcell.ModShift
	}
	if m&userinput.ModControl != 0 {
		mod |= tcell.ModCtrl
	}
	if m&(userinput.ModAlt|userinput.ModOption) != 0 {
		mod |= tcell.ModAlt
	}
	if m&(userinput.ModMeta|userinput.ModCommand) != 0 {
		mod |= tcell.ModMeta
	}
	return mod
}

// Keysym returns the logical key and any additional modifiers implied by the
// tcell key. Returns false if the key has no logical equivalent.
func Keysym(k tcell.Key, r rune) (userinput.Keysym, userinput.Modmask, bool) {
	if k == tcell.KeyRune {
		if r >= 'A' && r <= 'Z' {
			return userinput.Keysym(r - 'A' + 'a'), userinput.ModShift, true
		}
		return userinput.Keysym(r), userinput.ModNone, true
	}

	if sym, ok := keycodes[k]; ok {
		return sym, userinput.ModNone, true
	}

	// control characters not caught by the keycodes table
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return userinput.Keysym('a' + k - tcell.KeyCtrlA), userinput.ModControl, true
	}

	return 0, userinput.ModNone, false
}

// Translator implements hotkeys.Translator. Arch codes are the tcell key in
// the upper half and the rune in the lower half.
type Translator struct{}

// Logical implements the hotkeys.Translator interface.
func (Translator) Logical(archKey uint32, archMod uint32) (userinput.Keysym, userinput.Modmask) {
	k, r := unpackArch(archKey)
	sym, m, ok := Keysym(k, r)
	if !ok {
		return 0, userinput.ModNone
	}
	return sym, m | Modmask(tcell.ModMask(archMod))
}

// Arch implements the hotkeys.Translator interface.
func (Translator) Arch(key userinput.Keysym, mod userinput.Modmask) (uint32, uint32) {
	if k, ok := archcodes[key]; ok {
		return packArch(k, 0), uint32(ModMask(mod))
	}
	return packArch(tcell.KeyRune, rune(key)), uint32(ModMask(mod))
}

func packArch(k tcell.Key, r rune) uint32 {
	return uint32(k)<<16 | uint32(r)&0xffff
}

func unpackArch(a uint32) (tcell.Key, rune) {
	return tcell.Key(a >> 16), rune(a & 0xffff)
}
