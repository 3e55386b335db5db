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

package glfwinput

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/jetsetilly/inputrelay/userinput"
)

var keycodes = map[glfw.Key]userinput.Keysym{
	glfw.KeyBackspace:    userinput.KeyBackspace,
	glfw.KeyTab:          userinput.KeyTab,
	glfw.KeyEnter:        userinput.KeyReturn,
	glfw.KeyPause:        userinput.KeyPause,
	glfw.KeyEscape:       userinput.KeyEscape,
	glfw.KeyHome:         userinput.KeyHome,
	glfw.KeyLeft:         userinput.KeyLeft,
	glfw.KeyUp:           userinput.KeyUp,
	glfw.KeyRight:        userinput.KeyRight,
	glfw.KeyDown:         userinput.KeyDown,
	glfw.KeyPageUp:       userinput.KeyPageUp,
	glfw.KeyPageDown:     userinput.KeyPageDown,
	glfw.KeyEnd:          userinput.KeyEnd,
	glfw.KeyInsert:       userinput.KeyInsert,
	glfw.KeyDelete:       userinput.KeyDelete,
	glfw.KeyLeftShift:    userinput.KeyShiftL,
	glfw.KeyRightShift:   userinput.KeyShiftR,
	glfw.KeyLeftControl:  userinput.KeyControlL,
	glfw.KeyRightControl: userinput.KeyControlR,
	glfw.KeyLeftAlt:      userinput.KeyAltL,
	glfw.KeyRightAlt:     userinput.KeyAltR,
	glfw.KeyLeftSuper:    userinput.KeySuperL,
	glfw.KeyRightSuper:   userinput.KeySuperR,
}

var keysyms map[userinput.Keysym]glfw.Key

func init() {
	keysyms = make(map[userinput.Keysym]glfw.Key, len(keycodes))
	for c, k := range keycodes {
		keysyms[k] = c
	}
}

// Keysym converts a GLFW key to a Keysym. GLFW letter keys are upper case
// ASCII and are converted to lower case.
func Keysym(key glfw.Key) userinput.Keysym {
	if k, ok := keycodes[key]; ok {
		return k
	}
	if key >= glfw.KeyF1 && key <= glfw.KeyF12 {
		return userinput.KeyF(int(key-glfw.KeyF1) + 1)
	}
	if key >= glfw.KeyA && key <= glfw.KeyZ {
		return userinput.Keysym(key - glfw.KeyA + 'a')
	}
	if key >= glfw.KeySpace && key <= glfw.KeyGraveAccent {
		return userinput.Keysym(key)
	}
	return userinput.KeyNone
}

// Key converts a Keysym to a GLFW key.
func Key(k userinput.Keysym) glfw.Key {
	if c, ok := keysyms[k]; ok {
		return c
	}
	if k >= userinput.KeyF(1) && k <= userinput.KeyF(12) {
		return glfw.KeyF1 + glfw.Key(k-userinput.KeyF(1))
	}
	if k >= 'a' && k <= 'z' {
		return glfw.KeyA + glfw.Key(k-'a')
	}
	if k >= ' ' && k <= '`' {
		return glfw.Key(k)
	}
	return glfw.KeyUnknown
}

// Modmask converts GLFW modifier keys to a Modmask.
func Modmask(mods glfw.ModifierKey) userinput.Modmask {
	var m userinput.Modmask
	if mods&glfw.ModShift != 0 {
		m |= userinput.ModShift
	}
	if mods&glfw.ModControl != 0 {
		m |= userinput.ModControl
	}
	if mods&glfw.ModAlt != 0 {
		m |= userinput.ModAlt
	}
	if mods&glfw.ModSuper != 0 {
		m |= userinput.ModMeta
	}
	return m
}

// ModifierKey converts a Modmask to GLFW modifier keys.
func ModifierKey(m userinput.Modmask) glfw.ModifierKey {
	var mods glfw.ModifierKey
	if m&userinput.ModShift != 0 {
		mods |= glfw.ModShift
	}
	if m&userinput.ModControl != 0 {
		mods |= glfw.ModControl
	}
	if m&(userinput.ModAlt|userinput.ModOption) != 0 {
		mods |= glfw.ModAlt
	}
	if m&(userinput.ModMeta|userinput.ModCommand|userinput.ModSuper) != 0 {
		mods |= glfw.ModSuper
	}
	return mods
}

// Translator implements the hotkeys.Translator interface for GLFW keys and
// modifier keys.
type Translator struct{}

// Logical implements the hotkeys.Translator interface.
func (Translator) Logical(archKey uint32, archMod uint32) (userinput.Keysym, userinput.Modmask) {
	return Keysym(glfw.Key(archKey)), Modmask(glfw.ModifierKey(archMod))
}

// Arch implements the hotkeys.Translator interface.
func (Translator) Arch(key userinput.Keysym, mod userinput.Modmask) (uint32, uint32) {
	return uint32(Key(key)), uint32(ModifierKey(mod))
}

// KeyEvent translates the arguments of a GLFW key callback to a
// userinput.Event. Returns false for repeats and unknown keys.
func KeyEvent(key glfw.Key, action glfw.Action, mods glfw.ModifierKey) (userinput.Event, bool) {
	if action == glfw.Repeat {
		return userinput.Event{}, false
	}

	k := Keysym(key)
	if k == userinput.KeyNone {
		return userinput.Event{}, false
	}

	ev := userinput.Event{
		Kind:     userinput.KindKeyDown,
		Device:   userinput.NoDevice,
		Key:      k,
		Mod:      Modmask(mods),
		ArchKey:  uint32(key),
		ArchMod:  uint32(mods),
		Modifier: k.IsModifierKey(),
	}
	if action == glfw.Release {
		ev.Kind = userinput.KindKeyUp
	}

	return ev, true
}
