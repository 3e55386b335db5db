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

package sdlinput

import (
	"github.com/jetsetilly/inputrelay/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

var keycodes = map[sdl.Keycode]userinput.Keysym{
	sdl.K_BACKSPACE: userinput.KeyBackspace,
	sdl.K_TAB:       userinput.KeyTab,
	sdl.K_RETURN:    userinput.KeyReturn,
	sdl.K_PAUSE:     userinput.KeyPause,
	sdl.K_ESCAPE:    userinput.KeyEscape,
	sdl.K_HOME:      userinput.KeyHome,
	sdl.K_LEFT:      userinput.KeyLeft,
	sdl.K_UP:        userinput.KeyUp,
	sdl.K_RIGHT:     userinput.KeyRight,
	sdl.K_DOWN:      userinput.KeyDown,
	sdl.K_PAGEUP:    userinput.KeyPageUp,
	sdl.K_PAGEDOWN:  userinput.KeyPageDown,
	sdl.K_END:       userinput.KeyEnd,
	sdl.K_INSERT:    userinput.KeyInsert,
	sdl.K_DELETE:    userinput.KeyDelete,
	sdl.K_F1:        userinput.KeyF(1),
	sdl.K_F2:        userinput.KeyF(2),
	sdl.K_F3:        userinput.KeyF(3),
	sdl.K_F4:        userinput.KeyF(4),
	sdl.K_F5:        userinput.KeyF(5),
	sdl.K_F6:        userinput.KeyF(6),
	sdl.K_F7:        userinput.KeyF(7),
	sdl.K_F8:        userinput.KeyF(8),
	sdl.K_F9:        userinput.KeyF(9),
	sdl.K_F10:       userinput.KeyF(10),
	sdl.K_F11:       userinput.KeyF(11),
	sdl.K_F12:       userinput.KeyF(12),
	sdl.K_LSHIFT:    userinput.KeyShiftL,
	sdl.K_RSHIFT:    userinput.KeyShiftR,
	sdl.K_LCTRL:     userinput.KeyControlL,
	sdl.K_RCTRL:     userinput.KeyControlR,
	sdl.K_LALT:      userinput.KeyAltL,
	sdl.K_RALT:      userinput.KeyAltR,
	sdl.K_LGUI:      userinput.KeySuperL,
	sdl.K_RGUI:      userinput.KeySuperR,
}

// reverse of the keycodes map
var keysyms map[userinput.Keysym]sdl.Keycode

func init() {
	keysyms = make(map[userinput.Keysym]sdl.Keycode, len(keycodes))
	for c, k := range keycodes {
		keysyms[k] = c
	}
}

// Keysym converts an SDL keycode to a Keysym. Printable keycodes are the
// same in both.
func Keysym(code sdl.Keycode) userinput.Keysym {
	if k, ok := keycodes[code]; ok {
		return k
	}
	if code >= ' ' && code < 0x7f {
		return userinput.Keysym(code)
	}
	return userinput.KeyNone
}

// Keycode converts a Keysym to an SDL keycode.
func Keycode(k userinput.Keysym) sdl.Keycode {
	if c, ok := keysyms[k]; ok {
		return c
	}
	if k >= ' ' && k < 0x7f {
		return sdl.Keycode(k)
	}
	return sdl.K_UNKNOWN
}

// Modmask converts an SDL modifier state to a Modmask. Left and right
// modifiers are not distinguished.
func Modmask(mod sdl.Keymod) userinput.Modmask {
	var m userinput.Modmask
	if mod&sdl.KMOD_SHIFT != 0 {
		m |= userinput.ModShift
	}
	if mod&sdl.KMOD_CTRL != 0 {
		m |= userinput.ModControl
	}
	if mod&sdl.KMOD_ALT != 0 {
		m |= userinput.ModAlt
	}
	if mod&sdl.KMOD_GUI != 0 {
		m |= userinput.ModMeta
	}
	return m
}

// Keymod converts a Modmask to an SDL modifier state. Alt and Option both
// become the left alt key. Meta and Command both become the GUI key.
func Keymod(m userinput.Modmask) sdl.Keymod {
	var mod sdl.Keymod
	if m&(userinput.ModAlt|userinput.ModOption) != 0 {
		mod |= sdl.KMOD_LALT
	}
	if m&userinput.ModControl != 0 {
		mod |= sdl.KMOD_CTRL
	}
	if m&userinput.ModShift != 0 {
		mod |= sdl.KMOD_SHIFT
	}
	if m&(userinput.ModMeta|userinput.ModCommand) != 0 {
		mod |= sdl.KMOD_GUI
	}
	return mod
}

// Translator implements the hotkeys.Translator interface for SDL keycodes
// and modifier states.
type Translator struct{}

// Logical implements the hotkeys.Translator interface.
func (Translator) Logical(archKey uint32, archMod uint32) (userinput.Keysym, userinput.Modmask) {
	return Keysym(sdl.Keycode(archKey)), Modmask(sdl.Keymod(archMod))
}

// Arch implements the hotkeys.Translator interface.
func (Translator) Arch(key userinput.Keysym, mod userinput.Modmask) (uint32, uint32) {
	return uint32(Keycode(key)), uint32(Keymod(mod))
}
