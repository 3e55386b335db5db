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

package userinput

import (
	"fmt"
	"strings"
)

// Keysym is the logical, platform independent key code. Printable keys use
// their Latin-1 code point (lower case for letters). Other keys use the
// values below, which follow the X11 keysym numbering.
type Keysym uint32

// KeyNone never matches a binding.
const KeyNone Keysym = 0

// List of non-printable keys.
const (
	KeyBackspace Keysym = 0xff08
	KeyTab       Keysym = 0xff09
	KeyReturn    Keysym = 0xff0d
	KeyPause     Keysym = 0xff13
	KeyEscape    Keysym = 0xff1b
	KeyHome      Keysym = 0xff50
	KeyLeft      Keysym = 0xff51
	KeyUp        Keysym = 0xff52
	KeyRight     Keysym = 0xff53
	KeyDown      Keysym = 0xff54
	KeyPageUp    Keysym = 0xff55
	KeyPageDown  Keysym = 0xff56
	KeyEnd       Keysym = 0xff57
	KeyInsert    Keysym = 0xff63
	KeyF1        Keysym = 0xffbe
	KeyF12       Keysym = KeyF1 + 11
	KeyShiftL    Keysym = 0xffe1
	KeyShiftR    Keysym = 0xffe2
	KeyControlL  Keysym = 0xffe3
	KeyControlR  Keysym = 0xffe4
	KeyMetaL     Keysym = 0xffe7
	KeyMetaR     Keysym = 0xffe8
	KeyAltL      Keysym = 0xffe9
	KeyAltR      Keysym = 0xffea
	KeySuperL    Keysym = 0xffeb
	KeySuperR    Keysym = 0xffec
	KeyDelete    Keysym = 0xffff
)

// KeyF returns the Keysym for function key n, counting from one.
func KeyF(n int) Keysym {
	return KeyF1 + Keysym(n-1)
}

var keyNames = map[Keysym]string{
	KeyBackspace: "Backspace",
	KeyTab:       "Tab",
	KeyReturn:    "Return",
	KeyPause:     "Pause",
	KeyEscape:    "Escape",
	KeyHome:      "Home",
	KeyLeft:      "Left",
	KeyUp:        "Up",
	KeyRight:     "Right",
	KeyDown:      "Down",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyEnd:       "End",
	KeyInsert:    "Insert",
	KeyShiftL:    "ShiftL",
	KeyShiftR:    "ShiftR",
	KeyControlL:  "ControlL",
	KeyControlR:  "ControlR",
	KeyMetaL:     "MetaL",
	KeyMetaR:     "MetaR",
	KeyAltL:      "AltL",
	KeyAltR:      "AltR",
	KeySuperL:    "SuperL",
	KeySuperR:    "SuperR",
	KeyDelete:    "Delete",
}

func (k Keysym) String() string {
	if k == KeyNone {
		return "none"
	}
	if n, ok := keyNames[k]; ok {
		return n
	}
	if k >= KeyF1 && k <= KeyF12 {
		return fmt.Sprintf("F%d", k-KeyF1+1)
	}
	if k == ' ' {
		return "Space"
	}
	if k > ' ' && k < 0xff {
		return strings.ToUpper(string(rune(k)))
	}
	return fmt.Sprintf("0x%04x", uint32(k))
}

// IsModifierKey returns true if the key is a modifier key.
func (k Keysym) IsModifierKey() bool {
	return k >= KeyShiftL && k <= KeySuperR
}

// Modmask is the logical, platform independent modifier mask.
type Modmask uint32

// List of modifier bits. Not every platform can produce every modifier.
const (
	ModNone    Modmask = 0
	ModShift   Modmask = 1 << 0
	ModControl Modmask = 1 << 1
	ModAlt     Modmask = 1 << 2
	ModMeta    Modmask = 1 << 3
	ModSuper   Modmask = 1 << 4
	ModHyper   Modmask = 1 << 5
	ModCommand Modmask = 1 << 6
	ModOption  Modmask = 1 << 7
)

var modNames = []struct {
	mod  Modmask
	name string
}{
	{ModControl, "Ctrl"},
	{ModCommand, "Cmd"},
	{ModOption, "Opt"},
	{ModAlt, "Alt"},
	{ModMeta, "Meta"},
	{ModSuper, "Super"},
	{ModHyper, "Hyper"},
	{ModShift, "Shift"},
}

func (m Modmask) String() string {
	s := make([]string, 0, len(modNames))
	for _, n := range modNames {
		if m&n.mod == n.mod {
			s = append(s, n.name)
		}
	}
	return strings.Join(s, "+")
}

// ChordString returns a human readable representation of a key chord. For
// example "Ctrl+Shift+Q".
func ChordString(k Keysym, m Modmask) string {
	if m == ModNone {
		return k.String()
	}
	return fmt.Sprintf("%s+%s", m, k)
}
