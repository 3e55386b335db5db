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

package plainterm

import (
	"unicode/utf8"

	"github.com/jetsetilly/inputrelay/userinput"
)

func press(k userinput.Keysym, m userinput.Modmask) []userinput.Event {
	ev := userinput.Event{
		Kind:    userinput.KindKeyDown,
		Device:  userinput.NoDevice,
		Key:     k,
		Mod:     m,
		ArchKey: uint32(k),
		ArchMod: uint32(m),
	}
	up := ev
	up.Kind = userinput.KindKeyUp
	return []userinput.Event{ev, up}
}

// Decode the bytes from a single read of the terminal into events. Ctrl-C
// is decoded as a quit event.
func Decode(b []byte) []userinput.Event {
	var evs []userinput.Event

	for len(b) > 0 {
		n, e := decodeOne(b)
		evs = append(evs, e...)
		b = b[n:]
	}

	return evs
}

// decodeOne decodes the first key in the buffer and returns the number of
// bytes used.
func decodeOne(b []byte) (int, []userinput.Event) {
	switch b[0] {
	case keyInterrupt:
		return 1, []userinput.Event{{Kind: userinput.KindQuit, Device: userinput.NoDevice}}
	case keyBackspace, keyDelete:
		return 1, press(userinput.KeyBackspace, userinput.ModNone)
	case keyTab:
		return 1, press(userinput.KeyTab, userinput.ModNone)
	case keyCarriageReturn, keyLineFeed:
		return 1, press(userinput.KeyReturn, userinput.ModNone)
	case keyEsc:
		return decodeEscape(b)
	}

	// control characters are ctrl plus a letter
	if b[0] < ' ' {
		return 1, press(userinput.Keysym('a'+b[0]-1), userinput.ModControl)
	}

	r, n := utf8.DecodeRune(b)
	if r == utf8.RuneError || r >= 0x7f {
		return n, nil
	}

	// upper case letters are reported as shift plus the lower case letter
	if r >= 'A' && r <= 'Z' {
		return n, press(userinput.Keysym(r-'A'+'a'), userinput.ModShift)
	}

	return n, press(userinput.Keysym(r), userinput.ModNone)
}

func decodeEscape(b []byte) (int, []userinput.Event) {
	// escape on its own
	if len(b) == 1 {
		return 1, press(userinput.KeyEscape, userinput.ModNone)
	}

	switch b[1] {
	case escSS3:
		if len(b) > 2 {
			if k, ok := cursorKeys[b[2]]; ok {
				return 3, press(k, userinput.ModNone)
			}
		}
		return 2, nil

	case escCursor:
		// parameters are digits separated by semicolons
		var params []int
		p := 0
		i := 2
	scan:
		for ; i < len(b); i++ {
			c := b[i]
			switch {
			case c >= '0' && c <= '9':
				p = p*10 + int(c-'0')
				continue
			case c == ';':
				params = append(params, p)
				p = 0
				continue
			}
			break scan
		}
		if i >= len(b) {
			return len(b), nil
		}
		if i > 2 {
			params = append(params, p)
		}

		mod := userinput.ModNone
		if len(params) > 1 {
			mod = xtermModifier(params[1])
		}

		final := b[i]
		if final == '~' {
			if len(params) > 0 {
				if k, ok := tildeKeys[params[0]]; ok {
					return i + 1, press(k, mod)
				}
			}
			return i + 1, nil
		}
		if k, ok := cursorKeys[final]; ok {
			return i + 1, press(k, mod)
		}
		return i + 1, nil
	}

	// escape followed by a key is alt plus the key
	n, evs := decodeOne(b[1:])
	for i := range evs {
		if evs[i].Kind == userinput.KindKeyDown || evs[i].Kind == userinput.KindKeyUp {
			evs[i].Mod |= userinput.ModAlt
			evs[i].ArchMod = uint32(evs[i].Mod)
		}
	}
	return n + 1, evs
}
