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

import "github.com/jetsetilly/inputrelay/userinput"

// list of ASCII codes for non-alphanumeric characters
const (
	keyInterrupt      = 3  // end-of-text character
	keyBackspace      = 8
	keyTab            = 9
	keyLineFeed       = 10
	keyCarriageReturn = 13
	keyEsc            = 27
	keyDelete         = 127
)

// list of ASCII codes for characters that can follow keyEsc
const (
	escCursor = '['
	escSS3    = 'O'
)

// characters that follow an escape sequence introducer
var cursorKeys = map[byte]userinput.Keysym{
	'A': userinput.KeyUp,
	'B': userinput.KeyDown,
	'C': userinput.KeyRight,
	'D': userinput.KeyLeft,
	'H': userinput.KeyHome,
	'F': userinput.KeyEnd,
	'P': userinput.KeyF(1),
	'Q': userinput.KeyF(2),
	'R': userinput.KeyF(3),
	'S': userinput.KeyF(4),
}

// numbered sequences of the form ESC [ n ~
var tildeKeys = map[int]userinput.Keysym{
	1:  userinput.KeyHome,
	2:  userinput.KeyInsert,
	3:  userinput.KeyDelete,
	4:  userinput.KeyEnd,
	5:  userinput.KeyPageUp,
	6:  userinput.KeyPageDown,
	15: userinput.KeyF(5),
	17: userinput.KeyF(6),
	18: userinput.KeyF(7),
	19: userinput.KeyF(8),
	20: userinput.KeyF(9),
	21: userinput.KeyF(10),
	23: userinput.KeyF(11),
	24: userinput.KeyF(12),
}

// xterm modifier parameter values minus one
const (
	xtermShift   = 1
	xtermAlt     = 2
	xtermControl = 4
)

func xtermModifier(p int) userinput.Modmask {
	var m userinput.Modmask
	p--
	if p&xtermShift != 0 {
		m |= userinput.ModShift
	}
	if p&xtermAlt != 0 {
		m |= userinput.ModAlt
	}
	if p&xtermControl != 0 {
		m |= userinput.ModControl
	}
	return m
}
