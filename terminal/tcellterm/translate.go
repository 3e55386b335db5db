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

// Translate converts a tcell event into zero or more events. Ctrl-C is
// translated as a quit event.
func Translate(ev tcell.Event) []userinput.Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		if e.Key() == tcell.KeyCtrlC {
			return []userinput.Event{{Kind: userinput.KindQuit, Device: userinput.NoDevice}}
		}

		sym, m, ok := Keysym(e.Key(), e.Rune())
		if !ok {
			return nil
		}
		m |= Modmask(e.Modifiers())

		down := userinput.Event{
			Kind:    userinput.KindKeyDown,
			Device:  userinput.NoDevice,
			Key:     sym,
			Mod:     m,
			ArchKey: packArch(e.Key(), e.Rune()),
			ArchMod: uint32(e.Modifiers()),
		}
		up := down
		up.Kind = userinput.KindKeyUp
		return []userinput.Event{down, up}

	case *tcell.EventMouse:
		x, y := e.Position()
		return []userinput.Event{{
			Kind:   userinput.KindMouseMotion,
			Device: userinput.NoDevice,
			Value:  int32(x),
			ValueY: int32(y),
		}}
	}

	return nil
}
