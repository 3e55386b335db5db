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

import "fmt"

// MenuAction is a menu navigation action produced by the keyboard or by a
// joystick while a menu or a capture dialog is active.
type MenuAction int

// List of valid MenuAction values.
const (
	MenuNone MenuAction = iota
	MenuUp
	MenuDown
	MenuLeft
	MenuRight
	MenuSelect
	MenuCancel
	MenuExit
	MenuMap
	MenuPageUp
	MenuPageDown
	MenuHome
	MenuEnd
)

// releases are indicated by this bit. the remaining bits indicate which
// action has been released
const menuRelease MenuAction = 0x100

// Release returns the release version of the action.
func (a MenuAction) Release() MenuAction {
	return a | menuRelease
}

// IsRelease returns true if the action indicates a release.
func (a MenuAction) IsRelease() bool {
	return a&menuRelease == menuRelease
}

func (a MenuAction) String() string {
	if a.IsRelease() {
		return fmt.Sprintf("%s release", a&^menuRelease)
	}
	switch a {
	case MenuNone:
		return "none"
	case MenuUp:
		return "up"
	case MenuDown:
		return "down"
	case MenuLeft:
		return "left"
	case MenuRight:
		return "right"
	case MenuSelect:
		return "select"
	case MenuCancel:
		return "cancel"
	case MenuExit:
		return "exit"
	case MenuMap:
		return "map"
	case MenuPageUp:
		return "page up"
	case MenuPageDown:
		return "page down"
	case MenuHome:
		return "home"
	case MenuEnd:
		return "end"
	}
	return fmt.Sprintf("unknown menu action (%d)", int(a))
}

// MenuKeys maps keyboard keys to menu actions.
type MenuKeys map[Keysym]MenuAction

// DefaultMenuKeys returns the usual keyboard navigation keys.
func DefaultMenuKeys() MenuKeys {
	return MenuKeys{
		KeyUp:       MenuUp,
		KeyDown:     MenuDown,
		KeyLeft:     MenuLeft,
		KeyRight:    MenuRight,
		KeyReturn:   MenuSelect,
		KeyEscape:   MenuCancel,
		KeyPageUp:   MenuPageUp,
		KeyPageDown: MenuPageDown,
		KeyHome:     MenuHome,
		KeyEnd:      MenuEnd,
		'm':         MenuMap,
		'q':         MenuExit,
	}
}
