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

package sdlinput_test

import (
	"testing"

	"github.com/jetsetilly/inputrelay/gui/sdlinput"
	"github.com/jetsetilly/inputrelay/hotkeys"
	"github.com/jetsetilly/inputrelay/test"
	"github.com/jetsetilly/inputrelay/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

func TestKeysym(t *testing.T) {
	test.ExpectEquality(t, sdlinput.Keysym(sdl.K_ESCAPE), userinput.KeyEscape)
	test.ExpectEquality(t, sdlinput.Keysym(sdl.K_F5), userinput.KeyF(5))
	test.ExpectEquality(t, sdlinput.Keysym(sdl.K_a), userinput.Keysym('a'))
	test.ExpectEquality(t, sdlinput.Keycode(userinput.KeyLeft), sdl.Keycode(sdl.K_LEFT))
	test.ExpectEquality(t, sdlinput.Keycode(userinput.Keysym('z')), sdl.Keycode(sdl.K_z))
}

func TestModifiers(t *testing.T) {
	test.ExpectEquality(t, sdlinput.Modmask(sdl.KMOD_LSHIFT|sdl.KMOD_RCTRL), userinput.ModShift|userinput.ModControl)
	test.ExpectEquality(t, sdlinput.Keymod(userinput.ModOption), sdl.Keymod(sdl.KMOD_LALT))
	test.ExpectEquality(t, sdlinput.Keymod(userinput.ModCommand), sdl.Keymod(sdl.KMOD_GUI))
	test.ExpectEquality(t, sdlinput.Keymod(userinput.ModShift|userinput.ModControl), sdl.Keymod(sdl.KMOD_SHIFT|sdl.KMOD_CTRL))
}

func TestTranslate(t *testing.T) {
	ev, ok := sdlinput.Translate(&sdl.KeyboardEvent{
		Type:   sdl.KEYDOWN,
		Keysym: sdl.Keysym{Sym: sdl.K_q, Mod: sdl.KMOD_LCTRL},
	})
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ev.Kind, userinput.KindKeyDown)
	test.ExpectEquality(t, ev.Key, userinput.Keysym('q'))
	test.ExpectEquality(t, ev.Mod, userinput.ModControl)

	_, ok = sdlinput.Translate(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1, Keysym: sdl.Keysym{Sym: sdl.K_q}})
	test.ExpectFailure(t, ok)

	ev, ok = sdlinput.Translate(&sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Sym: sdl.K_LSHIFT}})
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ev.Kind, userinput.KindKeyUp)
	test.ExpectSuccess(t, ev.Modifier)

	ev, ok = sdlinput.Translate(&sdl.JoyAxisEvent{Which: 3, Axis: 1, Value: -20000})
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ev, userinput.Event{Kind: userinput.KindAxisMotion, Device: 3, Index: 1, Value: -20000})

	ev, ok = sdlinput.Translate(&sdl.JoyHatEvent{Which: 3, Hat: 0, Value: sdl.HAT_LEFTUP})
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, userinput.HatDirection(ev.Value), userinput.HatLeft|userinput.HatUp)

	ev, ok = sdlinput.Translate(&sdl.JoyButtonEvent{Which: 3, Button: 2, State: sdl.PRESSED})
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ev.Kind, userinput.KindButtonDown)
}

func TestTranslator(t *testing.T) {
	m := hotkeys.NewMap(2, sdlinput.Translator{})
	s, err := m.SetByArch(1, uint32(sdl.K_r), uint32(sdl.KMOD_LCTRL), nil, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s.Keysym, userinput.Keysym('r'))
	test.ExpectEquality(t, s.Modmask, userinput.ModControl)

	f, ok := m.FindByArch(uint32(sdl.K_r), uint32(sdl.KMOD_RCTRL))
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, f.Action, 1)
}
