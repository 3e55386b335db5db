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

// Translate an SDL event to a userinput.Event. Returns false for events that
// have no equivalent. Key repeats are ignored.
func Translate(ev sdl.Event) (userinput.Event, bool) {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return userinput.Event{Kind: userinput.KindQuit, Device: userinput.NoDevice}, true

	case *sdl.KeyboardEvent:
		if ev.Repeat != 0 {
			return userinput.Event{}, false
		}

		key := Keysym(ev.Keysym.Sym)
		if key == userinput.KeyNone {
			return userinput.Event{}, false
		}

		e := userinput.Event{
			Kind:     userinput.KindKeyDown,
			Device:   userinput.NoDevice,
			Key:      key,
			Mod:      Modmask(sdl.Keymod(ev.Keysym.Mod)),
			ArchKey:  uint32(ev.Keysym.Sym),
			ArchMod:  uint32(ev.Keysym.Mod),
			Modifier: key.IsModifierKey(),
		}
		if ev.Type == sdl.KEYUP {
			e.Kind = userinput.KindKeyUp
		}
		return e, true

	case *sdl.JoyAxisEvent:
		return userinput.Event{
			Kind:   userinput.KindAxisMotion,
			Device: userinput.DeviceID(ev.Which),
			Index:  int(ev.Axis),
			Value:  int32(ev.Value),
		}, true

	case *sdl.JoyButtonEvent:
		e := userinput.Event{
			Kind:   userinput.KindButtonUp,
			Device: userinput.DeviceID(ev.Which),
			Index:  int(ev.Button),
		}
		if ev.State == sdl.PRESSED {
			e.Kind = userinput.KindButtonDown
		}
		return e, true

	case *sdl.JoyHatEvent:
		// SDL hat bits are the same as the HatDirection bits
		return userinput.Event{
			Kind:   userinput.KindHatMotion,
			Device: userinput.DeviceID(ev.Which),
			Index:  int(ev.Hat),
			Value:  int32(ev.Value),
		}, true

	case *sdl.JoyDeviceAddedEvent:
		return userinput.Event{Kind: userinput.KindDeviceAdded, Device: userinput.DeviceID(ev.Which)}, true

	case *sdl.JoyDeviceRemovedEvent:
		return userinput.Event{Kind: userinput.KindDeviceRemoved, Device: userinput.DeviceID(ev.Which)}, true

	case *sdl.MouseMotionEvent:
		return userinput.Event{
			Kind:   userinput.KindMouseMotion,
			Device: userinput.NoDevice,
			Value:  ev.XRel,
			ValueY: ev.YRel,
		}, true
	}

	return userinput.Event{}, false
}
