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

package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/inputrelay/hotkeys"
	"github.com/jetsetilly/inputrelay/joysticks"
	"github.com/jetsetilly/inputrelay/polling"
	"github.com/jetsetilly/inputrelay/test"
	"github.com/jetsetilly/inputrelay/userinput"
)

func key(k userinput.Keysym, m userinput.Modmask) userinput.Event {
	return userinput.Event{
		Kind:    userinput.KindKeyDown,
		Device:  userinput.NoDevice,
		Key:     k,
		Mod:     m,
		ArchKey: uint32(k),
		ArchMod: uint32(m),
	}
}

func release(ev userinput.Event) userinput.Event {
	ev.Kind = userinput.KindKeyUp
	return ev
}

// lineSurface records the most recent frame.
type lineSurface struct {
	lines map[int]string
	frame string
}

func (s *lineSurface) Clear() {
	s.lines = make(map[int]string)
}

func (s *lineSurface) Print(row int, _ int, l string) {
	if s.lines == nil {
		s.lines = make(map[int]string)
	}
	s.lines[row] = l
}

func (s *lineSurface) Refresh() {
	var b strings.Builder
	for i := range 20 {
		if l, ok := s.lines[i]; ok {
			b.WriteString(l)
			b.WriteString("\n")
		}
	}
	s.frame = b.String()
}

func newTestRelay(t *testing.T, devs ...joysticks.Device) (*relay, *lineSurface) {
	t.Helper()

	q := userinput.NewQueue(4)
	norm := userinput.NewNormaliser(10000, 1000)
	reg := joysticks.NewRegistry(joysticks.Static(devs), norm, nil)
	_, err := reg.Rescan()
	test.DemandSuccess(t, err)
	hk := hotkeys.NewMap(numHotkeys, nil)
	poller := polling.NewPoller(q, norm, reg)
	poller.Slice = time.Millisecond
	poller.SlicesPerTick = 2

	srf := &lineSurface{}
	r := newRelay(q, reg, hk, poller, srf)
	test.DemandSuccess(t, r.defaultHotkeys())

	return r, srf
}

func TestPorts(t *testing.T) {
	p := newPorts()

	test.ExpectSuccess(t, p.HandleEvent(userinput.PortOne, userinput.PortPinsPress, userinput.PinUp|userinput.PinFire))
	test.ExpectSuccess(t, p.HandleEvent(userinput.PortTwo, userinput.PortPinsPress, uint16(1<<6)))
	test.ExpectSuccess(t, p.HandleEvent(userinput.PortTwo, userinput.PortPotSet, userinput.PotValue{Pot: 1, Value: 200}))

	l := p.lines()
	test.DemandEquality(t, len(l), 2)
	test.ExpectEquality(t, l[0], "Port 1: U...F  pots   0   0")
	test.ExpectEquality(t, l[1], "Port 2: ..... F3  pots   0 200")

	test.ExpectSuccess(t, p.HandleEvent(userinput.PortOne, userinput.PortPinsRelease, userinput.PinFire))
	test.ExpectEquality(t, p.lines()[0], "Port 1: U....  pots   0   0")

	test.ExpectSuccess(t, p.HandleEvent(userinput.PortNone, userinput.PortKeyPress, userinput.KeyMatrix{Row: 1, Col: 2}))
	test.ExpectEquality(t, len(p.lines()), 3)

	test.ExpectFailure(t, p.HandleEvent(userinput.PortNone, userinput.PortPinsPress, userinput.PinUp))
	test.ExpectFailure(t, p.HandleEvent(userinput.PortOne, userinput.PortPinsPress, 1))
	test.ExpectFailure(t, p.HandleEvent(userinput.PortOne, userinput.PortPotSet, userinput.PotValue{Pot: 2}))

	var hotkey int
	menu := false
	p.onHotkey = func(id int) { hotkey = id }
	p.onMenu = func() { menu = true }
	test.ExpectSuccess(t, p.HandleEvent(userinput.PortNone, userinput.PortHotkey, 3))
	test.ExpectSuccess(t, p.HandleEvent(userinput.PortNone, userinput.PortMenuActivate, nil))
	test.ExpectEquality(t, hotkey, 3)
	test.ExpectEquality(t, menu, true)
}

func TestRelayKeysets(t *testing.T) {
	r, _ := newTestRelay(t)

	up := key(userinput.KeyUp, userinput.ModNone)
	test.ExpectEquality(t, r.event(up), false)
	test.ExpectEquality(t, r.ports.pins[userinput.PortTwo], userinput.PinUp)

	// the same pin pressed by a second keyset key is held until both are
	// released
	r.keysets[0].Pins['8'] = userinput.PinUp
	eight := key('8', userinput.ModNone)
	r.event(eight)
	r.event(release(up))
	test.ExpectEquality(t, r.ports.pins[userinput.PortTwo], userinput.PinUp)
	r.event(release(eight))
	test.ExpectEquality(t, r.ports.pins[userinput.PortTwo], uint16(0))

	// keys with modifiers are not keyset keys
	r.event(key('w', userinput.ModAlt))
	test.ExpectEquality(t, r.ports.pins[userinput.PortOne], uint16(0))
	r.event(key('w', userinput.ModNone))
	test.ExpectEquality(t, r.ports.pins[userinput.PortOne], userinput.PinUp)
}

func TestRelayHotkeys(t *testing.T) {
	r, _ := newTestRelay(t)

	test.ExpectEquality(t, r.event(key(userinput.KeyF(2), userinput.ModNone)), false)
	test.ExpectEquality(t, r.reg.Swapped(), true)
	test.ExpectEquality(t, r.status, "ports swapped: true")

	// hotkeys can also come from a joystick binding via the port handler
	test.ExpectSuccess(t, r.reg.HandleEvent(userinput.PortNone, userinput.PortHotkey, hotkeySwap))
	test.ExpectEquality(t, r.reg.Swapped(), false)

	r.event(key(userinput.KeyF(3), userinput.ModNone))
	test.ExpectEquality(t, r.status, "joymap saving disabled")

	test.ExpectEquality(t, r.event(key('q', userinput.ModControl)), true)
}

func TestRelayJoymapSave(t *testing.T) {
	r, _ := newTestRelay(t)
	t.Chdir(t.TempDir())

	r.joymap = "joymap.json"
	r.event(key(userinput.KeyF(3), userinput.ModNone))
	test.ExpectEquality(t, r.status, "joymap saved")
	test.ExpectSuccess(t, r.reg.LoadJoymapFile("joymap.json"))
}

func TestRelayRun(t *testing.T) {
	r, srf := newTestRelay(t)

	r.queue.Push(key(userinput.KeyLeft, userinput.ModNone))
	r.queue.Push(userinput.Event{Kind: userinput.KindQuit, Device: userinput.NoDevice})

	done := make(chan struct{})
	go func() {
		r.run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("relay did not end after quit event")
	}

	test.ExpectEquality(t, r.ports.pins[userinput.PortTwo], userinput.PinLeft)
	test.ExpectEquality(t, srf.frame, "Port 1: .....  pots   0   0\nPort 2: .....  pots   0   0\nJoysticks: 0\nF1 for menu\n")
}

func TestRelayContext(t *testing.T) {
	r, _ := newTestRelay(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		r.run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("relay did not end after context was done")
	}
}

func TestMenu(t *testing.T) {
	r, srf := newTestRelay(t)

	// move to the swap ports entry and select it, then cancel the menu
	for range 5 {
		r.queue.Push(key(userinput.KeyDown, userinput.ModNone))
	}
	r.queue.Push(key(userinput.KeyReturn, userinput.ModNone))
	r.queue.Push(key(userinput.KeyEscape, userinput.ModNone))

	r.menu(context.Background())
	test.ExpectEquality(t, r.reg.Swapped(), true)
	test.ExpectEquality(t, r.reg.MenuMode(), false)
	test.ExpectEquality(t, r.status, "menu closed")
	test.ExpectSuccess(t, strings.Contains(srf.frame, "> Swap ports"))

	// the last entry closes the menu
	r.queue.Push(key(userinput.KeyEnd, userinput.ModNone))
	r.queue.Push(key(userinput.KeyReturn, userinput.ModNone))
	r.menu(context.Background())
	test.ExpectEquality(t, r.status, "menu closed")
	test.ExpectEquality(t, r.reg.Swapped(), true)
}

func TestMenuCapture(t *testing.T) {
	r, _ := newTestRelay(t)

	// set the menu hotkey to F5 with the first entry
	r.queue.Push(key(userinput.KeyReturn, userinput.ModNone))
	r.queue.Push(key(userinput.KeyF(5), userinput.ModNone))
	r.queue.Push(key(userinput.KeyEscape, userinput.ModNone))
	r.menu(context.Background())

	m, ok := r.hk.FindByLogical(userinput.KeyF(5), userinput.ModNone)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, m.Action, hotkeyMenu)

	r.event(key(userinput.KeyF(5), userinput.ModNone))
	test.ExpectEquality(t, r.menuRequested, true)
}

func TestMenuReleasesKeys(t *testing.T) {
	r, _ := newTestRelay(t)

	// W held when waiting for menu input and released while waiting
	w := key('w', userinput.ModNone)
	r.event(w)
	test.ExpectEquality(t, r.ports.pins[userinput.PortOne], userinput.PinUp)

	r.queue.Push(release(w))
	r.queue.Push(key(userinput.KeyEscape, userinput.ModNone))
	test.ExpectEquality(t, r.poller.MenuInput(context.Background()), userinput.MenuCancel)
	test.ExpectEquality(t, r.ports.pins[userinput.PortOne], uint16(0))
	test.ExpectEquality(t, r.queue.Len(), 0)

	// the same with the full menu
	r.event(w)
	r.queue.Push(release(w))
	r.queue.Push(key(userinput.KeyEscape, userinput.ModNone))
	r.menu(context.Background())
	test.ExpectEquality(t, r.ports.pins[userinput.PortOne], uint16(0))

	// key presses and hotkeys do nothing in the menu
	r.queue.Push(key('w', userinput.ModNone))
	r.queue.Push(key(userinput.KeyF(2), userinput.ModNone))
	r.queue.Push(key(userinput.KeyEscape, userinput.ModNone))
	r.menu(context.Background())
	test.ExpectEquality(t, r.ports.pins[userinput.PortOne], uint16(0))
	test.ExpectEquality(t, r.reg.Swapped(), false)

	// a key released during a capture
	r.event(w)
	r.queue.Push(release(w))
	r.queue.Push(key(userinput.KeyEscape, userinput.ModNone))
	ok, err := r.poller.CaptureHotkey(context.Background(), r.hk, hotkeySwap)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, r.ports.pins[userinput.PortOne], uint16(0))
}

var pad = joysticks.Device{Instance: 10, Name: "pad", Axes: 4, Buttons: 4, Hats: 1}

func TestMenuUnbind(t *testing.T) {
	r, srf := newTestRelay(t, pad)

	down := key(userinput.KeyDown, userinput.ModNone)
	sel := key(userinput.KeyReturn, userinput.ModNone)

	// unbind the first button
	for range 8 {
		r.queue.Push(down)
	}
	r.queue.Push(sel)
	r.queue.Push(userinput.Event{Kind: userinput.KindButtonDown, Device: 10, Index: 0})
	r.queue.Push(key(userinput.KeyEscape, userinput.ModNone))
	r.menu(context.Background())

	test.ExpectEquality(t, r.reg.Binding(0, joysticks.Input{Type: joysticks.Button, Index: 0}).Kind, joysticks.Unbound)
	test.ExpectSuccess(t, strings.Contains(srf.frame, "Unbind input: J0, Bt0 was joystick port 2 pins 0x10"))

	// clear the port 1 fire button twice, then the menu buttons, then the
	// unbound paddle
	for range 9 {
		r.queue.Push(down)
	}
	r.queue.Push(sel)
	r.queue.Push(sel)
	r.queue.Push(down)
	r.queue.Push(sel)
	r.queue.Push(down)
	r.queue.Push(sel)
	r.queue.Push(key(userinput.KeyEscape, userinput.ModNone))
	r.menu(context.Background())

	test.ExpectEquality(t, r.reg.Binding(0, joysticks.Input{Type: joysticks.Button, Index: 3}).Kind, joysticks.Unbound)
	test.ExpectEquality(t, r.reg.Binding(0, joysticks.Input{Type: joysticks.Button, Index: 1}).Kind, joysticks.Unbound)
	test.ExpectEquality(t, r.reg.PinMappingString(userinput.PortOne, userinput.PinFire), "")
	test.ExpectSuccess(t, strings.Contains(srf.frame, "Clear port 1 paddle: nothing bound"))
}
