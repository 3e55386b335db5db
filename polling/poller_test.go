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

package polling_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/inputrelay/hotkeys"
	"github.com/jetsetilly/inputrelay/joysticks"
	"github.com/jetsetilly/inputrelay/polling"
	"github.com/jetsetilly/inputrelay/terminal/ansi"
	"github.com/jetsetilly/inputrelay/terminal/plainterm"
	"github.com/jetsetilly/inputrelay/test"
	"github.com/jetsetilly/inputrelay/userinput"
)

type surface struct {
	lines []string
}

func (s *surface) Clear() {
	s.lines = s.lines[:0]
}

func (s *surface) Print(row int, col int, str string) {
	s.lines = append(s.lines, fmt.Sprintf("%d,%d: %s", row, col, str))
}

func (s *surface) Refresh() {
}

func (s *surface) String() string {
	return strings.Join(s.lines, "\n")
}

var pad = joysticks.Device{Instance: 10, Name: "pad", Axes: 2, Buttons: 4, Hats: 1}

func newPoller(t *testing.T) (*polling.Poller, *userinput.Queue, *joysticks.Registry, *[]userinput.Event) {
	t.Helper()

	q := userinput.NewQueue(4)
	norm := userinput.NewNormaliser(10000, 1000)
	reg := joysticks.NewRegistry(joysticks.Static{pad}, norm, nil)
	_, err := reg.Rescan()
	test.DemandSuccess(t, err)

	p := polling.NewPoller(q, norm, reg)
	p.Slice = time.Millisecond
	p.SlicesPerTick = 2

	var misc []userinput.Event
	p.Misc = func(ev userinput.Event) {
		misc = append(misc, ev)
	}

	return p, q, reg, &misc
}

func key(k userinput.Keysym, down bool) userinput.Event {
	if down {
		return userinput.Event{Kind: userinput.KindKeyDown, Device: userinput.NoDevice, Key: k, ArchKey: uint32(k)}
	}
	return userinput.Event{Kind: userinput.KindKeyUp, Device: userinput.NoDevice, Key: k, ArchKey: uint32(k)}
}

func TestCancelPrecedence(t *testing.T) {
	p, q, _, _ := newPoller(t)

	q.Push(userinput.Event{Kind: userinput.KindCancel})
	q.Push(key('a', true))

	ev := p.For(context.Background(), "test", "", userinput.ClassKeyboard, 0)
	test.ExpectEquality(t, ev.Kind, userinput.KindCancel)

	// the matching event is still in the queue
	ev = p.For(context.Background(), "test", "", userinput.ClassKeyboard, 0)
	test.ExpectEquality(t, ev, key('a', true))

	// the cancel key
	q.Push(key(userinput.KeyEscape, true))
	q.Push(key('a', true))
	ev = p.For(context.Background(), "test", "", userinput.ClassKeyboard, 0)
	test.ExpectEquality(t, ev.Key, userinput.KeyEscape)
}

func TestMatching(t *testing.T) {
	p, q, _, misc := newPoller(t)

	q.Push(key('a', false))
	q.Push(userinput.Event{Kind: userinput.KindKeyDown, Key: userinput.KeyShiftL, Modifier: true})
	q.Push(key('b', true))

	ev := p.For(context.Background(), "test", "", userinput.ClassKeyboard, 0)
	test.ExpectEquality(t, ev, key('b', true))
	test.ExpectEquality(t, len(*misc), 2)
	test.ExpectEquality(t, (*misc)[0], key('a', false))

	*misc = (*misc)[:0]

	// small axis movements and button releases don't match
	q.Push(userinput.Event{Kind: userinput.KindAxisMotion, Device: 10, Index: 0, Value: 100})
	q.Push(userinput.Event{Kind: userinput.KindButtonUp, Device: 10, Index: 0})
	q.Push(key('c', true))
	q.Push(userinput.Event{Kind: userinput.KindAxisMotion, Device: 10, Index: 0, Value: -20000})

	ev = p.For(context.Background(), "test", "", userinput.ClassJoystick, 0)
	test.ExpectEquality(t, ev.Kind, userinput.KindAxisMotion)
	test.ExpectEquality(t, ev.Value, int32(-20000))
	test.ExpectEquality(t, len(*misc), 3)

	// the axis is now held so the same value doesn't match again
	q.Push(userinput.Event{Kind: userinput.KindAxisMotion, Device: 10, Index: 0, Value: -21000})
	q.Push(userinput.Event{Kind: userinput.KindHatMotion, Device: 10, Index: 0, Value: int32(userinput.HatLeft)})
	ev = p.For(context.Background(), "test", "", userinput.ClassJoystick, 0)
	test.ExpectEquality(t, ev.Kind, userinput.KindHatMotion)

	// joystick events are not normalised when joysticks are filtered out
	*misc = (*misc)[:0]
	q.Push(userinput.Event{Kind: userinput.KindHatMotion, Device: 10, Index: 0, Value: int32(userinput.HatUp)})
	q.Push(key('d', true))
	ev = p.For(context.Background(), "test", "", userinput.ClassKeyboard, 0)
	test.ExpectEquality(t, ev, key('d', true))
	test.ExpectEquality(t, len(*misc), 1)
	test.ExpectEquality(t, (*misc)[0].Kind, userinput.KindHatMotion)
}

func TestTimeout(t *testing.T) {
	p, _, _, _ := newPoller(t)
	s := &surface{}
	p.Surface = s

	start := time.Now()
	ev := p.For(context.Background(), "Waiting", "J0, Bt0", userinput.ClassAll, 2)
	test.ExpectEquality(t, ev, polling.NothingCaptured)

	// two ticks of two slices
	test.ExpectSuccess(t, time.Since(start) >= 4*time.Millisecond)

	test.ExpectEquality(t, s.String(), "0,0: Waiting\n1,0: J0, Bt0\n3,0: Press Escape to cancel\n4,0: Timeout in 1")
}

func TestCountdownOnTerminal(t *testing.T) {
	p, _, _, _ := newPoller(t)
	w, err := test.NewRingWriter(256)
	test.DemandSuccess(t, err)

	srf := plainterm.NewSurface(w)
	srf.Pen = ""
	p.Surface = srf

	ev := p.For(context.Background(), "Waiting", "J0, Bt0", userinput.ClassAll, 3)
	test.ExpectEquality(t, ev, polling.NothingCaptured)

	// the final frame is the last countdown message
	test.ExpectSuccess(t, strings.HasSuffix(w.String(), "Timeout in 1"+ansi.NormalPen))
	test.ExpectSuccess(t, w.Contains(ansi.ClearScreen))
}

func TestContext(t *testing.T) {
	p, _, _, _ := newPoller(t)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	ev := p.For(ctx, "test", "", userinput.ClassAll, 0)
	test.ExpectEquality(t, ev, polling.NothingCaptured)

	act := p.MenuInput(ctx)
	test.ExpectEquality(t, act, userinput.MenuNone)
}

func TestConcurrentProducer(t *testing.T) {
	p, q, _, misc := newPoller(t)

	go func() {
		for i := range 100 {
			q.Push(key(userinput.Keysym('a'+i%26), false))
			time.Sleep(50 * time.Microsecond)
		}
		q.Push(key('z', true))
	}()

	ev := p.For(context.Background(), "test", "", userinput.ClassKeyboard, 0)
	test.ExpectEquality(t, ev, key('z', true))
	test.ExpectEquality(t, len(*misc), 100)
}

func TestMenuInput(t *testing.T) {
	p, q, reg, misc := newPoller(t)
	reg.SetMenuMode(true)

	q.Push(key(userinput.KeyUp, true))
	test.ExpectEquality(t, p.MenuInput(context.Background()), userinput.MenuUp)

	// keys with modifiers are not menu keys
	q.Push(userinput.Event{Kind: userinput.KindKeyDown, Key: userinput.KeyUp, Mod: userinput.ModShift})
	q.Push(userinput.Event{Kind: userinput.KindButtonDown, Device: 10, Index: 0})
	test.ExpectEquality(t, p.MenuInput(context.Background()), userinput.MenuSelect)
	test.ExpectEquality(t, len(*misc), 1)

	// releases are not actions
	q.Push(userinput.Event{Kind: userinput.KindButtonUp, Device: 10, Index: 0})
	q.Push(userinput.Event{Kind: userinput.KindHatMotion, Device: 10, Index: 0, Value: int32(userinput.HatDown)})
	test.ExpectEquality(t, p.MenuInput(context.Background()), userinput.MenuDown)

	// the hat is held so the direction repeats
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	test.ExpectEquality(t, p.MenuInput(ctx), userinput.MenuDown)

	q.Push(userinput.Event{Kind: userinput.KindQuit})
	test.ExpectEquality(t, p.MenuInput(context.Background()), userinput.MenuExit)

	// quit remains in the queue
	ev, ok := q.TryPop()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ev.Kind, userinput.KindQuit)
}

func TestCaptureHotkey(t *testing.T) {
	p, q, _, _ := newPoller(t)
	hk := hotkeys.NewMap(4, nil)

	_, err := hk.Set(1, 'q', userinput.ModControl, 0, 0, nil, nil)
	test.DemandSuccess(t, err)

	// cancelled capture leaves the mapping alone
	q.Push(key(userinput.KeyEscape, true))
	ok, err := p.CaptureHotkey(context.Background(), hk, 1)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, ok)
	m, _ := hk.Get(1)
	test.ExpectEquality(t, m.Keysym, userinput.Keysym('q'))

	q.Push(userinput.Event{Kind: userinput.KindKeyDown, Key: 'x', Mod: userinput.ModAlt, ArchKey: 0x78, ArchMod: 0x100})
	ok, err = p.CaptureHotkey(context.Background(), hk, 1)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ok)
	m, _ = hk.Get(1)
	test.ExpectEquality(t, m.Keysym, userinput.Keysym('x'))
	test.ExpectEquality(t, m.Modmask, userinput.ModAlt)
	test.ExpectEquality(t, m.ArchModmask, uint32(0x100))

	_, err = p.CaptureHotkey(context.Background(), hk, 9)
	test.ExpectFailure(t, err)
}

func TestCaptureJoystick(t *testing.T) {
	p, q, reg, _ := newPoller(t)
	p.Timeout = 1

	kb := joysticks.KeyboardBinding(3, 4)

	// timeout leaves the bindings alone
	ok, err := p.CaptureJoystick(context.Background(), kb)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, reg.Binding(0, joysticks.Input{Type: joysticks.Button, Index: 2}), joysticks.ExtraBinding(true))

	q.Push(userinput.Event{Kind: userinput.KindButtonDown, Device: 10, Index: 2})
	ok, err = p.CaptureJoystick(context.Background(), kb)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, reg.Binding(0, joysticks.Input{Type: joysticks.Button, Index: 2}), kb)

	q.Push(userinput.Event{Kind: userinput.KindButtonDown, Device: 10, Index: 0})
	q.Push(userinput.Event{Kind: userinput.KindAxisMotion, Device: 10, Index: 1, Value: 30000})
	ok, err = p.CapturePotAxis(context.Background(), userinput.PortTwo, 1)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, reg.PotMappingString(userinput.PortTwo, 1), "J0, Ax1")
}
