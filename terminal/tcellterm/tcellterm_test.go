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

package tcellterm_test

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jetsetilly/inputrelay/terminal/tcellterm"
	"github.com/jetsetilly/inputrelay/test"
	"github.com/jetsetilly/inputrelay/userinput"
)

func TestTranslate(t *testing.T) {
	evs := tcellterm.Translate(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	test.DemandEquality(t, len(evs), 2)
	test.ExpectEquality(t, evs[0].Kind, userinput.KindKeyDown)
	test.ExpectEquality(t, evs[1].Kind, userinput.KindKeyUp)
	test.ExpectEquality(t, evs[0].Key, userinput.Keysym('q'))
	test.ExpectEquality(t, evs[0].Mod, userinput.ModNone)

	evs = tcellterm.Translate(tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone))
	test.DemandEquality(t, len(evs), 2)
	test.ExpectEquality(t, evs[0].Key, userinput.Keysym('q'))
	test.ExpectEquality(t, evs[0].Mod, userinput.ModShift)

	evs = tcellterm.Translate(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModAlt))
	test.DemandEquality(t, len(evs), 2)
	test.ExpectEquality(t, evs[0].Key, userinput.KeyUp)
	test.ExpectEquality(t, evs[0].Mod, userinput.ModAlt)

	evs = tcellterm.Translate(tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone))
	test.DemandEquality(t, len(evs), 2)
	test.ExpectEquality(t, evs[0].Key, userinput.KeyF(5))

	evs = tcellterm.Translate(tcell.NewEventKey(tcell.KeyCtrlX, 0, tcell.ModNone))
	test.DemandEquality(t, len(evs), 2)
	test.ExpectEquality(t, evs[0].Key, userinput.Keysym('x'))
	test.ExpectEquality(t, evs[0].Mod, userinput.ModControl)

	evs = tcellterm.Translate(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))
	test.DemandEquality(t, len(evs), 1)
	test.ExpectEquality(t, evs[0].Kind, userinput.KindQuit)

	evs = tcellterm.Translate(tcell.NewEventMouse(10, 4, tcell.ButtonNone, tcell.ModNone))
	test.DemandEquality(t, len(evs), 1)
	test.ExpectEquality(t, evs[0].Kind, userinput.KindMouseMotion)
	test.ExpectEquality(t, evs[0].Value, int32(10))
	test.ExpectEquality(t, evs[0].ValueY, int32(4))

	test.ExpectEquality(t, len(tcellterm.Translate(tcell.NewEventInterrupt(nil))), 0)
}

func TestTranslator(t *testing.T) {
	var tr tcellterm.Translator

	ak, am := tr.Arch(userinput.KeyPageUp, userinput.ModShift)
	k, m := tr.Logical(ak, am)
	test.ExpectEquality(t, k, userinput.KeyPageUp)
	test.ExpectEquality(t, m, userinput.ModShift)

	ak, am = tr.Arch('z', userinput.ModControl|userinput.ModAlt)
	k, m = tr.Logical(ak, am)
	test.ExpectEquality(t, k, userinput.Keysym('z'))
	test.ExpectEquality(t, m, userinput.ModControl|userinput.ModAlt)

	// the arch codes of a translated event give the same chord
	evs := tcellterm.Translate(tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModCtrl))
	test.DemandEquality(t, len(evs), 2)
	k, m = tr.Logical(evs[0].ArchKey, evs[0].ArchMod)
	test.ExpectEquality(t, k, evs[0].Key)
	test.ExpectEquality(t, m, evs[0].Mod)
}

func TestSurface(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	term, err := tcellterm.NewTerminalFromScreen(sim)
	test.DemandSuccess(t, err)
	defer term.Shutdown()

	term.Clear()
	term.Print(1, 2, "hi")
	term.Print(30, 0, "off screen")
	term.Refresh()

	cells, w, _ := sim.GetContents()
	test.DemandEquality(t, w, 80)
	test.ExpectEquality(t, cells[w+2].Runes[0], 'h')
	test.ExpectEquality(t, cells[w+3].Runes[0], 'i')
}

func TestService(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	term, err := tcellterm.NewTerminalFromScreen(sim)
	test.DemandSuccess(t, err)
	defer term.Shutdown()

	q := userinput.NewQueue(4)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		term.Service(ctx, q)
		close(done)
	}()

	sim.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	sim.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)

	deadline := time.Now().Add(time.Second)
	for q.Len() < 4 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	test.ExpectEquality(t, q.Len(), 4)

	ev, _ := q.TryPop()
	test.ExpectEquality(t, ev.Key, userinput.Keysym('a'))
	_, _ = q.TryPop()
	ev, _ = q.TryPop()
	test.ExpectEquality(t, ev.Key, userinput.KeyLeft)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Errorf("service did not stop after cancellation")
	}
}
