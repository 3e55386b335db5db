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
	"fmt"
	"time"

	"github.com/jetsetilly/inputrelay/hotkeys"
	"github.com/jetsetilly/inputrelay/joysticks"
	"github.com/jetsetilly/inputrelay/logger"
	"github.com/jetsetilly/inputrelay/polling"
	"github.com/jetsetilly/inputrelay/userinput"
)

// hotkey actions. zero is reserved by the hotkeys package
const (
	hotkeyNone = iota
	hotkeyMenu
	hotkeySwap
	hotkeySaveJoymap
	hotkeyQuit
	numHotkeys
)

// relay moves events from the queue to the emulated ports.
type relay struct {
	queue   *userinput.Queue
	reg     *joysticks.Registry
	hk      *hotkeys.Map
	poller  *polling.Poller
	ports   *ports
	keysets []userinput.Keyset
	surface polling.Surface

	// path of the joymap file. saving is disabled if empty
	joymap string

	// the last thing that happened. shown on the surface
	status string

	// set by hotkeys and menu activation
	menuRequested bool
	quitRequested bool
}

func newRelay(queue *userinput.Queue, reg *joysticks.Registry, hk *hotkeys.Map, poller *polling.Poller, srf polling.Surface) *relay {
	r := &relay{
		queue:   queue,
		reg:     reg,
		hk:      hk,
		poller:  poller,
		ports:   newPorts(),
		keysets: userinput.DefaultKeysets(),
		surface: srf,
		status:  "F1 for menu",
	}
	r.ports.onHotkey = r.hotkey
	r.ports.onMenu = func() { r.menuRequested = true }
	reg.SetHandler(r.ports)
	poller.Surface = srf
	poller.Misc = r.misc
	return r
}

// misc receives the events that the menu and capture dialogs have no use
// for. key releases still reach the keysets so that no pin is left held.
// key presses and hotkeys are ignored. the poller has already rescanned for
// device events.
func (r *relay) misc(ev userinput.Event) {
	if ev.Kind != userinput.KindKeyUp {
		return
	}
	if _, err := userinput.HandleKeysets(r.keysets, ev, r.reg); err != nil {
		logger.Log(logger.Allow, "relay", err)
	}
}

// defaultHotkeys sets the standard chords for the hotkey actions.
func (r *relay) defaultHotkeys() error {
	for _, d := range []struct {
		id  int
		key userinput.Keysym
		mod userinput.Modmask
	}{
		{hotkeyMenu, userinput.KeyF(1), userinput.ModNone},
		{hotkeySwap, userinput.KeyF(2), userinput.ModNone},
		{hotkeySaveJoymap, userinput.KeyF(3), userinput.ModNone},
		{hotkeyQuit, 'q', userinput.ModControl},
	} {
		if _, err := r.hk.SetByLogical(d.id, d.key, d.mod, nil, nil); err != nil {
			return err
		}
	}
	return nil
}

func (r *relay) hotkey(id int) {
	switch id {
	case hotkeyMenu:
		r.menuRequested = true
	case hotkeySwap:
		r.reg.SwapPorts()
		r.status = fmt.Sprintf("ports swapped: %v", r.reg.Swapped())
	case hotkeySaveJoymap:
		r.saveJoymap()
	case hotkeyQuit:
		r.quitRequested = true
	default:
		r.status = fmt.Sprintf("hotkey %d has no action", id)
	}
}

func (r *relay) saveJoymap() {
	if r.joymap == "" {
		r.status = "joymap saving disabled"
		return
	}
	if err := r.reg.SaveJoymapFile(r.joymap); err != nil {
		logger.Log(logger.Allow, "relay", err)
		r.status = err.Error()
		return
	}
	r.status = "joymap saved"
}

func (r *relay) draw() {
	if r.surface == nil {
		return
	}
	r.surface.Clear()
	row := 0
	for _, l := range r.ports.lines() {
		r.surface.Print(row, 0, l)
		row++
	}
	r.surface.Print(row, 0, fmt.Sprintf("Joysticks: %d", r.reg.Count()))
	r.surface.Print(row+1, 0, r.status)
	r.surface.Refresh()
}

// event handles a single event from the queue. Returns true if the relay
// should end.
func (r *relay) event(ev userinput.Event) bool {
	switch ev.Kind {
	case userinput.KindQuit:
		return true

	case userinput.KindKeyDown, userinput.KindKeyUp:
		if ev.Kind == userinput.KindKeyDown {
			if m, ok := r.hk.FindByArch(ev.ArchKey, ev.ArchMod); ok {
				r.hotkey(m.Action)
				return r.quitRequested
			}
		}
		if _, err := userinput.HandleKeysets(r.keysets, ev, r.reg); err != nil {
			logger.Log(logger.Allow, "relay", err)
		}

	case userinput.KindAxisMotion, userinput.KindButtonDown, userinput.KindButtonUp, userinput.KindHatMotion,
		userinput.KindDeviceAdded, userinput.KindDeviceRemoved:
		if _, err := r.reg.Dispatch(ev); err != nil {
			logger.Log(logger.Allow, "relay", err)
		}
	}

	return r.quitRequested
}

// run the relay until a quit event or the context is done.
func (r *relay) run(ctx context.Context) {
	if _, err := r.reg.Rescan(); err != nil {
		logger.Log(logger.Allow, "relay", err)
	}

	tck := time.NewTicker(r.poller.Slice)
	defer tck.Stop()

	r.draw()

	for {
		changed := false
		for {
			ev, ok := r.queue.TryPop()
			if !ok {
				break
			}
			changed = true
			if r.event(ev) {
				return
			}
			if r.menuRequested {
				r.menuRequested = false
				r.menu(ctx)
			}
		}

		if changed {
			r.draw()
		}

		select {
		case <-ctx.Done():
			return
		case <-tck.C:
		}
	}
}
