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

	"github.com/jetsetilly/inputrelay/joysticks"
	"github.com/jetsetilly/inputrelay/logger"
	"github.com/jetsetilly/inputrelay/userinput"
)

type menuEntry struct {
	label  string
	action func(ctx context.Context) (string, error)
}

// menuEntries returns the entries of the relay menu. The last entry always
// closes the menu.
func (r *relay) menuEntries() []menuEntry {
	captured := func(ok bool, err error) (string, error) {
		if err != nil {
			return "", err
		}
		if !ok {
			return "nothing captured", nil
		}
		return "captured", nil
	}

	cleared := func(was string, remove func()) (string, error) {
		if was == "" {
			return "nothing bound", nil
		}
		remove()
		return fmt.Sprintf("removed %s", was), nil
	}

	entries := []menuEntry{
		{"Set menu hotkey", func(ctx context.Context) (string, error) {
			return captured(r.poller.CaptureHotkey(ctx, r.hk, hotkeyMenu))
		}},
		{"Bind port 1 fire", func(ctx context.Context) (string, error) {
			return captured(r.poller.CaptureJoystick(ctx, joysticks.JoystickBinding(userinput.PortOne, userinput.PinFire)))
		}},
		{"Bind port 2 fire", func(ctx context.Context) (string, error) {
			return captured(r.poller.CaptureJoystick(ctx, joysticks.JoystickBinding(userinput.PortTwo, userinput.PinFire)))
		}},
		{"Bind menu button", func(ctx context.Context) (string, error) {
			return captured(r.poller.CaptureJoystick(ctx, joysticks.ExtraBinding(false)))
		}},
		{"Bind port 1 paddle", func(ctx context.Context) (string, error) {
			return captured(r.poller.CapturePotAxis(ctx, userinput.PortOne, 0))
		}},
		{"Swap ports", func(_ context.Context) (string, error) {
			r.reg.SwapPorts()
			return fmt.Sprintf("ports swapped: %v", r.reg.Swapped()), nil
		}},
		{"Reset bindings", func(_ context.Context) (string, error) {
			r.reg.ResetBindings()
			return "bindings reset", nil
		}},
		{"Save joymap", func(_ context.Context) (string, error) {
			r.saveJoymap()
			return r.status, nil
		}},
		{"Unbind input", func(ctx context.Context) (string, error) {
			s, ok, err := r.poller.CaptureUnbind(ctx)
			if err != nil || !ok {
				return captured(ok, err)
			}
			return s, nil
		}},
		{"Clear port 1 fire", func(_ context.Context) (string, error) {
			return cleared(r.reg.PinMappingString(userinput.PortOne, userinput.PinFire), func() {
				r.reg.DeletePinMapping(userinput.PortOne, userinput.PinFire)
			})
		}},
		{"Clear menu buttons", func(_ context.Context) (string, error) {
			return cleared(r.reg.ExtraMappingString(false), func() {
				r.reg.DeleteExtraMapping(false)
			})
		}},
		{"Clear port 1 paddle", func(_ context.Context) (string, error) {
			return cleared(r.reg.PotMappingString(userinput.PortOne, 0), func() {
				r.reg.DeletePotMapping(userinput.PortOne, 0)
			})
		}},
		{"Close menu", nil},
	}

	return entries
}

func (r *relay) drawMenu(entries []menuEntry, sel int) {
	if r.surface == nil {
		return
	}
	r.surface.Clear()
	for i, e := range entries {
		marker := "  "
		if i == sel {
			marker = "> "
		}
		r.surface.Print(i, 0, marker+e.label)
	}
	r.surface.Print(len(entries)+1, 0, r.status)
	r.surface.Refresh()
}

// menu runs until the menu is closed or the context is done. Joysticks drive
// the menu while it is open.
func (r *relay) menu(ctx context.Context) {
	r.reg.SetMenuMode(true)
	defer r.reg.SetMenuMode(false)

	entries := r.menuEntries()
	sel := 0

	for {
		r.drawMenu(entries, sel)

		switch r.poller.MenuInput(ctx) {
		case userinput.MenuNone:
			// context is done
			return
		case userinput.MenuExit, userinput.MenuCancel:
			r.status = "menu closed"
			return
		case userinput.MenuUp:
			sel = (sel + len(entries) - 1) % len(entries)
		case userinput.MenuDown:
			sel = (sel + 1) % len(entries)
		case userinput.MenuHome, userinput.MenuPageUp:
			sel = 0
		case userinput.MenuEnd, userinput.MenuPageDown:
			sel = len(entries) - 1
		case userinput.MenuSelect:
			e := entries[sel]
			if e.action == nil {
				r.status = "menu closed"
				return
			}

			s, err := e.action(ctx)
			if err != nil {
				logger.Log(logger.Allow, "menu", err)
				s = err.Error()
			}
			r.status = fmt.Sprintf("%s: %s", e.label, s)
		}
	}
}
