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

package polling

import (
	"context"
	"fmt"

	"github.com/jetsetilly/inputrelay/curated"
	"github.com/jetsetilly/inputrelay/hotkeys"
	"github.com/jetsetilly/inputrelay/joysticks"
	"github.com/jetsetilly/inputrelay/logger"
	"github.com/jetsetilly/inputrelay/userinput"
)

// CaptureHotkey waits for a key chord and binds it to the hotkey action.
// Returns false if nothing was captured, in which case the action is
// unchanged.
func (p *Poller) CaptureHotkey(ctx context.Context, hk *hotkeys.Map, id int) (bool, error) {
	m, ok := hk.Get(id)
	if !ok {
		return false, curated.Errorf(hotkeys.InvalidAction, id)
	}

	ev := p.For(ctx, "Press the new hotkey", fmt.Sprintf("Current: %s", m), userinput.ClassKeyboard, p.Timeout)
	if ev.Kind != userinput.KindKeyDown || p.isCancel(ev) {
		return false, nil
	}

	m, err := hk.Set(id, ev.Key, ev.Mod, ev.ArchKey, ev.ArchMod, nil, nil)
	if err != nil {
		return false, err
	}
	logger.Logf(logger.Allow, "polling", "hotkey %s", m)

	return true, nil
}

// CaptureJoystick waits for a joystick input and binds it. Returns false if
// nothing was captured, in which case the bindings are unchanged.
func (p *Poller) CaptureJoystick(ctx context.Context, b joysticks.Binding) (bool, error) {
	if p.reg == nil {
		return false, curated.Errorf("polling: no joystick registry")
	}

	ev := p.For(ctx, "Press a button or move a joystick", b.String(), userinput.ClassJoystick, p.Timeout)
	if !ev.IsJoystick() {
		return false, nil
	}

	if !p.reg.SetFromEvent(ev, b) {
		logger.Logf(logger.Allow, "polling", "cannot bind %s", ev)
		return false, nil
	}

	return true, nil
}

// CapturePotAxis waits for a joystick axis movement and binds the axis to the
// pot of the port.
func (p *Poller) CapturePotAxis(ctx context.Context, port userinput.Port, pot int) (bool, error) {
	if p.reg == nil {
		return false, curated.Errorf("polling: no joystick registry")
	}

	target := fmt.Sprintf("Pot %d of port %d", pot, port+1)
	for {
		ev := p.For(ctx, "Move a joystick axis", target, userinput.ClassJoystick, p.Timeout)
		switch ev.Kind {
		case userinput.KindAxisMotion:
			return p.reg.SetPotAxisFromEvent(ev, port, pot), nil
		case userinput.KindButtonDown, userinput.KindHatMotion:
			p.misc(ev)
		default:
			return false, nil
		}
	}
}

// CaptureUnbind waits for a joystick input and removes its binding. The
// returned string describes the input and the binding it had. Returns false
// if nothing was captured.
func (p *Poller) CaptureUnbind(ctx context.Context) (string, bool, error) {
	if p.reg == nil {
		return "", false, curated.Errorf("polling: no joystick registry")
	}

	ev := p.For(ctx, "Press a button or move a joystick to unbind", "", userinput.ClassJoystick, p.Timeout)
	if !ev.IsJoystick() {
		return "", false, nil
	}

	joy, in, ok := p.reg.InputFromEvent(ev)
	if !ok {
		return "", false, nil
	}
	b, _ := p.reg.BindingFromEvent(ev)

	if !p.reg.UnsetFromEvent(ev) {
		logger.Logf(logger.Allow, "polling", "cannot unbind %s", ev)
		return "", false, nil
	}

	return fmt.Sprintf("J%d, %s was %s", joy, in, b), true, nil
}
