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
	"time"

	"github.com/jetsetilly/inputrelay/joysticks"
	"github.com/jetsetilly/inputrelay/logger"
	"github.com/jetsetilly/inputrelay/userinput"
)

// NothingCaptured is returned by For() when the timeout runs out or when the
// context is done.
var NothingCaptured = userinput.Event{Kind: userinput.KindNone}

// Default values for the Poller fields.
const (
	DefaultSlice         = time.Second / 60
	DefaultSlicesPerTick = 60
)

// Poller consumes events from a Queue. Only one goroutine should use a
// Poller at a time.
type Poller struct {
	queue *userinput.Queue
	norm  *userinput.Normaliser
	reg   *joysticks.Registry

	// events that are not wanted are passed to Misc. can be nil
	Misc func(userinput.Event)

	// countdown messages are printed on the Surface. can be nil
	Surface Surface

	// a key down event for this key cancels a capture. events of
	// KindCancel and KindQuit always cancel
	CancelKey userinput.Keysym

	// the length of each sleep and the number of sleeps in a timeout tick
	Slice         time.Duration
	SlicesPerTick int

	// the number of ticks before a capture times out. zero waits forever
	Timeout int

	// keys used to navigate menus
	MenuKeys userinput.MenuKeys
}

// NewPoller is the preferred method of initialisation for the Poller type.
// The registry can be nil, in which case joystick events are not normalised
// by MenuInput().
func NewPoller(queue *userinput.Queue, norm *userinput.Normaliser, reg *joysticks.Registry) *Poller {
	return &Poller{
		queue:         queue,
		norm:          norm,
		reg:           reg,
		CancelKey:     userinput.KeyEscape,
		Slice:         DefaultSlice,
		SlicesPerTick: DefaultSlicesPerTick,
		MenuKeys:      userinput.DefaultMenuKeys(),
	}
}

func (p *Poller) isCancel(ev userinput.Event) bool {
	switch ev.Kind {
	case userinput.KindCancel, userinput.KindQuit:
		return true
	case userinput.KindKeyDown:
		return p.CancelKey != userinput.KeyNone && ev.Key == p.CancelKey
	}
	return false
}

// match returns true if the event belongs to a class in the filter and is
// the start of an input. axis and hat events are normalised and only match
// on a transition away from the centre.
func (p *Poller) match(ev userinput.Event, filter userinput.Class) bool {
	if ev.Class()&filter == 0 {
		return false
	}

	switch ev.Kind {
	case userinput.KindKeyDown, userinput.KindButtonDown, userinput.KindMouseMotion:
		return true
	case userinput.KindAxisMotion:
		cur, prev := p.norm.Axis(ev.Device, ev.Index, int16(ev.Value))
		return cur != prev && cur != userinput.AxisMiddle
	case userinput.KindHatMotion:
		newly, _ := p.norm.Hat(ev.Device, ev.Index, userinput.HatDirection(ev.Value))
		return newly != userinput.HatCentred
	}

	return false
}

func (p *Poller) misc(ev userinput.Event) {
	switch ev.Kind {
	case userinput.KindDeviceAdded, userinput.KindDeviceRemoved:
		if p.reg != nil {
			if _, err := p.reg.Rescan(); err != nil {
				logger.Log(logger.Allow, "polling", err)
			}
		}
	}
	if p.Misc != nil {
		p.Misc(ev)
	}
}

func (p *Poller) draw(what string, target string, timeout int) {
	if p.Surface == nil {
		return
	}
	p.Surface.Clear()
	p.Surface.Print(0, 0, what)
	p.Surface.Print(1, 0, target)
	if p.CancelKey != userinput.KeyNone {
		p.Surface.Print(3, 0, fmt.Sprintf("Press %s to cancel", p.CancelKey))
	}
	if timeout > 0 {
		p.Surface.Print(4, 0, fmt.Sprintf("Timeout in %d", timeout))
	}
	p.Surface.Refresh()
}

// For waits for an event of a class in the filter. The what and target
// arguments are printed on the Surface, along with the remaining timeout.
//
// Exactly one of the following is returned: the first matching event, a
// cancel event or NothingCaptured. Events before the returned event that do
// not match are passed to the Misc callback. A timeout of zero waits until
// the context is done.
func (p *Poller) For(ctx context.Context, what string, target string, filter userinput.Class, timeout int) userinput.Event {
	p.draw(what, target, timeout)

	tck := time.NewTicker(p.Slice)
	defer tck.Stop()

	slices := 0

	for {
		for {
			ev, ok := p.queue.TryPop()
			if !ok {
				break
			}
			if p.isCancel(ev) {
				logger.Logf(logger.Allow, "polling", "%s: cancelled", what)
				if ev.Kind == userinput.KindQuit {
					p.queue.Push(ev)
				}
				return ev
			}
			if p.match(ev, filter) {
				return ev
			}
			p.misc(ev)
		}

		select {
		case <-ctx.Done():
			return NothingCaptured
		case <-tck.C:
		}

		if timeout > 0 {
			slices++
			if slices >= p.SlicesPerTick {
				slices = 0
				timeout--
				if timeout == 0 {
					logger.Logf(logger.Allow, "polling", "%s: timed out", what)
					return NothingCaptured
				}
				p.draw(what, target, timeout)
			}
		}
	}
}

// MenuInput waits for a menu navigation action. Key down events are
// translated with MenuKeys. Joystick events are dispatched to the registry,
// which should be in menu mode. Held joystick directions repeat.
//
// Returns MenuExit if a cancel event is found and MenuNone if the context is
// done.
func (p *Poller) MenuInput(ctx context.Context) userinput.MenuAction {
	tck := time.NewTicker(p.Slice)
	defer tck.Stop()

	for {
		for {
			ev, ok := p.queue.TryPop()
			if !ok {
				break
			}

			switch ev.Kind {
			case userinput.KindQuit:
				// leave the quit event for whoever opened the menu
				p.queue.Push(ev)
				return userinput.MenuExit

			case userinput.KindCancel:
				return userinput.MenuExit

			case userinput.KindKeyDown:
				if act, ok := p.MenuKeys[ev.Key]; ok && ev.Mod == userinput.ModNone {
					return act
				}
				p.misc(ev)

			case userinput.KindAxisMotion, userinput.KindButtonDown, userinput.KindButtonUp, userinput.KindHatMotion,
				userinput.KindDeviceAdded, userinput.KindDeviceRemoved:
				if p.reg == nil {
					p.misc(ev)
					break
				}
				act, err := p.reg.Dispatch(ev)
				if err != nil {
					logger.Log(logger.Allow, "polling", err)
				}
				if act != userinput.MenuNone && !act.IsRelease() {
					return act
				}

			default:
				p.misc(ev)
			}
		}

		if p.reg != nil {
			if act := p.reg.Autorepeat(); act != userinput.MenuNone {
				return act
			}
		}

		select {
		case <-ctx.Done():
			return userinput.MenuNone
		case <-tck.C:
		}
	}
}
