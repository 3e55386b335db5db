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
	"fmt"
	"strings"
	"sync"

	"github.com/jetsetilly/inputrelay/curated"
	"github.com/jetsetilly/inputrelay/logger"
	"github.com/jetsetilly/inputrelay/userinput"
)

// ports is the state of the emulated control ports as seen by the relay. It
// implements userinput.HandleInput and stands in for the emulation.
type ports struct {
	crit sync.Mutex

	pins [userinput.NumPorts]uint16
	pots [userinput.NumPorts][2]uint8
	keys map[userinput.KeyMatrix]bool

	// hotkeys and menu activation are passed to these functions. can be nil
	onHotkey func(id int)
	onMenu   func()
}

func newPorts() *ports {
	return &ports{
		keys: make(map[userinput.KeyMatrix]bool),
	}
}

// HandleEvent implements the userinput.HandleInput interface.
func (p *ports) HandleEvent(port userinput.Port, ev userinput.PortEvent, d userinput.PortEventData) error {
	p.crit.Lock()

	var hotkey func()
	var err error

	switch ev {
	case userinput.PortPinsPress, userinput.PortPinsRelease:
		pins, ok := d.(uint16)
		if !ok || port < 0 || port >= userinput.NumPorts {
			err = curated.Errorf("ports: bad pin event for port %d", port)
			break
		}
		if ev == userinput.PortPinsPress {
			p.pins[port] |= pins
		} else {
			p.pins[port] &^= pins
		}

	case userinput.PortPotSet:
		pv, ok := d.(userinput.PotValue)
		if !ok || port < 0 || port >= userinput.NumPorts || pv.Pot < 0 || pv.Pot > 1 {
			err = curated.Errorf("ports: bad pot event for port %d", port)
			break
		}
		p.pots[port][pv.Pot] = pv.Value

	case userinput.PortKeyPress, userinput.PortKeyRelease:
		km, ok := d.(userinput.KeyMatrix)
		if !ok {
			err = curated.Errorf("ports: bad key event")
			break
		}
		if ev == userinput.PortKeyPress {
			p.keys[km] = true
		} else {
			delete(p.keys, km)
		}

	case userinput.PortHotkey:
		id, ok := d.(int)
		if !ok {
			err = curated.Errorf("ports: bad hotkey event")
			break
		}
		if p.onHotkey != nil {
			f := p.onHotkey
			hotkey = func() { f(id) }
		}

	case userinput.PortMenuActivate:
		hotkey = p.onMenu
	}

	p.crit.Unlock()

	if err != nil {
		logger.Log(logger.Allow, "ports", err)
		return err
	}

	// callbacks are made outside of the critical section
	if hotkey != nil {
		hotkey()
	}

	return nil
}

func pinString(pins uint16) string {
	var s strings.Builder
	for _, p := range []struct {
		bit  uint16
		name string
	}{
		{userinput.PinUp, "U"},
		{userinput.PinDown, "D"},
		{userinput.PinLeft, "L"},
		{userinput.PinRight, "R"},
		{userinput.PinFire, "F"},
	} {
		if pins&p.bit == p.bit {
			s.WriteString(p.name)
		} else {
			s.WriteString(".")
		}
	}

	// additional fire buttons
	for i := 5; i < userinput.NumPins; i++ {
		if pins&(1<<i) != 0 {
			fmt.Fprintf(&s, " F%d", i-3)
		}
	}

	return s.String()
}

// lines returns a description of each port.
func (p *ports) lines() []string {
	p.crit.Lock()
	defer p.crit.Unlock()

	l := make([]string, 0, userinput.NumPorts+1)
	for i := range userinput.NumPorts {
		l = append(l, fmt.Sprintf("Port %d: %s  pots %3d %3d", i+1, pinString(p.pins[i]), p.pots[i][0], p.pots[i][1]))
	}
	if len(p.keys) > 0 {
		l = append(l, fmt.Sprintf("Keys: %d pressed", len(p.keys)))
	}
	return l
}
