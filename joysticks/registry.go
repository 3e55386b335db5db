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

package joysticks

import (
	"sync"

	"github.com/jetsetilly/inputrelay/curated"
	"github.com/jetsetilly/inputrelay/logger"
	"github.com/jetsetilly/inputrelay/userinput"
)

// Sentinal errors.
const (
	NoJoystick   = "joysticks: no joystick at index %d"
	InvalidInput = "joysticks: invalid input (%v) for joystick %d"
)

// the number of pot mappings. two pots for each port
const numPotMappings = userinput.NumPorts * 2

type potMapping struct {
	joy   int
	axis  int
	valid bool
}

// Registry is the table of attached joysticks and their bindings. It is safe
// to use from more than one goroutine.
type Registry struct {
	crit sync.Mutex

	enum   Enumerator
	norm   *userinput.Normaliser
	handle userinput.HandleInput

	// indexed by logical index
	joysticks []*joystick

	// the joymap most recently loaded. applied by Rescan() when a device list
	// is built from nothing
	joymap string

	// indexed by (port<<1)|pot
	pots [numPotMappings]potMapping

	// number of host inputs holding each pin of each port
	pressed [userinput.NumPorts][userinput.NumPins]int

	menuMode         bool
	joysticksForMenu bool
	autorepeat       userinput.Autorepeat
	swapped          bool
}

// NewRegistry is the preferred method of initialisation for the Registry
// type. The handle argument can be nil, in which case port events are
// discarded until SetHandler() is called. Rescan() must be called before
// the registry has any joysticks.
func NewRegistry(enum Enumerator, norm *userinput.Normaliser, handle userinput.HandleInput) *Registry {
	return &Registry{
		enum:             enum,
		norm:             norm,
		handle:           handle,
		joysticksForMenu: true,
		autorepeat:       userinput.NewAutorepeat(),
	}
}

// SetHandler changes where port events are sent.
func (reg *Registry) SetHandler(handle userinput.HandleInput) {
	reg.crit.Lock()
	defer reg.crit.Unlock()
	reg.handle = handle
}

// SetJoysticksForMenu sets whether joysticks can navigate menus. Only
// affects the default bindings of devices found by later calls to Rescan().
func (reg *Registry) SetJoysticksForMenu(set bool) {
	reg.crit.Lock()
	defer reg.crit.Unlock()
	reg.joysticksForMenu = set
}

// Rescan rebuilds the joystick table from the Enumerator. Devices that were
// present before the rescan keep their bindings. New devices receive the
// default bindings. All pin press counts are cleared.
//
// Returns the number of joysticks found. On error the existing table is left
// unchanged.
func (reg *Registry) Rescan() (int, error) {
	devs, err := reg.enum.Devices()
	if err != nil {
		return 0, curated.Errorf("joysticks: %v", err)
	}

	reg.crit.Lock()
	defer reg.crit.Unlock()

	threshold, _ := reg.norm.Thresholds()

	old := reg.joysticks
	reg.joysticks = make([]*joystick, 0, len(devs))

	for i, d := range devs {
		j := newJoystick(d)

		carried := false
		for _, o := range old {
			if o.Instance == d.Instance && o.sameLayout(j) {
				j.bindings = o.bindings
				carried = true
				break
			}
		}

		if !carried {
			j.setDefaults(i, reg.joysticksForMenu, threshold)
		}

		reg.joysticks = append(reg.joysticks, j)
		logger.Logf(logger.Allow, "joystick", "J%d: %s", i, d)
	}

	for _, o := range old {
		if _, ok := reg.logicalIndex(o.Instance); !ok {
			reg.norm.Forget(o.Instance)
		}
	}

	reg.pressed = [userinput.NumPorts][userinput.NumPins]int{}

	if len(reg.joysticks) == 0 {
		logger.Log(logger.Allow, "joystick", "no joysticks found")
	} else if len(old) == 0 && reg.joymap != "" {
		if err := reg.applyJoymap(reg.joymap); err != nil {
			logger.Log(logger.Allow, "joystick", err)
		}
	}

	return len(reg.joysticks), nil
}

// Count returns the number of joysticks in the table.
func (reg *Registry) Count() int {
	reg.crit.Lock()
	defer reg.crit.Unlock()
	return len(reg.joysticks)
}

// Devices returns a copy of the device list, in logical index order.
func (reg *Registry) Devices() []Device {
	reg.crit.Lock()
	defer reg.crit.Unlock()
	d := make([]Device, len(reg.joysticks))
	for i, j := range reg.joysticks {
		d[i] = j.Device
	}
	return d
}

// LogicalIndex returns the logical index of the joystick with the instance
// ID. Returns false if the instance is not in the table.
func (reg *Registry) LogicalIndex(inst userinput.DeviceID) (int, bool) {
	reg.crit.Lock()
	defer reg.crit.Unlock()
	return reg.logicalIndex(inst)
}

func (reg *Registry) logicalIndex(inst userinput.DeviceID) (int, bool) {
	for i, j := range reg.joysticks {
		if j.Instance == inst {
			return i, true
		}
	}
	return -1, false
}

// Binding returns the binding of an input of the joystick at logical index
// joy. Joysticks or inputs that do not exist return the zero Binding, which
// has a Kind of Unbound.
func (reg *Registry) Binding(joy int, in Input) Binding {
	reg.crit.Lock()
	defer reg.crit.Unlock()

	if joy < 0 || joy >= len(reg.joysticks) {
		return Binding{}
	}
	b, ok := reg.joysticks[joy].binding(in)
	if !ok {
		return Binding{}
	}
	return *b
}

// SetBinding changes the binding of an input of the joystick at logical
// index joy.
func (reg *Registry) SetBinding(joy int, in Input, b Binding) error {
	reg.crit.Lock()
	defer reg.crit.Unlock()
	return reg.setBinding(joy, in, b)
}

func (reg *Registry) setBinding(joy int, in Input, b Binding) error {
	if joy < 0 || joy >= len(reg.joysticks) {
		return curated.Errorf(NoJoystick, joy)
	}
	p, ok := reg.joysticks[joy].binding(in)
	if !ok {
		return curated.Errorf(InvalidInput, in, joy)
	}

	if in.Type == Axis && p.Kind == BindPotAxis && b.Kind != BindPotAxis {
		reg.unbindPot(joy, in.Index)
	}

	*p = b

	if b.Kind == BindPotAxis && in.Type == Axis {
		reg.bindPot((int(b.Port)<<1)|b.Pot, joy, in.Index)
	}

	return nil
}

// ResetBindings restores the default bindings for every joystick and
// removes all pot mappings.
func (reg *Registry) ResetBindings() {
	reg.crit.Lock()
	defer reg.crit.Unlock()

	threshold, _ := reg.norm.Thresholds()
	for i, j := range reg.joysticks {
		j.setDefaults(i, reg.joysticksForMenu, threshold)
	}
	reg.pots = [numPotMappings]potMapping{}
	reg.swapped = false
}

// SwapPorts exchanges the emulated ports of every joystick binding.
func (reg *Registry) SwapPorts() {
	reg.crit.Lock()
	defer reg.crit.Unlock()

	for _, j := range reg.joysticks {
		for t := range j.bindings {
			for i := range j.bindings[t] {
				if j.bindings[t][i].Kind == BindJoystick {
					j.bindings[t][i].Port ^= 1
				}
			}
		}
	}
	reg.swapped = !reg.swapped
}

// Swapped returns true if SwapPorts() has been called an odd number of times.
func (reg *Registry) Swapped() bool {
	reg.crit.Lock()
	defer reg.crit.Unlock()
	return reg.swapped
}

// SetMenuMode sets whether joystick input is used for menu navigation
// rather than sent to the emulated ports.
//
// Pin press counts are cleared and any pins that were held are released.
// Releases that happen while in menu mode never reach the ports so nothing
// held on entry to the menu can stay held after it.
func (reg *Registry) SetMenuMode(set bool) {
	var out outputs

	reg.crit.Lock()
	reg.menuMode = set
	reg.autorepeat.Release()
	reg.clearPresses(&out)
	handle := reg.handle
	reg.crit.Unlock()

	if err := reg.send(handle, out); err != nil {
		logger.Log(logger.Allow, "joystick", err)
	}
}

// MenuMode returns the value set by SetMenuMode().
func (reg *Registry) MenuMode() bool {
	reg.crit.Lock()
	defer reg.crit.Unlock()
	return reg.menuMode
}

// Autorepeat should be called once per pass of the menu loop. It returns the
// menu action to repeat, if any.
func (reg *Registry) Autorepeat() userinput.MenuAction {
	reg.crit.Lock()
	defer reg.crit.Unlock()
	return reg.autorepeat.Tick()
}
