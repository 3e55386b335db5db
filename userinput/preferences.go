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

package userinput

import (
	"strings"

	"github.com/jetsetilly/inputrelay/curated"
	"github.com/jetsetilly/inputrelay/prefs"
	"github.com/jetsetilly/inputrelay/resources"
)

// the name of the preferences file in the resources directory.
const prefsFile = "preferences"

// InvalidPreference is the sentinal error pattern for preference values that
// are out of range.
const InvalidPreference = "input preferences: %s must be between %d and %d"

// Preferences for the input system.
type Preferences struct {
	dsk *prefs.Disk

	// axis threshold and fuzz. see ClassifyAxis()
	Threshold prefs.Int
	Fuzz      prefs.Int

	// whether joysticks can be used to navigate menus
	JoysticksForMenu prefs.Bool

	// initial capacity of the event queue
	QueueCapacity prefs.Int

	// capture timeout in seconds. zero means no timeout
	CaptureTimeout prefs.Int

	// name of the joystick map file in the resources directory
	JoymapFile prefs.String
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the preferences file in the
// resources directory.
func NewPreferences() (*Preferences, error) {
	pth, err := resources.JoinPath(prefsFile)
	if err != nil {
		return nil, curated.Errorf("input preferences: %v", err)
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is like NewPreferences() but uses the named file.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}

	rangeCheck := func(name string, min, max int) func(prefs.Value) error {
		return func(v prefs.Value) error {
			if n := v.(int); n < min || n > max {
				return curated.Errorf(InvalidPreference, name, min, max)
			}
			return nil
		}
	}
	p.Threshold.SetHookPre(rangeCheck("threshold", 0, 32767))
	p.Fuzz.SetHookPre(rangeCheck("fuzz", 0, 32767))
	p.QueueCapacity.SetHookPre(rangeCheck("queue capacity", 1, 4096))
	p.CaptureTimeout.SetHookPre(rangeCheck("capture timeout", 0, 600))
	p.JoymapFile.SetHookPre(func(v prefs.Value) error {
		if strings.ContainsAny(v.(string), "/\\") {
			return curated.Errorf("input preferences: joymap file must not contain a path")
		}
		return nil
	})

	p.SetDefaults()

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, curated.Errorf("input preferences: %v", err)
	}

	for _, e := range []struct {
		key string
		p   interface {
			String() string
			Set(prefs.Value) error
			Get() prefs.Value
			Reset() error
		}
	}{
		{"input.threshold", &p.Threshold},
		{"input.fuzz", &p.Fuzz},
		{"input.joysticksformenu", &p.JoysticksForMenu},
		{"input.queuecapacity", &p.QueueCapacity},
		{"input.capturetimeout", &p.CaptureTimeout},
		{"input.joymapfile", &p.JoymapFile},
	} {
		if err := p.dsk.Add(e.key, e.p); err != nil {
			return nil, curated.Errorf("input preferences: %v", err)
		}
	}

	if err := p.dsk.Load(true); err != nil {
		return nil, curated.Errorf("input preferences: %v", err)
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.Threshold.Set(10000)
	p.Fuzz.Set(1000)
	p.JoysticksForMenu.Set(true)
	p.QueueCapacity.Set(64)
	p.CaptureTimeout.Set(5)
	p.JoymapFile.Set("joymap.json")
}

// Load current input preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current input preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Attach the threshold and fuzz preferences to a Normaliser. The Normaliser
// is updated immediately and whenever either preference changes.
func (p *Preferences) Attach(n *Normaliser) {
	update := func(_ prefs.Value) error {
		n.SetThresholds(uint16(p.Threshold.Get().(int)), uint16(p.Fuzz.Get().(int)))
		return nil
	}
	p.Threshold.SetHookPost(update)
	p.Fuzz.SetHookPost(update)
	update(nil)
}
