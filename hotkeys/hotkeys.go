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

package hotkeys

import (
	"fmt"
	"sync"

	"github.com/jetsetilly/inputrelay/curated"
	"github.com/jetsetilly/inputrelay/logger"
	"github.com/jetsetilly/inputrelay/userinput"
)

// Sentinal errors.
const (
	InvalidAction = "hotkeys: invalid action (%d)"
)

// MenuItem is a reference to a menu item that triggers the action. The
// hotkeys package never looks inside the value.
type MenuItem any

// Mapping is the key chord bound to an action.
type Mapping struct {
	// the action ID. the same as the index of the mapping in the Map
	Action int

	Keysym  userinput.Keysym
	Modmask userinput.Modmask

	ArchKeysym  uint32
	ArchModmask uint32

	// primary and secondary menu items
	Items [2]MenuItem
}

// IsSet returns true if a chord is bound to the action. The modifier mask is
// ignored when the keysym is zero.
func (m Mapping) IsSet() bool {
	return m.Keysym != userinput.KeyNone
}

func (m Mapping) String() string {
	if !m.IsSet() {
		return fmt.Sprintf("%d: unset", m.Action)
	}
	return fmt.Sprintf("%d: %s", m.Action, userinput.ChordString(m.Keysym, m.Modmask))
}

func (m *Mapping) clear() {
	m.Keysym = userinput.KeyNone
	m.Modmask = 0
	m.ArchKeysym = 0
	m.ArchModmask = 0
}

// Map of actions to key chords. It is safe to use from more than one
// goroutine.
type Map struct {
	crit  sync.RWMutex
	trans Translator
	slots []Mapping
}

// NewMap is the preferred method of initialisation for the Map type. The
// count argument is the number of action IDs, including the reserved ID
// zero. If trans is nil the NullTranslator is used.
func NewMap(count int, trans Translator) *Map {
	if trans == nil {
		trans = NullTranslator{}
	}
	if count < 1 {
		count = 1
	}
	m := &Map{
		trans: trans,
		slots: make([]Mapping, count),
	}
	m.InitAll()
	return m
}

// InitAll resets every action to unset. Menu item references are also
// removed.
func (m *Map) InitAll() {
	m.crit.Lock()
	defer m.crit.Unlock()
	for i := range m.slots {
		m.slots[i] = Mapping{Action: i}
	}
}

// Len returns the number of action IDs, including the reserved ID zero.
func (m *Map) Len() int {
	return len(m.slots)
}

func (m *Map) valid(id int) bool {
	if id <= 0 || id >= len(m.slots) {
		logger.Logf(logger.Allow, "hotkeys", "invalid action (%d)", id)
		return false
	}
	return true
}

// Set the chord for an action. Menu items that are nil leave the existing
// reference unchanged. If the chord is owned by another action then that
// action is unset first.
//
// Returns a copy of the updated mapping.
func (m *Map) Set(id int, key userinput.Keysym, mod userinput.Modmask, archKey uint32, archMod uint32, primary MenuItem, secondary MenuItem) (Mapping, error) {
	if !m.valid(id) {
		return Mapping{}, curated.Errorf(InvalidAction, id)
	}

	m.crit.Lock()
	defer m.crit.Unlock()

	if key != userinput.KeyNone {
		for i := range m.slots {
			if i != id && m.matches(&m.slots[i], key, mod) {
				logger.Logf(logger.Allow, "hotkeys", "%s moved from action %d to action %d", userinput.ChordString(key, mod), i, id)
				m.slots[i].clear()
			}
		}
	}

	s := &m.slots[id]
	s.Keysym = key
	s.Modmask = mod
	s.ArchKeysym = archKey
	s.ArchModmask = archMod
	if primary != nil {
		s.Items[0] = primary
	}
	if secondary != nil {
		s.Items[1] = secondary
	}

	return *s, nil
}

// SetByArch sets the chord for an action from the platform's key chord. The
// logical chord is found with the Translator.
func (m *Map) SetByArch(id int, archKey uint32, archMod uint32, primary MenuItem, secondary MenuItem) (Mapping, error) {
	key, mod := m.trans.Logical(archKey, archMod)
	return m.Set(id, key, mod, archKey, archMod, primary, secondary)
}

// SetByLogical sets the chord for an action from the logical key chord. The
// platform's chord is found with the Translator.
func (m *Map) SetByLogical(id int, key userinput.Keysym, mod userinput.Modmask, primary MenuItem, secondary MenuItem) (Mapping, error) {
	archKey, archMod := m.trans.Arch(key, mod)
	return m.Set(id, key, mod, archKey, archMod, primary, secondary)
}

// Get the mapping for an action.
func (m *Map) Get(id int) (Mapping, bool) {
	if !m.valid(id) {
		return Mapping{}, false
	}
	m.crit.RLock()
	defer m.crit.RUnlock()
	return m.slots[id], true
}

func (m *Map) matches(s *Mapping, key userinput.Keysym, mod userinput.Modmask) bool {
	return key != userinput.KeyNone && s.Keysym == key && s.Modmask == mod
}

func (m *Map) find(key userinput.Keysym, mod userinput.Modmask) int {
	for i := range m.slots {
		if m.matches(&m.slots[i], key, mod) {
			return i
		}
	}
	return -1
}

// FindByLogical returns the mapping that owns the logical chord. A keysym of
// zero never matches.
func (m *Map) FindByLogical(key userinput.Keysym, mod userinput.Modmask) (Mapping, bool) {
	m.crit.RLock()
	defer m.crit.RUnlock()
	if i := m.find(key, mod); i >= 0 {
		return m.slots[i], true
	}
	return Mapping{}, false
}

// FindByArch returns the mapping that owns the platform's chord. The chord
// is translated to a logical chord before searching.
func (m *Map) FindByArch(archKey uint32, archMod uint32) (Mapping, bool) {
	key, mod := m.trans.Logical(archKey, archMod)
	return m.FindByLogical(key, mod)
}

// Unset the chord for an action. The menu item references are kept.
func (m *Map) Unset(id int) bool {
	if !m.valid(id) {
		return false
	}
	m.crit.Lock()
	defer m.crit.Unlock()
	m.slots[id].clear()
	return true
}

// UnsetByLogical unsets the action that owns the logical chord. Returns
// false if no action owns the chord.
func (m *Map) UnsetByLogical(key userinput.Keysym, mod userinput.Modmask) bool {
	m.crit.Lock()
	defer m.crit.Unlock()
	if i := m.find(key, mod); i >= 0 {
		m.slots[i].clear()
		return true
	}
	return false
}

// UnsetBySlot unsets the action of a mapping previously returned by the Map.
func (m *Map) UnsetBySlot(s Mapping) bool {
	return m.Unset(s.Action)
}

// Mappings returns a copy of every mapping that has a chord, in action ID
// order.
func (m *Map) Mappings() []Mapping {
	m.crit.RLock()
	defer m.crit.RUnlock()
	var l []Mapping
	for _, s := range m.slots {
		if s.IsSet() {
			l = append(l, s)
		}
	}
	return l
}
