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
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/inputrelay/curated"
	"github.com/jetsetilly/inputrelay/logger"
	"github.com/jetsetilly/inputrelay/userinput"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// the version of the joymap format written by SaveJoymap()
const joymapVersion = 1

// Sentinal errors.
const (
	JoymapError = "joymap: %v"
)

// names of input types in the joymap
var inputTypeKeys = [numInputTypes]string{
	Axis:   "axis",
	Button: "button",
	Hat:    "hat",
}

type joymapInput struct {
	Type   string `json:"type"`
	Index  int    `json:"index"`
	Sub    int    `json:"sub"`
	Kind   string `json:"kind"`
	Port   int    `json:"port,omitempty"`
	Pins   uint16 `json:"pins,omitempty"`
	Pot    int    `json:"pot,omitempty"`
	Row    int    `json:"row,omitempty"`
	Col    int    `json:"col,omitempty"`
	Hotkey int    `json:"hotkey,omitempty"`
}

type joymapJoystick struct {
	Name   string        `json:"name"`
	Inputs []joymapInput `json:"inputs"`
}

type joymapPot struct {
	Port     int `json:"port"`
	Pot      int `json:"pot"`
	Joystick int `json:"joystick"`
	Axis     int `json:"axis"`
}

// SaveJoymap writes the bindings of every joystick as JSON. Unbound inputs
// are not written.
func (reg *Registry) SaveJoymap(w io.Writer) error {
	reg.crit.Lock()
	defer reg.crit.Unlock()

	s, err := sjson.Set("", "version", joymapVersion)
	if err != nil {
		return curated.Errorf(JoymapError, err)
	}

	s, err = sjson.Set(s, "joysticks", []joymapJoystick{})
	if err != nil {
		return curated.Errorf(JoymapError, err)
	}

	for _, j := range reg.joysticks {
		e := joymapJoystick{
			Name:   j.Name,
			Inputs: []joymapInput{},
		}

		for t := InputType(0); t < numInputTypes; t++ {
			for slot, b := range j.bindings[t] {
				if b.Kind == Unbound {
					continue
				}
				in := inputFromSlot(t, slot)
				e.Inputs = append(e.Inputs, joymapInput{
					Type:   inputTypeKeys[t],
					Index:  in.Index,
					Sub:    in.Sub,
					Kind:   b.Kind.String(),
					Port:   int(b.Port),
					Pins:   b.Pins,
					Pot:    b.Pot,
					Row:    b.Key.Row,
					Col:    b.Key.Col,
					Hotkey: b.Hotkey,
				})
			}
		}

		s, err = sjson.Set(s, "joysticks.-1", e)
		if err != nil {
			return curated.Errorf(JoymapError, err)
		}
	}

	s, err = sjson.Set(s, "pots", []joymapPot{})
	if err != nil {
		return curated.Errorf(JoymapError, err)
	}
	for i, p := range reg.pots {
		if !p.valid {
			continue
		}
		s, err = sjson.Set(s, "pots.-1", joymapPot{Port: i >> 1, Pot: i & 1, Joystick: p.joy, Axis: p.axis})
		if err != nil {
			return curated.Errorf(JoymapError, err)
		}
	}

	if _, err := io.WriteString(w, s); err != nil {
		return curated.Errorf(JoymapError, err)
	}

	return nil
}

// LoadJoymap reads bindings written by SaveJoymap(). Joysticks are matched
// by logical index. Every input of a joystick listed in the joymap is
// unbound before the bindings are applied. Joysticks in the joymap that are
// not attached are ignored.
//
// The joymap is remembered and applied again if a later Rescan() finds
// joysticks after finding none.
func (reg *Registry) LoadJoymap(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return curated.Errorf(JoymapError, err)
	}

	reg.crit.Lock()
	defer reg.crit.Unlock()

	if err := reg.applyJoymap(string(data)); err != nil {
		return err
	}
	reg.joymap = string(data)

	return nil
}

// must be called with the registry locked.
func (reg *Registry) applyJoymap(data string) error {
	if !gjson.Valid(data) {
		return curated.Errorf(JoymapError, "not valid JSON")
	}

	m := gjson.Parse(data)
	if v := m.Get("version").Int(); v != joymapVersion {
		return curated.Errorf(JoymapError, fmt.Sprintf("unsupported version (%d)", v))
	}

	var ferr error

	joy := -1
	m.Get("joysticks").ForEach(func(_, value gjson.Result) bool {
		joy++
		if joy >= len(reg.joysticks) {
			logger.Logf(logger.Allow, "joymap", "J%d (%s) is not attached", joy, value.Get("name").String())
			return true
		}

		j := reg.joysticks[joy]
		if name := value.Get("name").String(); name != j.Name {
			logger.Logf(logger.Allow, "joymap", "J%d was %s but is now %s", joy, name, j.Name)
		}

		for t := range j.bindings {
			clear(j.bindings[t])
		}

		value.Get("inputs").ForEach(func(_, e gjson.Result) bool {
			in, b, err := parseJoymapInput(e)
			if err != nil {
				ferr = curated.Errorf(JoymapError, err)
				return false
			}
			if err := reg.setBinding(joy, in, b); err != nil {
				logger.Logf(logger.Allow, "joymap", "J%d: %v", joy, err)
			}
			return true
		})

		return ferr == nil
	})

	if ferr != nil {
		return ferr
	}

	reg.pots = [numPotMappings]potMapping{}
	m.Get("pots").ForEach(func(_, p gjson.Result) bool {
		idx := int(p.Get("port").Int()<<1) | int(p.Get("pot").Int())
		if idx < 0 || idx >= numPotMappings {
			return true
		}
		reg.pots[idx] = potMapping{
			joy:   int(p.Get("joystick").Int()),
			axis:  int(p.Get("axis").Int()),
			valid: true,
		}
		return true
	})

	return nil
}

func parseJoymapInput(e gjson.Result) (Input, Binding, error) {
	var in Input
	var b Binding

	t := e.Get("type").String()
	found := false
	for i, k := range inputTypeKeys {
		if k == t {
			in.Type = InputType(i)
			found = true
			break
		}
	}
	if !found {
		return in, b, fmt.Errorf("unknown input type (%s)", t)
	}

	in.Index = int(e.Get("index").Int())
	in.Sub = int(e.Get("sub").Int())

	kind, ok := bindingKindFromString(e.Get("kind").String())
	if !ok {
		return in, b, fmt.Errorf("unknown binding (%s)", e.Get("kind").String())
	}

	b.Kind = kind
	b.Port = userinput.Port(e.Get("port").Int())
	b.Pins = uint16(e.Get("pins").Uint())
	b.Pot = int(e.Get("pot").Int())
	b.Key = userinput.KeyMatrix{Row: int(e.Get("row").Int()), Col: int(e.Get("col").Int())}
	b.Hotkey = int(e.Get("hotkey").Int())

	return in, b, nil
}

// SaveJoymapFile is a convenience function for SaveJoymap().
func (reg *Registry) SaveJoymapFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return curated.Errorf(JoymapError, err)
	}
	defer f.Close()
	return reg.SaveJoymap(f)
}

// LoadJoymapFile is a convenience function for LoadJoymap().
func (reg *Registry) LoadJoymapFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return curated.Errorf(JoymapError, err)
	}
	defer f.Close()
	return reg.LoadJoymap(f)
}
