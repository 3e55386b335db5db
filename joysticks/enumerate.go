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

import "github.com/jetsetilly/inputrelay/curated"

// Enumerator is implemented by platform layers that can list the attached
// joysticks.
type Enumerator interface {
	Devices() ([]Device, error)
}

// Enumerators combines more than one Enumerator. Devices are listed in the
// order of the Enumerators.
type Enumerators []Enumerator

// Devices implements the Enumerator interface.
func (e Enumerators) Devices() ([]Device, error) {
	var devs []Device
	for _, en := range e {
		d, err := en.Devices()
		if err != nil {
			return nil, curated.Errorf("joysticks: %v", err)
		}
		devs = append(devs, d...)
	}
	return devs, nil
}

// Static is an Enumerator for a fixed list of devices. Useful for platforms
// where joysticks are declared rather than discovered.
type Static []Device

// Devices implements the Enumerator interface.
func (s Static) Devices() ([]Device, error) {
	d := make([]Device, len(s))
	copy(d, s)
	return d, nil
}
