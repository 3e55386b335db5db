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
	"fmt"
	"sync"
)

// AxisState is the discrete direction of an analogue axis.
type AxisState uint8

// List of valid AxisState values.
const (
	AxisMiddle AxisState = iota
	AxisPositive
	AxisNegative
)

func (s AxisState) String() string {
	switch s {
	case AxisMiddle:
		return "middle"
	case AxisPositive:
		return "positive"
	case AxisNegative:
		return "negative"
	}
	return fmt.Sprintf("unknown axis state (%d)", uint8(s))
}

// ClassifyAxis converts a raw axis value to an AxisState.
//
// The threshold is widened by fuzz when leaving the middle and narrowed by
// fuzz when returning to it. A value that sits exactly on the effective
// threshold keeps the previous state.
func ClassifyAxis(raw int16, previous AxisState, threshold, fuzz uint16) AxisState {
	thres := int32(threshold)
	if previous == AxisMiddle {
		thres += int32(fuzz)
	} else {
		thres -= int32(fuzz)
	}

	v := int32(raw)

	switch {
	case v < -thres:
		return AxisNegative
	case v > thres:
		return AxisPositive
	case v < thres && v > -thres:
		return AxisMiddle
	}

	return previous
}

// HatDirection is a bitmask of hat directions. The bit values are the same
// as those used by SDL and GLFW.
type HatDirection uint8

// List of HatDirection bits.
const (
	HatCentred HatDirection = 0
	HatUp      HatDirection = 0x01
	HatRight   HatDirection = 0x02
	HatDown    HatDirection = 0x04
	HatLeft    HatDirection = 0x08

	hatCardinal = HatUp | HatRight | HatDown | HatLeft
)

func (h HatDirection) String() string {
	switch h {
	case HatCentred:
		return "centred"
	case HatUp:
		return "up"
	case HatRight:
		return "right"
	case HatDown:
		return "down"
	case HatLeft:
		return "left"
	}
	return fmt.Sprintf("hat %#02x", uint8(h))
}

// ClassifyHat returns the single cardinal direction that is pressed in raw
// but not in previous. Diagonals (two newly pressed directions) and releases
// return HatCentred.
func ClassifyHat(raw HatDirection, previous HatDirection) HatDirection {
	b := (raw ^ previous) & raw & hatCardinal
	switch b {
	case HatUp, HatRight, HatDown, HatLeft:
		return b
	}
	return HatCentred
}

type inputID struct {
	dev   DeviceID
	index int
}

// Normaliser keeps the persistent axis and hat state for every device and
// applies the threshold and fuzz settings. It is safe to use from more than
// one goroutine.
type Normaliser struct {
	crit sync.Mutex

	threshold uint16
	fuzz      uint16

	axes map[inputID]AxisState
	hats map[inputID]HatDirection
}

// NewNormaliser is the preferred method of initialisation for the Normaliser
// type.
func NewNormaliser(threshold, fuzz uint16) *Normaliser {
	return &Normaliser{
		threshold: threshold,
		fuzz:      fuzz,
		axes:      make(map[inputID]AxisState),
		hats:      make(map[inputID]HatDirection),
	}
}

// SetThresholds changes the threshold and fuzz values used by Axis().
func (n *Normaliser) SetThresholds(threshold, fuzz uint16) {
	n.crit.Lock()
	defer n.crit.Unlock()
	n.threshold = threshold
	n.fuzz = fuzz
}

// Thresholds returns the current threshold and fuzz values.
func (n *Normaliser) Thresholds() (threshold uint16, fuzz uint16) {
	n.crit.Lock()
	defer n.crit.Unlock()
	return n.threshold, n.fuzz
}

// Classify applies ClassifyAxis() with the current threshold and fuzz but
// does not change the stored state.
func (n *Normaliser) Classify(raw int16, previous AxisState) AxisState {
	n.crit.Lock()
	defer n.crit.Unlock()
	return ClassifyAxis(raw, previous, n.threshold, n.fuzz)
}

// Axis classifies the raw value against the stored state for the device axis
// and stores the result. Both the new and the previous state are returned.
// The axis has moved if cur != prev.
func (n *Normaliser) Axis(dev DeviceID, axis int, raw int16) (cur AxisState, prev AxisState) {
	n.crit.Lock()
	defer n.crit.Unlock()

	id := inputID{dev: dev, index: axis}
	prev = n.axes[id]
	cur = ClassifyAxis(raw, prev, n.threshold, n.fuzz)
	n.axes[id] = cur

	return cur, prev
}

// Hat stores the raw hat value for the device hat and returns the newly
// pressed direction, if any, along with the previous raw value. The hat has
// changed if raw != prev.
func (n *Normaliser) Hat(dev DeviceID, hat int, raw HatDirection) (newly HatDirection, prev HatDirection) {
	n.crit.Lock()
	defer n.crit.Unlock()

	id := inputID{dev: dev, index: hat}
	prev = n.hats[id]
	if raw == prev {
		return HatCentred, prev
	}
	n.hats[id] = raw

	return ClassifyHat(raw, prev), prev
}

// Forget removes the stored state for a device.
func (n *Normaliser) Forget(dev DeviceID) {
	n.crit.Lock()
	defer n.crit.Unlock()

	for id := range n.axes {
		if id.dev == dev {
			delete(n.axes, id)
		}
	}
	for id := range n.hats {
		if id.dev == dev {
			delete(n.hats, id)
		}
	}
}

// Reset removes the stored state for all devices.
func (n *Normaliser) Reset() {
	n.crit.Lock()
	defer n.crit.Unlock()
	clear(n.axes)
	clear(n.hats)
}
