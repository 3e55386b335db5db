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

package webinput

import (
	"github.com/jetsetilly/inputrelay/curated"
	"github.com/jetsetilly/inputrelay/joysticks"
	"github.com/jetsetilly/inputrelay/userinput"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// MessageError is the pattern used for all errors caused by a malformed
// message.
const MessageError = "webinput: %v"

// limits on the device described by a hello message
const (
	maxAxes    = 8
	maxButtons = 32
	maxHats    = 4
)

// parseHello returns the device described by a hello message. The Instance
// field is not set.
func parseHello(msg gjson.Result) (joysticks.Device, error) {
	d := joysticks.Device{
		Name:    msg.Get("name").String(),
		Axes:    int(msg.Get("axes").Int()),
		Buttons: int(msg.Get("buttons").Int()),
		Hats:    int(msg.Get("hats").Int()),
	}

	if d.Name == "" {
		d.Name = "remote gamepad"
	}
	if d.Axes < 0 || d.Axes > maxAxes {
		return d, curated.Errorf(MessageError, "too many axes")
	}
	if d.Buttons < 0 || d.Buttons > maxButtons {
		return d, curated.Errorf(MessageError, "too many buttons")
	}
	if d.Hats < 0 || d.Hats > maxHats {
		return d, curated.Errorf(MessageError, "too many hats")
	}
	if d.Axes+d.Buttons+d.Hats == 0 {
		return d, curated.Errorf(MessageError, "device has no inputs")
	}

	// remote axes are assumed to rest at the centre
	d.Rest = make([]int16, d.Axes)

	return d, nil
}

// parseInput decodes an input message from the device into an event. The
// device must have been described by a hello message.
func parseInput(dev joysticks.Device, msg gjson.Result) (userinput.Event, error) {
	ev := userinput.Event{Device: dev.Instance}

	idx := msg.Get("index")
	ev.Index = int(idx.Int())

	typ := msg.Get("type").String()
	switch typ {
	case "axis":
		if !idx.Exists() || ev.Index < 0 || ev.Index >= dev.Axes {
			return ev, curated.Errorf(MessageError, "axis index out of range")
		}
		v := msg.Get("value").Int()
		v = max(-32768, min(32767, v))
		ev.Kind = userinput.KindAxisMotion
		ev.Value = int32(v)

	case "button":
		if !idx.Exists() || ev.Index < 0 || ev.Index >= dev.Buttons {
			return ev, curated.Errorf(MessageError, "button index out of range")
		}
		if msg.Get("down").Bool() {
			ev.Kind = userinput.KindButtonDown
		} else {
			ev.Kind = userinput.KindButtonUp
		}

	case "hat":
		if !idx.Exists() || ev.Index < 0 || ev.Index >= dev.Hats {
			return ev, curated.Errorf(MessageError, "hat index out of range")
		}
		v := msg.Get("value").Int()
		if v < 0 || v > 0x0f {
			return ev, curated.Errorf(MessageError, "invalid hat value")
		}
		ev.Kind = userinput.KindHatMotion
		ev.Value = int32(v)

	case "cancel":
		return userinput.Event{Kind: userinput.KindCancel, Device: userinput.NoDevice}, nil

	default:
		return ev, curated.Errorf(MessageError, "unknown message type: "+typ)
	}

	return ev, nil
}

// validMessage checks that the message is a JSON object with a type field.
func validMessage(b []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(b) {
		return gjson.Result{}, curated.Errorf(MessageError, "invalid JSON")
	}
	msg := gjson.ParseBytes(b)
	if !msg.IsObject() {
		return gjson.Result{}, curated.Errorf(MessageError, "message is not an object")
	}
	if !msg.Get("type").Exists() {
		return gjson.Result{}, curated.Errorf(MessageError, "message has no type")
	}
	return msg, nil
}

func welcomeReply(id userinput.DeviceID) []byte {
	b, _ := sjson.SetBytes([]byte(`{"type":"welcome"}`), "device", int(id))
	return b
}

func errorReply(err error) []byte {
	b, _ := sjson.SetBytes([]byte(`{"type":"error"}`), "detail", err.Error())
	return b
}
