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
	"testing"

	"github.com/jetsetilly/inputrelay/curated"
	"github.com/jetsetilly/inputrelay/joysticks"
	"github.com/jetsetilly/inputrelay/test"
	"github.com/jetsetilly/inputrelay/userinput"
	"github.com/tidwall/gjson"
)

func TestHello(t *testing.T) {
	dev, err := parseHello(gjson.Parse(`{"type":"hello","name":"phone","axes":2,"buttons":4,"hats":1}`))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dev.Name, "phone")
	test.ExpectEquality(t, dev.Axes, 2)
	test.ExpectEquality(t, dev.Buttons, 4)
	test.ExpectEquality(t, dev.Hats, 1)
	test.ExpectEquality(t, len(dev.Rest), 2)

	dev, err = parseHello(gjson.Parse(`{"type":"hello","buttons":1}`))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dev.Name, "remote gamepad")

	_, err = parseHello(gjson.Parse(`{"type":"hello"}`))
	test.ExpectFailure(t, err)
	_, err = parseHello(gjson.Parse(`{"type":"hello","axes":100}`))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, MessageError))
}

func TestInput(t *testing.T) {
	dev := joysticks.Device{Instance: FirstDevice, Axes: 2, Buttons: 2, Hats: 1}

	ev, err := parseInput(dev, gjson.Parse(`{"type":"axis","index":1,"value":-40000}`))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ev.Kind, userinput.KindAxisMotion)
	test.ExpectEquality(t, ev.Device, FirstDevice)
	test.ExpectEquality(t, ev.Index, 1)
	test.ExpectEquality(t, ev.Value, int32(-32768))

	ev, err = parseInput(dev, gjson.Parse(`{"type":"button","index":0,"down":true}`))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ev.Kind, userinput.KindButtonDown)

	ev, err = parseInput(dev, gjson.Parse(`{"type":"button","index":0}`))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ev.Kind, userinput.KindButtonUp)

	ev, err = parseInput(dev, gjson.Parse(`{"type":"hat","index":0,"value":9}`))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ev.Kind, userinput.KindHatMotion)
	test.ExpectEquality(t, ev.Value, int32(userinput.HatUp|userinput.HatLeft))

	ev, err = parseInput(dev, gjson.Parse(`{"type":"cancel"}`))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ev.Kind, userinput.KindCancel)

	_, err = parseInput(dev, gjson.Parse(`{"type":"axis","index":2,"value":0}`))
	test.ExpectFailure(t, err)
	_, err = parseInput(dev, gjson.Parse(`{"type":"axis","value":0}`))
	test.ExpectFailure(t, err)
	_, err = parseInput(dev, gjson.Parse(`{"type":"hat","index":0,"value":16}`))
	test.ExpectFailure(t, err)
	_, err = parseInput(dev, gjson.Parse(`{"type":"wave"}`))
	test.ExpectFailure(t, err)
}

func TestValidMessage(t *testing.T) {
	_, err := validMessage([]byte(`{"type":"axis"`))
	test.ExpectFailure(t, err)
	_, err = validMessage([]byte(`[1,2]`))
	test.ExpectFailure(t, err)
	_, err = validMessage([]byte(`{"index":0}`))
	test.ExpectFailure(t, err)
	_, err = validMessage([]byte(`{"type":"axis"}`))
	test.ExpectSuccess(t, err)
}

func TestReplies(t *testing.T) {
	test.ExpectEquality(t, string(welcomeReply(FirstDevice)), `{"type":"welcome","device":65536}`)
	r := gjson.ParseBytes(errorReply(curated.Errorf(MessageError, "bad")))
	test.ExpectEquality(t, r.Get("type").String(), "error")
	test.ExpectEquality(t, r.Get("detail").String(), "webinput: bad")
}
