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

package glfwinput

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/jetsetilly/inputrelay/joysticks"
	"github.com/jetsetilly/inputrelay/userinput"
	"github.com/jetsetilly/inputrelay/version"
)

const windowTitle = version.ApplicationName

// time in seconds to wait for a GLFW event before sampling the joysticks
const waitPeriod = 1.0 / 60.0

// Platform is the GLFW input source.
type Platform struct {
	queue  *userinput.Queue
	window *glfw.Window

	// functions that need to be performed in the main thread are queued for
	// serving by the Service() function
	service chan func()

	// previous state of each present joystick. only accessed from the main
	// thread
	samples map[glfw.Joystick]*sample

	// lines printed with the polling.Surface interface
	lines []string
}

// NewPlatform initialises GLFW and opens the input window.
func NewPlatform(queue *userinput.Queue) (*Platform, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(480, 120, windowTitle, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw: %w", err)
	}

	plt := &Platform{
		queue:   queue,
		window:  window,
		service: make(chan func(), 1),
		samples: make(map[glfw.Joystick]*sample),
	}

	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		if ev, ok := KeyEvent(key, action, mods); ok {
			plt.queue.Push(ev)
		}
	})

	window.SetCursorPosCallback(plt.cursor())

	glfw.SetJoystickCallback(func(joy glfw.Joystick, event glfw.PeripheralEvent) {
		switch event {
		case glfw.Connected:
			plt.queue.Push(userinput.Event{Kind: userinput.KindDeviceAdded, Device: userinput.DeviceID(joy)})
		case glfw.Disconnected:
			delete(plt.samples, joy)
			plt.queue.Push(userinput.Event{Kind: userinput.KindDeviceRemoved, Device: userinput.DeviceID(joy)})
		}
	})

	return plt, nil
}

// cursor returns a cursor position callback that sends relative mouse
// motion events.
func (plt *Platform) cursor() glfw.CursorPosCallback {
	var px, py float64
	first := true
	return func(_ *glfw.Window, x float64, y float64) {
		if !first {
			plt.queue.Push(userinput.Event{
				Kind:   userinput.KindMouseMotion,
				Device: userinput.NoDevice,
				Value:  int32(x - px),
				ValueY: int32(y - py),
			})
		}
		first = false
		px, py = x, y
	}
}

// Destroy closes the window and terminates GLFW.
func (plt *Platform) Destroy() {
	plt.window.Destroy()
	glfw.Terminate()
}

// Service waits for GLFW events and samples the joysticks until the context
// is done. Closing the window pushes a quit event but does not end the
// service.
func (plt *Platform) Service(ctx context.Context) {
	for {
		select {
		case f := <-plt.service:
			f()
		case <-ctx.Done():
			return
		default:
		}

		glfw.WaitEventsTimeout(waitPeriod)

		if plt.window.ShouldClose() {
			plt.queue.Push(userinput.Event{Kind: userinput.KindQuit, Device: userinput.NoDevice})
			plt.window.SetShouldClose(false)
		}

		for joy := glfw.Joystick1; joy <= glfw.JoystickLast; joy++ {
			if !joy.Present() {
				continue
			}
			s, ok := plt.samples[joy]
			if !ok {
				s = &sample{}
				plt.samples[joy] = s
			}
			for _, ev := range s.diff(userinput.DeviceID(joy), joy.GetAxes(), joy.GetButtons(), joy.GetHats()) {
				plt.queue.Push(ev)
			}
		}
	}
}

// run f in the main thread and wait for it to complete.
func (plt *Platform) run(f func()) {
	done := make(chan bool)
	plt.service <- func() {
		f()
		done <- true
	}
	glfw.PostEmptyEvent()
	<-done
}

// Devices implements the joysticks.Enumerator interface.
func (plt *Platform) Devices() ([]joysticks.Device, error) {
	var devs []joysticks.Device

	plt.run(func() {
		for joy := glfw.Joystick1; joy <= glfw.JoystickLast; joy++ {
			if !joy.Present() {
				continue
			}

			axes := joy.GetAxes()
			d := joysticks.Device{
				Instance: userinput.DeviceID(joy),
				Name:     strings.TrimSpace(joy.GetName()),
				Axes:     len(axes),
				Buttons:  len(joy.GetButtons()),
				Hats:     len(joy.GetHats()),
				Rest:     make([]int16, len(axes)),
			}
			for i, a := range axes {
				d.Rest[i] = AxisValue(a)
			}

			devs = append(devs, d)
		}
	})

	return devs, nil
}

// Clear implements the polling.Surface interface. Text printed on the
// surface is shown in the window title.
func (plt *Platform) Clear() {
	plt.lines = plt.lines[:0]
}

// Print implements the polling.Surface interface. The column is ignored.
func (plt *Platform) Print(row int, col int, s string) {
	for len(plt.lines) <= row {
		plt.lines = append(plt.lines, "")
	}
	plt.lines[row] = s
}

// Refresh implements the polling.Surface interface.
func (plt *Platform) Refresh() {
	var l []string
	for _, s := range plt.lines {
		if s != "" {
			l = append(l, s)
		}
	}
	title := fmt.Sprintf("%s: %s", windowTitle, strings.Join(l, " | "))
	plt.run(func() {
		plt.window.SetTitle(title)
	})
}
