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

package sdlinput

import (
	"context"
	"fmt"
	"strings"

	"github.com/jetsetilly/inputrelay/joysticks"
	"github.com/jetsetilly/inputrelay/logger"
	"github.com/jetsetilly/inputrelay/userinput"
	"github.com/jetsetilly/inputrelay/version"
	"github.com/veandco/go-sdl2/sdl"
)

const windowTitle = version.ApplicationName

// time in milliseconds to wait for an SDL event before checking the service
// channel
const waitPeriod = 10

// Platform is the SDL input source.
type Platform struct {
	queue  *userinput.Queue
	window *sdl.Window

	// functions that need to be performed in the main thread are queued for
	// serving by the Service() function
	service chan func()

	// opened joysticks indexed by instance ID. only accessed from the main
	// thread
	open map[userinput.DeviceID]*sdl.Joystick

	// lines printed with the polling.Surface interface
	lines []string
}

// NewPlatform initialises SDL and opens the input window. Must be called
// from the main thread.
func NewPlatform(queue *userinput.Queue) (*Platform, error) {
	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_JOYSTICK | sdl.INIT_EVENTS)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	plt := &Platform{
		queue:   queue,
		service: make(chan func(), 1),
		open:    make(map[userinput.DeviceID]*sdl.Joystick),
	}

	plt.window, err = sdl.CreateWindow(windowTitle,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		480, 120, sdl.WINDOW_SHOWN|sdl.WINDOW_INPUT_FOCUS)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	sdl.JoystickEventState(sdl.ENABLE)

	return plt, nil
}

// Destroy closes the window and any open joysticks and shuts down SDL. Must
// be called from the main thread.
func (plt *Platform) Destroy() error {
	for id, joy := range plt.open {
		joy.Close()
		delete(plt.open, id)
	}
	err := plt.window.Destroy()
	sdl.Quit()
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}

// Service translates SDL events and pushes them onto the queue until the
// context is done. Must be called from the main thread.
func (plt *Platform) Service(ctx context.Context) {
	for {
		select {
		case f := <-plt.service:
			f()
		case <-ctx.Done():
			return
		default:
		}

		for ev := sdl.WaitEventTimeout(waitPeriod); ev != nil; ev = sdl.PollEvent() {
			e, ok := Translate(ev)
			if !ok {
				continue
			}
			plt.queue.Push(e)
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
	<-done
}

// Devices implements the joysticks.Enumerator interface. Every attached
// joystick is opened. Joysticks that have been detached are closed.
func (plt *Platform) Devices() ([]joysticks.Device, error) {
	var devs []joysticks.Device
	var err error

	plt.run(func() {
		for id, joy := range plt.open {
			if !joy.Attached() {
				joy.Close()
				delete(plt.open, id)
			}
		}

		for i := range sdl.NumJoysticks() {
			id := userinput.DeviceID(sdl.JoystickGetDeviceInstanceID(i))

			joy, ok := plt.open[id]
			if !ok {
				joy = sdl.JoystickOpen(i)
				if joy == nil {
					err = fmt.Errorf("sdl: %w", sdl.GetError())
					logger.Logf(logger.Allow, "sdl", "cannot open joystick %d: %v", i, err)
					continue
				}
				plt.open[id] = joy
			}

			d := joysticks.Device{
				Instance: id,
				Name:     strings.TrimSpace(joy.Name()),
				Axes:     joy.NumAxes(),
				Buttons:  joy.NumButtons(),
				Hats:     joy.NumHats(),
			}
			d.Rest = make([]int16, d.Axes)
			for a := range d.Axes {
				d.Rest[a] = joy.Axis(a)
			}

			devs = append(devs, d)
		}
	})

	if len(devs) > 0 {
		return devs, nil
	}
	return devs, err
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
