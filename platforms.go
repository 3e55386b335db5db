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

package main

import (
	"context"
	"os"

	"github.com/jetsetilly/inputrelay/gui/glfwinput"
	"github.com/jetsetilly/inputrelay/gui/sdlinput"
	"github.com/jetsetilly/inputrelay/hotkeys"
	"github.com/jetsetilly/inputrelay/joysticks"
	"github.com/jetsetilly/inputrelay/logger"
	"github.com/jetsetilly/inputrelay/polling"
	"github.com/jetsetilly/inputrelay/terminal/ansi"
	"github.com/jetsetilly/inputrelay/terminal/plainterm"
	"github.com/jetsetilly/inputrelay/terminal/tcellterm"
	"github.com/jetsetilly/inputrelay/userinput"
)

// platform is an input source. Service() is called from the main thread.
type platform interface {
	Service(ctx context.Context)
	joysticks.Enumerator
	polling.Surface
}

// creator makes a platform in the main thread. The returned function
// destroys the platform and is also called from the main thread.
type creator func() (platform, func(), error)

// platformCreator returns the creator and hotkey translator for the mode.
func platformCreator(mode string, q *userinput.Queue) (creator, hotkeys.Translator) {
	switch mode {
	case "GLFW":
		return func() (platform, func(), error) {
			plt, err := glfwinput.NewPlatform(q)
			if err != nil {
				return nil, nil, err
			}
			return plt, plt.Destroy, nil
		}, glfwinput.Translator{}

	case "TERM":
		return func() (platform, func(), error) {
			t, err := plainterm.NewTerminal(os.Stdin, os.Stdout)
			if err != nil {
				return nil, nil, err
			}
			t.CBreakMode()
			plt := &plainPlatform{
				term:    t,
				queue:   q,
				Surface: plainterm.NewSurface(t.Output()),
			}
			_, _ = os.Stdout.WriteString(ansi.HideCursor)
			return plt, func() {
				_, _ = os.Stdout.WriteString(ansi.ShowCursor + ansi.ClearScreen)
				t.CleanUp()
			}, nil
		}, nil

	case "TCELL":
		return func() (platform, func(), error) {
			t, err := tcellterm.NewTerminal()
			if err != nil {
				return nil, nil, err
			}
			return &tcellPlatform{Terminal: t, queue: q}, t.Shutdown, nil
		}, tcellterm.Translator{}
	}

	return func() (platform, func(), error) {
		plt, err := sdlinput.NewPlatform(q)
		if err != nil {
			return nil, nil, err
		}
		return plt, func() {
			if err := plt.Destroy(); err != nil {
				logger.Log(logger.Allow, "sdl", err)
			}
		}, nil
	}, sdlinput.Translator{}
}

// terminals have no joysticks of their own
type noJoysticks struct{}

func (noJoysticks) Devices() ([]joysticks.Device, error) {
	return nil, nil
}

type plainPlatform struct {
	noJoysticks
	*plainterm.Surface
	term  *plainterm.Terminal
	queue *userinput.Queue
}

func (plt *plainPlatform) Service(ctx context.Context) {
	if err := plt.term.Service(ctx, plt.queue); err != nil {
		logger.Log(logger.Allow, "term", err)
	}
	<-ctx.Done()
}

type tcellPlatform struct {
	noJoysticks
	*tcellterm.Terminal
	queue *userinput.Queue
}

func (plt *tcellPlatform) Service(ctx context.Context) {
	plt.Terminal.Service(ctx, plt.queue)
}
