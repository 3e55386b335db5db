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

package tcellterm

import (
	"context"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/jetsetilly/inputrelay/curated"
	"github.com/jetsetilly/inputrelay/logger"
	"github.com/jetsetilly/inputrelay/userinput"
)

// Terminal wraps a tcell screen. It is both an input source and an
// implementation of polling.Surface.
type Terminal struct {
	crit   sync.Mutex
	screen tcell.Screen
	style  tcell.Style
}

// NewTerminal initialises a tcell screen for the current terminal.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, curated.Errorf("tcellterm: %v", err)
	}
	return NewTerminalFromScreen(screen)
}

// NewTerminalFromScreen initialises the supplied screen. Useful with
// tcell.NewSimulationScreen().
func NewTerminalFromScreen(screen tcell.Screen) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, curated.Errorf("tcellterm: %v", err)
	}
	screen.EnableMouse()

	t := &Terminal{
		screen: screen,
		style:  tcell.StyleDefault.Foreground(tcell.ColorAqua),
	}
	t.screen.Clear()

	return t, nil
}

// Shutdown restores the terminal.
func (t *Terminal) Shutdown() {
	t.crit.Lock()
	defer t.crit.Unlock()
	t.screen.Fini()
}

// Service translates tcell events and pushes them to the queue until the
// context is cancelled. Resize events redraw the screen.
func (t *Terminal) Service(ctx context.Context, q *userinput.Queue) {
	stop := make(chan struct{})
	defer close(stop)

	// PollEvent() is blocking so an interrupt event is posted to wake it
	// when the context is done
	go func() {
		select {
		case <-ctx.Done():
			_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
		case <-stop:
		}
	}()

	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			// screen has been finalised
			return
		}

		switch ev.(type) {
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				return
			}
		case *tcell.EventResize:
			t.crit.Lock()
			t.screen.Sync()
			t.crit.Unlock()
		default:
			evs := Translate(ev)
			for _, e := range evs {
				q.Push(e)
			}
			if len(evs) == 0 {
				logger.Logf(logger.Allow, "tcellterm", "ignored event %T", ev)
			}
		}
	}
}

// Clear implements the polling.Surface interface.
func (t *Terminal) Clear() {
	t.crit.Lock()
	defer t.crit.Unlock()
	t.screen.Clear()
}

// Print implements the polling.Surface interface.
func (t *Terminal) Print(row int, col int, s string) {
	t.crit.Lock()
	defer t.crit.Unlock()

	w, h := t.screen.Size()
	if row < 0 || row >= h {
		return
	}
	for _, r := range s {
		if col >= w {
			break
		}
		if col >= 0 {
			t.screen.SetContent(col, row, r, nil, t.style)
		}
		col++
	}
}

// Refresh implements the polling.Surface interface.
func (t *Terminal) Refresh() {
	t.crit.Lock()
	defer t.crit.Unlock()
	t.screen.Show()
}
