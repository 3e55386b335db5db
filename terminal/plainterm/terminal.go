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

package plainterm

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"unsafe"

	"github.com/jetsetilly/inputrelay/curated"
	"github.com/jetsetilly/inputrelay/logger"
	"github.com/jetsetilly/inputrelay/userinput"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Geometry contains the dimensions of the output terminal.
type Geometry struct {
	// characters
	Rows uint16
	Cols uint16

	// pixels
	X uint16
	Y uint16
}

// Terminal is a posix terminal used as an input source.
type Terminal struct {
	input  *os.File
	output *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios

	// Geometry is updated on SIGWINCH
	crit     sync.Mutex
	geometry Geometry

	terminateHandlerSig chan bool
	terminateHandlerAck chan bool
}

// NewTerminal prepares the input and output files for use. The terminal is
// left in canonical mode until CBreakMode() is called.
func NewTerminal(input, output *os.File) (*Terminal, error) {
	if input == nil {
		return nil, curated.Errorf("plainterm: terminal requires an input file")
	}
	if output == nil {
		return nil, curated.Errorf("plainterm: terminal requires an output file")
	}

	pt := &Terminal{
		input:               input,
		output:              output,
		terminateHandlerSig: make(chan bool),
		terminateHandlerAck: make(chan bool),
	}

	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
		return nil, curated.Errorf("plainterm: %v", err)
	}

	// cbreak mode with a read timeout of one tenth of a second so that the
	// read loop in Service() can notice the context being cancelled
	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)
	pt.cbreakAttr.Cc[unix.VMIN] = 0
	pt.cbreakAttr.Cc[unix.VTIME] = 1

	_ = pt.updateGeometry()

	go func() {
		sigwinch := make(chan os.Signal, 1)
		signal.Notify(sigwinch, syscall.SIGWINCH)
		defer func() {
			signal.Stop(sigwinch)
			pt.terminateHandlerAck <- true
		}()

		for {
			select {
			case <-sigwinch:
				_ = pt.updateGeometry()
			case <-pt.terminateHandlerSig:
				return
			}
		}
	}()

	return pt, nil
}

// CleanUp restores canonical mode and stops the signal handler.
func (pt *Terminal) CleanUp() {
	pt.CanonicalMode()
	pt.terminateHandlerSig <- true
	<-pt.terminateHandlerAck
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() {
	_ = termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.canAttr)
}

// CBreakMode puts terminal into cbreak mode.
func (pt *Terminal) CBreakMode() {
	_ = termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.cbreakAttr)
}

// Flush discards any pending input.
func (pt *Terminal) Flush() error {
	return termios.Tcflush(pt.input.Fd(), termios.TCIFLUSH)
}

func (pt *Terminal) updateGeometry() error {
	pt.crit.Lock()
	defer pt.crit.Unlock()

	_, _, errno := syscall.Syscall(syscall.SYS_IOCTL, pt.output.Fd(), uintptr(syscall.TIOCGWINSZ), uintptr(unsafe.Pointer(&pt.geometry)))
	if errno != 0 {
		return curated.Errorf("plainterm: error updating terminal geometry (%d)", errno)
	}
	return nil
}

// Geometry returns the most recent dimensions of the output terminal.
func (pt *Terminal) Geometry() Geometry {
	pt.crit.Lock()
	defer pt.crit.Unlock()
	return pt.geometry
}

// Output returns the file used for output. Suitable for use with NewSurface().
func (pt *Terminal) Output() io.Writer {
	return pt.output
}

// Service reads from the terminal and pushes decoded events to the queue
// until the context is cancelled or the input is closed. The terminal must be
// in cbreak mode.
func (pt *Terminal) Service(ctx context.Context, q *userinput.Queue) error {
	return Read(ctx, pt.input, q)
}

// Read decodes everything read from r and pushes the events to the queue.
// A zero length read is treated as a timeout and not as the end of input.
func Read(ctx context.Context, r io.Reader, q *userinput.Queue) error {
	buf := make([]byte, 32)

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		n, err := r.Read(buf)
		if n > 0 {
			for _, ev := range Decode(buf[:n]) {
				q.Push(ev)
			}
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				logger.Log(logger.Allow, "plainterm", "end of input")
				q.Push(userinput.Event{Kind: userinput.KindQuit, Device: userinput.NoDevice})
				return nil
			}
			return curated.Errorf("plainterm: %v", err)
		}
	}
}
