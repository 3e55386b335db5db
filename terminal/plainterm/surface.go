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
	"io"
	"strings"
	"sync"

	"github.com/jetsetilly/inputrelay/terminal/ansi"
)

// Surface writes text to a terminal with ANSI sequences. Output is buffered
// until Refresh().
type Surface struct {
	crit sync.Mutex
	w    io.Writer
	s    strings.Builder

	// pen used for all text. the empty string is the terminal's default
	Pen string
}

// NewSurface is the preferred method of initialisation for the Surface type.
func NewSurface(w io.Writer) *Surface {
	return &Surface{
		w:   w,
		Pen: ansi.Pens["cyan"],
	}
}

// Clear implements the polling.Surface interface.
func (srf *Surface) Clear() {
	srf.crit.Lock()
	defer srf.crit.Unlock()
	srf.s.Reset()
	srf.s.WriteString(ansi.ClearScreen)
}

// Print implements the polling.Surface interface.
func (srf *Surface) Print(row int, col int, s string) {
	srf.crit.Lock()
	defer srf.crit.Unlock()
	srf.s.WriteString(ansi.CursorPosition(row, col))
	srf.s.WriteString(srf.Pen)
	srf.s.WriteString(s)
	srf.s.WriteString(ansi.NormalPen)
}

// Refresh implements the polling.Surface interface.
func (srf *Surface) Refresh() {
	srf.crit.Lock()
	defer srf.crit.Unlock()
	_, _ = io.WriteString(srf.w, srf.s.String())
	srf.s.Reset()
}
