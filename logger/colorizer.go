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

package logger

import (
	"io"
	"strings"

	"github.com/jetsetilly/inputrelay/terminal/ansi"
)

// Colorizer applies basic coloring rules to logging output. The tag part of
// each line is printed with a bright pen and the detail with a dim pen.
//
// Useful as the argument to SetEcho() when the echo destination is a
// terminal.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (n int, err error) {
	s := strings.Builder{}

	for _, l := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		tag, detail, ok := strings.Cut(l, ": ")
		if ok {
			s.WriteString(ansi.Pens["cyan"])
			s.WriteString(tag)
			s.WriteString(ansi.NormalPen)
			s.WriteString(": ")
			s.WriteString(ansi.DimPens["white"])
			s.WriteString(detail)
		} else {
			s.WriteString(ansi.DimPens["red"])
			s.WriteString(l)
		}
		s.WriteString(ansi.NormalPen)
		s.WriteString("\n")
	}

	_, err = io.WriteString(c.out, s.String())
	if err != nil {
		return 0, err
	}

	return len(p), nil
}
