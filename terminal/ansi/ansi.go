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

// Package ansi contains the CSI sequences used by the plain terminal surface
// and by the log colorizer.
package ansi

import (
	"fmt"
	"strings"
)

// ansi color.
const (
	colBlack   = 0
	colRed     = 1
	colGreen   = 2
	colYellow  = 3
	colBlue    = 4
	colMagenta = 5
	colCyan    = 6
	colWhite   = 7
	colDefault = 9
)

// ansi target.
const (
	targetPen       = 3
	targetPaper     = 4
	targetBrightPen = 9
)

// ansi attribute.
const (
	attrBold      = 1
	attrUnderline = 4
	attrInverse   = 7
)

var colors = map[string]int{
	"BLACK":   colBlack,
	"RED":     colRed,
	"GREEN":   colGreen,
	"YELLOW":  colYellow,
	"BLUE":    colBlue,
	"MAGENTA": colMagenta,
	"CYAN":    colCyan,
	"WHITE":   colWhite,
	"NORMAL":  colDefault,
}

// Pens is the table of colors to be used for text.
var Pens map[string]string

// DimPens is the table of pastel colors to be used for text.
var DimPens map[string]string

// PenStyles is the table of styles to be used for text.
var PenStyles map[string]string

// NormalPen is the CSI sequence for regular text.
var NormalPen string

func init() {
	Pens = make(map[string]string)
	DimPens = make(map[string]string)
	PenStyles = make(map[string]string)

	NormalPen, _ = ColorBuild("", "", "", false)

	for _, c := range []string{"red", "green", "yellow", "blue", "magenta", "cyan", "white"} {
		Pens[c], _ = ColorBuild(c, "", "", true)
		DimPens[c], _ = ColorBuild(c, "", "", false)
	}

	for _, a := range []string{"bold", "underline", "inverse"} {
		PenStyles[a], _ = ColorBuild("", "", a, false)
	}
}

// ColorBuild creates the ANSI sequence to create the pen with the correct
// foreground/background color and attribute. Empty strings leave that part
// of the pen unchanged.
func ColorBuild(pen, paper, attribute string, brightPen bool) (string, error) {
	var parts []string

	if pen != "" {
		c, ok := colors[strings.ToUpper(pen)]
		if !ok {
			return "", fmt.Errorf("unknown ANSI pen (%s)", pen)
		}
		if brightPen {
			parts = append(parts, fmt.Sprintf("%d%d", targetBrightPen, c))
		} else {
			parts = append(parts, fmt.Sprintf("%d%d", targetPen, c))
		}
	}

	if paper != "" {
		c, ok := colors[strings.ToUpper(paper)]
		if !ok {
			return "", fmt.Errorf("unknown ANSI paper (%s)", paper)
		}
		parts = append(parts, fmt.Sprintf("%d%d", targetPaper, c))
	}

	switch strings.ToUpper(attribute) {
	case "BOLD":
		parts = append(parts, fmt.Sprintf("%d", attrBold))
	case "UNDERLINE":
		parts = append(parts, fmt.Sprintf("%d", attrUnderline))
	case "INVERSE":
		parts = append(parts, fmt.Sprintf("%d", attrInverse))
	case "NORMAL", "":
	default:
		return "", fmt.Errorf("unknown ANSI attribute (%s)", attribute)
	}

	return fmt.Sprintf("\033[%sm", strings.Join(parts, ";")), nil
}

// ClearScreen is the CSI sequence to clear the screen and to move the cursor
// to the home position.
const ClearScreen = "\033[2J\033[H"

// ClearLine is the CSI sequence to clear the entire of the current line.
const ClearLine = "\033[2K"

// HideCursor and ShowCursor are the CSI sequences to change the visibility of
// the cursor.
const (
	HideCursor = "\033[?25l"
	ShowCursor = "\033[?25h"
)

// CursorPosition is the CSI sequence to move the cursor to the zero-indexed
// row and column.
func CursorPosition(row, col int) string {
	return fmt.Sprintf("\033[%d;%dH", row+1, col+1)
}
