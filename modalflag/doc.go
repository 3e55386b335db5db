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

// Package modalflag wraps the flag package in the standard library. It adds
// program modes, each with its own set of flags.
//
// Arguments are given with NewArgs() and then parsed with Parse(), which
// takes no arguments. This allows the same argument list to be parsed in
// stages, one stage per mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubMode("SDL", "window and joysticks with SDL")
//	md.AddSubMode("TERM", "keyboard input from the terminal")
//	_, _ = md.Parse()
//
//	switch md.Mode() {
//	case "TERM":
//		md.NewMode()
//		echo := md.AddBool("echo", false, "echo log to the terminal")
//		p, err := md.Parse()
//		...
//	}
//
// The first sub-mode is the default and is used when the first argument
// after the flags is not a sub-mode. Sub-mode comparisons are case
// insensitive and Mode() always returns the upper case name.
//
// A mode can accept preference overrides with AddPrefs(). The value of the
// flag is pushed onto the prefs package's command line stack by Parse().
package modalflag
