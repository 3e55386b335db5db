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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The pattern is what differentiates one curated error from another. Patterns
// that callers need to test for should be stored as a named const string in
// the package that produces them. For example:
//
//	const InvalidAction = "hotkeys: invalid action (%d)"
//
//	err := curated.Errorf(InvalidAction, id)
//	if curated.Is(err, InvalidAction) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("joymap: %v", err)
//	curated.Has(f, InvalidAction) // true
//	curated.Is(f, InvalidAction)  // false
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We can think of the difference between curated and
// uncurated errors as being 'expected' and 'unexpected'.
//
// The Error() function normalises the error chain so that it does not contain
// duplicate adjacent parts. Chains are thought of as being composed of parts
// separated by the sub-string ': '. For example, wrapping "error: file not
// found" in "error: %v" results in:
//
//	error: file not found
//
// and not:
//
//	error: error: file not found
package curated
