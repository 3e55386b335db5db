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

// Package logger is the central log of the application. Entries are made up
// of a tag and a detail string and are kept in memory, up to a maximum number
// of entries. Consecutive identical entries are collapsed into a single entry
// with a repeat count.
//
// Most packages will use the package level Log() and Logf() functions, which
// write to the central logger. Tests can create their own Logger instance with
// NewLogger().
//
// Every logging call takes a Permission argument. The Allow value can be used
// when logging should always happen. Types that might want to suppress their
// own logging (eg. during a capture dialog) can implement the Permission
// interface.
package logger
