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

// Package prefs facilitates the storage of preferential values in the
// application. It stores values on disk and retrieves values from disk.
//
// Preference values are represented by the Bool, Int, Float and String types.
// Each type can have a pre and post hook set. The pre hook is called before a
// new value is stored and can reject the value by returning an error. The post
// hook is called after the value is stored and is the mechanism by which
// packages react to preference changes.
//
// Values are associated with a key and added to a Disk instance with the
// Add() function. Keys are by convention dotted strings, eg.
// "input.threshold". Disk files can be shared between more than one Disk
// instance. Saving a Disk will not clobber the entries of another Disk in the
// same file.
//
// The file format is very simple. The first line is the WarningBoilerPlate
// followed by one entry per line, sorted by key:
//
//	input.fuzz :: 1000
//	input.threshold :: 10000
//
// Values can also be supplied on the command line with
// PushCommandLineStack(). Command line values take priority over values
// loaded from disk but are never saved.
package prefs
