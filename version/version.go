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

// Package version reports the name and build version of the application.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is used for window titles and help messages.
const ApplicationName = "Inputrelay"

// number is set with -ldflags "-X" for release builds
var number string

var (
	version  string
	revision string
)

// Version returns the version string, the revision string and whether this is a
// numbered release.
//
// A version of "unreleased" means the build was made from a repository
// without a version number. "local" means there is no version number and no
// vcs information, usually because of "go run".
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns the application name and version in a form suitable for a
// banner.
func String() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}

func init() {
	version, revision = fromBuildInfo(number, debug.ReadBuildInfo)
}

func fromBuildInfo(num string, read func() (*debug.BuildInfo, bool)) (string, string) {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	if info, ok := read(); ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	rev := "no revision information"
	if vcsRevision != "" {
		rev = vcsRevision
		if vcsModified {
			rev += "+dirty"
		}
	}

	switch {
	case num != "":
		return num, rev
	case vcs:
		return "unreleased", rev
	}
	return "local", rev
}
