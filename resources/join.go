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

package resources

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// the base path in portable mode.
const portablePath = ".inputrelay"

// the name of the directory in the user's config directory.
const configDir = "inputrelay"

// returns true if the portable path exists in the current directory.
func checkPortable() bool {
	info, err := os.Stat(portablePath)
	return err == nil && info.IsDir()
}

// basePath returns the base path for all resources.
func basePath() (string, error) {
	if checkPortable() {
		return portablePath, nil
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resources: %w", err)
	}

	return filepath.Join(cnf, configDir), nil
}

// JoinPath prepends the supplied path with the base resource path.
//
// The function creates all folders necessary to reach the end of sub-path. It
// does not otherwise touch or create the file.
func JoinPath(path ...string) (string, error) {
	p := filepath.Join(path...)

	b, err := basePath()
	if err != nil {
		return "", err
	}

	// do not prepend base path if it is already present
	if !strings.HasPrefix(p, b) {
		p = filepath.Join(b, p)
	}

	if _, err := os.Stat(p); err == nil {
		return p, nil
	}

	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		return "", fmt.Errorf("resources: %w", err)
	}

	return p, nil
}

// UniqueFilename creates a filename that (assuming a functioning clock) should
// not collide with any existing file. Note that the function does not test for
// this.
//
// Format of returned string is:
//
//	prepend_YYYYMMDD_HHMMSS.ext
//
// The extension is omitted if ext is empty.
func UniqueFilename(prepend string, ext string) string {
	n := time.Now()
	fn := fmt.Sprintf("%s_%04d%02d%02d_%02d%02d%02d", prepend, n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())
	if ext != "" {
		fn = fmt.Sprintf("%s.%s", fn, strings.TrimPrefix(ext, "."))
	}
	return fn
}
