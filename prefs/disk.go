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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/inputrelay/curated"
	"github.com/jetsetilly/inputrelay/logger"
)

// WarningBoilerPlate is the first line of every prefs file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// KeySep separates the key from the value in the prefs file.
const KeySep = " :: "

// Sentinal error patterns.
const (
	DiskError      = "prefs: %v"
	DuplicateKey   = "prefs: key already added (%s)"
	InvalidKey     = "prefs: invalid key (%s)"
	MissingDiskKey = "prefs: no such key (%s)"
)

// list of preference keys that are no longer used. they are dropped from the
// prefs file the next time it is saved.
var defunct = []string{
	"input.deadzone",
	"input.menujoystick",
}

func isDefunct(key string) bool {
	for _, d := range defunct {
		if key == d {
			return true
		}
	}
	return false
}

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, curated.Errorf(DiskError, "no path for prefs file")
	}

	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, KeySep, dsk.entries[k]))
	}
	return s.String()
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Add preference value to list of values to store/load from Disk. The key
// argument specifies the name of the value as it will be written to disk.
func (dsk *Disk) Add(key string, p pref) error {
	if key == "" || strings.Contains(key, KeySep) || strings.ContainsAny(key, "\n ") {
		return curated.Errorf(InvalidKey, key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

// Reset all entries to their zero value.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return curated.Errorf(DiskError, err)
		}
	}
	return nil
}

// readFile returns the key/value pairs in the prefs file. A missing file is
// not an error.
func (dsk *Disk) readFile() (map[string]string, error) {
	data := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return data, nil
		}
		return nil, curated.Errorf(DiskError, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// check validity of file by checking the first line
	if !scanner.Scan() || scanner.Text() != WarningBoilerPlate {
		return nil, curated.Errorf(DiskError, fmt.Sprintf("not a valid prefs file (%s)", dsk.path))
	}

	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), KeySep)
		if !ok {
			continue
		}
		data[k] = v
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(DiskError, err)
	}

	return data, nil
}

// Save current preference values to disk. Entries in the file that are not
// part of this Disk instance are preserved.
func (dsk *Disk) Save() error {
	data, err := dsk.readFile()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		data[k] = p.String()
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		if isDefunct(k) {
			logger.Logf(logger.Allow, "prefs", "dropping defunct key (%s)", k)
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, KeySep, data[k]))
	}

	if err := os.WriteFile(dsk.path, []byte(s.String()), 0o600); err != nil {
		return curated.Errorf(DiskError, err)
	}

	return nil
}

// Load preference values from disk. If saveOnFail is true and the prefs file
// does not exist then the current values are saved to a new file.
//
// Values on the top of the command line stack take priority over the values
// in the file.
func (dsk *Disk) Load(saveOnFail bool) error {
	if _, err := os.Stat(dsk.path); errors.Is(err, fs.ErrNotExist) && saveOnFail {
		if err := dsk.Save(); err != nil {
			return err
		}
	}

	data, err := dsk.readFile()
	if err != nil {
		return err
	}

	for _, k := range dsk.keys() {
		p := dsk.entries[k]

		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(DiskError, err)
			}
			continue
		}

		if v, ok := data[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(DiskError, err)
			}
		}
	}

	return nil
}

// LoadKey loads a single preference value from disk.
func (dsk *Disk) LoadKey(key string) error {
	p, ok := dsk.entries[key]
	if !ok {
		return curated.Errorf(MissingDiskKey, key)
	}

	data, err := dsk.readFile()
	if err != nil {
		return err
	}

	if v, ok := data[key]; ok {
		if err := p.Set(v); err != nil {
			return curated.Errorf(DiskError, err)
		}
	}

	return nil
}
