// This file is part of DumpEvents.
//
// DumpEvents is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// DumpEvents is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with DumpEvents.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
)

// WarningBoilerPlate is inserted at the beginning of a preferences file.
const WarningBoilerPlate = "# preferences file for DumpEvents. edit with care"

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences.toml"

// Disk represents preference values as stored on disk. Keys are dotted paths
// ("dumper.fade.period") which become nested tables in the TOML file.
type Disk struct {
	crit    sync.Mutex
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("prefs: empty path")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Path returns the name of the file the Disk is saved to and loaded from.
func (dsk *Disk) Path() string {
	return dsk.path
}

func (dsk *Disk) String() string {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	s := &strings.Builder{}
	for _, k := range keys {
		fmt.Fprintf(s, "%s :: %s\n", k, dsk.entries[k])
	}
	return s.String()
}

// Add preference value to list of values to store/load from disk.
func (dsk *Disk) Add(key string, p pref) error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	key = strings.TrimSpace(key)
	if key == "" || strings.HasPrefix(key, ".") || strings.HasSuffix(key, ".") {
		return fmt.Errorf("prefs: illegal key (%q)", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: key already added (%s)", key)
	}

	// a key cannot also be a table containing other keys
	for k := range dsk.entries {
		if strings.HasPrefix(k, key+".") || strings.HasPrefix(key, k+".") {
			return fmt.Errorf("prefs: key conflicts with existing key (%s, %s)", key, k)
		}
	}

	dsk.entries[key] = p
	return nil
}

// Reset all preference values managed by the Disk to their zero values.
func (dsk *Disk) Reset() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
	}
	return nil
}

// Save current preference values to disk. Values in the file which have not
// been added to the Disk are preserved.
func (dsk *Disk) Save() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	flat, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		flat[k] = p.Get()
	}

	data, err := toml.Marshal(unflatten(flat))
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(dsk.path), 0o755); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	data = append([]byte(WarningBoilerPlate+"\n"), data...)
	if err := os.WriteFile(dsk.path, data, 0o644); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Load preference values from disk. A missing file is not an error. After
// loading, any value on the top of the command line stack for a key managed by
// the Disk is applied.
func (dsk *Disk) Load() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	flat, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		if v, ok := flat[k]; ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}

	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}

	return nil
}

// read the prefs file and return a flattened map of its contents.
func (dsk *Disk) read() (map[string]any, error) {
	flat := make(map[string]any)

	data, err := os.ReadFile(dsk.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return flat, nil
		}
		return nil, fmt.Errorf("prefs: %w", err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("prefs: %s: %w", dsk.path, err)
	}

	flatten("", raw, flat)
	return flat, nil
}

func flatten(prefix string, tree map[string]any, flat map[string]any) {
	for k, v := range tree {
		if prefix != "" {
			k = prefix + "." + k
		}
		if t, ok := v.(map[string]any); ok {
			flatten(k, t, flat)
			continue
		}
		flat[k] = v
	}
}

func unflatten(flat map[string]any) map[string]any {
	tree := make(map[string]any)

	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		parts := strings.Split(k, ".")
		t := tree
		for _, p := range parts[:len(parts)-1] {
			n, ok := t[p].(map[string]any)
			if !ok {
				n = make(map[string]any)
				t[p] = n
			}
			t = n
		}
		t[parts[len(parts)-1]] = flat[k]
	}

	return tree
}
