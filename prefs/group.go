// This file is part of appleone.
//
// appleone is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// appleone is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with appleone.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"sort"
	"strings"
)

// Group is a collection of named preference values.
type Group struct {
	entries map[string]pref
}

// NewGroup is the preferred method of initialisation for the Group type.
func NewGroup() *Group {
	return &Group{
		entries: make(map[string]pref),
	}
}

// Add preference value to group under key. Keys must be unique.
func (grp *Group) Add(key string, p pref) error {
	if _, ok := grp.entries[key]; ok {
		return fmt.Errorf("prefs: key already exists (%s)", key)
	}
	grp.entries[key] = p
	return nil
}

// Set the preference value named by key.
func (grp *Group) Set(key string, v Value) error {
	p, ok := grp.entries[key]
	if !ok {
		return fmt.Errorf("prefs: no such key (%s)", key)
	}
	return p.Set(v)
}

// ApplyCommandLine sets every value in the group for which a value exists in
// the current command line group (see PushCommandLineStack()).
func (grp *Group) ApplyCommandLine() error {
	for _, key := range grp.keys() {
		if ok, v := GetCommandLinePref(key); ok {
			if err := grp.entries[key].Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", key, err)
			}
		}
	}
	return nil
}

func (grp *Group) keys() []string {
	keys := make([]string, 0, len(grp.entries))
	for k := range grp.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String returns every key/value pair in the group, one per line and
// ordered by key.
func (grp *Group) String() string {
	s := strings.Builder{}
	for _, k := range grp.keys() {
		s.WriteString(fmt.Sprintf("%s :: %s\n", k, grp.entries[k]))
	}
	return s.String()
}
