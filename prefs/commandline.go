// This file is part of GopherCx4.
//
// GopherCx4 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherCx4 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherCx4.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"slices"
	"strings"
)

// overrides is one group of preference values taken from the command line.
// values are removed from the group as the preferences they belong to are
// created
type overrides map[string]string

// the most recent group is at the end of the slice
var commandLineStack []overrides

// parseOverrides splits a string of the form "key::value; key::value".
// malformed entries are ignored.
func parseOverrides(s string) overrides {
	o := make(overrides)
	for _, entry := range strings.Split(s, ";") {
		key, value, ok := strings.Cut(entry, "::")
		if !ok || strings.Contains(value, "::") {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		o[key] = strings.TrimSpace(value)
	}
	return o
}

func (o overrides) String() string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var s strings.Builder
	for i, k := range keys {
		if i > 0 {
			s.WriteString("; ")
		}
		fmt.Fprintf(&s, "%s::%s", k, o[k])
	}
	return s.String()
}

// SizeCommandLineStack returns the number of groups on the stack.
func SizeCommandLineStack() int {
	return len(commandLineStack)
}

// PushCommandLineStack parses the preferences string and adds it to the stack
// as a new group. Preferences created with Disk.Add() after this call take
// their value from the group.
func PushCommandLineStack(prefs string) {
	commandLineStack = append(commandLineStack, parseOverrides(prefs))
}

// PopCommandLineStack removes the most recent group from the stack. The
// entries that were never used are returned in the same form as accepted by
// PushCommandLineStack(), sorted by key.
func PopCommandLineStack() string {
	if len(commandLineStack) == 0 {
		return ""
	}
	top := commandLineStack[len(commandLineStack)-1]
	commandLineStack = commandLineStack[:len(commandLineStack)-1]
	return top.String()
}

// GetCommandLinePref returns the value for the key from the most recent
// group. The entry is removed from the group.
func GetCommandLinePref(key string) (bool, Value) {
	if len(commandLineStack) == 0 {
		return false, nil
	}

	top := commandLineStack[len(commandLineStack)-1]
	v, ok := top[key]
	if !ok {
		return false, nil
	}
	delete(top, key)

	return true, v
}
