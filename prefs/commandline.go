// This file is part of os9rof.
//
// os9rof is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// os9rof is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with os9rof.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// the command line stack is shared by every Disk
var commandLine struct {
	crit  sync.Mutex
	stack []map[string]string
}

// pairSeparator divides the key and value of a preference. on the command
// line and on disk
const pairSeparator = "::"

// splitPair divides a key::value string. the key and value are trimmed of
// surrounding whitespace
func splitPair(s string) (string, string, bool) {
	k, v, ok := strings.Cut(s, pairSeparator)
	if !ok {
		return "", "", false
	}
	k = strings.TrimSpace(k)
	if k == "" {
		return "", "", false
	}
	return k, strings.TrimSpace(v), true
}

// PushCommandLineStack parses a string of preferences and adds them as a new
// group. Preferences are separated by semicolons and each preference is a
// key and value separated by two colons.
//
//	rdump.symbols::false; rdump.hexwidth::8
//
// Malformed preferences are ignored.
func PushCommandLineStack(prefs string) {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	grp := make(map[string]string)
	for _, p := range strings.Split(prefs, ";") {
		if k, v, ok := splitPair(p); ok {
			grp[k] = v
		}
	}
	commandLine.stack = append(commandLine.stack, grp)
}

// PopCommandLineStack forgets the most recent group added by
// PushCommandLineStack().
//
// Returns the preferences from the group that were never used, sorted by
// key and in the same form as accepted by PushCommandLineStack().
func PopCommandLineStack() string {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	if len(commandLine.stack) == 0 {
		return ""
	}

	top := commandLine.stack[len(commandLine.stack)-1]
	commandLine.stack = commandLine.stack[:len(commandLine.stack)-1]

	keys := make([]string, 0, len(top))
	for k := range top {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	unused := make([]string, 0, len(keys))
	for _, k := range keys {
		unused = append(unused, fmt.Sprintf("%s%s%s", k, pairSeparator, top[k]))
	}

	return strings.Join(unused, "; ")
}

// GetCommandLinePref returns the value for the key from the most recent
// group. The value is removed from the group.
func GetCommandLinePref(key string) (string, bool) {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	if len(commandLine.stack) == 0 {
		return "", false
	}

	top := commandLine.stack[len(commandLine.stack)-1]
	v, ok := top[key]
	if ok {
		delete(top, key)
	}
	return v, ok
}
