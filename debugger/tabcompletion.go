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

package debugger

import (
	"sort"
	"strings"
)

// tabCompletion completes the first word of the input to a debugger
// command. repeated calls to Complete() cycle through the matching commands.
type tabCompletion struct {
	commands []string

	matches []string
	idx     int
	last    string
}

func newTabCompletion() *tabCompletion {
	tc := &tabCompletion{}
	for k := range commandHelp {
		tc.commands = append(tc.commands, k)
	}
	sort.Strings(tc.commands)
	return tc
}

// Complete implements the terminal.TabCompletion interface.
func (tc *tabCompletion) Complete(input string) string {
	// only the command is completed
	if strings.Contains(strings.TrimLeft(input, " "), " ") && input != tc.last {
		return input
	}

	if input != tc.last || len(tc.matches) == 0 {
		tc.matches = tc.matches[:0]
		tc.idx = 0
		prefix := strings.ToUpper(strings.TrimSpace(input))
		for _, c := range tc.commands {
			if strings.HasPrefix(c, prefix) {
				tc.matches = append(tc.matches, c)
			}
		}
		if len(tc.matches) == 0 {
			return input
		}
	} else {
		tc.idx = (tc.idx + 1) % len(tc.matches)
	}

	tc.last = tc.matches[tc.idx] + " "
	return tc.last
}

// Reset implements the terminal.TabCompletion interface.
func (tc *tabCompletion) Reset() {
	tc.matches = tc.matches[:0]
	tc.idx = 0
	tc.last = ""
}
