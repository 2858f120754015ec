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

package script

import (
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/gophercx4/curated"
)

// Sentinal error patterns.
const (
	NoSuchFile = "script: no such file: %s"
)

// Line is a single command taken from the queue.
type Line struct {
	Entry string

	// Batch is true if the line came from a script file rather than from
	// interactive input
	Batch bool
}

// Queue normalises input into commands and dishes out those commands one at
// a time. Used by interactive terminals and scripts.
type Queue struct {
	lines []Line
}

// More returns true if there are more commands in the queue.
func (q *Queue) More() bool {
	return len(q.lines) > 0
}

// Next command in the queue.
func (q *Queue) Next() (Line, bool) {
	if len(q.lines) > 0 {
		ln := q.lines[0]
		q.lines = q.lines[1:]
		return ln, true
	}
	return Line{}, false
}

// Push input line into queue. Input is normalised before the first command
// is returned.
func (q *Queue) Push(input string) (Line, error) {
	q.lines = append(q.lines, split(input, false)...)
	if ln, ok := q.Next(); ok {
		return ln, nil
	}
	return Line{}, io.EOF
}

// Clear all pending commands from the queue.
func (q *Queue) Clear() {
	q.lines = q.lines[:0]
}

func split(input string, batch bool) []Line {
	// replace windows and mac line endings with unix line endings
	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.ReplaceAll(input, "\r", "\n")

	// commands can be separated by semi-colons as well as newlines.
	// normalise semi-colons with newlines
	input = strings.ReplaceAll(input, ";", "\n")

	var lines []Line
	for s := range strings.SplitSeq(input, "\n") {
		s = strings.TrimSpace(s)
		if len(s) > 0 && !strings.HasPrefix(s, commentLine) {
			lines = append(lines, Line{Entry: s, Batch: batch})
		}
	}
	return lines
}

// Load script into queue. The commands in the script are placed before any
// commands already in the queue, so that a script can load another script.
func (q *Queue) Load(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return curated.Errorf(NoSuchFile, filename)
		}
		return curated.Errorf("script: %v", err)
	}
	defer f.Close()

	s, err := io.ReadAll(f)
	if err != nil {
		return curated.Errorf("script: %v", err)
	}

	q.lines = append(split(string(s), true), q.lines...)

	return nil
}
