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

package test

import "strings"

// CompareWriter implements the io.Writer interface. Output written to it is
// kept until Clear() is called.
type CompareWriter struct {
	buf strings.Builder
}

func (cw *CompareWriter) Write(p []byte) (int, error) {
	return cw.buf.Write(p)
}

// Clear the captured output.
func (cw *CompareWriter) Clear() {
	cw.buf.Reset()
}

// Compare returns true if the captured output is exactly the string.
func (cw *CompareWriter) Compare(s string) bool {
	return cw.buf.String() == s
}

// CompareLines is like Compare() but the captured output is compared line by
// line with trailing space removed from each line.
func (cw *CompareWriter) CompareLines(lines ...string) bool {
	got := strings.Split(strings.TrimRight(cw.buf.String(), "\n"), "\n")
	if len(got) != len(lines) {
		return false
	}
	for i := range got {
		if strings.TrimRight(got[i], " \t") != lines[i] {
			return false
		}
	}
	return true
}

func (cw *CompareWriter) String() string {
	return cw.buf.String()
}
