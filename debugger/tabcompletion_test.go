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
	"testing"

	"github.com/jetsetilly/gophercx4/test"
)

func TestTabCompletion(t *testing.T) {
	tc := newTabCompletion()

	test.ExpectEquality(t, tc.Complete("qu"), "QUIT ")

	// cycle through the commands beginning with P
	test.ExpectEquality(t, tc.Complete("p"), "PEEK ")
	test.ExpectEquality(t, tc.Complete("PEEK "), "POKE ")
	test.ExpectEquality(t, tc.Complete("POKE "), "PEEK ")

	// arguments are not completed
	tc.Reset()
	test.ExpectEquality(t, tc.Complete("PEEK $6000"), "PEEK $6000")

	// no match
	test.ExpectEquality(t, tc.Complete("xyz"), "xyz")
}
