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

//go:build !statsview

package statsview_test

import (
	"testing"

	"github.com/jetsetilly/gophercx4/statsview"
	"github.com/jetsetilly/gophercx4/test"
)

func TestUnavailable(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectFailure(t, statsview.Available())
	statsview.Launch(tw)
	test.ExpectSuccess(t, tw.Compare("stats server not available in this build (localhost:12600/debug/statsview)\n"))
}
