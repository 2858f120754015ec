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

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/gophercx4/prefs"
	"github.com/jetsetilly/gophercx4/test"
)

func TestCommandLineParsing(t *testing.T) {
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("cx4.instantdma::true")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "cx4.instantdma::true")

	// surrounding space is removed
	prefs.PushCommandLineStack("  nwaccess.port::  65410 ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "nwaccess.port::65410")

	// unused entries are returned sorted by key
	prefs.PushCommandLineStack("nwaccess.port::65410; cx4.randomstate::false")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "cx4.randomstate::false; nwaccess.port::65410")

	// malformed entries are dropped
	prefs.PushCommandLineStack("cx4.instantdma")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("::true;cx4.instantdma::true::false;nwaccess.enabled::false")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "nwaccess.enabled::false")
}

func TestCommandLineConsumption(t *testing.T) {
	prefs.PushCommandLineStack("cx4.instantdma::true; nwaccess.port::65410")

	ok, v := prefs.GetCommandLinePref("cx4.instantdma")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "true")

	// a value can only be used once
	ok, _ = prefs.GetCommandLinePref("cx4.instantdma")
	test.ExpectFailure(t, ok)

	ok, _ = prefs.GetCommandLinePref("cx4.randomstate")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "nwaccess.port::65410")
}

func TestCommandLineStack(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	prefs.PushCommandLineStack("cx4.instantdma::true")
	prefs.PushCommandLineStack("nwaccess.port::65410")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 2)

	// only the most recent group is visible
	ok, _ := prefs.GetCommandLinePref("cx4.instantdma")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "nwaccess.port::65410")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "cx4.instantdma::true")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}
