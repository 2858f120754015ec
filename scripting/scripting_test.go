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

package scripting_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gophercx4/hardware"
	"github.com/jetsetilly/gophercx4/hardware/preferences"
	"github.com/jetsetilly/gophercx4/scripting"
	"github.com/jetsetilly/gophercx4/test"
)

func newSystem(t *testing.T) *hardware.System {
	t.Helper()
	p, err := preferences.NewPreferencesAt(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	sys, err := hardware.NewSystem("test", p)
	test.DemandSuccess(t, err)
	return sys
}

const dmaScript = `
poke(0x6000, 0x42)
print(peek(0x6000))

# one byte DMA. the chip is busy until the host clock moves on
write(0x7f43, 1)
write(0x7f47, 0)
print(busy())
step(100)
print(busy())

print(speed(0x8000))
register("speed::rom", "3")
print(speed(0x8000))
`

func TestScript(t *testing.T) {
	sys := newSystem(t)

	var out strings.Builder
	err := scripting.Run(sys, "dma.star", dmaScript, &out)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, out.String(), "66\nTrue\nFalse\n0\n3\n")
}

func TestControlFlow(t *testing.T) {
	sys := newSystem(t)

	// fill the first few bytes of data RAM and start the chip
	src := `
for i in range(4):
    write(0x6000 + i, i * 2)
write(0x7f4f, 0)
if not halted():
    print("running")
`
	var out strings.Builder
	test.ExpectSuccess(t, scripting.Run(sys, "loop.star", src, &out))
	test.ExpectEquality(t, out.String(), "running\n")
	test.ExpectEquality(t, sys.Peek(0x6003), uint8(6))
}

func TestScriptFile(t *testing.T) {
	sys := newSystem(t)

	pth := filepath.Join(t.TempDir(), "file.star")
	test.DemandSuccess(t, os.WriteFile(pth, []byte("poke(0x6001, 0xff)\nrun(10)\n"), 0o644))

	test.ExpectSuccess(t, scripting.Run(sys, pth, nil, nil))
	test.ExpectEquality(t, sys.Peek(0x6001), uint8(0xff))
	test.ExpectEquality(t, sys.Sched.CoprocessorCycles, int64(10))
}

func TestScriptErrors(t *testing.T) {
	sys := newSystem(t)

	test.ExpectFailure(t, scripting.Run(sys, "bad.star", "peek(-1)", nil))
	test.ExpectFailure(t, scripting.Run(sys, "bad.star", "poke(0x6000, 0x100)", nil))
	test.ExpectFailure(t, scripting.Run(sys, "bad.star", "step(-1)", nil))
	test.ExpectFailure(t, scripting.Run(sys, "bad.star", "register(\"nosuch\", \"0\")", nil))
	test.ExpectFailure(t, scripting.Run(sys, "bad.star", "undefined()", nil))
	test.ExpectFailure(t, scripting.Run(sys, "bad.star", "peek(", nil))
	test.ExpectFailure(t, scripting.Run(sys, filepath.Join(t.TempDir(), "missing.star"), nil, nil))
}
