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

package nwaccess

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gophercx4/debugger/govern"
	"github.com/jetsetilly/gophercx4/hardware"
	"github.com/jetsetilly/gophercx4/hardware/preferences"
	"github.com/jetsetilly/gophercx4/test"
	"github.com/jetsetilly/gophercx4/version"
)

type emulation struct {
	state govern.State
}

func (emu *emulation) State() govern.State {
	return emu.state
}

func (emu *emulation) SetState(state govern.State) {
	emu.state = state
}

// 64k ROM where every byte is the low byte of its offset, with 8k of RAM
func romData() []byte {
	data := make([]byte, 0x10000)
	for i := range data {
		data[i] = byte(i)
	}
	copy(data[0x7fc0:], []byte("NWACCESS TEST        "))
	data[0x7fd5] = 0x20
	data[0x7fd7] = 0x06
	data[0x7fd8] = 0x03
	data[0x7fd9] = 0x01
	return data
}

type fixture struct {
	t   *testing.T
	srv *Server
	emu *emulation
	out *bytes.Buffer
}

// a server without a listener. requests are serviced by a goroutine that
// stands in for the emulation goroutine
func newFixture(t *testing.T) *fixture {
	t.Helper()

	p, err := preferences.NewPreferencesAt(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	sys, err := hardware.NewSystem("test", p)
	test.DemandSuccess(t, err)

	f := &fixture{
		t:   t,
		emu: &emulation{state: govern.Running},
		out: &bytes.Buffer{},
	}
	f.srv = &Server{
		sys:      sys,
		emu:      f.emu,
		requests: make(chan Request),
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go func() {
		for f.srv.ServiceWait(ctx) == nil {
		}
	}()

	return f
}

// send the input and return the replies and any unprocessed data
func (f *fixture) send(input string) (string, string) {
	f.t.Helper()
	f.out.Reset()
	rest, err := f.srv.process(context.Background(), f.out, []byte(input))
	test.DemandSuccess(f.t, err)
	return f.out.String(), string(rest)
}

// send the input and check that the replies match the expected string
func (f *fixture) expect(input string, expected string) {
	f.t.Helper()
	out, rest := f.send(input)
	test.ExpectEquality(f.t, out, expected)
	test.ExpectEquality(f.t, rest, "")
}

func (f *fixture) insert() string {
	f.t.Helper()
	pth := filepath.Join(f.t.TempDir(), "test.sfc")
	test.DemandSuccess(f.t, os.WriteFile(pth, romData(), 0o644))
	f.expect("LOAD_GAME "+pth+"\n", "\nok\n\n")
	return pth
}

func binaryString(data ...byte) string {
	return string(binaryReply(data))
}

func TestInformation(t *testing.T) {
	f := newFixture(t)

	v, _, _ := version.Version()
	f.expect("EMU_INFO\n", "\nname:GopherCx4\nversion:"+v+"\n\n")

	f.expect("CORES_LIST\n", "\nplatform:snes\nname:gophercx4\n\n")
	f.expect("CORES_LIST SNES\n", "\nplatform:snes\nname:gophercx4\n\n")
	f.expect("CORES_LIST n64\n", "\nnone:none\n\n")

	f.expect("CORE_INFO\n", "\nplatform:snes\nname:gophercx4\n\n")
	f.expect("CORE_INFO gophercx4\n", "\nplatform:snes\nname:gophercx4\n\n")
	f.expect("CORE_INFO bsnes\n", "\nerror:no such core\n\n")
	f.expect("CORE_CURRENT_INFO\n", "\nplatform:snes\nname:gophercx4\n\n")

	f.expect("LOAD_CORE gophercx4\n", "\nok\n\n")
	f.expect("LOAD_CORE bsnes\n", "\nerror:not supported\n\n")

	f.expect("CORE_MEMORIES\n", "\nname:CARTROM\naccess:rw\nname:SRAM\naccess:rw\nname:CX4DRAM\naccess:rw\nname:CX4REGS\naccess:rw\n\n")

	f.expect("DEBUG_STEP\n", "\nerror:unsupported command\n\n")
}

func TestStream(t *testing.T) {
	f := newFixture(t)

	// more than one command in a single read
	f.expect("CORE_INFO\nLOAD_CORE gophercx4\n", "\nplatform:snes\nname:gophercx4\n\n\nok\n\n")

	// incomplete command is returned for later processing
	out, rest := f.send("CORE_INFO\nCORE_")
	test.ExpectEquality(t, out, "\nplatform:snes\nname:gophercx4\n\n")
	test.ExpectEquality(t, rest, "CORE_")

	// a dangling binary block is skipped
	f.expect("\x00\x00\x00\x00\x02abCORE_INFO\n", "\nplatform:snes\nname:gophercx4\n\n")

	// incomplete dangling binary block
	out, rest = f.send("\x00\x00\x00\x00\x04ab")
	test.ExpectEquality(t, out, "")
	test.ExpectEquality(t, rest, "\x00\x00\x00\x00\x04ab")
}

func TestStatus(t *testing.T) {
	f := newFixture(t)

	f.expect("EMU_STATUS\n", "\nstate:no_game\ngame:\n\n")
	f.expect("GAME_INFO\n", "\n\n")
	f.expect("EMU_RESUME\n", "\nerror:no game loaded\n\n")
	f.expect("EMU_RELOAD\n", "\nerror:no game loaded\n\n")

	f.expect("LOAD_GAME nosuchfile.sfc\n", "\nerror:no such file\n\n")

	pth := f.insert()
	f.expect("EMU_STATUS\n", "\nstate:running\ngame:test\n\n")
	f.expect("GAME_INFO\n", "\nname:test\nfile:"+pth+"\nregion:NTSC\n\n")

	f.expect("EMU_PAUSE\n", "\nok\n\n")
	f.expect("EMU_STATUS\n", "\nstate:paused\ngame:test\n\n")

	f.expect("EMU_STOP\n", "\nok\n\n")
	f.expect("EMU_STATUS\n", "\nstate:stopped\ngame:test\n\n")

	// pausing does not restart a stopped emulation
	f.expect("EMU_PAUSE\n", "\nok\n\n")
	f.expect("EMU_STATUS\n", "\nstate:stopped\ngame:test\n\n")

	f.expect("EMU_RESUME\n", "\nok\n\n")
	f.expect("EMU_STATUS\n", "\nstate:running\ngame:test\n\n")

	f.expect("EMU_RELOAD\n", "\nok\n\n")
	f.expect("EMU_STATUS\n", "\nstate:running\ngame:test\n\n")

	// an empty path unloads the game
	f.expect("LOAD_GAME\n", "\nok\n\n")
	f.expect("EMU_STATUS\n", "\nstate:no_game\ngame:\n\n")
}

func TestDebugBreak(t *testing.T) {
	f := newFixture(t)
	f.insert()
	f.expect("EMU_STATUS\n", "\nstate:running\ngame:test\n\n")

	f.expect("DEBUG_BREAK\n", "\nok\n\n")
	f.expect("EMU_STATUS\n", "\nstate:paused\ngame:test\n\n")

	// a second break leaves the emulation paused
	f.expect("DEBUG_BREAK\n", "\nok\n\n")
	f.expect("EMU_STATUS\n", "\nstate:paused\ngame:test\n\n")

	f.expect("DEBUG_CONTINUE\n", "\nok\n\n")
	f.expect("EMU_STATUS\n", "\nstate:running\ngame:test\n\n")

	f.expect("DEBUG_CONTINUE\n", "\nok\n\n")
	f.expect("EMU_STATUS\n", "\nstate:running\ngame:test\n\n")

	// neither command changes a stopped emulation
	f.expect("EMU_STOP\n", "\nok\n\n")
	f.expect("DEBUG_CONTINUE\n", "\nok\n\n")
	f.expect("EMU_STATUS\n", "\nstate:stopped\ngame:test\n\n")
	f.expect("DEBUG_BREAK\n", "\nok\n\n")
	f.expect("EMU_STATUS\n", "\nstate:stopped\ngame:test\n\n")
}

func TestReset(t *testing.T) {
	f := newFixture(t)

	// start the chip
	f.expect("CORE_WRITE CX4REGS;$34f\n\x00\x00\x00\x00\x01\x00", "\nok\n\n")
	test.ExpectFailure(t, f.srv.sys.Cx4.Halted())

	f.expect("EMU_RESET\n", "\nok\n\n")
	test.ExpectSuccess(t, f.srv.sys.Cx4.Halted())

	f.expect("CORE_WRITE CX4REGS;$34f\n\x00\x00\x00\x00\x01\x00", "\nok\n\n")
	f.expect("CORE_RESET\n", "\nok\n\n")
	test.ExpectSuccess(t, f.srv.sys.Cx4.Halted())
}

func TestCoreRead(t *testing.T) {
	f := newFixture(t)

	for i := 0; i < 16; i++ {
		f.srv.sys.Cx4.PokeDRAM(0x10+i, uint8(0x80+i))
		f.srv.sys.Cx4.PokeDRAM(0xbf0+i, uint8(0xf0+i))
	}

	f.expect("CORE_READ CX4DRAM;$10;4\n", binaryString(0x80, 0x81, 0x82, 0x83))
	f.expect("CORE_READ CX4DRAM;16;2;$18;2\n", binaryString(0x80, 0x81, 0x88, 0x89))

	// the last region is cut short
	f.expect("CORE_READ CX4DRAM;$bfe;4\n", binaryString(0xfe, 0xff))
	f.expect("CORE_READ CX4DRAM;$c00;4\n", binaryString())

	// other regions are padded
	f.expect("CORE_READ CX4DRAM;$bfe;4;$10;1\n", binaryString(0xfe, 0xff, 0x00, 0x00, 0x80))
	f.expect("CORE_READ CX4DRAM;$c01;2;$10;1\n", binaryString(0x00, 0x00, 0x80))

	// length must be specified when there is more than one region
	f.expect("CORE_READ CX4DRAM;$10;0;$20;1\n", "\nerror:bad format\n\n")
	f.expect("CORE_READ CX4DRAM;$10;$20;1\n", "\nerror:bad format\n\n")

	// no length means to the end of the memory
	out, _ := f.send("CORE_READ CX4DRAM;$bfc\n")
	test.ExpectEquality(t, out, binaryString(0xfc, 0xfd, 0xfe, 0xff))

	// no region means the entire memory
	out, _ = f.send("CORE_READ CX4DRAM\n")
	test.ExpectEquality(t, len(out), binaryHeaderLen+0xc00)

	f.expect("CORE_READ WRAM;0;1\n", "\nerror:unknown memory\n\n")

	// cartridge memories are empty when there is no cartridge
	f.expect("CORE_READ CARTROM;0;4\n", binaryString())
	f.expect("CORE_READ SRAM;0;4;4;4\n", binaryString())

	f.insert()
	f.expect("CORE_READ CARTROM;$7ff0;4\n", binaryString(0xf0, 0xf1, 0xf2, 0xf3))
	f.expect("CORE_READ SRAM;$1ffe;4\n", binaryString(0x00, 0x00))
}

func TestCoreWrite(t *testing.T) {
	f := newFixture(t)

	f.expect("CORE_WRITE CX4DRAM;$10;2\n\x00\x00\x00\x00\x02\xaa\xbb", "\nok\n\n")
	f.expect("CORE_READ CX4DRAM;$10;2\n", binaryString(0xaa, 0xbb))

	// address only. the length is the length of the data
	f.expect("CORE_WRITE CX4DRAM;$20\n\x00\x00\x00\x00\x03\x01\x02\x03", "\nok\n\n")
	f.expect("CORE_READ CX4DRAM;$20;3\n", binaryString(0x01, 0x02, 0x03))

	// more than one region
	f.expect("CORE_WRITE CX4DRAM;$30;1;$40;1\n\x00\x00\x00\x00\x02\x11\x22", "\nok\n\n")
	f.expect("CORE_READ CX4DRAM;$30;1;$40;1\n", binaryString(0x11, 0x22))

	// data outside of the memory is dropped
	f.expect("CORE_WRITE CX4DRAM;$bff;2\n\x00\x00\x00\x00\x02\x33\x44", "\nok\n\n")
	f.expect("CORE_READ CX4DRAM;$bff;2\n", binaryString(0x33))

	f.expect("CORE_WRITE CX4DRAM;$10;3\n\x00\x00\x00\x00\x02\xaa\xbb", "\nerror:bad data length\n\n")
	f.expect("CORE_WRITE CX4DRAM;$10;$20;1\n\x00\x00\x00\x00\x02\xaa\xbb", "\nerror:bad format\n\n")
	f.expect("CORE_WRITE WRAM;0;1\n\x00\x00\x00\x00\x01\xaa", "\nerror:unknown memory\n\n")

	// the vector table through the register window
	f.expect("CORE_WRITE CX4REGS;$360;2\n\x00\x00\x00\x00\x02\x12\x34", "\nok\n\n")
	test.ExpectEquality(t, f.srv.sys.Cx4.GetRegisters().Vector[0], uint8(0x12))
	test.ExpectEquality(t, f.srv.sys.Cx4.GetRegisters().Vector[1], uint8(0x34))

	// writes to cartridge memory without a cartridge are ignored
	f.expect("CORE_WRITE SRAM;0;1\n\x00\x00\x00\x00\x01\xaa", "\nok\n\n")

	f.insert()
	f.expect("CORE_WRITE SRAM;$10;1\n\x00\x00\x00\x00\x01\x5a", "\nok\n\n")
	test.ExpectEquality(t, f.srv.sys.Peek(0x700010), uint8(0x5a))
	f.expect("CORE_WRITE CARTROM;$10;1\n\x00\x00\x00\x00\x01\xa5", "\nok\n\n")
	test.ExpectEquality(t, f.srv.sys.Peek(0x008010), uint8(0xa5))
}

func TestCoreWriteStream(t *testing.T) {
	f := newFixture(t)

	// wait for the binary block
	out, rest := f.send("CORE_WRITE CX4DRAM;0;2\n")
	test.ExpectEquality(t, out, "")
	test.ExpectEquality(t, rest, "CORE_WRITE CX4DRAM;0;2\n")

	out, rest = f.send("CORE_WRITE CX4DRAM;0;2\n\x00\x00\x00\x00\x02\xaa")
	test.ExpectEquality(t, out, "")
	test.ExpectEquality(t, rest, "CORE_WRITE CX4DRAM;0;2\n\x00\x00\x00\x00\x02\xaa")

	// a command without the binary block
	f.expect("CORE_WRITE CX4DRAM;0;2\nCORE_INFO\n", "\nerror:no data\n\n\nplatform:snes\nname:gophercx4\n\n")
}

func TestService(t *testing.T) {
	p, err := preferences.NewPreferencesAt(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	sys, err := hardware.NewSystem("test", p)
	test.DemandSuccess(t, err)

	emu := &emulation{state: govern.Running}
	srv := &Server{
		sys:      sys,
		emu:      emu,
		requests: make(chan Request, 16),
	}

	// nothing waiting so Service() returns immediately
	srv.Service()

	reply := make(chan []byte)
	go func() {
		reply <- srv.command(context.Background(), "DEBUG_BREAK", "", nil)
	}()

	// the request is only serviced when the emulation goroutine asks for it
	var r []byte
	for r == nil {
		srv.Service()
		select {
		case r = <-reply:
		default:
		}
	}
	test.ExpectEquality(t, string(r), "\nok\n\n")
	test.ExpectEquality(t, emu.state, govern.Paused)

	// a request that is never serviced fails when its context ends
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	srv = &Server{sys: sys, emu: emu, requests: make(chan Request)}
	test.ExpectEquality(t, string(srv.command(ctx, "DEBUG_CONTINUE", "", nil)), "\nerror:emulation not available\n\n")
	test.ExpectEquality(t, emu.state, govern.Paused)
}
