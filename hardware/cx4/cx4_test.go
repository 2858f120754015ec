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

package cx4_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gophercx4/environment"
	"github.com/jetsetilly/gophercx4/hardware/cx4"
	"github.com/jetsetilly/gophercx4/hardware/preferences"
	"github.com/jetsetilly/gophercx4/test"
)

// synchroniser counts calls to the synchronisation functions
type synchroniser struct {
	active      bool
	cpu         int
	coprocessor int
}

func (s *synchroniser) CoprocessorActive() bool {
	return s.active
}

func (s *synchroniser) SynchroniseCPU() {
	s.cpu++
}

func (s *synchroniser) SynchroniseCoprocessor() {
	s.coprocessor++
}

// cartridge is a sparse 24-bit address space
type cartridge struct {
	mem map[uint32]uint8
}

func (c *cartridge) Read(addr uint32) uint8 {
	return c.mem[addr]
}

func (c *cartridge) Write(addr uint32, data uint8) {
	c.mem[addr] = data
}

// ROM offsets share the same map as host addresses
func (c *cartridge) ReadROM(offset uint32) uint8 {
	return c.mem[offset]
}

type fixture struct {
	env  *environment.Environment
	sync *synchroniser
	cart *cartridge
	cx   *cx4.Cx4
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	p, err := preferences.NewPreferencesAt(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment(nil, p)
	test.DemandSuccess(t, err)
	env.Label = "test"

	f := &fixture{
		env:  env,
		sync: &synchroniser{},
		cart: &cartridge{mem: make(map[uint32]uint8)},
	}
	f.cx = cx4.NewCx4(f.env, f.sync, f.cart)
	return f
}

// steps the chip the specified number of cycles
func (f *fixture) step(n int) {
	for i := 0; i < n; i++ {
		f.cx.Step()
	}
}

// start the chip running by writing the program counter register
func (f *fixture) start() {
	f.cx.Poke(0x7f4f, 0x00)
}

func TestReset(t *testing.T) {
	f := newFixture(t)

	test.ExpectSuccess(t, f.cx.Halted())
	test.ExpectFailure(t, f.cx.Running())
	test.ExpectFailure(t, f.cx.Busy())
	test.ExpectFailure(t, f.cx.Suspended())

	// halt bit only
	test.ExpectEquality(t, f.cx.Peek(0x7f53), uint8(0x02))
	test.ExpectEquality(t, f.cx.GetRegisters(), cx4.Registers{})
}

func TestUnmapped(t *testing.T) {
	f := newFixture(t)

	// fill every byte of register space with a non-zero value. writes to
	// control addresses will change the run state but that doesn't matter
	// for this test
	for a := uint32(0x7c00); a <= 0x7fff; a++ {
		f.cx.Poke(a, 0xff)
	}

	for _, a := range []uint32{0x7c00, 0x7e00, 0x7f00, 0x7f3f, 0x7f58, 0x7f5a, 0x7fb0, 0x7fbf, 0x7ff0, 0x7fff} {
		test.ExpectEquality(t, f.cx.Peek(a), uint8(0), a)
	}
}

func TestUnmappedWrites(t *testing.T) {
	f := newFixture(t)

	before := f.cx.Snapshot()
	for _, a := range []uint32{0x7c00, 0x7f00, 0x7f54, 0x7f5e, 0x7f5f, 0x7fb0, 0x7ff0} {
		f.cx.Poke(a, 0xff)
	}
	after := f.cx.Snapshot()

	test.ExpectEquality(t, *after, *before)
}

func TestByteMerge(t *testing.T) {
	f := newFixture(t)

	// writing the bytes of a multi-byte field in any order produces the same
	// value
	f.cx.Poke(0x7f40, 0x11)
	f.cx.Poke(0x7f41, 0x22)
	f.cx.Poke(0x7f42, 0x33)
	test.ExpectEquality(t, f.cx.GetRegisters().DMASource, uint32(0x332211))

	g := newFixture(t)
	g.cx.Poke(0x7f42, 0x33)
	g.cx.Poke(0x7f40, 0x11)
	g.cx.Poke(0x7f41, 0x22)
	test.ExpectEquality(t, g.cx.GetRegisters().DMASource, uint32(0x332211))

	// a partial write changes only the targeted byte
	f.cx.Poke(0x7f41, 0xaa)
	test.ExpectEquality(t, f.cx.GetRegisters().DMASource, uint32(0x33aa11))
	test.ExpectEquality(t, f.cx.Peek(0x7f40), uint8(0x11))
	test.ExpectEquality(t, f.cx.Peek(0x7f41), uint8(0xaa))
	test.ExpectEquality(t, f.cx.Peek(0x7f42), uint8(0x33))

	f.cx.Poke(0x7f43, 0x34)
	f.cx.Poke(0x7f44, 0x12)
	test.ExpectEquality(t, f.cx.GetRegisters().DMALength, uint16(0x1234))

	f.cx.Poke(0x7f49, 0x00)
	f.cx.Poke(0x7f4a, 0x80)
	f.cx.Poke(0x7f4b, 0x01)
	test.ExpectEquality(t, f.cx.GetRegisters().ProgramOffset, uint32(0x018000))
	test.ExpectEquality(t, f.cx.Peek(0x7f4a), uint8(0x80))

	// the high byte of the page number is seven bits
	f.cx.Poke(0x7f4e, 0xff)
	test.ExpectEquality(t, f.cx.GetRegisters().PageNumber, uint16(0x7f00))
	f.cx.Poke(0x7f4d, 0xff)
	test.ExpectEquality(t, f.cx.GetRegisters().PageNumber, uint16(0x7fff))
	test.ExpectEquality(t, f.cx.Peek(0x7f4e), uint8(0x7f))
}

func TestSpeedAndFlags(t *testing.T) {
	f := newFixture(t)

	f.cx.Poke(0x7f50, 0xff)
	test.ExpectEquality(t, f.cx.GetRegisters().ROMSpeed, uint8(7))
	test.ExpectEquality(t, f.cx.GetRegisters().RAMSpeed, uint8(7))
	test.ExpectEquality(t, f.cx.Peek(0x7f50), uint8(0x77))

	f.cx.Poke(0x7f50, 0x35)
	test.ExpectEquality(t, f.cx.Speed(0x708000), 0)
	test.ExpectEquality(t, f.cx.Speed(0x700000), 5)
	test.ExpectEquality(t, f.cx.Speed(0x008000), 3)
	test.ExpectEquality(t, f.cx.Speed(0x80ffff), 3)
	test.ExpectEquality(t, f.cx.Speed(0x408000), 0)
	test.ExpectEquality(t, f.cx.Speed(0x006000), 0)

	f.cx.Poke(0x7f51, 0xfe)
	f.cx.Poke(0x7f52, 0xff)
	test.ExpectEquality(t, f.cx.Peek(0x7f51), uint8(0x00))
	test.ExpectEquality(t, f.cx.Peek(0x7f52), uint8(0x01))
}

func TestDMATrigger(t *testing.T) {
	f := newFixture(t)

	// writing the high byte of the DMA target while halted arms the DMA
	f.cx.Poke(0x7f45, 0x00)
	f.cx.Poke(0x7f46, 0x60)
	test.ExpectFailure(t, f.cx.Busy())
	f.cx.Poke(0x7f47, 0x00)
	test.ExpectSuccess(t, f.cx.Busy())
	test.ExpectEquality(t, f.cx.Peek(0x7f53)&0x80, uint8(0x80))
	test.ExpectEquality(t, f.cx.GetRegisters().DMATarget, uint32(0x006000))

	// a zero length DMA completes on the next chip cycle
	f.step(1)
	test.ExpectFailure(t, f.cx.Busy())

	// while running the high byte is still written but the DMA is not armed
	g := newFixture(t)
	g.start()
	g.cx.Poke(0x7f47, 0x7e)
	test.ExpectEquality(t, g.cx.GetRegisters().DMATarget, uint32(0x7e0000))
	g.cx.Poke(0x7f53, 0x00)
	test.ExpectFailure(t, g.cx.Busy())
}

func TestRunStart(t *testing.T) {
	f := newFixture(t)

	f.cx.Poke(0x7f4d, 0x12)
	f.cx.Poke(0x7f4e, 0x00)
	f.cx.Poke(0x7f4f, 0x34)

	test.ExpectSuccess(t, f.cx.Running())
	test.ExpectEquality(t, f.cx.PC(), uint32(0x1234))
	test.ExpectEquality(t, f.cx.Peek(0x7f4f), uint8(0x34))

	// busy and running. not halted or suspended
	test.ExpectEquality(t, f.cx.Peek(0x7f53), uint8(0xc0))

	// writing the program counter while running changes the register but not
	// the pipeline's program counter
	f.cx.Poke(0x7f4d, 0x00)
	f.cx.Poke(0x7f4f, 0x56)
	test.ExpectEquality(t, f.cx.Peek(0x7f4f), uint8(0x56))
	test.ExpectEquality(t, f.cx.PC(), uint32(0x1234))

	// halt is always possible
	f.cx.Poke(0x7f53, 0x00)
	test.ExpectSuccess(t, f.cx.Halted())
	test.ExpectEquality(t, f.cx.Peek(0x7f53), uint8(0x02))

	// and halting twice is harmless
	f.cx.Poke(0x7f53, 0x00)
	test.ExpectSuccess(t, f.cx.Halted())
}

func TestCacheLockGating(t *testing.T) {
	f := newFixture(t)

	f.cx.Poke(0x7f4c, 0x03)
	test.ExpectEquality(t, f.cx.Peek(0x7f4c), uint8(0x03))
	f.cx.Poke(0x7f4c, 0x02)
	test.ExpectEquality(t, f.cx.Peek(0x7f4c), uint8(0x02))

	// lock bits can't be changed while running
	f.start()
	f.cx.Poke(0x7f4c, 0x01)
	test.ExpectEquality(t, f.cx.Peek(0x7f4c), uint8(0x02))

	f.cx.Poke(0x7f53, 0x00)
	f.cx.Poke(0x7f4c, 0x01)
	test.ExpectEquality(t, f.cx.Peek(0x7f4c), uint8(0x01))

	banks := f.cx.CacheBanks()
	test.ExpectSuccess(t, banks[0].Lock)
	test.ExpectFailure(t, banks[1].Lock)
}

func TestCachePreloadGating(t *testing.T) {
	f := newFixture(t)
	f.start()

	f.cx.Poke(0x7f48, 0x01)
	test.ExpectEquality(t, f.cx.Peek(0x7f48), uint8(0x00))

	f.cx.Poke(0x7f53, 0x00)
	f.cx.Poke(0x7f48, 0x01)
	test.ExpectEquality(t, f.cx.Peek(0x7f48), uint8(0x01))
	test.ExpectSuccess(t, f.cx.Busy())
	test.ExpectSuccess(t, f.cx.Halted())
}

func TestDRAM(t *testing.T) {
	f := newFixture(t)

	// both the $6000 and $7000 ranges reach the data RAM
	f.cx.Poke(0x6000, 0x01)
	f.cx.Poke(0x6bff, 0x02)
	test.ExpectEquality(t, f.cx.Peek(0x6000), uint8(0x01))
	test.ExpectEquality(t, f.cx.Peek(0x7000), uint8(0x01))
	test.ExpectEquality(t, f.cx.Peek(0x7bff), uint8(0x02))
	test.ExpectEquality(t, f.cx.Peek(0x806bff), uint8(0x02))

	v, ok := f.cx.PeekDRAM(0xbff)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, uint8(0x02))

	// there are only 3072 bytes of data RAM
	_, ok = f.cx.PeekDRAM(cx4.DRAMSize)
	test.ExpectFailure(t, ok)
	test.ExpectFailure(t, f.cx.PokeDRAM(cx4.DRAMSize, 0xff))
	test.ExpectFailure(t, f.cx.PokeDRAM(-1, 0xff))

	test.ExpectSuccess(t, f.cx.PokeDRAM(0x10, 0x55))
	test.ExpectEquality(t, f.cx.Peek(0x6010), uint8(0x55))
}

func TestGPRAliasing(t *testing.T) {
	f := newFixture(t)

	f.cx.Poke(0x7f80, 0x01)
	f.cx.Poke(0x7f81, 0x02)
	f.cx.Poke(0x7f82, 0x03)
	test.ExpectEquality(t, f.cx.GetRegisters().GPR[0], uint32(0x030201))
	test.ExpectEquality(t, f.cx.Peek(0x7fc0), uint8(0x01))
	test.ExpectEquality(t, f.cx.Peek(0x7fc1), uint8(0x02))
	test.ExpectEquality(t, f.cx.Peek(0x7fc2), uint8(0x03))

	// last GPR through the second window
	f.cx.Poke(0x7fef, 0xab)
	test.ExpectEquality(t, f.cx.GetRegisters().GPR[15], uint32(0xab0000))
	test.ExpectEquality(t, f.cx.Peek(0x7faf), uint8(0xab))

	// every index and shift
	for i := uint32(0); i < 0x30; i++ {
		f.cx.Poke(0x7fc0+i, uint8(i))
	}
	for i := 0; i < cx4.NumGPR; i++ {
		b := uint32(i * 3)
		test.ExpectEquality(t, f.cx.GetRegisters().GPR[i], (b+2)<<16|(b+1)<<8|b, i)
	}
}

func TestVector(t *testing.T) {
	f := newFixture(t)

	for i := uint32(0); i < cx4.VectorLen; i++ {
		f.cx.Poke(0x7f60+i, uint8(0x80+i))
	}
	test.ExpectEquality(t, f.cx.Peek(0x7f60), uint8(0x80))
	test.ExpectEquality(t, f.cx.Peek(0x7f7f), uint8(0x9f))
	test.ExpectEquality(t, f.cx.GetRegisters().Vector[5], uint8(0x85))
}

func TestStatusAddresses(t *testing.T) {
	f := newFixture(t)

	for _, a := range []uint32{0x7f53, 0x7f54, 0x7f55, 0x7f56, 0x7f57, 0x7f59, 0x7f5b, 0x7f5c, 0x7f5d, 0x7f5e, 0x7f5f} {
		test.ExpectEquality(t, f.cx.Peek(a), uint8(0x02), a)
	}
	test.ExpectEquality(t, f.cx.Peek(0x7f58), uint8(0x00))
	test.ExpectEquality(t, f.cx.Peek(0x7f5a), uint8(0x00))
}

func TestSuspend(t *testing.T) {
	f := newFixture(t)

	// suspend until resumed
	f.cx.Poke(0x7f55, 0x00)
	test.ExpectSuccess(t, f.cx.Suspended())
	test.ExpectEquality(t, f.cx.Peek(0x7f53), uint8(0x03))
	f.step(1000)
	test.ExpectSuccess(t, f.cx.Suspended())
	f.cx.Poke(0x7f5d, 0x00)
	test.ExpectFailure(t, f.cx.Suspended())

	// suspend for 32 * 2 cycles
	f.cx.Poke(0x7f57, 0x00)
	test.ExpectSuccess(t, f.cx.Suspended())
	f.step(63)
	test.ExpectSuccess(t, f.cx.Suspended())
	f.step(1)
	test.ExpectFailure(t, f.cx.Suspended())

	// a pending DMA doesn't progress while suspended
	f.cx.Poke(0x7f43, 0x01)
	f.cx.Poke(0x7f5c, 0x00)
	f.cx.Poke(0x7f47, 0x00)
	f.step(10)
	test.ExpectSuccess(t, f.cx.Busy())
	f.cx.Poke(0x7f5d, 0x00)
	f.step(1)
	test.ExpectFailure(t, f.cx.Busy())
}

func TestSynchronisation(t *testing.T) {
	f := newFixture(t)

	// host is active. every bus access synchronises the coprocessor exactly
	// once
	f.cx.Read(0x7f53)
	test.ExpectEquality(t, f.sync.coprocessor, 1)
	f.cx.Write(0x6000, 0x01)
	test.ExpectEquality(t, f.sync.coprocessor, 2)
	test.ExpectEquality(t, f.sync.cpu, 0)

	// coprocessor is active. the host is synchronised instead
	f.sync.active = true
	f.cx.Read(0x6000)
	f.cx.Write(0x7f40, 0x00)
	test.ExpectEquality(t, f.sync.cpu, 2)
	test.ExpectEquality(t, f.sync.coprocessor, 2)

	// peek and poke never synchronise
	f.cx.Peek(0x6000)
	f.cx.Poke(0x6000, 0x02)
	f.cx.Poke(0x7f4f, 0x00)
	test.ExpectEquality(t, f.sync.cpu, 2)
	test.ExpectEquality(t, f.sync.coprocessor, 2)

	// poke still has side effects
	test.ExpectSuccess(t, f.cx.Running())

	// ROM reads are not synchronised either
	f.cx.ROMRead(0x008000)
	test.ExpectEquality(t, f.sync.cpu, 2)
	test.ExpectEquality(t, f.sync.coprocessor, 2)
}

func TestDMA(t *testing.T) {
	f := newFixture(t)

	for i := uint32(0); i < 4; i++ {
		f.cart.mem[0x018000+i] = uint8(0x10 + i)
	}

	// source in cartridge ROM. target in data RAM
	f.cx.Poke(0x7f40, 0x00)
	f.cx.Poke(0x7f41, 0x80)
	f.cx.Poke(0x7f42, 0x01)
	f.cx.Poke(0x7f43, 0x04)
	f.cx.Poke(0x7f44, 0x00)
	f.cx.Poke(0x7f45, 0x10)
	f.cx.Poke(0x7f46, 0x60)
	f.cx.Poke(0x7f47, 0x00)

	// one byte per cycle
	f.step(3)
	test.ExpectSuccess(t, f.cx.Busy())
	test.ExpectEquality(t, f.cx.Peek(0x6010), uint8(0x10))
	test.ExpectEquality(t, f.cx.Peek(0x6012), uint8(0x12))
	test.ExpectEquality(t, f.cx.Peek(0x6013), uint8(0x00))

	f.step(1)
	test.ExpectFailure(t, f.cx.Busy())
	test.ExpectEquality(t, f.cx.Peek(0x6013), uint8(0x13))

	// DMA from data RAM out to cartridge RAM
	f.cx.Poke(0x7f40, 0x10)
	f.cx.Poke(0x7f41, 0x60)
	f.cx.Poke(0x7f42, 0x00)
	f.cx.Poke(0x7f45, 0x00)
	f.cx.Poke(0x7f46, 0x00)
	f.cx.Poke(0x7f47, 0x70)
	f.step(4)
	test.ExpectFailure(t, f.cx.Busy())
	test.ExpectEquality(t, f.cart.mem[0x700000], uint8(0x10))
	test.ExpectEquality(t, f.cart.mem[0x700003], uint8(0x13))
}

func TestInstantDMA(t *testing.T) {
	f := newFixture(t)
	test.DemandSuccess(t, f.env.Prefs.InstantDMA.Set(true))

	for i := uint32(0); i < 0x100; i++ {
		f.cart.mem[0x008000+i] = uint8(i)
	}

	f.cx.Poke(0x7f41, 0x80)
	f.cx.Poke(0x7f44, 0x01)
	f.cx.Poke(0x7f46, 0x60)
	f.cx.Poke(0x7f47, 0x00)
	test.ExpectSuccess(t, f.cx.Busy())

	f.step(1)
	test.ExpectFailure(t, f.cx.Busy())
	test.ExpectEquality(t, f.cx.Peek(0x60ff), uint8(0xff))
}

func TestCacheLoad(t *testing.T) {
	f := newFixture(t)

	// program at $02:8000. page 1 is 512 bytes further on
	for i := uint32(0); i < cx4.PageSize; i++ {
		f.cart.mem[0x028200+i] = uint8(i)
	}
	f.cx.Poke(0x7f49, 0x00)
	f.cx.Poke(0x7f4a, 0x80)
	f.cx.Poke(0x7f4b, 0x02)
	f.cx.Poke(0x7f4d, 0x01)
	f.cx.Poke(0x7f48, 0x01)
	test.ExpectSuccess(t, f.cx.Busy())

	f.step(cx4.PageSize - 1)
	test.ExpectSuccess(t, f.cx.Busy())
	test.ExpectFailure(t, f.cx.CacheBanks()[1].Valid)

	f.step(1)
	test.ExpectFailure(t, f.cx.Busy())

	banks := f.cx.CacheBanks()
	test.ExpectSuccess(t, banks[1].Valid)
	test.ExpectEquality(t, banks[1].Page, uint16(0x0001))
	test.ExpectFailure(t, banks[0].Valid)

	// words are little-endian
	test.ExpectEquality(t, banks[1].Data[0], uint16(0x0100))
	test.ExpectEquality(t, banks[1].Data[1], uint16(0x0302))
	test.ExpectEquality(t, banks[1].Data[255], uint16(0xfffe))
}

func TestCacheLoadLocked(t *testing.T) {
	f := newFixture(t)

	f.cart.mem[0x000000] = 0xff
	f.cx.Poke(0x7f4c, 0x01)
	f.cx.Poke(0x7f48, 0x00)
	test.ExpectSuccess(t, f.cx.Busy())

	// the load completes immediately without touching the bank
	f.step(1)
	test.ExpectFailure(t, f.cx.Busy())
	banks := f.cx.CacheBanks()
	test.ExpectFailure(t, banks[0].Valid)
	test.ExpectEquality(t, banks[0].Data[0], uint16(0))
}

func TestCacheBeforeDMA(t *testing.T) {
	f := newFixture(t)
	test.DemandSuccess(t, f.env.Prefs.InstantDMA.Set(true))

	f.cx.Poke(0x7f43, 0x01)
	f.cx.Poke(0x7f47, 0x00)
	f.cx.Poke(0x7f48, 0x00)

	// the first step completes the cache load, the second the DMA
	f.step(1)
	test.ExpectSuccess(t, f.cx.CacheBanks()[0].Valid)
	test.ExpectSuccess(t, f.cx.Busy())
	f.step(1)
	test.ExpectFailure(t, f.cx.Busy())
}

func TestROMRead(t *testing.T) {
	f := newFixture(t)

	f.cart.mem[0x008000] = 0x42
	f.cart.mem[0x007fe3] = 0x99
	f.cx.Poke(0x7f63, 0x24)

	// not busy. ROM passes through
	test.ExpectEquality(t, f.cx.ROMRead(0x008000), uint8(0x42))
	test.ExpectEquality(t, f.cx.ROMRead(0x007fe3), uint8(0x99))

	// busy. the chip drives the bus with the vector table and zero
	f.start()
	test.ExpectEquality(t, f.cx.ROMRead(0x008000), uint8(0x00))
	test.ExpectEquality(t, f.cx.ROMRead(0x007fe3), uint8(0x24))
	test.ExpectEquality(t, f.cx.ROMRead(0x807fe3), uint8(0x00))

	// suspended. ROM passes through
	f.cx.Poke(0x7f55, 0x00)
	test.ExpectEquality(t, f.cx.ROMRead(0x008000), uint8(0x42))
	f.cx.Poke(0x7f5d, 0x00)
	test.ExpectEquality(t, f.cx.ROMRead(0x008000), uint8(0x00))

	// coprocessor active. ROM passes through
	f.sync.active = true
	test.ExpectEquality(t, f.cx.ROMRead(0x008000), uint8(0x42))
}

func TestSnapshot(t *testing.T) {
	f := newFixture(t)

	f.cx.Poke(0x6000, 0x01)
	f.cx.Poke(0x7f80, 0x01)
	s := f.cx.Snapshot()

	f.cx.Poke(0x6000, 0x02)
	f.cx.Poke(0x7f80, 0x02)
	f.cx.Poke(0x7f4f, 0x00)

	// snapshot is unaffected by later changes
	test.ExpectEquality(t, s.DRAM[0], uint8(0x01))
	test.ExpectEquality(t, s.Registers.GPR[0], uint32(0x01))
	test.ExpectSuccess(t, s.Halt)

	f.cx.Plumb(s)
	test.ExpectEquality(t, f.cx.Peek(0x6000), uint8(0x01))
	test.ExpectSuccess(t, f.cx.Halted())
}

func TestRandomState(t *testing.T) {
	f := newFixture(t)
	test.DemandSuccess(t, f.env.Prefs.RandomState.Set(true))
	f.env.Random.ZeroSeed = true

	f.cx.Reset()
	var nonzero bool
	for i := 0; i < cx4.DRAMSize; i++ {
		if v, _ := f.cx.PeekDRAM(i); v != 0 {
			nonzero = true
			break
		}
	}
	test.ExpectSuccess(t, nonzero)

	// registers are not randomised
	test.ExpectEquality(t, f.cx.GetRegisters(), cx4.Registers{})
}

func TestPutRegister(t *testing.T) {
	f := newFixture(t)

	test.ExpectSuccess(t, f.cx.PutRegister("dma::source", "018000"))
	test.ExpectSuccess(t, f.cx.PutRegister("DMA::LENGTH", "$200"))
	test.ExpectSuccess(t, f.cx.PutRegister("program::page", "ffff"))
	test.ExpectSuccess(t, f.cx.PutRegister("gpr::15", "1234567"))
	test.ExpectSuccess(t, f.cx.PutRegister("vector::31", "ab"))
	test.ExpectSuccess(t, f.cx.PutRegister("cache::lock::1", "true"))

	r := f.cx.GetRegisters()
	test.ExpectEquality(t, r.DMASource, uint32(0x018000))
	test.ExpectEquality(t, r.DMALength, uint16(0x200))
	test.ExpectEquality(t, r.PageNumber, uint16(0x7fff))
	test.ExpectEquality(t, r.GPR[15], uint32(0x234567))
	test.ExpectEquality(t, r.Vector[31], uint8(0xab))
	test.ExpectEquality(t, f.cx.Peek(0x7f4c), uint8(0x02))

	// no side effects
	test.ExpectSuccess(t, f.cx.PutRegister("program::counter", "10"))
	test.ExpectSuccess(t, f.cx.Halted())

	test.ExpectFailure(t, f.cx.PutRegister("gpr::16", "00"))
	test.ExpectFailure(t, f.cx.PutRegister("vector", "00"))
	test.ExpectFailure(t, f.cx.PutRegister("foo", "00"))
	test.ExpectFailure(t, f.cx.PutRegister("dma::source", "xyz"))
	test.ExpectFailure(t, f.cx.PutRegister("cache::lock::0", "maybe"))
}

func TestHotspots(t *testing.T) {
	r := cx4.ReadHotspots()
	w := cx4.WriteHotspots()

	test.ExpectEquality(t, r[0x7f47].Symbol, "DMADSTH")
	test.ExpectEquality(t, w[0x7f47].Action, cx4.HotspotFunction)
	test.ExpectEquality(t, r[0x7f53].Action, cx4.HotspotStatus)
	test.ExpectEquality(t, w[0x7f53].Symbol, "HALT")
	test.ExpectEquality(t, w[0x7f5d].Symbol, "RESUME")
	test.ExpectEquality(t, r[0x7f80].Symbol, "GPR0L")
	test.ExpectEquality(t, r[0x7fc5].Symbol, "GPR1H")
	test.ExpectEquality(t, r[0x7f7f].Symbol, "VEC31")

	_, ok := r[0x7f58]
	test.ExpectFailure(t, ok)
	_, ok = w[0x7f54]
	test.ExpectFailure(t, ok)

	// modifying the returned map doesn't affect the chip's tables
	delete(r, 0x7f47)
	test.ExpectEquality(t, cx4.ReadHotspots()[0x7f47].Symbol, "DMADSTH")
}
