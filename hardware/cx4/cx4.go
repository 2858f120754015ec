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

package cx4

import (
	"fmt"

	"github.com/jetsetilly/gophercx4/environment"
)

// Cx4 is the coprocessor chip.
type Cx4 struct {
	env  *environment.Environment
	sync Synchroniser
	cart CartBus

	state *State
}

// NewCx4 is the preferred method of initialisation for the Cx4 type. The chip
// is in its reset state on return.
func NewCx4(env *environment.Environment, sync Synchroniser, cart CartBus) *Cx4 {
	cx := &Cx4{
		env:  env,
		sync: sync,
		cart: cart,
	}
	cx.Reset()
	return cx
}

func (cx *Cx4) String() string {
	return cx.state.String()
}

// Reset the chip. Registers are cleared and the chip is halted. The data RAM
// is cleared or randomised depending on the RandomState preference.
func (cx *Cx4) Reset() {
	cx.state = newState()
	if cx.env != nil && cx.env.Prefs.RandomState.Get().(bool) {
		cx.env.Random.Fill(cx.state.DRAM[:])
	}
}

// Snapshot creates a copy of the chip's state.
func (cx *Cx4) Snapshot() *State {
	return cx.state.Snapshot()
}

// Plumb a new State into the chip.
func (cx *Cx4) Plumb(state *State) {
	cx.state = state
}

// synchronise the clock of whichever side is behind.
func (cx *Cx4) synchronise() {
	if cx.sync.CoprocessorActive() {
		cx.sync.SynchroniseCPU()
	} else {
		cx.sync.SynchroniseCoprocessor()
	}
}

// instant returns true if DMA transfers and cache loads should complete in
// a single step.
func (cx *Cx4) instant() bool {
	return cx.env != nil && cx.env.Prefs.InstantDMA.Get().(bool)
}

// Read a byte from the chip's I/O window.
func (cx *Cx4) Read(addr uint32) uint8 {
	cx.synchronise()
	return cx.read(addr)
}

// Write a byte to the chip's I/O window.
func (cx *Cx4) Write(addr uint32, data uint8) {
	cx.synchronise()
	cx.write(addr, data)
}

// Peek is the same as Read() but without clock synchronisation. It is
// intended for debuggers and other inspection tools.
func (cx *Cx4) Peek(addr uint32) uint8 {
	return cx.read(addr)
}

// Poke is the same as Write() but without clock synchronisation. Side effects
// of register writes still take place.
func (cx *Cx4) Poke(addr uint32, data uint8) {
	cx.write(addr, data)
}

func (cx *Cx4) read(addr uint32) uint8 {
	if isRegister(addr) {
		return cx.readRegister(registerAddress(addr))
	}
	return cx.readDRAM(addr)
}

func (cx *Cx4) write(addr uint32, data uint8) {
	if isRegister(addr) {
		cx.writeRegister(registerAddress(addr), data)
		return
	}
	cx.writeDRAM(addr, data)
}

func (cx *Cx4) readDRAM(addr uint32) uint8 {
	addr &= dramWindow - 1
	if addr >= DRAMSize {
		return 0
	}
	return cx.state.DRAM[addr]
}

func (cx *Cx4) writeDRAM(addr uint32, data uint8) {
	addr &= dramWindow - 1
	if addr >= DRAMSize {
		return
	}
	cx.state.DRAM[addr] = data
}

// PeekDRAM returns the byte at the offset in data RAM. The second return
// value is false if the offset is out of range.
func (cx *Cx4) PeekDRAM(offset int) (uint8, bool) {
	if offset < 0 || offset >= DRAMSize {
		return 0, false
	}
	return cx.state.DRAM[offset], true
}

// PokeDRAM changes the byte at the offset in data RAM. Offsets out of range
// are ignored.
func (cx *Cx4) PokeDRAM(offset int, data uint8) bool {
	if offset < 0 || offset >= DRAMSize {
		return false
	}
	cx.state.DRAM[offset] = data
	return true
}

// CacheBanks returns a copy of the two instruction cache banks.
func (cx *Cx4) CacheBanks() [2]CacheBank {
	return cx.state.Cache
}

// PC returns the program counter of the instruction pipeline.
func (cx *Cx4) PC() uint32 {
	return cx.state.PC
}

func (cx *Cx4) readRegister(addr uint32) uint8 {
	d := decodeRead(addr)
	regs := &cx.state.Registers

	switch d.reg {
	case regDMASource:
		return extractByte(regs.DMASource, d.slot)
	case regDMALength:
		return extractByte(uint32(regs.DMALength), d.slot)
	case regDMATarget:
		return extractByte(regs.DMATarget, d.slot)
	case regCachePreload:
		return regs.CachePreload
	case regProgramOffset:
		return extractByte(regs.ProgramOffset, d.slot)
	case regCacheLock:
		var v uint8
		if cx.state.Cache[0].Lock {
			v |= 0x01
		}
		if cx.state.Cache[1].Lock {
			v |= 0x02
		}
		return v
	case regPageNumber:
		return extractByte(uint32(regs.PageNumber), d.slot)
	case regProgramCounter:
		return regs.ProgramCounter
	case regSpeed:
		return regs.ROMSpeed<<4 | regs.RAMSpeed
	case regR1F51:
		return regs.R1F51
	case regR1F52:
		return regs.R1F52
	case regStatus:
		return cx.Status()
	case regVector:
		return regs.Vector[d.slot]
	case regGPR:
		i, b := gprIndex(d.slot)
		return extractByte(regs.GPR[i], b)
	}

	return 0
}

func (cx *Cx4) writeRegister(addr uint32, data uint8) {
	d := decodeWrite(addr)
	regs := &cx.state.Registers

	switch d.reg {
	case regDMASource:
		regs.DMASource = mergeByte(regs.DMASource, d.slot, data)
	case regDMALength:
		regs.DMALength = uint16(mergeByte(uint32(regs.DMALength), d.slot, data))
	case regDMATarget:
		regs.DMATarget = mergeByte(regs.DMATarget, d.slot, data)
		if d.slot == 2 {
			cx.armDMA()
		}
	case regCachePreload:
		cx.armCacheLoad(data)
	case regProgramOffset:
		regs.ProgramOffset = mergeByte(regs.ProgramOffset, d.slot, data)
	case regCacheLock:
		cx.setLocks(data)
	case regPageNumber:
		if d.slot == 1 {
			data &= 0x7f
		}
		regs.PageNumber = uint16(mergeByte(uint32(regs.PageNumber), d.slot, data))
	case regProgramCounter:
		regs.ProgramCounter = data
		cx.start()
	case regSpeed:
		regs.ROMSpeed = (data >> 4) & 0x07
		regs.RAMSpeed = data & 0x07
	case regR1F51:
		regs.R1F51 = data & 0x01
	case regR1F52:
		regs.R1F52 = data & 0x01
	case regHalt:
		cx.halt()
	case regSuspend:
		cx.suspend(32 * d.slot)
	case regResume:
		cx.resume()
	case regVector:
		regs.Vector[d.slot] = data
	case regGPR:
		i, b := gprIndex(d.slot)
		regs.GPR[i] = mergeByte(regs.GPR[i], b, data)
	}
}

// ROMRead is called by the host bus dispatcher for reads from cartridge ROM.
// The address is the offset into the ROM image.
//
// While the chip is busy, and is not the active context and is not
// suspended, it drives the bus itself. The vector table replaces the host
// CPU's interrupt vectors at offset 0x7fe0 and everything else reads as
// zero.
func (cx *Cx4) ROMRead(addr uint32) uint8 {
	if cx.sync.CoprocessorActive() || cx.state.Suspend || !cx.Busy() {
		return cx.cart.ReadROM(addr)
	}
	if addr&0xffffe0 == 0x007fe0 {
		return cx.state.Registers.Vector[addr&0x1f]
	}
	return 0
}

// Speed returns the number of wait states for an access to the address.
func (cx *Cx4) Speed(addr uint32) int {
	switch {
	case addr&0xf08000 == 0x700000:
		return int(cx.state.Registers.RAMSpeed)
	case addr&0x408000 == 0x008000:
		return int(cx.state.Registers.ROMSpeed)
	}
	return 0
}

// Step advances the chip by one cycle. A suspended chip does nothing except
// count down the suspension. Otherwise cache loads take priority over DMA
// transfers.
func (cx *Cx4) Step() {
	if cx.state.Suspend {
		if cx.state.SuspendCycles > 0 {
			cx.state.SuspendCycles--
			if cx.state.SuspendCycles == 0 {
				cx.state.Suspend = false
			}
		}
		return
	}

	switch {
	case cx.state.CacheLoading:
		cx.cacheStep()
	case cx.state.DMAPending:
		cx.dmaStep()
	}
}

// Describe returns a one line summary of the chip's run state.
func (cx *Cx4) Describe() string {
	return fmt.Sprintf("%s status=%02x", cx.state, cx.Status())
}
