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
	"github.com/jetsetilly/gophercx4/logger"
)

// bits in the status byte
const (
	statusBusy    = 0x80
	statusRunning = 0x40
	statusHalt    = 0x02
	statusSuspend = 0x01
)

// Halted returns true if the chip is halted.
func (cx *Cx4) Halted() bool {
	return cx.state.Halt
}

// Running returns true if the chip is running. The chip is running whenever
// it is not halted.
func (cx *Cx4) Running() bool {
	return !cx.state.Halt
}

// Suspended returns true if the chip has been suspended by the host.
func (cx *Cx4) Suspended() bool {
	return cx.state.Suspend
}

// Busy returns true if the chip is running or if it has a DMA transfer or a
// cache load outstanding.
func (cx *Cx4) Busy() bool {
	return cx.Running() || cx.state.DMAPending || cx.state.CacheLoading
}

// DMAPending returns true if a DMA transfer is outstanding.
func (cx *Cx4) DMAPending() bool {
	return cx.state.DMAPending
}

// CacheLoading returns true if a cache load is outstanding.
func (cx *Cx4) CacheLoading() bool {
	return cx.state.CacheLoading
}

// Status returns the value of the status byte.
func (cx *Cx4) Status() uint8 {
	var v uint8
	if cx.Busy() {
		v |= statusBusy
	}
	if cx.Running() {
		v |= statusRunning
	}
	if cx.state.Halt {
		v |= statusHalt
	}
	if cx.state.Suspend {
		v |= statusSuspend
	}
	return v
}

// the functions below are the only places where the run state changes. the
// functions that are only valid while halted return false, and do nothing,
// if the chip is running

// start the chip running from the current page number and program counter.
func (cx *Cx4) start() bool {
	if !cx.state.Halt {
		logger.Log(cx.env, "cx4", "program counter write while running: not starting")
		return false
	}
	regs := &cx.state.Registers
	cx.state.PC = uint32(regs.PageNumber)*256 + uint32(regs.ProgramCounter)
	cx.state.Halt = false
	cx.state.CachePage = 0
	logger.Logf(cx.env, "cx4", "running from %06x", cx.state.PC)
	return true
}

// halt the chip. halting is always possible.
func (cx *Cx4) halt() {
	if !cx.state.Halt {
		logger.Logf(cx.env, "cx4", "halted at %06x", cx.state.PC)
	}
	cx.state.Halt = true
}

// armDMA makes a DMA transfer pending using the current DMA registers.
func (cx *Cx4) armDMA() bool {
	if !cx.state.Halt {
		logger.Log(cx.env, "cx4", "DMA trigger while running: ignored")
		return false
	}
	regs := &cx.state.Registers
	cx.state.DMAPending = true
	cx.state.DMAProgress = 0
	logger.Logf(cx.env, "cx4", "DMA %06x -> %06x (%d bytes)", regs.DMASource, regs.DMATarget, regs.DMALength)
	return true
}

// armCacheLoad selects the cache bank and makes a cache load pending.
func (cx *Cx4) armCacheLoad(data uint8) bool {
	if !cx.state.Halt {
		logger.Log(cx.env, "cx4", "cache preload while running: ignored")
		return false
	}
	cx.state.Registers.CachePreload = data & 0x01
	cx.state.CacheLoading = true
	cx.state.CacheProgress = 0
	logger.Logf(cx.env, "cx4", "cache load of page %04x into bank %d", cx.state.Registers.PageNumber, data&0x01)
	return true
}

// setLocks changes the lock bits of the two cache banks.
func (cx *Cx4) setLocks(data uint8) bool {
	if !cx.state.Halt {
		logger.Log(cx.env, "cx4", "cache lock while running: ignored")
		return false
	}
	cx.state.Cache[0].Lock = data&0x01 == 0x01
	cx.state.Cache[1].Lock = data&0x02 == 0x02
	return true
}

// suspend the chip. a duration of zero suspends the chip until resume() is
// called.
func (cx *Cx4) suspend(duration int) {
	cx.state.Suspend = true
	cx.state.SuspendCycles = duration
}

func (cx *Cx4) resume() {
	cx.state.Suspend = false
	cx.state.SuspendCycles = 0
}
