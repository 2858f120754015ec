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

// busRead reads a byte on behalf of the DMA engine or the cache loader.
// Addresses in the chip's own data RAM window do not go out to the
// cartridge.
func (cx *Cx4) busRead(addr uint32) uint8 {
	addr &= 0xffffff
	if IsIO(addr) {
		if isRegister(addr) {
			return 0
		}
		return cx.readDRAM(addr)
	}
	return cx.cart.Read(addr)
}

// busWrite is the write equivalent of busRead().
func (cx *Cx4) busWrite(addr uint32, data uint8) {
	addr &= 0xffffff
	if IsIO(addr) {
		if !isRegister(addr) {
			cx.writeDRAM(addr, data)
		}
		return
	}
	cx.cart.Write(addr, data)
}

// dmaStep transfers one byte of a pending DMA, or the entire transfer if the
// instant DMA preference is set.
func (cx *Cx4) dmaStep() {
	regs := &cx.state.Registers
	n := int(regs.DMALength)

	for cx.state.DMAProgress < n {
		i := uint32(cx.state.DMAProgress)
		cx.busWrite(regs.DMATarget+i, cx.busRead(regs.DMASource+i))
		cx.state.DMAProgress++
		if !cx.instant() {
			break
		}
	}

	if cx.state.DMAProgress >= n {
		cx.state.DMAPending = false
		cx.state.DMAProgress = 0
		logger.Log(cx.env, "cx4", "DMA complete")
	}
}
