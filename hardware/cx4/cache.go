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

// cacheAddress returns the bus address of the current page of the program.
func (cx *Cx4) cacheAddress() uint32 {
	regs := &cx.state.Registers
	return (regs.ProgramOffset + uint32(regs.PageNumber)*PageSize) & 0xffffff
}

// cacheStep loads one byte of a pending cache load into the bank selected by
// the preload register, or the entire page if the instant DMA preference is
// set. a locked bank is left untouched and the load completes immediately.
func (cx *Cx4) cacheStep() {
	regs := &cx.state.Registers
	bank := &cx.state.Cache[regs.CachePreload&0x01]

	if bank.Lock {
		cx.state.CacheLoading = false
		cx.state.CacheProgress = 0
		logger.Logf(cx.env, "cx4", "cache bank %d is locked: load skipped", regs.CachePreload&0x01)
		return
	}

	base := cx.cacheAddress()

	for cx.state.CacheProgress < PageSize {
		i := cx.state.CacheProgress
		v := uint16(cx.busRead(base + uint32(i)))

		// words are little-endian
		w := &bank.Data[i/2]
		if i%2 == 0 {
			*w = *w&0xff00 | v
		} else {
			*w = *w&0x00ff | v<<8
		}

		cx.state.CacheProgress++
		if !cx.instant() {
			break
		}
	}

	if cx.state.CacheProgress >= PageSize {
		bank.Page = regs.PageNumber
		bank.Valid = true
		cx.state.CacheLoading = false
		cx.state.CacheProgress = 0
		logger.Logf(cx.env, "cx4", "cache bank %d loaded with page %04x", regs.CachePreload&0x01, regs.PageNumber)
	}
}
