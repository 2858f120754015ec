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

// Package cx4 implements the bus visible side of the Cx4 coprocessor found in
// some cartridges. The chip is a Hitachi HG51B core with 3072 bytes of data
// RAM, two banks of instruction cache, a DMA engine and a block of memory
// mapped registers.
//
// The host bus dispatcher calls Read() and Write() for addresses in the
// chip's I/O window and ROMRead() for addresses in cartridge ROM. Both Read()
// and Write() synchronise the chip clock with the host clock before the
// access. Peek() and Poke() are the debugging equivalents and do not
// synchronise.
//
// The I/O window is divided into data RAM and register space:
//
//	(addr & 0x0c00) != 0x0c00	data RAM (addr & 0xfff), 0x000 to 0xbff
//	(addr & 0x0c00) == 0x0c00	registers (0x7c00 | (addr & 0x3ff))
//
// The registers are decoded through two lookup tables, one for reads and one
// for writes. Addresses that are not in a table are unmapped; they read as
// zero and writes to them are ignored.
//
// Some register writes are only honoured while the chip is halted. Writes
// that arrive while the chip is running are ignored, which is what the
// hardware does.
//
// The instruction pipeline is not emulated. While running the chip consumes
// cycles but does not execute instructions. DMA transfers and cache loads
// are emulated one byte per chip cycle.
package cx4
