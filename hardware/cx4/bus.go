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

// Synchroniser is the clock coordination required by the chip. The chip
// calls SynchroniseCPU() before a bus access when it is the active context
// and SynchroniseCoprocessor() otherwise.
type Synchroniser interface {
	CoprocessorActive() bool
	SynchroniseCPU()
	SynchroniseCoprocessor()
}

// CartBus is the cartridge side of the host bus as seen by the chip. DMA
// transfers and cache loads use host bus addresses. ReadROM() takes an
// offset into the ROM image.
type CartBus interface {
	Read(addr uint32) uint8
	Write(addr uint32, data uint8)
	ReadROM(offset uint32) uint8
}

// IsIO returns true if the host bus address is in the chip's I/O window.
func IsIO(addr uint32) bool {
	return addr&0x40e000 == 0x6000
}

// isRegister returns true if the address in the I/O window is in register
// space.
func isRegister(addr uint32) bool {
	return addr&0x0c00 == 0x0c00
}

// registerAddress normalises an address in register space.
func registerAddress(addr uint32) uint32 {
	return 0x7c00 | addr&0x03ff
}
