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

package memorymap

// Area is the part of the cartridge that responds to an address.
type Area int

func (a Area) String() string {
	switch a {
	case Cx4DRAM:
		return "Cx4 DRAM"
	case Cx4Registers:
		return "Cx4 Registers"
	case CartROM:
		return "Cartridge ROM"
	case CartRAM:
		return "Cartridge RAM"
	}

	return "undefined"
}

// List of valid Area values.
const (
	Undefined Area = iota
	Cx4DRAM
	Cx4Registers
	CartROM
	CartRAM
)

// Primary addresses of the Cx4 I/O window.
const (
	OriginCx4DRAM      = uint32(0x6000)
	MemtopCx4DRAM      = uint32(0x6bff)
	OriginCx4Registers = uint32(0x7c00)
	MemtopCx4Registers = uint32(0x7fff)
)

// Memtop is the highest address on the host bus.
const Memtop = uint32(0xffffff)

// MapAddress returns the primary address and the area of a host bus address.
func MapAddress(address uint32) (uint32, Area) {
	address &= Memtop

	// note that the order of these filters is important

	// the Cx4 I/O window is in the lower half of banks $00-$3f and $80-$bf
	if address&0x40e000 == 0x6000 {
		if address&0x0c00 == 0x0c00 {
			return OriginCx4Registers | address&0x03ff, Cx4Registers
		}
		return OriginCx4DRAM | address&0x0fff, Cx4DRAM
	}

	if address&0xf08000 == 0x700000 {
		return address, CartRAM
	}

	// ROM is mirrored in the upper half of all banks. the banks from $80
	// onwards mirror the first 128 banks
	if address&0x8000 == 0x8000 {
		return address & 0x7fffff, CartROM
	}

	return address, Undefined
}

// IsArea returns true if the address is in the area.
func IsArea(address uint32, area Area) bool {
	_, a := MapAddress(address)
	return area == a
}
