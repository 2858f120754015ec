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

// Package cartridge implements the storage side of a LoROM cartridge: the ROM
// image and the battery backed RAM. The Cx4 chip itself is implemented in
// the cx4 package and sits alongside the cartridge on the host bus.
//
// Addresses are 24-bit host bus addresses. ROM is visible in the upper half of
// every bank:
//
//	offset = ((bank & 0x7f) << 15) | (addr & 0x7fff)
//
// The offset is mirrored to the size of the ROM image. Cartridge RAM is
// visible in the lower half of banks $70 to $77, again mirrored to the size of
// the RAM.
package cartridge
