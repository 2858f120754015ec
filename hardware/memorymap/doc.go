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

// Package memorymap facilitates the translation of host bus addresses to the
// area of the cartridge that responds to them, and to the primary address
// within that area.
//
// The Cx4 I/O window is repeated many times over the address space. The
// MapAddress() function should be used to produce a "mapped address"
// whenever an address is being presented to a user, or compared with the
// addresses of named registers.
//
//	ma, area := memorymap.MapAddress(address)
package memorymap
