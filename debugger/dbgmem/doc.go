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

// Package dbgmem sits between the debugger and the real system memory. It
// allows addresses to be specified by symbol as well as numerically and
// provides the AddressInfo type for easier presentation of an address and
// the data found there.
//
// Peeks and pokes go through the non-synchronising paths of the host bus and
// so do not advance either clock. Pokes to the Cx4 registers still have
// their side effects.
package dbgmem
