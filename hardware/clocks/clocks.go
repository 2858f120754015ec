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

// Package clocks defines the basic clock rates used by the emulation. Values
// are in Hz.
package clocks

// Master clock rates of the host system.
const (
	NTSC = 21477272
	PAL  = 21281370
)

// Cx4 is the clock rate of the Cx4 coprocessor.
const Cx4 = 20000000
