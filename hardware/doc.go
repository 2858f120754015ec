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

// Package hardware is the base package for the emulated system. The System
// type ties together the coprocessor, the cartridge it sits on and the clock
// scheduler that coordinates the coprocessor with the host CPU.
//
// There is no host CPU emulation. The host bus is driven through the Read()
// and Write() functions and host time is advanced with the Step() function.
// A debugger or script can stand in for the host CPU in this way.
//
// Address decoding on the host bus is:
//
//	$00-3f,80-bf:6000-7fff	Cx4 I/O window (data RAM and registers)
//	$70-77:0000-7fff	cartridge RAM
//	$xx:8000-ffff		cartridge ROM (through the Cx4)
//
// Everything else reads as zero and writes are ignored.
package hardware
