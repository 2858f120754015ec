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

// Package scripting runs Starlark scripts against the emulated system. The
// script stands in for the host CPU and drives the host bus through a small
// set of builtin functions:
//
//	read(addr)		synchronising read of the host bus
//	write(addr, data)	synchronising write to the host bus
//	peek(addr)		read without synchronisation
//	poke(addr, data)	write without synchronisation
//	speed(addr)		wait states for an access to the address
//	step(cycles)		advance the host clock by master clock cycles
//	run(cycles)		run the Cx4 for a number of its own cycles
//	register(name, value)	set a Cx4 register by name
//	halted()		true if the Cx4 is halted
//	busy()			true if the Cx4 is busy
//	log(message)		add an entry to the log
//
// The standard print() function writes to the output supplied to Run().
package scripting
