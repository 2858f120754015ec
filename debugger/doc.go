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

// Package debugger implements a line based monitor for the emulated system.
// Features include:
//
//	- memory peek and poke, with register symbols
//	- synchronising host bus reads and writes
//	- host clock and Cx4 clock stepping
//	- inspection of registers, data RAM and the instruction cache
//	- scripting, both recorded command scripts and Starlark scripts
//	- dot graph output of the chip state
//
// Initialisation of the debugger is done with the NewDebugger() function.
//
//	dbg, _ := debugger.NewDebugger(sys, term)
//
// Interaction with the debugger is through a terminal. The Terminal
// interface is defined in the terminal package. The colorterm and plainterm
// sub-packages provide good reference implementations.
//
// Once initialised, the debugger can be started with the Start() function.
//
//	dbg.Start(initScript)
//
// The initScript is a script previously created either by the script.Scribe
// type or by hand. It can be the empty string.
package debugger
