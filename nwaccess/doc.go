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

// Package nwaccess implements the "emulator network access" protocol. The
// protocol allows external tools, such as memory viewers and trackers, to
// control the emulation and to read and write emulated memory over a TCP
// connection on the local host.
//
// A request is a single line of text, a command and its arguments, separated
// by a space:
//
//	COMMAND ARGS\n
//
// Commands that require data, which is only CORE_WRITE, follow the line with
// a binary block. A binary block is a zero byte, a big-endian 32bit length and
// then the data itself.
//
// Replies are either a binary block or a list of key:value pairs. A list is
// preceded by a single newline and terminated by an empty line:
//
//	\nkey:value\nkey:value\n\n
//
// Errors are lists with the key "error".
//
// The server never touches the emulation directly. Requests that need the
// emulation are sent as a Request to the emulation goroutine, which services
// them with Service() or ServiceWait(), and the connection waits for the
// reply.
package nwaccess
