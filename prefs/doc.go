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

// Package prefs facilitates the storage of preference values on disk. Values
// are registered with a Disk instance under a key and the Disk can then be
// saved and loaded as required.
//
// The file format is a simple key/value list, one entry per line:
//
//	cx4.instantdma :: false
//	nwaccess.port :: 65400
//
// Entries in the file that are not registered with a Disk instance are
// preserved when that Disk is saved. This means that more than one Disk can
// share the same file.
//
// Values can also be specified on the command line, as a single string of
// key/value pairs separated by semi-colons. See PushCommandLineStack(). Values
// on the command line stack take priority over values loaded from disk.
package prefs
