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

// Package logger is the central logging facility for the emulation. Entries
// are tagged and held in memory. The log can be written in full to an
// io.Writer or tailed. Repeated entries are collapsed into a single entry
// with a repeat count.
//
// Logging requires a Permission. The environment.Environment type implements
// the Permission interface so that only the main emulation writes to the log.
// Use the Allow value when there is no environment to hand.
package logger
