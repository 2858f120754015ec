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

// Package scheduler keeps the host CPU clock and the Cx4 clock in step.
//
// The two clocks are represented by a single signed counter in the manner of
// a cooperative threading model. Time spent by the host increases the
// distance in one direction and time spent by the coprocessor increases it in
// the other. Each side scales its contribution by the other side's frequency
// so that the counter is exact without any division.
//
// A positive counter means the coprocessor is ahead of the host. A negative
// counter means the host is ahead.
//
// Which side is currently "active" decides which synchronisation primitive is
// used by the coprocessor when it is accessed from the bus. If the
// coprocessor is active it brings the host up to date with SynchroniseCPU().
// If the host is active then SynchroniseCoprocessor() runs the coprocessor
// forward until it has caught up with the host.
package scheduler
