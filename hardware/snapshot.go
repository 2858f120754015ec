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

package hardware

import (
	"github.com/jetsetilly/gophercx4/hardware/cartridge"
	"github.com/jetsetilly/gophercx4/hardware/cx4"
	"github.com/jetsetilly/gophercx4/hardware/scheduler"
)

// State stores the System sub-systems. It is produced by the Snapshot()
// function and can be restored with the Plumb() function.
//
// The cartridge ROM is not part of the snapshot. Cart is nil if there was no
// cartridge attached when the snapshot was taken.
type State struct {
	Cx4    *cx4.State
	Cart   *cartridge.State
	Timing scheduler.Timing
}

// Snapshot creates a copy of a previously snapshotted State.
func (s *State) Snapshot() *State {
	n := &State{
		Cx4:    s.Cx4.Snapshot(),
		Timing: s.Timing,
	}
	if s.Cart != nil {
		n.Cart = s.Cart.Snapshot()
	}
	return n
}

// Snapshot the state of the System sub-systems.
func (sys *System) Snapshot() *State {
	s := &State{
		Cx4:    sys.Cx4.Snapshot(),
		Timing: sys.Sched.Timing,
	}
	if sys.Cart != nil {
		s.Cart = sys.Cart.Snapshot()
	}
	return s
}

// Plumb a previously snapshotted State. The cartridge state is only plumbed
// if a cartridge is attached and the State has a cartridge state.
func (sys *System) Plumb(state *State) {
	if state == nil {
		panic("hardware: cannot plumb in a nil state")
	}

	// take another snapshot of the state before plumbing. we don't want the
	// machine to change what we have stored in our state
	state = state.Snapshot()

	sys.Cx4.Plumb(state.Cx4)
	sys.Sched.Timing = state.Timing
	if sys.Cart != nil && state.Cart != nil {
		sys.Cart.Plumb(state.Cart)
	}
}
