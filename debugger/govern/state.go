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

package govern

// State indicates the emulation's state.
type State int

// List of possible emulation states.
//
// Initialising can be used when reinitialising the emulator. for example,
// when a new cartridge is being inserted.
//
// Stopped is the state after the emulation has been powered off. unlike
// Paused, a stopped emulation must be reset before it can run again.
//
// Ending is the state once the emulation loop has been asked to quit.
const (
	EmulatorStart State = iota
	Initialising
	Paused
	Stepping
	Running
	Stopped
	Ending
)

func (s State) String() string {
	switch s {
	case EmulatorStart:
		return "EmulatorStart"
	case Initialising:
		return "Initialising"
	case Paused:
		return "Paused"
	case Stepping:
		return "Stepping"
	case Running:
		return "Running"
	case Stopped:
		return "Stopped"
	case Ending:
		return "Ending"
	}

	return ""
}

// Active returns true if the state is one in which the emulation loop should
// keep going.
func (s State) Active() bool {
	return s != Ending && s != Initialising
}
