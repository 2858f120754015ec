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
	"github.com/jetsetilly/gophercx4/curated"
	"github.com/jetsetilly/gophercx4/debugger/govern"
)

// ScanlineCycles is the number of master clock cycles in one scanline of the
// host system. It is the unit of time used by the Run() function.
const ScanlineCycles = 1364

// ScanlinesPerFrame is the number of scanlines in one NTSC frame.
const ScanlinesPerFrame = 262

// Step advances the host clock by the number of master clock cycles. The Cx4
// is then brought up to date with the host.
func (sys *System) Step(cycles int64) {
	sys.Sched.CPUStep(cycles)
	sys.Sched.SynchroniseCoprocessor()
}

// RunCoprocessor runs the Cx4 for the number of Cx4 cycles, after which the
// host clock is brought up to date with it.
func (sys *System) RunCoprocessor(cycles int64) {
	sys.Sched.RunCoprocessor(cycles)
}

// Run sets the emulation running as quickly as possible. The continueCheck()
// function is called after every scanline and the state it returns decides
// what happens next.
func (sys *System) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state.Active() {
		switch state {
		case govern.Running:
			sys.Step(ScanlineCycles)
		case govern.Paused, govern.Stopped:
		default:
			return curated.Errorf("hardware: unsupported emulation state (%s) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForFrameCount runs the emulation for the specified number of frames.
// Useful for tests and for measuring performance.
func (sys *System) RunForFrameCount(numFrames int, continueCheck func(frame int) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running
	for frame := 0; frame < numFrames && state != govern.Ending; frame++ {
		for i := 0; i < ScanlinesPerFrame; i++ {
			sys.Step(ScanlineCycles)
		}

		state, err = continueCheck(frame)
		if err != nil {
			return err
		}
	}

	return nil
}
