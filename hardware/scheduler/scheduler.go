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

package scheduler

import (
	"fmt"
)

// Context identifies which side of the bus is currently active.
type Context int

// List of valid Context values.
const (
	CPU Context = iota
	Coprocessor
)

func (c Context) String() string {
	switch c {
	case CPU:
		return "CPU"
	case Coprocessor:
		return "Coprocessor"
	}
	return "unknown"
}

// Timing is the part of the scheduler that is saved with a snapshot.
type Timing struct {
	// distance between the two clocks. positive when the coprocessor is ahead
	Clock int64

	// total number of cycles executed by each side since reset
	CPUCycles         int64
	CoprocessorCycles int64
}

// Scheduler coordinates the host CPU and the coprocessor.
type Scheduler struct {
	Timing

	cpuFreq  int64
	chipFreq int64

	active Context

	// the function called for every coprocessor cycle
	step func()
}

func (s *Scheduler) String() string {
	return fmt.Sprintf("cpu=%d cx4=%d clock=%d active=%s", s.CPUCycles, s.CoprocessorCycles, s.Clock, s.active)
}

// NewScheduler is the preferred method of initialisation for the Scheduler
// type. The frequencies are in Hz.
func NewScheduler(cpuFreq int64, chipFreq int64) *Scheduler {
	return &Scheduler{
		cpuFreq:  cpuFreq,
		chipFreq: chipFreq,
	}
}

// SetCPUFrequency changes the frequency of the host CPU clock. The
// difference between the clocks is not rescaled so it should be called only
// immediately after a reset.
func (s *Scheduler) SetCPUFrequency(freq int64) {
	s.cpuFreq = freq
}

// CPUFrequency returns the frequency of the host CPU clock in Hz.
func (s *Scheduler) CPUFrequency() int64 {
	return s.cpuFreq
}

// AttachCoprocessor sets the function that is called for every cycle of the
// coprocessor.
func (s *Scheduler) AttachCoprocessor(step func()) {
	s.step = step
}

// Reset both clocks.
func (s *Scheduler) Reset() {
	s.Timing = Timing{}
	s.active = CPU
}

// Ticks implements the random.Clock interface. The number returned is the
// number of coprocessor cycles since reset.
func (s *Scheduler) Ticks() int64 {
	return s.CoprocessorCycles
}

// Active returns the context that currently owns the bus.
func (s *Scheduler) Active() Context {
	return s.active
}

// CoprocessorActive returns true if the coprocessor currently owns the bus.
func (s *Scheduler) CoprocessorActive() bool {
	return s.active == Coprocessor
}

// CPUStep records that the host CPU has run for the specified number of
// master clock cycles.
func (s *Scheduler) CPUStep(cycles int64) {
	s.CPUCycles += cycles
	s.Clock -= cycles * s.chipFreq
}

// CoprocessorStep records that the coprocessor has run for the specified
// number of its own cycles.
func (s *Scheduler) CoprocessorStep(cycles int64) {
	s.CoprocessorCycles += cycles
	s.Clock += cycles * s.cpuFreq
}

// SynchroniseCPU brings the host clock level with the coprocessor clock. The
// host has no work of its own to do while catching up so the host time is
// simply advanced.
func (s *Scheduler) SynchroniseCPU() {
	if s.Clock <= 0 {
		return
	}
	// round up so that the host is not left behind by a fraction of a cycle
	s.CPUStep((s.Clock + s.chipFreq - 1) / s.chipFreq)
}

// SynchroniseCoprocessor runs the coprocessor until it has caught up with the
// host CPU. The number of coprocessor cycles run is fixed before the first
// cycle so the loop is bounded even if the step function misbehaves.
func (s *Scheduler) SynchroniseCoprocessor() {
	if s.Clock >= 0 {
		return
	}

	n := (-s.Clock + s.cpuFreq - 1) / s.cpuFreq

	prev := s.active
	s.active = Coprocessor
	defer func() {
		s.active = prev
	}()

	for i := int64(0); i < n; i++ {
		if s.step != nil {
			s.step()
		}
		s.CoprocessorStep(1)
	}
}

// RunCoprocessor runs the coprocessor for the specified number of cycles as
// the active context, after which the host is synchronised with it.
func (s *Scheduler) RunCoprocessor(cycles int64) {
	prev := s.active
	s.active = Coprocessor
	for i := int64(0); i < cycles; i++ {
		if s.step != nil {
			s.step()
		}
		s.CoprocessorStep(1)
	}
	s.SynchroniseCPU()
	s.active = prev
}
