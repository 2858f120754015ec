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

// Package monitor watches the Cx4 for changes in its run state. Each change
// is reported to a SystemStateRecorder as a labelled SystemState.
//
// The monitor does not hook into the chip. The Check() function should be
// called at whatever granularity is required, for example, after every
// debugger step.
package monitor

import (
	"github.com/jetsetilly/gophercx4/hardware/cx4"
)

// SystemState is a single labelled event.
type SystemState struct {
	Label string
	Group string
}

func (s SystemState) String() string {
	if s.Group == "" {
		return s.Label
	}
	return s.Group + ": " + s.Label
}

// SystemStateRecorder implementations receive the events found by the
// SystemMonitor.
type SystemStateRecorder interface {
	SystemStateRecord(SystemState) error
}

// the parts of the chip that are monitored
type snapshot struct {
	running   bool
	suspended bool
	dma       bool
	cache     bool
}

// SystemMonitor is a low level shim into the emulation.
type SystemMonitor struct {
	Cx4 *cx4.Cx4
	Rec SystemStateRecorder

	last snapshot
}

// NewSystemMonitor is the preferred method of initialisation for the
// SystemMonitor type.
func NewSystemMonitor(cx *cx4.Cx4, rec SystemStateRecorder) *SystemMonitor {
	mon := &SystemMonitor{
		Cx4: cx,
		Rec: rec,
	}
	mon.Reset()
	return mon
}

// Reset the monitor so that the current state of the chip is not reported as
// a change.
func (mon *SystemMonitor) Reset() {
	mon.last = mon.current()
}

func (mon *SystemMonitor) current() snapshot {
	return snapshot{
		running:   mon.Cx4.Running(),
		suspended: mon.Cx4.Suspended(),
		dma:       mon.Cx4.DMAPending(),
		cache:     mon.Cx4.CacheLoading(),
	}
}

// Check compares the current state of the chip with the state at the
// previous Check() and records any changes.
func (mon *SystemMonitor) Check() error {
	cur := mon.current()
	defer func() {
		mon.last = cur
	}()

	record := func(changed bool, now bool, group string, on string, off string) error {
		if !changed {
			return nil
		}
		meta := SystemState{Group: group, Label: off}
		if now {
			meta.Label = on
		}
		return mon.Rec.SystemStateRecord(meta)
	}

	if err := record(cur.running != mon.last.running, cur.running, "run", "started", "halted"); err != nil {
		return err
	}
	if err := record(cur.suspended != mon.last.suspended, cur.suspended, "run", "suspended", "resumed"); err != nil {
		return err
	}
	if err := record(cur.cache != mon.last.cache, cur.cache, "cache", "loading", "loaded"); err != nil {
		return err
	}
	if err := record(cur.dma != mon.last.dma, cur.dma, "dma", "pending", "complete"); err != nil {
		return err
	}

	return nil
}
