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

package cx4

import (
	"fmt"
	"strings"
)

// DRAMSize is the size of the chip's data RAM in bytes.
const DRAMSize = 0xc00

// the size of the data RAM window on the bus. addresses in the window beyond
// DRAMSize are unmapped
const dramWindow = 0x1000

// CacheWords is the number of 16-bit words in a cache bank.
const CacheWords = 256

// PageSize is the number of bytes loaded into a cache bank by a cache load.
const PageSize = CacheWords * 2

// CacheBank is one of the two instruction cache banks.
type CacheBank struct {
	// a locked bank is not overwritten by a cache load
	Lock bool

	// the program page held by the bank. only meaningful if Valid is true
	Page  uint16
	Valid bool

	Data [CacheWords]uint16
}

func (b CacheBank) String() string {
	if !b.Valid {
		return fmt.Sprintf("lock=%v empty", b.Lock)
	}
	return fmt.Sprintf("lock=%v page=%04x", b.Lock, b.Page)
}

// State is the entire mutable state of the chip. Snapshot() creates an
// independent copy.
type State struct {
	Registers Registers

	DRAM [DRAMSize]uint8

	Cache [2]CacheBank

	// run state. the chip is halted on reset and starts running when the
	// program counter register is written while halted
	Halt bool

	// program counter of the instruction pipeline. pc = page * 256 + counter
	PC uint32

	// the cache bank currently used by the instruction pipeline
	CachePage int

	// suspended by the host. a non-zero SuspendCycles is the number of cycles
	// remaining before the chip resumes itself. a zero value means the
	// suspension lasts until the resume register is written
	Suspend       bool
	SuspendCycles int

	// a DMA transfer has been triggered and not yet completed. DMAProgress is
	// the number of bytes transferred so far
	DMAPending  bool
	DMAProgress int

	// a cache load has been triggered and not yet completed. CacheProgress is
	// the number of bytes loaded so far
	CacheLoading  bool
	CacheProgress int
}

// newState returns a State in its reset condition.
func newState() *State {
	return &State{
		Halt: true,
	}
}

// Snapshot creates a copy of the State. Every field is a value type so the
// copy shares nothing with the original.
func (s *State) Snapshot() *State {
	n := *s
	return &n
}

func (s *State) String() string {
	b := strings.Builder{}
	if s.Halt {
		b.WriteString("halted")
	} else {
		b.WriteString(fmt.Sprintf("running pc=%06x", s.PC))
	}
	if s.Suspend {
		if s.SuspendCycles > 0 {
			b.WriteString(fmt.Sprintf(" suspended (%d)", s.SuspendCycles))
		} else {
			b.WriteString(" suspended")
		}
	}
	if s.DMAPending {
		b.WriteString(fmt.Sprintf(" dma=%d/%d", s.DMAProgress, s.Registers.DMALength))
	}
	if s.CacheLoading {
		b.WriteString(fmt.Sprintf(" cache=%d/%d", s.CacheProgress, PageSize))
	}
	return b.String()
}
