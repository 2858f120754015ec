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
	"strconv"
	"strings"

	"github.com/jetsetilly/gophercx4/curated"
)

// NumGPR is the number of general purpose registers.
const NumGPR = 16

// VectorLen is the number of bytes in the vector table.
const VectorLen = 32

// Registers is the externally visible configuration of the chip.
type Registers struct {
	// 24-bit
	DMASource uint32
	DMALength uint16
	DMATarget uint32

	// bank of the instruction cache to use for the next cache load. 1-bit
	CachePreload uint8

	// 24-bit address of the program in cartridge ROM
	ProgramOffset uint32

	// 15-bit
	PageNumber     uint16
	ProgramCounter uint8

	// 3-bit values. the number of wait states for ROM and RAM access
	ROMSpeed uint8
	RAMSpeed uint8

	// 1-bit flags of unknown purpose
	R1F51 uint8
	R1F52 uint8

	Vector [VectorLen]uint8

	// 24-bit
	GPR [NumGPR]uint32
}

func (r Registers) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("DMA: src=%06x len=%04x dst=%06x\n", r.DMASource, r.DMALength, r.DMATarget))
	s.WriteString(fmt.Sprintf("Program: offset=%06x page=%04x pc=%02x preload=%d\n", r.ProgramOffset, r.PageNumber, r.ProgramCounter, r.CachePreload))
	s.WriteString(fmt.Sprintf("Speed: rom=%d ram=%d  r1f51=%d r1f52=%d\n", r.ROMSpeed, r.RAMSpeed, r.R1F51, r.R1F52))

	s.WriteString("Vector:")
	for i, v := range r.Vector {
		if i%16 == 0 {
			s.WriteString("\n ")
		}
		s.WriteString(fmt.Sprintf(" %02x", v))
	}
	s.WriteString("\n")

	s.WriteString("GPR:")
	for i, v := range r.GPR {
		if i%4 == 0 {
			s.WriteString("\n ")
		}
		s.WriteString(fmt.Sprintf(" r%-2d=%06x", i, v))
	}
	s.WriteString("\n")

	return s.String()
}

// mergeByte replaces one byte of a multi-byte value.
func mergeByte(v uint32, slot int, data uint8) uint32 {
	shift := uint(slot) * 8
	return v&^(0xff<<shift) | uint32(data)<<shift
}

// extractByte returns one byte of a multi-byte value.
func extractByte(v uint32, slot int) uint8 {
	return uint8(v >> (uint(slot) * 8))
}

// gprIndex returns the index and byte slot of a GPR address. The o argument
// is the value of (addr & 0x3f).
func gprIndex(o int) (int, int) {
	return o / 3, o % 3
}

// Sentinal error patterns.
const (
	UnknownRegister = "cx4: unknown register (%s)"
	BadRegisterData = "cx4: bad register data for %s (%s)"
)

// GetRegisters returns a copy of the chip's registers.
func (cx *Cx4) GetRegisters() Registers {
	return cx.state.Registers
}

// PutRegister changes a register value directly, without any of the side
// effects that writing the register through the bus would have.
//
// Register specification is divided with the "::" string. The data string is
// a hexadecimal value except for the lock registers, which take "true" or
// "false".
//
//	dma::source
//	dma::length
//	dma::target
//	cache::preload
//	cache::lock::N		N is 0 or 1
//	program::offset
//	program::page
//	program::counter
//	speed::rom
//	speed::ram
//	r1f51
//	r1f52
//	vector::N		N is 0 to 31
//	gpr::N			N is 0 to 15
func (cx *Cx4) PutRegister(register string, data string) error {
	data = strings.TrimSpace(data)

	var lock bool
	var d uint64
	var err error

	r := strings.Split(strings.ToLower(strings.TrimSpace(register)), "::")

	if r[0] == "cache" && len(r) == 3 && r[1] == "lock" {
		lock, err = strconv.ParseBool(data)
	} else {
		d, err = strconv.ParseUint(strings.TrimPrefix(data, "$"), 16, 32)
	}
	if err != nil {
		return curated.Errorf(BadRegisterData, register, data)
	}

	index := func(max int) (int, error) {
		if len(r) != 2 {
			return 0, curated.Errorf(UnknownRegister, register)
		}
		n, err := strconv.Atoi(r[1])
		if err != nil || n < 0 || n >= max {
			return 0, curated.Errorf(UnknownRegister, register)
		}
		return n, nil
	}

	regs := &cx.state.Registers

	switch strings.Join(r, "::") {
	case "dma::source":
		regs.DMASource = uint32(d) & 0xffffff
	case "dma::length":
		regs.DMALength = uint16(d)
	case "dma::target":
		regs.DMATarget = uint32(d) & 0xffffff
	case "cache::preload":
		regs.CachePreload = uint8(d) & 0x01
	case "cache::lock::0":
		cx.state.Cache[0].Lock = lock
	case "cache::lock::1":
		cx.state.Cache[1].Lock = lock
	case "program::offset":
		regs.ProgramOffset = uint32(d) & 0xffffff
	case "program::page":
		regs.PageNumber = uint16(d) & 0x7fff
	case "program::counter":
		regs.ProgramCounter = uint8(d)
	case "speed::rom":
		regs.ROMSpeed = uint8(d) & 0x07
	case "speed::ram":
		regs.RAMSpeed = uint8(d) & 0x07
	case "r1f51":
		regs.R1F51 = uint8(d) & 0x01
	case "r1f52":
		regs.R1F52 = uint8(d) & 0x01
	default:
		switch r[0] {
		case "vector":
			n, err := index(VectorLen)
			if err != nil {
				return err
			}
			regs.Vector[n] = uint8(d)
		case "gpr":
			n, err := index(NumGPR)
			if err != nil {
				return err
			}
			regs.GPR[n] = uint32(d) & 0xffffff
		default:
			return curated.Errorf(UnknownRegister, register)
		}
	}

	return nil
}
