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
)

// register identifies the target of a decoded register address.
type register int

const (
	regNone register = iota
	regDMASource
	regDMALength
	regDMATarget
	regCachePreload
	regProgramOffset
	regCacheLock
	regPageNumber
	regProgramCounter
	regSpeed
	regR1F51
	regR1F52
	regStatus
	regHalt
	regSuspend
	regResume
	regVector
	regGPR
)

// decoded is an entry in a lookup table. The meaning of slot depends on the
// register. For multi-byte fields it is the byte number. For the vector table
// and the GPRs it is the value of (addr & 0x1f) and (addr & 0x3f)
// respectively. For the suspend register it is the distance from the first
// suspend address.
type decoded struct {
	reg  register
	slot int
}

// HotspotAction describes the purpose of a register address.
type HotspotAction int

// List of valid HotspotAction values.
const (
	// the address reads or writes part of a register value
	HotspotRegister HotspotAction = iota

	// writing to the address has an effect beyond changing a register
	// value. for example, starting a DMA transfer
	HotspotFunction

	// reading the address returns the status byte
	HotspotStatus
)

func (a HotspotAction) String() string {
	switch a {
	case HotspotRegister:
		return "register"
	case HotspotFunction:
		return "function"
	case HotspotStatus:
		return "status"
	}
	return "unknown"
}

// Hotspot details the name and purpose of a register address.
type Hotspot struct {
	Symbol string
	Action HotspotAction
}

// the lookup tables are indexed by (addr & 0x3ff) of the register address
const tableSize = 0x400

var readTable [tableSize]decoded
var writeTable [tableSize]decoded

var readHotspots = make(map[uint32]Hotspot)
var writeHotspots = make(map[uint32]Hotspot)

func add(table *[tableSize]decoded, hotspots map[uint32]Hotspot, addr uint32, reg register, slot int, symbol string, action HotspotAction) {
	table[addr&0x3ff] = decoded{reg: reg, slot: slot}
	hotspots[addr] = Hotspot{Symbol: symbol, Action: action}
}

// addBoth adds an address to both lookup tables with the same meaning.
func addBoth(addr uint32, reg register, slot int, symbol string, writeAction HotspotAction) {
	add(&readTable, readHotspots, addr, reg, slot, symbol, HotspotRegister)
	add(&writeTable, writeHotspots, addr, reg, slot, symbol, writeAction)
}

var byteSuffix = [...]string{"L", "M", "H"}

func init() {
	for i := 0; i < 3; i++ {
		addBoth(0x7f40+uint32(i), regDMASource, i, "DMASRC"+byteSuffix[i], HotspotRegister)
	}
	addBoth(0x7f43, regDMALength, 0, "DMALENL", HotspotRegister)
	addBoth(0x7f44, regDMALength, 1, "DMALENH", HotspotRegister)
	addBoth(0x7f45, regDMATarget, 0, "DMADSTL", HotspotRegister)
	addBoth(0x7f46, regDMATarget, 1, "DMADSTM", HotspotRegister)
	addBoth(0x7f47, regDMATarget, 2, "DMADSTH", HotspotFunction)
	addBoth(0x7f48, regCachePreload, 0, "PRELOAD", HotspotFunction)
	for i := 0; i < 3; i++ {
		addBoth(0x7f49+uint32(i), regProgramOffset, i, "PROG"+byteSuffix[i], HotspotRegister)
	}
	addBoth(0x7f4c, regCacheLock, 0, "LOCK", HotspotFunction)
	addBoth(0x7f4d, regPageNumber, 0, "PAGEL", HotspotRegister)
	addBoth(0x7f4e, regPageNumber, 1, "PAGEH", HotspotRegister)
	addBoth(0x7f4f, regProgramCounter, 0, "PC", HotspotFunction)
	addBoth(0x7f50, regSpeed, 0, "SPEED", HotspotRegister)
	addBoth(0x7f51, regR1F51, 0, "R1F51", HotspotRegister)
	addBoth(0x7f52, regR1F52, 0, "R1F52", HotspotRegister)

	// the status byte is readable from most, but not all, of the control
	// addresses. 0x7f58 and 0x7f5a are unmapped for reading
	for _, a := range []uint32{0x7f53, 0x7f54, 0x7f55, 0x7f56, 0x7f57, 0x7f59, 0x7f5b, 0x7f5c, 0x7f5d, 0x7f5e, 0x7f5f} {
		add(&readTable, readHotspots, a, regStatus, 0, "STATUS", HotspotStatus)
	}

	add(&writeTable, writeHotspots, 0x7f53, regHalt, 0, "HALT", HotspotFunction)
	for i := 0; i < 8; i++ {
		add(&writeTable, writeHotspots, 0x7f55+uint32(i), regSuspend, i, fmt.Sprintf("SUSPEND%d", i), HotspotFunction)
	}
	add(&writeTable, writeHotspots, 0x7f5d, regResume, 0, "RESUME", HotspotFunction)

	for a := uint32(0x7f60); a <= 0x7f7f; a++ {
		addBoth(a, regVector, int(a&0x1f), fmt.Sprintf("VEC%d", a&0x1f), HotspotRegister)
	}

	// the two GPR windows alias one another
	for _, base := range []uint32{0x7f80, 0x7fc0} {
		for a := base; a < base+0x30; a++ {
			o := a & 0x3f
			addBoth(a, regGPR, int(o), fmt.Sprintf("GPR%d%s", o/3, byteSuffix[o%3]), HotspotRegister)
		}
	}
}

// decodeRead returns the lookup table entry for reading the register address.
func decodeRead(addr uint32) decoded {
	return readTable[addr&0x3ff]
}

// decodeWrite returns the lookup table entry for writing the register address.
func decodeWrite(addr uint32) decoded {
	return writeTable[addr&0x3ff]
}

// ReadHotspots returns a copy of the named register addresses for reading.
// Addresses are in the normalised 0x7c00 to 0x7fff range.
func ReadHotspots() map[uint32]Hotspot {
	m := make(map[uint32]Hotspot, len(readHotspots))
	for k, v := range readHotspots {
		m[k] = v
	}
	return m
}

// WriteHotspots returns a copy of the named register addresses for writing.
// Addresses are in the normalised 0x7c00 to 0x7fff range.
func WriteHotspots() map[uint32]Hotspot {
	m := make(map[uint32]Hotspot, len(writeHotspots))
	for k, v := range writeHotspots {
		m[k] = v
	}
	return m
}
