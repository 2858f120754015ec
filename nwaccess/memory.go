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

package nwaccess

import (
	"strconv"
	"strings"

	"github.com/jetsetilly/gophercx4/hardware"
	"github.com/jetsetilly/gophercx4/hardware/cx4"
	"github.com/jetsetilly/gophercx4/hardware/memorymap"
)

// region is an address and length pair taken from the arguments of a
// CORE_READ or CORE_WRITE command. a negative length means the length was not
// specified.
type region struct {
	addr int
	len  int
}

// toInt converts the string to an integer. hexadecimal numbers are prefixed
// with a dollar sign. the default value is returned if the string is empty or
// is not a number.
func toInt(s string, def int) int {
	if s == "" {
		return def
	}

	var v int64
	var err error
	if s[0] == '$' {
		v, err = strconv.ParseInt(s[1:], 16, 32)
	} else {
		v, err = strconv.ParseInt(s, 10, 32)
	}
	if err != nil {
		return def
	}

	return int(v)
}

// parseMemoryArgs splits the arguments of a CORE_READ or CORE_WRITE command
// into the memory name and the list of regions.
//
//	memory;addr;len;addr;len...
func parseMemoryArgs(args string) (string, []region) {
	sargs := strings.Split(args, ";")

	var regions []region
	for i := 1; i < len(sargs); i += 2 {
		r := region{
			addr: toInt(sargs[i], 0),
			len:  -1,
		}
		if i+1 < len(sargs) {
			r.len = toInt(sargs[i+1], -1)
		}
		regions = append(regions, r)
	}

	return sargs[0], regions
}

// memory is one of the memories that can be accessed with CORE_READ and
// CORE_WRITE. all accesses are debugging accesses and do not advance the
// clocks.
type memory struct {
	name string

	// the memory only exists when a cartridge is attached
	cartridge bool

	size func(sys *hardware.System) int
	peek func(sys *hardware.System, offset int) uint8
	poke func(sys *hardware.System, offset int, data uint8)
}

var memories = []memory{
	{
		name:      "CARTROM",
		cartridge: true,
		size: func(sys *hardware.System) int {
			return sys.Cart.ROMSize()
		},
		peek: func(sys *hardware.System, offset int) uint8 {
			v, _ := sys.Cart.PeekROM(offset)
			return v
		},
		poke: func(sys *hardware.System, offset int, data uint8) {
			sys.Cart.PokeROM(offset, data)
		},
	},
	{
		name:      "SRAM",
		cartridge: true,
		size: func(sys *hardware.System) int {
			return sys.Cart.RAMSize()
		},
		peek: func(sys *hardware.System, offset int) uint8 {
			v, _ := sys.Cart.PeekRAM(offset)
			return v
		},
		poke: func(sys *hardware.System, offset int, data uint8) {
			sys.Cart.PokeRAM(offset, data)
		},
	},
	{
		name: "CX4DRAM",
		size: func(_ *hardware.System) int {
			return cx4.DRAMSize
		},
		peek: func(sys *hardware.System, offset int) uint8 {
			v, _ := sys.Cx4.PeekDRAM(offset)
			return v
		},
		poke: func(sys *hardware.System, offset int, data uint8) {
			sys.Cx4.PokeDRAM(offset, data)
		},
	},
	{
		name: "CX4REGS",
		size: func(_ *hardware.System) int {
			return int(memorymap.MemtopCx4Registers-memorymap.OriginCx4Registers) + 1
		},
		peek: func(sys *hardware.System, offset int) uint8 {
			return sys.Cx4.Peek(memorymap.OriginCx4Registers + uint32(offset))
		},
		poke: func(sys *hardware.System, offset int, data uint8) {
			sys.Cx4.Poke(memorymap.OriginCx4Registers+uint32(offset), data)
		},
	},
}

func findMemory(name string) (memory, bool) {
	for _, m := range memories {
		if m.name == name {
			return m, true
		}
	}
	return memory{}, false
}

func coreMemories() []byte {
	s := strings.Builder{}
	for i, m := range memories {
		if i > 0 {
			s.WriteString("\n")
		}
		s.WriteString("name:" + m.name + "\naccess:rw")
	}
	return hashReply(s.String())
}

// coreRead reads the regions of the named memory. regions that lie partly or
// wholly outside the memory are padded with zero bytes, except for the last
// region which is cut short.
func coreRead(sys *hardware.System, name string, regions []region) []byte {
	if len(regions) > 1 {
		for _, r := range regions {
			if r.len < 1 {
				return errorReply("bad format")
			}
		}
	}

	// no region means the entire memory
	if len(regions) == 0 {
		regions = []region{{addr: 0, len: -1}}
	}

	mem, ok := findMemory(name)
	if !ok {
		return errorReply("unknown memory")
	}

	// without a cartridge every region is out of bounds. the reply is empty
	// and there is no padding
	if mem.cartridge && !sys.HasCartridge() {
		return binaryReply(nil)
	}

	size := mem.size(sys)

	var data []byte
	for i, r := range regions {
		start := max(r.addr, 0)
		n := r.len
		if n < 0 {
			n = max(size-start, 0)
		}

		var pad int
		switch {
		case i == len(regions)-1 && start+n > size:
			n = max(size-start, 0)
		case start > size:
			pad = n
			n = 0
		case start+n > size:
			pad = n - (size - start)
			n = size - start
		}

		for a := start; a < start+n; a++ {
			data = append(data, mem.peek(sys, a))
		}
		data = append(data, make([]byte, pad)...)
	}

	return binaryReply(data)
}

// coreWrite writes the data to the regions of the named memory. the data is
// consumed by the regions in order. bytes that fall outside the memory are
// dropped.
func coreWrite(sys *hardware.System, name string, regions []region, data []byte) []byte {
	expectedLen := -1
	if len(regions) > 0 {
		expectedLen = 0
	}
	for _, r := range regions {
		if len(regions) > 1 && r.len < 1 {
			return errorReply("bad format")
		}
		expectedLen += r.len
	}
	if expectedLen >= 0 && len(data) != expectedLen {
		return errorReply("bad data length")
	}

	if len(regions) == 0 {
		regions = []region{{addr: 0, len: len(data)}}
	} else if regions[0].len < 0 {
		regions[0].len = len(data)
	}

	mem, ok := findMemory(name)
	if !ok {
		return errorReply("unknown memory")
	}

	// silently ignore writes to cartridge memory when there is no cartridge
	if mem.cartridge && !sys.HasCartridge() {
		return okReply()
	}

	size := mem.size(sys)

	var p int
	for _, r := range regions {
		start := max(r.addr, 0)
		for a := start; a < start+r.len; a++ {
			if a < size {
				mem.poke(sys, a, data[p])
			}
			p++
		}
	}

	return okReply()
}
