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

package dbgmem

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/gophercx4/hardware"
	"github.com/jetsetilly/gophercx4/hardware/cx4"
	"github.com/jetsetilly/gophercx4/hardware/memorymap"
)

// symbolTable maps register addresses to symbols and back again. several
// addresses can share a symbol, in which case the lowest address is used
// when searching by symbol
type symbolTable struct {
	byAddress map[uint32]string
	bySymbol  map[string]uint32
}

func newSymbolTable(hotspots map[uint32]cx4.Hotspot) symbolTable {
	tbl := symbolTable{
		byAddress: make(map[uint32]string),
		bySymbol:  make(map[string]uint32),
	}
	for a, h := range hotspots {
		tbl.byAddress[a] = h.Symbol
		if b, ok := tbl.bySymbol[h.Symbol]; !ok || a < b {
			tbl.bySymbol[h.Symbol] = a
		}
	}
	return tbl
}

var readSymbols = newSymbolTable(cx4.ReadHotspots())
var writeSymbols = newSymbolTable(cx4.WriteHotspots())

func searchTable(read bool) symbolTable {
	if read {
		return readSymbols
	}
	return writeSymbols
}

// DbgMem is a front-end to the real system memory. it allows addressing by
// symbol name and uses the AddressInfo type for easier presentation.
type DbgMem struct {
	Sys *hardware.System
}

// ParseAddress converts a string to a numeric address. In addition to the Go
// prefixes, a leading '$' indicates a hexadecimal number.
func ParseAddress(s string) (uint32, error) {
	if strings.HasPrefix(s, "$") {
		s = "0x" + s[1:]
	}
	a, err := strconv.ParseUint(s, 0, 24)
	if err != nil {
		return 0, err
	}
	return uint32(a), nil
}

// GetAddressInfo allows addressing by symbols in addition to numerically.
// Returns nil if the address cannot be resolved.
func (dbgmem DbgMem) GetAddressInfo(address any, read bool) *AddressInfo {
	ai := &AddressInfo{Read: read}
	tbl := searchTable(read)

	switch address := address.(type) {
	case uint32:
		ai.Address = address & memorymap.Memtop
	case int:
		if address < 0 || address > int(memorymap.Memtop) {
			return nil
		}
		ai.Address = uint32(address)
	case string:
		if a, ok := tbl.bySymbol[strings.ToUpper(address)]; ok {
			ai.Address = a
		} else {
			// this may be a string representation of a numerical address
			a, err := ParseAddress(address)
			if err != nil {
				return nil
			}
			ai.Address = a
		}
	default:
		panic(fmt.Sprintf("unsupported address type (%T)", address))
	}

	ai.MappedAddress, ai.Area = memorymap.MapAddress(ai.Address)
	if ai.Area == memorymap.Cx4Registers {
		ai.Symbol = tbl.byAddress[ai.MappedAddress]
	}

	return ai
}

// sentinal errors returns by Peek() and Poke()
var PeekError = errors.New("cannot peek address")
var PokeError = errors.New("cannot poke address")

// Peek returns the contents of the memory address, without advancing the
// clocks. The supplied address can be numeric of symbolic.
func (dbgmem DbgMem) Peek(address any) (*AddressInfo, error) {
	ai := dbgmem.GetAddressInfo(address, true)
	if ai == nil {
		return nil, fmt.Errorf("%w: %v", PeekError, address)
	}

	if ai.Area == memorymap.Undefined {
		return nil, fmt.Errorf("%w: %v is not mapped", PeekError, address)
	}

	ai.Data = dbgmem.Sys.Peek(ai.Address)
	ai.Peeked = true

	return ai, nil
}

// Poke writes a value at the specified address, which may be numeric or
// symbolic. Side effects of register writes take place but the clocks are
// not advanced.
func (dbgmem DbgMem) Poke(address any, data uint8) (*AddressInfo, error) {
	ai := dbgmem.GetAddressInfo(address, false)
	if ai == nil {
		return nil, fmt.Errorf("%w: %v", PokeError, address)
	}

	if ai.Area == memorymap.Undefined {
		return nil, fmt.Errorf("%w: %v is not mapped", PokeError, address)
	}

	dbgmem.Sys.Poke(ai.Address, data)

	// the value at the address is not necessarily the value that was poked.
	// registers can mask the data or not be readable at all
	ai.Data = dbgmem.Sys.Peek(ai.Address)
	ai.Peeked = true

	return ai, nil
}
