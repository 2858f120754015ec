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
	"fmt"
	"strings"

	"github.com/jetsetilly/gophercx4/hardware/memorymap"
)

// AddressInfo is returned by dbgmem functions. This type contains everything
// you could possibly usefully know about an address. Most usefully perhaps,
// the String() function provides a normalised presentation of information.
type AddressInfo struct {
	Address       uint32
	MappedAddress uint32
	Symbol        string
	Area          memorymap.Area

	// addresses and symbols are mapped differently depending on whether
	// address is to be used for reading or writing
	Read bool

	// the data at the address. if peeked is false then data mays not be valid
	Peeked bool
	Data   uint8
}

func (ai AddressInfo) String() string {
	s := strings.Builder{}

	s.WriteString(fmt.Sprintf("$%06x", ai.Address))

	if ai.Symbol != "" {
		s.WriteString(fmt.Sprintf(" (%s)", ai.Symbol))
	}

	s.WriteString(ai.suffix())

	return s.String()
}

// StringNoSymbol is the same as String() but it does not print the
// Symbol field. Useful in some contexts were the symbol is printed in
// some other way.
func (ai AddressInfo) StringNoSymbol() string {
	return fmt.Sprintf("$%06x%s", ai.Address, ai.suffix())
}

func (ai AddressInfo) suffix() string {
	s := strings.Builder{}

	if ai.Address != ai.MappedAddress {
		s.WriteString(fmt.Sprintf(" [mirror of $%06x]", ai.MappedAddress))
	}

	s.WriteString(fmt.Sprintf(" (%s)", ai.Area.String()))

	if ai.Peeked {
		s.WriteString(fmt.Sprintf(" -> $%02x", ai.Data))
	}

	return s.String()
}
