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

package memorymap

import (
	"fmt"
	"strings"
)

// Summary returns a text description of the memory map of a single bank.
func Summary(bank uint8) string {
	var area, current Area

	origin := uint32(bank) << 16
	memtop := origin | 0xffff

	var a, sa uint32

	s := strings.Builder{}

	// look up area of first address in the bank
	_, current = MapAddress(origin)
	sa = origin

	// for every address in the bank...
	for a = origin + 1; a <= memtop; a++ {
		// ...get the area name of that address.
		_, area = MapAddress(a)

		// if the area has changed print out the summary line...
		if area != current {
			s.WriteString(fmt.Sprintf("%06x -> %06x\t%s\n", sa, a-1, current.String()))

			// ...update current area and start address of the area
			current = area
			sa = a
		}
	}

	// write last line of summary
	s.WriteString(fmt.Sprintf("%06x -> %06x\t%s\n", sa, a-1, area.String()))

	return s.String()
}
