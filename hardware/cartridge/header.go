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

package cartridge

import (
	"fmt"
	"strings"
)

// the LoROM header is at the end of the first 32k of ROM
const (
	headerOrigin   = 0x7fc0
	headerTitleLen = 21
	headerMapMode  = 0x7fd5
	headerROMSize  = 0x7fd7
	headerRAMSize  = 0x7fd8
	headerRegion   = 0x7fd9
	headerLen      = 0x40
)

// Region of the cartridge as indicated by the header.
type Region int

// List of valid Region values.
const (
	NTSC Region = iota
	PAL
)

func (r Region) String() string {
	if r == PAL {
		return "PAL"
	}
	return "NTSC"
}

// Header is the information found in the cartridge's internal header.
type Header struct {
	Title   string
	MapMode uint8

	// sizes are in bytes
	ROMSize int
	RAMSize int

	Region Region
}

func (h Header) String() string {
	return fmt.Sprintf("%s [%s] rom=%dk ram=%dk", h.Title, h.Region, h.ROMSize/1024, h.RAMSize/1024)
}

// parseHeader returns the header found in the data. If the data is too short
// to have a header then the zero value is returned.
func parseHeader(data []byte) Header {
	var h Header
	if len(data) < headerOrigin+headerLen {
		return h
	}

	h.Title = strings.TrimRight(string(data[headerOrigin:headerOrigin+headerTitleLen]), " \x00")
	h.MapMode = data[headerMapMode]

	// sizes are stored as powers of two in units of 1k
	if n := data[headerROMSize]; n > 0 && n < 16 {
		h.ROMSize = 1024 << n
	}
	if n := data[headerRAMSize]; n > 0 && n < 16 {
		h.RAMSize = 1024 << n
	}

	// destination codes 2 to 12 are PAL territories
	if r := data[headerRegion]; r >= 0x02 && r <= 0x0c {
		h.Region = PAL
	}

	return h
}
