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

	"github.com/jetsetilly/gophercx4/cartridgeloader"
	"github.com/jetsetilly/gophercx4/curated"
	"github.com/jetsetilly/gophercx4/environment"
	"github.com/jetsetilly/gophercx4/logger"
)

// Sentinal error patterns.
const (
	UnsupportedMapping = "cartridge: unsupported mapping (%s)"
	BadROMSize         = "cartridge: bad ROM size (%d bytes)"
)

// maximum size of cartridge RAM visible in the $70-$77 banks
const maxRAMSize = 0x40000

// State is the part of the cartridge that changes during emulation.
type State struct {
	RAM []byte
}

// Snapshot creates a copy of the State.
func (s *State) Snapshot() *State {
	n := *s
	n.RAM = make([]byte, len(s.RAM))
	copy(n.RAM, s.RAM)
	return &n
}

// Cartridge is a LoROM cartridge.
type Cartridge struct {
	env *environment.Environment

	Filename string
	Hash     string
	Header   Header

	rom   []byte
	state *State
}

func (cart *Cartridge) String() string {
	return fmt.Sprintf("%s (%s)", cart.Header, cart.Hash)
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type. The loader must have been successfully loaded.
func NewCartridge(env *environment.Environment, cl cartridgeloader.Loader) (*Cartridge, error) {
	if cl.Mapping != "AUTO" && cl.Mapping != "LOROM" {
		return nil, curated.Errorf(UnsupportedMapping, cl.Mapping)
	}

	if len(cl.Data) == 0 || len(cl.Data)%1024 != 0 {
		return nil, curated.Errorf(BadROMSize, len(cl.Data))
	}

	cart := &Cartridge{
		env:      env,
		Filename: cl.Filename,
		Hash:     cl.Hash,
		Header:   parseHeader(cl.Data),
		rom:      make([]byte, len(cl.Data)),
		state:    &State{},
	}
	copy(cart.rom, cl.Data)

	ramSize := cart.Header.RAMSize
	if ramSize > maxRAMSize {
		logger.Logf(env, "cartridge", "RAM size in header too large (%d bytes). using %d bytes", ramSize, maxRAMSize)
		ramSize = maxRAMSize
	}
	cart.state.RAM = make([]byte, ramSize)

	logger.Logf(env, "cartridge", "%s", cart.Header)

	return cart, nil
}

// Snapshot creates a copy of the cartridge State.
func (cart *Cartridge) Snapshot() *State {
	return cart.state.Snapshot()
}

// Plumb a new State into the cartridge.
func (cart *Cartridge) Plumb(state *State) {
	cart.state = state
}

// ROMSize returns the size of the ROM in bytes.
func (cart *Cartridge) ROMSize() int {
	return len(cart.rom)
}

// RAMSize returns the size of the cartridge RAM in bytes.
func (cart *Cartridge) RAMSize() int {
	return len(cart.state.RAM)
}

// IsRAM returns true if the address is in the cartridge RAM window.
func IsRAM(addr uint32) bool {
	return addr&0xf88000 == 0x700000
}

// IsROM returns true if the address is in the cartridge ROM window.
func IsROM(addr uint32) bool {
	return addr&0x8000 == 0x8000
}

// LoROMOffset returns the offset into an unmirrored LoROM image of a host
// bus address.
func LoROMOffset(addr uint32) uint32 {
	return ((addr>>16)&0x7f)<<15 | addr&0x7fff
}

// ROMOffset returns the offset into ROM of a host bus address.
func (cart *Cartridge) ROMOffset(addr uint32) int {
	return int(LoROMOffset(addr)) % len(cart.rom)
}

// RAMOffset returns the offset into cartridge RAM of a host bus address. The
// second return value is false if there is no RAM.
func (cart *Cartridge) RAMOffset(addr uint32) (int, bool) {
	if len(cart.state.RAM) == 0 {
		return 0, false
	}
	o := int(((addr>>16)&0x07)<<15 | addr&0x7fff)
	return o % len(cart.state.RAM), true
}

// Read a byte from the cartridge. Addresses outside of the cartridge's windows
// return zero.
func (cart *Cartridge) Read(addr uint32) uint8 {
	switch {
	case IsRAM(addr):
		if o, ok := cart.RAMOffset(addr); ok {
			return cart.state.RAM[o]
		}
	case IsROM(addr):
		return cart.rom[cart.ROMOffset(addr)]
	}
	return 0
}

// ReadROM returns the byte at the ROM offset. The offset is mirrored to the
// size of the ROM.
func (cart *Cartridge) ReadROM(offset uint32) uint8 {
	return cart.rom[int(offset)%len(cart.rom)]
}

// Write a byte to the cartridge. Only cartridge RAM can be written to.
func (cart *Cartridge) Write(addr uint32, data uint8) {
	if IsRAM(addr) {
		if o, ok := cart.RAMOffset(addr); ok {
			cart.state.RAM[o] = data
		}
	}
}

// PeekROM returns the byte at the ROM offset. The second return value is false
// if the offset is out of range.
func (cart *Cartridge) PeekROM(offset int) (uint8, bool) {
	if offset < 0 || offset >= len(cart.rom) {
		return 0, false
	}
	return cart.rom[offset], true
}

// PokeROM changes the byte at the ROM offset. Useful for patching the ROM
// from a debugger. Offsets out of range are ignored.
func (cart *Cartridge) PokeROM(offset int, data uint8) bool {
	if offset < 0 || offset >= len(cart.rom) {
		return false
	}
	cart.rom[offset] = data
	return true
}

// PeekRAM returns the byte at the RAM offset. The second return value is false
// if the offset is out of range.
func (cart *Cartridge) PeekRAM(offset int) (uint8, bool) {
	if offset < 0 || offset >= len(cart.state.RAM) {
		return 0, false
	}
	return cart.state.RAM[offset], true
}

// PokeRAM changes the byte at the RAM offset. Offsets out of range are
// ignored.
func (cart *Cartridge) PokeRAM(offset int, data uint8) bool {
	if offset < 0 || offset >= len(cart.state.RAM) {
		return false
	}
	cart.state.RAM[offset] = data
	return true
}
