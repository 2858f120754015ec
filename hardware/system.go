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

package hardware

import (
	"github.com/jetsetilly/gophercx4/cartridgeloader"
	"github.com/jetsetilly/gophercx4/curated"
	"github.com/jetsetilly/gophercx4/environment"
	"github.com/jetsetilly/gophercx4/hardware/cartridge"
	"github.com/jetsetilly/gophercx4/hardware/clocks"
	"github.com/jetsetilly/gophercx4/hardware/cx4"
	"github.com/jetsetilly/gophercx4/hardware/preferences"
	"github.com/jetsetilly/gophercx4/hardware/scheduler"
	"github.com/jetsetilly/gophercx4/logger"
)

// System is the emulated hardware.
type System struct {
	Env   *environment.Environment
	Sched *scheduler.Scheduler
	Cx4   *cx4.Cx4

	// the attached cartridge. nil if no cartridge is attached
	Cart *cartridge.Cartridge

	// the loader used to create Cart. kept so that the cartridge can be
	// reloaded
	Loader cartridgeloader.Loader
}

// cartridgeBus is the cartridge as seen by the Cx4. the bus is empty if no
// cartridge is attached
type cartridgeBus struct {
	sys *System
}

func (b cartridgeBus) Read(addr uint32) uint8 {
	if b.sys.Cart == nil {
		return 0
	}
	return b.sys.Cart.Read(addr)
}

func (b cartridgeBus) Write(addr uint32, data uint8) {
	if b.sys.Cart == nil {
		return
	}
	b.sys.Cart.Write(addr, data)
}

func (b cartridgeBus) ReadROM(offset uint32) uint8 {
	if b.sys.Cart == nil {
		return 0
	}
	return b.sys.Cart.ReadROM(offset)
}

// NewSystem creates a new System and everything associated with the
// hardware. If prefs is nil then the preferences are loaded from the default
// location.
func NewSystem(label environment.Label, prefs *preferences.Preferences) (*System, error) {
	sys := &System{
		Sched: scheduler.NewScheduler(clocks.NTSC, clocks.Cx4),
	}

	var err error

	sys.Env, err = environment.NewEnvironment(sys.Sched, prefs)
	if err != nil {
		return nil, curated.Errorf("hardware: %v", err)
	}
	sys.Env.Label = label

	sys.Cx4 = cx4.NewCx4(sys.Env, sys.Sched, cartridgeBus{sys: sys})
	sys.Sched.AttachCoprocessor(sys.Cx4.Step)

	return sys, nil
}

func (sys *System) String() string {
	if sys.Cart == nil {
		return "no cartridge"
	}
	return sys.Cart.String()
}

// AttachCartridge loads the cartridge and inserts it into the system. The
// system is powered on afterwards. A loader with an empty filename and no
// data ejects the current cartridge.
func (sys *System) AttachCartridge(cl cartridgeloader.Loader) error {
	if cl.Filename == "" && !cl.HasLoaded() {
		sys.Eject()
		return nil
	}

	err := cl.Load()
	if err != nil {
		return curated.Errorf("hardware: %v", err)
	}

	cart, err := cartridge.NewCartridge(sys.Env, cl)
	if err != nil {
		return curated.Errorf("hardware: %v", err)
	}

	sys.Cart = cart
	sys.Loader = cl
	sys.PowerOn()

	return nil
}

// Eject the cartridge. The system is powered on afterwards.
func (sys *System) Eject() {
	sys.Cart = nil
	sys.Loader = cartridgeloader.Loader{}
	sys.PowerOn()
}

// HasCartridge returns true if a cartridge is attached.
func (sys *System) HasCartridge() bool {
	return sys.Cart != nil
}

// Region returns the region of the attached cartridge. Without a cartridge
// the region is NTSC.
func (sys *System) Region() cartridge.Region {
	if sys.Cart == nil {
		return cartridge.NTSC
	}
	return sys.Cart.Header.Region
}

// PowerOn is the equivalent of switching the host system off and on again.
// The host clock is set for the region of the cartridge before the system is
// reset. Cartridge RAM is battery backed and so is preserved.
func (sys *System) PowerOn() {
	switch sys.Region() {
	case cartridge.PAL:
		sys.Sched.SetCPUFrequency(clocks.PAL)
	default:
		sys.Sched.SetCPUFrequency(clocks.NTSC)
	}
	sys.Reset()
	logger.Logf(sys.Env, "hardware", "power on: %s", sys)
}

// Reset the scheduler and the Cx4. The cartridge is not affected.
func (sys *System) Reset() {
	sys.Sched.Reset()
	sys.Cx4.Reset()
}

// Read a byte from the host bus.
func (sys *System) Read(addr uint32) uint8 {
	addr &= 0xffffff
	switch {
	case cx4.IsIO(addr):
		return sys.Cx4.Read(addr)
	case cartridge.IsRAM(addr):
		return cartridgeBus{sys: sys}.Read(addr)
	case cartridge.IsROM(addr):
		return sys.Cx4.ROMRead(sys.romOffset(addr))
	}
	return 0
}

// Write a byte to the host bus.
func (sys *System) Write(addr uint32, data uint8) {
	addr &= 0xffffff
	switch {
	case cx4.IsIO(addr):
		sys.Cx4.Write(addr, data)
	case cartridge.IsRAM(addr):
		cartridgeBus{sys: sys}.Write(addr, data)
	}
}

// Peek is the same as Read() but without clock synchronisation.
func (sys *System) Peek(addr uint32) uint8 {
	addr &= 0xffffff
	if cx4.IsIO(addr) {
		return sys.Cx4.Peek(addr)
	}
	return sys.Read(addr)
}

// Poke is the same as Write() but without clock synchronisation. Unlike
// Write(), a poke to the cartridge ROM window changes the ROM.
func (sys *System) Poke(addr uint32, data uint8) {
	addr &= 0xffffff
	switch {
	case cx4.IsIO(addr):
		sys.Cx4.Poke(addr, data)
	case cartridge.IsRAM(addr):
		cartridgeBus{sys: sys}.Write(addr, data)
	case cartridge.IsROM(addr):
		if sys.Cart != nil {
			sys.Cart.PokeROM(sys.Cart.ROMOffset(addr), data)
		}
	}
}

// Speed returns the number of wait states for a host access to the address.
func (sys *System) Speed(addr uint32) int {
	return sys.Cx4.Speed(addr & 0xffffff)
}

func (sys *System) romOffset(addr uint32) uint32 {
	if sys.Cart == nil {
		return cartridge.LoROMOffset(addr)
	}
	return uint32(sys.Cart.ROMOffset(addr))
}
