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

package preferences

import (
	"github.com/jetsetilly/gophercx4/curated"
	"github.com/jetsetilly/gophercx4/prefs"
	"github.com/jetsetilly/gophercx4/resources"
)

// Preferences for the emulated hardware.
type Preferences struct {
	dsk *prefs.Disk

	// initialise the chip's data RAM to random values on reset. real hardware
	// powers up with undefined data RAM
	RandomState prefs.Bool

	// complete DMA transfers and cache loads in a single chip step rather
	// than one byte per chip cycle
	InstantDMA prefs.Bool

	// preferences for the network access server
	NetworkAccess *NetworkAccessPreferences
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Values are loaded from the default preferences file in the resource
// directory.
func NewPreferences() (*Preferences, error) {
	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesAt(pth)
}

// NewPreferencesAt is the same as NewPreferences() except that the location
// of the preferences file is specified.
func NewPreferencesAt(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("cx4.randomstate", &p.RandomState)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("cx4.instantdma", &p.InstantDMA)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load(false)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	p.NetworkAccess, err = newNetworkAccessPreferences(pth)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all hardware settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.RandomState.Set(false)
	_ = p.InstantDMA.Set(false)
}

// Load hardware preferences from disk.
func (p *Preferences) Load() error {
	if err := p.dsk.Load(false); err != nil {
		return err
	}
	return p.NetworkAccess.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	if err := p.dsk.Save(); err != nil {
		return err
	}
	return p.NetworkAccess.Save()
}
