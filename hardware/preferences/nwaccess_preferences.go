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
	"fmt"

	"github.com/jetsetilly/gophercx4/curated"
	"github.com/jetsetilly/gophercx4/prefs"
)

// DefaultPort is the first TCP port tried by the network access server.
const DefaultPort = 65400

// PortRange is the number of ports, starting with the preferred port, that
// the network access server will try before giving up.
const PortRange = 10

// NetworkAccessPreferences are the preferences for the network access server.
type NetworkAccessPreferences struct {
	dsk *prefs.Disk

	Enabled prefs.Bool
	Port    prefs.Int
}

func (p *NetworkAccessPreferences) String() string {
	return p.dsk.String()
}

func newNetworkAccessPreferences(pth string) (*NetworkAccessPreferences, error) {
	p := &NetworkAccessPreferences{}
	p.SetDefaults()

	p.Port.SetHookPre(func(v prefs.Value) error {
		port, ok := v.(int)
		if !ok {
			return fmt.Errorf("port must be a number")
		}
		if port < 1024 || port > 65535-PortRange {
			return fmt.Errorf("port out of range (%d)", port)
		}
		return nil
	})

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("nwaccess.enabled", &p.Enabled)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("nwaccess.port", &p.Port)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load(false)
	if err != nil {
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all network access settings to default values.
func (p *NetworkAccessPreferences) SetDefaults() {
	_ = p.Enabled.Set(true)
	_ = p.Port.Set(DefaultPort)
}

// Load network access preferences from disk.
func (p *NetworkAccessPreferences) Load() error {
	return p.dsk.Load(false)
}

// Save current network access preferences to disk.
func (p *NetworkAccessPreferences) Save() error {
	return p.dsk.Save()
}
