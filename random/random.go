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

package random

import (
	"math/rand"
	"time"
)

var baseSeed int64

func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Clock is the source of emulation time used to key random numbers.
type Clock interface {
	Ticks() int64
}

// Random is the random number source for an emulation instance.
type Random struct {
	clk Clock

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(clk Clock) *Random {
	return &Random{
		clk: clk,
	}
}

func (rnd *Random) rand() *rand.Rand {
	var t int64
	if rnd.clk != nil {
		t = rnd.clk.Ticks()
	}
	if rnd.ZeroSeed {
		return rand.New(rand.NewSource(t))
	}
	return rand.New(rand.NewSource(baseSeed + t))
}

// Intn returns a number in the range [0,n). The number is deterministic
// for the current emulation time.
func (rnd *Random) Intn(n int) int {
	return rnd.rand().Intn(n)
}

// Fill fills the supplied slice with random bytes. Like Intn() the
// bytes are deterministic for the current emulation time.
func (rnd *Random) Fill(b []byte) {
	r := rnd.rand()
	for i := range b {
		b[i] = byte(r.Intn(256))
	}
}
