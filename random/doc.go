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

// Package random should be used in preference to the math/rand package when
// a random number is required inside the emulation.
//
// Random numbers from the Intn() function are keyed on the current
// emulation time. The same time will always produce the same number for the
// lifetime of the program, meaning that a snapshot plumbed back into the
// emulation will see the same values as the first time around.
//
// When ZeroSeed is true the numbers are also the same between runs of the
// program. This is useful for tests and for comparing emulations.
package random
