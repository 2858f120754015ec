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

// Package curated is the error type used throughout the emulator.
//
// A curated error is created with Errorf(), which takes a formatting pattern
// and values in the same way as fmt.Errorf(). The pattern is remembered and
// can be tested for with Is() and Has():
//
//	err := curated.Errorf("cx4: unknown register (%s)", name)
//
//	if curated.Is(err, "cx4: unknown register (%s)") {
//		...
//	}
//
// Is() only looks at the outermost error. Has() looks at every curated error
// in the chain, so a wrapped error still matches:
//
//	err = curated.Errorf("debugger: %v", err)
//	curated.Is(err, "cx4: unknown register (%s)")  // false
//	curated.Has(err, "cx4: unknown register (%s)") // true
//
// IsAny() returns true if the error is curated at all. Errors from outside the
// emulator (file and network errors) are not curated and can be reported
// differently.
//
// Patterns that are tested for are stored as exported string constants in
// the package that creates the error, for example prefs.BadKey.
//
// An error chain is made of parts separated by ": ". The Error() function
// removes adjacent duplicate parts, so that each layer can add its own
// prefix without the message repeating itself:
//
//	"nwaccess: nwaccess: no such file" -> "nwaccess: no such file"
//
// Curated errors also implement Unwrap(), which returns the first error in
// the values given to Errorf(). A standard library error passed as a value
// can therefore be found with errors.Is() and errors.As().
package curated
