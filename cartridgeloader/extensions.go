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

package cartridgeloader

// FileExtensions maps the file extensions of cartridge images to the mapping
// they imply. An extension that implies nothing in particular maps to "AUTO".
var FileExtensions = map[string]string{
	".SFC": "LOROM",
	".SMC": "LOROM",
	".SWC": "LOROM",
	".FIG": "LOROM",
	".BIN": "AUTO",
}
