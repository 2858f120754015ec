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

package terminal

// Style is used to identify the category of text being sent to the
// Terminal.TermPrintLine() function. The terminal implementation can interpret
// this how it sees fit.
type Style int

// List of terminal styles.
const (
	// input from the user being echoed back to the user. echoed input has
	// been "normalised" (eg. capitalised, leading space removed, etc.)
	StyleEcho Style = iota

	// information from the help command
	StyleHelp

	// information as a result of an error free command
	StyleFeedback

	// information about the state of the Cx4
	StyleInstrument

	// entries from the log
	StyleLog

	// information as a result of an error. errors can be generated by the
	// emulation or the debugger
	StyleError
)

func (s Style) String() string {
	switch s {
	case StyleEcho:
		return "echo"
	case StyleHelp:
		return "help"
	case StyleFeedback:
		return "feedback"
	case StyleInstrument:
		return "instrument"
	case StyleLog:
		return "log"
	case StyleError:
		return "error"
	}
	return ""
}
