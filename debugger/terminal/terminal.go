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

import (
	"os"
)

// Input is the input side of a terminal.
type Input interface {
	// TermRead returns a line of input without the trailing newline. io.EOF
	// is returned when there is no more input. The ReadEvents should be
	// monitored while waiting.
	TermRead(prompt Prompt, events *ReadEvents) (string, error)

	// IsInteractive returns false for terminals that do not expect a user to
	// be typing, such as input from a file.
	IsInteractive() bool
}

// UserInterrupt is returned by TermRead() when an interrupt signal is
// received while waiting for input.
const UserInterrupt = "user interrupt"

// ReadEvents are the events that TermRead() must respond to.
type ReadEvents struct {
	Signal        chan os.Signal
	SignalHandler func(os.Signal) error
}

// Output is the output side of a terminal.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal is the interface used by the debugger to talk to the user.
type Terminal interface {
	Input
	Output

	// Initialise and CleanUp are called at the start and end of a debugging
	// session. CleanUp should restore the terminal to the mode it was in
	// before Initialise.
	Initialise() error
	CleanUp()

	RegisterTabCompletion(TabCompletion)

	// Silence all output except for StyleError lines.
	Silence(silenced bool)
}

// TabCompletion completes the keyword at the end of the input. Repeated calls
// with the returned string cycle through the alternatives until Reset() is
// called.
type TabCompletion interface {
	Complete(input string) string
	Reset()
}
