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

package debugger

import (
	"errors"
	"io"
	"os"
	"os/signal"

	"github.com/jetsetilly/gophercx4/curated"
	"github.com/jetsetilly/gophercx4/debugger/dbgmem"
	"github.com/jetsetilly/gophercx4/debugger/govern"
	"github.com/jetsetilly/gophercx4/debugger/monitor"
	"github.com/jetsetilly/gophercx4/debugger/script"
	"github.com/jetsetilly/gophercx4/debugger/terminal"
	"github.com/jetsetilly/gophercx4/hardware"
)

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	sys    *hardware.System
	dbgmem dbgmem.DbgMem
	mon    *monitor.SystemMonitor

	// the debugger is always in the Paused state except when it is ending.
	// the emulation only moves forward as a result of a command
	state govern.State

	term   terminal.Terminal
	events *terminal.ReadEvents

	// commands waiting to be run. interactive input and script files both
	// go through the queue
	queue script.Queue

	// capture of debugger commands to a script file
	scribe script.Scribe
}

// NewDebugger creates and initialises everything required for a new
// debugging session.
func NewDebugger(sys *hardware.System, term terminal.Terminal) (*Debugger, error) {
	if sys == nil || term == nil {
		return nil, curated.Errorf("debugger: system and terminal must not be nil")
	}

	dbg := &Debugger{
		sys:    sys,
		dbgmem: dbgmem.DbgMem{Sys: sys},
		state:  govern.Initialising,
		term:   term,
		events: &terminal.ReadEvents{
			Signal: make(chan os.Signal, 1),
			SignalHandler: func(sig os.Signal) error {
				return curated.Errorf(terminal.UserInterrupt)
			},
		},
	}

	dbg.mon = monitor.NewSystemMonitor(sys.Cx4, dbg)

	return dbg, nil
}

// SystemStateRecord implements the monitor.SystemStateRecorder interface.
func (dbg *Debugger) SystemStateRecord(s monitor.SystemState) error {
	dbg.printLine(terminal.StyleInstrument, "%s", s)
	return nil
}

// State returns the current state of the debugger.
func (dbg *Debugger) State() govern.State {
	return dbg.state
}

func (dbg *Debugger) prompt() terminal.Prompt {
	return terminal.Prompt{
		Content: dbg.sys.Cx4.Describe(),
		Halted:  dbg.sys.Cx4.Halted(),
		Busy:    dbg.sys.Cx4.Busy(),
	}
}

// Start the main debugger sequence. The function returns when the QUIT
// command is run, when the user interrupts the session or when the input is
// exhausted.
func (dbg *Debugger) Start(initScript string) error {
	err := dbg.term.Initialise()
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	dbg.term.RegisterTabCompletion(newTabCompletion())

	signal.Notify(dbg.events.Signal, os.Interrupt)
	defer signal.Stop(dbg.events.Signal)

	if initScript != "" {
		if err := dbg.queue.Load(initScript); err != nil {
			dbg.printLine(terminal.StyleError, "%s", err)
		}
	}

	dbg.state = govern.Paused

	err = dbg.inputLoop()

	// always end the scribe session, even if the input loop has failed
	if errScribe := dbg.scribe.EndSession(); errScribe != nil && err == nil {
		err = errScribe
	}

	return err
}

func (dbg *Debugger) inputLoop() error {
	defer func() {
		dbg.state = govern.Ending
	}()

	for dbg.state != govern.Ending {
		ln, ok := dbg.queue.Next()
		if !ok {
			input, err := dbg.term.TermRead(dbg.prompt(), dbg.events)
			if err != nil {
				if errors.Is(err, io.EOF) || curated.Is(err, terminal.UserInterrupt) {
					return nil
				}
				return curated.Errorf("debugger: %v", err)
			}

			ln, err = dbg.queue.Push(input)
			if err != nil {
				continue
			}
		}

		if !ln.Batch {
			if err := dbg.scribe.WriteInput(ln.Entry); err != nil {
				dbg.printLine(terminal.StyleError, "%s", err)
			}
		}

		if err := dbg.parseCommand(ln.Entry); err != nil {
			dbg.scribe.Rollback()
			dbg.printLine(terminal.StyleError, "%s", err)

			// an error in a script abandons the rest of the script
			if ln.Batch {
				dbg.queue.Clear()
			}
		}
	}

	return nil
}
