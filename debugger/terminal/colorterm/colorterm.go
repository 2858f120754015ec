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

// Package colorterm implements the Terminal interface for the gophercx4
// debugger. It supports color output, history and tab completion.
//
// The terminal is put into raw mode for the duration of the session and
// line editing is handled by the golang.org/x/term line editor.
package colorterm

import (
	"io"
	"os"

	"github.com/jetsetilly/gophercx4/curated"
	"github.com/jetsetilly/gophercx4/debugger/terminal"
	"golang.org/x/term"
)

// ColorTerminal implements debugger UI interface with a basic ANSI terminal.
type ColorTerminal struct {
	editor *term.Terminal
	fd     int
	state  *term.State

	tabCompletion terminal.TabCompletion

	silenced bool
}

// Initialise perfoms any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	ct.fd = int(os.Stdin.Fd())
	if !term.IsTerminal(ct.fd) {
		return curated.Errorf("colorterm: stdin is not a terminal")
	}

	var err error

	ct.state, err = term.MakeRaw(ct.fd)
	if err != nil {
		return curated.Errorf("colorterm: %v", err)
	}

	ct.editor = term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}, "")

	if w, h, err := term.GetSize(ct.fd); err == nil {
		_ = ct.editor.SetSize(w, h)
	}

	ct.editor.AutoCompleteCallback = ct.complete

	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	if ct.state != nil {
		_ = term.Restore(ct.fd, ct.state)
		ct.state = nil
	}
}

// RegisterTabCompletion adds an implementation of TabCompletion to the
// ColorTerminal.
func (ct *ColorTerminal) RegisterTabCompletion(tc terminal.TabCompletion) {
	ct.tabCompletion = tc
}

func (ct *ColorTerminal) complete(line string, pos int, key rune) (string, int, bool) {
	if ct.tabCompletion == nil {
		return "", 0, false
	}
	if key != '\t' {
		ct.tabCompletion.Reset()
		return "", 0, false
	}
	s := ct.tabCompletion.Complete(line)
	return s, len(s), true
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// Silence implements the terminal.Terminal interface.
func (ct *ColorTerminal) Silence(silenced bool) {
	ct.silenced = silenced
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	if ct.silenced && style != terminal.StyleError {
		return
	}

	// the line editor has already echoed the input
	if style == terminal.StyleEcho {
		return
	}

	esc := ct.editor.Escape

	var pen []byte
	switch style {
	case terminal.StyleHelp:
		pen = esc.White
	case terminal.StyleInstrument:
		pen = esc.Cyan
	case terminal.StyleLog:
		pen = esc.Yellow
	case terminal.StyleError:
		pen = esc.Red
		s = "* " + s
	}

	ct.editor.Write(pen)
	ct.editor.Write([]byte(s))
	ct.editor.Write(esc.Reset)
	ct.editor.Write([]byte("\n"))
}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt, events *terminal.ReadEvents) (string, error) {
	ct.editor.SetPrompt(prompt.String())

	s, err := ct.editor.ReadLine()
	if err != nil {
		return "", err
	}

	if events != nil && events.Signal != nil {
		select {
		case sig := <-events.Signal:
			return "", events.SignalHandler(sig)
		default:
		}
	}

	return s, nil
}
