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

package script

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/gophercx4/curated"
)

const commentLine = "#"

// Scribe can be used again after a Start()/End() cycle. Scribe is safe to
// use when no session is active.
type Scribe struct {
	file       io.WriteCloser
	scriptfile string

	// the depth of script openings during the writing of a new script
	playbackDepth int

	inputLine  string
	outputLine strings.Builder
}

// IsActive returns true if a script is currently being captured.
func (scr *Scribe) IsActive() bool {
	return scr.file != nil
}

// Filename of the script being captured. Empty string if no script is being
// captured.
func (scr *Scribe) Filename() string {
	return scr.scriptfile
}

// StartSession a new script.
func (scr *Scribe) StartSession(scriptfile string) error {
	if scr.IsActive() {
		return curated.Errorf("script: scribe already active")
	}

	_, err := os.Stat(scriptfile)
	if !os.IsNotExist(err) {
		return curated.Errorf("script: file already exists (%s)", scriptfile)
	}

	f, err := os.Create(scriptfile)
	if err != nil {
		return curated.Errorf("script: cannot create new script file (%v)", err)
	}

	scr.file = f
	scr.scriptfile = scriptfile

	return nil
}

// EndSession the current scribe session.
func (scr *Scribe) EndSession() error {
	if !scr.IsActive() {
		return nil
	}

	defer func() {
		scr.file = nil
		scr.scriptfile = ""
		scr.playbackDepth = 0
		scr.inputLine = ""
		scr.outputLine.Reset()
	}()

	// make sure everything has been written to the output file
	err := scr.Commit()

	// if commit() causes an error, continue with the Close() operation and
	// return the commit() error if the close succeeds
	errClose := scr.file.Close()
	if errClose != nil {
		return curated.Errorf("script: %v", errClose)
	}

	return err
}

// StartPlayback indicates that a replayed script has begun.
func (scr *Scribe) StartPlayback() error {
	if !scr.IsActive() {
		return nil
	}
	err := scr.Commit()
	scr.playbackDepth++
	return err
}

// EndPlayback indicates that a replayed script has finished.
func (scr *Scribe) EndPlayback() error {
	if !scr.IsActive() {
		return nil
	}
	err := scr.Commit()
	if scr.playbackDepth > 0 {
		scr.playbackDepth--
	}
	return err
}

// Rollback undoes calls to WriteInput() and WriteOutput() since last Commit().
func (scr *Scribe) Rollback() {
	if !scr.IsActive() {
		return
	}

	scr.inputLine = ""
	scr.outputLine.Reset()
}

// WriteInput writes user-input to the open script file.
func (scr *Scribe) WriteInput(command string) error {
	if !scr.IsActive() || scr.playbackDepth > 0 {
		return nil
	}

	err := scr.Commit()
	if command != "" {
		scr.inputLine = fmt.Sprintf("%s\n", command)
	}
	return err
}

// WriteOutput writes the output of the most recent command to the open
// script file. The output is written as comment lines.
func (scr *Scribe) WriteOutput(output string) {
	if !scr.IsActive() || scr.playbackDepth > 0 || scr.inputLine == "" {
		return
	}

	for s := range strings.SplitSeq(output, "\n") {
		scr.outputLine.WriteString(fmt.Sprintf("%s %s\n", commentLine, s))
	}
}

// Commit most recent calls to WriteInput() and WriteOutput().
func (scr *Scribe) Commit() error {
	if !scr.IsActive() {
		return nil
	}

	defer func() {
		scr.inputLine = ""
		scr.outputLine.Reset()
	}()

	for _, s := range []string{scr.inputLine, scr.outputLine.String()} {
		if s == "" {
			continue
		}
		n, err := io.WriteString(scr.file, s)
		if err != nil {
			return curated.Errorf("script: %v", err)
		}
		if n != len(s) {
			return curated.Errorf("script: output truncated")
		}
	}

	return nil
}
