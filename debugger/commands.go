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
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/buildkite/shellwords"
	"github.com/jetsetilly/gophercx4/cartridgeloader"
	"github.com/jetsetilly/gophercx4/curated"
	"github.com/jetsetilly/gophercx4/debugger/dbgmem"
	"github.com/jetsetilly/gophercx4/debugger/govern"
	"github.com/jetsetilly/gophercx4/debugger/terminal"
	"github.com/jetsetilly/gophercx4/hardware"
	"github.com/jetsetilly/gophercx4/hardware/cx4"
	"github.com/jetsetilly/gophercx4/hardware/memorymap"
	"github.com/jetsetilly/gophercx4/logger"
	"github.com/jetsetilly/gophercx4/scripting"
)

// debugger keywords
const (
	cmdHelp  = "HELP"
	cmdQuit  = "QUIT"
	cmdReset = "RESET"
	cmdStep  = "STEP"

	cmdPeek   = "PEEK"
	cmdPoke   = "POKE"
	cmdRead   = "READ"
	cmdWrite  = "WRITE"
	cmdSpeed  = "SPEED"
	cmdRegs   = "REGS"
	cmdReg    = "REG"
	cmdDRAM   = "DRAM"
	cmdCache  = "CACHE"
	cmdStatus = "STATUS"
	cmdMemMap = "MEMMAP"

	cmdCartridge = "CARTRIDGE"
	cmdInsert    = "INSERT"
	cmdLog       = "LOG"
	cmdMemviz    = "MEMVIZ"
	cmdScript    = "SCRIPT"
)

// usage and help for each command
var commandUsage = map[string]string{
	cmdHelp:      "HELP [command]",
	cmdQuit:      "QUIT",
	cmdReset:     "RESET",
	cmdStep:      "STEP [CX4] [cycles]",
	cmdPeek:      "PEEK address [address ...]",
	cmdPoke:      "POKE address value",
	cmdRead:      "READ address",
	cmdWrite:     "WRITE address value",
	cmdSpeed:     "SPEED address",
	cmdRegs:      "REGS",
	cmdReg:       "REG register value",
	cmdDRAM:      "DRAM [offset [length]]",
	cmdCache:     "CACHE",
	cmdStatus:    "STATUS",
	cmdMemMap:    "MEMMAP [bank]",
	cmdCartridge: "CARTRIDGE",
	cmdInsert:    "INSERT filename",
	cmdLog:       "LOG [number|CLEAR]",
	cmdMemviz:    "MEMVIZ filename",
	cmdScript:    "SCRIPT filename | SCRIPT RECORD filename | SCRIPT END",
}

var commandHelp = map[string]string{
	cmdHelp:      "Lists commands or shows help for a specific command",
	cmdQuit:      "Quits the debugger",
	cmdReset:     "Resets the Cx4 and the clocks. The cartridge is not affected",
	cmdStep:      "Advances the host clock by a number of master clock cycles (default is one scanline). With CX4, runs the Cx4 for a number of its own cycles (default is one)",
	cmdPeek:      "Inspects an address without advancing the clocks. Addresses can be numeric or a register symbol",
	cmdPoke:      "Modifies an address without advancing the clocks. Register side effects still happen",
	cmdRead:      "Reads an address in the same way as the host CPU. The clocks are synchronised first",
	cmdWrite:     "Writes an address in the same way as the host CPU. The clocks are synchronised first",
	cmdSpeed:     "Shows the number of wait states for an access to the address",
	cmdRegs:      "Displays the Cx4 registers",
	cmdReg:       "Sets a Cx4 register without side effects. eg. REG dma::length 100, REG cache::lock::0 true",
	cmdDRAM:      "Displays the contents of the Cx4 data RAM",
	cmdCache:     "Displays the state of the two instruction cache banks",
	cmdStatus:    "Displays the run state of the Cx4 and the clocks",
	cmdMemMap:    "Displays the memory map of a bank of the host bus",
	cmdCartridge: "Displays information about the attached cartridge",
	cmdInsert:    "Attaches a new cartridge. The system is powered on afterwards",
	cmdLog:       "Displays the most recent log entries (default is ten) or clears the log",
	cmdMemviz:    "Writes a dot graph of the Cx4 registers, instruction cache and clocks to a file",
	cmdScript:    "Runs a script. Files with the .star extension are Starlark scripts, anything else is a list of debugger commands. RECORD captures commands to a new script file",
}

// minimum and maximum number of arguments for each command
var commandArgs = map[string][2]int{
	cmdHelp:      {0, 1},
	cmdQuit:      {0, 0},
	cmdReset:     {0, 0},
	cmdStep:      {0, 2},
	cmdPeek:      {1, -1},
	cmdPoke:      {2, 2},
	cmdRead:      {1, 1},
	cmdWrite:     {2, 2},
	cmdSpeed:     {1, 1},
	cmdRegs:      {0, 0},
	cmdReg:       {2, 2},
	cmdDRAM:      {0, 2},
	cmdCache:     {0, 0},
	cmdStatus:    {0, 0},
	cmdMemMap:    {0, 1},
	cmdCartridge: {0, 0},
	cmdInsert:    {1, 1},
	cmdLog:       {0, 1},
	cmdMemviz:    {1, 1},
	cmdScript:    {1, 2},
}

// parseNumber accepts the same formats as dbgmem.ParseAddress() but with
// the full range of an int64.
func parseNumber(s string) (int64, error) {
	if strings.HasPrefix(s, "$") {
		s = "0x" + s[1:]
	}
	n, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, curated.Errorf("debugger: not a number (%s)", s)
	}
	return n, nil
}

func parseValue(s string) (uint8, error) {
	n, err := parseNumber(s)
	if err != nil {
		return 0, err
	}
	if n < 0 || n > 0xff {
		return 0, curated.Errorf("debugger: value out of range (%s)", s)
	}
	return uint8(n), nil
}

func (dbg *Debugger) parseCommand(input string) error {
	tokens, err := shellwords.SplitPosix(input)
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}

	// user pressed return
	if len(tokens) == 0 {
		return nil
	}

	command := strings.ToUpper(tokens[0])
	args := tokens[1:]

	limits, ok := commandArgs[command]
	if !ok {
		return curated.Errorf("debugger: unrecognised command (%s)", tokens[0])
	}
	if len(args) < limits[0] || (limits[1] >= 0 && len(args) > limits[1]) {
		return curated.Errorf("debugger: usage: %s", commandUsage[command])
	}

	switch command {
	case cmdHelp:
		if len(args) == 0 {
			keys := make([]string, 0, len(commandUsage))
			for k := range commandUsage {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			dbg.printLine(terminal.StyleHelp, strings.Join(keys, " "))
			return nil
		}
		keyword := strings.ToUpper(args[0])
		if txt, ok := commandHelp[keyword]; ok {
			dbg.printLine(terminal.StyleHelp, txt)
			dbg.printLine(terminal.StyleHelp, "  Usage: "+commandUsage[keyword])
		} else {
			dbg.printLine(terminal.StyleHelp, "no help for "+keyword)
		}

	case cmdQuit:
		dbg.state = govern.Ending

	case cmdReset:
		dbg.sys.Reset()
		dbg.mon.Reset()
		dbg.printLine(terminal.StyleFeedback, "system reset")

	case cmdStep:
		return dbg.step(args)

	case cmdPeek:
		for _, a := range args {
			ai, err := dbg.dbgmem.Peek(a)
			if err != nil {
				return err
			}
			dbg.printLine(terminal.StyleInstrument, "%s", ai)
		}

	case cmdPoke:
		v, err := parseValue(args[1])
		if err != nil {
			return err
		}
		ai, err := dbg.dbgmem.Poke(args[0], v)
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleInstrument, "%s", ai)

	case cmdRead:
		ai := dbg.dbgmem.GetAddressInfo(args[0], true)
		if ai == nil {
			return fmt.Errorf("%w: %v", dbgmem.PeekError, args[0])
		}
		ai.Data = dbg.sys.Read(ai.Address)
		ai.Peeked = true
		dbg.printLine(terminal.StyleInstrument, "%s", ai)
		return dbg.mon.Check()

	case cmdWrite:
		v, err := parseValue(args[1])
		if err != nil {
			return err
		}
		ai := dbg.dbgmem.GetAddressInfo(args[0], false)
		if ai == nil {
			return fmt.Errorf("%w: %v", dbgmem.PokeError, args[0])
		}
		dbg.sys.Write(ai.Address, v)
		dbg.printLine(terminal.StyleInstrument, "%s", ai)
		return dbg.mon.Check()

	case cmdSpeed:
		ai := dbg.dbgmem.GetAddressInfo(args[0], true)
		if ai == nil {
			return fmt.Errorf("%w: %v", dbgmem.PeekError, args[0])
		}
		dbg.printLine(terminal.StyleFeedback, "%s: %d wait states", ai.StringNoSymbol(), dbg.sys.Speed(ai.Address))

	case cmdRegs:
		dbg.printStyle(terminal.StyleInstrument).Write([]byte(dbg.sys.Cx4.GetRegisters().String()))

	case cmdReg:
		if err := dbg.sys.Cx4.PutRegister(args[0], args[1]); err != nil {
			return err
		}

	case cmdDRAM:
		return dbg.dram(args)

	case cmdCache:
		for i, b := range dbg.sys.Cx4.CacheBanks() {
			dbg.printLine(terminal.StyleInstrument, "bank %d: %s", i, b)
		}

	case cmdStatus:
		dbg.printLine(terminal.StyleInstrument, "%s", dbg.sys.Cx4.Describe())
		dbg.printLine(terminal.StyleInstrument, "%s", dbg.sys.Sched)

	case cmdMemMap:
		var bank int64
		if len(args) > 0 {
			bank, err = parseNumber(args[0])
			if err != nil {
				return err
			}
			if bank < 0 || bank > 0xff {
				return curated.Errorf("debugger: bank out of range (%s)", args[0])
			}
		}
		dbg.printStyle(terminal.StyleInstrument).Write([]byte(memorymap.Summary(uint8(bank))))

	case cmdCartridge:
		dbg.printLine(terminal.StyleFeedback, "%s", dbg.sys)

	case cmdInsert:
		err := dbg.sys.AttachCartridge(cartridgeloader.NewLoader(args[0], ""))
		if err != nil {
			return err
		}
		dbg.mon.Reset()
		dbg.printLine(terminal.StyleFeedback, "%s", dbg.sys)

	case cmdLog:
		if len(args) > 0 && strings.ToUpper(args[0]) == "CLEAR" {
			logger.Clear()
			return nil
		}
		n := int64(10)
		if len(args) > 0 {
			n, err = parseNumber(args[0])
			if err != nil {
				return err
			}
		}
		logger.Tail(dbg.printStyle(terminal.StyleLog), int(n))

	case cmdMemviz:
		return dbg.memviz(args[0])

	case cmdScript:
		return dbg.script(args)
	}

	return nil
}

func (dbg *Debugger) step(args []string) error {
	coproc := len(args) > 0 && strings.ToUpper(args[0]) == "CX4"
	if coproc {
		args = args[1:]
	}
	if len(args) > 1 {
		return curated.Errorf("debugger: usage: %s", commandUsage[cmdStep])
	}

	n := int64(hardware.ScanlineCycles)
	if coproc {
		n = 1
	}

	if len(args) > 0 {
		var err error
		n, err = parseNumber(args[0])
		if err != nil {
			return err
		}
		if n < 0 {
			return curated.Errorf("debugger: negative number of cycles")
		}
	}

	if coproc {
		dbg.sys.RunCoprocessor(n)
	} else {
		dbg.sys.Step(n)
	}

	return dbg.mon.Check()
}

func (dbg *Debugger) dram(args []string) error {
	from := int64(0)
	length := int64(cx4.DRAMSize)

	var err error

	if len(args) > 0 {
		from, err = parseNumber(args[0])
		if err != nil {
			return err
		}
		if from < 0 || from >= cx4.DRAMSize {
			return curated.Errorf("debugger: offset out of range (%s)", args[0])
		}
		length = cx4.DRAMSize - from
	}
	if len(args) > 1 {
		length, err = parseNumber(args[1])
		if err != nil {
			return err
		}
		if length < 1 {
			return curated.Errorf("debugger: length out of range (%s)", args[1])
		}
	}

	s := strings.Builder{}
	for i := from; i < from+length && i < cx4.DRAMSize; i++ {
		if (i-from)%16 == 0 {
			if i != from {
				s.WriteString("\n")
			}
			s.WriteString(fmt.Sprintf("%03x:", i))
		}
		v, _ := dbg.sys.Cx4.PeekDRAM(int(i))
		s.WriteString(fmt.Sprintf(" %02x", v))
	}
	dbg.printStyle(terminal.StyleInstrument).Write([]byte(s.String()))

	return nil
}

func (dbg *Debugger) memviz(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer f.Close()

	regs := dbg.sys.Cx4.GetRegisters()
	banks := dbg.sys.Cx4.CacheBanks()
	timing := dbg.sys.Sched.Timing
	memviz.Map(f, &regs, &banks, &timing)

	dbg.printLine(terminal.StyleFeedback, "dot graph written to %s", filename)

	return nil
}

func (dbg *Debugger) script(args []string) error {
	switch strings.ToUpper(args[0]) {
	case "RECORD":
		if len(args) != 2 {
			return curated.Errorf("debugger: usage: %s", commandUsage[cmdScript])
		}
		if err := dbg.scribe.StartSession(args[1]); err != nil {
			return err
		}
		// the RECORD command itself should not be in the script
		dbg.scribe.Rollback()
		dbg.printLine(terminal.StyleFeedback, "recording to %s", args[1])
		return nil
	case "END":
		if len(args) != 1 {
			return curated.Errorf("debugger: usage: %s", commandUsage[cmdScript])
		}
		if !dbg.scribe.IsActive() {
			return curated.Errorf("debugger: no script is being recorded")
		}
		filename := dbg.scribe.Filename()
		dbg.scribe.Rollback()
		if err := dbg.scribe.EndSession(); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "recording ended (%s)", filename)
		return nil
	}

	if len(args) != 1 {
		return curated.Errorf("debugger: usage: %s", commandUsage[cmdScript])
	}

	if strings.ToLower(filepath.Ext(args[0])) == ".star" {
		if err := dbg.scribe.StartPlayback(); err != nil {
			return err
		}
		err := scripting.Run(dbg.sys, args[0], nil, dbg.printStyle(terminal.StyleFeedback))
		if errPlayback := dbg.scribe.EndPlayback(); err == nil {
			err = errPlayback
		}
		if err != nil {
			return err
		}
		return dbg.mon.Check()
	}

	return dbg.queue.Load(args[0])
}
