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

package nwaccess

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jetsetilly/gophercx4/cartridgeloader"
	"github.com/jetsetilly/gophercx4/debugger/govern"
	"github.com/jetsetilly/gophercx4/hardware/cartridge"
	"github.com/jetsetilly/gophercx4/version"
)

// the name of the only core
const coreName = "gophercx4"

// the name of the only platform
const platformName = "snes"

// command runs a single command and returns the reply. the data argument is
// the binary block that followed the command, if any.
func (srv *Server) command(ctx context.Context, cmd string, args string, data []byte) []byte {
	switch cmd {
	case "EMU_INFO":
		return emuInfo()
	case "CORES_LIST":
		return coresList(args)
	case "CORE_INFO":
		return coreInfo(args)
	case "CORE_CURRENT_INFO":
		return coreInfo("")
	case "CORE_MEMORIES":
		return coreMemories()
	case "LOAD_CORE":
		return loadCore(args)

	case "EMU_STATUS":
		return srv.onEmulation(ctx, srv.emuStatus)
	case "GAME_INFO":
		return srv.onEmulation(ctx, srv.gameInfo)
	case "CORE_RESET":
		return srv.onEmulation(ctx, srv.coreReset)
	case "EMU_RESET":
		return srv.onEmulation(ctx, srv.emuReset)
	case "EMU_PAUSE":
		return srv.onEmulation(ctx, srv.emuPause)
	case "EMU_RESUME":
		return srv.onEmulation(ctx, srv.emuResume)
	case "EMU_STOP":
		return srv.onEmulation(ctx, srv.emuStop)
	case "EMU_RELOAD":
		return srv.onEmulation(ctx, srv.emuReload)
	case "DEBUG_BREAK":
		return srv.onEmulation(ctx, srv.debugBreak)
	case "DEBUG_CONTINUE":
		return srv.onEmulation(ctx, srv.debugContinue)
	case "LOAD_GAME":
		return srv.onEmulation(ctx, func() []byte {
			return srv.loadGame(args)
		})

	case "CORE_READ":
		name, regions := parseMemoryArgs(args)
		return srv.onEmulation(ctx, func() []byte {
			return coreRead(srv.sys, name, regions)
		})
	case "CORE_WRITE":
		name, regions := parseMemoryArgs(args)
		return srv.onEmulation(ctx, func() []byte {
			return coreWrite(srv.sys, name, regions, data)
		})
	}

	return errorReply("unsupported command")
}

func emuInfo() []byte {
	v, _, _ := version.Version()
	return hashReply(fmt.Sprintf("name:%s\nversion:%s", version.ApplicationName, v))
}

func coresList(platform string) []byte {
	if platform != "" && strings.ToLower(platform) != platformName {
		return emptyListReply()
	}
	return hashReply(fmt.Sprintf("platform:%s\nname:%s", platformName, coreName))
}

func coreInfo(core string) []byte {
	if core != "" && core != coreName {
		return errorReply("no such core")
	}
	return hashReply(fmt.Sprintf("platform:%s\nname:%s", platformName, coreName))
}

func loadCore(core string) []byte {
	// there is only one core and it can not be unloaded
	if core != coreName {
		return errorReply("not supported")
	}
	return okReply()
}

// the functions below must only be called on the emulation goroutine

func (srv *Server) gameName() string {
	return strings.ReplaceAll(srv.sys.Loader.ShortName(), "\n", " ")
}

func (srv *Server) emuStatus() []byte {
	var state string
	var game string

	switch {
	case !srv.sys.HasCartridge():
		state = "no_game"
	case srv.emu.State() == govern.Stopped:
		state = "stopped"
	case srv.emu.State() == govern.Paused:
		state = "paused"
	default:
		state = "running"
	}

	if srv.sys.HasCartridge() {
		game = srv.gameName()
	}

	return hashReply(fmt.Sprintf("state:%s\ngame:%s", state, game))
}

func (srv *Server) gameInfo() []byte {
	if !srv.sys.HasCartridge() {
		return hashReply("")
	}

	region := "NTSC"
	if srv.sys.Region() == cartridge.PAL {
		region = "PAL"
	}

	return hashReply(fmt.Sprintf("name:%s\nfile:%s\nregion:%s", srv.gameName(), srv.sys.Loader.Filename, region))
}

// hard reset
func (srv *Server) coreReset() []byte {
	srv.sys.PowerOn()
	return okReply()
}

// soft reset
func (srv *Server) emuReset() []byte {
	srv.sys.Reset()
	return okReply()
}

func (srv *Server) emuPause() []byte {
	if srv.emu.State() != govern.Stopped {
		srv.emu.SetState(govern.Paused)
	}
	return okReply()
}

func (srv *Server) emuResume() []byte {
	if !srv.sys.HasCartridge() {
		return errorReply("no game loaded")
	}
	if srv.emu.State() == govern.Stopped {
		srv.sys.PowerOn()
	}
	srv.emu.SetState(govern.Running)
	return okReply()
}

// debugBreak and debugContinue toggle between the running and paused
// states. unlike EMU_PAUSE and EMU_RESUME they have no effect in any other
// state
func (srv *Server) debugBreak() []byte {
	if srv.emu.State() == govern.Running {
		srv.emu.SetState(govern.Paused)
	}
	return okReply()
}

func (srv *Server) debugContinue() []byte {
	if srv.emu.State() == govern.Paused {
		srv.emu.SetState(govern.Running)
	}
	return okReply()
}

func (srv *Server) emuStop() []byte {
	srv.emu.SetState(govern.Stopped)
	return okReply()
}

func (srv *Server) emuReload() []byte {
	if !srv.sys.HasCartridge() {
		srv.emuStop()
		return srv.emuResume()
	}

	// a cartridge that was not loaded from a file is reattached with the
	// data it already has
	cl := srv.sys.Loader
	if cl.Filename != "" {
		cl = cartridgeloader.NewLoader(cl.Filename, cl.Mapping)
	}
	if err := srv.sys.AttachCartridge(cl); err != nil {
		srv.log("%v", err)
		return errorReply("could not reload game")
	}

	return okReply()
}

func (srv *Server) loadGame(path string) []byte {
	if path == "" {
		srv.sys.Eject()
		return okReply()
	}

	if _, err := os.Stat(path); err != nil {
		return errorReply("no such file")
	}

	srv.sys.Eject()
	if err := srv.sys.AttachCartridge(cartridgeloader.NewLoader(path, "")); err != nil {
		srv.log("%v", err)
		return errorReply("could not load game")
	}

	// loading a game powers on a stopped emulation
	if srv.emu.State() == govern.Stopped {
		srv.emu.SetState(govern.Running)
	}

	return okReply()
}
