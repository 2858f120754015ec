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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/jetsetilly/gophercx4/cartridgeloader"
	"github.com/jetsetilly/gophercx4/debugger"
	"github.com/jetsetilly/gophercx4/debugger/govern"
	"github.com/jetsetilly/gophercx4/debugger/terminal"
	"github.com/jetsetilly/gophercx4/debugger/terminal/colorterm"
	"github.com/jetsetilly/gophercx4/debugger/terminal/plainterm"
	"github.com/jetsetilly/gophercx4/environment"
	"github.com/jetsetilly/gophercx4/hardware"
	"github.com/jetsetilly/gophercx4/hardware/preferences"
	"github.com/jetsetilly/gophercx4/logger"
	"github.com/jetsetilly/gophercx4/modalflag"
	"github.com/jetsetilly/gophercx4/nwaccess"
	"github.com/jetsetilly/gophercx4/prefs"
	"github.com/jetsetilly/gophercx4/resources"
	"github.com/jetsetilly/gophercx4/scripting"
	"github.com/jetsetilly/gophercx4/statsview"
	"github.com/jetsetilly/gophercx4/version"
	"golang.org/x/sync/errgroup"
)

const defaultInitScript = "monitorInit"

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch the mode selected on the command line. the return value is the exit
// code of the program.
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "MONITOR", "SCRIPT", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "MONITOR":
		err = monitor(md)
	case "SCRIPT":
		err = script(md)
	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

// flags shared by the modes that create an emulation
type commonFlags struct {
	mapping   *string
	log       *bool
	prefs     *string
	statsview *bool
}

func addCommonFlags(md *modalflag.Modes) commonFlags {
	return commonFlags{
		mapping:   md.AddString("mapping", "AUTO", "force use of cartridge mapping"),
		log:       md.AddBool("log", false, "echo log to stdout"),
		prefs:     md.AddString("prefs", "", "preferences for this session only. eg. \"cx4.instantdma::true; nwaccess.port::65500\""),
		statsview: md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address)),
	}
}

// newSystem creates the main emulation and attaches the cartridge, if one
// is named.
func newSystem(md *modalflag.Modes, flgs commonFlags, cartridge string) (*hardware.System, error) {
	if *flgs.log {
		logger.SetEcho(md.Output)
	}

	if *flgs.statsview {
		statsview.Launch(md.Output)
	}

	// the command line preferences are consumed as the preferences are
	// created. anything left over was not recognised
	prefs.PushCommandLineStack(*flgs.prefs)
	p, err := preferences.NewPreferences()
	if unused := prefs.PopCommandLineStack(); unused != "" {
		fmt.Fprintf(md.Output, "! unused preferences: %s\n", unused)
	}
	if err != nil {
		return nil, err
	}

	sys, err := hardware.NewSystem(environment.MainEmulation, p)
	if err != nil {
		return nil, err
	}

	if cartridge != "" {
		err = sys.AttachCartridge(cartridgeloader.NewLoader(cartridge, *flgs.mapping))
		if err != nil {
			return nil, err
		}
	}

	return sys, nil
}

// cartridgeArg returns the optional cartridge argument of a mode.
func cartridgeArg(md *modalflag.Modes) (string, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return "", nil
	case 1:
		return md.GetArg(0), nil
	}
	return "", fmt.Errorf("too many arguments for %s mode", md)
}

func run(md *modalflag.Modes) error {
	md.NewMode()
	flgs := addCommonFlags(md)
	nwa := md.AddBool("nwaccess", true, "serve the network access protocol (also requires the nwaccess.enabled preference)")
	port := md.AddInt("port", 0, "first port to try for network access. zero uses the nwaccess.port preference")
	fpsCap := md.AddBool("fpscap", true, "cap the emulation to the speed of the host system")
	frames := md.AddInt("frames", 0, "number of frames to run for. zero runs until interrupted")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cartridge, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	sys, err := newSystem(md, flgs, cartridge)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	r := &runner{
		sys:       sys,
		ctx:       ctx,
		state:     govern.Running,
		maxFrames: *frames,
	}

	if !sys.HasCartridge() {
		r.state = govern.Stopped
	}

	if *nwa && sys.Env.Prefs.NetworkAccess.Enabled.Get().(bool) {
		if *port == 0 {
			*port = sys.Env.Prefs.NetworkAccess.Port.Get().(int)
		}
		r.srv, err = nwaccess.NewServer(sys, r, *port)
		if err != nil {
			return err
		}
		fmt.Fprintf(md.Output, "network access on %s\n", r.srv.Addr())

		g.Go(func() error {
			return r.srv.Serve(ctx)
		})
	}

	if r.srv == nil && !sys.HasCartridge() {
		return fmt.Errorf("nothing to run without a cartridge or network access")
	}

	if *fpsCap {
		r.period = frameDuration(sys)
		r.limiter = time.NewTicker(r.period)
		defer r.limiter.Stop()
	}

	g.Go(func() error {
		// the server ends when the emulation ends
		defer cancel()
		return sys.Run(r.check)
	})

	return g.Wait()
}

func monitor(md *modalflag.Modes) error {
	md.NewMode()
	flgs := addCommonFlags(md)

	defInitScript, err := resources.JoinPath(defaultInitScript)
	if err != nil {
		return err
	}

	termType := md.AddString("term", "COLOR", "terminal type to use: COLOR, PLAIN")
	initScript := md.AddString("initscript", defInitScript, "script to run on monitor start")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cartridge, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	sys, err := newSystem(md, flgs, cartridge)
	if err != nil {
		return err
	}

	var term terminal.Terminal
	switch strings.ToUpper(*termType) {
	default:
		fmt.Fprintf(md.Output, "! unknown terminal type (%s) defaulting to plain\n", *termType)
		fallthrough
	case "PLAIN":
		term = &plainterm.PlainTerminal{}
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	}

	dbg, err := debugger.NewDebugger(sys, term)
	if err != nil {
		return err
	}

	// a missing init script is not an error
	if _, err := os.Stat(*initScript); err != nil {
		*initScript = ""
	}

	err = dbg.Start(*initScript)
	if err != nil {
		return err
	}

	return sys.Env.Prefs.Save()
}

func script(md *modalflag.Modes) error {
	md.NewMode()
	flgs := addCommonFlags(md)
	rom := md.AddString("rom", "", "cartridge to attach before running the script")
	md.AdditionalHelp("The script argument is a Starlark file. The builtin functions are described in\nthe documentation of the scripting package.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("a single script file is required for %s mode", md)
	}
	filename := md.GetArg(0)

	sys, err := newSystem(md, flgs, *rom)
	if err != nil {
		return err
	}

	return scripting.Run(sys, filepath.Clean(filename), nil, md.Output)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Fprintf(md.Output, "%s\n", r)
	}

	return nil
}
