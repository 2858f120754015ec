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
	"time"

	"github.com/jetsetilly/gophercx4/debugger/govern"
	"github.com/jetsetilly/gophercx4/hardware"
	"github.com/jetsetilly/gophercx4/nwaccess"
)

// runner drives the emulation in RUN mode. It satisfies the
// nwaccess.Emulation interface and the state it holds is changed by network
// access requests, which are only ever serviced by the check() function.
type runner struct {
	sys *hardware.System
	srv *nwaccess.Server
	ctx context.Context

	state govern.State

	// limits the frame rate. nil if the frame rate is not capped
	limiter *time.Ticker
	period  time.Duration

	scanline  int
	frame     int
	maxFrames int
}

func (r *runner) State() govern.State {
	return r.state
}

func (r *runner) SetState(state govern.State) {
	r.state = state
}

// check is called by hardware.System.Run() after every scanline.
func (r *runner) check() (govern.State, error) {
	select {
	case <-r.ctx.Done():
		return govern.Ending, nil
	default:
	}

	if r.state != govern.Running {
		if r.srv == nil {
			<-r.ctx.Done()
			return govern.Ending, nil
		}

		// nothing happens to the emulation until a request arrives. a
		// cancelled context is noticed on the next call to check()
		_ = r.srv.ServiceWait(r.ctx)
		return r.state, nil
	}

	r.scanline++
	if r.scanline < hardware.ScanlinesPerFrame {
		return r.state, nil
	}
	r.scanline = 0
	r.frame++

	if r.srv != nil {
		r.srv.Service()
	}

	if r.maxFrames > 0 && r.frame >= r.maxFrames {
		return govern.Ending, nil
	}

	if r.limiter != nil {
		// the clock frequency changes with the region of the cartridge
		if d := frameDuration(r.sys); d != r.period {
			r.period = d
			r.limiter.Reset(d)
		}

		select {
		case <-r.limiter.C:
		case <-r.ctx.Done():
			return govern.Ending, nil
		}
	}

	return r.state, nil
}

// frameDuration returns the length of one frame of the host system.
func frameDuration(sys *hardware.System) time.Duration {
	cycles := int64(hardware.ScanlineCycles * hardware.ScanlinesPerFrame)
	return time.Duration(cycles * int64(time.Second) / sys.Sched.CPUFrequency())
}
