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
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"

	"github.com/jetsetilly/gophercx4/curated"
	"github.com/jetsetilly/gophercx4/debugger/govern"
	"github.com/jetsetilly/gophercx4/hardware"
	"github.com/jetsetilly/gophercx4/hardware/preferences"
	"github.com/jetsetilly/gophercx4/logger"
	"golang.org/x/sync/errgroup"
)

// Emulation is the part of the emulator that is controlled by the EMU_PAUSE,
// EMU_RESUME and EMU_STOP commands. The functions are only called on the
// emulation goroutine.
type Emulation interface {
	State() govern.State
	SetState(govern.State)
}

// Request is a command waiting to be run on the emulation goroutine.
type Request struct {
	f     func() []byte
	reply chan []byte
}

// Service the request. Must only be called on the emulation goroutine.
func (req Request) Service() {
	req.reply <- req.f()
}

// Server for the network access protocol.
type Server struct {
	sys *hardware.System
	emu Emulation

	listener net.Listener
	requests chan Request
}

// NewServer is the preferred method of initialisation for the Server type.
// The server listens on the first free port in the range beginning with the
// port argument. Connections are not accepted until Serve() is called.
func NewServer(sys *hardware.System, emu Emulation, port int) (*Server, error) {
	srv := &Server{
		sys:      sys,
		emu:      emu,
		requests: make(chan Request, 16),
	}

	var err error
	for p := port; p < port+preferences.PortRange; p++ {
		srv.listener, err = net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", p))
		if err == nil {
			break
		}
	}
	if err != nil {
		return nil, curated.Errorf("nwaccess: %v", err)
	}

	srv.log("listening on %s", srv.listener.Addr())

	return srv, nil
}

// Addr returns the address the server is listening on.
func (srv *Server) Addr() net.Addr {
	return srv.listener.Addr()
}

func (srv *Server) log(pattern string, args ...any) {
	logger.Logf(srv.sys.Env, "nwaccess", pattern, args...)
}

// Serve accepts and serves connections until the context is cancelled. Each
// connection is served in its own goroutine. The listener is closed when
// Serve() returns.
func (srv *Server) Serve(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		<-ctx.Done()
		srv.listener.Close()
		return nil
	})

	g.Go(func() error {
		for {
			conn, err := srv.listener.Accept()
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return curated.Errorf("nwaccess: %v", err)
			}
			g.Go(func() error {
				srv.handle(ctx, conn)
				return nil
			})
		}
	})

	return g.Wait()
}

// Service all outstanding requests without waiting. Must only be called on
// the emulation goroutine.
func (srv *Server) Service() {
	for {
		select {
		case req := <-srv.requests:
			req.Service()
		default:
			return
		}
	}
}

// ServiceWait waits for a single request and services it. Returns early if
// the context is cancelled. Must only be called on the emulation goroutine.
func (srv *Server) ServiceWait(ctx context.Context) error {
	select {
	case req := <-srv.requests:
		req.Service()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// onEmulation runs the function on the emulation goroutine and waits for the
// reply.
func (srv *Server) onEmulation(ctx context.Context, f func() []byte) []byte {
	req := Request{
		f:     f,
		reply: make(chan []byte, 1),
	}

	select {
	case srv.requests <- req:
	case <-ctx.Done():
		return errorReply("emulation not available")
	}

	select {
	case reply := <-req.reply:
		return reply
	case <-ctx.Done():
		return errorReply("emulation not available")
	}
}

func (srv *Server) handle(ctx context.Context, conn net.Conn) {
	stop := context.AfterFunc(ctx, func() {
		conn.Close()
	})
	defer stop()
	defer conn.Close()

	srv.log("connection from %s", conn.RemoteAddr())

	var buf []byte
	chunk := make([]byte, 4096)

	for {
		n, err := conn.Read(chunk)
		if n > 0 {
			var errWrite error
			buf, errWrite = srv.process(ctx, conn, append(buf, chunk[:n]...))
			if errWrite != nil {
				srv.log("%v", errWrite)
				return
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) && ctx.Err() == nil {
				srv.log("%v", err)
			}
			srv.log("connection from %s closed", conn.RemoteAddr())
			return
		}
	}
}

// process all complete commands in the data and write the replies. returns
// the data that could not be processed yet because it is incomplete.
func (srv *Server) process(ctx context.Context, w io.Writer, data []byte) ([]byte, error) {
	for len(data) > 0 {
		// a dangling binary block from a previous command that did not use it
		if data[0] == 0x00 {
			n, ok := binaryBlock(data)
			if !ok || len(data)-binaryHeaderLen < n {
				break
			}
			data = data[binaryHeaderLen+n:]
			continue
		}

		p := bytes.IndexByte(data, '\n')
		if p < 0 {
			break
		}

		cmd, args, _ := strings.Cut(string(data[:p]), " ")

		var reply []byte

		if cmd == "CORE_WRITE" {
			rest := data[p+1:]

			// wait for the start of the binary block
			if len(rest) < 1 {
				break
			}

			if rest[0] != 0x00 {
				reply = errorReply("no data")
			} else {
				n, ok := binaryBlock(rest)
				if !ok || len(rest)-binaryHeaderLen < n {
					break
				}
				wr := bytes.Clone(rest[binaryHeaderLen : binaryHeaderLen+n])
				if _, err := w.Write(srv.command(ctx, cmd, args, wr)); err != nil {
					return nil, curated.Errorf("nwaccess: %v", err)
				}
				data = rest[binaryHeaderLen+n:]
				continue
			}
		} else {
			reply = srv.command(ctx, cmd, args, nil)
		}

		if _, err := w.Write(reply); err != nil {
			return nil, curated.Errorf("nwaccess: %v", err)
		}

		data = data[p+1:]
	}

	return data, nil
}
