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

package nwaccess_test

import (
	"bufio"
	"context"
	"io"
	"net"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gophercx4/debugger/govern"
	"github.com/jetsetilly/gophercx4/hardware"
	"github.com/jetsetilly/gophercx4/hardware/preferences"
	"github.com/jetsetilly/gophercx4/nwaccess"
	"github.com/jetsetilly/gophercx4/test"
)

type emulation struct {
	state govern.State
}

func (emu *emulation) State() govern.State {
	return emu.state
}

func (emu *emulation) SetState(state govern.State) {
	emu.state = state
}

func TestServer(t *testing.T) {
	p, err := preferences.NewPreferencesAt(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	sys, err := hardware.NewSystem("test", p)
	test.DemandSuccess(t, err)

	emu := &emulation{state: govern.Running}

	// port zero lets the operating system choose the port
	srv, err := nwaccess.NewServer(sys, emu, 0)
	test.DemandSuccess(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	served := make(chan error, 1)
	go func() {
		served <- srv.Serve(ctx)
	}()

	// the emulation goroutine
	emulating := make(chan struct{})
	go func() {
		defer close(emulating)
		for srv.ServiceWait(ctx) == nil {
		}
	}()

	conn, err := net.Dial("tcp", srv.Addr().String())
	test.DemandSuccess(t, err)
	defer conn.Close()

	rd := bufio.NewReader(conn)
	reply := func(n int) string {
		t.Helper()
		b := make([]byte, n)
		_, err := io.ReadFull(rd, b)
		test.DemandSuccess(t, err)
		return string(b)
	}

	// a command split over two writes
	_, err = conn.Write([]byte("EMU_ST"))
	test.DemandSuccess(t, err)
	_, err = conn.Write([]byte("ATUS\n"))
	test.DemandSuccess(t, err)
	expected := "\nstate:no_game\ngame:\n\n"
	test.ExpectEquality(t, reply(len(expected)), expected)

	_, err = conn.Write([]byte("CORE_WRITE CX4DRAM;$100\n\x00\x00\x00\x00\x02\xca\xfe"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, reply(4), "\nok\n")
	test.ExpectEquality(t, reply(1), "\n")

	_, err = conn.Write([]byte("CORE_READ CX4DRAM;$100;2\n"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, reply(7), "\x00\x00\x00\x00\x02\xca\xfe")

	_, err = conn.Write([]byte("EMU_PAUSE\n"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, reply(5), "\nok\n\n")

	// cancelling the context ends the server and the connection
	cancel()
	test.ExpectSuccess(t, <-served)
	<-emulating

	test.ExpectEquality(t, emu.State(), govern.Paused)

	_, err = rd.ReadByte()
	test.ExpectFailure(t, err)
}

func TestPortRange(t *testing.T) {
	p, err := preferences.NewPreferencesAt(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	sys, err := hardware.NewSystem("test", p)
	test.DemandSuccess(t, err)

	// occupy a port and check that the server chooses another one
	lst, err := net.Listen("tcp", "127.0.0.1:0")
	test.DemandSuccess(t, err)
	defer lst.Close()
	port := lst.Addr().(*net.TCPAddr).Port

	srv, err := nwaccess.NewServer(sys, &emulation{}, port)
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, srv.Addr().(*net.TCPAddr).Port, port)

	// Serve() returns immediately with an already cancelled context
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	test.ExpectSuccess(t, srv.Serve(ctx))
}
