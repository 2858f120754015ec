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

package cartridgeloader_test

import (
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gophercx4/cartridgeloader"
	"github.com/jetsetilly/gophercx4/curated"
	"github.com/jetsetilly/gophercx4/test"
)

func romData(n int) []byte {
	d := make([]byte, n)
	for i := range d {
		d[i] = byte(i)
	}
	return d
}

func TestNewLoader(t *testing.T) {
	cl := cartridgeloader.NewLoader("roms/MegaManX2.sfc", "")
	test.ExpectEquality(t, cl.Mapping, "LOROM")
	test.ExpectEquality(t, cl.ShortName(), "MegaManX2")

	cl = cartridgeloader.NewLoader("roms/unknown.dat", "auto")
	test.ExpectEquality(t, cl.Mapping, "AUTO")

	cl = cartridgeloader.NewLoader("roms/unknown.dat", "lorom")
	test.ExpectEquality(t, cl.Mapping, "LOROM")
}

func TestLoadFile(t *testing.T) {
	data := romData(0x8000)
	fn := filepath.Join(t.TempDir(), "test.sfc")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0600))

	cl := cartridgeloader.NewLoader(fn, "")
	test.ExpectFailure(t, cl.HasLoaded())
	test.DemandSuccess(t, cl.Load())
	test.ExpectSuccess(t, cl.HasLoaded())
	test.ExpectFailure(t, cl.HadCopierHeader)
	test.ExpectEquality(t, len(cl.Data), 0x8000)
	test.ExpectEquality(t, cl.Hash, fmt.Sprintf("%x", sha1.Sum(data)))
}

func TestCopierHeader(t *testing.T) {
	data := romData(0x8000)
	fn := filepath.Join(t.TempDir(), "test.smc")
	test.DemandSuccess(t, os.WriteFile(fn, append(make([]byte, cartridgeloader.CopierHeaderSize), data...), 0600))

	cl := cartridgeloader.NewLoader(fn, "")
	test.DemandSuccess(t, cl.Load())
	test.ExpectSuccess(t, cl.HadCopierHeader)
	test.ExpectEquality(t, len(cl.Data), 0x8000)
	test.ExpectEquality(t, cl.Data[1], byte(1))

	// the hash is of the data without the header
	test.ExpectEquality(t, cl.Hash, fmt.Sprintf("%x", sha1.Sum(data)))
}

func TestHashMismatch(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.sfc")
	test.DemandSuccess(t, os.WriteFile(fn, romData(1024), 0600))

	cl := cartridgeloader.NewLoader(fn, "")
	cl.Hash = "0000"
	err := cl.Load()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.UnexpectedHash))
	test.ExpectFailure(t, cl.HasLoaded())
}

func TestMissingFile(t *testing.T) {
	cl := cartridgeloader.NewLoader(filepath.Join(t.TempDir(), "missing.sfc"), "")
	test.ExpectFailure(t, cl.Load())
}

func TestUnsupportedScheme(t *testing.T) {
	cl := cartridgeloader.NewLoader("ftp://example.com/rom.sfc", "")
	err := cl.Load()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.UnsupportedScheme))
}

func TestLoadHTTP(t *testing.T) {
	data := romData(2048)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rom.sfc" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	cl := cartridgeloader.NewLoader(srv.URL+"/rom.sfc", "")
	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, len(cl.Data), 2048)

	cl = cartridgeloader.NewLoader(srv.URL+"/missing.sfc", "")
	test.ExpectFailure(t, cl.Load())
}
