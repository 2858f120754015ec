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

package scripting

import (
	"errors"
	"fmt"
	"io"

	"github.com/jetsetilly/gophercx4/curated"
	"github.com/jetsetilly/gophercx4/hardware"
	"github.com/jetsetilly/gophercx4/logger"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Run the script in filename. If src is not nil then it is used as the
// source of the script instead of the file. See the documentation for
// starlark.ExecFileOptions() for valid src types.
func Run(sys *hardware.System, filename string, src any, output io.Writer) error {
	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			if output != nil {
				io.WriteString(output, msg)
				io.WriteString(output, "\n")
			}
		},
	}

	opts := syntax.FileOptions{
		While:           true,
		TopLevelControl: true,
	}

	_, err := starlark.ExecFileOptions(&opts, thread, filename, src, builtins(sys))
	if err != nil {
		var evalErr *starlark.EvalError
		if errors.As(err, &evalErr) {
			return curated.Errorf("scripting: %v", evalErr.Backtrace())
		}
		return curated.Errorf("scripting: %v", err)
	}

	return nil
}

// the address and data arguments are checked against the size of the host
// bus and a byte respectively
func address(fn string, v int) (uint32, error) {
	if v < 0 || v > 0xffffff {
		return 0, fmt.Errorf("%s: address out of range (%#x)", fn, v)
	}
	return uint32(v), nil
}

func data(fn string, v int) (uint8, error) {
	if v < 0 || v > 0xff {
		return 0, fmt.Errorf("%s: data out of range (%#x)", fn, v)
	}
	return uint8(v), nil
}

func builtins(sys *hardware.System) starlark.StringDict {
	// reader functions take an address and return a byte
	reader := func(name string, f func(uint32) uint8) *starlark.Builtin {
		return starlark.NewBuiltin(name, func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var a int
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "addr", &a); err != nil {
				return nil, err
			}
			addr, err := address(b.Name(), a)
			if err != nil {
				return nil, err
			}
			return starlark.MakeInt(int(f(addr))), nil
		})
	}

	// writer functions take an address and a byte and return None
	writer := func(name string, f func(uint32, uint8)) *starlark.Builtin {
		return starlark.NewBuiltin(name, func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var a, d int
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "addr", &a, "data", &d); err != nil {
				return nil, err
			}
			addr, err := address(b.Name(), a)
			if err != nil {
				return nil, err
			}
			v, err := data(b.Name(), d)
			if err != nil {
				return nil, err
			}
			f(addr, v)
			return starlark.None, nil
		})
	}

	// clock functions take a number of cycles
	clock := func(name string, f func(int64)) *starlark.Builtin {
		return starlark.NewBuiltin(name, func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var n int
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "cycles", &n); err != nil {
				return nil, err
			}
			if n < 0 {
				return nil, fmt.Errorf("%s: negative number of cycles", b.Name())
			}
			f(int64(n))
			return starlark.None, nil
		})
	}

	// query functions take no arguments and return a bool
	query := func(name string, f func() bool) *starlark.Builtin {
		return starlark.NewBuiltin(name, func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
				return nil, err
			}
			return starlark.Bool(f()), nil
		})
	}

	return starlark.StringDict{
		"read":  reader("read", sys.Read),
		"peek":  reader("peek", sys.Peek),
		"write": writer("write", sys.Write),
		"poke":  writer("poke", sys.Poke),
		"speed": starlark.NewBuiltin("speed", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var a int
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "addr", &a); err != nil {
				return nil, err
			}
			addr, err := address(b.Name(), a)
			if err != nil {
				return nil, err
			}
			return starlark.MakeInt(sys.Speed(addr)), nil
		}),
		"step":   clock("step", sys.Step),
		"run":    clock("run", sys.RunCoprocessor),
		"halted": query("halted", sys.Cx4.Halted),
		"busy":   query("busy", sys.Cx4.Busy),
		"register": starlark.NewBuiltin("register", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var name, value string
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "name", &name, "value", &value); err != nil {
				return nil, err
			}
			if err := sys.Cx4.PutRegister(name, value); err != nil {
				return nil, err
			}
			return starlark.None, nil
		}),
		"log": starlark.NewBuiltin("log", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var msg string
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "message", &msg); err != nil {
				return nil, err
			}
			logger.Log(sys.Env, "script", msg)
			return starlark.None, nil
		}),
	}
}
