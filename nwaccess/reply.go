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
	"encoding/binary"
	"strings"
)

// the size of the header of a binary block
const binaryHeaderLen = 5

func hashReply(reply string) []byte {
	if reply == "" {
		return []byte("\n\n")
	}
	if strings.HasSuffix(reply, "\n") {
		return []byte("\n" + reply + "\n")
	}
	return []byte("\n" + reply + "\n\n")
}

func emptyListReply() []byte {
	return []byte("\nnone:none\n\n")
}

func errorReply(msg string) []byte {
	return []byte("\nerror:" + strings.ReplaceAll(msg, "\n", " ") + "\n\n")
}

func okReply() []byte {
	return []byte("\nok\n\n")
}

func binaryReply(data []byte) []byte {
	reply := make([]byte, binaryHeaderLen, binaryHeaderLen+len(data))
	binary.BigEndian.PutUint32(reply[1:], uint32(len(data)))
	return append(reply, data...)
}

// binaryBlock returns the length of the binary block at the start of data. If
// the header is not complete then the second return value is false.
func binaryBlock(data []byte) (int, bool) {
	if len(data) < binaryHeaderLen {
		return 0, false
	}
	return int(binary.BigEndian.Uint32(data[1:binaryHeaderLen])), true
}
