// This file is part of appleone.
//
// appleone is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// appleone is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with appleone.  If not, see <https://www.gnu.org/licenses/>.

package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/appleone/appleone/hardware/memory/addresses"
)

// Sentinel errors returned by the loader package.
var (
	ErrEmptyProgram = errors.New("loader: program contains no data")
	ErrHexDump      = errors.New("loader: malformed hex dump")
)

// Block is a contiguous run of data and the address at which it belongs.
type Block struct {
	Address uint16
	Data    []uint8
}

// End returns the address one past the final byte of the block. The value is
// an int so that it cannot wrap.
func (b Block) End() int {
	return int(b.Address) + len(b.Data)
}

func (b Block) String() string {
	return fmt.Sprintf("%04X: %d bytes", b.Address, len(b.Data))
}

// ParseHexDump reads WozMon style hex dump text. Lines that follow on directly
// from the previous line are joined into a single block.
func ParseHexDump(r io.Reader) ([]Block, error) {
	var blocks []Block

	// the address at which the next continuation line will begin. -1 if no
	// address has been seen yet
	next := -1

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		addr, data, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: missing colon", ErrHexDump, lineNum)
		}

		addr = strings.TrimSpace(addr)
		if addr != "" {
			a, err := strconv.ParseUint(addr, 16, 16)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: address %q", ErrHexDump, lineNum, addr)
			}
			if int(a) != next {
				blocks = append(blocks, Block{Address: uint16(a)})
			}
			next = int(a)
		} else if next == -1 {
			return nil, fmt.Errorf("%w: line %d: no address to continue from", ErrHexDump, lineNum)
		}

		b := &blocks[len(blocks)-1]
		for _, f := range strings.Fields(data) {
			v, err := strconv.ParseUint(f, 16, 8)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: data %q", ErrHexDump, lineNum, f)
			}
			if b.End() >= addresses.LoadTop {
				return nil, fmt.Errorf("%w: line %d: data beyond top of memory", ErrHexDump, lineNum)
			}
			b.Data = append(b.Data, uint8(v))
		}
		next = b.End()
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}

	// remove any blocks that have an address but no data
	n := 0
	for _, b := range blocks {
		if len(b.Data) > 0 {
			blocks[n] = b
			n++
		}
	}
	blocks = blocks[:n]

	if len(blocks) == 0 {
		return nil, ErrEmptyProgram
	}

	return blocks, nil
}
