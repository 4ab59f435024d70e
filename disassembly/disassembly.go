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

package disassembly

import (
	"fmt"
	"io"
	"strings"

	"github.com/appleone/appleone/hardware/cpu"
	"github.com/appleone/appleone/hardware/cpu/execution"
	"github.com/appleone/appleone/hardware/memory/bus"
)

// Entry is a single disassembled instruction.
type Entry struct {
	Result execution.Result

	// the bytes that make up the instruction
	Bytes []uint8
}

func (e Entry) String() string {
	b := make([]string, len(e.Bytes))
	for i, v := range e.Bytes {
		b[i] = fmt.Sprintf("%02X", v)
	}
	return fmt.Sprintf("%-9s %s", strings.Join(b, " "), e.Result.String())
}

// readOnly adapts a bus.DebuggerBus to the bus.CPUBus interface. Writes are
// ignored.
type readOnly struct {
	mem bus.DebuggerBus
}

func (ro readOnly) Read(address uint16) (uint8, error) {
	return ro.mem.Peek(address)
}

func (ro readOnly) Write(address uint16, data uint8) error {
	return nil
}

// FromMemory disassembles every instruction that starts between origin and
// memtop inclusive. The final instruction may extend beyond memtop.
func FromMemory(mem bus.DebuggerBus, origin uint16, memtop uint16) ([]Entry, error) {
	var entries []Entry

	if memtop < origin {
		return entries, nil
	}

	ro := readOnly{mem: mem}
	mc := cpu.NewCPU(ro)

	address := int(origin)
	for address <= int(memtop) {
		mc.LoadPC(uint16(address))
		err := mc.ExecuteInstruction()
		if err != nil {
			return nil, fmt.Errorf("disassembly: %w", err)
		}

		r := mc.LastResult
		r.Final = false
		r.PageFault = false

		e := Entry{
			Result: r,
			Bytes:  make([]uint8, r.ByteCount),
		}
		for i := range e.Bytes {
			e.Bytes[i], _ = mem.Peek(uint16(address + i))
		}
		entries = append(entries, e)

		address += r.ByteCount
	}

	return entries, nil
}

// Write the disassembly to output, one instruction per line.
func Write(output io.Writer, entries []Entry) error {
	for _, e := range entries {
		_, err := fmt.Fprintln(output, e)
		if err != nil {
			return err
		}
	}
	return nil
}
