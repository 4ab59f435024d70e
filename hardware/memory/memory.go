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

package memory

import (
	"errors"
	"fmt"
	"strings"

	"github.com/appleone/appleone/hardware/memory/addresses"
)

// Sentinel errors returned by the memory package.
var (
	ErrROMSize    = errors.New("memory: ROM image does not fit in address space")
	ErrBlitBounds = errors.New("memory: data does not fit in address space")
	ErrDestroyed  = errors.New("memory: address space has been destroyed")
)

// Memory is the full 16bit address space.
type Memory struct {
	// data is nil once Destroy() has been called
	data []uint8

	rom    []uint8
	origin uint16
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The ROM image is copied into the address space at origin. The image must
// not extend past the top of memory.
func NewMemory(rom []uint8, origin uint16) (*Memory, error) {
	if int(origin)+len(rom) > addresses.MemorySize {
		return nil, fmt.Errorf("%w: %d bytes at %#04x", ErrROMSize, len(rom), origin)
	}

	mem := &Memory{
		rom:    make([]uint8, len(rom)),
		origin: origin,
	}
	copy(mem.rom, rom)
	mem.data = make([]uint8, addresses.MemorySize)
	mem.Reset()

	return mem, nil
}

// Reset zeroes every byte of memory and restores the ROM image. A destroyed
// memory is reallocated.
func (mem *Memory) Reset() {
	if mem.data == nil {
		mem.data = make([]uint8, addresses.MemorySize)
	} else {
		clear(mem.data)
	}
	copy(mem.data[mem.origin:], mem.rom)
}

// Destroy releases the memory. Subsequent reads return zero and writes are
// ignored.
func (mem *Memory) Destroy() {
	mem.data = nil
}

// Destroyed returns true if Destroy() has been called and the memory has not
// since been Reset().
func (mem *Memory) Destroyed() bool {
	return mem.data == nil
}

// Read is an implementation of bus.CPUBus.
func (mem *Memory) Read(address uint16) (uint8, error) {
	if mem.data == nil {
		return 0, nil
	}
	return mem.data[address], nil
}

// Write is an implementation of bus.CPUBus.
func (mem *Memory) Write(address uint16, data uint8) error {
	if mem.data == nil {
		return nil
	}
	mem.data[address] = data
	return nil
}

// Peek is an implementation of bus.DebuggerBus.
func (mem *Memory) Peek(address uint16) (uint8, error) {
	return mem.Read(address)
}

// Poke is an implementation of bus.DebuggerBus.
func (mem *Memory) Poke(address uint16, value uint8) error {
	return mem.Write(address, value)
}

// Blit copies data into memory starting at address. The sum of address and
// the length of data must not be greater than 0xffff. If the data does not
// fit then nothing is written.
func (mem *Memory) Blit(data []uint8, address uint16) error {
	if mem.data == nil {
		return ErrDestroyed
	}
	if len(data) > addresses.MemorySize || int(address)+len(data) > addresses.LoadTop {
		return fmt.Errorf("%w: %d bytes at %#04x", ErrBlitBounds, len(data), address)
	}
	copy(mem.data[address:], data)
	return nil
}

// Dump returns a hex dump of memory between origin and memtop inclusive.
// Lines are sixteen bytes wide and are aligned to sixteen byte boundaries.
func (mem *Memory) Dump(origin uint16, memtop uint16) string {
	if memtop < origin {
		return ""
	}

	s := strings.Builder{}
	for a := uint32(origin) &^ 0x0f; a <= uint32(memtop); a += 16 {
		s.WriteString(fmt.Sprintf("%04X:", a))
		for x := uint32(0); x < 16; x++ {
			v, _ := mem.Read(uint16(a + x))
			s.WriteString(fmt.Sprintf(" %02X", v))
		}
		s.WriteString("\n")
	}
	return strings.TrimSuffix(s.String(), "\n")
}
