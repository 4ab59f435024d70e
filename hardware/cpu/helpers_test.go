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

package cpu_test

import (
	"testing"

	"github.com/appleone/appleone/hardware/cpu"
	"github.com/appleone/appleone/hardware/cpu/execution"
)

type mockMem struct {
	internal []uint8

	// number of times each address has been accessed
	reads  map[uint16]int
	writes map[uint16]int
}

func newMockMem() *mockMem {
	return &mockMem{
		internal: make([]uint8, 0x10000),
		reads:    make(map[uint16]int),
		writes:   make(map[uint16]int),
	}
}

func (mem *mockMem) Read(address uint16) (uint8, error) {
	mem.reads[address]++
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	mem.writes[address]++
	mem.internal[address] = data
	return nil
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	if mem.internal[address] != value {
		t.Errorf("memory assertion failed (%#02x - wanted %#02x at address %04x)", mem.internal[address], value, address)
	}
}

const origin = 0x0400

func newCPU() (*cpu.CPU, *mockMem) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.LoadPC(origin)
	return mc, mem
}

func step(t *testing.T, mc *cpu.CPU) execution.Result {
	t.Helper()
	err := mc.ExecuteInstruction()
	if err != nil {
		t.Fatal(err)
	}
	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatalf("%s: %v", mc.LastResult, err)
	}
	return mc.LastResult
}
