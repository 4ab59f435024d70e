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

package disassembly_test

import (
	"testing"

	"github.com/appleone/appleone/disassembly"
	"github.com/appleone/appleone/hardware/keyboard"
	"github.com/appleone/appleone/hardware/memory"
	"github.com/appleone/appleone/hardware/memory/addresses"
	"github.com/appleone/appleone/hardware/pia"
	"github.com/appleone/appleone/hardware/rom"
	"github.com/appleone/appleone/test"
)

func TestWozMon(t *testing.T) {
	mem, err := memory.NewMemory(rom.WozMon(), addresses.OriginROM)
	test.DemandSuccess(t, err)

	entries, err := disassembly.FromMemory(mem, 0xff00, 0xff04)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(entries), 4)

	w := &test.Writer{}
	test.ExpectSuccess(t, disassembly.Write(w, entries))
	test.ExpectEquality(t, w.String(), ""+
		"D8        ff00 CLD\n"+
		"58        ff01 CLI\n"+
		"A0 7F     ff02 LDY #$7f\n"+
		"8C 12 D0  ff04 STY $d012\n")

	// memory is not changed by the disassembly
	v, _ := mem.Peek(addresses.DSP)
	test.ExpectEquality(t, v, uint8(0))
}

func TestUndocumented(t *testing.T) {
	mem, err := memory.NewMemory(rom.WozMon(), addresses.OriginROM)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, mem.Blit([]uint8{0x02, 0xea}, 0x0300))

	entries, err := disassembly.FromMemory(mem, 0x0300, 0x0301)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(entries), 2)
	test.ExpectEquality(t, entries[0].String(), "02        0300 ??? (02)")
	test.ExpectEquality(t, entries[1].String(), "EA        0301 NOP")
}

func TestNoSideEffects(t *testing.T) {
	mem, err := memory.NewMemory(rom.WozMon(), addresses.OriginROM)
	test.DemandSuccess(t, err)
	kb := keyboard.NewQueue(4)
	p := pia.NewPIA(mem, kb)
	defer p.End()

	// LDA KBD
	test.DemandSuccess(t, mem.Blit([]uint8{0xad, 0x10, 0xd0}, 0x0300))
	test.DemandSuccess(t, kb.Append('A'|0x80))

	entries, err := disassembly.FromMemory(p, 0x0300, 0x0300)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(entries), 1)
	test.ExpectEquality(t, entries[0].String(), "AD 10 D0  0300 LDA $d010")
	test.ExpectEquality(t, kb.Len(), 1)
}

func TestEmptyRange(t *testing.T) {
	mem, err := memory.NewMemory(rom.WozMon(), addresses.OriginROM)
	test.DemandSuccess(t, err)

	entries, err := disassembly.FromMemory(mem, 0x0301, 0x0300)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(entries), 0)
}
