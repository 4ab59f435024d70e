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

package rom_test

import (
	"testing"

	"github.com/appleone/appleone/hardware/rom"
	"github.com/appleone/appleone/test"
)

func TestWozMon(t *testing.T) {
	r := rom.WozMon()
	test.DemandEquality(t, len(r), 0x100)

	// reset vector points to the start of the ROM
	test.ExpectEquality(t, r[0xfc], 0x00)
	test.ExpectEquality(t, r[0xfd], 0xff)

	// NMI vector
	test.ExpectEquality(t, r[0xfa], 0x00)
	test.ExpectEquality(t, r[0xfb], 0x0f)

	// first instruction is CLD
	test.ExpectEquality(t, r[0x00], 0xd8)

	// ECHO subroutine is at 0xffef: BIT DSP
	test.ExpectEquality(t, r[0xef], 0x2c)
	test.ExpectEquality(t, r[0xf0], 0x12)
	test.ExpectEquality(t, r[0xf1], 0xd0)

	// the returned slice is a copy
	r[0] = 0x00
	test.ExpectEquality(t, rom.WozMon()[0], 0xd8)
}
