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

// Package addresses names the special addresses of the machine's memory map.
package addresses

// Memory map of the Apple-1. Everything that isn't one of the I/O registers
// below is treated as RAM; there are no mirrors.
const (
	// size of the full 16bit address space
	MemorySize = 0x10000

	// a loaded block must satisfy address+length <= LoadTop
	LoadTop = 0xffff

	// WozMon ROM occupies the top page of memory
	OriginROM = uint16(0xff00)
	MemtopROM = uint16(0xffff)
)

// Vectors read by the CPU when it is reset or interrupted.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)
)

// The PIA registers used by the keyboard and display.
const (
	// keyboard data. bit 7 is always set when the data is valid
	KBD = uint16(0xd010)

	// keyboard control. bit 7 is set when KBD holds an unread character
	KBDCR = uint16(0xd011)

	// display data. bits 0 to 6 are the character. bit 7 is cleared once the
	// display has accepted the character
	DSP = uint16(0xd012)

	// display control. initialised by the ROM but otherwise unused
	DSPCR = uint16(0xd013)
)

// IORegisters is the complete set of memory-mapped I/O addresses. The set is
// fixed for the lifetime of the machine.
var IORegisters = [...]uint16{KBD, KBDCR, DSP, DSPCR}

// IsIORegister returns true if the address is one of the I/O registers.
func IsIORegister(address uint16) bool {
	return address >= KBD && address <= DSPCR
}

// Canonical returns the name of the register at address or the empty string
// if the address is not a register.
func Canonical(address uint16) string {
	switch address {
	case KBD:
		return "KBD"
	case KBDCR:
		return "KBDCR"
	case DSP:
		return "DSP"
	case DSPCR:
		return "DSPCR"
	}
	return ""
}
