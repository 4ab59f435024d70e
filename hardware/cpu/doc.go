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

// Package cpu emulates the 6502 microprocessor found in the Apple-1.
//
// The CPU is connected to memory through the bus.CPUBus interface. Every
// read or write of memory made by an instruction is made exactly once; there
// are no phantom reads or writes. This is important for memory mapped
// peripherals where a read has side effects.
//
// The CPU is stepped one instruction at a time with ExecuteInstruction(). The
// number of cycles consumed by the instruction is recorded in LastResult
// along with other information about the instruction.
//
// Only the documented instructions are implemented. An undocumented opcode
// is treated as a single byte instruction that does nothing. It takes two
// cycles to complete and a log entry is created.
//
// Decimal mode is fully supported.
//
// The CPU does not respond to interrupts. The IRQ and NMI lines are not
// connected in the Apple-1 as emulated here. The BRK instruction is
// supported and jumps through the IRQ vector as normal.
package cpu
