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

// Package registers implements the three types of register found in the 6502.
// The most common type is the 8bit register; the accumulator and the two
// index registers. The stack pointer is also an 8bit register but addresses
// are always in page one. The program counter is 16bit and the status
// register is a collection of flags.
//
// None of the register types update the status register directly. Instead,
// the results of operations are returned or can be tested for, leaving it to
// the CPU to decide which flags are affected. For instance:
//
//	a.Load(10)
//	carry, overflow := a.Subtract(11, true)
//	sr.Zero = a.IsZero()
package registers
