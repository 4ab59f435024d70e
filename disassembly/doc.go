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

// Package disassembly produces a linear disassembly of a region of memory.
//
// Each instruction is decoded by a CPU attached to a read-only view of
// memory. Reads use Peek() and so do not trigger any I/O side effects and
// writes are discarded. The disassembly proceeds from one instruction to the
// next in address order; it does not follow jumps or branches. This means
// that data will be disassembled as though it were code.
package disassembly
