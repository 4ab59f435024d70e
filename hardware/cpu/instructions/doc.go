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

// Package instructions defines the documented instruction set of the 6502.
// Each opcode has a Definition describing its operator, addressing mode, size
// and base cycle count.
//
// Opcodes that are not documented have no definition. GetDefinitions()
// returns nil in those positions and the CPU treats them as single byte
// no-operations.
package instructions
