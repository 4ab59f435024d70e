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

package execution

import (
	"fmt"

	"github.com/appleone/appleone/hardware/cpu/instructions"
)

// Result records the state/result of the most recent CPU instruction.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// the opcode read at Address. Defn is nil if the opcode is undocumented
	OpCode uint8
	Defn   *instructions.Definition

	// the number of bytes read during instruction decode
	ByteCount int

	// the operand of the instruction, if there is one
	InstructionData uint16

	// number of cycles taken by the instruction, including any additional
	// cycles for page faults or branching
	Cycles int

	// whether an extra cycle was required because of 8 bit adder overflow
	PageFault bool

	// whether a branch instruction resulted in the branch being taken
	BranchSuccess bool

	// whether this data has been finalised
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("%04x ??? (%02x)", r.Address, r.OpCode)
	}

	var operand string

	switch r.Defn.AddressingMode {
	case instructions.Implied:
	case instructions.Immediate:
		operand = fmt.Sprintf("#$%02x", r.InstructionData)
	case instructions.Relative:
		// branch target is relative to the address of the next instruction
		target := r.Address + 2 + uint16(int8(r.InstructionData))
		operand = fmt.Sprintf("$%04x", target)
	case instructions.Absolute:
		operand = fmt.Sprintf("$%04x", r.InstructionData)
	case instructions.ZeroPage:
		operand = fmt.Sprintf("$%02x", r.InstructionData)
	case instructions.Indirect:
		operand = fmt.Sprintf("($%04x)", r.InstructionData)
	case instructions.IndexedIndirect:
		operand = fmt.Sprintf("($%02x,X)", r.InstructionData)
	case instructions.IndirectIndexed:
		operand = fmt.Sprintf("($%02x),Y", r.InstructionData)
	case instructions.AbsoluteIndexedX:
		operand = fmt.Sprintf("$%04x,X", r.InstructionData)
	case instructions.AbsoluteIndexedY:
		operand = fmt.Sprintf("$%04x,Y", r.InstructionData)
	case instructions.ZeroPageIndexedX:
		operand = fmt.Sprintf("$%02x,X", r.InstructionData)
	case instructions.ZeroPageIndexedY:
		operand = fmt.Sprintf("$%02x,Y", r.InstructionData)
	}

	s := fmt.Sprintf("%04x %s", r.Address, r.Defn.Operator)
	if operand != "" {
		s = fmt.Sprintf("%s %s", s, operand)
	}

	if r.Final {
		s = fmt.Sprintf("%s [%d]", s, r.Cycles)
	}

	if r.PageFault {
		s = fmt.Sprintf("%s page-fault", s)
	}

	return s
}
