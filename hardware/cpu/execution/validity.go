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

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return fmt.Errorf("cpu: not checking an unfinalised execution result")
	}

	if r.Defn == nil {
		if r.ByteCount != 1 {
			return fmt.Errorf("cpu: undocumented opcode should be one byte (%d bytes read)", r.ByteCount)
		}
		return nil
	}

	if r.Defn.OpCode != r.OpCode {
		return fmt.Errorf("cpu: opcode and definition do not match (%02x and %02x)", r.OpCode, r.Defn.OpCode)
	}

	if r.ByteCount != r.Defn.Bytes {
		return fmt.Errorf("cpu: unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, r.Defn.Bytes)
	}

	if r.PageFault && !r.Defn.PageSensitive && !r.Defn.IsBranch() {
		return fmt.Errorf("cpu: unexpected page fault")
	}

	if r.Defn.IsBranch() {
		expected := r.Defn.Cycles
		if r.BranchSuccess {
			expected++
			if r.PageFault {
				expected++
			}
		}
		if r.Cycles != expected {
			return fmt.Errorf("cpu: number of cycles wrong for branch (%d instead of %d)", r.Cycles, expected)
		}
		return nil
	}

	if r.Defn.PageSensitive && r.PageFault {
		if r.Cycles != r.Defn.Cycles+1 {
			return fmt.Errorf("cpu: number of cycles wrong (%d instead of %d)", r.Cycles, r.Defn.Cycles+1)
		}
		return nil
	}

	if r.Cycles != r.Defn.Cycles {
		return fmt.Errorf("cpu: number of cycles wrong (%d instead of %d)", r.Cycles, r.Defn.Cycles)
	}

	if r.Defn.AddressingMode == instructions.Implied && r.InstructionData != 0 {
		return fmt.Errorf("cpu: implied instruction has operand data")
	}

	return nil
}
