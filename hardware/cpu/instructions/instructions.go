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

package instructions

import "fmt"

// Definition defines each instruction in the instruction set; one per instruction.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	PageSensitive  bool
	Effect         EffectCategory
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s pagesens=%t effect=%s]",
		defn.OpCode, defn.Operator, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.PageSensitive, defn.Effect)
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

// GetDefinitions returns a table of instruction definitions indexed by opcode.
// Undocumented opcodes are nil.
func GetDefinitions() []*Definition {
	defns := make([]*Definition, 256)
	for i := range definitions {
		d := definitions[i]
		defns[d.OpCode] = &d
	}
	return defns
}

// shorthand used in the definitions table
const (
	imp  = Implied
	imm  = Immediate
	rel  = Relative
	abs  = Absolute
	zpg  = ZeroPage
	ind  = Indirect
	indx = IndexedIndirect
	indy = IndirectIndexed
	absx = AbsoluteIndexedX
	absy = AbsoluteIndexedY
	zpgx = ZeroPageIndexedX
	zpgy = ZeroPageIndexedY
)

var definitions = [...]Definition{
	{0x69, Adc, 2, 2, imm, false, Read},
	{0x65, Adc, 2, 3, zpg, false, Read},
	{0x75, Adc, 2, 4, zpgx, false, Read},
	{0x6d, Adc, 3, 4, abs, false, Read},
	{0x7d, Adc, 3, 4, absx, true, Read},
	{0x79, Adc, 3, 4, absy, true, Read},
	{0x61, Adc, 2, 6, indx, false, Read},
	{0x71, Adc, 2, 5, indy, true, Read},

	{0x29, And, 2, 2, imm, false, Read},
	{0x25, And, 2, 3, zpg, false, Read},
	{0x35, And, 2, 4, zpgx, false, Read},
	{0x2d, And, 3, 4, abs, false, Read},
	{0x3d, And, 3, 4, absx, true, Read},
	{0x39, And, 3, 4, absy, true, Read},
	{0x21, And, 2, 6, indx, false, Read},
	{0x31, And, 2, 5, indy, true, Read},

	{0x0a, Asl, 1, 2, imp, false, Read},
	{0x06, Asl, 2, 5, zpg, false, RMW},
	{0x16, Asl, 2, 6, zpgx, false, RMW},
	{0x0e, Asl, 3, 6, abs, false, RMW},
	{0x1e, Asl, 3, 7, absx, false, RMW},

	{0x90, Bcc, 2, 2, rel, false, Flow},
	{0xb0, Bcs, 2, 2, rel, false, Flow},
	{0xf0, Beq, 2, 2, rel, false, Flow},
	{0x30, Bmi, 2, 2, rel, false, Flow},
	{0xd0, Bne, 2, 2, rel, false, Flow},
	{0x10, Bpl, 2, 2, rel, false, Flow},
	{0x50, Bvc, 2, 2, rel, false, Flow},
	{0x70, Bvs, 2, 2, rel, false, Flow},

	{0x24, Bit, 2, 3, zpg, false, Read},
	{0x2c, Bit, 3, 4, abs, false, Read},

	{0x00, Brk, 1, 7, imp, false, Interrupt},

	{0x18, Clc, 1, 2, imp, false, Read},
	{0xd8, Cld, 1, 2, imp, false, Read},
	{0x58, Cli, 1, 2, imp, false, Read},
	{0xb8, Clv, 1, 2, imp, false, Read},

	{0xc9, Cmp, 2, 2, imm, false, Read},
	{0xc5, Cmp, 2, 3, zpg, false, Read},
	{0xd5, Cmp, 2, 4, zpgx, false, Read},
	{0xcd, Cmp, 3, 4, abs, false, Read},
	{0xdd, Cmp, 3, 4, absx, true, Read},
	{0xd9, Cmp, 3, 4, absy, true, Read},
	{0xc1, Cmp, 2, 6, indx, false, Read},
	{0xd1, Cmp, 2, 5, indy, true, Read},

	{0xe0, Cpx, 2, 2, imm, false, Read},
	{0xe4, Cpx, 2, 3, zpg, false, Read},
	{0xec, Cpx, 3, 4, abs, false, Read},

	{0xc0, Cpy, 2, 2, imm, false, Read},
	{0xc4, Cpy, 2, 3, zpg, false, Read},
	{0xcc, Cpy, 3, 4, abs, false, Read},

	{0xc6, Dec, 2, 5, zpg, false, RMW},
	{0xd6, Dec, 2, 6, zpgx, false, RMW},
	{0xce, Dec, 3, 6, abs, false, RMW},
	{0xde, Dec, 3, 7, absx, false, RMW},

	{0xca, Dex, 1, 2, imp, false, Read},
	{0x88, Dey, 1, 2, imp, false, Read},

	{0x49, Eor, 2, 2, imm, false, Read},
	{0x45, Eor, 2, 3, zpg, false, Read},
	{0x55, Eor, 2, 4, zpgx, false, Read},
	{0x4d, Eor, 3, 4, abs, false, Read},
	{0x5d, Eor, 3, 4, absx, true, Read},
	{0x59, Eor, 3, 4, absy, true, Read},
	{0x41, Eor, 2, 6, indx, false, Read},
	{0x51, Eor, 2, 5, indy, true, Read},

	{0xe6, Inc, 2, 5, zpg, false, RMW},
	{0xf6, Inc, 2, 6, zpgx, false, RMW},
	{0xee, Inc, 3, 6, abs, false, RMW},
	{0xfe, Inc, 3, 7, absx, false, RMW},

	{0xe8, Inx, 1, 2, imp, false, Read},
	{0xc8, Iny, 1, 2, imp, false, Read},

	{0x4c, Jmp, 3, 3, abs, false, Flow},
	{0x6c, Jmp, 3, 5, ind, false, Flow},

	{0x20, Jsr, 3, 6, abs, false, Subroutine},

	{0xa9, Lda, 2, 2, imm, false, Read},
	{0xa5, Lda, 2, 3, zpg, false, Read},
	{0xb5, Lda, 2, 4, zpgx, false, Read},
	{0xad, Lda, 3, 4, abs, false, Read},
	{0xbd, Lda, 3, 4, absx, true, Read},
	{0xb9, Lda, 3, 4, absy, true, Read},
	{0xa1, Lda, 2, 6, indx, false, Read},
	{0xb1, Lda, 2, 5, indy, true, Read},

	{0xa2, Ldx, 2, 2, imm, false, Read},
	{0xa6, Ldx, 2, 3, zpg, false, Read},
	{0xb6, Ldx, 2, 4, zpgy, false, Read},
	{0xae, Ldx, 3, 4, abs, false, Read},
	{0xbe, Ldx, 3, 4, absy, true, Read},

	{0xa0, Ldy, 2, 2, imm, false, Read},
	{0xa4, Ldy, 2, 3, zpg, false, Read},
	{0xb4, Ldy, 2, 4, zpgx, false, Read},
	{0xac, Ldy, 3, 4, abs, false, Read},
	{0xbc, Ldy, 3, 4, absx, true, Read},

	{0x4a, Lsr, 1, 2, imp, false, Read},
	{0x46, Lsr, 2, 5, zpg, false, RMW},
	{0x56, Lsr, 2, 6, zpgx, false, RMW},
	{0x4e, Lsr, 3, 6, abs, false, RMW},
	{0x5e, Lsr, 3, 7, absx, false, RMW},

	{0xea, Nop, 1, 2, imp, false, Read},

	{0x09, Ora, 2, 2, imm, false, Read},
	{0x05, Ora, 2, 3, zpg, false, Read},
	{0x15, Ora, 2, 4, zpgx, false, Read},
	{0x0d, Ora, 3, 4, abs, false, Read},
	{0x1d, Ora, 3, 4, absx, true, Read},
	{0x19, Ora, 3, 4, absy, true, Read},
	{0x01, Ora, 2, 6, indx, false, Read},
	{0x11, Ora, 2, 5, indy, true, Read},

	{0x48, Pha, 1, 3, imp, false, Write},
	{0x08, Php, 1, 3, imp, false, Write},
	{0x68, Pla, 1, 4, imp, false, Read},
	{0x28, Plp, 1, 4, imp, false, Read},

	{0x2a, Rol, 1, 2, imp, false, Read},
	{0x26, Rol, 2, 5, zpg, false, RMW},
	{0x36, Rol, 2, 6, zpgx, false, RMW},
	{0x2e, Rol, 3, 6, abs, false, RMW},
	{0x3e, Rol, 3, 7, absx, false, RMW},

	{0x6a, Ror, 1, 2, imp, false, Read},
	{0x66, Ror, 2, 5, zpg, false, RMW},
	{0x76, Ror, 2, 6, zpgx, false, RMW},
	{0x6e, Ror, 3, 6, abs, false, RMW},
	{0x7e, Ror, 3, 7, absx, false, RMW},

	{0x40, Rti, 1, 6, imp, false, Interrupt},
	{0x60, Rts, 1, 6, imp, false, Subroutine},

	{0xe9, Sbc, 2, 2, imm, false, Read},
	{0xe5, Sbc, 2, 3, zpg, false, Read},
	{0xf5, Sbc, 2, 4, zpgx, false, Read},
	{0xed, Sbc, 3, 4, abs, false, Read},
	{0xfd, Sbc, 3, 4, absx, true, Read},
	{0xf9, Sbc, 3, 4, absy, true, Read},
	{0xe1, Sbc, 2, 6, indx, false, Read},
	{0xf1, Sbc, 2, 5, indy, true, Read},

	{0x38, Sec, 1, 2, imp, false, Read},
	{0xf8, Sed, 1, 2, imp, false, Read},
	{0x78, Sei, 1, 2, imp, false, Read},

	{0x85, Sta, 2, 3, zpg, false, Write},
	{0x95, Sta, 2, 4, zpgx, false, Write},
	{0x8d, Sta, 3, 4, abs, false, Write},
	{0x9d, Sta, 3, 5, absx, false, Write},
	{0x99, Sta, 3, 5, absy, false, Write},
	{0x81, Sta, 2, 6, indx, false, Write},
	{0x91, Sta, 2, 6, indy, false, Write},

	{0x86, Stx, 2, 3, zpg, false, Write},
	{0x96, Stx, 2, 4, zpgy, false, Write},
	{0x8e, Stx, 3, 4, abs, false, Write},

	{0x84, Sty, 2, 3, zpg, false, Write},
	{0x94, Sty, 2, 4, zpgx, false, Write},
	{0x8c, Sty, 3, 4, abs, false, Write},

	{0xaa, Tax, 1, 2, imp, false, Read},
	{0xa8, Tay, 1, 2, imp, false, Read},
	{0xba, Tsx, 1, 2, imp, false, Read},
	{0x8a, Txa, 1, 2, imp, false, Read},
	{0x9a, Txs, 1, 2, imp, false, Read},
	{0x98, Tya, 1, 2, imp, false, Read},
}
