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

package cpu

import (
	"fmt"

	"github.com/appleone/appleone/hardware/cpu/execution"
	"github.com/appleone/appleone/hardware/cpu/instructions"
	"github.com/appleone/appleone/hardware/cpu/registers"
	"github.com/appleone/appleone/hardware/memory/addresses"
	"github.com/appleone/appleone/hardware/memory/bus"
	"github.com/appleone/appleone/logger"
)

// CPU implements the 6502 as found in the Apple-1. Register logic is
// implemented by the types in the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	// some operations only need an accumulator
	acc8 registers.Register

	mem          bus.CPUBus
	instructions []*instructions.Definition

	// last result. the Final field is false only when the CPU has just been
	// reset or when an error occurred part way through an instruction
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU structure.
func NewCPU(mem bus.CPUBus) *CPU {
	mc := &CPU{
		mem:          mem,
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		acc8:         registers.NewRegister(0, "accumulator"),
		instructions: instructions.GetDefinitions(),
	}
	mc.Reset()
	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Reset reinitialises all registers. Does not load PC with the RESET vector.
// Use LoadPCIndirect(addresses.Reset) when appropriate.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.PC.Load(0)
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xfd)
	mc.Status.Reset()
}

// LoadPCIndirect loads the contents of indirectAddress into the PC.
func (mc *CPU) LoadPCIndirect(indirectAddress uint16) error {
	address, err := mc.read16Bit(indirectAddress)
	if err != nil {
		return err
	}
	mc.PC.Load(address)
	return nil
}

// LoadPC loads directAddress into the PC.
func (mc *CPU) LoadPC(directAddress uint16) {
	mc.PC.Load(directAddress)
}

func (mc *CPU) read8Bit(address uint16) (uint8, error) {
	v, err := mc.mem.Read(address)
	if err != nil {
		return 0, fmt.Errorf("cpu: %w", err)
	}
	return v, nil
}

func (mc *CPU) write8Bit(address uint16, value uint8) error {
	err := mc.mem.Write(address, value)
	if err != nil {
		return fmt.Errorf("cpu: %w", err)
	}
	return nil
}

func (mc *CPU) read16Bit(address uint16) (uint16, error) {
	lo, err := mc.read8Bit(address)
	if err != nil {
		return 0, err
	}
	hi, err := mc.read8Bit(address + 1)
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}

// read16BitZeroPage reads a pointer from the zero page. the high byte of a
// pointer at 0xff is read from 0x00
func (mc *CPU) read16BitZeroPage(address uint8) (uint16, error) {
	lo, err := mc.read8Bit(uint16(address))
	if err != nil {
		return 0, err
	}
	hi, err := mc.read8Bit(uint16(address + 1))
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}

// read8BitPC reads 8 bits from the memory location pointed to by PC
//
// side-effects:
//   - updates program counter
//   - updates LastResult.ByteCount
//   - updates LastResult.InstructionData
func (mc *CPU) read8BitPC() (uint8, error) {
	v, err := mc.read8Bit(mc.PC.Address())
	if err != nil {
		return 0, err
	}
	mc.PC.Add(1)
	mc.LastResult.ByteCount++
	mc.LastResult.InstructionData = uint16(v)
	return v, nil
}

// read16BitPC reads 16 bits from the memory location pointed to by PC
//
// side-effects:
//   - updates program counter
//   - updates LastResult.ByteCount
//   - updates LastResult.InstructionData
func (mc *CPU) read16BitPC() (uint16, error) {
	v, err := mc.read16Bit(mc.PC.Address())
	if err != nil {
		return 0, err
	}
	mc.PC.Add(2)
	mc.LastResult.ByteCount += 2
	mc.LastResult.InstructionData = v
	return v, nil
}

func (mc *CPU) push(value uint8) error {
	err := mc.write8Bit(mc.SP.Address(), value)
	if err != nil {
		return err
	}
	mc.SP.Push()
	return nil
}

func (mc *CPU) pull() (uint8, error) {
	mc.SP.Pull()
	return mc.read8Bit(mc.SP.Address())
}

// indexed adds the index to the base address and notes whether a page
// boundary was crossed. the extra cycle is only taken for page sensitive
// instructions
func (mc *CPU) indexed(base uint16, index uint8) uint16 {
	address := base + uint16(index)
	if base&0xff00 != address&0xff00 {
		mc.LastResult.PageFault = mc.LastResult.Defn.PageSensitive
		if mc.LastResult.PageFault {
			mc.LastResult.Cycles++
		}
	}
	return address
}

func (mc *CPU) branch(flag bool, offset uint8) {
	mc.LastResult.BranchSuccess = flag
	if !flag {
		return
	}

	// +1 cycle
	mc.LastResult.Cycles++

	oldPC := mc.PC.Address()
	mc.PC.Load(oldPC + uint16(int8(offset)))

	// +1 cycle if branch crosses a page
	if oldPC&0xff00 != mc.PC.Address()&0xff00 {
		mc.LastResult.PageFault = true
		mc.LastResult.Cycles++
	}
}

// setZN sets the zero and sign flags according to the register.
func (mc *CPU) setZN(r registers.Register) {
	mc.Status.Zero = r.IsZero()
	mc.Status.Sign = r.IsNegative()
}

// compare is used by the CMP, CPX and CPY instructions. the comparison is
// always binary even when decimal mode is active
func (mc *CPU) compare(v uint8, value uint8) {
	mc.acc8.Load(v)
	mc.Status.Carry, _ = mc.acc8.Subtract(value, true)
	mc.setZN(mc.acc8)
}

// Step executes a single instruction and returns the number of cycles taken.
func (mc *CPU) Step() (int, error) {
	err := mc.ExecuteInstruction()
	return mc.LastResult.Cycles, err
}

// ExecuteInstruction steps CPU forward one instruction. The basic process when
// executing an instruction is this:
//
//  1. read opcode and look up instruction definition
//  2. read operands (if any) according to the addressing mode of the instruction
//  3. using the operator as a guide, perform the instruction on the data
//
// The cycles taken by the instruction are recorded in LastResult.
func (mc *CPU) ExecuteInstruction() error {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	opcode, err := mc.read8Bit(mc.PC.Address())
	if err != nil {
		return err
	}
	mc.PC.Add(1)
	mc.LastResult.ByteCount = 1
	mc.LastResult.OpCode = opcode

	defn := mc.instructions[opcode]
	if defn == nil {
		logger.Logf(logger.Allow, "CPU", "undocumented opcode (%#02x) at (%#04x)", opcode, mc.LastResult.Address)
		mc.LastResult.Cycles = 2
		mc.LastResult.Final = true
		return nil
	}

	mc.LastResult.Defn = defn
	mc.LastResult.Cycles = defn.Cycles

	// address is the actual address to use to access memory (after any
	// indexing has taken place)
	var address uint16

	// value is read from the program for immediate mode and from memory for
	// read and RMW instructions. for RMW instructions the value is changed and
	// written back to address
	var value uint8

	switch defn.AddressingMode {
	case instructions.Implied:
		if defn.Operator == instructions.Brk {
			// BRK skips a padding byte even though it is an implied instruction
			mc.PC.Add(1)
		}

	case instructions.Immediate:
		value, err = mc.read8BitPC()
		if err != nil {
			return err
		}

	case instructions.Relative:
		value, err = mc.read8BitPC()
		if err != nil {
			return err
		}

	case instructions.Absolute:
		address, err = mc.read16BitPC()
		if err != nil {
			return err
		}

	case instructions.ZeroPage:
		var zp uint8
		zp, err = mc.read8BitPC()
		if err != nil {
			return err
		}
		address = uint16(zp)

	case instructions.Indirect:
		// indirect addressing (without indexing) is only used for the JMP command
		var indirect uint16
		indirect, err = mc.read16BitPC()
		if err != nil {
			return err
		}

		// the high byte of the address is read from the same page as the low
		// byte even when the low byte is at the end of a page
		var lo, hi uint8
		lo, err = mc.read8Bit(indirect)
		if err != nil {
			return err
		}
		hi, err = mc.read8Bit((indirect & 0xff00) | ((indirect + 1) & 0x00ff))
		if err != nil {
			return err
		}
		address = (uint16(hi) << 8) | uint16(lo)

	case instructions.IndexedIndirect:
		var zp uint8
		zp, err = mc.read8BitPC()
		if err != nil {
			return err
		}
		address, err = mc.read16BitZeroPage(zp + mc.X.Value())
		if err != nil {
			return err
		}

	case instructions.IndirectIndexed:
		var zp uint8
		zp, err = mc.read8BitPC()
		if err != nil {
			return err
		}
		var base uint16
		base, err = mc.read16BitZeroPage(zp)
		if err != nil {
			return err
		}
		address = mc.indexed(base, mc.Y.Value())

	case instructions.AbsoluteIndexedX:
		var base uint16
		base, err = mc.read16BitPC()
		if err != nil {
			return err
		}
		address = mc.indexed(base, mc.X.Value())

	case instructions.AbsoluteIndexedY:
		var base uint16
		base, err = mc.read16BitPC()
		if err != nil {
			return err
		}
		address = mc.indexed(base, mc.Y.Value())

	case instructions.ZeroPageIndexedX:
		var zp uint8
		zp, err = mc.read8BitPC()
		if err != nil {
			return err
		}
		address = uint16(zp + mc.X.Value())

	case instructions.ZeroPageIndexedY:
		var zp uint8
		zp, err = mc.read8BitPC()
		if err != nil {
			return err
		}
		address = uint16(zp + mc.Y.Value())

	default:
		return fmt.Errorf("cpu: unknown addressing mode for %s", defn.Operator)
	}

	// read value from memory for read and RMW instructions that address memory
	switch defn.AddressingMode {
	case instructions.Implied, instructions.Immediate, instructions.Relative:
	default:
		if defn.Effect == instructions.Read || defn.Effect == instructions.RMW {
			value, err = mc.read8Bit(address)
			if err != nil {
				return err
			}
		}
	}

	// the accumulator versions of the shift and rotate instructions operate
	// on A rather than on a value from memory
	shiftReg := &mc.A
	if defn.Effect == instructions.RMW {
		shiftReg = &mc.acc8
		shiftReg.Load(value)
	}

	switch defn.Operator {
	case instructions.Nop:

	case instructions.Cli:
		mc.Status.InterruptDisable = false

	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Clc:
		mc.Status.Carry = false

	case instructions.Sec:
		mc.Status.Carry = true

	case instructions.Cld:
		mc.Status.DecimalMode = false

	case instructions.Sed:
		mc.Status.DecimalMode = true

	case instructions.Clv:
		mc.Status.Overflow = false

	case instructions.Pha:
		err = mc.push(mc.A.Value())

	case instructions.Pla:
		value, err = mc.pull()
		mc.A.Load(value)
		mc.setZN(mc.A)

	case instructions.Php:
		// the break flag is always set in the pushed value
		err = mc.push(mc.Status.Value() | 0x10)

	case instructions.Plp:
		value, err = mc.pull()
		mc.Status.Load(value)

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.setZN(mc.A)

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.setZN(mc.X)

	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.setZN(mc.Y)

	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.setZN(mc.A)

	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.setZN(mc.X)

	case instructions.Txs:
		// does not affect status register
		mc.SP.Load(mc.X.Value())

	case instructions.Eor:
		mc.A.EOR(value)
		mc.setZN(mc.A)

	case instructions.Ora:
		mc.A.ORA(value)
		mc.setZN(mc.A)

	case instructions.And:
		mc.A.AND(value)
		mc.setZN(mc.A)

	case instructions.Lda:
		mc.A.Load(value)
		mc.setZN(mc.A)

	case instructions.Ldx:
		mc.X.Load(value)
		mc.setZN(mc.X)

	case instructions.Ldy:
		mc.Y.Load(value)
		mc.setZN(mc.Y)

	case instructions.Sta:
		err = mc.write8Bit(address, mc.A.Value())

	case instructions.Stx:
		err = mc.write8Bit(address, mc.X.Value())

	case instructions.Sty:
		err = mc.write8Bit(address, mc.Y.Value())

	case instructions.Inx:
		mc.X.Add(1, false)
		mc.setZN(mc.X)

	case instructions.Iny:
		mc.Y.Add(1, false)
		mc.setZN(mc.Y)

	case instructions.Dex:
		mc.X.Add(0xff, false)
		mc.setZN(mc.X)

	case instructions.Dey:
		mc.Y.Add(0xff, false)
		mc.setZN(mc.Y)

	case instructions.Asl:
		mc.Status.Carry = shiftReg.ASL()
		mc.setZN(*shiftReg)
		value = shiftReg.Value()

	case instructions.Lsr:
		mc.Status.Carry = shiftReg.LSR()
		mc.setZN(*shiftReg)
		value = shiftReg.Value()

	case instructions.Rol:
		mc.Status.Carry = shiftReg.ROL(mc.Status.Carry)
		mc.setZN(*shiftReg)
		value = shiftReg.Value()

	case instructions.Ror:
		mc.Status.Carry = shiftReg.ROR(mc.Status.Carry)
		mc.setZN(*shiftReg)
		value = shiftReg.Value()

	case instructions.Inc:
		mc.acc8.Add(1, false)
		mc.setZN(mc.acc8)
		value = mc.acc8.Value()

	case instructions.Dec:
		mc.acc8.Add(0xff, false)
		mc.setZN(mc.acc8)
		value = mc.acc8.Value()

	case instructions.Adc:
		if mc.Status.DecimalMode {
			mc.Status.Carry,
				mc.Status.Zero,
				mc.Status.Overflow,
				mc.Status.Sign = mc.A.AddDecimal(value, mc.Status.Carry)
		} else {
			mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
			mc.setZN(mc.A)
		}

	case instructions.Sbc:
		if mc.Status.DecimalMode {
			mc.Status.Carry,
				mc.Status.Zero,
				mc.Status.Overflow,
				mc.Status.Sign = mc.A.SubtractDecimal(value, mc.Status.Carry)
		} else {
			mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
			mc.setZN(mc.A)
		}

	case instructions.Cmp:
		mc.compare(mc.A.Value(), value)

	case instructions.Cpx:
		mc.compare(mc.X.Value(), value)

	case instructions.Cpy:
		mc.compare(mc.Y.Value(), value)

	case instructions.Bit:
		mc.acc8.Load(value)
		mc.Status.Sign = mc.acc8.IsNegative()
		mc.Status.Overflow = mc.acc8.IsBitV()
		mc.acc8.AND(mc.A.Value())
		mc.Status.Zero = mc.acc8.IsZero()

	case instructions.Jmp:
		mc.PC.Load(address)

	case instructions.Bcc:
		mc.branch(!mc.Status.Carry, value)

	case instructions.Bcs:
		mc.branch(mc.Status.Carry, value)

	case instructions.Beq:
		mc.branch(mc.Status.Zero, value)

	case instructions.Bmi:
		mc.branch(mc.Status.Sign, value)

	case instructions.Bne:
		mc.branch(!mc.Status.Zero, value)

	case instructions.Bpl:
		mc.branch(!mc.Status.Sign, value)

	case instructions.Bvc:
		mc.branch(!mc.Status.Overflow, value)

	case instructions.Bvs:
		mc.branch(mc.Status.Overflow, value)

	case instructions.Jsr:
		// the return address pushed onto the stack is the address of the last
		// byte of the JSR instruction. RTS adds one when it pulls the address
		ret := mc.PC.Address() - 1
		err = mc.push(uint8(ret >> 8))
		if err == nil {
			err = mc.push(uint8(ret))
		}
		mc.PC.Load(address)

	case instructions.Rts:
		var lo, hi uint8
		lo, err = mc.pull()
		if err == nil {
			hi, err = mc.pull()
		}
		mc.PC.Load((uint16(hi) << 8) | uint16(lo))
		mc.PC.Add(1)

	case instructions.Brk:
		err = mc.push(uint8(mc.PC.Address() >> 8))
		if err == nil {
			err = mc.push(uint8(mc.PC.Address()))
		}
		if err == nil {
			err = mc.push(mc.Status.Value() | 0x10)
		}
		if err == nil {
			mc.Status.InterruptDisable = true
			err = mc.LoadPCIndirect(addresses.IRQ)
		}

	case instructions.Rti:
		value, err = mc.pull()
		mc.Status.Load(value)
		var lo, hi uint8
		if err == nil {
			lo, err = mc.pull()
		}
		if err == nil {
			hi, err = mc.pull()
		}

		// unlike RTS there is no need to add one to return address
		mc.PC.Load((uint16(hi) << 8) | uint16(lo))

	default:
		return fmt.Errorf("cpu: unknown operator (%s)", defn.Operator)
	}

	if err != nil {
		return err
	}

	// for RMW instructions: write altered value back to memory
	if defn.Effect == instructions.RMW {
		err = mc.write8Bit(address, value)
		if err != nil {
			return err
		}
	}

	mc.LastResult.Final = true

	return nil
}
