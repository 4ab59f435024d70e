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

package registers

// AddDecimal adds value to register as though both are binary coded decimal
// numbers. Returns new carry state and the zero, overflow and sign flags.
//
// The flags follow the behaviour of the NMOS 6502. The zero flag reflects the
// binary addition. The sign and overflow flags are taken after the low nibble
// has been adjusted but before the high nibble has been adjusted.
func (r *Register) AddDecimal(val uint8, carry bool) (bool, bool, bool, bool) {
	var c uint8
	if carry {
		c = 1
	}

	a := r.value

	zero := a+val+c == 0

	lo := (a & 0x0f) + (val & 0x0f) + c
	hi := (a >> 4) + (val >> 4)
	if lo > 0x09 {
		lo += 0x06
	}
	if lo > 0x0f {
		hi++
	}

	intermediate := (hi << 4) | (lo & 0x0f)
	sign := intermediate&0x80 == 0x80
	overflow := (a^intermediate)&^(a^val)&0x80 != 0

	if hi > 0x09 {
		hi += 0x06
	}

	r.value = (hi << 4) | (lo & 0x0f)

	return hi > 0x0f, zero, overflow, sign
}

// SubtractDecimal subtracts value from register as though both are binary
// coded decimal numbers. Returns new carry state and the zero, overflow and
// sign flags.
//
// On the NMOS 6502 all flags are the same as for a binary subtraction. Only
// the value in the register differs.
func (r *Register) SubtractDecimal(val uint8, carry bool) (bool, bool, bool, bool) {
	bin := NewRegister(r.value, "")
	rcarry, overflow := bin.Subtract(val, carry)

	var borrow int
	if !carry {
		borrow = 1
	}

	lo := int(r.value&0x0f) - int(val&0x0f) - borrow
	hi := int(r.value>>4) - int(val>>4)
	if lo < 0 {
		lo -= 0x06
		hi--
	}
	if hi < 0 {
		hi -= 0x06
	}

	r.value = uint8(hi<<4) | uint8(lo&0x0f)

	return rcarry, bin.IsZero(), overflow, bin.IsNegative()
}
