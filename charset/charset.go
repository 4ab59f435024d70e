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

package charset

// Characters with a special meaning to either the host or the machine.
const (
	HostNewline   = 0x0a
	HostDelete    = 0x7f
	MachineReturn = 0x0d
	MachineErase  = 0x5f
)

// HostToMachine translates a single host character into the form expected by
// the machine. Lower case letters are shifted to upper case, newline becomes
// carriage return and delete becomes the machine's erase character.
//
// Characters with the high bit set are not valid and false is returned.
func HostToMachine(c uint8) (uint8, bool) {
	if c >= 0x80 {
		return 0, false
	}

	switch {
	case c == HostNewline:
		return MachineReturn, true
	case c == HostDelete:
		return MachineErase, true
	case c >= 'a' && c <= 'z':
		return c - ('a' - 'A'), true
	}

	return c, true
}

// MachineToHost translates a single machine character (with the high bit
// already cleared) into the form expected by the host. Carriage return becomes
// newline. Printable characters are unchanged, including the erase character
// which the host should interpret as it sees fit.
//
// Characters that have no meaning to the host are dropped and false is
// returned.
func MachineToHost(c uint8) (uint8, bool) {
	switch {
	case c == MachineReturn:
		return HostNewline, true
	case c == HostNewline:
		return c, true
	case c >= 0x20 && c <= 0x7e:
		return c, true
	}
	return 0, false
}

// InputString translates every character in a host string using
// HostToMachine(). Invalid characters are silently skipped.
func InputString(s string) []uint8 {
	r := make([]uint8, 0, len(s))
	for i := 0; i < len(s); i++ {
		if c, ok := HostToMachine(s[i]); ok {
			r = append(r, c)
		}
	}
	return r
}
