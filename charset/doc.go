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

// Package charset translates characters between the conventions of the host
// and the conventions of the emulated machine.
//
// The machine uses carriage return (0x0d) to end a line and the underscore
// (0x5f) as an erase character. The host uses newline (0x0a) and delete
// (0x7f) for the same purposes. The machine has no lower case characters.
//
// The Transcript type is a convenient sink for translated output. It records
// everything the machine has displayed and optionally honours the erase
// character by removing the previous character.
package charset
