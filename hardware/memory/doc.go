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

// Package memory implements the 64KB address space of the machine.
//
// The Memory type is a flat array covering the full 16bit address range. A
// ROM image is copied into the array when the memory is created and again
// whenever it is reset.
//
// The Memory type implements both bus.CPUBus and bus.DebuggerBus. It is not
// safe for concurrent use; the hardware package makes sure that memory is
// only accessed by one goroutine at a time.
//
// Writes to the ROM area are not prevented. The ROM is only protected in the
// sense that Reset() will restore it.
package memory
