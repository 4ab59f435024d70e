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

// Package bus defines the access patterns to the machine's memory.
//
// The CPUBus is the view of memory the CPU stepping engine has. Every memory
// access made by the engine during an instruction goes through the CPUBus,
// which is how the memory-mapped I/O registers are able to intercept reads and
// writes without the engine knowing anything about them.
//
// The DebuggerBus is for operations outside of the normal operation of the
// machine: examining memory or loading a program. Peek and Poke never trigger
// I/O side effects.
package bus

// CPUBus defines the operations for the memory system when accessed from the
// CPU. Implementations must answer within the call; they must never suspend
// waiting on another goroutine.
type CPUBus interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// DebuggerBus defines the meta-operations for memory.
type DebuggerBus interface {
	Peek(address uint16) (uint8, error)
	Poke(address uint16, value uint8) error
}
