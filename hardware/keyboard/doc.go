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

// Package keyboard implements the queue of characters waiting to be read by
// the emulated machine.
//
// Characters are appended by the host, usually from a different goroutine to
// the one running the emulation. The machine pops characters one at a time
// whenever the KBD register is read. Characters are delivered in the order in
// which they were appended.
//
// The queue is bounded. If the queue is full the character is dropped and
// ErrQueueFull is returned.
package keyboard
