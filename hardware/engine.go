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

package hardware

// Engine is the interface to the component that executes instructions. The
// cpu.CPU type is the default implementation.
//
// Step() executes a single instruction and returns the number of cycles it
// took. An engine that returns zero cycles (with no error) has stopped
// executing and the remainder of the frame is skipped.
type Engine interface {
	Reset()
	LoadPCIndirect(address uint16) error
	Step() (int, error)
}
