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

// Package pia implements the peripheral interface adapter of the Apple-1 as
// seen by the CPU. The PIA sits between the CPU and memory and intercepts
// accesses to the four I/O registers listed in the addresses package. All
// other accesses pass through to memory unchanged.
//
// Reading KBDCR reports whether a key is waiting in the keyboard queue.
// Reading KBD takes the next key from the queue. Writing to DSP sends the
// character to the output handler.
//
// Characters written to DSP are delivered to the output handler on a
// separate goroutine, in the order in which they were written. The CPU is
// never made to wait for the output handler.
package pia
