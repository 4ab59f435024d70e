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

// Package limiter paces the emulation so that it runs at a fixed number of
// frames per second in real time.
//
// At the start of each frame StartFrame() is called. Once the work for the
// frame has been done Wait() suspends the caller for whatever time remains
// of the frame. If the work took longer than a frame then Wait() returns
// immediately; time is never borrowed from the following frame.
//
// The actual frame rate is measured once a second and made available through
// the Measured field.
package limiter
