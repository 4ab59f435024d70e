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

// Package terminal connects the emulated machine to a text terminal. Key
// presses are read from an input stream and sent to the machine's keyboard.
// Characters written to the machine's display are printed to an output
// stream.
//
// The host expects the input terminal to be in raw mode (see the easyterm
// package) so that key presses arrive one at a time. For the same reason
// newlines are printed as a carriage return and line feed pair.
//
// Reading a Ctrl-C or Ctrl-D from the input stream ends the session. Ctrl-R
// resets the machine and Ctrl-T halts or resumes execution.
package terminal
