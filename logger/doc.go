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

// Package logger is the central log for the emulator. There is only ever one
// log, it is kept in memory and it can be written to any io.Writer on
// demand.
//
// Log entries are made with a tag and a detail string:
//
//	logger.Log(logger.Allow, "PIA", "keyboard read while queue empty")
//
// The tag usually names the component making the entry. Consecutive entries
// with identical tag and detail are folded into a single entry with a repeat
// count. This is important for an emulator because many events happen every
// frame.
//
// The first argument to the log functions is a Permission. Components that
// may or may not want logging to happen (a rewind or test harness, say)
// implement the interface; everyone else uses logger.Allow.
//
// The log is safe to use from more than one goroutine. The execution
// goroutine of the emulation and the host goroutines all add entries.
package logger
