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

// Package prefs provides typed preference values that can be safely read
// from one goroutine while being changed from another.
//
// Preference values are grouped with the Group type. Each value in a group
// has a key, which is how the value is named on the command line. For
// example:
//
//	var clock prefs.Float
//	grp := prefs.NewGroup()
//	grp.Add("appleone.clock", &clock)
//
// The command line stack is a way of overriding preference values for the
// duration of a single run of the program. Values are specified as a list of
// key/value pairs:
//
//	appleone.clock::2.0; appleone.echoDelete::false
//
// The string is pushed with PushCommandLineStack() and the values applied
// with Group.ApplyCommandLine().
package prefs
