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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and of allocating flags to each mode.
//
// A mode is selected by the first argument that is not a flag. If the
// argument does not name a sub-mode then the first sub-mode in the list is
// used as the default. For example, with the sub-modes RUN and LOAD:
//
//	appleone -echodelete=false
//	appleone run -echodelete=false
//	appleone load -at 0300 program.bin
//
// The first two lines are equivalent.
//
// Typical use:
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "LOAD")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		clock := md.AddFloat64("clock", 1.0, "clock speed in MHz")
//		...
//	}
//
// Help is printed automatically when the -help flag is encountered.
package modalflag
