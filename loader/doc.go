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

// Package loader reads programs from files so that they can be copied into
// the machine's memory.
//
// Two formats are understood. Files with the extension ".TXT", ".HEX" or
// ".WOZ" are treated as a WozMon style hex dump, a format that is commonly
// used to distribute Apple-1 software:
//
//	0300: A9 57 20 EF FF
//	0305: 4C 1F FF
//	: EA EA
//
// Each line starts with a four digit address followed by a colon and any
// number of data bytes. A line that starts with the colon continues from the
// end of the previous line, the same as it does when typed into WozMon. Blank
// lines and lines starting with '#' are ignored.
//
// All other files are treated as raw binary data, loaded at the address given
// to NewLoader().
//
// Filenames that look like http or https URLs are fetched over the network.
package loader
