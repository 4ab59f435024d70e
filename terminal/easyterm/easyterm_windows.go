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

//go:build windows

// Package easyterm is not available under windows.
package easyterm

import (
	"fmt"
	"os"
)

// Terminal is a stub under windows. Initialise() always fails.
type Terminal struct {
}

// Initialise always returns an error under windows.
func (pt *Terminal) Initialise(inputFile, outputFile *os.File) error {
	return fmt.Errorf("easyterm: not available on windows")
}

// CleanUp does nothing under windows.
func (pt *Terminal) CleanUp() {
}

// CanonicalMode does nothing under windows.
func (pt *Terminal) CanonicalMode() error {
	return nil
}

// RawMode does nothing under windows.
func (pt *Terminal) RawMode() error {
	return nil
}

// Flush does nothing under windows.
func (pt *Terminal) Flush() error {
	return nil
}
