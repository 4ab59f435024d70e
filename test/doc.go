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

// Package test bundles helper functions for use with the standard go test
// harness.
//
// The Expect functions record a test failure but allow the test to continue.
// The Demand functions are fatal on failure and should be used when later
// parts of the test depend on the value being correct.
//
// Success and failure are interpreted according to the type of the value:
//
//	bool -> true is success
//	error -> nil is success
//	nil -> always success
//
// The Writer type implements io.Writer and is used to capture output, for
// example from the logger package, so that it can be compared with an
// expected string.
package test
