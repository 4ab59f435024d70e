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

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/appleone/appleone/hardware"
	"github.com/appleone/appleone/hardware/preferences"
	"github.com/appleone/appleone/loader"
	"github.com/appleone/appleone/test"
)

func TestParseAddress(t *testing.T) {
	for _, s := range []string{"0280", "$0280", "0x0280", " 280 "} {
		a, err := parseAddress(s)
		test.ExpectSuccess(t, err, s)
		test.ExpectEquality(t, a, uint16(0x0280), s)
	}

	_, err := parseAddress("10000")
	test.ExpectFailure(t, err)
	_, err = parseAddress("xyz")
	test.ExpectFailure(t, err)
}

func TestDump(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prog.txt")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("0302: A9 01\n"), 0o600))

	ld := loader.NewLoader(fn, 0)

	prf, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	a1, err := hardware.NewAppleOne(prf)
	test.DemandSuccess(t, err)
	defer a1.End()

	test.DemandSuccess(t, ld.Attach(a1))

	w := &test.Writer{}
	test.ExpectSuccess(t, dump(w, a1, ld, false))
	test.ExpectEquality(t, w.String(), "0302: 2 bytes\n"+
		"0300: 00 00 A9 01 00 00 00 00 00 00 00 00 00 00 00 00\n"+
		"sha1: "+ld.Hash+"\n")

	w.Clear()
	test.ExpectSuccess(t, dump(w, a1, ld, true))
	test.ExpectEquality(t, w.String(), "0302: 2 bytes\n"+
		"0300: 00 00 A9 01 00 00 00 00 00 00 00 00 00 00 00 00\n"+
		"A9 01     0302 LDA #$01\n"+
		"sha1: "+ld.Hash+"\n")
}
