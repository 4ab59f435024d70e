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

package prefs_test

import (
	"errors"
	"testing"

	"github.com/appleone/appleone/prefs"
	"github.com/appleone/appleone/test"
)

func TestBool(t *testing.T) {
	var v prefs.Bool
	test.ExpectEquality(t, v.Get().(bool), false)

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectEquality(t, v.Get().(bool), true)
	test.ExpectEquality(t, v.String(), "true")

	test.ExpectSuccess(t, v.Set("FALSE"))
	test.ExpectEquality(t, v.Get().(bool), false)

	test.ExpectSuccess(t, v.Set("True"))
	test.ExpectEquality(t, v.Get().(bool), true)

	test.ExpectFailure(t, v.Set(10))

	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Get().(bool), false)
}

func TestInt(t *testing.T) {
	var v prefs.Int
	test.ExpectEquality(t, v.Get().(int), 0)

	test.ExpectSuccess(t, v.Set(60))
	test.ExpectEquality(t, v.Get().(int), 60)

	test.ExpectSuccess(t, v.Set("50"))
	test.ExpectEquality(t, v.Get().(int), 50)
	test.ExpectEquality(t, v.String(), "50")

	test.ExpectFailure(t, v.Set("fifty"))
	test.ExpectEquality(t, v.Get().(int), 50)
}

func TestFloat(t *testing.T) {
	var v prefs.Float
	test.ExpectEquality(t, v.Get().(float64), 0.0)

	test.ExpectSuccess(t, v.Set(1.023))
	test.ExpectEquality(t, v.String(), "1.023")

	test.ExpectSuccess(t, v.Set("2.5"))
	test.ExpectEquality(t, v.Get().(float64), 2.5)

	test.ExpectSuccess(t, v.Set(3))
	test.ExpectEquality(t, v.Get().(float64), 3.0)

	test.ExpectFailure(t, v.Set(true))
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int

	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(int) <= 0 {
			return errors.New("must be positive")
		}
		return nil
	})
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectEquality(t, post, 10)

	// pre hook rejects the value so the stored value is unchanged
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get().(int), 10)
	test.ExpectEquality(t, post, 10)
}

func TestCommandLineStack(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	prefs.PushCommandLineStack("foo::bar; baz::qux")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1)

	ok, v := prefs.GetCommandLinePref("foo")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "bar")

	// values are removed once they have been retrieved
	ok, _ = prefs.GetCommandLinePref("foo")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestGroup(t *testing.T) {
	var clock prefs.Float
	var echo prefs.Bool

	grp := prefs.NewGroup()
	test.ExpectSuccess(t, grp.Add("test.clock", &clock))
	test.ExpectSuccess(t, grp.Add("test.echo", &echo))
	test.ExpectFailure(t, grp.Add("test.echo", &echo))

	test.ExpectSuccess(t, grp.Set("test.clock", 1.0))
	test.ExpectFailure(t, grp.Set("test.missing", 1.0))

	prefs.PushCommandLineStack("test.echo::true; test.other::10")
	test.ExpectSuccess(t, grp.ApplyCommandLine())
	test.ExpectEquality(t, echo.Get().(bool), true)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "test.other::10")

	test.ExpectEquality(t, grp.String(), "test.clock :: 1.000\ntest.echo :: true\n")
}
