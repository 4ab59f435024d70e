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

package preferences

import (
	"fmt"

	"github.com/appleone/appleone/hardware/keyboard"
	"github.com/appleone/appleone/prefs"
)

// Default values for the hardware preferences.
const (
	DefaultClockMHz      = 1.0
	DefaultFPS           = 60.0
	DefaultEchoDelete    = true
	DefaultKeyboardDepth = keyboard.DefaultDepth
)

// Keys used to identify each preference.
const (
	KeyClock         = "appleone.clock"
	KeyFPS           = "appleone.fps"
	KeyEchoDelete    = "appleone.echoDelete"
	KeyKeyboardDepth = "appleone.keyboardDepth"
)

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	grp *prefs.Group

	// speed of the virtual clock in MHz
	ClockMHz prefs.Float

	// number of frames per second. the clock is divided evenly between frames
	FPS prefs.Float

	// whether the erase character should remove the previous character from
	// the display
	EchoDelete prefs.Bool

	// maximum number of keys waiting to be read by the machine
	KeyboardDepth prefs.Int
}

func (p *Preferences) String() string {
	return p.grp.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are set to the defaults and then any values on the
// command line stack are applied.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{
		grp: prefs.NewGroup(),
	}

	p.ClockMHz.SetHookPre(func(v prefs.Value) error {
		if v.(float64) <= 0.0 {
			return fmt.Errorf("preferences: clock speed must be positive")
		}
		return nil
	})
	p.FPS.SetHookPre(func(v prefs.Value) error {
		if v.(float64) <= 0.0 {
			return fmt.Errorf("preferences: frame rate must be positive")
		}
		return nil
	})
	p.KeyboardDepth.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return fmt.Errorf("preferences: keyboard depth must be at least one")
		}
		return nil
	})

	err := p.grp.Add(KeyClock, &p.ClockMHz)
	if err != nil {
		return nil, err
	}
	err = p.grp.Add(KeyFPS, &p.FPS)
	if err != nil {
		return nil, err
	}
	err = p.grp.Add(KeyEchoDelete, &p.EchoDelete)
	if err != nil {
		return nil, err
	}
	err = p.grp.Add(KeyKeyboardDepth, &p.KeyboardDepth)
	if err != nil {
		return nil, err
	}

	err = p.SetDefaults()
	if err != nil {
		return nil, err
	}

	err = p.grp.ApplyCommandLine()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() error {
	err := p.ClockMHz.Set(DefaultClockMHz)
	if err != nil {
		return err
	}
	err = p.FPS.Set(DefaultFPS)
	if err != nil {
		return err
	}
	err = p.EchoDelete.Set(DefaultEchoDelete)
	if err != nil {
		return err
	}
	return p.KeyboardDepth.Set(DefaultKeyboardDepth)
}

// Set the preference named by key.
func (p *Preferences) Set(key string, v prefs.Value) error {
	return p.grp.Set(key, v)
}

// CyclesPerFrame returns the number of CPU cycles in each frame. The value is
// always at least one.
func (p *Preferences) CyclesPerFrame() int {
	cycles := int(p.ClockMHz.Get().(float64) * 1e6 / p.FPS.Get().(float64))
	return max(cycles, 1)
}
