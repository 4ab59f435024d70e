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

// Package hardware is the base package for the Apple-1 emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The AppleOne type is the root of the emulation and contains external
// references to all the machine's sub-systems. From here, the emulation can
// either be started to run continuously with Run() or be stepped one frame at
// a time with RunForFrame().
//
//	a1, err := hardware.NewAppleOne(prefs)
//	if err != nil {
//		return err
//	}
//	defer a1.End()
//
//	a1.SetOutputHandler(func(c uint8) {
//		fmt.Printf("%c", c)
//	})
//
//	go a1.Run(ctx)
//
// Characters typed on the host keyboard are sent to the machine with
// InputCharacter(). Output from the machine is delivered to the output handler
// on a goroutine owned by the PIA, never on the goroutine calling Run().
//
// Programs can be copied into memory with BlitData(). BlitData() and Reset()
// are safe to call while the emulation is running: both wait for the current
// frame's batch of instructions to complete.
package hardware
