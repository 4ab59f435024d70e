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
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/appleone/appleone/disassembly"
	"github.com/appleone/appleone/hardware"
	"github.com/appleone/appleone/hardware/preferences"
	"github.com/appleone/appleone/loader"
	"github.com/appleone/appleone/logger"
	"github.com/appleone/appleone/modalflag"
	"github.com/appleone/appleone/prefs"
	"github.com/appleone/appleone/statsview"
	"github.com/appleone/appleone/terminal"
	"github.com/appleone/appleone/terminal/easyterm"
	"github.com/appleone/appleone/version"
)

// default load address for binary programs
const defaultLoadAddress = "0280"

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "LOAD", "VERSION")
	md.AdditionalHelp(version.String())

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* %s\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "LOAD":
		err = load(md)
	case "VERSION":
		fmt.Println(version.String())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		os.Exit(20)
	}
}

// parseAddress accepts a hexadecimal address with or without a "$" or "0x"
// prefix.
func parseAddress(s string) (uint16, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimPrefix(s, "0x")
	a, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid address: %s", s)
	}
	return uint16(a), nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	clock := md.AddFloat64("clock", preferences.DefaultClockMHz, "clock speed in MHz")
	fps := md.AddFloat64("fps", preferences.DefaultFPS, "frames per second")
	echoDelete := md.AddBool("echodelete", preferences.DefaultEchoDelete, "erase character removes the previous character from the display (-echodelete=false to show it as _)")
	halt := md.AddBool("halt", false, "start with execution halted (ctrl-t to resume)")
	log := md.AddBool("log", false, "echo debugging log to stderr")
	prefsArg := md.AddString("prefs", "", "preferences as key::value pairs separated by semicolons")
	memvizFile := md.AddString("memviz", "", "write graphviz of the machine state to file on exit")
	at := md.AddString("at", defaultLoadAddress, "load address (hex) for binary programs")

	stats := new(bool)
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 1 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *log {
		logger.SetEcho(os.Stderr)
	}
	logger.Log(logger.Allow, "APPLEONE", version.String())

	// the preferences flags are pushed onto the command line stack before
	// the -prefs value so that the -prefs value takes priority
	prefs.PushCommandLineStack(fmt.Sprintf("%s::%g; %s::%g; %s::%v; %s",
		preferences.KeyClock, *clock,
		preferences.KeyFPS, *fps,
		preferences.KeyEchoDelete, *echoDelete,
		*prefsArg))

	prf, err := preferences.NewPreferences()
	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "APPLEONE", "unused preferences: %s", unused)
	}
	if err != nil {
		return err
	}

	a1, err := hardware.NewAppleOne(prf)
	if err != nil {
		return err
	}
	defer a1.End()

	if len(md.RemainingArgs()) == 1 {
		addr, err := parseAddress(*at)
		if err != nil {
			return err
		}
		ld := loader.NewLoader(md.GetArg(0), addr)
		err = ld.Attach(a1)
		if err != nil {
			return err
		}
	}

	a1.HaltExecution(*halt)

	if *stats {
		stop := statsview.Launch(os.Stdout)
		defer stop()
	}

	var term easyterm.Terminal
	err = term.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		// not fatal. input will be line buffered and echoed by the host
		logger.Log(logger.Allow, "TERMINAL", err.Error())
	} else {
		err = term.RawMode()
		if err != nil {
			return err
		}
		defer term.CleanUp()
	}

	host := terminal.NewHost(a1, os.Stdout, prf.EchoDelete.Get().(bool))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- a1.Run(ctx)
	}()

	err = host.Serve(ctx, os.Stdin)
	cancel()
	<-done

	if *memvizFile != "" {
		verr := visualise(a1, *memvizFile)
		if verr != nil {
			return verr
		}
	}

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func visualise(a1 *hardware.AppleOne, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	a1.Visualise(f)
	return f.Close()
}

func load(md *modalflag.Modes) error {
	md.NewMode()

	at := md.AddString("at", defaultLoadAddress, "load address (hex) for binary programs")
	disasm := md.AddBool("disasm", false, "include disassembly of the loaded program")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("%s mode requires a single program file", md)
	}

	addr, err := parseAddress(*at)
	if err != nil {
		return err
	}

	ld := loader.NewLoader(md.GetArg(0), addr)
	err = ld.Load()
	if err != nil {
		return err
	}

	prf, err := preferences.NewPreferences()
	if err != nil {
		return err
	}

	a1, err := hardware.NewAppleOne(prf)
	if err != nil {
		return err
	}
	defer a1.End()

	err = ld.Attach(a1)
	if err != nil {
		return err
	}

	return dump(md.Output, a1, ld, *disasm)
}

// dump prints every block of the loaded program as it appears in memory.
func dump(output io.Writer, a1 *hardware.AppleOne, ld loader.Loader, disasm bool) error {
	for _, b := range ld.Blocks {
		memtop := uint16(b.End() - 1)
		_, err := fmt.Fprintf(output, "%s\n%s\n", b, a1.Mem.Dump(b.Address, memtop))
		if err != nil {
			return err
		}

		if disasm {
			entries, err := disassembly.FromMemory(a1.Mem, b.Address, memtop)
			if err != nil {
				return err
			}
			err = disassembly.Write(output, entries)
			if err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintf(output, "sha1: %s\n", ld.Hash)
	return err
}
