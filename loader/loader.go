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

package loader

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/appleone/appleone/logger"
)

// HexDumpExtensions is the list of file extensions that indicate a hex dump.
// All other files are loaded as binary data.
var HexDumpExtensions = [...]string{".TXT", ".HEX", ".WOZ"}

// Target is the interface to the machine that a program is loaded into. It
// is satisfied by hardware.AppleOne.
type Target interface {
	BlitData(data []uint8, address uint16) error
}

// Loader is used to specify the program to load into memory.
type Loader struct {
	// filename of the program to load
	Filename string

	// address at which binary data is placed. not used for hex dumps
	Address uint16

	// whether the file is a hex dump. decided by the file extension
	IsHexDump bool

	// hash of the file contents after a successful call to Load()
	Hash string

	// the program after a successful call to Load()
	Blocks []Block
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string, address uint16) Loader {
	ld := Loader{
		Filename: filename,
		Address:  address,
	}

	ext := strings.ToUpper(path.Ext(filename))
	for _, e := range HexDumpExtensions {
		if ext == e {
			ld.IsHexDump = true
			break
		}
	}

	return ld
}

// ShortName returns the filename without the path or extension.
func (ld Loader) ShortName() string {
	s := path.Base(ld.Filename)
	return strings.TrimSuffix(s, path.Ext(ld.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Blocks) > 0
}

// Load reads and parses the program. Calling Load() once the program has
// been loaded has no effect.
func (ld *Loader) Load() error {
	if ld.HasLoaded() {
		return nil
	}

	data, err := ld.read()
	if err != nil {
		logger.Log(logger.Allow, "LOADER", err.Error())
		return err
	}

	if ld.IsHexDump {
		ld.Blocks, err = ParseHexDump(bytes.NewReader(data))
		if err != nil {
			logger.Logf(logger.Allow, "LOADER", "%s: %v", ld.Filename, err)
			return err
		}
	} else {
		if len(data) == 0 {
			return ErrEmptyProgram
		}
		ld.Blocks = []Block{{Address: ld.Address, Data: data}}
	}

	ld.Hash = fmt.Sprintf("%x", sha1.Sum(data))

	return nil
}

func (ld *Loader) read() ([]uint8, error) {
	var scheme string
	if u, err := url.Parse(ld.Filename); err == nil {
		scheme = u.Scheme
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return nil, fmt.Errorf("loader: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("loader: %s: %s", ld.Filename, resp.Status)
		}

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("loader: %w", err)
		}
		return data, nil

	default:
		data, err := os.ReadFile(ld.Filename)
		if err != nil {
			return nil, fmt.Errorf("loader: %w", err)
		}
		return data, nil
	}
}

// Attach loads the program, if it has not already been loaded, and copies
// every block into the target. Blocks are copied in order and copying stops at
// the first error.
func (ld *Loader) Attach(t Target) error {
	err := ld.Load()
	if err != nil {
		return err
	}

	for _, b := range ld.Blocks {
		err := t.BlitData(b.Data, b.Address)
		if err != nil {
			logger.Logf(logger.Allow, "LOADER", "%s: %v", ld.Filename, err)
			return fmt.Errorf("loader: %s: %w", b, err)
		}
		logger.Logf(logger.Allow, "LOADER", "%s: %s", ld.ShortName(), b)
	}

	return nil
}
