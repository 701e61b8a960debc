// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package profile holds the language-profile constants that extraction
// depends on but that are not part of the language proper, such as the range
// of valid operator priorities.
package profile

import (
	"context"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/pietro/gcc/internal/exc"
	"github.com/pietro/gcc/internal/fs"
)

// Profile is loaded from a TOML document of the form:
//
//	[priority]
//	min = 1
//	max = 9
//	none = 0
type Profile struct {
	Priority Priority `toml:"priority"`
}

type Priority struct {
	// Min and Max bound the closed range a PRIO declaration may use. A value
	// outside it is replaced by Max.
	Min int `toml:"min"`
	Max int `toml:"max"`
	// None is given to operator occurrences whose priority cannot be found.
	// It must sort below Min so that precedence climbing terminates.
	None int `toml:"none"`
}

// Default is the Algol 68 priority range 1..9.
func Default() Profile {
	return Profile{
		Priority: Priority{
			Min:  1,
			Max:  9,
			None: 0,
		},
	}
}

// Valid reports whether p is a legal priority declaration value.
func (self Profile) Valid(p int) bool {
	return p >= self.Priority.Min && p <= self.Priority.Max
}

func (self Profile) Validate() error {
	if self.Priority.Min > self.Priority.Max {
		return fmt.Errorf("priority range [%d,%d] is empty", self.Priority.Min, self.Priority.Max)
	}
	if self.Priority.None >= self.Priority.Min {
		return fmt.Errorf("no-priority value %d must be below the minimum priority %d", self.Priority.None, self.Priority.Min)
	}
	return nil
}

// Parse decodes a profile. Keys left out keep their default values.
func Parse(data string) (Profile, error) {
	p := Default()
	md, err := toml.Decode(data, &p)
	if err != nil {
		return Profile{}, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Profile{}, fmt.Errorf("unknown profile key %q", undecoded[0].String())
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Load reads and parses a profile file.
func Load(ctx context.Context, f fs.File) (Profile, error) {
	path := f.Path(ctx)
	if k := f.Kind(ctx); k != fs.FileKindProfile {
		return Profile{}, exc.New(exc.Location{URI: path}, exc.CodeUnsupportedFileFormat, "S is not a profile", k.String())
	}
	b, err := fs.ReadAll(ctx, f)
	if err != nil {
		return Profile{}, err
	}
	p, err := Parse(string(b))
	if err != nil {
		return Profile{}, exc.Wrap(exc.Location{URI: path}, exc.CodeInvalidProfile, err)
	}
	return p, nil
}

// Open finds the single profile file at uri in fsys and loads it.
func Open(ctx context.Context, fsys fs.FileSystem, uri string) (Profile, error) {
	files, err := fsys.Open(ctx, uri)
	if err != nil {
		return Profile{}, err
	}
	if len(files) != 1 {
		return Profile{}, exc.New(exc.Location{URI: uri}, exc.CodeUnsupportedFileFormat, "S names a directory, not a profile", uri)
	}
	return Load(ctx, files[0])
}
