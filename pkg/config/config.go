// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
// Package config handles clgen.toml generation settings.  Every setting is
// optional, and command-line flags take precedence over the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/consensys/go-clgen/pkg/cmd/generate"
	"github.com/consensys/go-clgen/pkg/layout"
)

// DefaultFile is the configuration file read when none is given explicitly.
const DefaultFile = "clgen.toml"

// Config represents a clgen.toml file.
type Config struct {
	// Namespace prefixing generated constants.  Empty means the namespace of
	// the registry.
	Namespace string `toml:"namespace"`
	// Target language ("c" or "go").
	Target string `toml:"target"`
	// Output is the base path of generated files (without extension).
	Output string `toml:"output"`
	// Package clause of generated Go code.
	Package string `toml:"package"`
	// Alignment is the alignment policy ("pad" or "reject").
	Alignment string `toml:"alignment"`
	// RuntimeImport is the import path of the bit packing package used by
	// generated Go code.
	RuntimeImport string `toml:"runtime-import"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	options := generate.DefaultOptions()
	//
	return &Config{
		Target:        "c",
		Output:        options.Base,
		Package:       options.Package,
		Alignment:     options.Policy.String(),
		RuntimeImport: options.RuntimeImport,
	}
}

// Load reads a configuration file, filling in defaults for anything it does
// not set.  A missing DefaultFile is not an error, but any other missing file
// is.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	//
	if errors.Is(err, os.ErrNotExist) && filepath.Base(path) == DefaultFile {
		return Default(), nil
	} else if err != nil {
		return nil, err
	}
	//
	cfg, err := Parse(string(data))
	//
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	//
	return cfg, nil
}

// Parse decodes configuration text on top of the defaults.  Unknown keys are
// rejected, as they are most likely typos.
func Parse(text string) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(text, cfg)
	//
	if err != nil {
		return nil, err
	}
	//
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		var keys []string
		//
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		//
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	//
	return cfg, cfg.Validate()
}

// Validate checks the target and alignment policy are recognised.
func (p *Config) Validate() error {
	var errs []error
	//
	if !slices.Contains(generate.Targets(), p.Target) {
		errs = append(errs, fmt.Errorf("%w %q", generate.ErrUnknownTarget, p.Target))
	}
	//
	if _, err := layout.ParsePolicy(p.Alignment); err != nil {
		errs = append(errs, err)
	}
	//
	if p.Output == "" {
		errs = append(errs, errors.New("empty output"))
	}
	//
	return errors.Join(errs...)
}

// Options converts this configuration into generation options.
func (p *Config) Options() (generate.Options, error) {
	policy, err := layout.ParsePolicy(p.Alignment)
	//
	if err != nil {
		return generate.Options{}, err
	}
	//
	return generate.Options{
		Namespace:     p.Namespace,
		Base:          filepath.Base(p.Output),
		Package:       p.Package,
		RuntimeImport: p.RuntimeImport,
		Policy:        policy,
	}, nil
}

// Dir returns the directory into which generated files are written.
func (p *Config) Dir() string {
	return filepath.Dir(p.Output)
}
