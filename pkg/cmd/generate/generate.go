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
package generate

import (
	"encoding/hex"
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/consensys/go-clgen/pkg/layout"
	sc "github.com/consensys/go-clgen/pkg/schema"
	"github.com/consensys/go-clgen/pkg/util"
)

// ErrUnknownTarget arises when generation is requested for a target language
// which is not supported.
var ErrUnknownTarget = errors.New("unknown target")

// ErrNameCollision arises when two generated identifiers coincide.
var ErrNameCollision = errors.New("name collision")

// ErrEmptyRegistry arises when asked to generate code for a registry without
// any definitions.
var ErrEmptyRegistry = errors.New("empty registry")

// Options configure a generation run.
type Options struct {
	// Namespace prefixing opcode and size constants.  When empty, the
	// namespace of the registry is used.
	Namespace string
	// Base name of the generated files, from which the include guard (C) is
	// also derived.
	Base string
	// Package clause for generated Go code.
	Package string
	// Import path of the bit packing package used by generated Go code.
	RuntimeImport string
	// Alignment policy applied when deriving layouts.
	Policy layout.Policy
}

// DefaultOptions returns the options used in the absence of any
// configuration.
func DefaultOptions() Options {
	return Options{
		Base:          "v3d_cl_instr_autogen",
		Package:       "v3dcl",
		RuntimeImport: "github.com/consensys/go-clgen/pkg/util/collection/bit",
		Policy:        layout.PadTrailingBits,
	}
}

// Output holds the two text streams produced by a generation run: the
// declarations (constants and layout types) and the definitions (construction,
// introspection and dispatch operations).
type Output struct {
	Declarations     string
	DeclarationsFile string
	Definitions      string
	DefinitionsFile  string
}

// Files returns the output as a list of (filename, contents) pairs, with
// filenames relative to the given directory.
func (p *Output) Files(dir string) [][2]string {
	return [][2]string{
		{filepath.Join(dir, p.DeclarationsFile), p.Declarations},
		{filepath.Join(dir, p.DefinitionsFile), p.Definitions},
	}
}

// Unit is everything a target needs to generate code for one registry: the
// registry itself, the layouts of its definitions (in registry order) and the
// effective options.
type Unit struct {
	Registry *sc.Registry
	Layouts  []*layout.Layout
	Options  Options
}

// Digest returns the registry digest as a hex string.
func (p *Unit) Digest() string {
	digest := p.Registry.Digest()
	return hex.EncodeToString(digest[:])
}

// Target generates code for a given language.
type Target interface {
	// Name of this target, as used on the command line.
	Name() string
	// Generate code for the given unit.
	Generate(unit *Unit) (*Output, error)
}

var targets = []Target{&cTarget{}, &goTarget{}}

// Targets returns the names of all supported targets.
func Targets() []string {
	var names []string
	//
	for _, t := range targets {
		names = append(names, t.Name())
	}
	//
	return names
}

// LookupTarget returns the target with the given name.
func LookupTarget(name string) (Target, error) {
	index := slices.IndexFunc(targets, func(t Target) bool { return t.Name() == name })
	//
	if index < 0 {
		return nil, fmt.Errorf("%w %q (supported: %v)", ErrUnknownTarget, name, Targets())
	}
	//
	return targets[index], nil
}

// Prepare validates a registry and derives the layouts of all its definitions,
// returning every problem found.  Nothing is generated unless this succeeds.
func Prepare(registry *sc.Registry, options Options) (*Unit, error) {
	stats := util.NewPerfStats()
	//
	if registry.Len() == 0 {
		return nil, ErrEmptyRegistry
	} else if err := registry.Validate(); err != nil {
		return nil, err
	}
	//
	layouts, err := layout.DeriveAll(registry, options.Policy)
	//
	if err != nil {
		return nil, err
	}
	//
	if options.Namespace == "" {
		options.Namespace = registry.Namespace()
	}
	//
	stats.Log("Deriving layouts")
	//
	return &Unit{registry, layouts, options}, nil
}

// Generate produces the declarations and definitions for a given registry in
// a given target language.  Generation is all or nothing: when the registry is
// invalid, or a layout cannot be derived, an error is returned and no output is
// produced.  Output is deterministic, so repeated runs give identical text.
func Generate(registry *sc.Registry, target string, options Options) (*Output, error) {
	tgt, err := LookupTarget(target)
	//
	if err != nil {
		return nil, err
	}
	//
	unit, err := Prepare(registry, options)
	//
	if err != nil {
		return nil, err
	}
	//
	stats := util.NewPerfStats()
	output, err := tgt.Generate(unit)
	//
	if err != nil {
		return nil, err
	}
	//
	stats.Log(fmt.Sprintf("Generating %s", tgt.Name()))
	//
	return output, nil
}
