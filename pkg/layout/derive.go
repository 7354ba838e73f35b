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
package layout

import (
	"errors"
	"fmt"

	sc "github.com/consensys/go-clgen/pkg/schema"
	"github.com/consensys/go-clgen/pkg/util/collection/bit"
)

// ErrUnsupportedFieldWidth arises when a field is too wide for the largest
// storage type.  Such fields are never silently truncated.
var ErrUnsupportedFieldWidth = sc.ErrUnsupportedFieldWidth

// ErrUnalignedLayout arises under RejectUnaligned when the slots of an
// instruction do not total a whole number of bytes.
var ErrUnalignedLayout = errors.New("layout not byte aligned")

// Policy determines how layouts whose total bit width is not a multiple of 8
// are handled.
type Policy uint8

const (
	// PadTrailingBits rounds the layout up to the next byte boundary with
	// unnamed trailing padding.
	PadTrailingBits Policy = iota
	// RejectUnaligned fails with ErrUnalignedLayout.
	RejectUnaligned
)

// ParsePolicy converts a policy name ("pad" or "reject") into a policy.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "", "pad":
		return PadTrailingBits, nil
	case "reject":
		return RejectUnaligned, nil
	default:
		return PadTrailingBits, fmt.Errorf("unknown alignment policy %q", name)
	}
}

func (p Policy) String() string {
	if p == RejectUnaligned {
		return "reject"
	}
	//
	return "pad"
}

// StorageWidth returns the width of the smallest unsigned integer type (8, 16,
// 32 or 64 bits) able to hold a field of the given width, or 0 if no such type
// exists.
func StorageWidth(bitwidth uint) uint {
	switch {
	case bitwidth <= 8:
		return 8
	case bitwidth <= 16:
		return 16
	case bitwidth <= 32:
		return 32
	case bitwidth <= bit.MaxWidth:
		return 64
	default:
		return 0
	}
}

// Derive computes the layout of a given instruction.  The result depends only
// on the instruction and the policy.
func Derive(instr sc.Instruction, policy Policy) (*Layout, error) {
	var (
		slots  []Slot
		offset uint
	)
	//
	if instr.HasOpcode() {
		slots = append(slots, Slot{OpcodeSlot, OpcodeWidth, OpcodeWidth, 0, true})
		offset = OpcodeWidth
	}
	//
	for _, f := range instr.Fields {
		storage := StorageWidth(f.Width)
		//
		if storage == 0 {
			return nil, fmt.Errorf("%w: %s.%s has %d bits", ErrUnsupportedFieldWidth, instr.Name, f.Name, f.Width)
		} else if instr.HasOpcode() && f.Name == OpcodeSlot {
			return nil, fmt.Errorf("%w: %s.%s clashes with opcode slot", sc.ErrDuplicateFieldName, instr.Name, f.Name)
		}
		//
		slots = append(slots, Slot{f.Name, f.Width, storage, offset, false})
		offset += f.Width
	}
	//
	var padding uint
	//
	if offset%8 != 0 {
		if policy == RejectUnaligned {
			return nil, fmt.Errorf("%w: %s has %d bits", ErrUnalignedLayout, instr.Name, offset)
		}
		//
		padding = 8 - (offset % 8)
	}
	//
	return &Layout{instr.Clone(), slots, padding}, nil
}

// DeriveAll derives the layout of every definition in the registry, in
// registry order (instructions then records).  All failures are reported
// together.
func DeriveAll(registry *sc.Registry, policy Policy) ([]*Layout, error) {
	var (
		defs    = registry.All()
		layouts = make([]*Layout, len(defs))
		errs    []error
	)
	//
	for i, def := range defs {
		l, err := Derive(def, policy)
		//
		if err != nil {
			errs = append(errs, err)
		}
		//
		layouts[i] = l
	}
	//
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	//
	return layouts, nil
}
