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
package schema

import (
	"encoding/binary"
	"errors"
	"fmt"

	"lukechampine.com/blake3"
)

// Registry is an ordered, read-only collection of instruction definitions
// together with any records (pseudo-instructions) they refer to.  The order of
// instructions is the order in which they were declared, and determines the
// order of all generated output.
type Registry struct {
	namespace    string
	instructions []Instruction
	records      []Instruction
}

// NewRegistry constructs a registry from the given instructions and records.
// The namespace prefixes every generated opcode constant (e.g.
// "V3D_HW_INSTR").  Inputs are copied so the registry cannot be mutated
// afterwards.
func NewRegistry(namespace string, instructions []Instruction, records []Instruction) *Registry {
	return &Registry{namespace, cloneAll(instructions), cloneAll(records)}
}

// Namespace returns the prefix used for generated constants.
func (p *Registry) Namespace() string {
	return p.namespace
}

// Instructions returns the real instructions of this registry, in declaration
// order.
func (p *Registry) Instructions() []Instruction {
	return cloneAll(p.instructions)
}

// Records returns the pseudo-instructions of this registry, in declaration
// order.
func (p *Registry) Records() []Instruction {
	return cloneAll(p.records)
}

// All returns every definition of this registry: instructions first, then
// records.
func (p *Registry) All() []Instruction {
	return append(p.Instructions(), p.Records()...)
}

// Len returns the total number of definitions (instructions and records).
func (p *Registry) Len() uint {
	return uint(len(p.instructions) + len(p.records))
}

// Lookup finds the definition with the given name.
func (p *Registry) Lookup(name string) (Instruction, bool) {
	for _, defs := range [][]Instruction{p.instructions, p.records} {
		for _, ins := range defs {
			if ins.Name == name {
				return ins.Clone(), true
			}
		}
	}
	//
	return Instruction{}, false
}

// LookupOpcode finds the real instruction with the given opcode.
func (p *Registry) LookupOpcode(opcode uint8) (Instruction, bool) {
	for _, ins := range p.instructions {
		if ins.Opcode == int(opcode) {
			return ins.Clone(), true
		}
	}
	//
	return Instruction{}, false
}

// Validate checks the structural invariants of this registry, returning every
// violation found (joined) or nil.  Specifically: opcodes of real instructions
// must be unique and in range; records must declare fields but no opcode; names must
// be unique identifiers; and every field must have a unique name and a width
// between 1 and 64 bits.
func (p *Registry) Validate() error {
	var (
		errs    []error
		names   = make(map[string]bool)
		opcodes = make(map[int]string)
	)
	//
	for _, ins := range p.instructions {
		switch {
		case !ins.HasOpcode():
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingOpcode, ins.Name))
		case ins.Opcode < 0 || ins.Opcode > MaxOpcode:
			errs = append(errs, fmt.Errorf("%w: %s has opcode %d", ErrInvalidOpcode, ins.Name, ins.Opcode))
		default:
			if other, ok := opcodes[ins.Opcode]; ok {
				errs = append(errs, fmt.Errorf("%w: %s and %s share opcode %d", ErrDuplicateOpcode, other, ins.Name,
					ins.Opcode))
			} else {
				opcodes[ins.Opcode] = ins.Name
			}
		}
	}
	//
	for _, rec := range p.records {
		if rec.HasOpcode() {
			errs = append(errs, fmt.Errorf("%w: %s", ErrOpcodeOnRecord, rec.Name))
		} else if len(rec.Fields) == 0 {
			errs = append(errs, fmt.Errorf("%w: %s", ErrEmptyRecord, rec.Name))
		}
	}
	//
	for _, ins := range p.All() {
		if ins.Name == "" {
			errs = append(errs, ErrEmptyName)
		} else if !isIdentifier(ins.Name) {
			errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidName, ins.Name))
		} else if names[ins.Name] {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateInstruction, ins.Name))
		}
		//
		names[ins.Name] = true
		//
		errs = append(errs, validateFields(ins)...)
	}
	//
	return errors.Join(errs...)
}

func validateFields(ins Instruction) []error {
	var (
		errs   []error
		fields = make(map[string]bool)
	)
	//
	for _, f := range ins.Fields {
		switch {
		case f.Name == "":
			errs = append(errs, fmt.Errorf("%w: field of %s", ErrEmptyName, ins.Name))
		case !isIdentifier(f.Name):
			errs = append(errs, fmt.Errorf("%w: %s.%q", ErrInvalidName, ins.Name, f.Name))
		case fields[f.Name]:
			errs = append(errs, fmt.Errorf("%w: %s.%s", ErrDuplicateFieldName, ins.Name, f.Name))
		}
		//
		if f.Width == 0 {
			errs = append(errs, fmt.Errorf("%w: %s.%s", ErrZeroFieldWidth, ins.Name, f.Name))
		} else if f.Width > 64 {
			errs = append(errs, fmt.Errorf("%w: %s.%s has %d bits", ErrUnsupportedFieldWidth, ins.Name, f.Name,
				f.Width))
		}
		//
		fields[f.Name] = true
	}
	//
	return errs
}

// Digest returns a BLAKE3 fingerprint of this registry.  Any change to a name,
// opcode, flag, field or their order yields a different digest.  Generated
// output embeds this digest so that it can be traced back to the schema that
// produced it without breaking reproducibility.
func (p *Registry) Digest() [32]byte {
	var buf []byte
	//
	buf = appendString(buf, p.namespace)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(p.instructions)))
	//
	for _, ins := range p.All() {
		buf = appendString(buf, ins.Name)
		buf = binary.LittleEndian.AppendUint32(buf, uint32(int32(ins.Opcode)))
		buf = append(buf, boolByte(ins.Rendering), boolByte(ins.Binning))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(ins.Fields)))
		//
		for _, f := range ins.Fields {
			buf = appendString(buf, f.Name)
			buf = binary.LittleEndian.AppendUint32(buf, uint32(f.Width))
		}
	}
	//
	return blake3.Sum256(buf)
}

func isIdentifier(name string) bool {
	for i, c := range name {
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && c >= '0' && c <= '9':
		default:
			return false
		}
	}
	//
	return name != ""
}

func appendString(buf []byte, s string) []byte {
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(s)))
	return append(buf, s...)
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	//
	return 0
}

func cloneAll(defs []Instruction) []Instruction {
	ndefs := make([]Instruction, len(defs))
	//
	for i := range defs {
		ndefs[i] = defs[i].Clone()
	}
	//
	return ndefs
}
