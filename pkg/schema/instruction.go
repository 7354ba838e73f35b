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
	"fmt"
	"slices"
	"strings"
)

// NoOpcode is the opcode sentinel used by pseudo-instructions (records), which
// are never preceded by an opcode byte.  Such records are only ever referenced
// by address from a field of a real instruction.
const NoOpcode = -1

// MaxOpcode is the largest opcode which fits in the leading opcode byte.
const MaxOpcode = 255

// Field describes a named bit-field within an instruction.  Fields are packed
// in declaration order and occupy exactly Width bits.
type Field struct {
	Name  string
	Width uint
}

// Reserved determines whether this field is a placeholder for reserved bits.
// Such fields are laid out like any other field, but their value carries no
// meaning.
func (p Field) Reserved() bool {
	return strings.HasPrefix(p.Name, "UNUSED")
}

func (p Field) String() string {
	return fmt.Sprintf("%s:%d", p.Name, p.Width)
}

// Instruction describes a single control list instruction (or record).  The
// Rendering and Binning flags indicate whether the instruction is meaningful in
// rendering and/or binning control lists.  They are carried through to
// generated output as documentation only and have no bearing on the layout.
type Instruction struct {
	Name      string
	Opcode    int
	Rendering bool
	Binning   bool
	Fields    []Field
}

// NewInstruction constructs a real instruction with the given opcode.
func NewInstruction(name string, opcode uint8, rendering bool, binning bool, fields ...Field) Instruction {
	return Instruction{name, int(opcode), rendering, binning, fields}
}

// NewRecord constructs a pseudo-instruction without an opcode byte.
func NewRecord(name string, fields ...Field) Instruction {
	return Instruction{name, NoOpcode, true, true, fields}
}

// F is a convenience constructor for fields, intended for use in static
// instruction tables.
func F(name string, width uint) Field {
	return Field{name, width}
}

// HasOpcode determines whether this instruction starts with an opcode byte (or
// is a record).
func (p *Instruction) HasOpcode() bool {
	return p.Opcode != NoOpcode
}

// Width returns the total number of bits declared by the fields of this
// instruction, excluding any opcode byte.
func (p *Instruction) Width() uint {
	var width uint
	//
	for _, f := range p.Fields {
		width += f.Width
	}
	//
	return width
}

// Field returns the field with the given name, or false if no such field
// exists.
func (p *Instruction) Field(name string) (Field, bool) {
	for _, f := range p.Fields {
		if f.Name == name {
			return f, true
		}
	}
	//
	return Field{}, false
}

// Clone returns a deep copy of this instruction.
func (p *Instruction) Clone() Instruction {
	ins := *p
	ins.Fields = slices.Clone(p.Fields)
	//
	return ins
}

func (p *Instruction) String() string {
	var builder strings.Builder
	//
	builder.WriteString(p.Name)
	//
	if p.HasOpcode() {
		fmt.Fprintf(&builder, "#%d", p.Opcode)
	}
	//
	builder.WriteString("(")
	//
	for i, f := range p.Fields {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(f.String())
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}
