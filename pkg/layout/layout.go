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
// Package layout derives the bit-level memory layout of control list
// instructions.  A layout is an ordered sequence of slots: an implicit opcode
// slot (for real instructions) followed by one slot per declared field.  Slots
// are packed least significant bit first into little-endian bytes, such that
// the first slot starts at bit 0 of byte 0.
package layout

import (
	"fmt"
	"strings"

	sc "github.com/consensys/go-clgen/pkg/schema"
	"github.com/consensys/go-clgen/pkg/util/collection/bit"
)

// OpcodeWidth is the number of bits occupied by the leading opcode slot.
const OpcodeWidth = 8

// OpcodeSlot is the name given to the implicit opcode slot.
const OpcodeSlot = "opcode"

// Slot describes the placement of a single bit-field within an instruction.
type Slot struct {
	// Name of the field (or OpcodeSlot).
	Name string
	// Width is the number of bits occupied by this slot.
	Width uint
	// Storage is the width of the smallest unsigned integer type which can
	// hold any value of this slot (8, 16, 32 or 64).
	Storage uint
	// Offset is the bit offset of this slot from the start of the
	// instruction.
	Offset uint
	// Opcode indicates the implicit opcode slot.
	Opcode bool
}

// Mask returns the largest value which fits within this slot.
func (p Slot) Mask() uint64 {
	return bit.Mask(p.Width)
}

func (p Slot) String() string {
	return fmt.Sprintf("%s:%d@%d", p.Name, p.Width, p.Offset)
}

// Layout is the derived memory layout of a single instruction (or record).
type Layout struct {
	// Instruction from which this layout was derived.
	Instruction sc.Instruction
	// Slots of this layout, in memory order.
	Slots []Slot
	// PadBits is the number of trailing padding bits needed to round the
	// layout up to a whole number of bytes.
	PadBits uint
}

// Name returns the name of the instruction described by this layout.
func (p *Layout) Name() string {
	return p.Instruction.Name
}

// HasOpcode determines whether this layout starts with an opcode slot.
func (p *Layout) HasOpcode() bool {
	return p.Instruction.HasOpcode()
}

// Opcode returns the opcode of this layout.  This is only meaningful when
// HasOpcode() holds.
func (p *Layout) Opcode() uint8 {
	return uint8(p.Instruction.Opcode)
}

// Bits returns the total number of bits in this layout, including the opcode
// slot but excluding any padding.
func (p *Layout) Bits() uint {
	var n uint
	//
	for _, s := range p.Slots {
		n += s.Width
	}
	//
	return n
}

// Size returns the encoded length of this layout in bytes.
func (p *Layout) Size() uint {
	return (p.Bits() + p.PadBits) / 8
}

// Fields returns the slots of this layout other than the opcode slot.  These
// correspond one-to-one with the declared fields of the instruction.
func (p *Layout) Fields() []Slot {
	if p.HasOpcode() {
		return p.Slots[1:]
	}
	//
	return p.Slots
}

// Slot returns the slot with the given name, or false if none exists.
func (p *Layout) Slot(name string) (Slot, bool) {
	for _, s := range p.Slots {
		if s.Name == name {
			return s, true
		}
	}
	//
	return Slot{}, false
}

func (p *Layout) String() string {
	var builder strings.Builder
	//
	builder.WriteString(p.Name())
	builder.WriteString("{")
	//
	for i, s := range p.Slots {
		if i != 0 {
			builder.WriteString(",")
		}
		//
		builder.WriteString(s.String())
	}
	//
	if p.PadBits > 0 {
		fmt.Fprintf(&builder, ",pad:%d", p.PadBits)
	}
	//
	builder.WriteString("}")
	//
	return builder.String()
}
