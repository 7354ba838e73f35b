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
// Package cl provides a runtime codec for control lists, driven directly by
// the derived instruction layouts.  It implements the same wire format as the
// generated code, and is used for inspecting memory images.
package cl

import (
	"fmt"
	"io"

	"github.com/consensys/go-clgen/pkg/layout"
	sc "github.com/consensys/go-clgen/pkg/schema"
	"github.com/consensys/go-clgen/pkg/util/collection/bit"
)

// Codec encodes and decodes instructions of a given registry.  A codec is
// immutable once constructed, and may be shared between goroutines.  Cursors
// passed to it are not.
type Codec struct {
	registry *sc.Registry
	layouts  []*layout.Layout
	byName   map[string]*layout.Layout
	byOpcode [sc.MaxOpcode + 1]*layout.Layout
}

// NewCodec constructs a codec for the given registry, deriving all layouts
// with the given alignment policy.  The registry must be valid.
func NewCodec(registry *sc.Registry, policy layout.Policy) (*Codec, error) {
	if err := registry.Validate(); err != nil {
		return nil, err
	}
	//
	layouts, err := layout.DeriveAll(registry, policy)
	//
	if err != nil {
		return nil, err
	}
	//
	codec := &Codec{registry: registry, layouts: layouts, byName: make(map[string]*layout.Layout)}
	//
	for _, l := range layouts {
		codec.byName[l.Name()] = l
		//
		if l.HasOpcode() {
			codec.byOpcode[l.Opcode()] = l
		}
	}
	//
	return codec, nil
}

// Registry returns the registry underlying this codec.
func (p *Codec) Registry() *sc.Registry {
	return p.registry
}

// Layouts returns the layouts of every definition, in registry order.
func (p *Codec) Layouts() []*layout.Layout {
	return p.layouts
}

// Layout returns the layout of the named instruction or record.
func (p *Codec) Layout(name string) (*layout.Layout, bool) {
	l, ok := p.byName[name]
	return l, ok
}

// LayoutOf returns the layout for a given opcode, if any.
func (p *Codec) LayoutOf(opcode uint8) (*layout.Layout, bool) {
	l := p.byOpcode[opcode]
	return l, l != nil
}

// Emit writes the named instruction at the start of cur, returning the
// remainder of cur.  Values are given in field order (excluding the opcode),
// and each is masked to the width of its field.  If cur is too short,
// ErrShortBuffer is returned and cur is left untouched.
func (p *Codec) Emit(cur []byte, name string, values ...uint64) ([]byte, error) {
	l, ok := p.byName[name]
	//
	if !ok {
		return cur, fmt.Errorf("%w: %s", ErrUnknownInstruction, name)
	} else if len(values) != len(l.Fields()) {
		return cur, fmt.Errorf("%w: %s expects %d, got %d", ErrArity, name, len(l.Fields()), len(values))
	}
	//
	size := l.Size()
	//
	if uint(len(cur)) < size {
		return cur, fmt.Errorf("%w: %s needs %d bytes, have %d", ErrShortBuffer, name, size, len(cur))
	}
	// Assemble locally, then store once.
	buf := encode(l, values)
	copy(cur, buf)
	//
	return cur[size:], nil
}

// Encode returns the encoding of the named instruction as a fresh slice.
func (p *Codec) Encode(name string, values ...uint64) ([]byte, error) {
	l, ok := p.byName[name]
	//
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownInstruction, name)
	}
	//
	buf := make([]byte, l.Size())
	//
	if _, err := p.Emit(buf, name, values...); err != nil {
		return nil, err
	}
	//
	return buf, nil
}

// Decode reads the field values of the named instruction (or record) from the
// start of buf, in field order.
func (p *Codec) Decode(name string, buf []byte) ([]uint64, error) {
	l, ok := p.byName[name]
	//
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownInstruction, name)
	} else if uint(len(buf)) < l.Size() {
		return nil, fmt.Errorf("%w: %s needs %d bytes, have %d", ErrTruncated, name, l.Size(), len(buf))
	} else if l.HasOpcode() && buf[0] != l.Opcode() {
		return nil, &OpcodeError{buf[0], ErrOpcodeMismatch}
	}
	//
	return decode(l, buf), nil
}

// Next decodes the instruction at the start of cur, dispatching on its
// opcode.
func (p *Codec) Next(cur []byte) (Instruction, error) {
	if len(cur) == 0 {
		return Instruction{}, fmt.Errorf("%w: empty buffer", ErrTruncated)
	}
	//
	l := p.byOpcode[cur[0]]
	//
	if l == nil {
		return Instruction{}, unknownOpcode(cur[0])
	} else if uint(len(cur)) < l.Size() {
		return Instruction{}, fmt.Errorf("%w: %s needs %d bytes, have %d", ErrTruncated, l.Name(), l.Size(), len(cur))
	}
	//
	return Instruction{l, decode(l, cur)}, nil
}

// NextInstruction returns the cursor immediately following the instruction at
// the start of cur.  The advance always equals the size of the instruction
// emitted for that opcode.
func (p *Codec) NextInstruction(cur []byte) ([]byte, error) {
	if len(cur) == 0 {
		return cur, fmt.Errorf("%w: empty buffer", ErrTruncated)
	}
	//
	l := p.byOpcode[cur[0]]
	//
	if l == nil {
		return cur, unknownOpcode(cur[0])
	} else if uint(len(cur)) < l.Size() {
		return cur, fmt.Errorf("%w: %s needs %d bytes, have %d", ErrTruncated, l.Name(), l.Size(), len(cur))
	}
	//
	return cur[l.Size():], nil
}

// Disassemble writes the textual form of the instruction at the start of cur
// to w.  The text is written in a single call, so nothing is written when the
// opcode is unknown.
func (p *Codec) Disassemble(cur []byte, w io.Writer) error {
	ins, err := p.Next(cur)
	//
	if err != nil {
		return err
	}
	//
	_, err = io.WriteString(w, ins.String())
	//
	return err
}

// DisassembleRecord writes the textual form of the named instruction or record
// at the start of buf to w, again in a single write.
func (p *Codec) DisassembleRecord(name string, buf []byte, w io.Writer) error {
	values, err := p.Decode(name, buf)
	//
	if err != nil {
		return err
	}
	//
	_, err = io.WriteString(w, Instruction{p.byName[name], values}.String())
	//
	return err
}

func encode(l *layout.Layout, values []uint64) []byte {
	var (
		buf    = make([]byte, l.Size())
		writer = bit.NewWriter(buf)
	)
	//
	if l.HasOpcode() {
		writer.WriteUint(layout.OpcodeWidth, uint64(l.Opcode()))
	}
	//
	for i, slot := range l.Fields() {
		writer.WriteUint(slot.Width, values[i]&slot.Mask())
	}
	//
	return buf
}

func decode(l *layout.Layout, buf []byte) []uint64 {
	var (
		fields = l.Fields()
		values = make([]uint64, len(fields))
		reader = bit.NewReader(buf)
	)
	//
	if l.HasOpcode() {
		reader.ReadUint(layout.OpcodeWidth)
	}
	//
	for i, slot := range fields {
		values[i] = reader.ReadUint(slot.Width)
	}
	//
	return values
}
