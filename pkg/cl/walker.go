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
package cl

import (
	"errors"
	"fmt"
	"io"

	"github.com/consensys/go-clgen/pkg/v3d"
	log "github.com/sirupsen/logrus"
)

// MaxListSize bounds the number of bytes disassembled from a control list
// which has no end address.  A corrupt list may otherwise never reach a
// terminating instruction.
const MaxListSize = 512 * 1024

// ErrRunaway arises when a control list exceeds MaxListSize.
var ErrRunaway = errors.New("runaway control list")

type bufferKind uint8

const (
	controlList bufferKind = iota
	shaderRecord
)

func (p bufferKind) String() string {
	if p == shaderRecord {
		return "shader record"
	}
	//
	return "control list"
}

// buffer is a region of the image awaiting disassembly.  For control lists an
// end of zero indicates that the list runs until a terminating instruction.
// For shader records, end holds the number of attribute array records.
type buffer struct {
	kind  bufferKind
	start uint32
	end   uint32
}

// Walker disassembles control lists within a memory image, following the
// references between them.  Sub-lists, branch targets and shader records
// reached from a list are queued and disassembled in turn, each at most once.
type Walker struct {
	codec   *Codec
	image   Image
	out     io.Writer
	queue   []buffer
	visited map[bufferKind]map[uint32]bool
}

// NewWalker constructs a walker over a given image, writing disassembly to out.
// The codec must be for the V3D instruction set.
func NewWalker(codec *Codec, image Image, out io.Writer) *Walker {
	visited := map[bufferKind]map[uint32]bool{
		controlList:  make(map[uint32]bool),
		shaderRecord: make(map[uint32]bool),
	}
	//
	return &Walker{codec, image, out, nil, visited}
}

// AddList queues the control list starting at a given address.  The list ends
// before the end address, or at its first HALT, BRANCH or RETURN when end is
// zero.
func (p *Walker) AddList(start uint32, end uint32) {
	p.add(buffer{controlList, start, end})
}

func (p *Walker) add(buf buffer) {
	if p.visited[buf.kind][buf.start] {
		log.Debugf("skipping %s at %08x (already visited)", buf.kind, buf.start)
		return
	}
	//
	p.visited[buf.kind][buf.start] = true
	p.queue = append(p.queue, buf)
}

// Run disassembles every queued buffer, including those discovered along the
// way.  Failing to disassemble one buffer does not prevent the others from
// being disassembled, and all such failures are returned together.  Failures
// writing to the output abort immediately.
func (p *Walker) Run() error {
	var errs []error
	//
	for len(p.queue) > 0 {
		var (
			buf = p.queue[0]
			err error
		)
		//
		p.queue = p.queue[1:]
		//
		switch buf.kind {
		case controlList:
			err = p.walkList(buf.start, buf.end)
		case shaderRecord:
			err = p.walkShaderRecord(buf.start, uint(buf.end))
		}
		//
		var werr *writeError
		//
		if errors.As(err, &werr) {
			return werr.err
		} else if err != nil {
			log.Debugf("failed disassembling %s at %08x: %s", buf.kind, buf.start, err)
			errs = append(errs, fmt.Errorf("%s at %08x: %w", buf.kind, buf.start, err))
		}
	}
	//
	return errors.Join(errs...)
}

func (p *Walker) walkList(start uint32, end uint32) error {
	if err := p.printf("CL buffer addr: %08x\n------------------------\n", start); err != nil {
		return err
	}
	//
	data, err := p.image.At(start)
	//
	if err != nil {
		return err
	}
	//
	for offset := uint(0); end == 0 || uint64(start)+uint64(offset) < uint64(end); {
		var (
			addr = start + uint32(offset)
			size uint
			text string
		)
		//
		if offset >= MaxListSize {
			return ErrRunaway
		} else if offset >= uint(len(data)) {
			return fmt.Errorf("%w: list runs past end of image", ErrTruncated)
		}
		//
		ins, err := p.codec.Next(data[offset:])
		//
		switch {
		case errors.Is(err, ErrUnknownOpcode):
			text, size = fmt.Sprintf("INVALID OPCODE (%d)\n", data[offset]), 1
		case err != nil:
			return err
		default:
			text, size = ins.String(), ins.Size()
		}
		//
		if err := p.printf("%08x: %s", addr, text); err != nil {
			return err
		}
		//
		if err == nil {
			p.addReferences(ins, end)
			//
			if isListEnd(ins) {
				break
			}
		}
		//
		offset += size
	}
	//
	return p.printf("\n")
}

func (p *Walker) walkShaderRecord(start uint32, nattrs uint) error {
	if err := p.printf("GL Shader Record Addr: %08x\n----------------------------\n", start); err != nil {
		return err
	}
	//
	shader, ok1 := p.codec.Layout(v3d.SHADER_RECORD)
	attr, ok2 := p.codec.Layout(v3d.ATTR_ARRAY_RECORD)
	//
	if !ok1 || !ok2 {
		return fmt.Errorf("%w: shader records", ErrUnknownInstruction)
	}
	//
	data, err := p.image.At(start)
	//
	if err != nil {
		return err
	} else if size := shader.Size() + nattrs*attr.Size(); uint(len(data)) < size {
		return fmt.Errorf("%w: shader record needs %d bytes, have %d", ErrTruncated, size, len(data))
	}
	//
	if err := p.printRecord(start, v3d.SHADER_RECORD, data); err != nil {
		return err
	}
	//
	for i, offset := uint(0), shader.Size(); i < nattrs; i, offset = i+1, offset+attr.Size() {
		if err := p.printRecord(start+uint32(offset), v3d.ATTR_ARRAY_RECORD, data[offset:]); err != nil {
			return err
		}
	}
	//
	return p.printf("\n")
}

func (p *Walker) printRecord(addr uint32, name string, data []byte) error {
	values, err := p.codec.Decode(name, data)
	//
	if err != nil {
		return err
	}
	//
	l, _ := p.codec.Layout(name)
	//
	return p.printf("%08x: %s", addr, Instruction{l, values})
}

// Queue any buffers referenced by a given instruction.  A BRANCH continues the
// current list elsewhere (there is no return), so the target inherits the end
// address of the current list.
func (p *Walker) addReferences(ins Instruction, end uint32) {
	switch ins.Layout.Opcode() {
	case v3d.BRANCH_SUB:
		addr, _ := ins.Field("branch_addr")
		p.AddList(uint32(addr), 0)
	case v3d.BRANCH:
		addr, _ := ins.Field("branch_addr")
		p.AddList(uint32(addr), end)
	case v3d.GL_SHADER:
		var (
			addr, _     = ins.Field("shader_record_addr")
			nattrs, _   = ins.Field("num_attr_arrays")
			extended, _ = ins.Field("extended_record")
		)
		//
		if extended != 0 {
			log.Debugf("skipping extended shader record at %08x", addr<<4)
			return
		}
		//
		p.add(buffer{shaderRecord, uint32(addr << 4), uint32(nattrs)})
	}
}

func isListEnd(ins Instruction) bool {
	switch ins.Layout.Opcode() {
	case v3d.HALT, v3d.BRANCH, v3d.RETURN:
		return true
	default:
		return false
	}
}

// writeError distinguishes failures of the output sink, which abort the walk,
// from failures of individual buffers, which do not.
type writeError struct {
	err error
}

func (p *writeError) Error() string {
	return p.err.Error()
}

func (p *Walker) printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(p.out, format, args...); err != nil {
		return &writeError{err}
	}
	//
	return nil
}
