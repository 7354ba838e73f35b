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
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/consensys/go-clgen/pkg/v3d"
	"github.com/stretchr/testify/require"
)

const base = 0x1000

func Test_Walker_00(t *testing.T) {
	t.Parallel()
	//
	codec := newCodec(t)
	image := newImage(0x300)
	//
	at(t, codec, image, 0x000,
		op("STATE_TILE_COORDS", 1, 2),
		op("BRANCH_SUB", base+0x100),
		op("GL_SHADER", 1, 0, (base+0x200)>>4),
		op("HALT"),
		op("NOP"))
	at(t, codec, image, 0x100, op("NOP"), op("RETURN"))
	at(t, codec, image, 0x200,
		op(v3d.SHADER_RECORD, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0),
		op(v3d.ATTR_ARRAY_RECORD, 0xabc, 0, 0, 0, 0))
	//
	out := walk(t, codec, image, base, 0)
	//
	checkInOrder(t, out,
		"CL buffer addr: 00001000\n------------------------\n",
		"00001000: STATE_TILE_COORDS\n\tcolumn: 1\n\trow: 2\n",
		"00001003: BRANCH_SUB\n\tbranch_addr: 1100\n",
		"00001008: GL_SHADER\n\tnum_attr_arrays: 1\n\textended_record: 0\n\tshader_record_addr: 120\n",
		"0000100d: HALT\n",
		"CL buffer addr: 00001100\n",
		"00001100: NOP\n",
		"00001101: RETURN\n",
		"GL Shader Record Addr: 00001200\n",
		"00001200: SHADER_RECORD\n\tflags: 0\n\tfs_num_uniforms: 1\n",
		"00001224: ATTR_ARRAY_RECORD\n\tarray_base_addr: abc\n")
	// Nothing after HALT
	require.NotContains(t, out, "0000100e")
}

func Test_Walker_01(t *testing.T) {
	t.Parallel()
	// Unknown opcodes are reported and skipped one byte at a time
	codec := newCodec(t)
	image := Image{base, []byte{0xff, 0xfe, v3d.HALT}}
	out := walk(t, codec, image, base, 0)
	//
	checkInOrder(t, out, "00001000: INVALID OPCODE (255)\n", "00001001: INVALID OPCODE (254)\n", "00001002: HALT\n")
}

func Test_Walker_02(t *testing.T) {
	t.Parallel()
	// Lists stop at their end address
	codec := newCodec(t)
	image := newImage(0x10)
	at(t, codec, image, 0, op("NOP"), op("NOP"), op("NOP"), op("HALT"))
	//
	out := walk(t, codec, image, base, base+2)
	require.Contains(t, out, "00001001: NOP\n")
	require.NotContains(t, out, "00001002")
}

func Test_Walker_03(t *testing.T) {
	t.Parallel()
	// A BRANCH target inherits the end address
	codec := newCodec(t)
	image := newImage(0x20)
	at(t, codec, image, 0x0, op("BRANCH", base+0x10))
	at(t, codec, image, 0x10, op("NOP"), op("NOP"), op("NOP"), op("HALT"))
	//
	out := walk(t, codec, image, base, base+0x12)
	checkInOrder(t, out, "00001000: BRANCH\n", "CL buffer addr: 00001010", "00001011: NOP\n")
	require.NotContains(t, out, "00001012")
}

func Test_Walker_04(t *testing.T) {
	t.Parallel()
	// Lists are visited once, even when they branch to themselves
	codec := newCodec(t)
	image := newImage(0x10)
	at(t, codec, image, 0x0, op("BRANCH_SUB", base), op("HALT"))
	//
	out := walk(t, codec, image, base, 0)
	require.Equal(t, 1, strings.Count(out, "CL buffer addr"))
}

func Test_Walker_05(t *testing.T) {
	t.Parallel()
	// References outside the image are reported, without stopping the walk
	var (
		codec = newCodec(t)
		image = newImage(0x10)
		out   bytes.Buffer
	)
	// Two BRANCH_SUBs and a HALT occupy bytes 0x0 to 0xa
	at(t, codec, image, 0x0, op("BRANCH_SUB", 0xdead0000), op("BRANCH_SUB", base+0xc), op("HALT"))
	at(t, codec, image, 0xc, op("RETURN"))
	//
	walker := NewWalker(codec, image, &out)
	walker.AddList(base, 0)
	err := walker.Run()
	//
	require.ErrorIs(t, err, ErrOutOfImage)
	require.Contains(t, out.String(), "\tbranch_addr: 100c\n")
	require.Contains(t, out.String(), "0000100c: RETURN\n")
}

func Test_Walker_06(t *testing.T) {
	t.Parallel()
	// Lists without terminators are cut off
	var (
		codec  = newCodec(t)
		image  = Image{0, bytes.Repeat([]byte{1}, MaxListSize+16)}
		walker = NewWalker(codec, image, io.Discard)
	)
	//
	walker.AddList(0, 0)
	require.ErrorIs(t, walker.Run(), ErrRunaway)
}

func Test_Walker_07(t *testing.T) {
	t.Parallel()
	// Running off the end of the image
	var (
		codec  = newCodec(t)
		image  = Image{base, []byte{v3d.STATE_TILE_COORDS, 1}}
		walker = NewWalker(codec, image, io.Discard)
	)
	//
	walker.AddList(base, 0)
	require.ErrorIs(t, walker.Run(), ErrTruncated)
}

func Test_Walker_08(t *testing.T) {
	t.Parallel()
	// Sink failures abort the walk
	var (
		codec  = newCodec(t)
		image  = Image{base, []byte{v3d.HALT}}
		walker = NewWalker(codec, image, &recordingWriter{fail: true})
	)
	//
	walker.AddList(base, 0)
	require.ErrorContains(t, walker.Run(), "sink closed")
}

func Test_Search_00(t *testing.T) {
	t.Parallel()
	//
	var (
		codec = newCodec(t)
		image = newImage(0x80)
	)
	// A near miss which diverges at START_TILE_BINNING
	at(t, codec, image, 0x03, op("STATE_TILE_BINNING_MODE", 0, 0, 0, 0, 0, 0, 0, 1, 0, 2, 0), op("NOP"))
	at(t, codec, image, 0x40, binningList()...)
	//
	require.Equal(t, []uint32{base + 0x40}, SearchBinningLists(image))
}

func Test_Search_01(t *testing.T) {
	t.Parallel()
	//
	var (
		codec = newCodec(t)
		image = newImage(0x80)
	)
	//
	at(t, codec, image, 0x01, binningList()...)
	at(t, codec, image, 0x30, binningList()...)
	//
	require.Equal(t, []uint32{base + 0x01, base + 0x30}, SearchBinningLists(image))
	require.Empty(t, SearchBinningLists(newImage(0x40)))
}

// ============================================================================
// Helpers
// ============================================================================

type instr struct {
	name   string
	values []uint64
}

func op(name string, values ...uint64) instr {
	return instr{name, values}
}

func newImage(size uint) Image {
	return Image{base, make([]byte, size)}
}

func binningList() []instr {
	return []instr{
		op("STATE_TILE_BINNING_MODE", 0x100, 0x200, 0x300, 4, 4, 0, 0, 1, 0, 2, 0),
		op("START_TILE_BINNING"),
		op("PRIMITIVE_LIST_FORMAT", 2, 1),
	}
}

// Assemble instructions into an image starting at a given offset.
func at(t *testing.T, codec *Codec, image Image, offset uint, instrs ...instr) {
	var (
		cur = image.Bytes[offset:]
		err error
	)
	//
	for _, ins := range instrs {
		cur, err = codec.Emit(cur, ins.name, ins.values...)
		require.NoError(t, err)
	}
}

func walk(t *testing.T, codec *Codec, image Image, start uint32, end uint32) string {
	var (
		out    bytes.Buffer
		walker = NewWalker(codec, image, &out)
	)
	//
	walker.AddList(start, end)
	require.NoError(t, walker.Run())
	//
	return out.String()
}

func checkInOrder(t *testing.T, out string, fragments ...string) {
	var index int
	//
	for _, f := range fragments {
		i := strings.Index(out[index:], f)
		require.GreaterOrEqual(t, i, 0, "missing %q in:\n%s", f, out)
		//
		index += i + len(f)
	}
}
