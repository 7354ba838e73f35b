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
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/consensys/go-clgen/pkg/layout"
	"github.com/consensys/go-clgen/pkg/v3d"
	"github.com/stretchr/testify/require"
)

func Test_Codec_Example_00(t *testing.T) {
	t.Parallel()
	//
	var (
		codec = newCodec(t)
		buf   = make([]byte, 8)
		out   bytes.Buffer
	)
	//
	rest, err := codec.Emit(buf, "STATE_TILE_COORDS", 3, 200)
	require.NoError(t, err)
	require.Len(t, rest, 5)
	require.Equal(t, []byte{115, 3, 200}, buf[:3])
	//
	require.NoError(t, codec.Disassemble(buf, &out))
	require.Equal(t, "STATE_TILE_COORDS\n\tcolumn: 3\n\trow: c8\n", out.String())
	//
	next, err := codec.NextInstruction(buf)
	require.NoError(t, err)
	require.Len(t, next, 5)
}

func Test_Codec_Example_01(t *testing.T) {
	// Flags fill the low nibble, the address the remaining 28 bits
	checkEncoding(t, "STORE_FULL", []uint64{1, 0, 1, 0, 0x123_4567}, []byte{0x1a, 0x75, 0x56, 0x34, 0x12})
}

func Test_Codec_Example_02(t *testing.T) {
	checkEncoding(t, "BRANCH", []uint64{0xdeadbeef}, []byte{0x10, 0xef, 0xbe, 0xad, 0xde})
}

func Test_Codec_Example_03(t *testing.T) {
	checkEncoding(t, "HALT", nil, []byte{0x00})
}

func Test_Codec_Example_04(t *testing.T) {
	// 44 field bits, so the final nibble is padding
	checkEncoding(t, "LOAD_GENERAL", []uint64{7, 1, 3, 0, 2, 0, 1, 0, 1, 1, 0xfff_ffff},
		[]byte{0x1d, 0x3f, 0xd2, 0xff, 0xff, 0xff, 0x0f})
}

func Test_Codec_Example_05(t *testing.T) {
	// Records have no opcode
	checkEncoding(t, v3d.ATTR_ARRAY_RECORD, []uint64{0x04030201, 5, 6, 7, 8}, []byte{1, 2, 3, 4, 5, 6, 7, 8})
}

func Test_Codec_Masking(t *testing.T) {
	t.Parallel()
	//
	codec := newCodec(t)
	buf, err := codec.Encode("STORE_FULL", 3, 0, 0, 0, 0xffff_ffff)
	require.NoError(t, err)
	//
	values, err := codec.Decode("STORE_FULL", buf)
	require.NoError(t, err)
	require.Equal(t, []uint64{1, 0, 0, 0, 0xfff_ffff}, values)
}

func Test_Codec_RoundTrip(t *testing.T) {
	t.Parallel()
	//
	var (
		codec = newCodec(t)
		rng   = rand.New(rand.NewPCG(1, 2))
	)
	//
	for _, l := range codec.Layouts() {
		for i := 0; i < 32; i++ {
			var (
				values = make([]uint64, len(l.Fields()))
				masked = make([]uint64, len(l.Fields()))
			)
			//
			for j, slot := range l.Fields() {
				values[j] = rng.Uint64()
				masked[j] = values[j] & slot.Mask()
			}
			//
			buf, err := codec.Encode(l.Name(), values...)
			require.NoError(t, err)
			require.Len(t, buf, int(l.Size()))
			//
			decoded, err := codec.Decode(l.Name(), buf)
			require.NoError(t, err)
			require.Equal(t, masked, decoded, l.Name())
		}
	}
}

func Test_Codec_LengthConsistency(t *testing.T) {
	t.Parallel()
	//
	codec := newCodec(t)
	//
	for _, l := range codec.Layouts() {
		if !l.HasOpcode() {
			continue
		}
		//
		var (
			buf    = make([]byte, 64)
			values = make([]uint64, len(l.Fields()))
		)
		//
		rest, err := codec.Emit(buf, l.Name(), values...)
		require.NoError(t, err)
		//
		next, err := codec.NextInstruction(buf)
		require.NoError(t, err)
		require.Equal(t, len(buf)-len(rest), len(buf)-len(next), l.Name())
		require.Equal(t, int(l.Size()), len(buf)-len(next), l.Name())
	}
}

func Test_Codec_Dispatch(t *testing.T) {
	t.Parallel()
	//
	var (
		codec = newCodec(t)
		reg   = v3d.Registry()
	)
	//
	for opcode := 0; opcode <= 255; opcode++ {
		var (
			buf    = make([]byte, 64)
			out    bytes.Buffer
			_, ok  = reg.LookupOpcode(uint8(opcode))
			errDis = codec.Disassemble(append([]byte{uint8(opcode)}, buf...), &out)
		)
		//
		_, errNext := codec.NextInstruction(append([]byte{uint8(opcode)}, buf...))
		//
		if ok {
			require.NoError(t, errDis)
			require.NoError(t, errNext)
			require.NotEmpty(t, out.String())
		} else {
			require.ErrorIs(t, errDis, ErrUnknownOpcode)
			require.ErrorIs(t, errNext, ErrUnknownOpcode)
			require.Empty(t, out.String())
		}
	}
}

func Test_Codec_UnknownOpcode(t *testing.T) {
	t.Parallel()
	//
	var (
		codec = newCodec(t)
		out   bytes.Buffer
		oerr  *OpcodeError
	)
	//
	err := codec.Disassemble([]byte{255, 0, 0}, &out)
	require.ErrorIs(t, err, ErrUnknownOpcode)
	require.True(t, errors.As(err, &oerr))
	require.Equal(t, uint8(255), oerr.Opcode)
	require.Zero(t, out.Len())
}

func Test_Codec_ShortBuffer(t *testing.T) {
	t.Parallel()
	//
	var (
		codec = newCodec(t)
		buf   = []byte{0xaa, 0xbb}
	)
	//
	rest, err := codec.Emit(buf, "STATE_TILE_COORDS", 1, 2)
	require.ErrorIs(t, err, ErrShortBuffer)
	require.Equal(t, []byte{0xaa, 0xbb}, buf)
	require.Equal(t, buf, rest)
	//
	_, err = codec.NextInstruction([]byte{v3d.STATE_TILE_COORDS, 1})
	require.ErrorIs(t, err, ErrTruncated)
	//
	_, err = codec.NextInstruction(nil)
	require.ErrorIs(t, err, ErrTruncated)
}

func Test_Codec_BadArguments(t *testing.T) {
	t.Parallel()
	//
	codec := newCodec(t)
	//
	_, err := codec.Encode("STATE_TILE_COORDS", 1)
	require.ErrorIs(t, err, ErrArity)
	//
	_, err = codec.Encode("NO_SUCH_THING")
	require.ErrorIs(t, err, ErrUnknownInstruction)
	//
	_, err = codec.Decode("BRANCH", []byte{v3d.BRANCH_SUB, 0, 0, 0, 0})
	require.ErrorIs(t, err, ErrOpcodeMismatch)
}

func Test_Codec_SingleWrite(t *testing.T) {
	t.Parallel()
	//
	var (
		codec = newCodec(t)
		sink  = &recordingWriter{}
		buf   = make([]byte, 16)
	)
	//
	_, err := codec.Emit(buf, "STATE_CLIP_WINDOW", 1, 2, 3, 4)
	require.NoError(t, err)
	require.NoError(t, codec.Disassemble(buf, sink))
	require.Equal(t, 1, sink.writes)
	require.Equal(t, "STATE_CLIP_WINDOW\n\tleft: 1\n\tbottom: 2\n\twidth: 3\n\theight: 4\n", sink.String())
	// A failing sink yields an error
	sink.fail = true
	require.Error(t, codec.Disassemble(buf, sink))
	require.Equal(t, 1, sink.writes)
	// Unknown opcodes write nothing
	sink.fail = false
	buf[0] = 255
	require.ErrorIs(t, codec.Disassemble(buf, sink), ErrUnknownOpcode)
	require.Equal(t, 1, sink.writes)
}

func Test_Codec_Record(t *testing.T) {
	t.Parallel()
	//
	var (
		codec = newCodec(t)
		out   bytes.Buffer
	)
	//
	buf, err := codec.Encode(v3d.ATTR_ARRAY_RECORD, 0xabc, 1, 2, 3, 0xff)
	require.NoError(t, err)
	require.NoError(t, codec.DisassembleRecord(v3d.ATTR_ARRAY_RECORD, buf, &out))
	require.Equal(t, "ATTR_ARRAY_RECORD\n\tarray_base_addr: abc\n\tarray_size_bytes: 1\n\tarray_stride: 2\n"+
		"\tarray_vs_vpm_offset: 3\n\tarray_cs_vpm_offset: ff\n", out.String())
}

func Test_Codec_Reject(t *testing.T) {
	t.Parallel()
	// LOAD_GENERAL is not byte aligned
	_, err := NewCodec(v3d.Registry(), layout.RejectUnaligned)
	require.ErrorIs(t, err, layout.ErrUnalignedLayout)
}

// ============================================================================
// Helpers
// ============================================================================

func newCodec(t *testing.T) *Codec {
	codec, err := NewCodec(v3d.Registry(), layout.PadTrailingBits)
	require.NoError(t, err)
	//
	return codec
}

func checkEncoding(t *testing.T, name string, values []uint64, expected []byte) {
	t.Parallel()
	//
	codec := newCodec(t)
	buf, err := codec.Encode(name, values...)
	require.NoError(t, err)
	require.Equal(t, expected, buf)
	//
	decoded, err := codec.Decode(name, buf)
	require.NoError(t, err)
	//
	if len(values) == 0 {
		require.Empty(t, decoded)
	} else {
		require.Equal(t, values, decoded)
	}
}

// recordingWriter counts calls to Write.  It has no WriteString method, so
// io.WriteString goes through Write.
type recordingWriter struct {
	out    bytes.Buffer
	writes int
	fail   bool
}

func (p *recordingWriter) Write(data []byte) (int, error) {
	if p.fail {
		return 0, errors.New("sink closed")
	}
	//
	p.writes++
	//
	return p.out.Write(data)
}

func (p *recordingWriter) String() string {
	return p.out.String()
}
