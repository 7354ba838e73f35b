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
package bit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_PutUint_00(t *testing.T) {
	checkPutUint(t, 2, 0, 8, 0xab, []byte{0xab, 0x00})
}
func Test_PutUint_01(t *testing.T) {
	checkPutUint(t, 2, 4, 8, 0xab, []byte{0xb0, 0x0a})
}
func Test_PutUint_02(t *testing.T) {
	// Bits above the width are discarded
	checkPutUint(t, 1, 0, 4, 0xff, []byte{0x0f})
}
func Test_PutUint_03(t *testing.T) {
	checkPutUint(t, 4, 4, 28, 0x0123_4567, []byte{0x70, 0x56, 0x34, 0x12})
}
func Test_PutUint_04(t *testing.T) {
	checkPutUint(t, 3, 1, 1, 1, []byte{0x02, 0x00, 0x00})
}

func Test_Uint_RoundTrip(t *testing.T) {
	t.Parallel()
	//
	for offset := uint(0); offset < 8; offset++ {
		for _, width := range []uint{1, 3, 8, 13, 16, 24, 29, 32, 48, 64} {
			buf := make([]byte, BytesRequiredFor(offset+width))
			val := uint64(0xdead_beef_cafe_babe) & Mask(width)
			//
			PutUint(buf, offset, width, val)
			require.Equal(t, val, Uint(buf, offset, width), "offset %d, width %d", offset, width)
		}
	}
}

func Test_Mask(t *testing.T) {
	t.Parallel()
	require.Equal(t, uint64(0), Mask(0))
	require.Equal(t, uint64(1), Mask(1))
	require.Equal(t, uint64(0xfff_ffff), Mask(28))
	require.Equal(t, ^uint64(0), Mask(64))
}

func Test_ReaderWriter(t *testing.T) {
	t.Parallel()
	//
	var (
		buf    = make([]byte, 5)
		writer = NewWriter(buf)
	)
	// buffer:3, unused:1, frame_addr:28, flag:1
	writer.WriteUint(3, 5)
	writer.WriteUint(1, 0)
	writer.WriteUint(28, 0xabc_def1)
	writer.WriteUint(1, 1)
	require.Equal(t, uint(33), writer.Offset())
	//
	reader := NewReader(buf)
	require.Equal(t, uint64(5), reader.ReadUint(3))
	require.Equal(t, uint64(0), reader.ReadUint(1))
	require.Equal(t, uint64(0xabc_def1), reader.ReadUint(28))
	require.Equal(t, uint64(1), reader.ReadUint(1))
	require.Equal(t, uint(7), reader.Remaining())
}

func checkPutUint(t *testing.T, n uint, offset uint, width uint, value uint64, expected []byte) {
	t.Parallel()
	//
	buf := make([]byte, n)
	PutUint(buf, offset, width, value)
	require.Equal(t, expected, buf)
	require.Equal(t, value&Mask(width), Uint(buf, offset, width))
}
