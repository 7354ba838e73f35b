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

import "encoding/binary"

// PutUint writes the bitwidth least significant bits of value into dst,
// starting at the given bit offset.  Bits of value above bitwidth are
// discarded, and bits of dst outside the written range are preserved.  The
// bitwidth must not exceed MaxWidth.
func PutUint(dst []byte, offset uint, bitwidth uint, value uint64) {
	var src [8]byte
	//
	binary.LittleEndian.PutUint64(src[:], value)
	LittleEndianCopy(src[:], 0, dst, offset, bitwidth)
}

// Uint reads a bitwidth-bit unsigned value out of src, starting at the given
// bit offset.  No sign extension is performed.  The bitwidth must not exceed
// MaxWidth.
func Uint(src []byte, offset uint, bitwidth uint) uint64 {
	var dst [8]byte
	//
	LittleEndianCopy(src, offset, dst[:], 0, bitwidth)
	//
	return binary.LittleEndian.Uint64(dst[:])
}
