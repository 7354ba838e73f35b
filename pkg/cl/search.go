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

import "github.com/consensys/go-clgen/pkg/v3d"

// binningSignature is the byte sequence which begins a typical binning control
// list: a STATE_TILE_BINNING_MODE (whose final byte configures a block size of
// 2 with automatic tile state initialisation), followed by START_TILE_BINNING
// and a PRIMITIVE_LIST_FORMAT for 16-bit indexed triangles.  Each entry gives
// the expected byte, and the number of bytes to skip after matching it.
var binningSignature = []struct {
	value uint8
	skip  uint
}{
	{v3d.STATE_TILE_BINNING_MODE, 14},
	{2<<5 | 1<<2, 0},
	{v3d.START_TILE_BINNING, 0},
	{v3d.PRIMITIVE_LIST_FORMAT, 0},
	{2 | 1<<4, 0},
}

// SearchBinningLists scans an image for the start of binning control lists,
// returning the address of each match in ascending order.  After a partial
// match fails, scanning resumes from the byte following the start of that
// partial match.
func SearchBinningLists(image Image) []uint32 {
	var (
		found []uint32
		data  = image.Bytes
		begin = -1
		index = 0
	)
	//
	for i := 0; i < len(data); i++ {
		if data[i] == binningSignature[index].value {
			if begin < 0 {
				begin = i
			}
			//
			i += int(binningSignature[index].skip)
			index++
		} else if begin >= 0 {
			i = begin
			begin, index = -1, 0
		}
		//
		if index == len(binningSignature) {
			found = append(found, image.Base+uint32(begin))
			begin, index = -1, 0
		}
	}
	//
	return found
}
