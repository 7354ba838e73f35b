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

// Reader provides a mechanism for reading consecutive fields from a given array
// of bytes, where the least significant bits are read first.  For example,
// consider sequence of bytes [0x9f,0x05] can be views as the following bit
// sequence:
//
// | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 || 8 | 9 | A | B | C | D | E | F |
// +===+===+===+===+===+===+===+===++===+===+===+===+===+===+===+===+
// | 1 | 1 | 1 | 1 | 1 | 0 | 0 | 1 || 1 | 0 | 1 | 0 | 0 | 0 | 0 | 0 |
// |   |   |   |   |
// | 1 | 1 | 1 | 1 | 1 | 0 | 0 |
//
// The above illustrates the outcome from reading 7 bits, which yields the value
// 0b0011111.  A subsequent read of 4 bits would then yield 0b0011.
type Reader struct {
	bitoffset uint
	bytes     []byte
}

// NewReader constructs a new bit reader.
func NewReader(bytes []byte) Reader {
	return Reader{0, bytes}
}

// Offset returns the bit offset of the next read.
func (p *Reader) Offset() uint {
	return p.bitoffset
}

// Remaining returns the remaining number of bits which can be read.
func (p *Reader) Remaining() uint {
	var n = uint(len(p.bytes) * 8)
	//
	return n - p.bitoffset
}

// ReadUint reads the next n bits as an unsigned value and advances past them.
func (p *Reader) ReadUint(nbits uint) uint64 {
	val := Uint(p.bytes, p.bitoffset, nbits)
	//
	p.bitoffset += nbits
	//
	return val
}

// Writer is the counterpart of Reader, packing consecutive fields into an array
// of bytes least significant bits first.
type Writer struct {
	bitoffset uint
	bytes     []byte
}

// NewWriter constructs a new bit writer over the given bytes.
func NewWriter(bytes []byte) Writer {
	return Writer{0, bytes}
}

// Offset returns the bit offset of the next write.
func (p *Writer) Offset() uint {
	return p.bitoffset
}

// WriteUint writes the n least significant bits of val and advances past them.
func (p *Writer) WriteUint(nbits uint, val uint64) {
	PutUint(p.bytes, p.bitoffset, nbits, val)
	//
	p.bitoffset += nbits
}
