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
)

// ErrOutOfImage arises for addresses which do not lie within a memory image.
var ErrOutOfImage = errors.New("address outside image")

// Image is a snapshot of (part of) the physical memory seen by the V3D, where
// Bytes[0] holds the byte at address Base.
type Image struct {
	Base  uint32
	Bytes []byte
}

// Contains determines whether the given address lies within this image.
func (p Image) Contains(addr uint32) bool {
	return addr >= p.Base && uint64(addr-p.Base) < uint64(len(p.Bytes))
}

// End returns the first address after this image.
func (p Image) End() uint64 {
	return uint64(p.Base) + uint64(len(p.Bytes))
}

// At returns the contents of the image from the given address onwards.
func (p Image) At(addr uint32) ([]byte, error) {
	if !p.Contains(addr) {
		return nil, fmt.Errorf("%w: %08x not in [%08x,%08x)", ErrOutOfImage, addr, p.Base, p.End())
	}
	//
	return p.Bytes[addr-p.Base:], nil
}
