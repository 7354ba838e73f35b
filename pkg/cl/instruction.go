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
	"strconv"
	"strings"

	"github.com/consensys/go-clgen/pkg/layout"
)

// Instruction is a decoded instruction (or record), pairing a layout with the
// values of its fields.
type Instruction struct {
	Layout *layout.Layout
	Values []uint64
}

// Name returns the name of the decoded instruction.
func (p Instruction) Name() string {
	return p.Layout.Name()
}

// Size returns the encoded size of the decoded instruction in bytes.
func (p Instruction) Size() uint {
	return p.Layout.Size()
}

// Field returns the value of the named field, or false if there is no such
// field.
func (p Instruction) Field(name string) (uint64, bool) {
	for i, slot := range p.Layout.Fields() {
		if slot.Name == name {
			return p.Values[i], true
		}
	}
	//
	return 0, false
}

// String returns the disassembly of this instruction: its name on the first
// line, followed by one tab-indented line per field giving the field value in
// lowercase hexadecimal.
func (p Instruction) String() string {
	var builder strings.Builder
	//
	builder.WriteString(p.Name())
	builder.WriteString("\n")
	//
	for i, slot := range p.Layout.Fields() {
		builder.WriteString("\t")
		builder.WriteString(slot.Name)
		builder.WriteString(": ")
		builder.WriteString(strconv.FormatUint(p.Values[i], 16))
		builder.WriteString("\n")
	}
	//
	return builder.String()
}
