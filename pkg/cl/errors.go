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

// ErrUnknownOpcode arises when the leading byte of an instruction is not the
// opcode of any known instruction.
var ErrUnknownOpcode = errors.New("unknown opcode")

// ErrUnknownInstruction arises when an instruction (or record) is referred to
// by a name which is not in the registry.
var ErrUnknownInstruction = errors.New("unknown instruction")

// ErrShortBuffer arises when there is not enough room left in a cursor to
// emit an instruction.
var ErrShortBuffer = errors.New("short buffer")

// ErrTruncated arises when a buffer ends part way through an instruction.
var ErrTruncated = errors.New("truncated instruction")

// ErrArity arises when the number of values given for an instruction does not
// match its number of fields.
var ErrArity = errors.New("incorrect number of values")

// ErrOpcodeMismatch arises when decoding a buffer as a given instruction whose
// leading byte is some other opcode.
var ErrOpcodeMismatch = errors.New("opcode mismatch")

// OpcodeError reports an offending opcode, and unwraps to either
// ErrUnknownOpcode or ErrOpcodeMismatch.
type OpcodeError struct {
	Opcode uint8
	err    error
}

func (p *OpcodeError) Error() string {
	return fmt.Sprintf("%s (%d)", p.err.Error(), p.Opcode)
}

// Unwrap returns the underlying sentinel error.
func (p *OpcodeError) Unwrap() error {
	return p.err
}

func unknownOpcode(opcode uint8) error {
	return &OpcodeError{opcode, ErrUnknownOpcode}
}
