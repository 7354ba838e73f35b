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
package schema

import "errors"

// ErrDuplicateOpcode arises when two real instructions share an opcode.
var ErrDuplicateOpcode = errors.New("duplicate opcode")

// ErrDuplicateInstruction arises when two definitions share a name.
var ErrDuplicateInstruction = errors.New("duplicate instruction")

// ErrDuplicateFieldName arises when two fields of one instruction share a name.
var ErrDuplicateFieldName = errors.New("duplicate field name")

// ErrUnsupportedFieldWidth arises for fields wider than 64 bits.
var ErrUnsupportedFieldWidth = errors.New("unsupported field width")

// ErrZeroFieldWidth arises for fields declared with no bits.
var ErrZeroFieldWidth = errors.New("zero field width")

// ErrInvalidOpcode arises for opcodes which do not fit in the opcode byte.
var ErrInvalidOpcode = errors.New("invalid opcode")

// ErrOpcodeOnRecord arises when a record is declared with an opcode.
var ErrOpcodeOnRecord = errors.New("record declares an opcode")

// ErrMissingOpcode arises when a real instruction lacks an opcode.
var ErrMissingOpcode = errors.New("instruction lacks an opcode")

// ErrEmptyName arises for nameless instructions or fields.
var ErrEmptyName = errors.New("empty name")

// ErrInvalidName arises for names which are not plain identifiers (a letter or
// underscore followed by letters, digits or underscores).
var ErrInvalidName = errors.New("invalid name")

// ErrEmptyRecord arises when a record declares no fields, and would therefore
// occupy no bytes.
var ErrEmptyRecord = errors.New("record has no fields")
