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

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Validate_00(t *testing.T) {
	checkValid(t, NewRegistry("NS", []Instruction{
		NewInstruction("HALT", 0, true, true),
		NewInstruction("BRANCH", 16, true, true, F("branch_addr", 32)),
	}, nil))
}

func Test_Validate_01(t *testing.T) {
	checkValid(t, NewRegistry("NS", []Instruction{
		NewInstruction("WIDE", 255, true, true, F("a", 64), F("b", 1)),
	}, []Instruction{
		NewRecord("REC", F("x", 7), F("UNUSED", 1)),
	}))
}

func Test_Validate_02(t *testing.T) {
	checkInvalid(t, ErrDuplicateOpcode, NewRegistry("NS", []Instruction{
		NewInstruction("A", 3, true, true),
		NewInstruction("B", 3, true, true),
	}, nil))
}

func Test_Validate_03(t *testing.T) {
	checkInvalid(t, ErrDuplicateInstruction, NewRegistry("NS", []Instruction{
		NewInstruction("A", 1, true, true),
		NewInstruction("A", 2, true, true),
	}, nil))
}

func Test_Validate_04(t *testing.T) {
	checkInvalid(t, ErrDuplicateInstruction, NewRegistry("NS", []Instruction{
		NewInstruction("A", 1, true, true),
	}, []Instruction{
		NewRecord("A"),
	}))
}

func Test_Validate_05(t *testing.T) {
	checkInvalid(t, ErrDuplicateFieldName, NewRegistry("NS", []Instruction{
		NewInstruction("A", 1, true, true, F("x", 3), F("x", 4)),
	}, nil))
}

func Test_Validate_06(t *testing.T) {
	checkInvalid(t, ErrUnsupportedFieldWidth, NewRegistry("NS", []Instruction{
		NewInstruction("A", 1, true, true, F("x", 65)),
	}, nil))
}

func Test_Validate_07(t *testing.T) {
	checkInvalid(t, ErrZeroFieldWidth, NewRegistry("NS", []Instruction{
		NewInstruction("A", 1, true, true, F("x", 0)),
	}, nil))
}

func Test_Validate_08(t *testing.T) {
	checkInvalid(t, ErrInvalidOpcode, NewRegistry("NS", []Instruction{
		{Name: "A", Opcode: 256},
	}, nil))
}

func Test_Validate_09(t *testing.T) {
	checkInvalid(t, ErrOpcodeOnRecord, NewRegistry("NS", nil, []Instruction{
		NewInstruction("R", 1, true, true),
	}))
}

func Test_Validate_10(t *testing.T) {
	checkInvalid(t, ErrMissingOpcode, NewRegistry("NS", []Instruction{
		NewRecord("A"),
	}, nil))
}

func Test_Validate_11(t *testing.T) {
	checkInvalid(t, ErrEmptyName, NewRegistry("NS", []Instruction{
		NewInstruction("", 1, true, true),
	}, nil))
}

func Test_Validate_12(t *testing.T) {
	// every violation is reported, not just the first
	err := NewRegistry("NS", []Instruction{
		NewInstruction("A", 1, true, true, F("x", 0)),
		NewInstruction("B", 1, true, true, F("y", 99)),
	}, nil).Validate()
	//
	require.ErrorIs(t, err, ErrZeroFieldWidth)
	require.ErrorIs(t, err, ErrDuplicateOpcode)
	require.ErrorIs(t, err, ErrUnsupportedFieldWidth)
}

func Test_Registry_Lookup(t *testing.T) {
	t.Parallel()
	//
	reg := NewRegistry("NS", []Instruction{
		NewInstruction("HALT", 0, true, true),
		NewInstruction("COORDS", 115, true, true, F("column", 8), F("row", 8)),
	}, []Instruction{NewRecord("REC", F("addr", 32))})
	//
	ins, ok := reg.LookupOpcode(115)
	require.True(t, ok)
	require.Equal(t, "COORDS", ins.Name)
	require.Equal(t, uint(16), ins.Width())
	//
	_, ok = reg.LookupOpcode(1)
	require.False(t, ok)
	//
	rec, ok := reg.Lookup("REC")
	require.True(t, ok)
	require.False(t, rec.HasOpcode())
	require.Equal(t, uint(3), reg.Len())
	require.Equal(t, []string{"HALT", "COORDS", "REC"}, names(reg.All()))
}

func Test_Registry_Immutable(t *testing.T) {
	t.Parallel()
	//
	instrs := []Instruction{NewInstruction("A", 1, true, true, F("x", 4))}
	reg := NewRegistry("NS", instrs, nil)
	// Neither the caller's slice nor returned copies alias the registry
	instrs[0].Fields[0].Width = 99
	reg.Instructions()[0].Fields[0].Width = 77
	//
	ins, _ := reg.Lookup("A")
	require.Equal(t, uint(4), ins.Fields[0].Width)
}

func Test_Digest_00(t *testing.T) {
	t.Parallel()
	//
	mk := func(width uint) *Registry {
		return NewRegistry("NS", []Instruction{
			NewInstruction("A", 1, true, false, F("x", width)),
		}, nil)
	}
	//
	require.Equal(t, mk(4).Digest(), mk(4).Digest())
	require.NotEqual(t, mk(4).Digest(), mk(5).Digest())
}

func Test_Digest_01(t *testing.T) {
	t.Parallel()
	// Field order is significant
	a := NewRegistry("NS", []Instruction{NewInstruction("A", 1, true, true, F("x", 4), F("y", 4))}, nil)
	b := NewRegistry("NS", []Instruction{NewInstruction("A", 1, true, true, F("y", 4), F("x", 4))}, nil)
	c := NewRegistry("NT", []Instruction{NewInstruction("A", 1, true, true, F("x", 4), F("y", 4))}, nil)
	//
	require.NotEqual(t, a.Digest(), b.Digest())
	require.NotEqual(t, a.Digest(), c.Digest())
}

func checkValid(t *testing.T, reg *Registry) {
	t.Parallel()
	require.NoError(t, reg.Validate())
}

func checkInvalid(t *testing.T, expected error, reg *Registry) {
	t.Parallel()
	//
	err := reg.Validate()
	require.Error(t, err)
	require.True(t, errors.Is(err, expected), "expected %v, got %v", expected, err)
}

func names(defs []Instruction) []string {
	var names []string
	//
	for _, d := range defs {
		names = append(names, d.Name)
	}
	//
	return names
}

func Test_Validate_13(t *testing.T) {
	checkInvalid(t, ErrInvalidName, NewRegistry("NS", []Instruction{
		NewInstruction("A-B", 1, true, true),
	}, nil))
}

func Test_Validate_14(t *testing.T) {
	checkInvalid(t, ErrInvalidName, NewRegistry("NS", []Instruction{
		NewInstruction("A", 1, true, true, F("0x", 1)),
	}, nil))
}

func Test_Validate_15(t *testing.T) {
	checkInvalid(t, ErrEmptyRecord, NewRegistry("NS", []Instruction{
		NewInstruction("A", 1, true, true),
	}, []Instruction{
		NewRecord("R"),
	}))
}
