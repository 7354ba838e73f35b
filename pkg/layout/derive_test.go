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
package layout

import (
	"testing"

	sc "github.com/consensys/go-clgen/pkg/schema"
	"github.com/stretchr/testify/require"
)

func Test_StorageWidth(t *testing.T) {
	t.Parallel()
	//
	expected := map[uint]uint{1: 8, 8: 8, 9: 16, 16: 16, 17: 32, 28: 32, 32: 32, 33: 64, 64: 64, 65: 0}
	//
	for width, storage := range expected {
		require.Equal(t, storage, StorageWidth(width), "width %d", width)
	}
}

func Test_Derive_00(t *testing.T) {
	// STATE_TILE_COORDS
	checkDerive(t, sc.NewInstruction("COORDS", 115, true, true, sc.F("column", 8), sc.F("row", 8)),
		3, 0, Slot{"column", 8, 8, 8, false}, Slot{"row", 8, 8, 16, false})
}

func Test_Derive_01(t *testing.T) {
	// No fields
	checkDerive(t, sc.NewInstruction("HALT", 0, true, true), 1, 0)
}

func Test_Derive_02(t *testing.T) {
	checkDerive(t, sc.NewInstruction("STORE", 26, true, false,
		sc.F("a", 1), sc.F("b", 1), sc.F("c", 1), sc.F("d", 1), sc.F("addr", 28)),
		5, 0,
		Slot{"a", 1, 8, 8, false}, Slot{"b", 1, 8, 9, false}, Slot{"c", 1, 8, 10, false},
		Slot{"d", 1, 8, 11, false}, Slot{"addr", 28, 32, 12, false})
}

func Test_Derive_03(t *testing.T) {
	// 44 field bits plus the opcode are padded out to 7 bytes
	checkDerive(t, sc.NewInstruction("LOAD", 29, true, false, sc.F("lo", 16), sc.F("hi", 28)),
		7, 4, Slot{"lo", 16, 16, 8, false}, Slot{"hi", 28, 32, 24, false})
}

func Test_Derive_04(t *testing.T) {
	// Records have no opcode slot
	checkDerive(t, sc.NewRecord("REC", sc.F("addr", 32), sc.F("size", 8)),
		5, 0, Slot{"addr", 32, 32, 0, false}, Slot{"size", 8, 8, 32, false})
}

func Test_Derive_05(t *testing.T) {
	checkDerive(t, sc.NewRecord("REC", sc.F("x", 3)), 1, 5, Slot{"x", 3, 8, 0, false})
}

func Test_Derive_06(t *testing.T) {
	checkDerive(t, sc.NewInstruction("WIDE", 1, true, true, sc.F("x", 64)), 9, 0, Slot{"x", 64, 64, 8, false})
}

func Test_Derive_Invalid_00(t *testing.T) {
	t.Parallel()
	//
	_, err := Derive(sc.NewInstruction("A", 1, true, true, sc.F("x", 65)), PadTrailingBits)
	require.ErrorIs(t, err, ErrUnsupportedFieldWidth)
}

func Test_Derive_Invalid_01(t *testing.T) {
	t.Parallel()
	//
	_, err := Derive(sc.NewInstruction("A", 1, true, true, sc.F("x", 3)), RejectUnaligned)
	require.ErrorIs(t, err, ErrUnalignedLayout)
	// aligned layouts are fine either way
	l, err := Derive(sc.NewInstruction("A", 1, true, true, sc.F("x", 3), sc.F("y", 5)), RejectUnaligned)
	require.NoError(t, err)
	require.Equal(t, uint(2), l.Size())
}

func Test_DeriveAll(t *testing.T) {
	t.Parallel()
	//
	reg := sc.NewRegistry("NS", []sc.Instruction{
		sc.NewInstruction("A", 1, true, true, sc.F("x", 3)),
		sc.NewInstruction("B", 2, true, true, sc.F("y", 70)),
	}, []sc.Instruction{sc.NewRecord("R", sc.F("z", 1))})
	//
	_, err := DeriveAll(reg, RejectUnaligned)
	require.ErrorIs(t, err, ErrUnalignedLayout)
	require.ErrorIs(t, err, ErrUnsupportedFieldWidth)
	require.ErrorContains(t, err, "R has 1 bits")
}

func Test_ParsePolicy(t *testing.T) {
	t.Parallel()
	//
	for _, p := range []Policy{PadTrailingBits, RejectUnaligned} {
		q, err := ParsePolicy(p.String())
		require.NoError(t, err)
		require.Equal(t, p, q)
	}
	//
	_, err := ParsePolicy("shrink")
	require.Error(t, err)
}

func checkDerive(t *testing.T, instr sc.Instruction, size uint, padding uint, fields ...Slot) {
	t.Parallel()
	//
	l, err := Derive(instr, PadTrailingBits)
	require.NoError(t, err)
	require.Equal(t, size, l.Size())
	require.Equal(t, padding, l.PadBits)
	require.Equal(t, size*8, l.Bits()+l.PadBits)
	//
	if instr.HasOpcode() {
		require.Equal(t, Slot{OpcodeSlot, 8, 8, 0, true}, l.Slots[0])
	}
	//
	if len(fields) == 0 {
		require.Empty(t, l.Fields())
	} else {
		require.Equal(t, fields, l.Fields())
	}
	// Deterministic
	again, err := Derive(instr, PadTrailingBits)
	require.NoError(t, err)
	require.Equal(t, l, again)
}

func Test_Derive_Invalid_02(t *testing.T) {
	t.Parallel()
	//
	_, err := Derive(sc.NewInstruction("A", 1, true, true, sc.F(OpcodeSlot, 8)), PadTrailingBits)
	require.ErrorIs(t, err, sc.ErrDuplicateFieldName)
	// records have no opcode slot
	_, err = Derive(sc.NewRecord("R", sc.F(OpcodeSlot, 8)), PadTrailingBits)
	require.NoError(t, err)
}
