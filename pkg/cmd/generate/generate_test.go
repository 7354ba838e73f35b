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
package generate

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/consensys/go-clgen/pkg/layout"
	sc "github.com/consensys/go-clgen/pkg/schema"
	"github.com/consensys/go-clgen/pkg/v3d"
	"github.com/stretchr/testify/require"
)

func Test_Generate_Deterministic_C(t *testing.T) {
	checkDeterministic(t, "c")
}

func Test_Generate_Deterministic_Go(t *testing.T) {
	checkDeterministic(t, "go")
}

func Test_Generate_C_Header(t *testing.T) {
	t.Parallel()
	//
	out := generate(t, v3d.Registry(), "c")
	header := out.Declarations
	//
	require.Equal(t, "v3d_cl_instr_autogen.h", out.DeclarationsFile)
	require.Equal(t, "v3d_cl_instr_autogen.c", out.DefinitionsFile)
	checkContains(t, header,
		"#ifndef V3D_CL_INSTR_AUTOGEN_H\n#define V3D_CL_INSTR_AUTOGEN_H\n",
		"#include <inttypes.h>\n",
		"__BYTE_ORDER__ != __ORDER_LITTLE_ENDIAN__",
		"#define V3D_HW_INSTR_STATE_TILE_COORDS 115\n#define V3D_HW_INSTR_STATE_TILE_COORDS_SIZE 3\n",
		"#define V3D_HW_INSTR_SHADER_RECORD_SIZE 36\n",
		"// STATE_TILE_COORDS (rendering, binning)\ntypedef struct {\n   uint8_t opcode : 8;\n   uint8_t column : 8;\n"+
			"   uint8_t row : 8;\n} __attribute__((packed)) instr_STATE_TILE_COORDS_t;\n",
		"_Static_assert(sizeof(instr_STATE_TILE_COORDS_t) == 3, ",
		"   uint32_t frame_addr : 28;\n   uint8_t : 4;\n} __attribute__((packed)) instr_LOAD_GENERAL_t;\n",
		"_Static_assert(sizeof(instr_LOAD_GENERAL_t) == 7, ",
		"// SHADER_RECORD (record)\ntypedef struct {\n   uint16_t flags : 16;\n",
		"void emit_STATE_TILE_COORDS(void** cur_ins, uint8_t column, uint8_t row);\n",
		"int disassemble_SHADER_RECORD(const instr_SHADER_RECORD_t* ins, FILE* out);\n",
		"void* calc_next_ins(void* cur_ins);\n",
		"int disassemble_instr(void* cur_ins, FILE* out);\n",
		"#endif // V3D_CL_INSTR_AUTOGEN_H\n")
	// records have no opcode
	require.NotContains(t, header, "#define V3D_HW_INSTR_SHADER_RECORD ")
	require.Equal(t, 44, strings.Count(header, "_Static_assert"))
	require.Contains(t, header, "Schema digest: ")
}

func Test_Generate_C_Source(t *testing.T) {
	t.Parallel()
	//
	source := generate(t, v3d.Registry(), "c").Definitions
	//
	checkContains(t, source,
		"#include \"v3d_cl_instr_autogen.h\"\n",
		"void emit_STATE_TILE_COORDS(void** cur_ins, uint8_t column, uint8_t row) {\n"+
			"   instr_STATE_TILE_COORDS_t ins = {0};\n"+
			"   ins.opcode = V3D_HW_INSTR_STATE_TILE_COORDS;\n"+
			"   ins.column = column;\n"+
			"   ins.row = row;\n"+
			"   *(instr_STATE_TILE_COORDS_t*)(*cur_ins) = ins;\n"+
			"   *cur_ins = (uint8_t*)(*cur_ins) + sizeof(instr_STATE_TILE_COORDS_t);\n}\n",
		"int disassemble_STATE_TILE_COORDS(const instr_STATE_TILE_COORDS_t* ins, FILE* out) {\n"+
			"   char buf[40];\n"+
			"   int len = snprintf(buf, sizeof(buf), \"STATE_TILE_COORDS\\n\\tcolumn: %\" PRIx8 \"\\n\\trow: %\" PRIx8 \"\\n\""+
			", (uint8_t)ins->column, (uint8_t)ins->row);\n",
		"   return fwrite(buf, 1, (size_t)len, out) == (size_t)len ? 0 : 1;\n",
		"void* calc_next_ins(void* cur_ins) {\n",
		"   case V3D_HW_INSTR_HALT:\n      return (uint8_t*)cur_ins + sizeof(instr_HALT_t);\n",
		"   default:\n      return NULL;\n",
		"   case V3D_HW_INSTR_BRANCH:\n      return disassemble_BRANCH(cur_ins, out);\n",
		"   default:\n      return 1;\n")
	// Dispatch covers exactly the real instructions
	require.Equal(t, 2*42, strings.Count(source, "   case V3D_HW_INSTR_"))
	require.NotContains(t, source, "case V3D_HW_INSTR_SHADER_RECORD")
}

func Test_Generate_Go(t *testing.T) {
	t.Parallel()
	//
	out := generate(t, v3d.Registry(), "go")
	//
	require.Equal(t, "v3d_cl_instr_autogen_layout.go", out.DeclarationsFile)
	require.Equal(t, "v3d_cl_instr_autogen_ops.go", out.DefinitionsFile)
	//
	decls := parseGo(t, out.Declarations)
	defs := parseGo(t, out.Definitions)
	//
	require.Equal(t, "v3dcl", decls.Name.Name)
	require.Equal(t, "v3dcl", defs.Name.Name)
	require.True(t, strings.HasPrefix(out.Declarations, goLicense+goWarning))
	//
	types := declaredNames(decls)
	funcs := declaredNames(defs)
	//
	for _, name := range []string{"StateTileCoords", "LoadGeneral", "ShaderRecord", "AttrArrayRecord",
		"V3D_HW_INSTR_STATE_TILE_COORDS", "V3D_HW_INSTR_STATE_TILE_COORDS_SIZE", "V3D_HW_INSTR_SHADER_RECORD_SIZE"} {
		require.True(t, types[name], name)
	}
	//
	for _, name := range []string{"EmitStateTileCoords", "DecodeStateTileCoords", "DisassembleStateTileCoords",
		"EmitShaderRecord", "NextInstruction", "DisassembleInstr", "ErrUnknownOpcode", "ErrTruncated"} {
		require.True(t, funcs[name], name)
	}
	//
	require.False(t, types["V3D_HW_INSTR_SHADER_RECORD"])
	require.Contains(t, out.Definitions, "func EmitStateTileCoords(cur []byte, column uint8, row uint8) []byte {")
	require.Contains(t, out.Definitions, "bit.PutUint(buf[:], 16, 8, uint64(row))")
	require.Contains(t, out.Definitions, "bit \"github.com/consensys/go-clgen/pkg/util/collection/bit\"")
	require.Regexp(t, `\tFrameAddr\s+uint32\n`, out.Declarations)
}

func Test_Generate_Go_NoFields(t *testing.T) {
	t.Parallel()
	// Without fields, neither strconv nor the bit package are imported
	reg := sc.NewRegistry("NS", []sc.Instruction{sc.NewInstruction("HALT", 0, true, true)}, nil)
	out := generate(t, reg, "go")
	defs := parseGo(t, out.Definitions)
	//
	for _, imp := range defs.Imports {
		require.NotContains(t, imp.Path.Value, "strconv")
		require.NotContains(t, imp.Path.Value, "bit")
	}
}

func Test_Generate_Options(t *testing.T) {
	t.Parallel()
	//
	options := DefaultOptions()
	options.Namespace = "CL"
	options.Base = "out/cl"
	options.Package = "cl"
	//
	out, err := Generate(v3d.Registry(), "c", options)
	require.NoError(t, err)
	require.Contains(t, out.Declarations, "#define CL_HALT 0\n")
	require.Contains(t, out.Declarations, "#ifndef OUT_CL_H\n")
	//
	out, err = Generate(v3d.Registry(), "go", options)
	require.NoError(t, err)
	require.Contains(t, out.Definitions, "\tcase CL_HALT:\n")
	require.Equal(t, "out/cl_ops.go", out.DefinitionsFile)
	//
	options.Package = "not a package"
	_, err = Generate(v3d.Registry(), "go", options)
	require.Error(t, err)
}

func Test_Generate_Invalid_00(t *testing.T) {
	// Schema errors yield no output
	checkInvalid(t, sc.ErrDuplicateOpcode, sc.NewRegistry("NS", []sc.Instruction{
		sc.NewInstruction("A", 1, true, true),
		sc.NewInstruction("B", 1, true, true),
	}, nil), DefaultOptions())
}

func Test_Generate_Invalid_01(t *testing.T) {
	checkInvalid(t, sc.ErrUnsupportedFieldWidth, sc.NewRegistry("NS", []sc.Instruction{
		sc.NewInstruction("A", 1, true, true, sc.F("x", 65)),
	}, nil), DefaultOptions())
}

func Test_Generate_Invalid_02(t *testing.T) {
	options := DefaultOptions()
	options.Policy = layout.RejectUnaligned
	//
	checkInvalid(t, layout.ErrUnalignedLayout, v3d.Registry(), options)
}

func Test_Generate_Invalid_03(t *testing.T) {
	checkInvalid(t, ErrEmptyRegistry, sc.NewRegistry("NS", nil, nil), DefaultOptions())
}

func Test_Generate_Invalid_04(t *testing.T) {
	t.Parallel()
	//
	_, err := Generate(v3d.Registry(), "java", DefaultOptions())
	require.ErrorIs(t, err, ErrUnknownTarget)
}

func Test_Generate_Invalid_05(t *testing.T) {
	// Records without fields would occupy no bytes
	checkInvalid(t, sc.ErrEmptyRecord, sc.NewRegistry("NS", []sc.Instruction{
		sc.NewInstruction("A", 1, true, true),
	}, []sc.Instruction{
		sc.NewRecord("R"),
	}), DefaultOptions())
}

func Test_Generate_Collision_00(t *testing.T) {
	t.Parallel()
	// disassemble_INSTR is fine, but disassemble_instr is taken
	reg := sc.NewRegistry("NS", []sc.Instruction{sc.NewInstruction("instr", 1, true, true)}, nil)
	_, err := Generate(reg, "c", DefaultOptions())
	require.ErrorIs(t, err, ErrNameCollision)
}

func Test_Generate_Collision_01(t *testing.T) {
	t.Parallel()
	// Distinct in C, but not in Go
	reg := sc.NewRegistry("NS", []sc.Instruction{
		sc.NewInstruction("A_B", 1, true, true),
		sc.NewInstruction("a_b", 2, true, true),
	}, nil)
	//
	_, err := Generate(reg, "c", DefaultOptions())
	require.NoError(t, err)
	_, err = Generate(reg, "go", DefaultOptions())
	require.ErrorIs(t, err, ErrNameCollision)
}

func Test_Generate_Reserved(t *testing.T) {
	t.Parallel()
	//
	reg := sc.NewRegistry("NS", []sc.Instruction{
		sc.NewInstruction("A", 1, true, true, sc.F("type", 4), sc.F("default", 4), sc.F("cur", 8)),
	}, nil)
	//
	out := generate(t, reg, "c")
	require.Contains(t, out.Declarations, "void emit_A(void** cur_ins, uint8_t type, uint8_t default_, uint8_t cur);")
	//
	out = generate(t, reg, "go")
	parseGo(t, out.Definitions)
	require.Contains(t, out.Definitions, "func EmitA(cur []byte, type_ uint8, default_ uint8, cur_ uint8) []byte {")
}

func Test_Names(t *testing.T) {
	t.Parallel()
	//
	require.Equal(t, "BranchAddr", toPascalCase("branch_addr"))
	require.Equal(t, "Unused0", toPascalCase("UNUSED0"))
	require.Equal(t, "CoordListBroken", toPascalCase("coord_list_BROKEN"))
	require.Equal(t, "StateTileCoords", toPascalCase("STATE_TILE_COORDS"))
	require.Equal(t, "colour64", toCamelCase("colour_64"))
	require.Equal(t, "fsNumUniforms", toCamelCase("fs_num_uniforms"))
	require.Equal(t, "X1", goIdentifier("_1"))
	require.Equal(t, "x1", goParameter("_1"))
}

func Test_IndentBuilder(t *testing.T) {
	t.Parallel()
	//
	var (
		text    strings.Builder
		builder = indentBuilder{0, &text}
		body    = builder.Indent()
	)
	//
	builder.WriteString("switch(x) {\n")
	body.WriteIndentedString("case ", "1", ":\n")
	body.Indent().WriteIndentedString("return 0;\n")
	builder.WriteIndentedString("}\n")
	//
	require.Equal(t, "switch(x) {\n   case 1:\n      return 0;\n}\n", text.String())
}

// ============================================================================
// Helpers
// ============================================================================

func generate(t *testing.T, reg *sc.Registry, target string) *Output {
	out, err := Generate(reg, target, DefaultOptions())
	require.NoError(t, err)
	//
	return out
}

func checkDeterministic(t *testing.T, target string) {
	t.Parallel()
	//
	first := generate(t, v3d.Registry(), target)
	second := generate(t, v3d.Registry(), target)
	//
	require.Equal(t, first, second)
}

func checkInvalid(t *testing.T, expected error, reg *sc.Registry, options Options) {
	t.Parallel()
	//
	for _, target := range Targets() {
		out, err := Generate(reg, target, options)
		require.ErrorIs(t, err, expected)
		require.Nil(t, out)
	}
}

func checkContains(t *testing.T, text string, fragments ...string) {
	for _, f := range fragments {
		require.Contains(t, text, f)
	}
}

func parseGo(t *testing.T, src string) *ast.File {
	file, err := parser.ParseFile(token.NewFileSet(), "", src, parser.ParseComments)
	require.NoError(t, err, src)
	//
	return file
}

// Collect the names of all top-level declarations.
func declaredNames(file *ast.File) map[string]bool {
	names := make(map[string]bool)
	//
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			names[d.Name.Name] = true
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				switch s := spec.(type) {
				case *ast.TypeSpec:
					names[s.Name.Name] = true
				case *ast.ValueSpec:
					for _, n := range s.Names {
						names[n.Name] = true
					}
				}
			}
		}
	}
	//
	return names
}
