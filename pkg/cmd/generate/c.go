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
	"fmt"
	"strings"

	"github.com/consensys/go-clgen/pkg/layout"
)

// Reserved words of C, along with the parameter names used by generated
// functions.
var cReserved = setOf("auto", "break", "case", "char", "const", "continue", "default", "do", "double", "else",
	"enum", "extern", "float", "for", "goto", "if", "inline", "int", "long", "register", "restrict", "return",
	"short", "signed", "sizeof", "static", "struct", "switch", "typedef", "union", "unsigned", "void", "volatile",
	"while", "_Bool", "_Static_assert", "bool", "cur_ins", "ins", "out", "buf", "len")

type cTarget struct{}

func (p *cTarget) Name() string {
	return "c"
}

// Generate a C header declaring one packed struct per definition (along with
// opcode and size constants), and a C source file defining the construction,
// introspection and dispatch functions.
func (p *cTarget) Generate(unit *Unit) (*Output, error) {
	var (
		header strings.Builder
		source strings.Builder
	)
	//
	if err := checkCNames(unit); err != nil {
		return nil, err
	}
	//
	generateCHeader(unit, indentBuilder{0, &header})
	generateCSource(unit, indentBuilder{0, &source})
	//
	return &Output{
		Declarations:     header.String(),
		DeclarationsFile: unit.Options.Base + ".h",
		Definitions:      source.String(),
		DefinitionsFile:  unit.Options.Base + ".c",
	}, nil
}

func checkCNames(unit *Unit) error {
	symbols := newSymbolTable()
	//
	if err := symbols.declare("dispatch", "calc_next_ins", "disassemble_instr"); err != nil {
		return err
	}
	//
	for _, l := range unit.Layouts {
		if err := symbols.declare(l.Name(), cStructName(l), "emit_"+l.Name(), "disassemble_"+l.Name(),
			cConstName(unit, l), cConstName(unit, l)+"_SIZE"); err != nil {
			return err
		}
	}
	//
	return nil
}

func generateCHeader(unit *Unit, builder indentBuilder) {
	guard := strings.ToUpper(toIdentifier(unit.Options.Base)) + "_H"
	//
	builder.WriteString(license)
	builder.WriteString(fmt.Sprintf(cWarning, unit.Digest()))
	builder.WriteString(fmt.Sprintf("\n#ifndef %s\n#define %s\n", guard, guard))
	builder.WriteString(cIncludes)
	builder.WriteString(cEndianGuard)
	//
	generateCConstants(unit, builder)
	//
	for _, l := range unit.Layouts {
		generateCStruct(l, builder)
	}
	//
	builder.WriteString("\n")
	//
	for _, l := range unit.Layouts {
		builder.WriteString(fmt.Sprintf("void emit_%s(void** cur_ins%s);\n", l.Name(), cParameters(l)))
		builder.WriteString(fmt.Sprintf("int disassemble_%s(const %s* ins, FILE* out);\n", l.Name(), cStructName(l)))
	}
	//
	builder.WriteString("\n")
	builder.WriteString("// Returns the instruction following cur_ins, or NULL for an unknown opcode.\n")
	builder.WriteString("void* calc_next_ins(void* cur_ins);\n")
	builder.WriteString("// Returns 0 on success, or non-zero for an unknown opcode or failed write.\n")
	builder.WriteString("int disassemble_instr(void* cur_ins, FILE* out);\n")
	builder.WriteString(fmt.Sprintf("\n#endif // %s\n", guard))
}

func generateCConstants(unit *Unit, builder indentBuilder) {
	builder.WriteString("\n")
	//
	for _, l := range unit.Layouts {
		name := cConstName(unit, l)
		//
		if l.HasOpcode() {
			builder.WriteString(fmt.Sprintf("#define %s %d\n", name, l.Opcode()))
		}
		//
		builder.WriteString(fmt.Sprintf("#define %s_SIZE %d\n", name, l.Size()))
	}
}

func generateCStruct(l *layout.Layout, builder indentBuilder) {
	var (
		name = cStructName(l)
		body = builder.Indent()
	)
	//
	builder.WriteString(fmt.Sprintf("\n// %s (%s)\n", l.Name(), usage(l)))
	builder.WriteString("typedef struct {\n")
	//
	for _, s := range l.Slots {
		body.WriteIndentedString(fmt.Sprintf("%s %s : %d;\n", cType(s.Storage), cFieldName(s), s.Width))
	}
	//
	if l.PadBits > 0 {
		body.WriteIndentedString(fmt.Sprintf("uint8_t : %d;\n", l.PadBits))
	}
	//
	builder.WriteString(fmt.Sprintf("} __attribute__((packed)) %s;\n", name))
	builder.WriteString(fmt.Sprintf("_Static_assert(sizeof(%s) == %d, \"%s must be %d bytes\");\n", name, l.Size(),
		name, l.Size()))
}

func generateCSource(unit *Unit, builder indentBuilder) {
	builder.WriteString(license)
	builder.WriteString(fmt.Sprintf(cWarning, unit.Digest()))
	builder.WriteString(fmt.Sprintf("\n#include \"%s.h\"\n", unit.Options.Base))
	//
	for _, l := range unit.Layouts {
		generateCEmit(unit, l, builder)
		generateCDisassemble(l, builder)
	}
	//
	generateCNextInstruction(unit, builder)
	generateCDisassembleInstr(unit, builder)
}

// Assemble into a zeroed local then store once, so the destination is written
// exactly once and any padding is zero.
func generateCEmit(unit *Unit, l *layout.Layout, builder indentBuilder) {
	var (
		name = cStructName(l)
		body = builder.Indent()
	)
	//
	builder.WriteString(fmt.Sprintf("\nvoid emit_%s(void** cur_ins%s) {\n", l.Name(), cParameters(l)))
	body.WriteIndentedString(fmt.Sprintf("%s ins = {0};\n", name))
	//
	if l.HasOpcode() {
		body.WriteIndentedString(fmt.Sprintf("ins.%s = %s;\n", layout.OpcodeSlot, cConstName(unit, l)))
	}
	//
	for _, s := range l.Fields() {
		body.WriteIndentedString(fmt.Sprintf("ins.%s = %s;\n", cFieldName(s), cFieldName(s)))
	}
	//
	body.WriteIndentedString(fmt.Sprintf("*(%s*)(*cur_ins) = ins;\n", name))
	body.WriteIndentedString(fmt.Sprintf("*cur_ins = (uint8_t*)(*cur_ins) + sizeof(%s);\n", name))
	builder.WriteString("}\n")
}

// Format into a local buffer sized for the longest possible text, then write
// it out with a single call.
func generateCDisassemble(l *layout.Layout, builder indentBuilder) {
	var (
		body   = builder.Indent()
		format strings.Builder
		args   strings.Builder
		size   = uint(len(l.Name())) + 2
	)
	//
	format.WriteString(l.Name())
	format.WriteString("\\n")
	//
	for _, s := range l.Fields() {
		format.WriteString(fmt.Sprintf("\\t%s: %%\" PRIx%d \"\\n", s.Name, s.Storage))
		args.WriteString(fmt.Sprintf(", (%s)ins->%s", cType(s.Storage), cFieldName(s)))
		// tab, name, colon, space, digits, newline
		size += uint(len(s.Name)) + 4 + hexDigits(s.Width)
	}
	//
	builder.WriteString(fmt.Sprintf("\nint disassemble_%s(const %s* ins, FILE* out) {\n", l.Name(), cStructName(l)))
	body.WriteIndentedString(fmt.Sprintf("char buf[%d];\n", size))
	body.WriteIndentedString(fmt.Sprintf("int len = snprintf(buf, sizeof(buf), \"%s\"%s);\n", format.String(),
		args.String()))
	body.WriteIndentedString("if(len < 0 || (size_t)len >= sizeof(buf)) {\n")
	body.Indent().WriteIndentedString("return 1;\n")
	body.WriteIndentedString("}\n")
	body.WriteIndentedString("return fwrite(buf, 1, (size_t)len, out) == (size_t)len ? 0 : 1;\n")
	builder.WriteString("}\n")
}

func generateCNextInstruction(unit *Unit, builder indentBuilder) {
	body := builder.Indent()
	//
	builder.WriteString("\nvoid* calc_next_ins(void* cur_ins) {\n")
	body.WriteIndentedString("switch(*(uint8_t*)cur_ins) {\n")
	//
	for _, l := range unit.Layouts {
		if l.HasOpcode() {
			body.WriteIndentedString(fmt.Sprintf("case %s:\n", cConstName(unit, l)))
			body.Indent().WriteIndentedString(fmt.Sprintf("return (uint8_t*)cur_ins + sizeof(%s);\n", cStructName(l)))
		}
	}
	//
	body.WriteIndentedString("default:\n")
	body.Indent().WriteIndentedString("return NULL;\n")
	body.WriteIndentedString("}\n")
	builder.WriteString("}\n")
}

func generateCDisassembleInstr(unit *Unit, builder indentBuilder) {
	body := builder.Indent()
	//
	builder.WriteString("\nint disassemble_instr(void* cur_ins, FILE* out) {\n")
	body.WriteIndentedString("switch(*(uint8_t*)cur_ins) {\n")
	//
	for _, l := range unit.Layouts {
		if l.HasOpcode() {
			body.WriteIndentedString(fmt.Sprintf("case %s:\n", cConstName(unit, l)))
			body.Indent().WriteIndentedString(fmt.Sprintf("return disassemble_%s(cur_ins, out);\n", l.Name()))
		}
	}
	//
	body.WriteIndentedString("default:\n")
	body.Indent().WriteIndentedString("return 1;\n")
	body.WriteIndentedString("}\n")
	builder.WriteString("}\n")
}

func cParameters(l *layout.Layout) string {
	var builder strings.Builder
	//
	for _, s := range l.Fields() {
		builder.WriteString(fmt.Sprintf(", %s %s", cType(s.Storage), cFieldName(s)))
	}
	//
	return builder.String()
}

func cType(storage uint) string {
	return fmt.Sprintf("uint%d_t", storage)
}

func cStructName(l *layout.Layout) string {
	return fmt.Sprintf("instr_%s_t", l.Name())
}

func cConstName(unit *Unit, l *layout.Layout) string {
	return fmt.Sprintf("%s_%s", unit.Options.Namespace, l.Name())
}

func cFieldName(s layout.Slot) string {
	if s.Opcode {
		return s.Name
	}
	//
	return sanitise(s.Name, cReserved)
}

// Describe the lists in which an instruction may appear.
func usage(l *layout.Layout) string {
	switch {
	case !l.HasOpcode():
		return "record"
	case l.Instruction.Rendering && l.Instruction.Binning:
		return "rendering, binning"
	case l.Instruction.Rendering:
		return "rendering"
	case l.Instruction.Binning:
		return "binning"
	default:
		return "unused"
	}
}

// Replace anything which cannot appear in an identifier with an underscore.
func toIdentifier(name string) string {
	return strings.Map(func(r rune) rune {
		if r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		//
		return '_'
	}, name)
}
