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

// Body of the declarations file of the Go target.
var goDeclarations = `// Schema digest: {{.Digest}}

// Opcodes (where applicable) and encoded sizes in bytes of each definition.
const (
{{- range .Definitions}}
{{- if .HasOpcode}}
	{{.Const}} = {{.Opcode}}
{{- end}}
	{{.Const}}_SIZE = {{.Size}}
{{- end}}
)
{{range .Definitions}}
// {{.Type}} holds the fields of {{.Name}} ({{.Usage}}).
type {{.Type}} struct {
{{- range .Fields}}
	// {{.GoName}} holds {{.Name}}, which occupies {{.Width}} bits from bit {{.Offset}}.
	{{.GoName}} uint{{.Storage}}
{{- end}}
}
{{end}}`

// Body of the definitions file of the Go target.
var goDefinitions = `// Schema digest: {{.Digest}}

import (
	"errors"
	"fmt"
	"io"
{{- if .HasFields}}
	"strconv"
{{- end}}
	"strings"
{{- if .HasFields}}

	bit "{{.RuntimeImport}}"
{{- end}}
)

// ErrUnknownOpcode arises when an instruction starts with an unrecognised
// opcode.
var ErrUnknownOpcode = errors.New("unknown opcode")

// ErrTruncated arises when a buffer ends part way through an instruction.
var ErrTruncated = errors.New("truncated instruction")
{{range .Definitions}}
// Emit{{.Type}} writes {{.Name}} at the start of cur, returning the remainder of
// cur.  Values are truncated to the width of their field.
func Emit{{.Type}}(cur []byte{{range .Fields}}, {{.Arg}} uint{{.Storage}}{{end}}) []byte {
	var buf [{{.Const}}_SIZE]byte
	//
	_ = cur[{{.Const}}_SIZE-1]
{{- if .HasOpcode}}
	buf[0] = {{.Const}}
{{- end}}
{{- range .Fields}}
	bit.PutUint(buf[:], {{.Offset}}, {{.Width}}, uint64({{.Arg}}))
{{- end}}
	copy(cur, buf[:])
	//
	return cur[{{.Const}}_SIZE:]
}

// Decode{{.Type}} reads {{.Name}} from the start of ins.
func Decode{{.Type}}(ins []byte) {{.Type}} {
	_ = ins[{{.Const}}_SIZE-1]
	//
	return {{.Type}}{
{{- range .Fields}}
		{{.GoName}}: uint{{.Storage}}(bit.Uint(ins, {{.Offset}}, {{.Width}})),
{{- end}}
	}
}

// Disassemble{{.Type}} writes the text of {{.Name}} at the start of ins to w, in a
// single write.
func Disassemble{{.Type}}(ins []byte, w io.Writer) error {
	var b strings.Builder
{{- if .Fields}}
	//
	v := Decode{{.Type}}(ins)
{{- else}}
	//
	_ = ins[{{.Const}}_SIZE-1]
{{- end}}
	//
	b.WriteString("{{.Name}}\n")
{{- range .Fields}}
	b.WriteString("\t{{.Name}}: ")
	b.WriteString(strconv.FormatUint(uint64(v.{{.GoName}}), 16))
	b.WriteString("\n")
{{- end}}
	//
	_, err := io.WriteString(w, b.String())
	//
	return err
}
{{end}}
func instructionSize(opcode byte) (int, bool) {
	switch opcode {
{{- range .Definitions}}
{{- if .HasOpcode}}
	case {{.Const}}:
		return {{.Const}}_SIZE, true
{{- end}}
{{- end}}
	default:
		return 0, false
	}
}

// NextInstruction returns the remainder of cur following the instruction at its
// start.
func NextInstruction(cur []byte) ([]byte, error) {
	if len(cur) == 0 {
		return cur, ErrTruncated
	}
	//
	size, ok := instructionSize(cur[0])
	//
	if !ok {
		return cur, fmt.Errorf("%w (%d)", ErrUnknownOpcode, cur[0])
	} else if len(cur) < size {
		return cur, ErrTruncated
	}
	//
	return cur[size:], nil
}

// DisassembleInstr writes the text of the instruction at the start of cur to w.
// Nothing is written if the opcode is unknown.
func DisassembleInstr(cur []byte, w io.Writer) error {
	if _, err := NextInstruction(cur); err != nil {
		return err
	}
	//
	switch cur[0] {
{{- range .Definitions}}
{{- if .HasOpcode}}
	case {{.Const}}:
		return Disassemble{{.Type}}(cur, w)
{{- end}}
{{- end}}
	default:
		return fmt.Errorf("%w (%d)", ErrUnknownOpcode, cur[0])
	}
}
`
