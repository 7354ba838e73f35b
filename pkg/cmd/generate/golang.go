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
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"text/template"
	"unicode"

	"github.com/consensys/go-clgen/pkg/layout"
)

// Reserved words of Go, along with the names used within generated functions
// which parameters must not shadow.
var goReserved = setOf("break", "case", "chan", "const", "continue", "default", "defer", "else", "fallthrough",
	"for", "func", "go", "goto", "if", "import", "interface", "map", "package", "range", "return", "select",
	"struct", "switch", "type", "var", "cur", "buf", "bit", "copy", "byte", "uint8", "uint16", "uint32", "uint64")

type goTarget struct{}

func (p *goTarget) Name() string {
	return "go"
}

// GoFile is a Go source file prior to rendering: the template for its body
// (i.e. everything after the package clause), and the data it is rendered
// with.
type GoFile struct {
	Name     string
	Template string
	Data     *GoUnit
}

// Source returns the complete template of this file: the license, the
// generated code banner and the package clause, followed by the body.
func (p GoFile) Source() string {
	return goLicense + goWarning + "package {{.Package}}\n\n" + p.Template
}

// GoUnit is the data from which Go source is rendered.
type GoUnit struct {
	Package       string
	RuntimeImport string
	Digest        string
	Definitions   []GoDefinition
}

// HasFields determines whether any definition has a field, in which case the
// generated operations depend on the bit packing package.
func (p *GoUnit) HasFields() bool {
	for _, d := range p.Definitions {
		if len(d.Fields) > 0 {
			return true
		}
	}
	//
	return false
}

// GoDefinition is the rendering data of one instruction or record.
type GoDefinition struct {
	Name      string
	Type      string
	Const     string
	Usage     string
	HasOpcode bool
	Opcode    uint8
	Size      uint
	Fields    []GoField
}

// GoField is the rendering data of one field.
type GoField struct {
	Name    string
	GoName  string
	Arg     string
	Width   uint
	Storage uint
	Offset  uint
}

// GoFiles returns the two Go source files for a given unit, without rendering
// them.  This allows them to be rendered by some other template engine.
func GoFiles(unit *Unit) ([]GoFile, error) {
	data, err := newGoUnit(unit)
	//
	if err != nil {
		return nil, err
	}
	//
	return []GoFile{
		{unit.Options.Base + "_layout.go", goDeclarations, data},
		{unit.Options.Base + "_ops.go", goDefinitions, data},
	}, nil
}

// Generate Go source declaring one struct per definition (along with opcode and
// size constants), and the construction, introspection and dispatch functions.
// Both files are run through gofmt.
func (p *goTarget) Generate(unit *Unit) (*Output, error) {
	files, err := GoFiles(unit)
	//
	if err != nil {
		return nil, err
	}
	//
	var text [2]string
	//
	for i, f := range files {
		if text[i], err = renderGo(f); err != nil {
			return nil, err
		}
	}
	//
	return &Output{
		Declarations:     text[0],
		DeclarationsFile: files[0].Name,
		Definitions:      text[1],
		DefinitionsFile:  files[1].Name,
	}, nil
}

func renderGo(file GoFile) (string, error) {
	var buf bytes.Buffer
	//
	tmpl, err := template.New(file.Name).Parse(file.Source())
	//
	if err != nil {
		return "", err
	}
	//
	if err := tmpl.Execute(&buf, file.Data); err != nil {
		return "", err
	}
	//
	src, err := format.Source(buf.Bytes())
	//
	if err != nil {
		return "", fmt.Errorf("formatting %s: %w", file.Name, err)
	}
	//
	return string(src), nil
}

func newGoUnit(unit *Unit) (*GoUnit, error) {
	var (
		symbols = newSymbolTable()
		defs    []GoDefinition
	)
	//
	if !token.IsIdentifier(unit.Options.Package) {
		return nil, fmt.Errorf("invalid package name %q", unit.Options.Package)
	} else if unit.Options.RuntimeImport == "" {
		return nil, errors.New("missing runtime import path")
	}
	//
	if err := symbols.declare("dispatch", "ErrUnknownOpcode", "ErrTruncated", "NextInstruction",
		"DisassembleInstr", "instructionSize"); err != nil {
		return nil, err
	}
	//
	for _, l := range unit.Layouts {
		def := newGoDefinition(unit, l)
		//
		if err := symbols.declare(l.Name(), def.Type, "Emit"+def.Type, "Decode"+def.Type,
			"Disassemble"+def.Type, def.Const, def.Const+"_SIZE"); err != nil {
			return nil, err
		} else if err := checkGoFields(def); err != nil {
			return nil, err
		}
		//
		defs = append(defs, def)
	}
	//
	return &GoUnit{unit.Options.Package, unit.Options.RuntimeImport, unit.Digest(), defs}, nil
}

func newGoDefinition(unit *Unit, l *layout.Layout) GoDefinition {
	var fields []GoField
	//
	for _, s := range l.Fields() {
		fields = append(fields, GoField{
			Name:    s.Name,
			GoName:  goIdentifier(s.Name),
			Arg:     goParameter(s.Name),
			Width:   s.Width,
			Storage: s.Storage,
			Offset:  s.Offset,
		})
	}
	//
	return GoDefinition{
		Name:      l.Name(),
		Type:      goIdentifier(l.Name()),
		Const:     cConstName(unit, l),
		Usage:     usage(l),
		HasOpcode: l.HasOpcode(),
		Opcode:    l.Opcode(),
		Size:      l.Size(),
		Fields:    fields,
	}
}

// Distinct fields may have the same Go name (e.g. "a_b" and "aB").
func checkGoFields(def GoDefinition) error {
	var (
		names = make(map[string]bool)
		args  = make(map[string]bool)
	)
	//
	for _, f := range def.Fields {
		if names[f.GoName] || args[f.Arg] {
			return fmt.Errorf("%w: %s.%s", ErrNameCollision, def.Name, f.Name)
		}
		//
		names[f.GoName] = true
		args[f.Arg] = true
	}
	//
	return nil
}

// Exported Go identifier for a given name.  Names which do not start with a
// letter once split into words (e.g. "_1") are prefixed.
func goIdentifier(name string) string {
	id := toPascalCase(name)
	//
	if id == "" || !unicode.IsLetter(rune(id[0])) {
		return "X" + id
	}
	//
	return id
}

// Unexported Go identifier for a given name, which does not clash with any
// name used within generated functions.
func goParameter(name string) string {
	id := toCamelCase(name)
	//
	if id == "" || !unicode.IsLetter(rune(id[0])) {
		id = "x" + id
	}
	//
	return sanitise(id, goReserved)
}
