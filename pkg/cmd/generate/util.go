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
	"unicode"
)

// Capitalise each word and join them together (e.g. "branch_addr" becomes
// "BranchAddr").
func toPascalCase(name string) string {
	var builder strings.Builder
	//
	for _, w := range splitWords(name) {
		builder.WriteString(camelify(w, true))
	}
	//
	return builder.String()
}

// Capitalise each word, except first.
func toCamelCase(name string) string {
	var word string
	//
	for i, w := range splitWords(name) {
		if i == 0 {
			word = camelify(w, false)
		} else {
			word = fmt.Sprintf("%s%s", word, camelify(w, true))
		}
	}
	//
	return word
}

// Make all letters lowercase, and optionally capitalise the first letter.
func camelify(name string, first bool) string {
	letters := strings.Split(name, "")
	for i := range letters {
		if first && i == 0 {
			letters[i] = strings.ToUpper(letters[i])
		} else {
			letters[i] = strings.ToLower(letters[i])
		}
	}
	//
	return strings.Join(letters, "")
}

func splitWords(name string) []string {
	var (
		words []string
	)
	//
	for _, w1 := range strings.Split(name, "_") {
		for _, w2 := range splitCaseChange(w1) {
			if w2 != "" {
				words = append(words, w2)
			}
		}
	}
	//
	return words
}

func splitCaseChange(word string) []string {
	var (
		runes = []rune(word)
		words []string
		last  bool = true
		start int
	)
	//
	for i, r := range runes {
		ith := unicode.IsUpper(r)
		if !last && ith {
			// case change
			words = append(words, string(runes[start:i]))
			start = i
		}

		last = ith
	}
	// Append whatever is left
	words = append(words, string(runes[start:]))
	//
	return words
}

// Determine the number of hex digits needed to print any value of the given
// bitwidth.
func hexDigits(bitwidth uint) uint {
	return (bitwidth + 3) / 4
}

// Append an underscore to any name found in the reserved set.
func sanitise(name string, reserved map[string]bool) string {
	for reserved[name] {
		name = name + "_"
	}
	//
	return name
}

func setOf(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	//
	for _, w := range words {
		set[w] = true
	}
	//
	return set
}

// Records every top-level identifier generated for a given target, reporting
// the first clash.
type symbolTable struct {
	symbols map[string]string
}

func newSymbolTable() symbolTable {
	return symbolTable{make(map[string]string)}
}

func (p *symbolTable) declare(owner string, names ...string) error {
	for _, name := range names {
		if other, ok := p.symbols[name]; ok {
			return fmt.Errorf("%w: %s (from %s and %s)", ErrNameCollision, name, other, owner)
		}
		//
		p.symbols[name] = owner
	}
	//
	return nil
}

// A string builder which supports indentation.
type indentBuilder struct {
	indent  uint
	builder *strings.Builder
}

func (p indentBuilder) Indent() indentBuilder {
	return indentBuilder{p.indent + 1, p.builder}
}

func (p indentBuilder) WriteString(raw string) {
	p.builder.WriteString(raw)
}

func (p indentBuilder) WriteIndentedString(pieces ...string) {
	p.WriteIndent()
	//
	for _, s := range pieces {
		p.builder.WriteString(s)
	}
}

func (p indentBuilder) WriteIndent() {
	for i := uint(0); i < p.indent; i++ {
		p.builder.WriteString("   ")
	}
}
