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
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/consensys/go-clgen/pkg/layout"
	"github.com/consensys/go-clgen/pkg/util/termio"
	"github.com/fxamacker/cbor/v2"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// layoutsCmd represents the layouts command
var layoutsCmd = &cobra.Command{
	Use:   "layouts [flags]",
	Short: "print the derived layouts of all instructions.",
	Long: `Print the derived layout of every V3D control list instruction and record,
	either as a table or exported as JSON or CBOR for consumption by other tools.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			format  = GetString(cmd, "format")
			output  = GetString(cmd, "output")
			layouts = newV3DCodec().Layouts()
			out     = os.Stdout
		)
		//
		if output != "" {
			f, err := os.Create(output)
			if err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
			//
			defer f.Close()
			//
			out = f
		}
		//
		if err := exportLayouts(out, format, layouts); err != nil {
			log.Error(err)
			os.Exit(1)
		}
	},
}

// LayoutInfo is the exported form of a layout.
type LayoutInfo struct {
	Name      string      `json:"name" cbor:"name"`
	Opcode    *uint8      `json:"opcode,omitempty" cbor:"opcode,omitempty"`
	Rendering bool        `json:"rendering" cbor:"rendering"`
	Binning   bool        `json:"binning" cbor:"binning"`
	Size      uint        `json:"size" cbor:"size"`
	PadBits   uint        `json:"pad_bits" cbor:"pad_bits"`
	Fields    []FieldInfo `json:"fields" cbor:"fields"`
}

// FieldInfo is the exported form of a layout slot.
type FieldInfo struct {
	Name    string `json:"name" cbor:"name"`
	Width   uint   `json:"width" cbor:"width"`
	Storage uint   `json:"storage" cbor:"storage"`
	Offset  uint   `json:"offset" cbor:"offset"`
}

func newLayoutInfo(l *layout.Layout) LayoutInfo {
	info := LayoutInfo{
		Name:      l.Name(),
		Rendering: l.Instruction.Rendering,
		Binning:   l.Instruction.Binning,
		Size:      l.Size(),
		PadBits:   l.PadBits,
		Fields:    make([]FieldInfo, 0, len(l.Fields())),
	}
	//
	if l.HasOpcode() {
		opcode := l.Opcode()
		info.Opcode = &opcode
	}
	//
	for _, s := range l.Fields() {
		info.Fields = append(info.Fields, FieldInfo{s.Name, s.Width, s.Storage, s.Offset})
	}
	//
	return info
}

// Write the given layouts in a given format ("table", "json" or "cbor").
func exportLayouts(w io.Writer, format string, layouts []*layout.Layout) error {
	var infos = make([]LayoutInfo, len(layouts))
	//
	for i, l := range layouts {
		infos[i] = newLayoutInfo(l)
	}
	//
	switch format {
	case "table":
		return printLayoutTable(w, layouts)
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		//
		return encoder.Encode(infos)
	case "cbor":
		mode, err := cbor.CanonicalEncOptions().EncMode()
		if err != nil {
			return err
		}
		//
		bytes, err := mode.Marshal(infos)
		if err != nil {
			return err
		}
		//
		_, err = w.Write(bytes)
		//
		return err
	default:
		return fmt.Errorf("unknown format %q (supported: table, json, cbor)", format)
	}
}

func printLayoutTable(w io.Writer, layouts []*layout.Layout) error {
	var (
		tp       = termio.NewTablePrinter(5, uint(len(layouts)+1))
		heading  = termio.BoldAnsiEscape()
		record   = termio.NewAnsiEscape().FgColour(termio.TERM_CYAN)
		terminal = w == os.Stdout && termio.IsTerminal(os.Stdout)
	)
	//
	tp.SetRow(0, "Name", "Opcode", "Size", "Usage", "Fields")
	tp.SetRowEscape(0, heading)
	//
	for i, l := range layouts {
		var (
			row    = uint(i + 1)
			opcode = "-"
			usage  []string
			fields []string
		)
		//
		if l.HasOpcode() {
			opcode = fmt.Sprintf("%d", l.Opcode())
		} else {
			tp.SetEscape(0, row, record)
		}
		//
		if l.Instruction.Rendering {
			usage = append(usage, "R")
		}
		//
		if l.Instruction.Binning {
			usage = append(usage, "B")
		}
		//
		for _, s := range l.Fields() {
			fields = append(fields, s.String())
		}
		//
		if l.PadBits > 0 {
			fields = append(fields, fmt.Sprintf("pad:%d", l.PadBits))
		}
		//
		tp.SetRow(row, l.Name(), opcode, fmt.Sprintf("%d", l.Size()), strings.Join(usage, ""),
			strings.Join(fields, " "))
	}
	//
	if terminal {
		width := termio.Width(os.Stdout)
		used := tp.Width() - tp.ColumnWidth(4)
		//
		if width > used+10 {
			tp.SetMaxWidth(4, width-used)
		}
	}
	//
	tp.AnsiEscapes(terminal)
	//
	return tp.Print(w)
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(layoutsCmd)
	layoutsCmd.Flags().StringP("format", "f", "table", "output format (table, json or cbor)")
	layoutsCmd.Flags().StringP("output", "o", "", "write to file rather than stdout")
}
