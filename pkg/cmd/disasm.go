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
	"fmt"
	"io"
	"os"

	"github.com/consensys/go-clgen/pkg/cl"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// disasmCmd represents the disasm command
var disasmCmd = &cobra.Command{
	Use:   "disasm [flags] image start",
	Short: "disassemble a control list from a memory image.",
	Long: `Disassemble the control list at a given (hex) address within a memory image,
	following branches, sub-lists and shader records as they are encountered.
	Without an end address, the list runs until its first HALT, BRANCH or RETURN.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		start, err := parseAddress(args[1])
		//
		if err != nil {
			fmt.Printf("start address: %s\n", err)
			os.Exit(2)
		}
		//
		var (
			base  = GetAddress(cmd, "base")
			end   = GetAddress(cmd, "end")
			image = readImage(args[0], base)
		)
		//
		if err := disassemble(os.Stdout, image, start, end); err != nil {
			log.Warn("disassembly incomplete")
			logErrors(err)
			os.Exit(1)
		}
	},
}

func disassemble(out io.Writer, image cl.Image, start uint32, end uint32) error {
	fmt.Fprintf(out, "Disassembling CL start: %08x end: %08x\n", start, end)
	//
	walker := cl.NewWalker(newV3DCodec(), image, out)
	walker.AddList(start, end)
	//
	return walker.Run()
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(disasmCmd)
	disasmCmd.Flags().String("base", "0", "address (hex) of the first byte of the image")
	disasmCmd.Flags().String("end", "0", "address (hex) at which the list ends (0 for none)")
}
