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
	"github.com/spf13/cobra"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search [flags] image",
	Short: "search a memory image for binning control lists.",
	Long: `Search a memory image for byte sequences which look like the start of a
	binning control list, printing the address of each.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		image := readImage(args[0], GetAddress(cmd, "base"))
		//
		printBinningLists(os.Stdout, image)
	},
}

func printBinningLists(w io.Writer, image cl.Image) {
	found := cl.SearchBinningLists(image)
	//
	if len(found) == 0 {
		fmt.Fprintf(w, "No bin lists found\n")
	}
	//
	for _, addr := range found {
		fmt.Fprintf(w, "Found a bin list beginning at %x\n", addr)
	}
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().String("base", "0", "address (hex) of the first byte of the image")
}
