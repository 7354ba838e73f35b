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

	"github.com/consensys/go-clgen/pkg/cmd/generate"
	"github.com/consensys/go-clgen/pkg/v3d"
	"github.com/davecgh/go-spew/spew"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// debugCmd represents the debug command
var debugCmd = &cobra.Command{
	Use:   "debug [flags]",
	Short: "print debug information about the instruction set.",
	Long:  `Print various debug information about the V3D instruction set and its derived layouts.`,
	Run: func(cmd *cobra.Command, args []string) {
		unit, err := prepareV3D()
		//
		if err != nil {
			logErrors(err)
			os.Exit(1)
		}
		//
		printStats(os.Stdout, unit)
		//
		if GetFlag(cmd, "dump") {
			dumper := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
			dumper.Fdump(os.Stdout, unit.Layouts)
		}
	},
}

// Validate the V3D instruction set and derive its layouts, using default
// options.
func prepareV3D() (*generate.Unit, error) {
	return generate.Prepare(v3d.Registry(), generate.DefaultOptions())
}

func printStats(w io.Writer, unit *generate.Unit) {
	var (
		rendering, binning uint
		bytes              uint
		largest            string
		largestSize        uint
	)
	//
	for _, ins := range unit.Registry.Instructions() {
		if ins.Rendering {
			rendering++
		}
		//
		if ins.Binning {
			binning++
		}
	}
	//
	for _, l := range unit.Layouts {
		bytes += l.Size()
		//
		if l.Size() > largestSize {
			largest, largestSize = l.Name(), l.Size()
		}
	}
	//
	log.Debugf("%d layouts totalling %d bytes", len(unit.Layouts), bytes)
	//
	fmt.Fprintf(w, "namespace:    %s\n", unit.Options.Namespace)
	fmt.Fprintf(w, "instructions: %d\n", len(unit.Registry.Instructions()))
	fmt.Fprintf(w, "records:      %d\n", len(unit.Registry.Records()))
	fmt.Fprintf(w, "rendering:    %d\n", rendering)
	fmt.Fprintf(w, "binning:      %d\n", binning)
	fmt.Fprintf(w, "largest:      %s (%d bytes)\n", largest, largestSize)
	fmt.Fprintf(w, "digest:       %s\n", unit.Digest())
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(debugCmd)
	debugCmd.Flags().Bool("dump", false, "dump derived layouts")
}
