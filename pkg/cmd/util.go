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
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/consensys/go-clgen/pkg/cl"
	"github.com/consensys/go-clgen/pkg/config"
	"github.com/consensys/go-clgen/pkg/layout"
	"github.com/consensys/go-clgen/pkg/v3d"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expectedsigned int, or panic if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetAddress gets an expected address flag (given in hex, with or without a
// leading "0x"), or exits if it is malformed.
func GetAddress(cmd *cobra.Command, flag string) uint32 {
	addr, err := parseAddress(GetString(cmd, flag))
	if err != nil {
		fmt.Printf("--%s: %s\n", flag, err)
		os.Exit(2)
	}

	return addr
}

// Parse a 32-bit address given in hex.
func parseAddress(text string) (uint32, error) {
	text = strings.TrimPrefix(strings.ToLower(text), "0x")
	//
	if text == "" {
		return 0, errors.New("empty address")
	}
	//
	addr, err := strconv.ParseUint(text, 16, 32)
	//
	return uint32(addr), err
}

// Load the configuration file named by the --config flag, then apply any
// explicitly given flags on top.
func loadConfig(cmd *cobra.Command) *config.Config {
	cfg, err := config.Load(GetString(cmd, "config"))
	//
	if err != nil {
		log.Error(err)
		os.Exit(2)
	}
	//
	overrides := []struct {
		flag  string
		field *string
	}{
		{"namespace", &cfg.Namespace},
		{"target", &cfg.Target},
		{"output", &cfg.Output},
		{"package", &cfg.Package},
		{"runtime-import", &cfg.RuntimeImport},
	}
	//
	for _, o := range overrides {
		if cmd.Flags().Changed(o.flag) {
			*o.field = GetString(cmd, o.flag)
		}
	}
	//
	if cmd.Flags().Changed("reject-unaligned") && GetFlag(cmd, "reject-unaligned") {
		cfg.Alignment = layout.RejectUnaligned.String()
	}
	//
	if err := cfg.Validate(); err != nil {
		log.Error(err)
		os.Exit(2)
	}
	//
	log.Debugf("configuration: %+v", *cfg)
	//
	return cfg
}

// Construct the codec for the V3D instruction set, which cannot fail unless the
// built-in registry is broken.
func newV3DCodec() *cl.Codec {
	codec, err := cl.NewCodec(v3d.Registry(), layout.PadTrailingBits)
	if err != nil {
		panic(err)
	}

	return codec
}

// Read a memory image from a file, where the first byte of the file has the
// given address.
func readImage(filename string, base uint32) cl.Image {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return cl.Image{Base: base, Bytes: bytes}
}

// Log each error in turn, unwrapping any joined errors.
func logErrors(err error) {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			logErrors(e)
		}
	} else if err != nil {
		log.Error(err)
	}
}
