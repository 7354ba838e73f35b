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
	"os"
	"path/filepath"

	"github.com/consensys/bavard"
	"github.com/consensys/go-clgen/pkg/cmd/generate"
	"github.com/consensys/go-clgen/pkg/config"
	sc "github.com/consensys/go-clgen/pkg/schema"
	"github.com/consensys/go-clgen/pkg/v3d"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate [flags]",
	Short: "generate source code for the V3D control list instruction set.",
	Long: `Generate packed instruction layouts for the V3D control list instruction
	set, along with functions for emitting, disassembling and stepping over
	instructions.  Settings are read from the configuration file (if present),
	and any flags given explicitly take precedence.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)
		//
		files, err := generateFiles(cfg)
		//
		if err != nil {
			logErrors(err)
			os.Exit(1)
		}
		//
		for _, f := range files {
			log.Infof("wrote %s", f)
		}
	},
}

// Generate the files described by a given configuration, returning the names
// of the files written.  Nothing is written unless generation succeeds for all
// definitions.
func generateFiles(cfg *config.Config) ([]string, error) {
	options, err := cfg.Options()
	//
	if err != nil {
		return nil, err
	}
	//
	registry := v3d.Registry()
	output, err := generate.Generate(registry, cfg.Target, options)
	//
	if err != nil {
		return nil, err
	}
	// Go files are written by bavard, which also runs gofmt.
	if cfg.Target == "go" {
		return writeGoFiles(cfg.Dir(), registry, options)
	}
	//
	files := output.Files("")
	names := []string{files[0][0], files[1][0]}
	//
	return commitFiles(cfg.Dir(), names, func(i int, path string) error {
		return os.WriteFile(path, []byte(files[i][1]), 0644)
	})
}

func writeGoFiles(dir string, registry *sc.Registry, options generate.Options) ([]string, error) {
	unit, err := generate.Prepare(registry, options)
	//
	if err != nil {
		return nil, err
	}
	//
	files, err := generate.GoFiles(unit)
	//
	if err != nil {
		return nil, err
	}
	//
	names := make([]string, len(files))
	//
	for i, f := range files {
		names[i] = f.Name
	}
	// The license header is part of the template, so the output does not
	// depend on when it was generated.
	return commitFiles(dir, names, func(i int, path string) error {
		return bavard.GenerateFromString(path, []string{files[i].Source()}, files[i].Data,
			bavard.Import(false), bavard.Format(true))
	})
}

// Write a set of files into a staging directory within dir, and then move them
// into place.  Should any write fail, no file is moved.
func commitFiles(dir string, names []string, write func(int, string) error) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	//
	staging, err := os.MkdirTemp(dir, ".clgen-")
	//
	if err != nil {
		return nil, err
	}
	//
	defer os.RemoveAll(staging)
	//
	for i, name := range names {
		if err := write(i, filepath.Join(staging, name)); err != nil {
			return nil, fmt.Errorf("writing %s: %w", name, err)
		}
	}
	//
	paths := make([]string, len(names))
	//
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
		//
		if err := os.Rename(filepath.Join(staging, name), paths[i]); err != nil {
			return paths[:i], err
		}
	}
	//
	return paths, nil
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringP("config", "c", config.DefaultFile, "configuration file")
	generateCmd.Flags().StringP("target", "t", "c", fmt.Sprintf("target language %v", generate.Targets()))
	generateCmd.Flags().StringP("output", "o", generate.DefaultOptions().Base,
		"base path of generated files (without extension)")
	generateCmd.Flags().String("namespace", "", "prefix of generated constants")
	generateCmd.Flags().String("package", generate.DefaultOptions().Package, "package of generated Go code")
	generateCmd.Flags().String("runtime-import", generate.DefaultOptions().RuntimeImport,
		"import path of the bit packing package used by generated Go code")
	generateCmd.Flags().Bool("reject-unaligned", false, "reject layouts which are not a whole number of bytes")
}
