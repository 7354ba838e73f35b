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
package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path"

	"github.com/consensys/go-clgen/pkg/cl"
	"github.com/consensys/go-clgen/pkg/layout"
	"github.com/consensys/go-clgen/pkg/v3d"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Uint("seed", 1, "Seed for the random number generator")
	rootCmd.Flags().Uint("size", 4096, "Size of the generated image (in bytes)")
	rootCmd.Flags().Uint("tiles", 4, "Number of tiles in each dimension")
	rootCmd.Flags().String("dir", "testdata", "Directory to write images into")
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "testgen model",
	Short: "Test image generation utility for clgen.",
	Long: `Generate a memory image containing control lists for a given model, for use
	when testing the disasm and search commands.  The first byte of the image has
	address zero.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		var cfg TestGenConfig
		// Lookup model
		cfg.model = findModel(args[0])
		cfg.seed = getUint(cmd, "seed")
		cfg.size = getUint(cmd, "size")
		cfg.tiles = getUint(cmd, "tiles")
		//
		codec, err := cl.NewCodec(v3d.Registry(), layout.PadTrailingBits)
		if err != nil {
			panic(err)
		}
		//
		image := generateImage(cfg, codec)
		writeImage(path.Join(getString(cmd, "dir"), cfg.model.Name+".bin"), image)
	},
}

// TestGenConfig encapsulates configuration related to image generation.
type TestGenConfig struct {
	model Model
	seed  uint
	size  uint
	tiles uint
}

// Model represents a hard-coded layout of control lists within an image.
type Model struct {
	// Name of the model in question
	Name string
	// Builder writes the control lists into the image.
	Builder func(*ImageBuilder)
}

var models = []Model{
	{"binning", binningModel},
	{"rendering", renderingModel},
}

func findModel(name string) Model {
	for _, m := range models {
		if m.Name == name {
			return m
		}
	}
	//
	panic(fmt.Sprintf("unknown model \"%s\"", name))
}

// ImageBuilder emits instructions into an image at given addresses.
type ImageBuilder struct {
	codec *cl.Codec
	rand  *rand.Rand
	tiles uint
	bytes []byte
	// Address at which the next instruction is emitted.
	addr uint32
}

// Org moves the emission address.
func (p *ImageBuilder) Org(addr uint32) {
	p.addr = addr
}

// Emit an instruction at the current address.
func (p *ImageBuilder) Emit(name string, values ...uint64) {
	rest, err := p.codec.Emit(p.bytes[p.addr:], name, values...)
	if err != nil {
		panic(err)
	}
	//
	p.addr = uint32(len(p.bytes) - len(rest))
}

func generateImage(cfg TestGenConfig, codec *cl.Codec) []byte {
	var (
		rng     = rand.New(rand.NewPCG(uint64(cfg.seed), 0))
		builder = &ImageBuilder{codec, rng, cfg.tiles, make([]byte, cfg.size), 0}
	)
	// Fill with noise, so that nothing is found by accident.
	for i := range builder.bytes {
		builder.bytes[i] = uint8(rng.IntN(256))
	}
	//
	cfg.model.Builder(builder)
	//
	return builder.bytes
}

func writeImage(filename string, bytes []byte) {
	// Write the file
	if err := os.WriteFile(filename, bytes, 0644); err != nil {
		panic(err)
	}
	// Log what happened
	log.Infof("Wrote %s (%d bytes)\n", filename, len(bytes))
}

// ============================================================================
// Models
// ============================================================================

// Shader record (16 byte aligned) followed by its attribute arrays.
const shaderRecordAddr = 0x400

func emitShaderRecord(b *ImageBuilder, nattrs uint) {
	b.Org(shaderRecordAddr)
	b.Emit(v3d.SHADER_RECORD, 0, 1, 2, 0x1000, 0x1100, 4, 1, 16, 0x1200, 0x1300, 4, 1, 16, 0x1400, 0x1500)
	//
	for i := uint64(0); i < uint64(nattrs); i++ {
		b.Emit(v3d.ATTR_ARRAY_RECORD, 0x2000+i*0x100, 15, 16, i*4, i*4)
	}
}

// A binning list which starts with the sequence found by the search command.
func binningModel(b *ImageBuilder) {
	var (
		base  = uint32(0x100 + 4*b.rand.IntN(16))
		tiles = uint64(b.tiles)
	)
	//
	b.Org(base)
	b.Emit("STATE_TILE_BINNING_MODE", 0x8000, 0x4000, 0xc000, tiles, tiles, 0, 0, 1, 0, 2, 0)
	b.Emit("START_TILE_BINNING")
	b.Emit("PRIMITIVE_LIST_FORMAT", 2, 1)
	b.Emit("STATE_CLIP_WINDOW", 0, 0, tiles*64, tiles*64)
	b.Emit("STATE_VIEWPORT_OFFSET", 0, 0)
	b.Emit("STATE_CFG", 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 0, 0)
	b.Emit("GL_SHADER", 1, 0, shaderRecordAddr>>4)
	b.Emit("VERTEX_PRIM_LIST", 4, 3, 0x3000)
	b.Emit("FLUSH")
	b.Emit("HALT")
	//
	emitShaderRecord(b, 1)
}

// A rendering list which draws each tile via a shared sub-list.
func renderingModel(b *ImageBuilder) {
	const sublist = 0x300
	//
	tiles := uint64(b.tiles)
	//
	b.Org(0x100)
	b.Emit("STATE_CLEARCOL", 0xff00ff00, 0xff00ff00, 0xffffff, 0, 0)
	b.Emit("STATE_TILE_RENDERING_MODE", 0x10000, tiles*64, tiles*64, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0)
	//
	for row := uint64(0); row < tiles; row++ {
		for col := uint64(0); col < tiles; col++ {
			b.Emit("STATE_TILE_COORDS", col, row)
			b.Emit("BRANCH_SUB", sublist)
			//
			if row == tiles-1 && col == tiles-1 {
				b.Emit("STORE_SUBSAMPLE_EOF")
			} else {
				b.Emit("STORE_SUBSAMPLE")
			}
		}
	}
	//
	b.Emit("HALT")
	// Shared sub-list
	b.Org(sublist)
	b.Emit("GL_SHADER", 2, 0, shaderRecordAddr>>4)
	b.Emit("INDEXED_PRIM_LIST", 4, 1, 6, 0x3000, 3)
	b.Emit("RETURN")
	//
	emitShaderRecord(b, 2)
}

func getUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}
