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

// Package v3d defines the control list instruction set of the VideoCore IV
// 3D pipeline (V3D).  Control lists are flat byte streams of instructions,
// each starting with a one byte opcode followed by tightly packed bit-fields.
package v3d

import sc "github.com/consensys/go-clgen/pkg/schema"

// Namespace prefixes every opcode constant generated for this instruction set.
const Namespace = "V3D_HW_INSTR"

// Opcodes referenced directly by the control list walker.
const (
	HALT                    = uint8(0)
	START_TILE_BINNING      = uint8(6)
	BRANCH                  = uint8(16)
	BRANCH_SUB              = uint8(17)
	RETURN                  = uint8(18)
	PRIMITIVE_LIST_FORMAT   = uint8(56)
	GL_SHADER               = uint8(64)
	STATE_TILE_BINNING_MODE = uint8(112)
	STATE_TILE_COORDS       = uint8(115)
)

// Names of the records referenced from GL_SHADER.
const (
	SHADER_RECORD     = "SHADER_RECORD"
	ATTR_ARRAY_RECORD = "ATTR_ARRAY_RECORD"
)

var instructions = []sc.Instruction{
	sc.NewInstruction("HALT", 0, true, true),
	sc.NewInstruction("NOP", 1, true, true),
	sc.NewInstruction("FLUSH", 4, false, true),
	sc.NewInstruction("FLUSH_ALL_STATE", 5, false, true),
	sc.NewInstruction("START_TILE_BINNING", 6, false, true),
	sc.NewInstruction("INCR_SEMAPHORE", 7, true, true),
	sc.NewInstruction("WAIT_SEMAPHORE", 8, true, true),
	sc.NewInstruction("BRANCH", 16, true, true,
		sc.F("branch_addr", 32)),
	sc.NewInstruction("BRANCH_SUB", 17, true, true,
		sc.F("branch_addr", 32)),
	sc.NewInstruction("RETURN", 18, true, true),
	sc.NewInstruction("STORE_SUBSAMPLE", 24, true, false),
	sc.NewInstruction("STORE_SUBSAMPLE_EOF", 25, true, false),
	sc.NewInstruction("STORE_FULL", 26, true, false,
		sc.F("disable_colour_write", 1),
		sc.F("disable_z_write", 1),
		sc.F("disable_clear_on_write", 1),
		sc.F("last_tile", 1),
		sc.F("tile_addr", 28)),
	sc.NewInstruction("LOAD_FULL", 27, true, false,
		sc.F("disable_colour_read", 1),
		sc.F("disable_z_read", 1),
		sc.F("UNUSED", 2),
		sc.F("tile_addr", 28)),
	sc.NewInstruction("STORE_GENERAL", 28, true, false,
		sc.F("buffer", 3),
		sc.F("UNUSED0", 1),
		sc.F("format", 2),
		sc.F("mode", 2),
		sc.F("pixel_colour_format", 2),
		sc.F("UNUSED1", 2),
		sc.F("disable_double_buf_swap", 1),
		sc.F("disable_colour_clear", 1),
		sc.F("disable_z_clear", 1),
		sc.F("disable_vg_clear", 1),
		sc.F("disable_colour_dump", 1),
		sc.F("disable_z_dump", 1),
		sc.F("disable_vg_dump", 1),
		sc.F("last_tile", 1),
		sc.F("frame_addr", 28)),
	sc.NewInstruction("LOAD_GENERAL", 29, true, false,
		sc.F("buffer", 3),
		sc.F("UNUSED0", 1),
		sc.F("format", 2),
		sc.F("UNUSED1", 2),
		sc.F("pixel_colour_format", 2),
		sc.F("UNUSED2", 2),
		sc.F("disable_colour_load", 1),
		sc.F("disable_z_load", 1),
		sc.F("disable_vg_load", 1),
		sc.F("UNUSED3", 1),
		sc.F("frame_addr", 28)),
	sc.NewInstruction("INDEXED_PRIM_LIST", 32, true, true,
		sc.F("prim_mode", 4),
		sc.F("index_type", 4),
		sc.F("length", 32),
		sc.F("indices_addr", 32),
		sc.F("maximum_index", 32)),
	sc.NewInstruction("VERTEX_PRIM_LIST", 33, true, true,
		sc.F("prim_mode", 8),
		sc.F("length", 32),
		sc.F("vertices_addr", 32)),
	sc.NewInstruction("VG_COORD_LIST", 41, true, true,
		sc.F("prim_mode", 4),
		sc.F("continuation_list", 4),
		sc.F("length", 32),
		sc.F("coord_addr", 32)),
	sc.NewInstruction("VG_INLINE_LIST", 42, true, true,
		sc.F("prim_mode", 4),
		sc.F("continuation_list", 4),
		sc.F("coord_list_BROKEN", 32)),
	sc.NewInstruction("COMPRESSED_PRIM_LIST", 48, true, false,
		sc.F("BROKEN", 8)),
	sc.NewInstruction("CLIPPED_PRIM", 49, true, false,
		sc.F("clip_flags", 3),
		sc.F("clip_addr_addr", 29),
		sc.F("BROKEN", 8)),
	sc.NewInstruction("PRIMITIVE_LIST_FORMAT", 56, true, false,
		sc.F("prim_type", 4),
		sc.F("data_type", 4)),
	sc.NewInstruction("GL_SHADER", 64, true, true,
		sc.F("num_attr_arrays", 3),
		sc.F("extended_record", 1),
		sc.F("shader_record_addr", 28)),
	sc.NewInstruction("NV_SHADER", 65, true, true,
		sc.F("shader_record_addr", 32)),
	sc.NewInstruction("VG_SHADER", 66, true, true,
		sc.F("shader_record_addr", 32)),
	sc.NewInstruction("INLINE_VG_SHADER", 67, true, true,
		sc.F("threading", 3),
		sc.F("fragment_shader_code_addr", 29),
		sc.F("fragment_shader_uniforms_addr", 32)),
	sc.NewInstruction("STATE_CFG", 96, true, true,
		sc.F("enable_forward_face", 1),
		sc.F("enable_rear_face", 1),
		sc.F("clockwise_prims", 1),
		sc.F("enable_depth_offset", 1),
		sc.F("aa_lines", 1),
		sc.F("cov_read_type", 1),
		sc.F("rast_oversample_mode", 2),
		sc.F("cov_pipe_select", 1),
		sc.F("cov_update_mode", 2),
		sc.F("cov_read_mode", 1),
		sc.F("depth_test_func", 3),
		sc.F("z_update_enable", 1),
		sc.F("early_z_enable", 1),
		sc.F("early_z_update_enable", 1),
		sc.F("UNUSED", 6)),
	sc.NewInstruction("STATE_FLATSHADE", 97, true, true,
		sc.F("flatshade_flags", 32)),
	sc.NewInstruction("STATE_POINT_SIZE", 98, true, true,
		sc.F("point_size", 32)),
	sc.NewInstruction("STATE_LINE_WIDTH", 99, true, true,
		sc.F("line_width", 32)),
	sc.NewInstruction("STATE_RHTX", 100, true, true,
		sc.F("rht_primtive_x", 16)),
	sc.NewInstruction("STATE_DEPTH_OFFSET", 101, true, true,
		sc.F("depth_offset_factor", 16),
		sc.F("depth_offset_units", 16)),
	sc.NewInstruction("STATE_CLIP_WINDOW", 102, true, true,
		sc.F("left", 16),
		sc.F("bottom", 16),
		sc.F("width", 16),
		sc.F("height", 16)),
	sc.NewInstruction("STATE_VIEWPORT_OFFSET", 103, true, true,
		sc.F("viewport_x", 16),
		sc.F("viewport_y", 16)),
	sc.NewInstruction("STATE_CLIPZ", 104, true, true,
		sc.F("min_z", 32),
		sc.F("max_z", 32)),
	sc.NewInstruction("STATE_CLIPPER_XY", 105, false, true,
		sc.F("viewport_half_width", 32),
		sc.F("viewport_half_height", 32)),
	sc.NewInstruction("STATE_CLIPPER_Z", 106, false, true,
		sc.F("viewport_z_scale", 32),
		sc.F("viewport_z_offset", 32)),
	sc.NewInstruction("STATE_TILE_BINNING_MODE", 112, false, true,
		sc.F("tile_mem_addr", 32),
		sc.F("tile_mem_size", 32),
		sc.F("tile_state_addr", 32),
		sc.F("w_in_tiles", 8),
		sc.F("h_in_tiles", 8),
		sc.F("multisample", 1),
		sc.F("colour_64", 1),
		sc.F("auto_init_tile_state", 1),
		sc.F("tile_initial_block_size", 2),
		sc.F("tile_block_size", 2),
		sc.F("double_buffer", 1)),
	sc.NewInstruction("STATE_TILE_RENDERING_MODE", 113, true, true,
		sc.F("framebuffer_address", 32),
		sc.F("width", 16),
		sc.F("height", 16),
		sc.F("multisample", 1),
		sc.F("colour_64", 1),
		sc.F("colour_format", 2),
		sc.F("decimate_mode", 2),
		sc.F("memory_format", 2),
		sc.F("enable_vg_mask", 1),
		sc.F("coverage_mode", 1),
		sc.F("early_z_update_dir", 1),
		sc.F("early_z_disable", 1),
		sc.F("double_buffer", 1),
		sc.F("UNUSED", 3)),
	sc.NewInstruction("STATE_CLEARCOL", 114, true, true,
		sc.F("clear_colour0", 32),
		sc.F("clear_colour1", 32),
		sc.F("clear_z", 24),
		sc.F("clear_vg_mask", 8),
		sc.F("clear_stencil", 8)),
	sc.NewInstruction("STATE_TILE_COORDS", 115, true, true,
		sc.F("column", 8),
		sc.F("row", 8)),
}

// Shader and attribute array records are not control list instructions, but
// they are referenced from GL_SHADER and share the same packed layout rules.
var records = []sc.Instruction{
	sc.NewRecord(SHADER_RECORD,
		sc.F("flags", 16),
		sc.F("fs_num_uniforms", 8),
		sc.F("fs_num_varyings", 8),
		sc.F("fs_code_addr", 32),
		sc.F("fs_uniforms_addr", 32),
		sc.F("vs_num_uniforms", 16),
		sc.F("vs_attr_array_select", 8),
		sc.F("vs_total_attr_size", 8),
		sc.F("vs_code_addr", 32),
		sc.F("vs_uniforms_addr", 32),
		sc.F("cs_num_uniforms", 16),
		sc.F("cs_attr_array_select", 8),
		sc.F("cs_total_attr_size", 8),
		sc.F("cs_code_addr", 32),
		sc.F("cs_uniforms_addr", 32)),
	sc.NewRecord(ATTR_ARRAY_RECORD,
		sc.F("array_base_addr", 32),
		sc.F("array_size_bytes", 8),
		sc.F("array_stride", 8),
		sc.F("array_vs_vpm_offset", 8),
		sc.F("array_cs_vpm_offset", 8)),
}

// Registry returns the V3D control list instruction set.  Each call returns a
// fresh registry.
func Registry() *sc.Registry {
	return sc.NewRegistry(Namespace, instructions, records)
}
