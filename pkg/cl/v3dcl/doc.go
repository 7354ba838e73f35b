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

// Package v3dcl holds the generated Go operations for the V3D control list
// instruction set.  Regenerate with "go generate" after changing the registry.
package v3dcl

//go:generate go run github.com/consensys/go-clgen/cmd/clgen generate --target go --output v3d_cl_instr_autogen
