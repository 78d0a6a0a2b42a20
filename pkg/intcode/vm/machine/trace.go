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
package machine

import "github.com/consensys/go-intcode/pkg/intcode/vm/instruction"

// Tracer provides a hook for observing execution.  It is invoked immediately
// before each instruction executes, with the position of that instruction and
// the relative base at that moment.
type Tracer interface {
	Trace(pc uint64, base int64, insn instruction.Instruction)
}

// TracerFunc adapts an ordinary function into a Tracer.
type TracerFunc func(pc uint64, base int64, insn instruction.Instruction)

// Trace implementation for Tracer interface.
func (f TracerFunc) Trace(pc uint64, base int64, insn instruction.Instruction) {
	f(pc, base, insn)
}
