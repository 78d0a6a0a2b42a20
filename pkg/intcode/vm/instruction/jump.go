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
package instruction

// JumpIfTrue performs a conditional branch to a given target instruction when
// its condition is non-zero.  Observe that negative conditions also branch.
type JumpIfTrue struct {
	Condition, Target Operand
}

// Opcode implementation for Instruction interface.
func (p *JumpIfTrue) Opcode() Opcode { return JUMP_IF_TRUE }

// Operands implementation for Instruction interface.
func (p *JumpIfTrue) Operands() []Operand { return []Operand{p.Condition, p.Target} }

// Execute implementation for Instruction interface.
func (p *JumpIfTrue) Execute(state State) (int64, error) {
	return executeBranch(state, p, func(c int64) bool { return c != 0 })
}

func (p *JumpIfTrue) String() string {
	return instructionToString(p)
}

// JumpIfFalse performs a conditional branch to a given target instruction when
// its condition is zero.
type JumpIfFalse struct {
	Condition, Target Operand
}

// Opcode implementation for Instruction interface.
func (p *JumpIfFalse) Opcode() Opcode { return JUMP_IF_FALSE }

// Operands implementation for Instruction interface.
func (p *JumpIfFalse) Operands() []Operand { return []Operand{p.Condition, p.Target} }

// Execute implementation for Instruction interface.
func (p *JumpIfFalse) Execute(state State) (int64, error) {
	return executeBranch(state, p, func(c int64) bool { return c == 0 })
}

func (p *JumpIfFalse) String() string {
	return instructionToString(p)
}

func executeBranch(state State, insn Instruction, taken func(int64) bool) (int64, error) {
	var operands = insn.Operands()
	//
	cond, err := state.Load(operands[0])
	if err != nil {
		return 0, err
	}
	// Target is only resolved when needed
	if !taken(cond) {
		return Next(state.PC(), insn), nil
	}
	//
	return state.Load(operands[1])
}
