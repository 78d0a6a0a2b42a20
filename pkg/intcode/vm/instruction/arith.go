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

// Add represents an instruction of the following form:
//
// target := lhs + rhs
//
// Overflow wraps around, as for any signed 64bit arithmetic.
type Add struct {
	Lhs, Rhs, Target Operand
}

// Opcode implementation for Instruction interface.
func (p *Add) Opcode() Opcode { return ADD }

// Operands implementation for Instruction interface.
func (p *Add) Operands() []Operand { return []Operand{p.Lhs, p.Rhs, p.Target} }

// Execute implementation for Instruction interface.
func (p *Add) Execute(state State) (int64, error) {
	return executeBinary(state, p, func(l, r int64) int64 { return l + r })
}

func (p *Add) String() string {
	return instructionToString(p)
}

// Mul represents an instruction of the following form:
//
// target := lhs * rhs
type Mul struct {
	Lhs, Rhs, Target Operand
}

// Opcode implementation for Instruction interface.
func (p *Mul) Opcode() Opcode { return MUL }

// Operands implementation for Instruction interface.
func (p *Mul) Operands() []Operand { return []Operand{p.Lhs, p.Rhs, p.Target} }

// Execute implementation for Instruction interface.
func (p *Mul) Execute(state State) (int64, error) {
	return executeBinary(state, p, func(l, r int64) int64 { return l * r })
}

func (p *Mul) String() string {
	return instructionToString(p)
}

// LessThan represents an instruction of the following form:
//
// target := (lhs < rhs) ? 1 : 0
type LessThan struct {
	Lhs, Rhs, Target Operand
}

// Opcode implementation for Instruction interface.
func (p *LessThan) Opcode() Opcode { return LESS_THAN }

// Operands implementation for Instruction interface.
func (p *LessThan) Operands() []Operand { return []Operand{p.Lhs, p.Rhs, p.Target} }

// Execute implementation for Instruction interface.
func (p *LessThan) Execute(state State) (int64, error) {
	return executeBinary(state, p, func(l, r int64) int64 { return boolToWord(l < r) })
}

func (p *LessThan) String() string {
	return instructionToString(p)
}

// Equals represents an instruction of the following form:
//
// target := (lhs == rhs) ? 1 : 0
type Equals struct {
	Lhs, Rhs, Target Operand
}

// Opcode implementation for Instruction interface.
func (p *Equals) Opcode() Opcode { return EQUALS }

// Operands implementation for Instruction interface.
func (p *Equals) Operands() []Operand { return []Operand{p.Lhs, p.Rhs, p.Target} }

// Execute implementation for Instruction interface.
func (p *Equals) Execute(state State) (int64, error) {
	return executeBinary(state, p, func(l, r int64) int64 { return boolToWord(l == r) })
}

func (p *Equals) String() string {
	return instructionToString(p)
}

// Execute a three-operand instruction which reads its first two operands,
// combines them, and writes the result to its third.
func executeBinary(state State, insn Instruction, fn func(int64, int64) int64) (int64, error) {
	var operands = insn.Operands()
	//
	lhs, err := state.Load(operands[0])
	if err != nil {
		return 0, err
	}
	//
	rhs, err := state.Load(operands[1])
	if err != nil {
		return 0, err
	}
	//
	if err := state.Store(operands[2], fn(lhs, rhs)); err != nil {
		return 0, err
	}
	//
	return Next(state.PC(), insn), nil
}

func boolToWord(b bool) int64 {
	if b {
		return 1
	}
	//
	return 0
}
