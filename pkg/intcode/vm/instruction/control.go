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

// AdjustBase adds the value of its parameter to the relative base.
type AdjustBase struct {
	Delta Operand
}

// Opcode implementation for Instruction interface.
func (p *AdjustBase) Opcode() Opcode { return ADJUST_BASE }

// Operands implementation for Instruction interface.
func (p *AdjustBase) Operands() []Operand { return []Operand{p.Delta} }

// Execute implementation for Instruction interface.
func (p *AdjustBase) Execute(state State) (int64, error) {
	delta, err := state.Load(p.Delta)
	if err != nil {
		return 0, err
	}
	//
	state.AdjustBase(delta)
	//
	return Next(state.PC(), p), nil
}

func (p *AdjustBase) String() string {
	return instructionToString(p)
}

// Halt terminates execution.  Executing it has no effect, and the program
// counter remains on it indefinitely.
type Halt struct{}

// Opcode implementation for Instruction interface.
func (p *Halt) Opcode() Opcode { return HALT }

// Operands implementation for Instruction interface.
func (p *Halt) Operands() []Operand { return nil }

// Execute implementation for Instruction interface.
func (p *Halt) Execute(state State) (int64, error) {
	return int64(state.PC()), nil
}

func (p *Halt) String() string {
	return "halt"
}
