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

// Input reads the oldest value from the input queue and stores it into its
// target.  When the input queue is empty, the instruction cannot proceed and
// the machine is considered "blocked" on it.
type Input struct {
	Target Operand
}

// Opcode implementation for Instruction interface.
func (p *Input) Opcode() Opcode { return INPUT }

// Operands implementation for Instruction interface.
func (p *Input) Operands() []Operand { return []Operand{p.Target} }

// Execute implementation for Instruction interface.
func (p *Input) Execute(state State) (int64, error) {
	value, ok := state.ReadInput()
	// Check whether blocked
	if !ok {
		return int64(state.PC()), nil
	}
	//
	if err := state.Store(p.Target, value); err != nil {
		return 0, err
	}
	//
	return Next(state.PC(), p), nil
}

func (p *Input) String() string {
	return instructionToString(p)
}

// Output appends the value of its source to the output queue.
type Output struct {
	Source Operand
}

// Opcode implementation for Instruction interface.
func (p *Output) Opcode() Opcode { return OUTPUT }

// Operands implementation for Instruction interface.
func (p *Output) Operands() []Operand { return []Operand{p.Source} }

// Execute implementation for Instruction interface.
func (p *Output) Execute(state State) (int64, error) {
	value, err := state.Load(p.Source)
	if err != nil {
		return 0, err
	}
	//
	state.WriteOutput(value)
	//
	return Next(state.PC(), p), nil
}

func (p *Output) String() string {
	return instructionToString(p)
}
