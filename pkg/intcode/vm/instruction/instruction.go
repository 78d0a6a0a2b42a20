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

// State provides the view of an executing machine needed to execute a single
// instruction.  Parameter resolution (i.e. applying addressing modes) is the
// responsibility of the state, such that instructions only deal with operands.
type State interface {
	// PC returns the address of the instruction being executed.
	PC() uint64
	// Load the value of a given (read) operand, resolving its addressing mode.
	Load(operand Operand) (int64, error)
	// Store a value to the address identified by a given (write) operand.
	Store(operand Operand, value int64) error
	// ReadInput removes and returns the oldest value from the input queue, or
	// returns false if the queue is empty.
	ReadInput() (int64, bool)
	// WriteOutput appends a value to the output queue.
	WriteOutput(value int64)
	// AdjustBase adds a given delta to the relative base.
	AdjustBase(delta int64)
}

// Instruction provides an abstract notion of a "machine instruction".  That is,
// a single atomic unit which can be executed against the state of a machine.
// Instructions are decoded afresh from memory on every step, and are never
// cached, since programs are free to modify their own code.
type Instruction interface {
	// Opcode identifies the kind of this instruction.
	Opcode() Opcode
	// Operands returns the parameters of this instruction in order.
	Operands() []Operand
	// Execute this instruction against a given state, returning the program
	// counter of the next instruction to execute.  An instruction which cannot
	// proceed (e.g. an input with nothing to read) returns the current program
	// counter, and makes no change to the state.
	Execute(state State) (int64, error)
	// Provide human readable form of instruction
	String() string
}

// Width returns the number of words occupied by a given instruction, including
// the instruction word itself.
func Width(insn Instruction) uint {
	return insn.Opcode().Width()
}

// Next returns the program counter immediately following a given instruction
// at a given position.
func Next(pc uint64, insn Instruction) int64 {
	return int64(pc) + int64(Width(insn))
}
