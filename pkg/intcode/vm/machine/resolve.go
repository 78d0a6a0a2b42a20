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

import (
	"github.com/consensys/go-intcode/pkg/intcode/vm/instruction"
	"github.com/consensys/go-intcode/pkg/intcode/vm/memory"
)

// ReadParameter converts an operand into the value it denotes, for an
// instruction at a given position executing with a given relative base.
// Position operands denote the contents of the given address, immediate
// operands denote themselves and relative operands denote the contents of the
// given address offset by the relative base.
func ReadParameter(mem memory.Memory, pc uint64, operand instruction.Operand, base int64) (int64, error) {
	if operand.Mode == instruction.IMMEDIATE {
		return operand.Value, nil
	}
	//
	address, err := resolveAddress(pc, operand, base)
	if err != nil {
		return 0, err
	}
	//
	return mem.Read(address), nil
}

// WriteAddress converts the target operand of a given instruction into the
// address it denotes.  Immediate operands do not denote an address, and cannot
// be written.
func WriteAddress(pc uint64, opcode instruction.Opcode, operand instruction.Operand, base int64) (uint64, error) {
	if operand.Mode == instruction.IMMEDIATE {
		return 0, &ImmediateWriteError{pc, opcode}
	}
	//
	return resolveAddress(pc, operand, base)
}

func resolveAddress(pc uint64, operand instruction.Operand, base int64) (uint64, error) {
	var address = operand.Value
	//
	if operand.Mode == instruction.RELATIVE {
		address += base
	}
	//
	if address < 0 {
		return 0, &AddressError{pc, address}
	}
	//
	return uint64(address), nil
}

// executionState implements instruction.State for a given machine and the
// instruction currently being executed.
type executionState struct {
	machine *Machine
	opcode  instruction.Opcode
}

func (p executionState) PC() uint64 {
	return p.machine.pc
}

func (p executionState) Load(operand instruction.Operand) (int64, error) {
	return ReadParameter(p.machine.memory, p.machine.pc, operand, p.machine.base)
}

func (p executionState) Store(operand instruction.Operand, value int64) error {
	address, err := WriteAddress(p.machine.pc, p.opcode, operand, p.machine.base)
	if err != nil {
		return err
	}
	//
	p.machine.memory.Write(address, value)
	//
	return nil
}

func (p executionState) ReadInput() (int64, bool) {
	if p.machine.inputs.IsEmpty() {
		return 0, false
	}
	//
	return p.machine.inputs.Pop(), true
}

func (p executionState) WriteOutput(value int64) {
	p.machine.outputs.Push(value)
}

func (p executionState) AdjustBase(delta int64) {
	p.machine.base += delta
}
