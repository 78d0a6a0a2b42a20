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
	"fmt"

	"github.com/consensys/go-intcode/pkg/intcode/vm/instruction"
)

// DecodeError indicates the machine encountered a word which is not a valid
// instruction.
type DecodeError = instruction.DecodeError

// AddressError indicates that a parameter, or jump target, resolved to a
// negative address.
type AddressError struct {
	// Position of the instruction being executed
	PC uint64
	// The offending address
	Address int64
}

func (p *AddressError) Error() string {
	return fmt.Sprintf("negative address %d at pc %d", p.Address, p.PC)
}

// ImmediateWriteError indicates that the target parameter of an instruction was
// given in immediate mode.
type ImmediateWriteError struct {
	// Position of the instruction being executed
	PC uint64
	// Opcode of the instruction being executed
	Opcode instruction.Opcode
}

func (p *ImmediateWriteError) Error() string {
	return fmt.Sprintf("immediate mode write target for \"%s\" at pc %d", p.Opcode, p.PC)
}

// QueueKind identifies one of the two queues of a machine.
type QueueKind uint8

// INPUT_QUEUE identifies the input queue of a machine.
const INPUT_QUEUE QueueKind = 0

// OUTPUT_QUEUE identifies the output queue of a machine.
const OUTPUT_QUEUE QueueKind = 1

func (p QueueKind) String() string {
	if p == INPUT_QUEUE {
		return "input"
	}
	//
	return "output"
}

// QueueUnderflowError indicates that a value was required from a queue which
// was empty, and never could be filled.  For the input queue, this arises when
// a machine is run to completion but becomes blocked.  For the output queue,
// this arises when a caller pops more output than has been produced.
type QueueUnderflowError struct {
	// Position of the machine at the time
	PC uint64
	// Queue which underflowed
	Queue QueueKind
}

func (p *QueueUnderflowError) Error() string {
	if p.Queue == INPUT_QUEUE {
		return fmt.Sprintf("deadlock waiting for input at pc %d", p.PC)
	}
	//
	return fmt.Sprintf("no output available at pc %d", p.PC)
}
