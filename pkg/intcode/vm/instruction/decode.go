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

import (
	"fmt"

	"github.com/consensys/go-intcode/pkg/intcode/vm/memory"
)

// DecodeError indicates that the word at a given position in memory is not a
// valid instruction.
type DecodeError struct {
	// Position of the offending word
	PC uint64
	// The offending word
	Word int64
	// Description of what is wrong
	Reason string
}

func (p *DecodeError) Error() string {
	return fmt.Sprintf("invalid instruction %d at pc %d (%s)", p.Word, p.PC, p.Reason)
}

// DecodeWord splits an instruction word into its opcode and the addressing
// modes of its (upto) three parameters.  The opcode occupies the two least
// significant decimal digits, and each subsequent digit gives the mode of the
// next parameter, starting with the first.  Absent digits indicate POSITION
// mode.
func DecodeWord(word int64) (Opcode, [3]Mode, error) {
	var modes [3]Mode
	//
	if word < 0 {
		return 0, modes, fmt.Errorf("negative instruction word")
	}
	//
	opcode := Opcode(word % 100)
	if !opcode.IsValid() {
		return 0, modes, fmt.Errorf("unknown opcode %d", word%100)
	}
	//
	digits := word / 100
	//
	for i := range modes {
		mode := Mode(digits % 10)
		// Modes of unused parameters are irrelevant
		if uint(i) < opcode.Arity() && mode > RELATIVE {
			return 0, modes, fmt.Errorf("unknown mode %d for parameter %d", mode, i+1)
		} else if uint(i) < opcode.Arity() {
			modes[i] = mode
		}
		//
		digits /= 10
	}
	//
	if digits != 0 {
		return 0, modes, fmt.Errorf("too many mode digits")
	}
	//
	return opcode, modes, nil
}

// Decode the instruction at a given position in memory.  This depends only on
// the current contents of memory, and so must be repeated for every step.
func Decode(mem memory.Memory, pc uint64) (Instruction, error) {
	var word = mem.Read(pc)
	//
	opcode, modes, err := DecodeWord(word)
	if err != nil {
		return nil, &DecodeError{pc, word, err.Error()}
	}
	// Read operands
	operand := func(i uint64) Operand {
		return Operand{modes[i-1], mem.Read(pc + i)}
	}
	//
	switch opcode {
	case ADD:
		return &Add{operand(1), operand(2), operand(3)}, nil
	case MUL:
		return &Mul{operand(1), operand(2), operand(3)}, nil
	case INPUT:
		return &Input{operand(1)}, nil
	case OUTPUT:
		return &Output{operand(1)}, nil
	case JUMP_IF_TRUE:
		return &JumpIfTrue{operand(1), operand(2)}, nil
	case JUMP_IF_FALSE:
		return &JumpIfFalse{operand(1), operand(2)}, nil
	case LESS_THAN:
		return &LessThan{operand(1), operand(2), operand(3)}, nil
	case EQUALS:
		return &Equals{operand(1), operand(2), operand(3)}, nil
	case ADJUST_BASE:
		return &AdjustBase{operand(1)}, nil
	default:
		return &Halt{}, nil
	}
}
