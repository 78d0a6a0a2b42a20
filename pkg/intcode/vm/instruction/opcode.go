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

import "fmt"

// Opcode identifies the operation performed by an instruction.  This occupies
// the two least significant decimal digits of an instruction word.
type Opcode uint8

// ADD computes the sum of two parameters.
const ADD Opcode = 1

// MUL computes the product of two parameters.
const MUL Opcode = 2

// INPUT reads a value from the input queue.
const INPUT Opcode = 3

// OUTPUT writes a value to the output queue.
const OUTPUT Opcode = 4

// JUMP_IF_TRUE branches when its first parameter is non-zero.
const JUMP_IF_TRUE Opcode = 5

// JUMP_IF_FALSE branches when its first parameter is zero.
const JUMP_IF_FALSE Opcode = 6

// LESS_THAN compares two parameters for strict ordering.
const LESS_THAN Opcode = 7

// EQUALS compares two parameters for equality.
const EQUALS Opcode = 8

// ADJUST_BASE adds its parameter to the relative base.
const ADJUST_BASE Opcode = 9

// HALT terminates execution.
const HALT Opcode = 99

var opcodeNames = map[Opcode]string{
	ADD:           "add",
	MUL:           "mul",
	INPUT:         "in",
	OUTPUT:        "out",
	JUMP_IF_TRUE:  "jnz",
	JUMP_IF_FALSE: "jz",
	LESS_THAN:     "lt",
	EQUALS:        "eq",
	ADJUST_BASE:   "arb",
	HALT:          "halt",
}

var opcodeArity = map[Opcode]uint{
	ADD:           3,
	MUL:           3,
	INPUT:         1,
	OUTPUT:        1,
	JUMP_IF_TRUE:  2,
	JUMP_IF_FALSE: 2,
	LESS_THAN:     3,
	EQUALS:        3,
	ADJUST_BASE:   1,
	HALT:          0,
}

// IsValid checks whether this is one of the ten defined opcodes.
func (p Opcode) IsValid() bool {
	_, ok := opcodeArity[p]
	return ok
}

// Arity returns the number of parameters taken by this opcode.
func (p Opcode) Arity() uint {
	return opcodeArity[p]
}

// Width returns the number of words occupied by an instruction with this
// opcode, including the instruction word itself.
func (p Opcode) Width() uint {
	return 1 + p.Arity()
}

func (p Opcode) String() string {
	if name, ok := opcodeNames[p]; ok {
		return name
	}
	//
	return fmt.Sprintf("op%d", uint8(p))
}
