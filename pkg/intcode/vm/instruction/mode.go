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

// Mode determines how the raw operand of an instruction is interpreted.
type Mode uint8

// POSITION indicates the operand is the address of the value.
const POSITION Mode = 0

// IMMEDIATE indicates the operand is the value itself.  This is only
// meaningful for parameters which are read, never for those which are written.
const IMMEDIATE Mode = 1

// RELATIVE indicates the operand is an offset from the relative base, giving
// the address of the value.
const RELATIVE Mode = 2

func (p Mode) String() string {
	switch p {
	case POSITION:
		return "position"
	case IMMEDIATE:
		return "immediate"
	case RELATIVE:
		return "relative"
	default:
		return fmt.Sprintf("mode%d", uint8(p))
	}
}

// Operand combines the raw operand of an instruction with its addressing mode.
type Operand struct {
	Mode  Mode
	Value int64
}

// Provide human readable form of operand.  Position operands are written
// "[n]", immediate operands "#n" and relative operands "[r+n]".
func (p Operand) String() string {
	switch p.Mode {
	case IMMEDIATE:
		return fmt.Sprintf("#%d", p.Value)
	case RELATIVE:
		if p.Value < 0 {
			return fmt.Sprintf("[r%d]", p.Value)
		}
		//
		return fmt.Sprintf("[r+%d]", p.Value)
	default:
		return fmt.Sprintf("[%d]", p.Value)
	}
}
