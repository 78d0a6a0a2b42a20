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

import "strings"

// instructionToString returns a string representation of an instruction as its
// mnemonic followed by its operands, separated by a comma.
func instructionToString(insn Instruction) string {
	var builder strings.Builder
	//
	builder.WriteString(insn.Opcode().String())
	//
	for i, operand := range insn.Operands() {
		if i == 0 {
			builder.WriteString(" ")
		} else {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(operand.String())
	}
	//
	return builder.String()
}
