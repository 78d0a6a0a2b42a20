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

// Status describes the state of a machine, as determined by the instruction at
// its program counter.
type Status uint8

// READY indicates the machine can execute its next instruction.
const READY Status = 0

// BLOCKED indicates the next instruction is an input, but the input queue is
// empty.  The machine becomes ready again once input is added.
const BLOCKED Status = 1

// HALTED indicates the next instruction is a halt.  This is terminal.
const HALTED Status = 2

// FAULTED indicates the machine has aborted with an error, and its remaining
// state is unusable.  This is terminal.
const FAULTED Status = 3

func (p Status) String() string {
	switch p {
	case READY:
		return "ready"
	case BLOCKED:
		return "blocked"
	case HALTED:
		return "halted"
	default:
		return "faulted"
	}
}

// IsTerminal checks whether no further execution is possible from this status.
func (p Status) IsTerminal() bool {
	return p == HALTED || p == FAULTED
}
