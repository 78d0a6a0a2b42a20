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

// DEFAULT_CHUNK is the number of steps executed at a time when running a
// machine to completion.
const DEFAULT_CHUNK = 1024

// Core captures the ability to execute a machine in bounded chunks.
type Core interface {
	// Execute the machine for the given number of steps, returning the actual
	// number of steps executed and an error (if execution failed).
	Execute(steps uint) (uint, error)
}

// ExecuteAll executes a given machine until it can make no further progress in
// chunks of n steps, returning the number of steps executed and/or any error
// arising.  A chunk size of zero is treated as one.
func ExecuteAll[M Core](machine M, n uint) (uint, error) {
	var nsteps uint
	//
	n = max(n, 1)
	//
	for {
		// Execute upto n steps
		m, err := machine.Execute(n)
		// update the tally
		nsteps += m
		// check for termination
		if err != nil || m < n {
			return nsteps, err
		}
	}
}
