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
package util

import (
	"slices"
)

// Permutations returns every ordering of the given items, generated using
// Heap's algorithm.  The input is not modified.  For n items there are n!
// orderings, hence this is only intended for small inputs (e.g. amplifier
// phase settings).
func Permutations[T any](items []T) [][]T {
	var (
		perms [][]T
		state = slices.Clone(items)
		// Counters for each position
		counters = make([]int, len(items))
	)
	//
	perms = append(perms, slices.Clone(state))
	//
	for i := 1; i < len(state); {
		if counters[i] < i {
			if i%2 == 0 {
				state[0], state[i] = state[i], state[0]
			} else {
				state[counters[i]], state[i] = state[i], state[counters[i]]
			}
			//
			perms = append(perms, slices.Clone(state))
			counters[i]++
			i = 1
		} else {
			counters[i] = 0
			i++
		}
	}
	//
	return perms
}

