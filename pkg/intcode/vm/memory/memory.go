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
package memory

// Memory represents the tape of an executing machine, which can be read or
// written without restrictions.  Initially, all locations hold zero, except
// those which were given by the program image.  Thus, reading a location which
// has not yet been written will return zero; otherwise, it will return the
// last value written.  Memory is unbounded in the positive direction, and
// addresses are never negative.
type Memory interface {
	// Read the word stored at a given address.
	Read(address uint64) int64
	// Write a given word to a given address, overwriting the previous value
	// stored at that address.
	Write(address uint64, value int64)
	// Len returns one more than the highest address which has been either
	// initialised or written.
	Len() uint64
	// Return the dense contents of this memory as a sequence of words,
	// starting from address zero.  Cells which are far beyond the end of the
	// program image may not be included.
	Contents() []int64
}
