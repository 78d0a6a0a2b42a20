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
	"github.com/consensys/go-intcode/pkg/intcode/vm/memory"
)

// Listing is a single entry in the disassembly of a program image.  This is
// either a decoded instruction, or a single word of data which could not be
// decoded.
type Listing struct {
	// Address of the first word in this entry
	Address uint64
	// Raw words making up this entry
	Words []int64
	// Decoded instruction, or nil if this entry is data.
	Instruction Instruction
}

// IsData checks whether this entry could not be decoded as an instruction.
func (p Listing) IsData() bool {
	return p.Instruction == nil
}

// Disassemble a program image by decoding it linearly from address zero.  Since
// code and data are freely mixed in a program image, this is only a best
// effort: any word which does not decode, or whose operands would extend beyond
// the end of the image, is listed as data.
func Disassemble(image []int64) []Listing {
	var (
		mem      = memory.NewSparse(image...)
		n        = uint64(len(image))
		listings []Listing
	)
	//
	for pc := uint64(0); pc < n; {
		insn, err := Decode(mem, pc)
		//
		if err != nil || pc+uint64(Width(insn)) > n {
			listings = append(listings, Listing{pc, image[pc : pc+1], nil})
			pc++
		} else {
			width := uint64(Width(insn))
			listings = append(listings, Listing{pc, image[pc : pc+width], insn})
			pc += width
		}
	}
	//
	return listings
}
