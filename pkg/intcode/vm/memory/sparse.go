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

import (
	"bytes"
	"encoding/gob"
	"maps"
	"slices"
)

// MAX_GAP determines how far beyond the end of the dense region a write can
// occur before it is placed into the sparse region instead.  Writes within the
// gap simply extend the dense region.
const MAX_GAP = 4096

// Sparse is the default implementation of Memory.  It consists of a dense
// region starting from address zero (which initially holds the program image),
// and a sparse region holding isolated cells written far beyond the end of the
// dense region.  This allows programs to use arbitrarily large addresses for
// scratch storage without a huge contiguous allocation.
type Sparse struct {
	dense []int64
	far   map[uint64]int64
	// One more than the highest address in the sparse region (or zero).
	farEnd uint64
}

// NewSparse constructs a memory initialised with a given program image,
// starting from address zero.  The image is copied, so that memories built
// from the same image never alias each other.
func NewSparse(image ...int64) *Sparse {
	return &Sparse{slices.Clone(image), nil, 0}
}

// Read implementation for Memory interface.
func (p *Sparse) Read(address uint64) int64 {
	if address < uint64(len(p.dense)) {
		return p.dense[address]
	}
	// Reading from a nil map returns zero.
	return p.far[address]
}

// Write implementation for Memory interface.
func (p *Sparse) Write(address uint64, value int64) {
	var n = uint64(len(p.dense))
	//
	switch {
	case address < n:
		p.dense[address] = value
	case address-n <= MAX_GAP:
		p.grow(address + 1)
		p.dense[address] = value
	default:
		if p.far == nil {
			p.far = make(map[uint64]int64)
		}
		//
		p.far[address] = value
		p.farEnd = max(p.farEnd, address+1)
	}
}

// Len implementation for Memory interface.
func (p *Sparse) Len() uint64 {
	return max(uint64(len(p.dense)), p.farEnd)
}

// Contents implementation for Memory interface.  The returned slice is a copy
// of the dense region.
func (p *Sparse) Contents() []int64 {
	return slices.Clone(p.dense)
}

// Clone returns a deep copy of this memory.
func (p *Sparse) Clone() *Sparse {
	return &Sparse{slices.Clone(p.dense), maps.Clone(p.far), p.farEnd}
}

// Extend the dense region upto (but not including) a given address, pulling in
// any cells from the sparse region which now fall within it.
func (p *Sparse) grow(end uint64) {
	var start = uint64(len(p.dense))
	//
	p.dense = append(p.dense, make([]int64, end-start)...)
	//
	for addr, val := range p.far {
		if addr < end {
			p.dense[addr] = val
			delete(p.far, addr)
		}
	}
	// Recompute end of sparse region
	if len(p.far) == 0 {
		p.farEnd = 0
	}
}

// ============================================================================
// Encoding / Decoding
// ============================================================================

// sparseImage is the on-the-wire form of a sparse memory.
type sparseImage struct {
	Dense []int64
	Far   map[uint64]int64
}

// GobEncode a sparse memory.  This allows it to be marshalled into a binary
// form.
func (p *Sparse) GobEncode() (data []byte, err error) {
	var buffer bytes.Buffer
	//
	gobEncoder := gob.NewEncoder(&buffer)
	//
	if err := gobEncoder.Encode(sparseImage{p.dense, p.far}); err != nil {
		return nil, err
	}
	// Success
	return buffer.Bytes(), nil
}

// GobDecode a previously encoded sparse memory.
func (p *Sparse) GobDecode(data []byte) error {
	var (
		image      sparseImage
		gobDecoder = gob.NewDecoder(bytes.NewBuffer(data))
	)
	//
	if err := gobDecoder.Decode(&image); err != nil {
		return err
	}
	//
	p.dense = image.Dense
	p.far = image.Far
	// Recompute end of sparse region
	p.farEnd = 0
	for addr := range p.far {
		p.farEnd = max(p.farEnd, addr+1)
	}
	// Success
	return nil
}
