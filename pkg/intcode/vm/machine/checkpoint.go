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

import (
	"bytes"
	"encoding/gob"

	"github.com/consensys/go-intcode/pkg/intcode/vm/memory"
	"github.com/consensys/go-intcode/pkg/util/collection/queue"
)

// Checkpoint represents a captured state of an executing machine, such that
// execution can be continued later from this position (sometimes also known as
// a "continuation").  As such, the checkpoint includes all information
// necessary to allow execution to continue: the program counter, relative
// base, memory and both queues.  The trace hook is not included.  Checkpoints
// can be converted to and from bytes, for example to suspend a blocked machine
// until more input is available.
type Checkpoint struct {
	pc      uint64
	base    int64
	memory  *memory.Sparse
	inputs  []int64
	outputs []int64
	steps   uint64
}

// Checkpoint captures the current state of this machine.  The checkpoint is
// independent of the machine, so continuing execution does not affect it.  A
// faulted machine cannot be checkpointed, since its state is unusable.
func (p *Machine) Checkpoint() (*Checkpoint, error) {
	if p.fault != nil {
		return nil, p.fault
	}
	//
	return &Checkpoint{
		pc:      p.pc,
		base:    p.base,
		memory:  p.memory.Clone(),
		inputs:  p.inputs.Items(),
		outputs: p.outputs.Items(),
		steps:   p.steps,
	}, nil
}

// PC returns the program counter position at which this checkpoint was taken.
func (p *Checkpoint) PC() uint64 {
	return p.pc
}

// Steps returns the number of instructions executed before this checkpoint was
// taken.
func (p *Checkpoint) Steps() uint64 {
	return p.steps
}

// Restore an executing machine from this checkpoint.  The checkpoint can be
// restored any number of times, each giving an independent machine.
func (p *Checkpoint) Restore() *Machine {
	return &Machine{
		pc:      p.pc,
		base:    p.base,
		memory:  p.memory.Clone(),
		inputs:  queue.NewQueue(p.inputs...),
		outputs: queue.NewQueue(p.outputs...),
		steps:   p.steps,
	}
}

// checkpointImage is the on-the-wire form of a checkpoint.
type checkpointImage struct {
	PC      uint64
	Base    int64
	Memory  *memory.Sparse
	Inputs  []int64
	Outputs []int64
	Steps   uint64
}

// MarshalBinary implementation for the encoding.BinaryMarshaler interface.
func (p *Checkpoint) MarshalBinary() ([]byte, error) {
	var (
		buffer bytes.Buffer
		image  = checkpointImage{p.pc, p.base, p.memory, p.inputs, p.outputs, p.steps}
	)
	//
	if err := gob.NewEncoder(&buffer).Encode(image); err != nil {
		return nil, err
	}
	//
	return buffer.Bytes(), nil
}

// UnmarshalBinary implementation for the encoding.BinaryUnmarshaler interface.
func (p *Checkpoint) UnmarshalBinary(data []byte) error {
	var image checkpointImage
	//
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&image); err != nil {
		return err
	}
	// Memory is omitted when empty
	if image.Memory == nil {
		image.Memory = memory.NewSparse()
	}
	//
	*p = Checkpoint{image.PC, image.Base, image.Memory, image.Inputs, image.Outputs, image.Steps}
	//
	return nil
}
