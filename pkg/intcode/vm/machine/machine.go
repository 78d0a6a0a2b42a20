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
	"github.com/consensys/go-intcode/pkg/intcode/vm/instruction"
	"github.com/consensys/go-intcode/pkg/intcode/vm/memory"
	"github.com/consensys/go-intcode/pkg/util/collection/queue"
)

// Machine represents a single executing program, consisting of its own memory,
// program counter, relative base, input queue and output queue.  A machine
// executes strictly sequentially, and never shares state with any other
// machine.  Machines can be interleaved by an external scheduler, using
// Status() to decide when to switch between them, and copying values between
// their queues.
type Machine struct {
	// Program Counter
	pc uint64
	// Relative base used for relative mode operands
	base int64
	// Memory owned by this machine
	memory *memory.Sparse
	// Values waiting to be read, oldest first
	inputs *queue.Queue[int64]
	// Values written but not yet consumed, oldest first
	outputs *queue.Queue[int64]
	// Optional hook invoked before each instruction is executed
	tracer Tracer
	// Number of instructions executed so far (halting is not counted)
	steps uint64
	// Error which aborted this machine (if any)
	fault error
}

// New constructs a machine whose memory is initialised from a given program
// image, and whose input queue is seeded with zero or more values.  The image is
// copied, hence two machines built from the same image never alias.
func New(image []int64, inputs ...int64) *Machine {
	return &Machine{
		pc:      0,
		base:    0,
		memory:  memory.NewSparse(image...),
		inputs:  queue.NewQueue(inputs...),
		outputs: queue.NewQueue[int64](),
	}
}

// WithTracer installs a hook which is invoked before each instruction executes.
// A nil tracer disables tracing.
func (p *Machine) WithTracer(tracer Tracer) *Machine {
	p.tracer = tracer
	//
	return p
}

// PC returns the current Program Counter position.
func (p *Machine) PC() uint64 {
	return p.pc
}

// Base returns the current relative base.
func (p *Machine) Base() int64 {
	return p.base
}

// Memory returns the memory of this machine.
func (p *Machine) Memory() memory.Memory {
	return p.memory
}

// Steps returns the number of instructions executed so far.
func (p *Machine) Steps() uint64 {
	return p.steps
}

// Fault returns the error which aborted this machine, or nil if it has not
// been aborted.
func (p *Machine) Fault() error {
	return p.fault
}

// Next decodes the instruction at the current program counter.
func (p *Machine) Next() (instruction.Instruction, error) {
	return instruction.Decode(p.memory, p.pc)
}

// Status determines the status of this machine from the instruction at its
// program counter.  This is never cached, so adding input to a blocked machine
// immediately makes it ready again.  A word which cannot be decoded is reported
// as ready, since the fault only arises when it is executed.
func (p *Machine) Status() Status {
	if p.fault != nil {
		return FAULTED
	}
	//
	insn, err := p.Next()
	//
	switch {
	case err != nil:
		return READY
	case insn.Opcode() == instruction.HALT:
		return HALTED
	case insn.Opcode() == instruction.INPUT && p.inputs.IsEmpty():
		return BLOCKED
	default:
		return READY
	}
}

// IsHalted checks whether the next instruction is a halt.
func (p *Machine) IsHalted() bool {
	return p.Status() == HALTED
}

// IsBlocked checks whether the next instruction is an input, but the input
// queue is empty.
func (p *Machine) IsBlocked() bool {
	return p.Status() == BLOCKED
}

// Step decodes and executes the instruction at the program counter.  When the
// machine is halted or blocked, this has no effect.  Any error arising aborts
// the machine, and is returned again from every subsequent step.
func (p *Machine) Step() error {
	if p.fault != nil {
		return p.fault
	}
	//
	insn, err := p.Next()
	if err != nil {
		return p.abort(err)
	}
	// Check whether any progress is possible
	switch insn.Opcode() {
	case instruction.HALT:
		return nil
	case instruction.INPUT:
		if p.inputs.IsEmpty() {
			return nil
		}
	}
	//
	if p.tracer != nil {
		p.tracer.Trace(p.pc, p.base, insn)
	}
	//
	next, err := insn.Execute(executionState{p, insn.Opcode()})
	if err != nil {
		return p.abort(err)
	} else if next < 0 {
		return p.abort(&AddressError{p.pc, next})
	}
	//
	p.pc = uint64(next)
	p.steps++
	//
	return nil
}

// Execute the machine for (upto) the given number of steps, returning the
// actual number of steps executed and an error (if execution failed).  This
// stops early if the machine becomes blocked or halted.
func (p *Machine) Execute(steps uint) (uint, error) {
	var nsteps uint
	//
	for nsteps < steps {
		switch p.Status() {
		case FAULTED:
			return nsteps, p.fault
		case BLOCKED, HALTED:
			return nsteps, nil
		}
		//
		if err := p.Step(); err != nil {
			return nsteps, err
		}
		//
		nsteps++
	}
	//
	return nsteps, nil
}

// RunUntilBlocked executes the machine until it either halts, or is blocked
// waiting for input.
func (p *Machine) RunUntilBlocked() error {
	_, err := ExecuteAll(p, DEFAULT_CHUNK)
	//
	return err
}

// Run executes the machine until it halts.  This is only appropriate when all
// input is known up front.  If the machine becomes blocked, then it can never
// proceed and a QueueUnderflowError is reported.
func (p *Machine) Run() error {
	if err := p.RunUntilBlocked(); err != nil {
		return err
	} else if p.IsBlocked() {
		return p.abort(&QueueUnderflowError{p.pc, INPUT_QUEUE})
	}
	//
	return nil
}

// RunUntilOutput executes the machine until its output queue holds at least n
// values, and then removes and returns the first n.  If the machine halts or
// becomes blocked before then, a QueueUnderflowError is reported.
func (p *Machine) RunUntilOutput(n uint) ([]int64, error) {
	for p.outputs.Len() < n {
		switch p.Status() {
		case FAULTED:
			return nil, p.fault
		case BLOCKED:
			return nil, p.abort(&QueueUnderflowError{p.pc, INPUT_QUEUE})
		case HALTED:
			return nil, p.abort(&QueueUnderflowError{p.pc, OUTPUT_QUEUE})
		}
		//
		if err := p.Step(); err != nil {
			return nil, err
		}
	}
	//
	values := make([]int64, n)
	//
	for i := range values {
		values[i] = p.outputs.Pop()
	}
	//
	return values, nil
}

// AddInput appends zero or more values to the back of the input queue.
func (p *Machine) AddInput(values ...int64) {
	p.inputs.PushAll(values)
}

// NumInputs returns the number of values waiting in the input queue.
func (p *Machine) NumInputs() uint {
	return p.inputs.Len()
}

// NumOutputs returns the number of values waiting in the output queue.
func (p *Machine) NumOutputs() uint {
	return p.outputs.Len()
}

// Outputs returns the values waiting in the output queue, oldest first, without
// consuming them.
func (p *Machine) Outputs() []int64 {
	return p.outputs.Items()
}

// PopOutput removes and returns the oldest value in the output queue.
func (p *Machine) PopOutput() (int64, error) {
	if p.fault != nil {
		return 0, p.fault
	} else if p.outputs.IsEmpty() {
		return 0, p.abort(&QueueUnderflowError{p.pc, OUTPUT_QUEUE})
	}
	//
	return p.outputs.Pop(), nil
}

// PeekLastOutput returns the most recent value in the output queue, without
// consuming it.
func (p *Machine) PeekLastOutput() (int64, error) {
	if p.fault != nil {
		return 0, p.fault
	} else if p.outputs.IsEmpty() {
		return 0, p.abort(&QueueUnderflowError{p.pc, OUTPUT_QUEUE})
	}
	//
	return p.outputs.Last(), nil
}

// DrainOutput removes and returns every value in the output queue, oldest
// first.
func (p *Machine) DrainOutput() []int64 {
	return p.outputs.PopAll()
}

func (p *Machine) abort(err error) error {
	p.fault = err
	//
	return err
}
