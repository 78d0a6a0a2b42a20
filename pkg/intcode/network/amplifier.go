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
package network

import (
	"fmt"
	"slices"

	"github.com/consensys/go-intcode/pkg/intcode/vm/machine"
	"github.com/consensys/go-intcode/pkg/util"
	log "github.com/sirupsen/logrus"
)

// RunChain runs a serial chain of amplifiers, one per phase setting, each
// executing its own copy of the given image.  Every amplifier is given its
// phase setting followed by the signal produced by the previous amplifier (or
// 0 for the first).  The signal produced by the last amplifier is returned.
func RunChain(image []int64, phases []int64) (int64, error) {
	var signal int64
	//
	for i, phase := range phases {
		amp := machine.New(image, phase, signal)
		//
		if err := amp.Run(); err != nil {
			return 0, fmt.Errorf("amplifier %d: %w", i, err)
		}
		//
		output, err := amp.PeekLastOutput()
		if err != nil {
			return 0, fmt.Errorf("amplifier %d: %w", i, err)
		}
		//
		signal = output
	}
	//
	return signal, nil
}

// RunFeedback runs a ring of amplifiers, one per phase setting, where the
// output of the last amplifier is fed back into the first.  Amplifiers are
// executed cooperatively, with each running until it blocks or halts before
// its outputs are passed on.  This continues until the last amplifier halts,
// at which point the last signal it produced is returned.
func RunFeedback(image []int64, phases []int64) (int64, error) {
	var (
		n      = len(phases)
		amps   = make([]*machine.Machine, n)
		signal *int64
	)
	//
	if n == 0 {
		return 0, nil
	}
	//
	for i, phase := range phases {
		amps[i] = machine.New(image, phase)
	}
	// Initial signal
	amps[0].AddInput(0)
	//
	for !amps[n-1].IsHalted() {
		var progress bool
		//
		for i, amp := range amps {
			before := amp.Steps()
			//
			if err := amp.RunUntilBlocked(); err != nil {
				return 0, fmt.Errorf("amplifier %d: %w", i, err)
			}
			//
			outputs := amp.DrainOutput()
			// Record the most recent signal leaving the ring
			if i == n-1 && len(outputs) > 0 {
				signal = &outputs[len(outputs)-1]
			}
			//
			amps[(i+1)%n].AddInput(outputs...)
			progress = progress || amp.Steps() != before
		}
		// Check for deadlock
		if !progress && !amps[n-1].IsHalted() {
			return 0, fmt.Errorf("amplifier %d: %w", n-1,
				&machine.QueueUnderflowError{PC: amps[n-1].PC(), Queue: machine.INPUT_QUEUE})
		}
	}
	//
	if signal == nil {
		return 0, fmt.Errorf("amplifier %d: %w", n-1,
			&machine.QueueUnderflowError{PC: amps[n-1].PC(), Queue: machine.OUTPUT_QUEUE})
	}
	//
	return *signal, nil
}

// MaxSignal searches every ordering of the given phase settings for the one
// producing the highest signal, using either a serial chain or a feedback
// ring.  The highest signal is returned along with the ordering producing it.
func MaxSignal(image []int64, phases []int64, feedback bool) (int64, []int64, error) {
	var (
		best     int64
		ordering []int64
		run      = RunChain
	)
	//
	if feedback {
		run = RunFeedback
	}
	//
	for _, perm := range util.Permutations(phases) {
		signal, err := run(image, perm)
		//
		if err != nil {
			return 0, nil, fmt.Errorf("phases %v: %w", perm, err)
		} else if ordering == nil || signal > best {
			best, ordering = signal, slices.Clone(perm)
			//
			log.Debugf("phases %v give signal %d", perm, signal)
		}
	}
	//
	return best, ordering, nil
}
