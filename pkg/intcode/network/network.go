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
	"errors"
	"fmt"

	"github.com/consensys/go-intcode/pkg/intcode/vm/machine"
	log "github.com/sirupsen/logrus"
)

// NAT_ADDRESS is the destination address captured by the recovery instance
// rather than delivered to a NIC.
const NAT_ADDRESS = 255

// IDLE_INPUT is given to a NIC attempting to read from an empty queue.
const IDLE_INPUT = -1

// Packet is a pair of values sent between NICs.
type Packet struct {
	X int64
	Y int64
}

func (p Packet) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Network is a packet-switched network of NICs, each executing its own copy of
// a program image.  Every NIC is booted with its own address as its first
// input.  Thereafter, NICs are executed in rounds where each runs until it
// blocks or halts.  A NIC which would otherwise block on an empty queue is
// given -1 instead.  Output is framed into packets of the form [dest, x, y],
// which are appended to the input queue of the destination NIC.  Packets sent
// to address 255 are captured by the NAT, which remembers only the most recent
// one.  When a whole round passes without any packets being sent, the network
// is idle and the NAT can wake it by delivering its packet to address 0.
type Network struct {
	// NICs indexed by address
	nics []*machine.Machine
	// First packet captured by the NAT (if any)
	first *Packet
	// Most recent packet captured by the NAT (if any)
	last *Packet
	// Number of rounds executed
	rounds uint
}

// New constructs and boots a network with the given number of NICs.
func New(image []int64, size uint) (*Network, error) {
	nics := make([]*machine.Machine, size)
	//
	for i := range nics {
		nics[i] = machine.New(image, int64(i))
		//
		if err := nics[i].RunUntilBlocked(); err != nil {
			return nil, fmt.Errorf("nic %d: %w", i, err)
		}
	}
	//
	return &Network{nics: nics}, nil
}

// Size returns the number of NICs on this network.
func (p *Network) Size() uint {
	return uint(len(p.nics))
}

// Rounds returns the number of rounds executed so far.
func (p *Network) Rounds() uint {
	return p.rounds
}

// NIC returns the NIC with the given address, or an error if no NIC on this
// network has that address.
func (p *Network) NIC(address uint) (*machine.Machine, error) {
	if address >= uint(len(p.nics)) {
		return nil, fmt.Errorf("unknown address %d", address)
	}
	//
	return p.nics[address], nil
}

// Steps returns the total number of instructions executed across all NICs.
func (p *Network) Steps() uint64 {
	var steps uint64
	//
	for _, nic := range p.nics {
		steps += nic.Steps()
	}
	//
	return steps
}

// Round executes every NIC once, delivering any packets they send.  This
// returns true if the network was idle (i.e. no packets were sent).
func (p *Network) Round() (bool, error) {
	var (
		idle   = true
		halted = 0
	)
	//
	for i, nic := range p.nics {
		if nic.IsBlocked() {
			nic.AddInput(IDLE_INPUT)
		}
		//
		if err := nic.RunUntilBlocked(); err != nil {
			return false, fmt.Errorf("nic %d: %w", i, err)
		} else if nic.IsHalted() {
			halted++
		}
		//
		outputs := nic.DrainOutput()
		//
		if len(outputs)%3 != 0 {
			return false, fmt.Errorf("nic %d: incomplete packet %v", i, outputs[len(outputs)-len(outputs)%3:])
		}
		//
		for j := 0; j < len(outputs); j += 3 {
			if err := p.deliver(outputs[j], Packet{outputs[j+1], outputs[j+2]}); err != nil {
				return false, fmt.Errorf("nic %d: %w", i, err)
			}
			//
			idle = false
		}
	}
	//
	p.rounds++
	//
	if halted == len(p.nics) {
		return idle, errors.New("all nics halted")
	}
	//
	return idle, nil
}

// FirstNatPacket runs the network until the NAT receives its first packet,
// and returns that packet.
func (p *Network) FirstNatPacket() (Packet, error) {
	for p.first == nil {
		if _, err := p.Round(); err != nil {
			return Packet{}, err
		}
	}
	//
	return *p.first, nil
}

// RunUntilRepeatedWake runs the network, waking it via the NAT whenever it is
// idle, until the NAT delivers the same Y value twice in a row.  That value is
// returned.
func (p *Network) RunUntilRepeatedWake() (int64, error) {
	var previous *int64
	//
	for {
		idle, err := p.Round()
		if err != nil {
			return 0, err
		} else if !idle || p.last == nil {
			continue
		}
		//
		packet := *p.last
		//
		log.Debugf("network idle after %d rounds, waking with %s", p.rounds, packet)
		p.nics[0].AddInput(packet.X, packet.Y)
		//
		if previous != nil && *previous == packet.Y {
			return packet.Y, nil
		}
		//
		previous = &packet.Y
	}
}

func (p *Network) deliver(dest int64, packet Packet) error {
	switch {
	case dest == NAT_ADDRESS:
		if p.first == nil {
			p.first = &packet
		}
		//
		p.last = &packet
	case dest >= 0 && dest < int64(len(p.nics)):
		p.nics[dest].AddInput(packet.X, packet.Y)
	default:
		return fmt.Errorf("packet %s sent to unknown address %d", packet, dest)
	}
	//
	return nil
}
