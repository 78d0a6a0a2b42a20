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
	"testing"

	"github.com/consensys/go-intcode/pkg/intcode/image"
	"github.com/consensys/go-intcode/pkg/intcode/vm/machine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var chain1 = []int64{3, 15, 3, 16, 1002, 16, 10, 16, 1, 16, 15, 15, 4, 15, 99, 0, 0}

var chain2 = []int64{3, 23, 3, 24, 1002, 24, 10, 24, 1002, 23, -1, 23,
	101, 5, 23, 23, 1, 24, 23, 23, 4, 23, 99, 0, 0}

var chain3 = []int64{3, 31, 3, 32, 1002, 32, 10, 32, 1001, 31, -2, 31, 1007, 31, 0, 33,
	1002, 33, 7, 33, 1, 33, 31, 31, 1, 32, 31, 31, 4, 31, 99, 0, 0, 0}

var feedback1 = []int64{3, 26, 1001, 26, -4, 26, 3, 27, 1002, 27, 2, 27, 1, 27, 26,
	27, 4, 27, 1001, 28, -1, 28, 1005, 28, 6, 99, 0, 0, 5}

var feedback2 = []int64{3, 52, 1001, 52, -5, 52, 3, 53, 1, 52, 56, 54, 1007, 54, 5, 55, 1005, 55, 26, 1001, 54,
	-5, 54, 1105, 1, 12, 1, 53, 54, 53, 1008, 54, 0, 55, 1001, 55, 1, 55, 2, 53, 55, 53, 4,
	53, 1001, 56, -1, 56, 1005, 56, 6, 99, 0, 0, 0, 0, 10}

// Reads its address, then on its first read sends (address, 7) to the NAT
// before polling forever.
var poller = []int64{3, 100, 3, 101, 104, 255, 4, 100, 104, 7, 3, 101, 1105, 1, 10}

// ============================================================================
// Amplifiers
// ============================================================================

func Test_Chain_01(t *testing.T) {
	checkChain(t, chain1, []int64{4, 3, 2, 1, 0}, 43210)
}

func Test_Chain_02(t *testing.T) {
	checkChain(t, chain2, []int64{0, 1, 2, 3, 4}, 54321)
}

func Test_Chain_03(t *testing.T) {
	checkChain(t, chain3, []int64{1, 0, 4, 3, 2}, 65210)
}

func Test_Chain_Deadlock(t *testing.T) {
	// Reads three inputs, but only two are ever given
	_, err := RunChain([]int64{3, 0, 3, 0, 3, 0, 99}, []int64{1})
	//
	var qerr *machine.QueueUnderflowError
	//
	require.True(t, errors.As(err, &qerr))
	assert.Contains(t, err.Error(), "amplifier 0")
}

func Test_Feedback_01(t *testing.T) {
	signal, err := RunFeedback(feedback1, []int64{9, 8, 7, 6, 5})
	require.NoError(t, err)
	assert.Equal(t, int64(139629729), signal)
}

func Test_Feedback_02(t *testing.T) {
	signal, err := RunFeedback(feedback2, []int64{9, 7, 8, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, int64(18216), signal)
}

func Test_MaxSignal_01(t *testing.T) {
	signal, phases, err := MaxSignal(chain1, []int64{0, 1, 2, 3, 4}, false)
	require.NoError(t, err)
	assert.Equal(t, int64(43210), signal)
	assert.Equal(t, []int64{4, 3, 2, 1, 0}, phases)
}

func Test_MaxSignal_02(t *testing.T) {
	signal, phases, err := MaxSignal(feedback1, []int64{5, 6, 7, 8, 9}, true)
	require.NoError(t, err)
	assert.Equal(t, int64(139629729), signal)
	assert.Equal(t, []int64{9, 8, 7, 6, 5}, phases)
}

func Test_MaxSignal_03(t *testing.T) {
	signal, _, err := MaxSignal(readImage(t, "testdata/amplifier.int"), []int64{0, 1, 2, 3, 4}, false)
	require.NoError(t, err)
	assert.Equal(t, int64(338603), signal)
}

// ============================================================================
// Network
// ============================================================================

func Test_Network_01(t *testing.T) {
	net, err := New(poller, 3)
	require.NoError(t, err)
	//
	packet, err := net.FirstNatPacket()
	require.NoError(t, err)
	assert.Equal(t, Packet{0, 7}, packet)
	assert.Equal(t, uint(1), net.Rounds())
}

func Test_Network_02(t *testing.T) {
	net, err := New(poller, 3)
	require.NoError(t, err)
	//
	y, err := net.RunUntilRepeatedWake()
	require.NoError(t, err)
	assert.Equal(t, int64(7), y)
	// Address 0 consumed both wake-up packets from address 2
	nic, err := net.NIC(0)
	require.NoError(t, err)
	assert.Equal(t, int64(7), nic.Memory().Read(101))
}

func Test_Network_UnknownNic(t *testing.T) {
	net, err := New([]int64{3, 100, 99}, 2)
	require.NoError(t, err)
	//
	nic, err := net.NIC(1)
	require.NoError(t, err)
	assert.True(t, nic.IsHalted())
	//
	_, err = net.NIC(2)
	assert.EqualError(t, err, "unknown address 2")
	// Booting executes one input per NIC, and halting is not counted
	assert.Equal(t, uint64(2), net.Steps())
}

func Test_Network_UnknownAddress(t *testing.T) {
	// Sends a packet to address 42
	net, err := New([]int64{3, 100, 3, 101, 104, 42, 104, 1, 104, 2, 99}, 2)
	require.NoError(t, err)
	//
	_, err = net.Round()
	assert.ErrorContains(t, err, "nic 0")
}

func Test_Network_Halted(t *testing.T) {
	net, err := New([]int64{3, 100, 3, 101, 99}, 2)
	require.NoError(t, err)
	//
	_, err = net.FirstNatPacket()
	assert.Error(t, err)
}

func Test_Network_Nat_01(t *testing.T) {
	net, err := New(readImage(t, "testdata/nic.int"), 50)
	require.NoError(t, err)
	//
	packet, err := net.FirstNatPacket()
	require.NoError(t, err)
	assert.Equal(t, int64(27846), packet.Y)
}

func Test_Network_Nat_02(t *testing.T) {
	net, err := New(readImage(t, "testdata/nic.int"), 50)
	require.NoError(t, err)
	//
	y, err := net.RunUntilRepeatedWake()
	require.NoError(t, err)
	assert.Equal(t, int64(19959), y)
}

// ============================================================================
// Helpers
// ============================================================================

func checkChain(t *testing.T, image []int64, phases []int64, expected int64) {
	t.Helper()
	//
	signal, err := RunChain(image, phases)
	require.NoError(t, err)
	assert.Equal(t, expected, signal)
}

func readImage(t *testing.T, filename string) []int64 {
	t.Helper()
	//
	words, err := image.ReadFile(filename)
	require.NoError(t, err)
	//
	return words
}
