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
package cmd

import (
	"testing"

	"github.com/consensys/go-intcode/pkg/intcode/store"
	"github.com/consensys/go-intcode/pkg/intcode/vm/machine"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Echo a single input, then wait for a second one.
var echoTwice = []int64{3, 10, 4, 10, 3, 10, 4, 10, 99}

func newExecutionCommand() *cobra.Command {
	cmd := &cobra.Command{}
	addExecutionFlags(cmd)
	//
	return cmd
}

func Test_ExecuteMachine_01(t *testing.T) {
	db, err := store.Open("")
	require.NoError(t, err)
	//
	defer db.Close()
	// Blocked with a store, so saved
	vm := machine.New(echoTwice, 5)
	assert.Equal(t, 0, executeMachine(newExecutionCommand(), vm, "echo", db))
	//
	checkpoint, ok, err := db.Get("echo")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, machine.BLOCKED, checkpoint.Restore().Status())
}

func Test_ExecuteMachine_02(t *testing.T) {
	db, err := store.Open("")
	require.NoError(t, err)
	//
	defer db.Close()
	//
	vm := machine.New(echoTwice, 5)
	require.NoError(t, vm.RunUntilBlocked())
	cp, err := vm.Checkpoint()
	require.NoError(t, err)
	require.NoError(t, db.Put("echo", cp))
	// Resuming to completion removes the checkpoint
	assert.Equal(t, 0, resumeMachine(newExecutionCommand(), "echo", []int64{6}, db))
	//
	_, ok, err := db.Get("echo")
	require.NoError(t, err)
	assert.False(t, ok)
}

func Test_ExecuteMachine_03(t *testing.T) {
	db, err := store.Open("")
	require.NoError(t, err)
	//
	defer db.Close()
	//
	assert.Equal(t, 2, resumeMachine(newExecutionCommand(), "missing", nil, db))
}

func Test_ExecuteMachine_04(t *testing.T) {
	// Faulted
	vm := machine.New([]int64{4, -1, 99})
	assert.Equal(t, 4, executeMachine(newExecutionCommand(), vm, "", nil))
	// Blocked without a store is a deadlock
	vm = machine.New(echoTwice, 5)
	assert.Equal(t, 4, executeMachine(newExecutionCommand(), vm, "", nil))
	// Halted
	vm = machine.New([]int64{104, 7, 99})
	assert.Equal(t, 0, executeMachine(newExecutionCommand(), vm, "", nil))
}

func Test_MemoryRowWidth(t *testing.T) {
	assert.Equal(t, uint(1), memoryRowWidth(0))
	assert.Equal(t, uint(1), memoryRowWidth(10))
	assert.Equal(t, uint(1), memoryRowWidth(19))
	assert.Equal(t, uint(7), memoryRowWidth(80))
	assert.Equal(t, uint(16), memoryRowWidth(1000))
}
