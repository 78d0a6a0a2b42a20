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
	"bytes"
	"testing"

	"github.com/consensys/go-intcode/pkg/intcode/store"
	"github.com/consensys/go-intcode/pkg/intcode/vm/instruction"
	"github.com/consensys/go-intcode/pkg/intcode/vm/machine"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_PrintOutputs(t *testing.T) {
	var buffer bytes.Buffer
	//
	printOutputs(&buffer, []int64{1, -2, 1125899906842624})
	assert.Equal(t, "1\n-2\n1125899906842624\n", buffer.String())
}

func Test_PrintMemory(t *testing.T) {
	var buffer bytes.Buffer
	//
	vm := machine.New([]int64{1, 0, 0, 0, 99})
	require.NoError(t, vm.Run())
	//
	require.NoError(t, printMemory(&buffer, vm.Memory(), 3, false))
	assert.Equal(t, "0: | 2 |  0 | 0\n3: | 0 | 99 |  \n", buffer.String())
}

func Test_PrintListing(t *testing.T) {
	var buffer bytes.Buffer
	//
	listing := instruction.Disassemble([]int64{1002, 4, 3, 4, 33})
	//
	require.NoError(t, printListing(&buffer, listing, false))
	assert.Equal(t, "0 | 1002 4 3 4 | mul [4], #3, [4]\n4 | 33         | data\n", buffer.String())
}

func Test_CheckpointTable(t *testing.T) {
	var buffer bytes.Buffer
	//
	db, err := store.Open("")
	require.NoError(t, err)
	//
	defer db.Close()
	//
	vm := machine.New([]int64{3, 10, 4, 10, 3, 10, 99}, 5)
	require.NoError(t, vm.RunUntilBlocked())
	cp, err := vm.Checkpoint()
	require.NoError(t, err)
	require.NoError(t, db.Put("echo", cp))
	//
	table, err := checkpointTable(db)
	require.NoError(t, err)
	table.AnsiEscapes(false)
	require.NoError(t, table.Print(&buffer))
	//
	assert.Equal(t, "name | pc | steps | status\necho |  4 |     2 | blocked\n", buffer.String())
}

func Test_LogTracer(t *testing.T) {
	var (
		buffer bytes.Buffer
		logger = log.New()
	)
	//
	logger.SetOutput(&buffer)
	logger.SetLevel(log.DebugLevel)
	logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true, DisableColors: true})
	//
	vm := machine.New([]int64{109, 3, 204, 1, 99}).WithTracer(NewLogTracer(logger))
	require.NoError(t, vm.Run())
	//
	assert.Equal(t,
		"level=debug msg=\"arb #3\" base=0 pc=0\nlevel=debug msg=\"out [r+1]\" base=3 pc=2\n",
		buffer.String())
	assert.Equal(t, []int64{99}, vm.Outputs())
}
