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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Checkpoint_Restore(t *testing.T) {
	m := New([]int64{3, 7, 4, 7, 3, 7, 99, 0}, 5)
	require.NoError(t, m.RunUntilBlocked())
	//
	cp, err := m.Checkpoint()
	require.NoError(t, err)
	assert.Equal(t, uint64(4), cp.PC())
	assert.Equal(t, uint64(2), cp.Steps())
	// Continuing the original does not affect the checkpoint
	m.AddInput(6)
	require.NoError(t, m.Run())
	//
	r := cp.Restore()
	assert.True(t, r.IsBlocked())
	assert.Equal(t, []int64{5}, r.Outputs())
	assert.Equal(t, int64(5), r.Memory().Read(7))
	//
	r.AddInput(9)
	require.NoError(t, r.Run())
	assert.Equal(t, int64(9), r.Memory().Read(7))
	assert.Equal(t, int64(6), m.Memory().Read(7))
}

func Test_Checkpoint_Binary(t *testing.T) {
	m := New(quine)
	_, err := m.Execute(20)
	require.NoError(t, err)
	//
	cp, err := m.Checkpoint()
	require.NoError(t, err)
	//
	bytes, err := cp.MarshalBinary()
	require.NoError(t, err)
	//
	var decoded Checkpoint
	//
	require.NoError(t, decoded.UnmarshalBinary(bytes))
	assert.Equal(t, cp.PC(), decoded.PC())
	assert.Equal(t, cp.Steps(), decoded.Steps())
	// Both continuations must produce the same result
	r1, r2 := cp.Restore(), decoded.Restore()
	require.NoError(t, r1.Run())
	require.NoError(t, r2.Run())
	assert.Equal(t, quine, r1.Outputs())
	assert.Equal(t, r1.Outputs(), r2.Outputs())
	assert.Equal(t, r1.Memory().Contents(), r2.Memory().Contents())
}

func Test_Checkpoint_Faulted(t *testing.T) {
	m := New([]int64{4, -1})
	require.Error(t, m.Run())
	//
	_, err := m.Checkpoint()
	assert.Error(t, err)
}
