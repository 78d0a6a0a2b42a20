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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Sparse_Image(t *testing.T) {
	image := []int64{1, 0, 0, 3, 99}
	mem := NewSparse(image...)
	//
	assert.Equal(t, uint64(5), mem.Len())
	assert.Equal(t, image, mem.Contents())
	// Memory must not alias the image
	mem.Write(0, 42)
	assert.Equal(t, int64(1), image[0])
	assert.Equal(t, int64(42), mem.Read(0))
}

func Test_Sparse_DefaultZero(t *testing.T) {
	mem := NewSparse(1, 2, 3)
	//
	for _, addr := range []uint64{3, 100, MAX_GAP + 10, 1 << 40} {
		assert.Equal(t, int64(0), mem.Read(addr), "address %d", addr)
	}
	// Reads never extend memory
	assert.Equal(t, uint64(3), mem.Len())
}

func Test_Sparse_NearWrite(t *testing.T) {
	mem := NewSparse(1, 2, 3)
	//
	mem.Write(10, 7)
	//
	assert.Equal(t, uint64(11), mem.Len())
	assert.Equal(t, []int64{1, 2, 3, 0, 0, 0, 0, 0, 0, 0, 7}, mem.Contents())
}

func Test_Sparse_FarWrite(t *testing.T) {
	mem := NewSparse(1, 2, 3)
	far := uint64(1_000_000_000)
	//
	mem.Write(far, -5)
	//
	assert.Equal(t, int64(-5), mem.Read(far))
	assert.Equal(t, far+1, mem.Len())
	// Dense region unaffected
	assert.Len(t, mem.Contents(), 3)
}

func Test_Sparse_Migrate(t *testing.T) {
	mem := NewSparse()
	// Write beyond the gap, then extend dense region over it.
	mem.Write(MAX_GAP+100, 9)
	assert.Len(t, mem.Contents(), 0)
	//
	mem.Write(MAX_GAP, 1)
	assert.Len(t, mem.Contents(), MAX_GAP+1)
	mem.Write(MAX_GAP+150, 2)
	//
	assert.Equal(t, int64(9), mem.Read(MAX_GAP+100))
	assert.Equal(t, int64(9), mem.Contents()[MAX_GAP+100])
}

func Test_Sparse_Clone(t *testing.T) {
	mem := NewSparse(1, 2, 3)
	mem.Write(1<<32, 4)
	clone := mem.Clone()
	//
	clone.Write(0, 10)
	clone.Write(1<<32, 11)
	//
	assert.Equal(t, int64(1), mem.Read(0))
	assert.Equal(t, int64(4), mem.Read(1<<32))
	assert.Equal(t, int64(10), clone.Read(0))
	assert.Equal(t, int64(11), clone.Read(1<<32))
}

func Test_Sparse_Gob(t *testing.T) {
	var (
		buffer  bytes.Buffer
		mem     = NewSparse(5, 6, 7)
		decoded Sparse
	)
	//
	mem.Write(1<<33, 8)
	require.NoError(t, gob.NewEncoder(&buffer).Encode(mem))
	require.NoError(t, gob.NewDecoder(&buffer).Decode(&decoded))
	//
	assert.Equal(t, mem.Contents(), decoded.Contents())
	assert.Equal(t, mem.Len(), decoded.Len())
	assert.Equal(t, int64(8), decoded.Read(1<<33))
}
