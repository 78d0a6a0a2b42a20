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
package image

import (
	"bytes"
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Image_Parse_01(t *testing.T) {
	words, err := Parse("1,0,0,3,99")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 0, 0, 3, 99}, words)
}

func Test_Image_Parse_02(t *testing.T) {
	words, err := Parse(" 104, -1125899906842624 ,99,\n")
	require.NoError(t, err)
	assert.Equal(t, []int64{104, -1125899906842624, 99}, words)
}

func Test_Image_Parse_03(t *testing.T) {
	words, err := Parse("\n")
	require.NoError(t, err)
	assert.Empty(t, words)
}

func Test_Image_Parse_Invalid(t *testing.T) {
	for _, text := range []string{"1,x,3", "1,,3", "1,2.5", "1,99999999999999999999"} {
		_, err := Parse(text)
		//
		var perr *ParseError
		//
		require.True(t, errors.As(err, &perr), text)
		assert.Equal(t, uint(1), perr.Index)
	}
}

func Test_Image_Format(t *testing.T) {
	words := []int64{109, -1, 204, 0, 99}
	//
	assert.Equal(t, "109,-1,204,0,99", Format(words))
	//
	parsed, err := Parse(Format(words))
	require.NoError(t, err)
	assert.Equal(t, words, parsed)
}

func Test_Image_ReadFile_01(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "prog.int")
	require.NoError(t, os.WriteFile(filename, []byte("3,0,4,0,99\n"), 0o600))
	//
	words, err := ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 0, 4, 0, 99}, words)
}

func Test_Image_ReadFile_Gzip(t *testing.T) {
	var buffer bytes.Buffer
	//
	writer := gzip.NewWriter(&buffer)
	_, err := writer.Write([]byte("1102,34915192,34915192,7,4,7,99,0"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	//
	filename := filepath.Join(t.TempDir(), "prog.int.gz")
	require.NoError(t, os.WriteFile(filename, buffer.Bytes(), 0o600))
	//
	words, err := ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, []int64{1102, 34915192, 34915192, 7, 4, 7, 99, 0}, words)
}

func Test_Image_ReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.int"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
