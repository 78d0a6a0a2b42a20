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
package termio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_AnsiEscape_01(t *testing.T) {
	assert.Equal(t, "\033[0m", ResetAnsiEscape().Build())
	assert.Equal(t, "\033[31m", NewAnsiEscape().FgColour(TERM_RED).Build())
	assert.Equal(t, "\033[1;32;44m", BoldAnsiEscape().FgColour(TERM_GREEN).BgColour(TERM_BLUE).Build())
}

func Test_TablePrinter_01(t *testing.T) {
	var (
		buffer bytes.Buffer
		table  = NewTablePrinter(3)
	)
	//
	table.AddRow("0", "1002", "mul [4], #3, [4]")
	table.AddRow("4", "33", "data")
	table.AlignRight(0)
	table.AlignRight(1)
	//
	require.NoError(t, table.Print(&buffer))
	assert.Equal(t, "0 | 1002 | mul [4], #3, [4]\n4 |   33 | data\n", buffer.String())
}

func Test_TablePrinter_02(t *testing.T) {
	var (
		buffer bytes.Buffer
		table  = NewTablePrinter(2)
	)
	//
	row := table.AddRow("abcdefgh", "x")
	table.SetMaxWidth(0, 5)
	table.SetEscape(1, row, NewAnsiEscape().FgColour(TERM_RED))
	table.AnsiEscapes(false)
	//
	require.NoError(t, table.Print(&buffer))
	assert.Equal(t, "abc.. | x\n", buffer.String())
	assert.Equal(t, uint(1), table.Height())
	assert.Equal(t, "abcdefgh", table.Get(0, 0))
}

func Test_IsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
	assert.Equal(t, uint(80), TerminalWidth(&bytes.Buffer{}, 80))
}
