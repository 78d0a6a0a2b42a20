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
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/consensys/go-intcode/pkg/intcode/image"
	"github.com/consensys/go-intcode/pkg/intcode/store"
	"github.com/consensys/go-intcode/pkg/intcode/vm/instruction"
	"github.com/consensys/go-intcode/pkg/intcode/vm/machine"
	"github.com/consensys/go-intcode/pkg/intcode/vm/memory"
	"github.com/consensys/go-intcode/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetWords gets an expected list of signed integers, or exits if an error
// arises.
func GetWords(cmd *cobra.Command, flag string) []int64 {
	r, err := cmd.Flags().GetInt64Slice(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Read a program image file, or exit if an error arises.
func readImageFile(filename string) []int64 {
	words, err := image.ReadFile(filename)
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	log.Debugf("read %d words from %s", len(words), filename)
	//
	return words
}

// Open the checkpoint store identified by the "db" flag, or exit if an error
// arises.
func openStore(cmd *cobra.Command) *store.CheckpointStore {
	var dir = GetString(cmd, "db")
	//
	db, err := store.Open(dir)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return db
}

// Report an error which arose during execution, returning the exit code to use.
func reportFault(err error) int {
	var (
		decodeErr *machine.DecodeError
		addrErr   *machine.AddressError
		writeErr  *machine.ImmediateWriteError
		queueErr  *machine.QueueUnderflowError
		kind      = "error"
	)
	//
	switch {
	case errors.As(err, &decodeErr):
		kind = "decode"
	case errors.As(err, &addrErr):
		kind = "address"
	case errors.As(err, &writeErr):
		kind = "write"
	case errors.As(err, &queueErr):
		kind = "queue"
	}
	//
	log.WithField("kind", kind).Error(err)
	//
	return 4
}

// Close a checkpoint store, logging any failure.
func closeStore(db *store.CheckpointStore) {
	if err := db.Close(); err != nil {
		log.Error(err)
	}
}

// Determine how many words of memory to show per row, for a terminal of a given
// width.  Each word is allowed nine characters including its separator.
func memoryRowWidth(width uint) uint {
	const cell = 9
	//
	if width <= 2*cell {
		return 1
	}
	//
	return min((width-cell)/cell, 16)
}

// LogTracer is a machine tracer which logs every instruction executed.
type LogTracer struct {
	logger *log.Logger
}

// NewLogTracer constructs a tracer which logs to a given logger.
func NewLogTracer(logger *log.Logger) *LogTracer {
	return &LogTracer{logger}
}

// Trace implementation for machine.Tracer interface.
func (p *LogTracer) Trace(pc uint64, base int64, insn instruction.Instruction) {
	p.logger.WithFields(log.Fields{
		"pc":   pc,
		"base": base,
	}).Debug(insn.String())
}

// Print all outputs, one per line.
func printOutputs(out io.Writer, outputs []int64) {
	for _, v := range outputs {
		fmt.Fprintln(out, v)
	}
}

// Print the contents of memory as a table, showing a fixed number of words per
// row.  Non-zero words are highlighted when escapes are enabled.
func printMemory(out io.Writer, mem memory.Memory, perRow uint, escapes bool) error {
	var (
		contents = mem.Contents()
		table    = termio.NewTablePrinter(perRow + 1)
		escape   = termio.NewAnsiEscape().FgColour(termio.TERM_YELLOW)
	)
	//
	for i := uint(0); i < uint(len(contents)); i += perRow {
		var (
			row     = make([]string, perRow+1)
			nonzero []uint
		)
		//
		row[0] = fmt.Sprintf("%d:", i)
		//
		for j := uint(0); j < perRow; j++ {
			if i+j < uint(len(contents)) {
				row[j+1] = strconv.FormatInt(contents[i+j], 10)
				//
				if contents[i+j] != 0 {
					nonzero = append(nonzero, j+1)
				}
			}
		}
		//
		r := table.AddRow(row...)
		//
		for _, col := range nonzero {
			table.SetEscape(col, r, escape)
		}
	}
	//
	for i := uint(0); i < perRow+1; i++ {
		table.AlignRight(i)
	}
	//
	table.AnsiEscapes(escapes)
	//
	return table.Print(out)
}

// Print a disassembly listing of a program image as a table.
func printListing(out io.Writer, listing []instruction.Listing, escapes bool) error {
	var (
		table = termio.NewTablePrinter(3)
		data  = termio.FaintAnsiEscape()
	)
	//
	for _, entry := range listing {
		var words string
		//
		for i, w := range entry.Words {
			if i != 0 {
				words += " "
			}
			//
			words += strconv.FormatInt(w, 10)
		}
		//
		if entry.IsData() {
			r := table.AddRow(strconv.FormatUint(entry.Address, 10), words, "data")
			table.SetEscape(2, r, data)
		} else {
			table.AddRow(strconv.FormatUint(entry.Address, 10), words, entry.Instruction.String())
		}
	}
	//
	table.AlignRight(0)
	table.AnsiEscapes(escapes)
	//
	return table.Print(out)
}
