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
	"fmt"
	"os"
	"strconv"

	"github.com/consensys/go-intcode/pkg/intcode/store"
	"github.com/consensys/go-intcode/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var checkpointsCmd = &cobra.Command{
	Use:   "checkpoints [flags]",
	Short: "List saved Intcode programs.",
	Long:  `List the programs saved whilst waiting for input, along with their positions.`,
	Run: func(cmd *cobra.Command, args []string) {
		db := openStore(cmd)
		table, err := checkpointTable(db)
		// Store must be closed before exiting
		closeStore(db)
		//
		if err != nil {
			log.Error(err)
			os.Exit(2)
		}
		//
		table.AnsiEscapes(termio.IsTerminal(os.Stdout))
		//
		if err := table.Print(os.Stdout); err != nil {
			fmt.Println(err)
		}
	},
}

// Construct a table summarising every checkpoint in a given store.
func checkpointTable(db *store.CheckpointStore) (*termio.TablePrinter, error) {
	var table = termio.NewTablePrinter(4)
	//
	names, err := db.Names()
	if err != nil {
		return nil, err
	}
	//
	table.AddRow("name", "pc", "steps", "status")
	//
	for _, name := range names {
		checkpoint, _, err := db.Get(name)
		if err != nil {
			return nil, err
		}
		//
		vm := checkpoint.Restore()
		row := table.AddRow(name,
			strconv.FormatUint(vm.PC(), 10),
			strconv.FormatUint(vm.Steps(), 10),
			vm.Status().String())
		//
		table.SetEscape(0, row, termio.BoldAnsiEscape())
	}
	//
	table.AlignRight(1)
	table.AlignRight(2)
	//
	return table, nil
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(checkpointsCmd)
	checkpointsCmd.Flags().String("db", ".intcode", "directory holding saved machines")
}
