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

	"github.com/consensys/go-intcode/pkg/intcode/store"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var resumeCmd = &cobra.Command{
	Use:   "resume [flags] name",
	Short: "Continue executing a saved Intcode program.",
	Long: `Continue executing a program previously saved whilst waiting for
	input.  If the program blocks again it is saved under the same name,
	otherwise it is removed once it halts.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		var (
			name   = args[0]
			inputs = GetWords(cmd, "input")
			db     = openStore(cmd)
			code   = resumeMachine(cmd, name, inputs, db)
		)
		// Store must be closed before exiting
		closeStore(db)
		//
		if code != 0 {
			os.Exit(code)
		}
	},
}

// Restore the named machine from a given store, add the given inputs and
// continue executing it.  This returns the exit code for the process.
func resumeMachine(cmd *cobra.Command, name string, inputs []int64, db *store.CheckpointStore) int {
	checkpoint, ok, err := db.Get(name)
	//
	if err != nil {
		log.Error(err)
		return 2
	} else if !ok {
		fmt.Printf("unknown checkpoint \"%s\"\n", name)
		return 2
	}
	//
	vm := checkpoint.Restore()
	vm.AddInput(inputs...)
	//
	log.Debugf("resuming \"%s\" at pc %d after %d steps", name, vm.PC(), vm.Steps())
	//
	return executeMachine(cmd, vm, name, db)
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(resumeCmd)
	resumeCmd.Flags().Int64SliceP("input", "i", nil, "values to place on the input queue")
	resumeCmd.Flags().String("db", ".intcode", "directory holding saved machines")
	addExecutionFlags(resumeCmd)
}
