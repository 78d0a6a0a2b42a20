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
	"github.com/consensys/go-intcode/pkg/intcode/vm/machine"
	"github.com/consensys/go-intcode/pkg/util"
	"github.com/consensys/go-intcode/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] program",
	Short: "Execute an Intcode program.",
	Long: `Execute an Intcode program until it halts, printing any outputs
	it produces one per line.  A program which blocks waiting for more input
	can be saved as a named checkpoint, and continued later using "resume".`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		var (
			inputs = GetWords(cmd, "input")
			name   = GetString(cmd, "save")
			vm     = machine.New(readImageFile(args[0]), inputs...)
			db     *store.CheckpointStore
		)
		//
		if name != "" {
			db = openStore(cmd)
		}
		//
		code := executeMachine(cmd, vm, name, db)
		// Store must be closed before exiting
		if db != nil {
			closeStore(db)
		}
		//
		if code != 0 {
			os.Exit(code)
		}
	},
}

// Execute a given machine in chunks until it can make no further progress.  If
// the machine blocks, and a checkpoint store is given, then the machine is
// saved under the given name.  Otherwise, blocking is reported as a deadlock.
// This returns the exit code for the process.
func executeMachine(cmd *cobra.Command, vm *machine.Machine, name string, db *store.CheckpointStore) int {
	var (
		chunk = GetUint(cmd, "chunk")
		stats = util.NewPerfStats()
		start = vm.Steps()
	)
	//
	if GetFlag(cmd, "trace") {
		log.SetLevel(log.DebugLevel)
		vm.WithTracer(NewLogTracer(log.StandardLogger()))
	}
	//
	_, err := machine.ExecuteAll(vm, chunk)
	// Outputs are always reported, even after a fault
	printOutputs(os.Stdout, vm.DrainOutput())
	//
	stats.Log("execution", vm.Steps()-start)
	//
	if GetFlag(cmd, "dump") {
		width := termio.TerminalWidth(os.Stdout, 80)
		//
		if err := printMemory(os.Stdout, vm.Memory(), memoryRowWidth(width), termio.IsTerminal(os.Stdout)); err != nil {
			log.Error(err)
		}
	}
	//
	switch status := vm.Status(); {
	case err != nil:
		return reportFault(err)
	case status.IsTerminal() && db != nil:
		// Halted, so nothing left to resume
		if err := db.Delete(name); err != nil {
			log.Error(err)
			return 2
		}
	case status.IsTerminal():
		// Halted
	case db != nil:
		if err := saveCheckpoint(vm, name, db); err != nil {
			log.Error(err)
			return 2
		}
	default:
		return reportFault(vm.Run())
	}
	//
	return 0
}

func saveCheckpoint(vm *machine.Machine, name string, db *store.CheckpointStore) error {
	checkpoint, err := vm.Checkpoint()
	//
	if err == nil {
		err = db.Put(name, checkpoint)
	}
	//
	if err != nil {
		return err
	}
	//
	log.WithFields(log.Fields{
		"pc":    vm.PC(),
		"steps": vm.Steps(),
	}).Infof("waiting for input, saved as \"%s\"", name)
	//
	return nil
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Int64SliceP("input", "i", nil, "values to place on the input queue")
	runCmd.Flags().String("save", "", "save the machine under this name if it blocks waiting for input")
	runCmd.Flags().String("db", ".intcode", "directory holding saved machines")
	addExecutionFlags(runCmd)
}

// Add flags shared by all commands which execute a single machine.
func addExecutionFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("trace", false, "log every instruction executed")
	cmd.Flags().Bool("dump", false, "print the contents of memory after execution")
	cmd.Flags().Uint("chunk", machine.DEFAULT_CHUNK, "number of instructions to execute at a time")
}
