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

	"github.com/consensys/go-intcode/pkg/intcode/network"
	"github.com/spf13/cobra"
)

var amplifyCmd = &cobra.Command{
	Use:   "amplify [flags] program",
	Short: "Run an Intcode program as a chain of amplifiers.",
	Long: `Run copies of an Intcode program as a chain of amplifiers, one per
	phase setting, where each amplifier passes its output to the next.  With
	--feedback the last amplifier feeds back into the first.  With --search
	every ordering of the phase settings is tried, and the best reported.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		var (
			image    = readImageFile(args[0])
			phases   = GetWords(cmd, "phases")
			feedback = GetFlag(cmd, "feedback")
			signal   int64
			err      error
		)
		//
		if !cmd.Flags().Changed("phases") && feedback {
			phases = []int64{5, 6, 7, 8, 9}
		}
		//
		switch {
		case GetFlag(cmd, "search"):
			var best []int64
			//
			if signal, best, err = network.MaxSignal(image, phases, feedback); err == nil {
				fmt.Printf("phases %v\n", best)
			}
		case feedback:
			signal, err = network.RunFeedback(image, phases)
		default:
			signal, err = network.RunChain(image, phases)
		}
		//
		if err != nil {
			os.Exit(reportFault(err))
		}
		//
		fmt.Println(signal)
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(amplifyCmd)
	amplifyCmd.Flags().Int64Slice("phases", []int64{0, 1, 2, 3, 4}, "phase settings, one per amplifier")
	amplifyCmd.Flags().Bool("feedback", false, "connect the last amplifier back to the first")
	amplifyCmd.Flags().Bool("search", false, "search all orderings of the phase settings")
}
