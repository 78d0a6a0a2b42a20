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
	"github.com/consensys/go-intcode/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var networkCmd = &cobra.Command{
	Use:   "network [flags] program",
	Short: "Run an Intcode program as a network of NICs.",
	Long: `Run copies of an Intcode program as a packet-switched network, where
	each copy is booted with its own address.  By default, this reports the
	first packet sent to address 255.  With --nat, the network is instead run
	until the NAT wakes it with the same Y value twice in a row.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		var (
			image = readImageFile(args[0])
			stats = util.NewPerfStats()
		)
		//
		net, err := network.New(image, GetUint(cmd, "size"))
		if err != nil {
			os.Exit(reportFault(err))
		}
		//
		if GetFlag(cmd, "nat") {
			var y int64
			//
			if y, err = net.RunUntilRepeatedWake(); err == nil {
				fmt.Println(y)
			}
		} else {
			var packet network.Packet
			//
			if packet, err = net.FirstNatPacket(); err == nil {
				fmt.Printf("%d %d\n", packet.X, packet.Y)
			}
		}
		//
		if err != nil {
			os.Exit(reportFault(err))
		}
		//
		log.Debugf("network ran for %d rounds", net.Rounds())
		stats.Log("network", net.Steps())
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(networkCmd)
	networkCmd.Flags().Uint("size", 50, "number of NICs on the network")
	networkCmd.Flags().Bool("nat", false, "run until the NAT repeats a wake-up value")
}
