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

	"github.com/consensys/go-sparsepoly/pkg/util"
	"github.com/spf13/cobra"
)

var divCmd = &cobra.Command{
	Use:   "div [flags] poly poly",
	Short: "divide one polynomial by another.",
	Long: `Divide one polynomial by another, printing the quotient and then
	the remainder on separate lines.  The remainder always has lower degree
	than the divisor.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		stats := util.NewPerfStats()
		quo, rem, err := getWorkspace(cmd).DivMod(args[0], args[1])
		//
		stats.Log("Division")
		printResult(cmd, quo, err)
		printResult(cmd, rem, nil)
	},
}

var modCmd = &cobra.Command{
	Use:   "mod [flags] poly poly",
	Short: "remainder after dividing one polynomial by another.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		_, rem, err := getWorkspace(cmd).DivMod(args[0], args[1])
		printResult(cmd, rem, err)
	},
}

var gcdCmd = &cobra.Command{
	Use:   "gcd [flags] poly poly...",
	Short: "greatest common divisor of one or more polynomials.",
	Long: `Determine the greatest common divisor of one or more polynomials.
	The result is monic (i.e. has leading coefficient 1) unless all
	polynomials are zero, in which case it is zero.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		stats := util.NewPerfStats()
		res, err := getWorkspace(cmd).Gcd(args...)
		//
		stats.Log("GCD")
		printResult(cmd, res, err)
	},
}

func init() {
	rootCmd.AddCommand(divCmd)
	rootCmd.AddCommand(modCmd)
	rootCmd.AddCommand(gcdCmd)
}
