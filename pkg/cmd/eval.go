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
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/consensys/go-sparsepoly/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] poly point...",
	Short: "evaluate a polynomial at zero or more points.",
	Long: `Evaluate a polynomial at zero or more points, printing one value
	per line in the order the points were given.  Points are evaluated
	concurrently.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		if len(args) == 1 {
			log.Warn("no evaluation points given")
		}
		//
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		//
		stats := util.NewPerfStats()
		values, err := getWorkspace(cmd).Eval(ctx, args[0], args[1:]...)
		//
		stats.Log(fmt.Sprintf("Evaluation at %d points", len(args)-1))
		//
		if err != nil {
			reportError(err)
		} else if len(values) > 0 {
			printResult(cmd, strings.Join(values, "\n"), nil)
		}
	},
}

var composeCmd = &cobra.Command{
	Use:   "compose [flags] poly poly",
	Short: "substitute one polynomial for the variable of another.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		stats := util.NewPerfStats()
		res, err := getWorkspace(cmd).Compose(args[0], args[1])
		//
		stats.Log("Composition")
		printResult(cmd, res, err)
	},
}

var deriveCmd = &cobra.Command{
	Use:   "derive [flags] poly",
	Short: "formal derivative of a polynomial.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		res, err := getWorkspace(cmd).Derive(args[0])
		printResult(cmd, res, err)
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(composeCmd)
	rootCmd.AddCommand(deriveCmd)
}
