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

var addCmd = &cobra.Command{
	Use:   "add [flags] poly poly...",
	Short: "add polynomials together.",
	Run: func(cmd *cobra.Command, args []string) {
		runFold(cmd, args, "Addition", Workspace.Add)
	},
}

var subCmd = &cobra.Command{
	Use:   "sub [flags] poly poly...",
	Short: "subtract polynomials from the first.",
	Run: func(cmd *cobra.Command, args []string) {
		runFold(cmd, args, "Subtraction", Workspace.Sub)
	},
}

var mulCmd = &cobra.Command{
	Use:   "mul [flags] poly poly...",
	Short: "multiply polynomials together.",
	Run: func(cmd *cobra.Command, args []string) {
		runFold(cmd, args, "Multiplication", Workspace.Mul)
	},
}

// Run a command which combines one or more polynomials together.
func runFold(cmd *cobra.Command, args []string, name string, op func(Workspace, ...string) (string, error)) {
	if len(args) < 1 {
		fmt.Println(cmd.UsageString())
		os.Exit(1)
	}
	//
	var (
		ws    = getWorkspace(cmd)
		stats = util.NewPerfStats()
	)
	//
	res, err := op(ws, args...)
	//
	stats.Log(name)
	printResult(cmd, res, err)
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(subCmd)
	rootCmd.AddCommand(mulCmd)
}
