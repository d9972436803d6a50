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
	"os"

	"github.com/consensys/go-sparsepoly/pkg/util/source"
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

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Construct the workspace selected by the "field" flag, or exit if the field
// is unknown.
func getWorkspace(cmd *cobra.Command) Workspace {
	ws, err := NewWorkspace(GetString(cmd, "field"))
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return ws
}

// Report an error arising from some command, and exit.  Malformed arguments
// give exit status 2 (with syntax errors highlighted in the argument they arose
// from), whilst other failures (e.g. division by zero) give exit status 1.
func reportError(err error) {
	var (
		argErr *ArgumentError
		synErr *source.SyntaxError
	)
	//
	switch {
	case errors.As(err, &argErr) && errors.As(err, &synErr):
		fmt.Printf("argument %d: %s\n", argErr.Index+1, synErr.Message())
		fmt.Println(synErr.Highlight())
		os.Exit(2)
	case errors.As(err, &argErr):
		fmt.Println(err)
		os.Exit(2)
	default:
		fmt.Println(err)
		os.Exit(1)
	}
}

// Print the result of a command, or report its error and exit.
func printResult(cmd *cobra.Command, result string, err error) {
	if err != nil {
		reportError(err)
	}
	//
	fmt.Fprintln(cmd.OutOrStdout(), result)
}
