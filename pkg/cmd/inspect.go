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

	"github.com/consensys/go-sparsepoly/pkg/util/termio"
	"github.com/spf13/cobra"
)

var termsCmd = &cobra.Command{
	Use:   "terms [flags] poly",
	Short: "list the nonzero terms of a polynomial.",
	Long: `List the nonzero terms of a polynomial in order of ascending
	degree.  When printing to a terminal, negative coefficients are
	highlighted and wide coefficients are truncated to fit.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		terms, err := getWorkspace(cmd).Terms(args[0])
		if err != nil {
			reportError(err)
		}
		//
		term := termio.NewTerminal(cmd.OutOrStdout())
		table := termsTable(terms, term.Width(), term.IsInteractive() && !GetFlag(cmd, "no-colour"))
		//
		if err := table.Print(term.Writer()); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

var degreeCmd = &cobra.Command{
	Use:   "degree [flags] poly",
	Short: "degree of a polynomial (or -1 for zero).",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		deg, err := getWorkspace(cmd).Degree(args[0])
		printResult(cmd, strconv.Itoa(deg), err)
	},
}

// Construct a table of terms, with a header row, fitting within a given width.
// ANSI escapes (for the header and negative coefficients) are only emitted when
// enabled.
func termsTable(terms []TermInfo, width uint, escapes bool) *termio.TablePrinter {
	var (
		table    = termio.NewTablePrinter(2, uint(len(terms))+1)
		negative = termio.NewAnsiEscape().FgColour(termio.TERM_RED)
		header   = termio.NewAnsiEscape().Bold()
	)
	//
	table.AnsiEscapes(escapes)
	table.SetRow(0, "degree", "coefficient")
	table.SetEscape(0, 0, header)
	table.SetEscape(1, 0, header)
	//
	for i, t := range terms {
		row := uint(i) + 1
		table.SetRow(row, strconv.FormatUint(uint64(t.Degree), 10), t.Coefficient)
		//
		if t.Sign < 0 {
			table.SetEscape(1, row, negative)
		}
	}
	// Each column is padded by three characters
	if width > 6 {
		table.SetMaxWidths(width/2 - 3)
	}
	//
	return table
}

func init() {
	rootCmd.AddCommand(termsCmd)
	rootCmd.AddCommand(degreeCmd)
	termsCmd.Flags().Bool("no-colour", false, "disable ANSI escapes")
}
