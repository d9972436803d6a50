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
package main

import (
	"fmt"
	"math/big"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/consensys/bavard"
)

const copyrightHolder = "Consensys Software Inc."

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "go-sparsepoly")

	specs := []fieldSpecs{
		{Name: "koalabear", Modulus: 1<<31 - 1<<24 + 1},
		{Name: "gf8209", Modulus: 8209},
	}

	for _, spec := range specs {
		assertNoError(spec.check(), "for field \"%s\"", spec.Name)

		assertNoError(bgen.Generate(spec, spec.Name, "templates",
			bavard.Entry{
				File:      fmt.Sprintf("../../%s/element.go", spec.Name),
				Templates: []string{"element.go.tmpl"},
			},
			bavard.Entry{
				File:      fmt.Sprintf("../../%s/element_test.go", spec.Name),
				Templates: []string{"element.test.go.tmpl"},
			},
		), "for field \"%s\"", spec.Name)
	}
	// run gofmt on whole directory
	runCmd("gofmt", "-w", "../../")
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run(), "")
}

type fieldSpecs struct {
	Name    string
	Modulus uint32
}

// Elements are multiplied within a uint64, and inverted using Fermat's little
// theorem, hence the modulus must be a prime below 2³¹.
func (f fieldSpecs) check() error {
	if f.Modulus >= 1<<31 {
		return fmt.Errorf("modulus must be less than 2³¹")
	} else if !big.NewInt(int64(f.Modulus)).ProbablyPrime(20) {
		return fmt.Errorf("modulus %d is not prime", f.Modulus)
	}

	return nil
}

func assertNoError(err error, contextAndArgs ...any) {
	if err != nil {
		msg := err.Error()

		if len(contextAndArgs) > 0 {
			allArgs := append(slices.Clone(contextAndArgs[1:]), err)
			msg = fmt.Sprintf(contextAndArgs[0].(string)+": %v", allArgs...)
		}

		fmt.Println(msg)
		os.Exit(1)
	}
}
