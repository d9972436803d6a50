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
package termio

import (
	"fmt"
	"strings"
)

// TERM_RED represents red
const TERM_RED = uint(1)

// AnsiEscape represents an ANSI escape code used for formatting text in a
// terminal.  An escape is built from zero or more parameters, such as "1" for
// bold or "31" for a red foreground.
type AnsiEscape struct {
	params []string
}

// NewAnsiEscape construct an empty escape
func NewAnsiEscape() AnsiEscape {
	return AnsiEscape{nil}
}

// ResetAnsiEscape constructs a reset term.
func ResetAnsiEscape() AnsiEscape {
	return AnsiEscape{[]string{"0"}}
}

// Bold adds emboldening to this escape.
func (p AnsiEscape) Bold() AnsiEscape {
	return p.with("1")
}

// FgColour sets the foreground colour
func (p AnsiEscape) FgColour(col uint) AnsiEscape {
	return p.with(fmt.Sprintf("%d", col+30))
}

// IsEmpty checks whether this escape has no effect.
func (p AnsiEscape) IsEmpty() bool {
	return len(p.params) == 0
}

// Build constructs the final escape
func (p AnsiEscape) Build() string {
	if p.IsEmpty() {
		return ""
	}
	//
	return fmt.Sprintf("\033[%sm", strings.Join(p.params, ";"))
}

func (p AnsiEscape) with(param string) AnsiEscape {
	params := make([]string, len(p.params), len(p.params)+1)
	copy(params, p.params)
	//
	return AnsiEscape{append(params, param)}
}
