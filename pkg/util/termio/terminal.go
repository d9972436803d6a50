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
	"io"
	"os"

	"golang.org/x/term"
)

// DEFAULT_WIDTH is the width assumed for output which is not a terminal.
const DEFAULT_WIDTH = uint(80)

// Terminal describes the capabilities of some output stream, such as whether
// it supports ANSI escapes and how wide it is.
type Terminal struct {
	writer io.Writer
	// Width of the terminal in characters.
	width uint
	// Indicates whether output is an interactive terminal
	interactive bool
}

// NewTerminal inspects a given output stream.  Only files connected to an
// interactive terminal are considered to support escapes, and their width is
// taken from the terminal itself.
func NewTerminal(w io.Writer) *Terminal {
	if file, ok := w.(*os.File); ok {
		fd := int(file.Fd())
		//
		if term.IsTerminal(fd) {
			if width, _, err := term.GetSize(fd); err == nil && width > 0 {
				return &Terminal{w, uint(width), true}
			}
			//
			return &Terminal{w, DEFAULT_WIDTH, true}
		}
	}
	//
	return &Terminal{w, DEFAULT_WIDTH, false}
}

// Writer returns the underlying output stream.
func (t *Terminal) Writer() io.Writer {
	return t.writer
}

// Width returns the width of this terminal in characters.
func (t *Terminal) Width() uint {
	return t.width
}

// IsInteractive determines whether or not this is an interactive terminal,
// and hence whether ANSI escapes should be used.
func (t *Terminal) IsInteractive() bool {
	return t.interactive
}
