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
package source

import (
	"fmt"
	"strings"
)

// SyntaxError is a structured error which retains the index into the original
// string where an error occurred, along with an error message.
type SyntaxError struct {
	// Text being parsed
	text []rune
	// Index into string being parsed where error arose.
	span Span
	// Error message being reported
	msg string
}

// NewSyntaxError constructs a syntax error over a given span of some text.
func NewSyntaxError(text []rune, span Span, msg string) *SyntaxError {
	return &SyntaxError{text, span, msg}
}

// Span returns the span of the original text on which this error is reported.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Message returns the message to be reported.
func (p *SyntaxError) Message() string {
	return p.msg
}

// Error implements the error interface.
func (p *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d:%s", p.span.Start(), p.span.End(), p.Message())
}

// Highlight renders the original text with a line underneath marking the span
// of this error, such as:
//
//	x^2+*x
//	    ^
func (p *SyntaxError) Highlight() string {
	var (
		builder strings.Builder
		start   = min(p.span.Start(), len(p.text))
		length  = max(1, p.span.Length())
	)
	//
	builder.WriteString(string(p.text))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat(" ", start))
	builder.WriteString(strings.Repeat("^", length))
	//
	return builder.String()
}
