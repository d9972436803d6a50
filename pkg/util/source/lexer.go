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

import "slices"

// Token associates a piece of information with a given range of characters in
// the string being scanned.
type Token struct {
	Kind uint
	Span Span
}

// Lexer tokenises a given input sequence on demand, using a single token of
// lookahead.  Tokens whose kind was marked as skipped (e.g. whitespace) are
// consumed silently.
type Lexer[T any] struct {
	items   []T
	index   int
	scanner Scanner[T]
	skip    []uint
	// Next token, when one has been scanned but not yet returned.
	next *Token
}

// NewLexer constructs a new lexer with a given scanner, which silently drops
// tokens of the given kinds.
func NewLexer[T any](input []T, scanner Scanner[T], skip ...uint) *Lexer[T] {
	return &Lexer[T]{input, 0, scanner, skip, nil}
}

// Remaining determines how many items of the original sequence have not yet
// been matched by a token.  After a successful run this is zero, whilst a
// nonzero value identifies an item which no scanner accepted.
func (p *Lexer[T]) Remaining() uint {
	return uint(max(0, len(p.items)-p.Index()))
}

// Index returns the position of the lexer in the original sequence.
func (p *Lexer[T]) Index() int {
	if p.next != nil {
		return p.next.Span.Start()
	}
	//
	return min(p.index, len(p.items))
}

// HasNext checks whether or not there are any tokens remaining.
func (p *Lexer[T]) HasNext() bool {
	for p.next == nil && p.index <= len(p.items) {
		token, ok := p.scanner.Scan(p.items[p.index:])
		if !ok {
			return false
		}
		// Shift span into position
		token.Span = NewSpan(token.Span.Start()+p.index, token.Span.End()+p.index)
		//
		if token.Span.Length() == 0 {
			// End of input
			p.index = len(p.items) + 1
		} else {
			p.index = token.Span.End()
		}
		//
		if !slices.Contains(p.skip, token.Kind) {
			p.next = &token
		}
	}
	//
	return p.next != nil
}

// Next returns the next token and advances the lexer.  This panics if there is
// no next token.
func (p *Lexer[T]) Next() Token {
	if !p.HasNext() {
		panic("no tokens remaining")
	}
	//
	token := *p.next
	p.next = nil
	//
	return token
}

// Collect is a convenience function which scans all remaining tokens in one
// go.
func (p *Lexer[T]) Collect() []Token {
	var tokens []Token
	//
	for p.HasNext() {
		tokens = append(tokens, p.Next())
	}
	//
	return tokens
}
