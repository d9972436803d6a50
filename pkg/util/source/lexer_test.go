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
	"slices"
	"testing"
)

func TestLexer_00(t *testing.T) {
	var tokens []Token = []Token{
		{END_OF, NewSpan(0, 0)},
	}

	checkLexer(t, "", 0, tokens...)
}

func TestLexer_01(t *testing.T) {
	var tokens []Token = []Token{
		{VARIABLE, NewSpan(0, 1)},
		{END_OF, NewSpan(1, 1)},
	}

	checkLexer(t, "x", 0, tokens...)
}

func TestLexer_02(t *testing.T) {
	var tokens []Token = []Token{
		{VARIABLE, NewSpan(0, 1)},
		{CARET, NewSpan(1, 2)},
		{NUMBER, NewSpan(2, 4)},
		{END_OF, NewSpan(4, 4)},
	}

	checkLexer(t, "x^12", 0, tokens...)
}

func TestLexer_03(t *testing.T) {
	var tokens []Token = []Token{}

	checkLexer(t, "y", 1, tokens...)
}

func TestLexer_04(t *testing.T) {
	var tokens []Token = []Token{
		{NUMBER, NewSpan(0, 1)},
		{WSPACE, NewSpan(1, 3)},
		{PLUS, NewSpan(3, 4)},
		{WSPACE, NewSpan(4, 5)},
		{VARIABLE, NewSpan(5, 6)},
		{END_OF, NewSpan(6, 6)},
	}

	checkLexer(t, "1  + x", 0, tokens...)
}

func TestLexer_05(t *testing.T) {
	var tokens []Token = []Token{
		{NUMBER, NewSpan(0, 1)},
		{PLUS, NewSpan(1, 2)},
	}

	checkLexer(t, "1+y", 1, tokens...)
}

func TestLexer_06(t *testing.T) {
	var tokens []Token = []Token{
		{NUMBER, NewSpan(0, 3)},
		{END_OF, NewSpan(3, 3)},
	}

	checkLexer(t, "123", 0, tokens...)
}

func TestLexer_07(t *testing.T) {
	var (
		items  = []rune(" x ^ 2 ")
		lexer  = NewLexer(items, scanner, WSPACE)
		tokens = []Token{
			{VARIABLE, NewSpan(1, 2)},
			{CARET, NewSpan(3, 4)},
			{NUMBER, NewSpan(5, 6)},
			{END_OF, NewSpan(7, 7)},
		}
	)
	//
	if actual := lexer.Collect(); !slices.Equal(actual, tokens) {
		t.Errorf("got %v, expected %v", actual, tokens)
	} else if lexer.Remaining() != 0 {
		t.Errorf("unexpected remainder %d", lexer.Remaining())
	}
}

func TestLexer_08(t *testing.T) {
	lexer := NewLexer([]rune("x +?"), scanner, WSPACE)
	//
	for lexer.HasNext() {
		lexer.Next()
	}
	//
	if lexer.Index() != 3 || lexer.Remaining() != 1 {
		t.Errorf("unexpected position %d (remaining %d)", lexer.Index(), lexer.Remaining())
	}
}

func TestSyntaxError_Highlight(t *testing.T) {
	err := NewSyntaxError([]rune("x^2+*x"), NewSpan(4, 5), "unexpected token")
	//
	if err.Highlight() != "x^2+*x\n    ^" {
		t.Errorf("unexpected highlight:\n%s", err.Highlight())
	} else if err.Error() != "4:5:unexpected token" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

// ==================================================================
// Framework
// ==================================================================

const END_OF uint = 0
const WSPACE uint = 1
const PLUS uint = 2
const CARET uint = 3
const NUMBER uint = 4
const VARIABLE uint = 5

var scanner Scanner[rune] = Or(
	One(PLUS, '+'),
	One(CARET, '^'),
	One(VARIABLE, 'x'),
	Many(WSPACE, ' ', '\t'),
	Many(NUMBER, '0', '1', '2', '3', '4', '5', '6', '7', '8', '9'),
	Eof[rune](END_OF))

func checkLexer(t *testing.T, input string, remainder uint, expected ...Token) {
	items := []rune(input)
	// Construct text lexer
	lexer := NewLexer[rune](items, scanner)
	// Apply lexer
	tokens := lexer.Collect()
	// Keep scanning
	if !slices.Equal(tokens, expected) {
		t.Errorf("got %v, expected %v", tokens, expected)
	} else if lexer.Remaining() != remainder {
		n := len(items) - int(lexer.Remaining())
		t.Errorf("unmatched items: %v", items[n:])
	}
}
