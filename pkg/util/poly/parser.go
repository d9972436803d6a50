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
package poly

import (
	"strconv"

	"github.com/consensys/go-sparsepoly/pkg/util/field"
	"github.com/consensys/go-sparsepoly/pkg/util/source"
)

// Token kinds
const (
	endOfInput uint = iota
	whitespace
	number
	variable
	plus
	minus
	times
	caret
)

var scanner = source.Or(
	source.One(plus, '+'),
	source.One(minus, '-'),
	source.One(times, '*'),
	source.One(caret, '^'),
	source.One(variable, 'x'),
	source.Many(whitespace, ' ', '\t', '\n', '\r'),
	source.Many(number, '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '.', '/'),
	source.Eof[rune](endOfInput))

// Parser is responsible for parsing polynomials written in their canonical
// form (e.g. "x^8+2*x^4+2") back into polynomials.  Coefficient literals are
// unsigned, and are converted by a given constructor.
type Parser[F field.Element[F]] struct {
	// Function for constructing coefficients from strings
	constructor func(string) (F, error)
}

// NewParser constructs a new parser for a given coefficient constructor.
func NewParser[F field.Element[F]](constructor func(string) (F, error)) *Parser[F] {
	return &Parser[F]{constructor}
}

// Parse a given string into a polynomial, or produce a syntax error.
func (p *Parser[F]) Parse(input string) (Polynomial[F], error) {
	var (
		text   = []rune(input)
		lexer  = source.NewLexer(text, scanner, whitespace)
		tokens = lexer.Collect()
		poly   Polynomial[F]
	)
	//
	if lexer.Remaining() != 0 {
		span := source.NewSpan(lexer.Index(), lexer.Index()+1)
		return poly, source.NewSyntaxError(text, span, "unknown character")
	}
	//
	state := parseState[F]{text, tokens, 0, p.constructor}
	//
	return state.parsePoly()
}

type parseState[F field.Element[F]] struct {
	text        []rune
	tokens      []source.Token
	index       int
	constructor func(string) (F, error)
}

func (p *parseState[F]) parsePoly() (Polynomial[F], error) {
	var res Polynomial[F]
	//
	for i := 0; ; i++ {
		var (
			negate bool
			next   = p.lookahead()
		)
		// Terms after the first must be separated by a sign.
		switch {
		case next.Kind == plus || next.Kind == minus:
			negate = next.Kind == minus
			p.index++
		case next.Kind == endOfInput && i == 0:
			return res, p.syntaxError(next, "empty polynomial")
		case i != 0:
			return res, p.syntaxError(next, "expected + or -")
		}
		//
		term, err := p.parseTerm()
		if err != nil {
			return res, err
		} else if negate {
			term = term.Neg()
		}
		//
		res = res.Add(term)
		//
		if p.lookahead().Kind == endOfInput {
			return res, nil
		}
	}
}

func (p *parseState[F]) parseTerm() (Polynomial[F], error) {
	var (
		poly  Polynomial[F]
		coeff = field.One[F]()
		next  = p.lookahead()
		err   error
	)
	//
	switch next.Kind {
	case number:
		if coeff, err = p.constructor(p.text_(next)); err != nil {
			return poly, p.syntaxError(next, err.Error())
		}
		//
		p.index++
		// Check for constant
		if p.lookahead().Kind != times {
			return Constant(coeff), nil
		}
		//
		p.index++
	case variable:
		// implicit coefficient
	default:
		return poly, p.syntaxError(next, "expected coefficient or x")
	}
	//
	degree, err := p.parsePower()
	if err != nil {
		return poly, err
	}
	//
	return FromTerms(NewTerm(degree, coeff)), nil
}

func (p *parseState[F]) parsePower() (uint, error) {
	if next := p.lookahead(); next.Kind != variable {
		return 0, p.syntaxError(next, "expected x")
	}
	//
	p.index++
	//
	if p.lookahead().Kind != caret {
		return 1, nil
	}
	//
	p.index++
	//
	next := p.lookahead()
	if next.Kind != number {
		return 0, p.syntaxError(next, "expected exponent")
	}
	//
	degree, err := strconv.ParseUint(p.text_(next), 10, 64)
	if err != nil || degree > uint64(MaxDegree) {
		return 0, p.syntaxError(next, "invalid exponent")
	}
	//
	p.index++
	//
	return uint(degree), nil
}

func (p *parseState[F]) lookahead() source.Token {
	return p.tokens[p.index]
}

func (p *parseState[F]) text_(token source.Token) string {
	return string(p.text[token.Span.Start():token.Span.End()])
}

func (p *parseState[F]) syntaxError(token source.Token, msg string) error {
	return source.NewSyntaxError(p.text, token.Span, msg)
}
